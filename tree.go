package mcplibrary

// MaxTreeDepth is the maximum depth of any built tree, counted from the
// root (root = 0; root, category, sub-category, page).
const MaxTreeDepth = 3

// NodeKind discriminates tree node variants explicitly rather than by
// presence or absence of fields.
type NodeKind string

// Tree node kinds.
const (
	KindCategory NodeKind = "category"
	KindPage     NodeKind = "page"
)

// TreeNode is one position in a site hierarchy. Category nodes group pages;
// page nodes map to a concrete crawled URL and carry its content. A page
// node may still have children when its URL is also a path prefix
// (e.g. /docs/ above /docs/api).
//
// Children are ordered; sibling order is insertion order and is significant
// for deterministic output. Keys are unique within a parent.
type TreeNode struct {
	Kind     NodeKind    `json:"kind"`
	Key      string      `json:"key"`
	URL      string      `json:"url,omitempty"`
	Title    string      `json:"title,omitempty"`
	Content  string      `json:"content,omitempty"`
	Images   []string    `json:"images,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// NewCategoryNode returns a category node with the given key and title.
func NewCategoryNode(key, title string) *TreeNode {
	return &TreeNode{Kind: KindCategory, Key: key, Title: title}
}

// Child returns the child with the given key, or nil. Trees are shallow and
// siblings few, so a linear scan is fine.
func (n *TreeNode) Child(key string) *TreeNode {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// AddChild appends a child, keeping keys unique within the parent.
// If a child with the same key exists it is returned instead.
func (n *TreeNode) AddChild(child *TreeNode) *TreeNode {
	if existing := n.Child(child.Key); existing != nil {
		return existing
	}
	n.Children = append(n.Children, child)
	return child
}

// Walk visits n and its descendants depth-first in sibling order. The
// callback receives each node with its depth from n; returning false stops
// descent into that node's children.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int) bool) {
	n.walk(0, fn)
}

func (n *TreeNode) walk(depth int, fn func(node *TreeNode, depth int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

// Depth returns the depth of the deepest node reachable from n.
func (n *TreeNode) Depth() int {
	max := 0
	n.Walk(func(_ *TreeNode, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}

// Pages returns all page nodes reachable from n in walk order.
func (n *TreeNode) Pages() []*TreeNode {
	var pages []*TreeNode
	n.Walk(func(node *TreeNode, _ int) bool {
		if node.Kind == KindPage {
			pages = append(pages, node)
		}
		return true
	})
	return pages
}

// QueryResult is one ranked answer from the retrieval layer.
type QueryResult struct {
	URL       string  `json:"url"`
	Title     string  `json:"title,omitempty"`
	Relevance float64 `json:"relevance"`
	Content   string  `json:"content,omitempty"`
}
