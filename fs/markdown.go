package fs

import (
	"fmt"
	"strings"

	"github.com/Vikramardham/mcplibrary"
)

// RenderMarkdownTree renders a site tree as a Markdown outline. Category
// nodes become headings, page nodes become links, nested to the tree's
// depth. The output is meant for humans browsing the cache directory.
func RenderMarkdownTree(root *mcplibrary.TreeNode) string {
	if root == nil {
		return ""
	}

	var b strings.Builder

	title := root.Title
	if title == "" {
		title = root.Key
	}
	fmt.Fprintf(&b, "# %s\n", title)

	for _, child := range root.Children {
		renderNode(&b, child, 0)
	}

	return b.String()
}

func renderNode(b *strings.Builder, n *mcplibrary.TreeNode, indent int) {
	prefix := strings.Repeat("  ", indent)

	label := n.Title
	if label == "" {
		label = n.Key
	}

	if n.Kind == mcplibrary.KindPage && n.URL != "" {
		fmt.Fprintf(b, "%s- [%s](%s)\n", prefix, label, n.URL)
	} else {
		fmt.Fprintf(b, "%s- **%s**\n", prefix, label)
	}

	for _, child := range n.Children {
		renderNode(b, child, indent+1)
	}
}
