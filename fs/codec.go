// Package fs provides file-based persistence for crawl results. Each
// crawled site gets its own directory holding the page content, both
// trees, and human-readable exports.
package fs

import (
	"bytes"
	"encoding/json"

	"github.com/Vikramardham/mcplibrary"
)

// EncodeTree serializes a tree to indented JSON. Sibling order is
// preserved, so encoding the same tree twice yields identical bytes.
func EncodeTree(root *mcplibrary.TreeNode) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding tree: %v", err)
	}
	return data, nil
}

// DecodeTree deserializes a tree produced by EncodeTree. A nil tree
// round-trips: encoded "null" decodes back to nil.
func DecodeTree(data []byte) (*mcplibrary.TreeNode, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	var root mcplibrary.TreeNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "decoding tree: %v", err)
	}
	return &root, nil
}

// EncodePageMap serializes a page map to indented JSON, preserving
// discovery order.
func EncodePageMap(pages *mcplibrary.PageMap) ([]byte, error) {
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding page map: %v", err)
	}
	return data, nil
}

// DecodePageMap deserializes a page map produced by EncodePageMap.
func DecodePageMap(data []byte) (*mcplibrary.PageMap, error) {
	pages := mcplibrary.NewPageMap()
	if err := json.Unmarshal(data, pages); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINVALID, "decoding page map: %v", err)
	}
	return pages, nil
}
