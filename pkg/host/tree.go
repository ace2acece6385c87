package host

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

type node struct {
	name     string
	children map[string]*node
	file     bool
}

// PrintTree prints slash separated paths as a directory tree under root.
func PrintTree(w io.Writer, root string, paths []string) {
	top := &node{children: map[string]*node{}}
	for _, p := range paths {
		cur := top
		parts := strings.Split(path.Clean(p), "/")
		for i, part := range parts {
			child, ok := cur.children[part]
			if !ok {
				child = &node{name: part, children: map[string]*node{}}
				cur.children[part] = child
			}
			if i == len(parts)-1 {
				child.file = true
			}
			cur = child
		}
	}

	fmt.Fprintf(w, "📁 %s/\n", root)
	printNode(w, top, "")
}

func printNode(w io.Writer, n *node, prefix string) {
	entries := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		entries = append(entries, c)
	}

	// directories first, then by name
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].file != entries[j].file {
			return !entries[i].file
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		isLast := i == len(entries)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		if !entry.file {
			fmt.Fprintf(w, "%s%s📁 %s/\n", prefix, connector, entry.name)
			printNode(w, entry, childPrefix)
			continue
		}
		fmt.Fprintf(w, "%s%s%s %s\n", prefix, connector, emoji(entry.name), entry.name)
	}
}

func emoji(name string) string {
	switch path.Ext(name) {
	case ".py":
		return "🐍"
	case ".yaml", ".yml":
		return "⚙️"
	case ".md":
		return "📝"
	default:
		return "📄"
	}
}
