package domain

import (
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/solint/internal/model"
)

// RootKey is the parent reported for top-level keys.
const RootKey = "root"

// TreeNode wraps one mapping key of a document with the key that encloses it.
type TreeNode struct {
	Key    string
	Parent string // enclosing mapping key, or RootKey
	Line   int    // 1-based position of the key
	Column int

	// Value holds the decoded value when it is not a mapping.
	Value any
	// Children is the sub-tree when the value is a mapping.
	Children *Tree
	// Elements holds the sub-trees of mapping items inside a sequence value.
	// Their keys take this node's key as parent.
	Elements []*Tree

	parent *TreeNode
}

// TopLevel reports whether the key sits directly under the document root.
func (n *TreeNode) TopLevel() bool {
	return n.parent == nil
}

// ParentNode returns the enclosing node, nil for top-level keys.
func (n *TreeNode) ParentNode() *TreeNode {
	return n.parent
}

// Tree is an ordered, parent-annotated projection of a parsed mapping.
type Tree struct {
	keys  []string
	nodes map[string]*TreeNode
}

func newTree() *Tree {
	return &Tree{nodes: make(map[string]*TreeNode)}
}

// Len returns the number of keys at this level.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the keys at this level in document order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}

	return append([]string(nil), t.keys...)
}

// Get returns the node for key at this level only.
func (t *Tree) Get(key string) (*TreeNode, bool) {
	if t == nil {
		return nil, false
	}

	n, ok := t.nodes[key]

	return n, ok
}

// Find searches for key depth-first in document order, checking the keys of
// each level before descending into it.
func (t *Tree) Find(key string) (*TreeNode, bool) {
	if t == nil {
		return nil, false
	}

	if n, ok := t.nodes[key]; ok {
		return n, true
	}

	for _, k := range t.keys {
		n := t.nodes[k]

		if found, ok := n.Children.Find(key); ok {
			return found, true
		}

		for _, el := range n.Elements {
			if found, ok := el.Find(key); ok {
				return found, true
			}
		}
	}

	return nil, false
}

// Walk visits every node in document order, parents before children. It
// stops when fn returns false.
func (t *Tree) Walk(fn func(n *TreeNode, depth int) bool) {
	t.walk(fn, 0)
}

func (t *Tree) walk(fn func(n *TreeNode, depth int) bool, depth int) bool {
	if t == nil {
		return true
	}

	for _, k := range t.keys {
		n := t.nodes[k]
		if !fn(n, depth) {
			return false
		}

		if !n.Children.walk(fn, depth+1) {
			return false
		}

		for _, el := range n.Elements {
			if !el.walk(fn, depth+1) {
				return false
			}
		}
	}

	return true
}

// Entries flattens the tree for display.
func (t *Tree) Entries() []m.TreeEntry {
	var entries []m.TreeEntry

	t.Walk(func(n *TreeNode, depth int) bool {
		entries = append(entries, m.TreeEntry{
			Depth:  depth,
			Key:    n.Key,
			Parent: n.Parent,
			Line:   n.Line,
			Column: n.Column,
			Kind:   nodeKind(n),
		})

		return true
	})

	return entries
}

func nodeKind(n *TreeNode) string {
	switch {
	case n.Children != nil:
		return "mapping"
	case n.Elements != nil:
		return "sequence"
	}

	switch n.Value.(type) {
	case []any:
		return "sequence"
	case nil:
		return "null"
	default:
		return "scalar"
	}
}

// BuildTree wraps every mapping key reachable from node with its enclosing
// key. A document whose root is not a mapping yields an empty tree.
func BuildTree(node *yaml.Node) *Tree {
	b := treeBuilder{active: make(map[*yaml.Node]struct{})}

	root := b.resolve(node)
	if root != nil && root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = b.resolve(root.Content[0])
	}

	if root == nil || root.Kind != yaml.MappingNode {
		return newTree()
	}

	return b.mapping(root, nil)
}

type treeBuilder struct {
	// active holds aliased nodes on the current path; re-entering one is cut.
	active map[*yaml.Node]struct{}
}

func (b *treeBuilder) resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	return node
}

func (b *treeBuilder) mapping(node *yaml.Node, parent *TreeNode) *Tree {
	tree := newTree()

	if _, seen := b.active[node]; seen {
		return tree
	}

	b.active[node] = struct{}{}
	defer delete(b.active, node)

	parentKey := RootKey
	if parent != nil {
		parentKey = parent.Key
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := b.resolve(node.Content[i])
		valueNode := b.resolve(node.Content[i+1])

		if keyNode == nil {
			continue
		}

		n := &TreeNode{
			Key:    keyNode.Value,
			Parent: parentKey,
			Line:   keyNode.Line,
			Column: keyNode.Column,
			parent: parent,
		}

		switch {
		case valueNode == nil:
		case valueNode.Kind == yaml.MappingNode:
			n.Children = b.mapping(valueNode, n)
		case valueNode.Kind == yaml.SequenceNode:
			n.Value = decodeValue(valueNode)
			n.Elements = b.sequence(valueNode, n)
		default:
			n.Value = decodeValue(valueNode)
		}

		if _, dup := tree.nodes[n.Key]; !dup {
			tree.keys = append(tree.keys, n.Key)
		}

		tree.nodes[n.Key] = n
	}

	return tree
}

func (b *treeBuilder) sequence(node *yaml.Node, owner *TreeNode) []*Tree {
	if _, seen := b.active[node]; seen {
		return nil
	}

	b.active[node] = struct{}{}
	defer delete(b.active, node)

	var trees []*Tree

	for _, item := range node.Content {
		item = b.resolve(item)
		if item == nil {
			continue
		}

		switch item.Kind {
		case yaml.MappingNode:
			trees = append(trees, b.mapping(item, owner))
		case yaml.SequenceNode:
			trees = append(trees, b.sequence(item, owner)...)
		}
	}

	return trees
}

func decodeValue(node *yaml.Node) any {
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}

	return v
}
