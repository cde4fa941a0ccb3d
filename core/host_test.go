package core

import "testing"

func TestHostProfiles(t *testing.T) {
	typed := Element{Type: "div", Props: map[string]any{"id": "a"}}
	component := Element{Type: func() {}, Props: map[string]any{"id": "b"}}
	named := Element{NodeName: "li", Attributes: map[string]any{"id": "c"}}

	if !IsDOMElement(TypeHost{}, typed) || IsDOMElement(TypeHost{}, component) || IsDOMElement(TypeHost{}, named) {
		t.Fatalf("TypeHost should only accept string types")
	}
	if got := GetElementProps(TypeHost{}, typed)["id"]; got != "a" {
		t.Fatalf("TypeHost props id = %v", got)
	}

	if !IsDOMElement(NodeNameHost{}, named) || IsDOMElement(NodeNameHost{}, typed) {
		t.Fatalf("NodeNameHost should only accept string node names")
	}
	if got := GetElementProps(NodeNameHost{}, named)["id"]; got != "c" {
		t.Fatalf("NodeNameHost props id = %v", got)
	}
}

type treeNode struct {
	name     string
	children []*treeNode
}

func (n *treeNode) Contains(child Node) bool {
	for _, c := range n.children {
		if Node(c) == child || c.Contains(child) {
			return true
		}
	}
	return false
}

func TestIsOrContainsNode(t *testing.T) {
	leaf := &treeNode{name: "leaf"}
	mid := &treeNode{name: "mid", children: []*treeNode{leaf}}
	root := &treeNode{name: "root", children: []*treeNode{mid}}
	other := &treeNode{name: "other"}

	cases := []struct {
		name          string
		parent, child Node
		want          bool
	}{
		{"same node", root, root, true},
		{"descendant", root, leaf, true},
		{"unrelated", root, other, false},
		{"ancestor is not contained", leaf, root, false},
		{"nil parent", nil, leaf, false},
		{"both nil", nil, nil, true},
		{"equal values", "plain", "plain", true},
		{"uncomparable values", []int{1}, []int{1}, false},
	}
	for _, tc := range cases {
		if got := IsOrContainsNode(tc.parent, tc.child); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
