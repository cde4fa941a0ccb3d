package core

// Element is a rendered-node description as produced by a host rendering environment.
// Which fields are populated depends on the host.
type Element struct {
	Type       any
	NodeName   any
	Props      map[string]any
	Attributes map[string]any
}

// HostAdapter answers questions about elements for one rendering environment. Callers pick
// the adapter for the environment they run in; it is never inferred from element shape.
type HostAdapter interface {
	IsHostElement(el Element) bool
	ReadProps(el Element) map[string]any
}

// TypeHost is the profile where host elements carry a string Type and their props in Props.
type TypeHost struct{}

func (TypeHost) IsHostElement(el Element) bool {
	_, ok := el.Type.(string)
	return ok
}

func (TypeHost) ReadProps(el Element) map[string]any { return el.Props }

// NodeNameHost is the profile where host elements carry a string NodeName and their props in
// Attributes.
type NodeNameHost struct{}

func (NodeNameHost) IsHostElement(el Element) bool {
	_, ok := el.NodeName.(string)
	return ok
}

func (NodeNameHost) ReadProps(el Element) map[string]any { return el.Attributes }

// IsDOMElement reports whether el is a host (non-component) element under host.
func IsDOMElement(host HostAdapter, el Element) bool {
	return host.IsHostElement(el)
}

// GetElementProps returns the props of el under host.
func GetElementProps(host HostAdapter, el Element) map[string]any {
	return host.ReadProps(el)
}

// Node is a position in a tree of rendered nodes.
type Node any

// Container is a node that can tell whether another node is inside it.
type Container interface {
	Contains(child Node) bool
}

// IsOrContainsNode reports whether parent is child or contains it.
func IsOrContainsNode(parent, child Node) bool {
	if sameNode(parent, child) {
		return true
	}
	if parent == nil {
		return false
	}
	c, ok := parent.(Container)
	return ok && c.Contains(child)
}

func sameNode(a, b Node) (same bool) {
	defer func() {
		// uncomparable dynamic types are never the same node
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
