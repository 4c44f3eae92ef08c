package normalize

import (
	"time"
)

// NodeKind tags the variants of the itinerary tree.
type NodeKind int

const (
	KindItinerary NodeKind = iota
	KindLegList
	KindLeg
	KindScalar
)

// Node is one node of the itinerary tree. Scalar nodes carry a field name
// and a value; itinerary, leg-list and leg nodes carry children.
type Node struct {
	Kind     NodeKind
	Name     string
	Value    any
	Children []*Node
}

// Context carries the state shared by all rewrite rules of one run.
type Context struct {
	Location *time.Location
}

// Rule is one named rewrite step. It fires on every node of the kind it
// declares; matching on field names happens inside Apply.
type Rule struct {
	Name  string
	Kind  NodeKind
	Apply func(n *Node, ctx *Context)
}

// Walk applies rules to the tree in post-order: children are rewritten
// before their parent, so list-level rules (departureWait) see legs whose
// epoch fields have already been renamed and converted.
func Walk(n *Node, ctx *Context, rules []Rule) {
	for _, c := range n.Children {
		Walk(c, ctx, rules)
	}
	for _, r := range rules {
		if r.Kind == n.Kind {
			r.Apply(n, ctx)
		}
	}
}

// BuildItineraryTree builds the tree for one decoded itinerary object.
// The "legs" array becomes a leg-list node; nested objects inside a leg
// (from, to, legGeometry) are flattened into scalar children with dotted
// wire names, mirroring the flattened column names of the raw response.
func BuildItineraryTree(raw map[string]any) *Node {
	it := &Node{Kind: KindItinerary}
	for k, v := range raw {
		if k == "legs" {
			if legs, ok := v.([]any); ok {
				it.Children = append(it.Children, buildLegList(legs))
			}
			continue
		}
		it.Children = append(it.Children, &Node{Kind: KindScalar, Name: k, Value: v})
	}
	return it
}

func buildLegList(legs []any) *Node {
	list := &Node{Kind: KindLegList, Name: "legs"}
	for _, l := range legs {
		m, ok := l.(map[string]any)
		if !ok {
			continue
		}
		leg := &Node{Kind: KindLeg}
		flattenInto(leg, "", m)
		list.Children = append(list.Children, leg)
	}
	return list
}

// flattenInto adds the fields of m as scalar children of n, joining nested
// object keys with dots ("from.stopId"). Arrays stay opaque scalars; the
// canonical projection never selects them.
func flattenInto(n *Node, prefix string, m map[string]any) {
	for k, v := range m {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(n, name, nested)
			continue
		}
		n.Children = append(n.Children, &Node{Kind: KindScalar, Name: name, Value: v})
	}
}

// Scalar returns the scalar child with the given name, or nil.
func (n *Node) Scalar(name string) *Node {
	for _, c := range n.Children {
		if c.Kind == KindScalar && c.Name == name {
			return c
		}
	}
	return nil
}

// Float returns the scalar child's value as a float64. JSON numbers decode
// as float64, so this covers both the epoch and duration fields.
func (n *Node) Float(name string) (float64, bool) {
	s := n.Scalar(name)
	if s == nil {
		return 0, false
	}
	f, ok := s.Value.(float64)
	return f, ok
}

// Time returns the scalar child's value as a time.Time, after the epoch
// conversion rule has run.
func (n *Node) Time(name string) (time.Time, bool) {
	s := n.Scalar(name)
	if s == nil {
		return time.Time{}, false
	}
	t, ok := s.Value.(time.Time)
	return t, ok
}

// String returns the scalar child's value as a string.
func (n *Node) String(name string) (string, bool) {
	s := n.Scalar(name)
	if s == nil {
		return "", false
	}
	v, ok := s.Value.(string)
	return v, ok
}

// SetScalar replaces the named scalar's value, adding the scalar when it
// does not exist yet.
func (n *Node) SetScalar(name string, v any) {
	if s := n.Scalar(name); s != nil {
		s.Value = v
		return
	}
	n.Children = append(n.Children, &Node{Kind: KindScalar, Name: name, Value: v})
}

// LegList returns the leg-list child of an itinerary node, or nil.
func (n *Node) LegList() *Node {
	for _, c := range n.Children {
		if c.Kind == KindLegList {
			return c
		}
	}
	return nil
}
