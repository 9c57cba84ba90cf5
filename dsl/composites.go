package dsl

import (
	mongoskema "github.com/reoring/mongoskema"
)

// Object creates a new object node builder. Field declaration order is
// preserved into the translated definition.
func Object() *objectNode {
	return &objectNode{fields: map[string]mongoskema.Node{}}
}

type objectNode struct {
	keys   []string
	fields map[string]mongoskema.Node
}

func (o *objectNode) Kind() mongoskema.Kind { return mongoskema.KindObject }

// Field registers a member node. Re-registering a name replaces the node but
// keeps its original position.
func (o *objectNode) Field(name string, n mongoskema.Node) *objectNode {
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = n
	return o
}

// Keys returns member names in declaration order.
func (o *objectNode) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// FieldNode returns the member node registered under name, or nil.
func (o *objectNode) FieldNode(name string) mongoskema.Node { return o.fields[name] }

func (o *objectNode) Optional() *optionalNode { return Optional(o) }
func (o *objectNode) Nullable() *nullableNode { return Nullable(o) }

// Array creates an array node over the given element node.
func Array(elem mongoskema.Node) *arrayNode { return &arrayNode{elem: elem} }

type arrayNode struct {
	elem mongoskema.Node
}

func (a *arrayNode) Kind() mongoskema.Kind      { return mongoskema.KindArray }
func (a *arrayNode) Elem() mongoskema.Node      { return a.elem }
func (a *arrayNode) Optional() *optionalNode    { return Optional(a) }
func (a *arrayNode) Nullable() *nullableNode    { return Nullable(a) }
func (a *arrayNode) Default(v any) *defaultNode { return Default(a, v) }

// MapOf creates a map node over the given value node. Map keys are implicitly
// string-like.
func MapOf(value mongoskema.Node) *mapNode { return &mapNode{value: value} }

type mapNode struct {
	value mongoskema.Node
}

func (m *mapNode) Kind() mongoskema.Kind   { return mongoskema.KindMap }
func (m *mapNode) Value() mongoskema.Node  { return m.value }
func (m *mapNode) Optional() *optionalNode { return Optional(m) }
func (m *mapNode) Nullable() *nullableNode { return Nullable(m) }

// Union creates a union node over the given options in declaration order.
// For storage-shape purposes only the first option is translated; later
// options are a documented limitation of the translation, not of parsing.
func Union(options ...mongoskema.Node) *unionNode { return &unionNode{options: options} }

type unionNode struct {
	options []mongoskema.Node
}

func (u *unionNode) Kind() mongoskema.Kind { return mongoskema.KindUnion }

func (u *unionNode) Options() []mongoskema.Node {
	out := make([]mongoskema.Node, len(u.options))
	copy(out, u.options)
	return out
}

func (u *unionNode) Optional() *optionalNode { return Optional(u) }
func (u *unionNode) Nullable() *nullableNode { return Nullable(u) }

// Enum creates an enum node over the given literal values. Enums are validated
// against their literal set only and never combine with a custom validator.
func Enum(values ...string) *enumNode { return &enumNode{values: values} }

type enumNode struct {
	values []string
}

func (e *enumNode) Kind() mongoskema.Kind { return mongoskema.KindEnum }

func (e *enumNode) Values() []string {
	out := make([]string, len(e.values))
	copy(out, e.values)
	return out
}

func (e *enumNode) Optional() *optionalNode    { return Optional(e) }
func (e *enumNode) Nullable() *nullableNode    { return Nullable(e) }
func (e *enumNode) Default(v any) *defaultNode { return Default(e, v) }

// Any creates an open/untyped passthrough node.
func Any() *anyNode { return &anyNode{} }

type anyNode struct{}

func (a *anyNode) Kind() mongoskema.Kind      { return mongoskema.KindAny }
func (a *anyNode) Optional() *optionalNode    { return Optional(a) }
func (a *anyNode) Nullable() *nullableNode    { return Nullable(a) }
func (a *anyNode) Default(v any) *defaultNode { return Default(a, v) }
