package dsl

import (
	mongoskema "github.com/reoring/mongoskema"
)

// Optional wraps a node so the translated field is not required. It supplies
// no value of its own: any active default provider is cleared by translation.
func Optional(n mongoskema.Node) *optionalNode { return &optionalNode{inner: n} }

type optionalNode struct {
	inner mongoskema.Node
	meta  mongoskema.Meta
}

func (o *optionalNode) Kind() mongoskema.Kind  { return mongoskema.KindOptional }
func (o *optionalNode) Inner() mongoskema.Node { return o.inner }
func (o *optionalNode) Meta() mongoskema.Meta  { return o.meta }

// Refine attaches a custom-validator record at the wrapper level; translation
// threads it down to the innermost primitive descriptor.
func (o *optionalNode) Refine(pred func(any) bool, msg any) *optionalNode {
	out := *o
	out.meta = o.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (o *optionalNode) Nullable() *nullableNode    { return Nullable(o) }
func (o *optionalNode) Default(v any) *defaultNode { return Default(o, v) }
func (o *optionalNode) markAugmented()             { o.meta.Augmented = true }

// Nullable wraps a node so the translated field is not required and, absent an
// explicit default, resolves to null instead.
func Nullable(n mongoskema.Node) *nullableNode { return &nullableNode{inner: n} }

type nullableNode struct {
	inner mongoskema.Node
	meta  mongoskema.Meta
}

func (nl *nullableNode) Kind() mongoskema.Kind  { return mongoskema.KindNullable }
func (nl *nullableNode) Inner() mongoskema.Node { return nl.inner }
func (nl *nullableNode) Meta() mongoskema.Meta  { return nl.meta }

func (nl *nullableNode) Refine(pred func(any) bool, msg any) *nullableNode {
	out := *nl
	out.meta = nl.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (nl *nullableNode) Optional() *optionalNode    { return Optional(nl) }
func (nl *nullableNode) Default(v any) *defaultNode { return Default(nl, v) }
func (nl *nullableNode) markAugmented()             { nl.meta.Augmented = true }

// Default wraps a node with a configured default value. The translated field
// keeps the required flag inherited from further-out wrapping.
func Default(n mongoskema.Node, v any) *defaultNode {
	return &defaultNode{inner: n, provider: func() any { return v }}
}

// DefaultFunc wraps a node with a default computed at resolution time.
func DefaultFunc(n mongoskema.Node, f mongoskema.DefaultProvider) *defaultNode {
	return &defaultNode{inner: n, provider: f}
}

type defaultNode struct {
	inner    mongoskema.Node
	provider mongoskema.DefaultProvider
	meta     mongoskema.Meta
}

func (d *defaultNode) Kind() mongoskema.Kind                       { return mongoskema.KindDefault }
func (d *defaultNode) Inner() mongoskema.Node                      { return d.inner }
func (d *defaultNode) DefaultProvider() mongoskema.DefaultProvider { return d.provider }
func (d *defaultNode) Meta() mongoskema.Meta                       { return d.meta }

func (d *defaultNode) Refine(pred func(any) bool, msg any) *defaultNode {
	out := *d
	out.meta = d.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (d *defaultNode) Optional() *optionalNode { return Optional(d) }
func (d *defaultNode) Nullable() *nullableNode { return Nullable(d) }
func (d *defaultNode) markAugmented()          { d.meta.Augmented = true }
