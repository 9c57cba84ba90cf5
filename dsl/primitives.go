package dsl

import (
	mongoskema "github.com/reoring/mongoskema"
)

// String returns a string node builder.
func String() *stringNode { return &stringNode{} }

// Number returns a number node builder.
func Number() *numberNode { return &numberNode{} }

// Bool returns a boolean node builder.
func Bool() *boolNode { return &boolNode{} }

// Date returns a date node builder.
func Date() *dateNode { return &dateNode{} }

type stringNode struct {
	meta           mongoskema.Meta
	minLen, maxLen *int
}

func (s *stringNode) Kind() mongoskema.Kind { return mongoskema.KindString }
func (s *stringNode) Meta() mongoskema.Meta { return s.meta }

// LenBounds reports the configured length constraints.
func (s *stringNode) LenBounds() (min, max *int) { return s.minLen, s.maxLen }

// Min sets the minimum length (inclusive).
func (s *stringNode) Min(n int) *stringNode {
	s.minLen = &n
	return s
}

// Max sets the maximum length (inclusive).
func (s *stringNode) Max(n int) *stringNode {
	s.maxLen = &n
	return s
}

// Unique marks the field as unique in the produced document schema.
func (s *stringNode) Unique() *stringNode {
	s.meta.Unique = true
	return s
}

// Sparse marks the unique index as sparse.
func (s *stringNode) Sparse() *stringNode {
	s.meta.Sparse = true
	return s
}

// Refine derives a stricter node carrying a custom-validator record. The
// message may be a plain string or a CheckOpt. Metadata already attached
// (unique/sparse/earlier checks) is copied forward onto the derived node.
func (s *stringNode) Refine(pred func(any) bool, msg any) *stringNode {
	out := *s
	out.meta = s.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (s *stringNode) Optional() *optionalNode    { return Optional(s) }
func (s *stringNode) Nullable() *nullableNode    { return Nullable(s) }
func (s *stringNode) Default(v any) *defaultNode { return Default(s, v) }
func (s *stringNode) markAugmented()             { s.meta.Augmented = true }

type numberNode struct {
	meta     mongoskema.Meta
	min, max *float64
}

func (n *numberNode) Kind() mongoskema.Kind { return mongoskema.KindNumber }
func (n *numberNode) Meta() mongoskema.Meta { return n.meta }

// Bounds reports the configured numeric range constraints.
func (n *numberNode) Bounds() (min, max *float64) { return n.min, n.max }

// Min sets the minimum value (inclusive).
func (n *numberNode) Min(f float64) *numberNode {
	n.min = &f
	return n
}

// Max sets the maximum value (inclusive).
func (n *numberNode) Max(f float64) *numberNode {
	n.max = &f
	return n
}

func (n *numberNode) Unique() *numberNode {
	n.meta.Unique = true
	return n
}

func (n *numberNode) Sparse() *numberNode {
	n.meta.Sparse = true
	return n
}

func (n *numberNode) Refine(pred func(any) bool, msg any) *numberNode {
	out := *n
	out.meta = n.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (n *numberNode) Optional() *optionalNode    { return Optional(n) }
func (n *numberNode) Nullable() *nullableNode    { return Nullable(n) }
func (n *numberNode) Default(v any) *defaultNode { return Default(n, v) }
func (n *numberNode) markAugmented()             { n.meta.Augmented = true }

type boolNode struct{}

func (b *boolNode) Kind() mongoskema.Kind      { return mongoskema.KindBool }
func (b *boolNode) Optional() *optionalNode    { return Optional(b) }
func (b *boolNode) Nullable() *nullableNode    { return Nullable(b) }
func (b *boolNode) Default(v any) *defaultNode { return Default(b, v) }

type dateNode struct {
	meta mongoskema.Meta
}

func (d *dateNode) Kind() mongoskema.Kind { return mongoskema.KindDate }
func (d *dateNode) Meta() mongoskema.Meta { return d.meta }

func (d *dateNode) Unique() *dateNode {
	d.meta.Unique = true
	return d
}

func (d *dateNode) Sparse() *dateNode {
	d.meta.Sparse = true
	return d
}

func (d *dateNode) Refine(pred func(any) bool, msg any) *dateNode {
	out := *d
	out.meta = d.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (d *dateNode) Optional() *optionalNode    { return Optional(d) }
func (d *dateNode) Nullable() *nullableNode    { return Nullable(d) }
func (d *dateNode) Default(v any) *defaultNode { return Default(d, v) }
func (d *dateNode) markAugmented()             { d.meta.Augmented = true }
