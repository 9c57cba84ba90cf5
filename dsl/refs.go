package dsl

import (
	mongoskema "github.com/reoring/mongoskema"
)

// ObjectID creates a foreign-reference identifier node pointing at the named
// entity. When the extension registry is active (Register), the node carries
// an ObjectId format check.
func ObjectID(ref string) *refNode {
	n := &refNode{kind: mongoskema.KindObjectID}
	n.meta.Ref = ref
	if c, ok := formatCheckFor(mongoskema.KindObjectID); ok {
		n.meta = n.meta.Derive(c)
	}
	return n
}

// UUID creates a foreign-reference UUID node pointing at the named entity.
// When the extension registry is active (Register), the node carries a UUID
// format check.
func UUID(ref string) *refNode {
	n := &refNode{kind: mongoskema.KindUUID}
	n.meta.Ref = ref
	if c, ok := formatCheckFor(mongoskema.KindUUID); ok {
		n.meta = n.meta.Derive(c)
	}
	return n
}

type refNode struct {
	kind mongoskema.Kind
	meta mongoskema.Meta
}

func (r *refNode) Kind() mongoskema.Kind { return r.kind }
func (r *refNode) Meta() mongoskema.Meta { return r.meta }

// RefPath switches the reference to a dynamic path-resolved one.
func (r *refNode) RefPath(path string) *refNode {
	r.meta.RefPath = path
	r.meta.Ref = ""
	return r
}

func (r *refNode) Unique() *refNode {
	r.meta.Unique = true
	return r
}

func (r *refNode) Sparse() *refNode {
	r.meta.Sparse = true
	return r
}

func (r *refNode) Optional() *optionalNode { return Optional(r) }
func (r *refNode) Nullable() *nullableNode { return Nullable(r) }
func (r *refNode) markAugmented()          { r.meta.Augmented = true }
