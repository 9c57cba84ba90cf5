package dsl

import (
	"time"

	mongoskema "github.com/reoring/mongoskema"
)

// Preprocess creates a pipe whose input side coerces raw values before the
// real type applies. The output side is what gets persisted, so translation
// follows the output node.
func Preprocess(in, out mongoskema.Node) *pipeNode {
	return &pipeNode{in: in, out: out, preprocess: true}
}

// Transform creates a pipe whose output side derives a value from the real
// type. The input side is what was actually stored before transformation, so
// translation follows the input node.
func Transform(in, out mongoskema.Node) *pipeNode {
	return &pipeNode{in: in, out: out}
}

type pipeNode struct {
	in, out    mongoskema.Node
	preprocess bool
	meta       mongoskema.Meta
}

func (p *pipeNode) Kind() mongoskema.Kind { return mongoskema.KindPipe }
func (p *pipeNode) In() mongoskema.Node   { return p.in }
func (p *pipeNode) Out() mongoskema.Node  { return p.out }
func (p *pipeNode) Preprocess() bool      { return p.preprocess }
func (p *pipeNode) Meta() mongoskema.Meta { return p.meta }

func (p *pipeNode) Refine(pred func(any) bool, msg any) *pipeNode {
	out := *p
	out.meta = p.meta.Derive(checkFrom("refine", pred, msg))
	return &out
}

func (p *pipeNode) Optional() *optionalNode    { return Optional(p) }
func (p *pipeNode) Nullable() *nullableNode    { return Nullable(p) }
func (p *pipeNode) Default(v any) *defaultNode { return Default(p, v) }
func (p *pipeNode) markAugmented()             { p.meta.Augmented = true }

// DateFromString returns a preprocess pipe accepting RFC3339 strings and
// persisting dates. The string side carries a format check so rejects keep a
// readable message.
func DateFromString() *pipeNode {
	in := String().Refine(func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	}, "invalid RFC3339 time")
	return Preprocess(in, Date())
}
