package dsl

import (
	"fmt"

	mongoskema "github.com/reoring/mongoskema"
)

// CheckOpt carries an explicit failure message (and optional rule name) for a
// refinement, as an alternative to a plain string message.
type CheckOpt struct {
	Message string
	Name    string
}

// checkFrom builds the custom-validator record for a refinement. The message
// argument accepts a plain string or a CheckOpt; anything else is stringified.
func checkFrom(name string, pred func(any) bool, msg any) mongoskema.Check {
	c := mongoskema.Check{Name: name, Predicate: pred}
	switch m := msg.(type) {
	case string:
		c.Message = m
	case CheckOpt:
		c.Message = m.Message
		if m.Name != "" {
			c.Name = m.Name
		}
	case nil:
		c.Message = "refinement failed"
	default:
		c.Message = fmt.Sprint(m)
	}
	if c.Message == "" {
		c.Message = "refinement failed"
	}
	return c
}

// augmentable is implemented by every node kind that supports refinement
// derivation.
type augmentable interface {
	markAugmented()
}

// Augment marks a node's refinement chain as enriched so a later pass does not
// enrich it again. Nodes that do not support derivation are returned unchanged;
// that is a no-op, not an error. Augmenting never alters a node's accept/reject
// behavior, only retrievable metadata.
func Augment(n mongoskema.Node) mongoskema.Node {
	if mc, ok := n.(mongoskema.MetaCarrier); ok && mc.Meta().Augmented {
		return n
	}
	if a, ok := n.(augmentable); ok {
		a.markAugmented()
	}
	return n
}
