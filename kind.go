package mongoskema

// Kind is the classified semantic category of a schema node. The set is closed:
// every node constructed by the dsl package reports its kind by construction,
// and anything else classifies as KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindEnum
	KindObject
	KindArray
	KindMap
	KindUnion
	KindOptional
	KindNullable
	KindDefault
	KindAny
	KindPipe
	KindObjectID
	KindUUID
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindString:   "string",
	KindNumber:   "number",
	KindBool:     "bool",
	KindDate:     "date",
	KindEnum:     "enum",
	KindObject:   "object",
	KindArray:    "array",
	KindMap:      "map",
	KindUnion:    "union",
	KindOptional: "optional",
	KindNullable: "nullable",
	KindDefault:  "default",
	KindAny:      "any",
	KindPipe:     "pipe",
	KindObjectID: "objectId",
	KindUUID:     "uuid",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node is one node of the input validation-type tree. Concrete implementations
// live in the dsl package; the translator only sees these interfaces.
type Node interface {
	Kind() Kind
}

// Classify reports the kind of an arbitrary value. Values that are not nodes of
// this library classify as KindUnknown; callers must treat that as a hard
// failure, never as a silent default.
func Classify(v any) Kind {
	if n, ok := v.(Node); ok && n != nil {
		return n.Kind()
	}
	return KindUnknown
}

// MetaCarrier exposes the extension metadata attached to a node.
type MetaCarrier interface {
	Meta() Meta
}

// Wrapper is a modifier node containing exactly one inner node (optional,
// nullable).
type Wrapper interface {
	Node
	Inner() Node
}

// DefaultWrapper is a wrapper that supplies a default value provider for its
// inner node.
type DefaultWrapper interface {
	Node
	Inner() Node
	DefaultProvider() DefaultProvider
}

// ObjectNode is a composite node mapping field names to member nodes,
// preserving declaration order.
type ObjectNode interface {
	Node
	Keys() []string
	FieldNode(name string) Node
}

// ArrayNode contains a single element node.
type ArrayNode interface {
	Node
	Elem() Node
}

// MapNode contains a single value node; keys are implicitly string-like.
type MapNode interface {
	Node
	Value() Node
}

// UnionNode exposes the union's option list in declaration order.
type UnionNode interface {
	Node
	Options() []Node
}

// EnumNode exposes the literal value set of an enum node.
type EnumNode interface {
	Node
	Values() []string
}

// StringFacet exposes length constraints of a string-like node.
type StringFacet interface {
	LenBounds() (min, max *int)
}

// NumberFacet exposes numeric range constraints of a number node.
type NumberFacet interface {
	Bounds() (min, max *float64)
}

// PipeNode is a transform node with an input side and an output side.
// Preprocess pipes coerce raw input before the real type applies; transform
// pipes coerce the real type into a derived output.
type PipeNode interface {
	Node
	In() Node
	Out() Node
	Preprocess() bool
}

// RefNode is a foreign-identifier node (ObjectID or UUID) tagged with reference
// metadata.
type RefNode interface {
	Node
	MetaCarrier
}
