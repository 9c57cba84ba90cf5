// Package docschema models the document-database schema shape produced by the
// translator: field descriptors, an ordered definition tree, and a schema
// constructor. Keep the descriptor small and extend incrementally.
package docschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Type is the storage type tag of a field descriptor.
type Type string

const (
	String   Type = "String"
	Number   Type = "Number"
	Boolean  Type = "Boolean"
	Date     Type = "Date"
	Array    Type = "Array"
	Map      Type = "Map"
	Mixed    Type = "Mixed"
	ObjectID Type = "ObjectId"
	UUID     Type = "UUID"
)

// Validator is a custom-validator record: a predicate over the stored value and
// the failure message reported when it rejects.
type Validator struct {
	Fn      func(any) bool
	Message string
}

// DefaultProvider yields a field's default value; a provider returning nil
// resolves the default to null.
type DefaultProvider func() any

// Field is one node of the output document-schema tree. Exactly one of the
// composite slots is set for composite descriptors: Fields for objects, Item
// for arrays, Of for maps; primitives leave all three nil.
type Field struct {
	Type     Type
	Required bool
	Default  DefaultProvider

	Unique bool
	Sparse bool

	Min       *float64
	Max       *float64
	MinLength *int
	MaxLength *int

	Enum     []string
	Validate *Validator

	Ref     string
	RefPath string

	Item   *Field      // array element descriptor
	Of     *Field      // map value descriptor
	Fields *Definition // nested object descriptor map
}

// MarshalJSON renders the descriptor in the document-mapping wire shape:
// nested objects marshal as a plain map, arrays as {"type":[elem]}, maps as
// {"type":"Map","of":...}. Default providers are resolved at marshal time;
// validator predicates are not serializable and emit only their message.
func (f *Field) MarshalJSON() ([]byte, error) {
	if f.Fields != nil {
		return json.Marshal(f.Fields)
	}
	m := map[string]any{"required": f.Required}
	switch {
	case f.Item != nil:
		m["type"] = []*Field{f.Item}
	case f.Of != nil:
		m["type"] = string(Map)
		m["of"] = f.Of
	default:
		m["type"] = string(f.Type)
	}
	if f.Default != nil {
		m["default"] = f.Default()
	}
	if f.Unique {
		m["unique"] = true
	}
	if f.Sparse {
		m["sparse"] = true
	}
	if f.Min != nil {
		m["min"] = *f.Min
	}
	if f.Max != nil {
		m["max"] = *f.Max
	}
	if f.MinLength != nil {
		m["minLength"] = *f.MinLength
	}
	if f.MaxLength != nil {
		m["maxLength"] = *f.MaxLength
	}
	if len(f.Enum) > 0 {
		m["enum"] = f.Enum
	}
	if f.Validate != nil {
		m["validate"] = map[string]any{"message": f.Validate.Message}
	}
	if f.Ref != "" {
		m["ref"] = f.Ref
	}
	if f.RefPath != "" {
		m["refPath"] = f.RefPath
	}
	return json.Marshal(m)
}

// Definition is an insertion-ordered mapping from field name to descriptor.
// Declaration order is preserved for readability of the emitted schema; it is
// not a correctness requirement.
type Definition struct {
	keys   []string
	fields map[string]*Field
}

// NewDefinition returns an empty definition.
func NewDefinition() *Definition {
	return &Definition{fields: map[string]*Field{}}
}

// Set registers a field descriptor under name, keeping first-seen order when a
// name is set twice.
func (d *Definition) Set(name string, f *Field) *Definition {
	if d.fields == nil {
		d.fields = map[string]*Field{}
	}
	if _, exists := d.fields[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.fields[name] = f
	return d
}

// Get returns the descriptor registered under name.
func (d *Definition) Get(name string) (*Field, bool) {
	f, ok := d.fields[name]
	return f, ok
}

// Keys returns field names in declaration order.
func (d *Definition) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len reports the number of registered fields.
func (d *Definition) Len() int { return len(d.keys) }

// MarshalJSON emits the definition as a JSON object in declaration order.
func (d *Definition) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(d.fields[k])
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
