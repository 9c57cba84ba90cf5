package mongoskema

import (
	"fmt"

	"github.com/reoring/mongoskema/docschema"
)

// Definition translates a root object node into the document-schema definition
// shape. Every member maps to exactly one key of the output; a failing member
// aborts the whole call rather than emitting a schema with a hole in it.
func Definition(root ObjectNode) (*docschema.Definition, error) {
	if root == nil {
		return nil, Issues{{Path: "/", Code: CodeUnsupportedType, Message: "nil root object"}}
	}
	return translateObject(root)
}

// SchemaOf translates a root object node and constructs a ready-to-use schema
// via the document-mapping constructor. opts is passthrough configuration
// forwarded verbatim.
func SchemaOf(root ObjectNode, opts docschema.Options) (*docschema.Schema, error) {
	def, err := Definition(root)
	if err != nil {
		return nil, err
	}
	return docschema.New(def, opts), nil
}

func translateObject(o ObjectNode) (*docschema.Definition, error) {
	def := docschema.NewDefinition()
	for _, k := range o.Keys() {
		// object members carry their own required/default context
		f, err := translateField(o.FieldNode(k), true, nil, nil)
		if err != nil {
			return nil, rebaseIssues("/"+k, err)
		}
		def.Set(k, f)
	}
	return def, nil
}

// translateField dispatches on classified kind, most specific before most
// general: extension identifier kinds are recognized before generic library
// kinds. required, def and active are the context threaded through wrapper
// unwrapping.
func translateField(n Node, required bool, def DefaultProvider, active *Check) (*docschema.Field, error) {
	switch Classify(n) {
	case KindObjectID, KindUUID:
		return refField(n, required, def), nil

	case KindObject:
		nested, err := translateObject(n.(ObjectNode))
		if err != nil {
			return nil, err
		}
		return &docschema.Field{Fields: nested, Required: required}, nil

	case KindString:
		return primitiveField(docschema.String, n, required, def, active), nil
	case KindNumber:
		return primitiveField(docschema.Number, n, required, def, active), nil
	case KindDate:
		return primitiveField(docschema.Date, n, required, def, active), nil

	case KindEnum:
		f := &docschema.Field{Type: docschema.String, Required: required, Enum: n.(EnumNode).Values()}
		f.Default = provider(def)
		return f, nil

	case KindBool:
		f := &docschema.Field{Type: docschema.Boolean, Required: required}
		f.Default = provider(def)
		return f, nil

	case KindArray:
		a := n.(ArrayNode)
		elem, err := translateField(a.Elem(), true, nil, nil)
		if err != nil {
			iss, _ := AsIssues(err)
			out := Issues{{
				Path:    "/",
				Code:    CodeUnsupportedArrayElement,
				Message: "array element translation failed",
				Params:  map[string]any{"kind": Classify(a.Elem()).String()},
			}}
			return nil, append(out, iss...)
		}
		f := &docschema.Field{Type: docschema.Array, Item: elem, Required: required}
		f.Default = provider(def)
		return f, nil

	case KindDefault:
		dw := n.(DefaultWrapper)
		return translateField(dw.Inner(), required, DefaultProvider(dw.DefaultProvider()), carryCheck(n, active))

	case KindOptional:
		// optional alone supplies no value: the default provider is cleared
		return translateField(n.(Wrapper).Inner(), false, nil, carryCheck(n, active))

	case KindNullable:
		d := def
		if d == nil {
			d = NullProvider
		}
		return translateField(n.(Wrapper).Inner(), false, d, carryCheck(n, active))

	case KindUnion:
		opts := n.(UnionNode).Options()
		if len(opts) == 0 {
			return nil, Issues{{Path: "/", Code: CodeUnsupportedType, Message: "union with no options"}}
		}
		// first-option policy: later options are ignored for storage shape
		return translateField(opts[0], required, def, carryCheck(n, active))

	case KindAny:
		f := &docschema.Field{Type: docschema.Mixed, Required: required}
		f.Default = provider(def)
		return f, nil

	case KindMap:
		m := n.(MapNode)
		inner, err := translateField(m.Value(), true, nil, nil)
		if err != nil {
			iss, _ := AsIssues(err)
			out := Issues{{
				Path:    "/",
				Code:    CodeUnsupportedMapValue,
				Message: "map value translation failed",
				Params:  map[string]any{"kind": Classify(m.Value()).String()},
			}}
			return nil, append(out, iss...)
		}
		f := &docschema.Field{Type: docschema.Map, Of: inner, Required: required}
		f.Default = provider(def)
		return f, nil

	case KindPipe:
		p := n.(PipeNode)
		side, other := p.In(), p.Out()
		if p.Preprocess() {
			// raw input is coerced first; the output side is what gets persisted
			side, other = p.Out(), p.In()
		}
		f, err := translateField(side, required, def, carryCheck(n, active))
		if err != nil {
			return nil, err
		}
		for _, m := range []Meta{metaOf(n), metaOf(other)} {
			if m.Unique {
				f.Unique = true
			}
			if m.Sparse {
				f.Sparse = true
			}
		}
		return f, nil
	}

	return nil, Issues{{
		Path:    "/",
		Code:    CodeUnsupportedType,
		Message: "unsupported field type",
		Hint:    Classify(n).String(),
		Params:  map[string]any{"kind": Classify(n).String(), "node": fmt.Sprintf("%T", n)},
	}}
}

// refField emits a reference-type descriptor carrying ref/refPath/unique/sparse
// pulled from the node's extension attributes.
func refField(n Node, required bool, def DefaultProvider) *docschema.Field {
	m := metaOf(n)
	t := docschema.ObjectID
	if n.Kind() == KindUUID {
		t = docschema.UUID
	}
	f := &docschema.Field{
		Type:     t,
		Required: required,
		Ref:      m.Ref,
		RefPath:  m.RefPath,
		Unique:   m.Unique,
		Sparse:   m.Sparse,
	}
	f.Default = provider(def)
	if c, ok := m.LastCheck(); ok {
		f.Validate = &docschema.Validator{Fn: c.Predicate, Message: c.Message}
	}
	return f
}

// primitiveField emits a string/number/date descriptor with constraints read
// from the node, extension attributes from its metadata, and required/default/
// validator populated from both local node data and inherited context.
func primitiveField(t docschema.Type, n Node, required bool, def DefaultProvider, active *Check) *docschema.Field {
	m := metaOf(n)
	f := &docschema.Field{Type: t, Required: required, Unique: m.Unique, Sparse: m.Sparse}
	f.Default = provider(def)
	if sf, ok := n.(StringFacet); ok {
		f.MinLength, f.MaxLength = sf.LenBounds()
	}
	if nf, ok := n.(NumberFacet); ok {
		f.Min, f.Max = nf.Bounds()
	}
	c := active
	if c == nil {
		if lc, ok := m.LastCheck(); ok {
			c = &lc
		}
	}
	if c != nil {
		f.Validate = &docschema.Validator{Fn: c.Predicate, Message: c.Message}
	}
	return f
}

// carryCheck threads a custom-validator record through wrapper unwrapping so
// it survives to the innermost primitive descriptor. An already active check
// from an outer wrapper wins over one attached further in.
func carryCheck(n Node, active *Check) *Check {
	if active != nil {
		return active
	}
	if lc, ok := metaOf(n).LastCheck(); ok {
		return &lc
	}
	return nil
}

func provider(def DefaultProvider) docschema.DefaultProvider {
	if def == nil {
		return nil
	}
	return docschema.DefaultProvider(def)
}
