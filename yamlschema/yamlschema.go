// Package yamlschema imports declarative schema documents (YAML or JSON) into
// dsl node trees so a document schema can be defined as data and then run
// through the translator.
package yamlschema

import (
	"errors"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	mongoskema "github.com/reoring/mongoskema"
	"github.com/reoring/mongoskema/dsl"
)

// Options controls import behavior.
type Options struct {
	// Lenient maps unknown declared types to Any with a warning instead of
	// failing the import. The translator itself stays strict.
	Lenient bool
	// RegisterFormats installs the identifier format checks before building
	// reference nodes.
	RegisterFormats bool
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool  { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string { return d.ws }

func (d *simpleDiag) warnf(format string, args ...any) {
	d.ws = append(d.ws, fmt.Sprintf(format, args...))
}

// Import compiles a schema document into an object node. The input can be
// either a decoded map[string]any or raw JSON bytes. The document shape is:
//
//	name: users
//	order: [email, role, owner]
//	fields:
//	  email: { type: string, maxLength: 120, unique: true, required: true }
//	  role:  { type: enum, values: [admin, user], default: user }
//	  owner: { type: objectId, ref: User }
//
// Fields without an order entry are appended in ascending name order for
// deterministic output.
func Import(schema any, opts Options) (mongoskema.ObjectNode, Diag, error) {
	d := &simpleDiag{}
	if schema == nil {
		return nil, d, errors.New("yamlschema: nil schema")
	}
	if opts.RegisterFormats {
		dsl.Register()
	}
	var root map[string]any
	switch t := schema.(type) {
	case []byte:
		if err := json.Unmarshal(t, &root); err != nil {
			return nil, d, fmt.Errorf("yamlschema: invalid JSON: %w", err)
		}
	case map[string]any:
		root = t
	default:
		return nil, d, fmt.Errorf("yamlschema: unsupported input %T", schema)
	}
	obj, err := importObject(root, opts, d)
	return obj, d, err
}

func importObject(doc map[string]any, opts Options, d *simpleDiag) (mongoskema.ObjectNode, error) {
	fields, ok := doc["fields"].(map[string]any)
	if !ok {
		return nil, errors.New("yamlschema: document has no fields map")
	}
	b := dsl.Object()
	for _, name := range fieldOrder(doc, fields) {
		spec, _ := fields[name].(map[string]any)
		if spec == nil {
			d.warnf("field %q has no spec, treated as any", name)
			b.Field(name, dsl.Any().Optional())
			continue
		}
		n, err := importField(name, spec, opts, d)
		if err != nil {
			return nil, err
		}
		b.Field(name, n)
	}
	return b, nil
}

// fieldOrder honors an explicit order list when present and falls back to
// ascending name order; names listed but not declared are skipped.
func fieldOrder(doc map[string]any, fields map[string]any) []string {
	seen := map[string]bool{}
	var out []string
	if ord, ok := doc["order"].([]any); ok {
		for _, o := range ord {
			if s, ok := o.(string); ok {
				if _, declared := fields[s]; declared && !seen[s] {
					out = append(out, s)
					seen[s] = true
				}
			}
		}
	}
	var rest []string
	for k := range fields {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// importField builds the node for one declared field, applying wrapper
// declarations outside-in: default, then nullable, then optional.
func importField(name string, spec map[string]any, opts Options, d *simpleDiag) (mongoskema.Node, error) {
	n, err := importType(name, spec, opts, d)
	if err != nil {
		return nil, err
	}
	if dv, ok := spec["default"]; ok {
		n = dsl.Default(n, dv)
	}
	if nb, _ := spec["nullable"].(bool); nb {
		n = dsl.Nullable(n)
	}
	if req, _ := spec["required"].(bool); !req {
		if _, hasDefault := spec["default"]; !hasDefault {
			n = dsl.Optional(n)
		}
	}
	return n, nil
}

func importType(name string, spec map[string]any, opts Options, d *simpleDiag) (mongoskema.Node, error) {
	t, _ := spec["type"].(string)
	switch t {
	case "string":
		s := dsl.String()
		if v, ok := intOpt(spec, "minLength"); ok {
			s = s.Min(v)
		}
		if v, ok := intOpt(spec, "maxLength"); ok {
			s = s.Max(v)
		}
		if u, _ := spec["unique"].(bool); u {
			s = s.Unique()
		}
		if sp, _ := spec["sparse"].(bool); sp {
			s = s.Sparse()
		}
		return s, nil
	case "number", "integer":
		nb := dsl.Number()
		if v, ok := floatOpt(spec, "min"); ok {
			nb = nb.Min(v)
		}
		if v, ok := floatOpt(spec, "max"); ok {
			nb = nb.Max(v)
		}
		if u, _ := spec["unique"].(bool); u {
			nb = nb.Unique()
		}
		if sp, _ := spec["sparse"].(bool); sp {
			nb = nb.Sparse()
		}
		return nb, nil
	case "boolean":
		return dsl.Bool(), nil
	case "date":
		return dsl.Date(), nil
	case "enum":
		vals := stringsOpt(spec, "values")
		if len(vals) == 0 {
			return nil, fmt.Errorf("yamlschema: enum field %q has no values", name)
		}
		return dsl.Enum(vals...), nil
	case "array":
		item, _ := spec["items"].(map[string]any)
		if item == nil {
			return nil, fmt.Errorf("yamlschema: array field %q has no items", name)
		}
		elem, err := importType(name+".items", item, opts, d)
		if err != nil {
			return nil, err
		}
		return dsl.Array(elem), nil
	case "map":
		of, _ := spec["of"].(map[string]any)
		if of == nil {
			return nil, fmt.Errorf("yamlschema: map field %q has no value spec", name)
		}
		val, err := importType(name+".of", of, opts, d)
		if err != nil {
			return nil, err
		}
		return dsl.MapOf(val), nil
	case "object":
		return importObject(spec, opts, d)
	case "objectId":
		r := dsl.ObjectID(refName(spec))
		if p, _ := spec["refPath"].(string); p != "" {
			r = r.RefPath(p)
		}
		if u, _ := spec["unique"].(bool); u {
			r = r.Unique()
		}
		if sp, _ := spec["sparse"].(bool); sp {
			r = r.Sparse()
		}
		return r, nil
	case "uuid":
		r := dsl.UUID(refName(spec))
		if p, _ := spec["refPath"].(string); p != "" {
			r = r.RefPath(p)
		}
		if u, _ := spec["unique"].(bool); u {
			r = r.Unique()
		}
		if sp, _ := spec["sparse"].(bool); sp {
			r = r.Sparse()
		}
		return r, nil
	case "any", "":
		if t == "" {
			d.warnf("field %q declares no type, treated as any", name)
		}
		return dsl.Any(), nil
	default:
		if opts.Lenient {
			d.warnf("field %q has unknown type %q, treated as any", name, t)
			return dsl.Any(), nil
		}
		return nil, fmt.Errorf("yamlschema: field %q has unknown type %q", name, t)
	}
}

func refName(spec map[string]any) string {
	r, _ := spec["ref"].(string)
	return r
}

func intOpt(spec map[string]any, key string) (int, bool) {
	switch v := spec[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

func floatOpt(spec map[string]any, key string) (float64, bool) {
	switch v := spec[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

func stringsOpt(spec map[string]any, key string) []string {
	raw, ok := spec[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
