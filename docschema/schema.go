package docschema

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Options is passthrough configuration for the schema constructor. The
// translator forwards it verbatim and never interprets it.
type Options struct {
	Collection string
	Timestamps bool
	Strict     bool
	VersionKey string
}

// Schema is a ready-to-use document schema: a definition tree plus constructor
// options.
type Schema struct {
	def  *Definition
	opts Options
}

// New constructs a Schema from a definition and options.
func New(def *Definition, opts Options) *Schema {
	if def == nil {
		def = NewDefinition()
	}
	return &Schema{def: def, opts: opts}
}

// Definition returns the schema's field-definition tree.
func (s *Schema) Definition() *Definition { return s.def }

// Options returns the constructor options as provided.
func (s *Schema) Options() Options { return s.opts }

// MarshalJSON emits {"definition":..., "options":...}.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"definition": s.def,
		"options": map[string]any{
			"collection": s.opts.Collection,
			"timestamps": s.opts.Timestamps,
			"strict":     s.opts.Strict,
			"versionKey": s.opts.VersionKey,
		},
	})
}

// FieldError reports one document-validation failure.
type FieldError struct {
	Path   string
	Reason string
}

// FieldErrors is a collection of validation failures that implements error.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Path, e.Reason))
	}
	return strings.Join(parts, "; ")
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// Validate checks a decoded document against the schema definition. This is
// the mapping layer's own runtime check: required presence, storage-type tags,
// enum membership, range/length constraints, and custom validators.
func (s *Schema) Validate(doc map[string]any) error {
	var errs FieldErrors
	errs = validateDefinition(s.def, doc, "", errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDefinition(def *Definition, doc map[string]any, base string, errs FieldErrors) FieldErrors {
	for _, k := range def.Keys() {
		f, _ := def.Get(k)
		path := base + "/" + k
		v, present := doc[k]
		if !present {
			if f.Default != nil {
				continue
			}
			if f.Required {
				errs = append(errs, FieldError{Path: path, Reason: "required field missing"})
			}
			continue
		}
		errs = validateField(f, v, path, errs)
	}
	return errs
}

func validateField(f *Field, v any, path string, errs FieldErrors) FieldErrors {
	if v == nil {
		if f.Required {
			errs = append(errs, FieldError{Path: path, Reason: "null for required field"})
		}
		return errs
	}
	switch {
	case f.Fields != nil:
		m, ok := v.(map[string]any)
		if !ok {
			return append(errs, FieldError{Path: path, Reason: "expected object"})
		}
		return validateDefinition(f.Fields, m, path, errs)
	case f.Item != nil:
		arr, ok := v.([]any)
		if !ok {
			return append(errs, FieldError{Path: path, Reason: "expected array"})
		}
		for i, el := range arr {
			errs = validateField(f.Item, el, fmt.Sprintf("%s/%d", path, i), errs)
		}
		return errs
	case f.Of != nil:
		m, ok := v.(map[string]any)
		if !ok {
			return append(errs, FieldError{Path: path, Reason: "expected map"})
		}
		for mk, mv := range m {
			errs = validateField(f.Of, mv, path+"/"+mk, errs)
		}
		return errs
	}
	errs = validateScalar(f, v, path, errs)
	if f.Validate != nil && f.Validate.Fn != nil && !f.Validate.Fn(v) {
		errs = append(errs, FieldError{Path: path, Reason: f.Validate.Message})
	}
	return errs
}

func validateScalar(f *Field, v any, path string, errs FieldErrors) FieldErrors {
	switch f.Type {
	case String:
		s, ok := v.(string)
		if !ok {
			return append(errs, FieldError{Path: path, Reason: "expected string"})
		}
		if f.MinLength != nil && len(s) < *f.MinLength {
			errs = append(errs, FieldError{Path: path, Reason: "too short"})
		}
		if f.MaxLength != nil && len(s) > *f.MaxLength {
			errs = append(errs, FieldError{Path: path, Reason: "too long"})
		}
		if len(f.Enum) > 0 && !containsString(f.Enum, s) {
			errs = append(errs, FieldError{Path: path, Reason: "not an allowed value"})
		}
	case Number:
		n, ok := asFloat(v)
		if !ok {
			return append(errs, FieldError{Path: path, Reason: "expected number"})
		}
		if f.Min != nil && n < *f.Min {
			errs = append(errs, FieldError{Path: path, Reason: "too small"})
		}
		if f.Max != nil && n > *f.Max {
			errs = append(errs, FieldError{Path: path, Reason: "too big"})
		}
	case Boolean:
		if _, ok := v.(bool); !ok {
			errs = append(errs, FieldError{Path: path, Reason: "expected boolean"})
		}
	case Date:
		switch t := v.(type) {
		case time.Time:
		case string:
			if _, err := time.Parse(time.RFC3339, t); err != nil {
				errs = append(errs, FieldError{Path: path, Reason: "invalid date"})
			}
		default:
			errs = append(errs, FieldError{Path: path, Reason: "expected date"})
		}
	case ObjectID:
		s, ok := v.(string)
		if !ok || !objectIDPattern.MatchString(s) {
			errs = append(errs, FieldError{Path: path, Reason: "invalid ObjectId"})
		}
	case UUID:
		s, ok := v.(string)
		if !ok || uuid.Validate(s) != nil {
			errs = append(errs, FieldError{Path: path, Reason: "invalid UUID"})
		}
	case Mixed:
		// anything goes
	}
	return errs
}

func containsString(list []string, s string) bool {
	for _, it := range list {
		if it == s {
			return true
		}
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
