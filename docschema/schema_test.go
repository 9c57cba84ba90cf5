package docschema_test

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/mongoskema/docschema"
)

func userSchema() *docschema.Schema {
	def := docschema.NewDefinition().
		Set("name", &docschema.Field{Type: docschema.String, Required: true, MinLength: intPtr(2)}).
		Set("age", &docschema.Field{Type: docschema.Number, Required: true, Min: floatPtr(0), Max: floatPtr(150)}).
		Set("role", &docschema.Field{Type: docschema.String, Required: true, Enum: []string{"admin", "user"}}).
		Set("bio", &docschema.Field{Type: docschema.String, Required: false}).
		Set("joined", &docschema.Field{Type: docschema.Date, Required: true}).
		Set("org", &docschema.Field{Type: docschema.ObjectID, Required: true, Ref: "Org"}).
		Set("tags", &docschema.Field{
			Type: docschema.Array, Required: true,
			Item: &docschema.Field{Type: docschema.String, Required: true, MaxLength: intPtr(8)},
		}).
		Set("scores", &docschema.Field{
			Type: docschema.Map, Required: true,
			Of: &docschema.Field{Type: docschema.Number, Required: true},
		}).
		Set("address", &docschema.Field{Fields: docschema.NewDefinition().
			Set("city", &docschema.Field{Type: docschema.String, Required: true})}).
		Set("plan", &docschema.Field{Type: docschema.String, Default: func() any { return "free" }})
	return docschema.New(def, docschema.Options{Collection: "users", Timestamps: true, Strict: true})
}

func validUser() map[string]any {
	return map[string]any{
		"name":    "ada",
		"age":     37,
		"role":    "admin",
		"joined":  time.Now(),
		"org":     "507f1f77bcf86cd799439011",
		"tags":    []any{"go", "db"},
		"scores":  map[string]any{"math": 100},
		"address": map[string]any{"city": "Paris"},
	}
}

func TestSchemaValidate_Accepts(t *testing.T) {
	require.NoError(t, userSchema().Validate(validUser()))
}

func TestSchemaValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]any)
		path   string
		reason string
	}{
		{"missing required", func(d map[string]any) { delete(d, "name") }, "/name", "required field missing"},
		{"null required", func(d map[string]any) { d["name"] = nil }, "/name", "null for required field"},
		{"wrong type", func(d map[string]any) { d["name"] = 7 }, "/name", "expected string"},
		{"too short", func(d map[string]any) { d["name"] = "a" }, "/name", "too short"},
		{"below min", func(d map[string]any) { d["age"] = -1 }, "/age", "too small"},
		{"above max", func(d map[string]any) { d["age"] = 200 }, "/age", "too big"},
		{"outside enum", func(d map[string]any) { d["role"] = "root" }, "/role", "not an allowed value"},
		{"bad date", func(d map[string]any) { d["joined"] = "yesterday" }, "/joined", "invalid date"},
		{"bad objectid", func(d map[string]any) { d["org"] = "xyz" }, "/org", "invalid ObjectId"},
		{"array element", func(d map[string]any) { d["tags"] = []any{"short", "waytoolongtag"} }, "/tags/1", "too long"},
		{"map value", func(d map[string]any) { d["scores"] = map[string]any{"math": "A+"} }, "/scores/math", "expected number"},
		{"nested object", func(d map[string]any) { d["address"] = map[string]any{"city": nil} }, "/address/city", "null for required field"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validUser()
			tc.mutate(doc)
			err := userSchema().Validate(doc)
			require.Error(t, err)
			var fe docschema.FieldErrors
			require.ErrorAs(t, err, &fe)
			require.Len(t, fe, 1)
			assert.Equal(t, tc.path, fe[0].Path)
			assert.Equal(t, tc.reason, fe[0].Reason)
		})
	}
}

func TestSchemaValidate_DefaultSatisfiesAbsence(t *testing.T) {
	doc := validUser()
	// plan has a default provider, so absence is fine even without Required.
	require.NoError(t, userSchema().Validate(doc))
}

func TestSchemaValidate_CustomValidator(t *testing.T) {
	def := docschema.NewDefinition().Set("slug", &docschema.Field{
		Type: docschema.String, Required: true,
		Validate: &docschema.Validator{
			Fn:      func(v any) bool { s, _ := v.(string); return s != "" && s == strings.ToLower(s) },
			Message: "slug must be lowercase",
		},
	})
	s := docschema.New(def, docschema.Options{})
	require.NoError(t, s.Validate(map[string]any{"slug": "hello"}))
	err := s.Validate(map[string]any{"slug": "Hello"})
	var fe docschema.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "slug must be lowercase", fe[0].Reason)
}

func TestSchemaValidate_NumberForms(t *testing.T) {
	def := docschema.NewDefinition().Set("n", &docschema.Field{Type: docschema.Number, Required: true, Min: floatPtr(1)})
	s := docschema.New(def, docschema.Options{})
	require.NoError(t, s.Validate(map[string]any{"n": json.Number("3")}))
	require.NoError(t, s.Validate(map[string]any{"n": int64(3)}))
	require.Error(t, s.Validate(map[string]any{"n": json.Number("0.5")}))
}

func TestSchemaMarshal_IncludesOptions(t *testing.T) {
	b, err := json.Marshal(userSchema())
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	opts := got["options"].(map[string]any)
	assert.Equal(t, "users", opts["collection"])
	assert.Equal(t, true, opts["timestamps"])
	def := got["definition"].(map[string]any)
	assert.Contains(t, def, "name")
	assert.Contains(t, def, "address")
}

func TestSchemaNew_NilDefinition(t *testing.T) {
	s := docschema.New(nil, docschema.Options{})
	require.NotNil(t, s.Definition())
	require.NoError(t, s.Validate(map[string]any{"anything": 1}))
}
