package yamlschema

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	mongoskema "github.com/reoring/mongoskema"
)

// ImportYAML imports the first schema document (one carrying a fields map)
// found in a possibly multi-document YAML stream.
func ImportYAML(data []byte, opts Options) (mongoskema.ObjectNode, Diag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &simpleDiag{}, err
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		if _, ok := m["fields"].(map[string]any); !ok {
			continue
		}
		return Import(m, opts)
	}
	return nil, &simpleDiag{}, errors.New("yamlschema: no schema document found in YAML stream")
}

// ImportYAMLNamed scans a multi-document YAML stream and imports the schema
// document whose name matches.
func ImportYAMLNamed(data []byte, name string, opts Options) (mongoskema.ObjectNode, Diag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &simpleDiag{}, err
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			continue
		}
		if n, _ := m["name"].(string); n != name {
			continue
		}
		return Import(m, opts)
	}
	return nil, &simpleDiag{}, errors.New("yamlschema: schema name not found in YAML stream")
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots return
// nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
