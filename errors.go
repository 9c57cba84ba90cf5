package mongoskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedType         = "unsupported_type"
	CodeUnsupportedArrayElement = "unsupported_array_element"
	CodeUnsupportedMapValue     = "unsupported_map_value"
	CodeInvalidFormat           = "invalid_format"
	CodeParseError              = "parse_error"
)

// Issue represents a single translation failure entry.
type Issue struct {
	Path    string // slash-separated field path (for example: /items/tags).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending kind names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"kind":"union"}) for
	// observability.
	Params map[string]any
}

// Issues is a collection of translation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unsupported_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// rebaseIssues rewrites child issue paths under the given base segment so that
// failures deep inside a composite surface with their full field path.
func rebaseIssues(base string, err error) Issues {
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Params: it.Params})
	}
	return out
}
