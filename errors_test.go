package mongoskema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	mongoskema "github.com/reoring/mongoskema"
)

func TestIssues_ErrorSummarizesFirstFew(t *testing.T) {
	var iss mongoskema.Issues
	for i := 0; i < 5; i++ {
		iss = mongoskema.AppendIssues(iss, mongoskema.Issue{
			Path: fmt.Sprintf("/f%d", i),
			Code: mongoskema.CodeUnsupportedType,
		})
	}
	msg := iss.Error()
	if !strings.Contains(msg, "unsupported_type at /f0") {
		t.Fatalf("summary missing first issue: %q", msg)
	}
	if !strings.Contains(msg, "(total 5)") {
		t.Fatalf("summary missing total: %q", msg)
	}
}

func TestAsIssues(t *testing.T) {
	var err error = mongoskema.Issues{{Path: "/x", Code: mongoskema.CodeParseError}}
	if iss, ok := mongoskema.AsIssues(err); !ok || len(iss) != 1 {
		t.Fatalf("AsIssues failed on direct Issues")
	}
	wrapped := fmt.Errorf("wrap: %w", err)
	if iss, ok := mongoskema.AsIssues(wrapped); !ok || iss[0].Path != "/x" {
		t.Fatalf("AsIssues failed on wrapped Issues")
	}
	if _, ok := mongoskema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert")
	}
	if _, ok := mongoskema.AsIssues(nil); ok {
		t.Fatalf("nil error must not convert")
	}
}
