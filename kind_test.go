package mongoskema_test

import (
	"testing"

	mongoskema "github.com/reoring/mongoskema"
	"github.com/reoring/mongoskema/dsl"
)

func TestClassify_KnownKinds(t *testing.T) {
	cases := []struct {
		node any
		want mongoskema.Kind
	}{
		{dsl.String(), mongoskema.KindString},
		{dsl.Number(), mongoskema.KindNumber},
		{dsl.Bool(), mongoskema.KindBool},
		{dsl.Date(), mongoskema.KindDate},
		{dsl.Enum("a"), mongoskema.KindEnum},
		{dsl.Object(), mongoskema.KindObject},
		{dsl.Array(dsl.String()), mongoskema.KindArray},
		{dsl.MapOf(dsl.String()), mongoskema.KindMap},
		{dsl.Union(dsl.String()), mongoskema.KindUnion},
		{dsl.String().Optional(), mongoskema.KindOptional},
		{dsl.String().Nullable(), mongoskema.KindNullable},
		{dsl.String().Default("x"), mongoskema.KindDefault},
		{dsl.Any(), mongoskema.KindAny},
		{dsl.DateFromString(), mongoskema.KindPipe},
		{dsl.ObjectID("User"), mongoskema.KindObjectID},
		{dsl.UUID("User"), mongoskema.KindUUID},
	}
	for _, tc := range cases {
		if got := mongoskema.Classify(tc.node); got != tc.want {
			t.Fatalf("Classify(%T) = %v, want %v", tc.node, got, tc.want)
		}
	}
}

func TestClassify_ForeignValuesAreUnknown(t *testing.T) {
	for _, v := range []any{nil, "string", 42, struct{}{}, map[string]any{}} {
		if got := mongoskema.Classify(v); got != mongoskema.KindUnknown {
			t.Fatalf("Classify(%#v) = %v, want unknown", v, got)
		}
	}
}

func TestKind_String(t *testing.T) {
	if mongoskema.KindObjectID.String() != "objectId" {
		t.Fatalf("KindObjectID.String() = %q", mongoskema.KindObjectID.String())
	}
	if mongoskema.Kind(99).String() != "unknown" {
		t.Fatalf("out-of-range kind must stringify as unknown")
	}
}
