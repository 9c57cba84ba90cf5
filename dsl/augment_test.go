package dsl_test

import (
	"testing"

	mongoskema "github.com/reoring/mongoskema"
	"github.com/reoring/mongoskema/dsl"
)

func metaOf(t *testing.T, n mongoskema.Node) mongoskema.Meta {
	t.Helper()
	mc, ok := n.(mongoskema.MetaCarrier)
	if !ok {
		t.Fatalf("%T does not carry metadata", n)
	}
	return mc.Meta()
}

func TestRefine_DerivesWithoutMutatingBase(t *testing.T) {
	base := dsl.String().Unique()
	derived := base.Refine(func(any) bool { return true }, "msg")

	if got := metaOf(t, base); len(got.Checks) != 0 {
		t.Fatalf("base node must stay unchanged, has %d checks", len(got.Checks))
	}
	m := metaOf(t, derived)
	if len(m.Checks) != 1 {
		t.Fatalf("derived node must carry one check, has %d", len(m.Checks))
	}
	if !m.Unique {
		t.Fatalf("uniqueness must be copied onto the derived node")
	}
	if !m.Augmented {
		t.Fatalf("derivation must mark the node augmented")
	}
}

func TestRefine_ChainStacksChecks(t *testing.T) {
	n := dsl.Number().
		Refine(func(any) bool { return true }, "first").
		Refine(func(any) bool { return true }, dsl.CheckOpt{Message: "second", Name: "stricter"})
	m := metaOf(t, n)
	if len(m.Checks) != 2 {
		t.Fatalf("chain must stack, got %d checks", len(m.Checks))
	}
	if m.Checks[0].Message != "first" || m.Checks[1].Message != "second" {
		t.Fatalf("check order wrong: %v / %v", m.Checks[0].Message, m.Checks[1].Message)
	}
	if m.Checks[1].Name != "stricter" {
		t.Fatalf("CheckOpt name not applied: %q", m.Checks[1].Name)
	}
	if lc, ok := m.LastCheck(); !ok || lc.Message != "second" {
		t.Fatalf("LastCheck must return the most recent predicate check")
	}
}

func TestRefine_MessageForms(t *testing.T) {
	pred := func(any) bool { return true }
	cases := []struct {
		msg  any
		want string
	}{
		{"plain", "plain"},
		{dsl.CheckOpt{Message: "from opt"}, "from opt"},
		{nil, "refinement failed"},
		{dsl.CheckOpt{}, "refinement failed"},
	}
	for _, tc := range cases {
		m := metaOf(t, dsl.String().Refine(pred, tc.msg))
		if m.Checks[0].Message != tc.want {
			t.Fatalf("message for %#v = %q, want %q", tc.msg, m.Checks[0].Message, tc.want)
		}
	}
}

func TestAugment_Idempotent(t *testing.T) {
	n := dsl.String()
	a1 := dsl.Augment(n)
	if !metaOf(t, a1).Augmented {
		t.Fatalf("augment must set the marker")
	}
	a2 := dsl.Augment(a1)
	if a2 != a1 {
		t.Fatalf("re-augmenting must be a no-op returning the same node")
	}
	if got := metaOf(t, a2); len(got.Checks) != 0 {
		t.Fatalf("augmentation must never add checks on its own")
	}
}

func TestAugment_NonDerivableIsNoOp(t *testing.T) {
	b := dsl.Bool()
	if got := dsl.Augment(b); got != mongoskema.Node(b) {
		t.Fatalf("non-derivable node must round-trip unchanged")
	}
}

func TestRefine_OnWrapperThreadsToMeta(t *testing.T) {
	w := dsl.String().Optional().Refine(func(any) bool { return false }, "wrapped check")
	m := metaOf(t, w)
	if len(m.Checks) != 1 || m.Checks[0].Message != "wrapped check" {
		t.Fatalf("wrapper-level refinement not recorded: %#v", m.Checks)
	}
}
