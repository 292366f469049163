package typetag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type credentials struct {
	User string
	Pass string
}

type authError struct {
	Code int
}

func (e *authError) Error() string { return "auth failed" }

func TestClassifyShapes(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  Tag
	}{
		{"nil", nil, Tag{Kind: Nil}},
		{"bool", true, Tag{Kind: Bool}},
		{"string", "hunter2", Tag{Kind: String, Count: 7}},
		{"bytes", []byte("pin"), Tag{Kind: String, Count: 3}},
		{"int", 42, Tag{Kind: Int}},
		{"uint", uint16(7), Tag{Kind: Int}},
		{"float", 3.14, Tag{Kind: Float}},
		{"slice", []int{1, 2, 3}, Tag{Kind: List, Count: 3}},
		{"array", [2]string{"a", "b"}, Tag{Kind: Tuple, Count: 2}},
		{"map", map[string]string{"password": "hunter2"}, Tag{Kind: Map, Count: 1}},
		{"chan", make(chan int), Tag{Kind: Opaque}},
		{"nil slice", []string(nil), Tag{Kind: Nil}},
		{"nil map", map[string]int(nil), Tag{Kind: Nil}},
		{"nil func", (func())(nil), Tag{Kind: Nil}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected tag (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyStruct(t *testing.T) {
	tag := Classify(credentials{User: "u", Pass: "p"})
	if tag.Kind != Struct {
		t.Fatalf("expected struct kind, got %s", tag.Kind)
	}
	if tag.Count != 2 {
		t.Fatalf("expected field count 2, got %d", tag.Count)
	}
	if tag.TypeName == "" {
		t.Fatalf("expected a declared type name")
	}
	if tag.IsError {
		t.Fatalf("credentials does not implement error")
	}
}

func TestClassifyErrorTypes(t *testing.T) {
	tag := Classify(&authError{Code: 401})
	if tag.Kind != Struct || !tag.IsError {
		t.Fatalf("expected error struct, got %+v", tag)
	}

	tag = Classify(errors.New("boom"))
	if !tag.IsError {
		t.Fatalf("expected stdlib error value to classify as error type, got %+v", tag)
	}
}

func TestClassifyFunc(t *testing.T) {
	tag := Classify(func(a, b string) string { return a + b })
	if diff := cmp.Diff(Tag{Kind: Func, Arity: 2}, tag); diff != "" {
		t.Fatalf("unexpected tag (-want +got):\n%s", diff)
	}
}

func TestClassifyDereferencesOnePointerLevel(t *testing.T) {
	s := "secret"
	tag := Classify(&s)
	if diff := cmp.Diff(Tag{Kind: String, Count: 6}, tag); diff != "" {
		t.Fatalf("unexpected tag (-want +got):\n%s", diff)
	}

	var nilPtr *credentials
	if got := Classify(nilPtr); got.Kind != Nil {
		t.Fatalf("expected nil pointer to classify as nil, got %s", got.Kind)
	}
}
