package usecase

import (
	"reflect"
	"testing"
)

func TestScholarshipIDsFromMetadata(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		want []string
	}{
		{name: "nil", in: nil, want: nil},
		{name: "array of any", in: map[string]any{"scholarship_ids": []any{"a", " b ", nil, "a"}}, want: []string{"a", "b"}},
		{name: "array of string", in: map[string]any{"scholarships_ids": []string{"x", "y"}}, want: []string{"x", "y"}},
		{name: "comma separated", in: map[string]any{"scholarship_ids": "a, b,,c"}, want: []string{"a", "b", "c"}},
		{name: "single id keys merged", in: map[string]any{"scholarship_id": "a", "selected_scholarship_id": "b"}, want: []string{"a", "b"}},
		{name: "non string ids", in: map[string]any{"scholarship_ids": []any{float64(7)}}, want: []string{"7"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scholarshipIDsFromMetadata(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAmountFromMetadata(t *testing.T) {
	if got := amountFromMetadata(map[string]any{"amount": 12.5}); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
	if got := amountFromMetadata(map[string]any{"fee_amount": "40"}); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
	if got := amountFromMetadata(map[string]any{"amount": "abc"}); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCopyMetadata(t *testing.T) {
	src := map[string]any{"k": "v"}
	dst := copyMetadata(src)
	dst["k"] = "changed"
	if src["k"] != "v" {
		t.Fatalf("copy aliased source")
	}
	if copyMetadata(nil) == nil {
		t.Fatalf("expected non-nil map")
	}
}
