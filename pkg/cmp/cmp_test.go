package cmp_test

import (
	"testing"

	"github.com/hitrip/tripops/pkg/cmp"
)

func TestSliceContentEq(t *testing.T) {
	t.Run("it ignores ordering", func(t *testing.T) {
		if !cmp.SliceContentEq([]int{1, 2, 2, 3}, []int{2, 3, 1, 2}) {
			t.Error("a != b, unexpectedly.")
		}
	})

	t.Run("it counts duplicated elements", func(t *testing.T) {
		if cmp.SliceContentEq([]int{1, 1, 2}, []int{1, 2, 2}) {
			t.Error("a == b, unexpectedly.")
		}
	})
}

func TestPEqEq(t *testing.T) {
	one, another := 1, 1
	if !cmp.PEqEq(&one, &another) {
		t.Error("pointers to equal values should be equal")
	}
	if cmp.PEqEq(&one, nil) {
		t.Error("non-nil and nil should not be equal")
	}
	if !cmp.PEqEq[int](nil, nil) {
		t.Error("nil and nil should be equal")
	}
}

func TestMapEq(t *testing.T) {
	if !cmp.MapEq(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}) {
		t.Error("a != b, unexpectedly.")
	}
	if cmp.MapEq(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}) {
		t.Error("a == b, unexpectedly.")
	}
}
