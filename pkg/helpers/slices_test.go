package helpers

import (
	"testing"
)

func TestFirstStrings(t *testing.T) {

	if got := FirstStrings([]string{"a", "b", "c"}, 2); len(got) != 2 || got[1] != "b" {
		t.Error(got)
	}

	if got := FirstStrings([]string{"a"}, 2); len(got) != 1 {
		t.Error(got)
	}

	if got := FirstStrings(nil, 2); len(got) != 0 {
		t.Error(got)
	}
}

func TestSliceHasInt(t *testing.T) {

	if !SliceHasInt([]int{0, 6, 8}, 6) {
		t.Error("6")
	}
	if SliceHasInt([]int{0, 6, 8}, 3) {
		t.Error("3")
	}
}
