package igdb

import (
	"testing"
)

func TestEscapeTerm(t *testing.T) {

	tests := map[string]string{
		`Half-Life 2`:                 `Half-Life 2`,
		`Peter Jackson's "King Kong"`: `Peter Jackson's \"King Kong\"`,
		`back\slash`:                  `back\\slash`,
		`"`:                           `\"`,
	}

	for in, want := range tests {
		if got := escapeTerm(in); got != want {
			t.Error(in, got, want)
		}
	}
}
