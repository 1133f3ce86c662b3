package helpers

import (
	"math"
)

func SliceHasInt(slice []int, i int) bool {
	for _, v := range slice {
		if v == i {
			return true
		}
	}
	return false
}

func FirstStrings(slice []string, x int) []string {

	x = int(math.Min(float64(x), float64(len(slice))))
	return slice[0:x]
}
