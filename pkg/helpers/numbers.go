package helpers

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

func RoundFloatTo2DP(f float64) float64 {
	return math.Round(f*100) / 100
}

func FloatToString(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

func CommaInt(i int) string {
	return humanize.Comma(int64(i))
}
