package aggregator

import (
	"github.com/montanaflynn/stats"
)

// currentLow makes a single pass over store offers in provider order,
// keeping the lowest discounted price seen and every store tied on it.
func currentLow(offers []StoreOffer) (low float64, stores []string) {

	if len(offers) == 0 {
		return Unknown, []string{}
	}

	low = offers[0].PriceNew
	stores = []string{offers[0].Store}

	for _, offer := range offers[1:] {
		if offer.PriceNew < low {
			low = offer.PriceNew
			stores = []string{offer.Store}
		} else if offer.PriceNew == low {
			stores = append(stores, offer.Store)
		}
	}

	return low, stores
}

// normalPrice is the lowest non-discounted reference price across stores.
func normalPrice(offers []StoreOffer) float64 {

	var prices stats.Float64Data
	for _, offer := range offers {
		if offer.PriceOld > 0 {
			prices = append(prices, offer.PriceOld)
		}
	}

	min, err := stats.Min(prices)
	if err != nil {
		return Unknown
	}

	return min
}

// percentOff truncates towards zero. Unknown or zero inputs give Unknown,
// never a division by zero.
func percentOff(normal float64, current float64) int {

	if normal <= 0 || current < 0 {
		return Unknown
	}

	return int((normal - current) / normal * 100)
}

// lowestPrice is the minimum of the historical low samples.
func lowestPrice(samples []float64) float64 {

	min, err := stats.Min(samples)
	if err != nil {
		return Unknown
	}

	return min
}
