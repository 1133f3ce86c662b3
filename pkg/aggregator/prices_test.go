package aggregator

import (
	"testing"
)

func offer(store string, price float64) StoreOffer {
	return StoreOffer{Store: store, PriceNew: price, PriceOld: price * 2}
}

func TestCurrentLow(t *testing.T) {

	tests := []struct {
		offers []StoreOffer
		low    float64
		stores []string
	}{
		{[]StoreOffer{offer("A", 10), offer("B", 8), offer("C", 8), offer("D", 9)}, 8, []string{"B", "C"}},
		{[]StoreOffer{offer("A", 5)}, 5, []string{"A"}},
		{[]StoreOffer{offer("A", 5), offer("B", 5)}, 5, []string{"A", "B"}},
		{[]StoreOffer{}, Unknown, []string{}},
	}

	for _, test := range tests {

		low, stores := currentLow(test.offers)

		if low != test.low {
			t.Error("low", low, test.low)
		}
		if len(stores) != len(test.stores) {
			t.Error("store count", stores, test.stores)
			continue
		}
		for i := range stores {
			if stores[i] != test.stores[i] {
				t.Error("store order", stores, test.stores)
			}
		}
	}
}

func TestPercentOff(t *testing.T) {

	tests := []struct {
		normal  float64
		current float64
		want    int
	}{
		{50, 40, 20},
		{33, 20, 39}, // (13/33)*100 = 39.39, truncated
		{0, 10, Unknown},
		{Unknown, 10, Unknown},
		{50, Unknown, Unknown},
		{10, 10, 0},
	}

	for _, test := range tests {
		if got := percentOff(test.normal, test.current); got != test.want {
			t.Error(test.normal, test.current, got, test.want)
		}
	}
}

func TestNormalPrice(t *testing.T) {

	offers := []StoreOffer{
		{Store: "A", PriceNew: 10, PriceOld: 30},
		{Store: "B", PriceNew: 12, PriceOld: 20},
		{Store: "C", PriceNew: 5, PriceOld: 0}, // free reference prices are skipped
	}

	if got := normalPrice(offers); got != 20 {
		t.Error(got)
	}

	if got := normalPrice(nil); got != Unknown {
		t.Error("empty offers should give the sentinel")
	}
}

func TestLowestPrice(t *testing.T) {

	if got := lowestPrice([]float64{2.49, 0.99, 4.99}); got != 0.99 {
		t.Error(got)
	}

	if got := lowestPrice(nil); got != Unknown {
		t.Error("no samples should give the sentinel")
	}
}
