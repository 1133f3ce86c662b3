package itad

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gamedb/gamescout/pkg/aggregator"
	"golang.org/x/time/rate"
)

func testClient(base string) *Client {
	return &Client{
		key:     "test-key",
		base:    base,
		limiter: rate.NewLimiter(rate.Every(time.Millisecond), 1),
	}
}

func TestSearchPlain(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if r.URL.Query().Get("key") != "test-key" {
			t.Error("missing key param")
		}

		match := r.URL.Query().Get("title") == "Half-Life 2"

		resp := map[string]interface{}{
			".meta": map[string]interface{}{"match": match},
			"data":  map[string]interface{}{"plain": "halflife2"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := testClient(server.URL)

	plain, err := client.SearchPlain("Half-Life 2")
	if err != nil {
		t.Fatal(err)
	}
	if plain != "halflife2" {
		t.Error(plain)
	}

	_, err = client.SearchPlain("no such game")
	if err != aggregator.ErrNoMatch {
		t.Error("expected no match, got", err)
	}
}

func TestLoadHistoricalLowsBatches(t *testing.T) {

	var calls int
	var batchSizes []int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		calls++

		plains := strings.Split(r.URL.Query().Get("plains"), ",")
		batchSizes = append(batchSizes, len(plains))

		data := map[string][]map[string]interface{}{}
		for _, plain := range plains {
			data[plain] = []map[string]interface{}{{"price": 0.99}}
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
	}))
	defer server.Close()

	client := testClient(server.URL)

	plains := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	lows, err := client.LoadHistoricalLows(plains)
	if err != nil {
		t.Fatal(err)
	}

	if calls != 3 { // 5 + 5 + 2
		t.Error("calls", calls)
	}
	for _, size := range batchSizes {
		if size > 5 {
			t.Error("batch too big", size)
		}
	}
	if len(lows) != len(plains) {
		t.Error("missing plains", len(lows))
	}
	if len(lows["a"]) != 1 || lows["a"][0] != 0.99 {
		t.Error("prices", lows["a"])
	}
}

func TestCurrentPrices(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		body := `{"data": {"halflife2": {"list": [
			{"shop": {"id": "steam", "name": "Steam"}, "price_new": 9.99, "price_old": 19.99, "price_cut": 50},
			{"shop": {"id": "gog", "name": "GOG"}, "price_new": "8.99", "price_old": "19.99", "price_cut": "55"}
		]}}}`
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := testClient(server.URL)

	offers, err := client.CurrentPrices("halflife2")
	if err != nil {
		t.Fatal(err)
	}

	if len(offers) != 2 {
		t.Fatal("offers", len(offers))
	}
	if offers[0].Store != "Steam" || offers[0].PriceNew != 9.99 {
		t.Error(offers[0])
	}
	// The provider sometimes sends numbers as strings
	if offers[1].Store != "GOG" || offers[1].PriceNew != 8.99 || offers[1].PriceOld != 19.99 {
		t.Error(offers[1])
	}
}
