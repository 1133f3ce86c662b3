package itad

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Jleagle/unmarshal-go/ctypes"
	"github.com/gamedb/gamescout/pkg/aggregator"
	"github.com/gamedb/gamescout/pkg/config"
	"github.com/gamedb/gamescout/pkg/helpers"
	"golang.org/x/time/rate"
)

const (
	baseURL = "https://api.isthereanydeal.com"

	// The provider caps bulk price lookups at 5 plains per call
	maxPlainsPerCall = 5
)

var ErrMissingKey = errors.New("missing itad key")

type Client struct {
	key  string
	base string

	// Paces bulk price calls to stay inside the provider's rate limit
	limiter *rate.Limiter
}

func NewClient() (*Client, error) {

	key := config.Config.ITADKey.Get()
	if key == "" {
		return nil, ErrMissingKey
	}

	return &Client{
		key:     key,
		base:    baseURL,
		limiter: rate.NewLimiter(rate.Every(time.Millisecond*125), 1),
	}, nil
}

func (c *Client) get(path string, params url.Values) (b []byte, err error) {

	params.Set("key", c.key)

	b, _, err = helpers.GetWithTimeout(c.base+path+"?"+params.Encode(), 0)
	return b, err
}

// SearchPlain resolves a title to the provider's internal identifier.
func (c *Client) SearchPlain(title string) (string, error) {

	params := url.Values{}
	params.Set("title", title)

	b, err := c.get("/v02/game/plain/", params)
	if err != nil {
		return "", err
	}

	resp := plainResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return "", err
	}

	if !resp.Meta.Match {
		return "", aggregator.ErrNoMatch
	}

	return resp.Data.Plain, nil
}

type plainResponse struct {
	Meta struct {
		Match bool `json:"match"`
	} `json:".meta"`
	Data struct {
		Plain string `json:"plain"`
	} `json:"data"`
}

// HistoricalLow returns the store-low price samples for one plain.
func (c *Client) HistoricalLow(plain string) ([]float64, error) {

	lows, err := c.storeLows([]string{plain})
	if err != nil {
		return nil, err
	}

	return lows[plain], nil
}

// LoadHistoricalLows resolves store-low samples for many plains, batched at
// the provider's limit and paced between calls.
func (c *Client) LoadHistoricalLows(plains []string) (map[string][]float64, error) {

	ret := map[string][]float64{}

	for i := 0; i < len(plains); i += maxPlainsPerCall {

		end := i + maxPlainsPerCall
		if end > len(plains) {
			end = len(plains)
		}

		err := c.limiter.Wait(context.Background())
		if err != nil {
			return ret, err
		}

		lows, err := c.storeLows(plains[i:end])
		if err != nil {
			return ret, err
		}

		for k, v := range lows {
			ret[k] = v
		}
	}

	return ret, nil
}

func (c *Client) storeLows(plains []string) (map[string][]float64, error) {

	params := url.Values{}
	params.Set("plains", strings.Join(plains, ","))
	params.Set("shops", "steam")

	b, err := c.get("/v01/game/storelow/", params)
	if err != nil {
		return nil, err
	}

	resp := storeLowResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return nil, err
	}

	ret := map[string][]float64{}
	for plain, samples := range resp.Data {
		for _, sample := range samples {
			ret[plain] = append(ret[plain], float64(sample.Price))
		}
	}

	return ret, nil
}

type storeLowResponse struct {
	Data map[string][]struct {
		Price ctypes.Float64 `json:"price"`
		Shop  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"shop"`
	} `json:"data"`
}

// CurrentPrices returns every store's current offer for one plain, in
// provider order.
func (c *Client) CurrentPrices(plain string) (offers []aggregator.StoreOffer, err error) {

	params := url.Values{}
	params.Set("plains", plain)

	b, err := c.get("/v01/game/prices/", params)
	if err != nil {
		return offers, err
	}

	resp := pricesResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return offers, err
	}

	for _, offer := range resp.Data[plain].List {
		offers = append(offers, aggregator.StoreOffer{
			Store:    offer.Shop.Name,
			PriceNew: float64(offer.PriceNew),
			PriceOld: float64(offer.PriceOld),
		})
	}

	return offers, err
}

type pricesResponse struct {
	Data map[string]struct {
		List []struct {
			Shop struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"shop"`
			PriceNew ctypes.Float64 `json:"price_new"`
			PriceOld ctypes.Float64 `json:"price_old"`
			PriceCut ctypes.Int     `json:"price_cut"`
			URL      string         `json:"url"`
		} `json:"list"`
	} `json:"data"`
}

// PopularPlains lists the provider's most popular games by rank.
func (c *Client) PopularPlains(limit int) (plains []string, err error) {

	params := url.Values{}
	params.Set("offset", "0")
	params.Set("limit", strconv.Itoa(limit))

	b, err := c.get("/v01/stats/popularity/chart/", params)
	if err != nil {
		return plains, err
	}

	resp := popularResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return plains, err
	}

	for _, entry := range resp.Data {
		plains = append(plains, entry.Plain)
	}

	return plains, err
}

type popularResponse struct {
	Data []struct {
		Plain string `json:"plain"`
	} `json:"data"`
}

// GameInfo fetches basic info, review summaries included, for some plains.
func (c *Client) GameInfo(plains []string) (map[string]GameInfo, error) {

	params := url.Values{}
	params.Set("plains", strings.Join(plains, ","))
	params.Set("optional", "metacritic")

	b, err := c.get("/v01/game/info/", params)
	if err != nil {
		return nil, err
	}

	resp := infoResponse{}
	err = helpers.Unmarshal(b, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Data, err
}

type infoResponse struct {
	Data map[string]GameInfo `json:"data"`
}

type GameInfo struct {
	Title   string `json:"title"`
	Image   string `json:"image"`
	Reviews struct {
		Steam struct {
			PercPositive ctypes.Int `json:"perc_positive"`
			Total        ctypes.Int `json:"total"`
		} `json:"steam"`
	} `json:"reviews"`
	Metacritic struct {
		CriticScore ctypes.Int     `json:"critic_score"`
		UserScore   ctypes.Float64 `json:"user_score"`
	} `json:"metacritic"`
}
