package opencritic

import (
	"net/url"
	"strconv"

	"github.com/gamedb/gamescout/pkg/aggregator"
	"github.com/gamedb/gamescout/pkg/helpers"
)

const baseURL = "https://api.opencritic.com/api"

// Search hits with a distance above this are too fuzzy to trust
const maxDist = 0.5

type Client struct {
}

func NewClient() *Client {
	return &Client{}
}

// Search runs a fuzzy title search, closest hits first.
func (c *Client) Search(title string) (hits []aggregator.ReviewHit, err error) {

	params := url.Values{}
	params.Set("criteria", title)

	b, _, err := helpers.GetWithTimeout(baseURL+"/game/search?"+params.Encode(), 0)
	if err != nil {
		return hits, err
	}

	raw := []searchHit{}
	err = helpers.Unmarshal(b, &raw)
	if err != nil {
		return hits, err
	}

	for _, hit := range raw {
		hits = append(hits, aggregator.ReviewHit{
			ID:   hit.ID,
			Name: hit.Name,
			Dist: hit.Dist,
		})
	}

	return hits, err
}

type searchHit struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Dist float64 `json:"dist"`
}

// IsValid reports whether a result set has a hit close enough to use.
func (c *Client) IsValid(hits []aggregator.ReviewHit) bool {
	return len(hits) > 0 && hits[0].Dist <= maxDist
}

func (c *Client) TopID(hits []aggregator.ReviewHit) int {
	return hits[0].ID
}

// GetReview fetches the full review for one game.
func (c *Client) GetReview(id int) (review aggregator.Review, err error) {

	b, _, err := helpers.GetWithTimeout(baseURL+"/game/"+strconv.Itoa(id), 0)
	if err != nil {
		return review, err
	}

	raw := game{}
	err = helpers.Unmarshal(b, &raw)
	if err != nil {
		return review, err
	}

	review.TopCriticScore = raw.TopCriticScore

	return review, err
}

type game struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	TopCriticScore float64 `json:"topCriticScore"`
}
