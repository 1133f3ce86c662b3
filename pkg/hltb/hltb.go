package hltb

import (
	"strconv"
	"strings"

	"github.com/gamedb/gamescout/pkg/aggregator"
	"github.com/gocolly/colly/v2"
)

const searchURL = "https://howlongtobeat.com/search_results?page=1"

type Entry struct {
	Name      string
	MainHours float64
}

type Client struct {
}

func NewClient() *Client {
	return &Client{}
}

// Search scrapes the completion-time site's search results. The site has no
// API and no error contract, responses break in arbitrary ways.
func (c *Client) Search(title string) (entries []Entry, err error) {

	collector := colly.NewCollector(
		colly.AllowedDomains("howlongtobeat.com"),
	)

	collector.OnHTML("li.back_darkish", func(e *colly.HTMLElement) {

		entry := Entry{
			Name: e.ChildAttr("a", "title"),
		}

		// Tidbits alternate between label and value
		tidbits := e.ChildTexts(".search_list_tidbit")
		for i := 0; i+1 < len(tidbits); i += 2 {
			if strings.TrimSpace(tidbits[i]) == "Main Story" {
				entry.MainHours = parseHours(tidbits[i+1])
			}
		}

		entries = append(entries, entry)
	})

	err = collector.Post(searchURL, map[string]string{
		"queryString": title,
		"t":           "games",
		"sorthead":    "popular",
		"sortd":       "Normal Order",
	})

	return entries, err
}

// AverageHours implements the aggregator's completion-time contract.
func (c *Client) AverageHours(title string) (float64, error) {

	entries, err := c.Search(title)
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 {
		return 0, aggregator.ErrNoMatch
	}

	return entries[0].MainHours, nil
}

// parseHours turns scraped strings like "26½ Hours" or "45 Mins" into hours.
func parseHours(text string) float64 {

	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "½", ".5")

	mins := strings.HasSuffix(text, "Mins")

	text = strings.TrimSuffix(text, "Hours")
	text = strings.TrimSuffix(text, "Mins")
	text = strings.TrimSpace(text)

	hours, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}

	if mins {
		hours = hours / 60
	}

	return hours
}
