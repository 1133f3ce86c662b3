package aggregator

import (
	"sync"

	"github.com/gamedb/gamescout/pkg/helpers"
	"github.com/gamedb/gamescout/pkg/log"
	"github.com/gosimple/slug"
)

// Collection member categories counted as part of a series. These are
// provider category codes for main-game variants, excluding DLC, mods etc.
var seriesCategories = []int{0, 6, 8, 9, 10, 11}

const maxCompanies = 2

type Aggregator struct {
	catalog    CatalogClient
	pricing    PricingClient
	reviews    ReviewClient
	completion CompletionClient

	lock       sync.Mutex
	records    []GameRecord
	genreTally map[string]int
}

func New(catalog CatalogClient, pricing PricingClient, reviews ReviewClient, completion CompletionClient) *Aggregator {

	return &Aggregator{
		catalog:    catalog,
		pricing:    pricing,
		reviews:    reviews,
		completion: completion,
		genreTally: map[string]int{},
	}
}

// AddGame resolves a title against every provider and appends one record.
// A title the catalog does not know is a no-op. Any other provider failing
// only blanks its own fields, it never stops the pipeline.
func (a *Aggregator) AddGame(title string) {

	entries, err := a.catalog.Search(title)
	if err != nil {
		log.ErrS(err)
		return
	}

	if len(entries) == 0 {
		return // Not a game the catalog knows about
	}

	// All further lookups use the catalog's canonical name, not the input
	entry := entries[0]

	if entry.Name == "" {
		return // Every record needs a name
	}

	record := GameRecord{
		Name:            entry.Name,
		Slug:            slug.Make(entry.Name),
		Genres:          entry.Genres,
		Developers:      []string{},
		Publishers:      []string{},
		Platforms:       []PlatformRecord{},
		Series:          Series{Name: NoSeries, Games: []string{}},
		Related:         entry.SimilarGames,
		Prices:          Prices{Current: Unknown, Lowest: Unknown, PercentOff: Unknown, Stores: []string{}},
		CompletionHours: Unknown,
		ReviewScore:     Unknown,
		ImageURL:        "url",
		ArtworkURL:      "art",
	}

	// Companies
	var devs, pubs []string
	for _, company := range entry.Companies {
		if company.Developer {
			devs = append(devs, company.Name)
		}
		if company.Publisher {
			pubs = append(pubs, company.Name)
		}
	}
	record.Developers = helpers.FirstStrings(devs, maxCompanies)
	record.Publishers = helpers.FirstStrings(pubs, maxCompanies)

	// Platforms
	for _, platform := range entry.Platforms {
		record.Platforms = append(record.Platforms, PlatformRecord{
			Name:    platform.Name,
			LogoURL: platform.LogoURL,
		})
	}

	// Series
	if len(entry.Collection.Games) > 0 {
		record.Series.Name = entry.Collection.Name
		for _, game := range entry.Collection.Games {
			if helpers.SliceHasInt(seriesCategories, game.Category) {
				record.Series.Games = append(record.Series.Games, game.Name)
			}
		}
	}

	a.addPrices(&record)
	a.addReviewScore(&record)
	a.addCompletionHours(&record)

	a.lock.Lock()
	defer a.lock.Unlock()

	for _, genre := range record.Genres {
		a.genreTally[genre]++
	}

	a.records = append(a.records, record)
}

func (a *Aggregator) addPrices(record *GameRecord) {

	plain, err := a.pricing.SearchPlain(record.Name)
	if err != nil {
		err = helpers.IgnoreErrors(err, ErrNoMatch)
		if err != nil {
			log.ErrS(err)
		}
		return
	}

	samples, err := a.pricing.HistoricalLow(plain)
	if err != nil {
		log.ErrS(err)
	} else if len(samples) > 0 {
		record.Prices.Lowest = lowestPrice(samples)
	}

	offers, err := a.pricing.CurrentPrices(plain)
	if err != nil {
		log.ErrS(err)
		return
	}

	if len(offers) == 0 {
		return
	}

	record.Prices.Current, record.Prices.Stores = currentLow(offers)
	record.Prices.PercentOff = percentOff(normalPrice(offers), record.Prices.Current)
}

func (a *Aggregator) addReviewScore(record *GameRecord) {

	hits, err := a.reviews.Search(record.Name)
	if err != nil {
		log.ErrS(err)
		return
	}

	if !a.reviews.IsValid(hits) {
		return
	}

	review, err := a.reviews.GetReview(a.reviews.TopID(hits))
	if err != nil {
		log.ErrS(err)
		return
	}

	record.ReviewScore = int(review.TopCriticScore)
}

func (a *Aggregator) addCompletionHours(record *GameRecord) {

	// This provider fails in unpredictable ways, any error is just "unknown"
	hours, err := a.completion.AverageHours(record.Name)
	if err != nil {
		log.InfoS(err)
		return
	}

	record.CompletionHours = hours
}

// Records returns a copy of every record added so far, in insertion order.
func (a *Aggregator) Records() []GameRecord {

	a.lock.Lock()
	defer a.lock.Unlock()

	records := make([]GameRecord, len(a.records))
	copy(records, a.records)

	return records
}

// GenreTally returns a copy of the genre occurrence counts.
func (a *Aggregator) GenreTally() map[string]int {

	a.lock.Lock()
	defer a.lock.Unlock()

	tally := map[string]int{}
	for k, v := range a.genreTally {
		tally[k] = v
	}

	return tally
}
