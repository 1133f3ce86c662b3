package aggregator

import (
	"errors"
)

// ErrNoMatch is returned by providers when a title fails to resolve.
var ErrNoMatch = errors.New("no match")

// CatalogClient resolves a free-text title to canonical catalog entries,
// best match first. Entries come back fully defaulted, never with nil slices.
type CatalogClient interface {
	Search(title string) ([]CatalogEntry, error)
}

type CatalogEntry struct {
	Name         string
	Genres       []string
	Companies    []CatalogCompany
	Platforms    []CatalogPlatform
	Collection   CatalogCollection
	SimilarGames []string
}

type CatalogCompany struct {
	Name      string
	Developer bool
	Publisher bool
}

type CatalogPlatform struct {
	Name    string
	LogoURL string
}

type CatalogCollection struct {
	Name  string
	Games []CatalogCollectionGame
}

type CatalogCollectionGame struct {
	Name     string
	Category int
}

// PricingClient resolves a title to a provider identifier ("plain") and
// serves price data keyed on it.
type PricingClient interface {
	SearchPlain(title string) (string, error) // ErrNoMatch when the title does not resolve
	HistoricalLow(plain string) ([]float64, error)
	CurrentPrices(plain string) ([]StoreOffer, error)
}

type StoreOffer struct {
	Store    string
	PriceNew float64 // discounted price
	PriceOld float64 // non-discounted reference price
}

// ReviewClient serves aggregated critic scores behind a search flow.
type ReviewClient interface {
	Search(title string) ([]ReviewHit, error)
	IsValid(hits []ReviewHit) bool
	TopID(hits []ReviewHit) int
	GetReview(id int) (Review, error)
}

type ReviewHit struct {
	ID   int
	Name string
	Dist float64
}

type Review struct {
	TopCriticScore float64
}

// CompletionClient serves average hours-to-finish. The provider behind it
// has no reliable error contract, so any error just means unavailable.
type CompletionClient interface {
	AverageHours(title string) (float64, error)
}
