package igdb

import (
	"github.com/gamedb/gamescout/pkg/aggregator"
)

type Game struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Genres            []Genre           `json:"genres"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
	Platforms         []Platform        `json:"platforms"`
	Collection        *Collection       `json:"collection"`
	SimilarGames      []SimilarGame     `json:"similar_games"`
}

type Genre struct {
	Name string `json:"name"`
}

type InvolvedCompany struct {
	Company   Company `json:"company"`
	Developer bool    `json:"developer"`
	Publisher bool    `json:"publisher"`
}

type Company struct {
	Name string `json:"name"`
}

type Platform struct {
	Name         string       `json:"name"`
	PlatformLogo PlatformLogo `json:"platform_logo"`
}

type PlatformLogo struct {
	URL string `json:"url"`
}

type Collection struct {
	Name  string           `json:"name"`
	Games []CollectionGame `json:"games"`
}

type CollectionGame struct {
	Name     string `json:"name"`
	Category int    `json:"category"`
}

type SimilarGame struct {
	Name string `json:"name"`
}

// Normalize flattens a raw catalog match into a fully defaulted entry,
// so callers never have to check nested fields for presence.
func (g Game) Normalize() aggregator.CatalogEntry {

	entry := aggregator.CatalogEntry{
		Name:         g.Name,
		Genres:       []string{},
		Companies:    []aggregator.CatalogCompany{},
		Platforms:    []aggregator.CatalogPlatform{},
		SimilarGames: []string{},
	}

	for _, v := range g.Genres {
		entry.Genres = append(entry.Genres, v.Name)
	}

	for _, v := range g.InvolvedCompanies {
		entry.Companies = append(entry.Companies, aggregator.CatalogCompany{
			Name:      v.Company.Name,
			Developer: v.Developer,
			Publisher: v.Publisher,
		})
	}

	for _, v := range g.Platforms {
		entry.Platforms = append(entry.Platforms, aggregator.CatalogPlatform{
			Name:    v.Name,
			LogoURL: v.PlatformLogo.URL,
		})
	}

	if g.Collection != nil {
		entry.Collection.Name = g.Collection.Name
		for _, v := range g.Collection.Games {
			entry.Collection.Games = append(entry.Collection.Games, aggregator.CatalogCollectionGame{
				Name:     v.Name,
				Category: v.Category,
			})
		}
	}

	for _, v := range g.SimilarGames {
		entry.SimilarGames = append(entry.SimilarGames, v.Name)
	}

	return entry
}

// Search implements the aggregator's catalog contract.
func (c *Client) Search(title string) (entries []aggregator.CatalogEntry, err error) {

	games, err := c.SearchGames(title)
	if err != nil {
		return entries, err
	}

	for _, v := range games {
		entries = append(entries, v.Normalize())
	}

	return entries, err
}
