package aggregator

// Unknown stands in for any numeric field a provider could not fill,
// so consumers never have to deal with nulls.
const Unknown = -1

// NoSeries is the series name for games that are not part of a collection.
const NoSeries = "N/A"

type GameRecord struct {
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Genres          []string         `json:"genres"`
	Developers      []string         `json:"developers"`
	Publishers      []string         `json:"publishers"`
	Platforms       []PlatformRecord `json:"platforms"`
	Series          Series           `json:"series"`
	Related         []string         `json:"related"`
	Prices          Prices           `json:"prices"`
	CompletionHours float64          `json:"completion_hours"`
	ReviewScore     int              `json:"review_score"`
	ImageURL        string           `json:"image_url"`
	ArtworkURL      string           `json:"artwork_url"`
}

type PlatformRecord struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type Series struct {
	Name  string   `json:"name"`
	Games []string `json:"games"`
}

type Prices struct {
	Current    float64  `json:"current"`
	Lowest     float64  `json:"lowest"`
	PercentOff int      `json:"percent_off"`
	Stores     []string `json:"stores"` // stores at the current lowest price, in order first seen
}
