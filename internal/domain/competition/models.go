package competition

import "time"

// Summary is the shape returned by the provider's catalog listing. Only
// the fields needed to key the catalog and fetch details are kept.
type Summary struct {
	ID   int64
	Name string
	Code string
}

// CatalogEntry is the value side of the name-keyed catalog mapping.
type CatalogEntry struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// Catalog maps a competition's display name to its provider identifiers.
// Once built it is read-only; names are assumed unique by the upstream
// provider (a collision keeps the last entry seen).
type Catalog map[string]CatalogEntry

// Candidate is one resolver match for a free-text query. Candidates come
// from an external model and are not guaranteed to exist upstream.
type Candidate struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// TeamRef identifies a team referenced from a season (e.g. its winner).
type TeamRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
}

// Season holds one season of a competition. Dates are kept as the
// provider's ISO calendar-date strings.
type Season struct {
	ID              int64    `json:"id"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	CurrentMatchday int      `json:"currentMatchday,omitempty"`
	Winner          *TeamRef `json:"winner,omitempty"`
}

// Competition is the full per-id record. It lives only for the duration
// of a single lookup; nothing caches it.
type Competition struct {
	ID            int64
	Name          string
	Code          string
	Type          string
	CurrentSeason Season
	Seasons       []Season
}

// Team is a club participating in a competition.
type Team struct {
	ID         int64
	Name       string
	ShortName  string
	TLA        string
	Crest      string
	Venue      string
	Founded    int
	ClubColors string
}

// Score holds a home/away goal pair.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Match is a single fixture within a competition.
type Match struct {
	ID       int64
	UTCDate  time.Time
	Status   string
	Matchday int
	Stage    string
	Group    string
	HomeTeam TeamRef
	AwayTeam TeamRef
	Winner   string
	FullTime *Score
	HalfTime *Score
}
