package httpapi

import (
	"time"

	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

type lookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

type lookupResponse struct {
	Query  string `json:"query"`
	Result string `json:"result"`
}

type supportedCompetitionsResponse struct {
	Competitions []string `json:"competitions"`
}

type teamDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName,omitempty"`
	TLA        string `json:"tla,omitempty"`
	Crest      string `json:"crest,omitempty"`
	Venue      string `json:"venue,omitempty"`
	Founded    int    `json:"founded,omitempty"`
	ClubColors string `json:"clubColors,omitempty"`
}

func teamToDTO(item competition.Team) teamDTO {
	return teamDTO{
		ID:         item.ID,
		Name:       item.Name,
		ShortName:  item.ShortName,
		TLA:        item.TLA,
		Crest:      item.Crest,
		Venue:      item.Venue,
		Founded:    item.Founded,
		ClubColors: item.ClubColors,
	}
}

type matchDTO struct {
	ID       int64              `json:"id"`
	UTCDate  string             `json:"utcDate"`
	Status   string             `json:"status"`
	Matchday int                `json:"matchday,omitempty"`
	Stage    string             `json:"stage,omitempty"`
	Group    string             `json:"group,omitempty"`
	HomeTeam string             `json:"homeTeam"`
	AwayTeam string             `json:"awayTeam"`
	Winner   string             `json:"winner,omitempty"`
	FullTime *competition.Score `json:"fullTime,omitempty"`
	HalfTime *competition.Score `json:"halfTime,omitempty"`
}

func matchToDTO(item competition.Match) matchDTO {
	return matchDTO{
		ID:       item.ID,
		UTCDate:  item.UTCDate.UTC().Format(time.RFC3339),
		Status:   item.Status,
		Matchday: item.Matchday,
		Stage:    item.Stage,
		Group:    item.Group,
		HomeTeam: item.HomeTeam.Name,
		AwayTeam: item.AwayTeam.Name,
		Winner:   item.Winner,
		FullTime: item.FullTime,
		HalfTime: item.HalfTime,
	}
}
