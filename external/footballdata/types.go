package footballdata

import (
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
)

// Wire payloads for football-data.org v4. Field presence is part of the
// provider contract: decoding validates the `validate` tags and a record
// missing a required field fails the whole response instead of being
// silently dropped.

type competitionsEnvelope struct {
	Competitions []summaryPayload `json:"competitions" validate:"dive"`
}

type summaryPayload struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

type teamRefPayload struct {
	ID        int64  `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

type seasonPayload struct {
	ID              int64           `json:"id" validate:"required"`
	StartDate       string          `json:"startDate" validate:"required"`
	EndDate         string          `json:"endDate" validate:"required"`
	CurrentMatchday *int            `json:"currentMatchday"`
	Winner          *teamRefPayload `json:"winner"`
}

type competitionPayload struct {
	ID            int64           `json:"id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Code          string          `json:"code" validate:"required"`
	Type          string          `json:"type" validate:"required"`
	CurrentSeason *seasonPayload  `json:"currentSeason" validate:"required"`
	Seasons       []seasonPayload `json:"seasons" validate:"omitempty,dive"`
}

type teamsEnvelope struct {
	Teams []teamPayload `json:"teams" validate:"dive"`
}

type teamPayload struct {
	ID         int64  `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	ShortName  string `json:"shortName"`
	TLA        string `json:"tla"`
	Crest      string `json:"crest"`
	Venue      string `json:"venue"`
	Founded    int    `json:"founded"`
	ClubColors string `json:"clubColors"`
}

type matchesEnvelope struct {
	Matches []matchPayload `json:"matches" validate:"dive"`
}

type matchPayload struct {
	ID       int64           `json:"id" validate:"required"`
	UTCDate  string          `json:"utcDate" validate:"required"`
	Status   string          `json:"status" validate:"required"`
	Matchday int             `json:"matchday"`
	Stage    string          `json:"stage"`
	Group    string          `json:"group"`
	HomeTeam *teamRefPayload `json:"homeTeam" validate:"required"`
	AwayTeam *teamRefPayload `json:"awayTeam" validate:"required"`
	Score    *scorePayload   `json:"score"`
}

type scorePayload struct {
	Winner   string            `json:"winner"`
	FullTime *scoreSidePayload `json:"fullTime"`
	HalfTime *scoreSidePayload `json:"halfTime"`
}

type scoreSidePayload struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

func mapSummary(item summaryPayload) competition.Summary {
	return competition.Summary{
		ID:   item.ID,
		Name: item.Name,
		Code: item.Code,
	}
}

func mapTeamRef(item *teamRefPayload) *competition.TeamRef {
	if item == nil {
		return nil
	}
	return &competition.TeamRef{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		TLA:       item.TLA,
	}
}

func mapSeason(item seasonPayload) competition.Season {
	season := competition.Season{
		ID:        item.ID,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
		Winner:    mapTeamRef(item.Winner),
	}
	if item.CurrentMatchday != nil {
		season.CurrentMatchday = *item.CurrentMatchday
	}
	return season
}

func mapCompetition(item competitionPayload) competition.Competition {
	out := competition.Competition{
		ID:            item.ID,
		Name:          item.Name,
		Code:          item.Code,
		Type:          item.Type,
		CurrentSeason: mapSeason(*item.CurrentSeason),
	}
	if len(item.Seasons) > 0 {
		out.Seasons = make([]competition.Season, 0, len(item.Seasons))
		for _, season := range item.Seasons {
			out.Seasons = append(out.Seasons, mapSeason(season))
		}
	}
	return out
}

func mapTeam(item teamPayload) competition.Team {
	return competition.Team{
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

func mapScoreSide(item *scoreSidePayload) *competition.Score {
	if item == nil || item.Home == nil || item.Away == nil {
		return nil
	}
	return &competition.Score{Home: *item.Home, Away: *item.Away}
}
