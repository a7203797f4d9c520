package usecase

import (
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/competition-lookup/internal/domain/competition"
	"github.com/valyala/bytebufferpool"
)

var blockDivider = strings.Repeat("=", 50)

// formatCompetitions renders each competition as a text block separated by
// a divider line, in slice order.
func formatCompetitions(items []competition.Competition) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, item := range items {
		writeCompetitionBlock(buf, item)
	}

	return buf.String()
}

func writeCompetitionBlock(buf *bytebufferpool.ByteBuffer, item competition.Competition) {
	fmt.Fprintf(buf, "Name: %s\n", item.Name)
	fmt.Fprintf(buf, "Type: %s\n", item.Type)

	current := item.CurrentSeason
	if current.ID != 0 {
		buf.WriteString("\nCurrent Season:\n")
		fmt.Fprintf(buf, "  Start: %s\n", current.StartDate)
		fmt.Fprintf(buf, "  End: %s\n", current.EndDate)
		fmt.Fprintf(buf, "  Current Matchday: %d\n", current.CurrentMatchday)
		if current.Winner != nil {
			fmt.Fprintf(buf, "  Winner: %s\n", current.Winner.Name)
		}
	}

	if len(item.Seasons) > 0 {
		buf.WriteString("\nPrevious Seasons:\n ")
		for i, season := range item.Seasons {
			if i > 0 {
				buf.WriteString(", ")
			}
			encoded, err := sonic.Marshal(season)
			if err != nil {
				continue
			}
			_, _ = buf.Write(encoded)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("\n" + blockDivider + "\n")
}

// formatNotFound is the degraded answer when nothing usable matched: it
// names the query and enumerates the catalog so the caller can retry with
// an exact name.
func formatNotFound(query string, names []string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "Information not found for %s.\n", query)
	buf.WriteString("It might be because the competition is not supported.\n")
	buf.WriteString("Please try again or try a different competition.\n")
	fmt.Fprintf(buf, "Available competitions: %s\n", strings.Join(names, ", "))

	return buf.String()
}
