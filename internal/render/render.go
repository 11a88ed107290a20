// Package render writes workflow snapshots as plain text. Band colors
// are reported by name; terminal styling carries no contract.
package render

import (
	"fmt"
	"io"
	"strings"

	"networx-client/internal/match"
	"networx-client/internal/workflow"
)

const scoreBarWidth = 20

// Summary returns the results headline.
func Summary(n int) string {
	return fmt.Sprintf("Discovered %d users with similar profiles", n)
}

// Results writes the full results view for a snapshot.
func Results(w io.Writer, snap workflow.Snapshot) {
	fmt.Fprintln(w, "Similar Users Found")
	fmt.Fprintln(w, Summary(len(snap.Matches)))
	fmt.Fprintln(w)
	for i, m := range snap.Matches {
		MatchCard(w, i+1, m)
		fmt.Fprintln(w)
	}
}

// MatchCard writes one match entry.
func MatchCard(w io.Writer, position int, m match.Match) {
	rating := match.Classify(m.SimilarityScore)

	fmt.Fprintf(w, "User #%d (%s)\n", position, m.UserID)
	fmt.Fprintf(w, "  Similarity: %.1f%% - %s [%s]\n", m.SimilarityScore*100, rating.Band.Label(), rating.Color)
	fmt.Fprintf(w, "  %s\n", scoreBar(m.SimilarityScore))
	fmt.Fprintf(w, "  Age:      %d\n", m.Age)
	fmt.Fprintf(w, "  Gender:   %s\n", m.Gender)
	fmt.Fprintf(w, "  Location: %s\n", m.Location)
	fmt.Fprintf(w, "  Income:   $%d\n", m.Income)
	fmt.Fprintf(w, "  Spending: $%d\n", m.TotalSpending)
	fmt.Fprintf(w, "  Category: %s\n", m.ProductCategoryPreference)
	fmt.Fprintf(w, "  Time:     %dm\n", m.TimeSpentOnSiteMinutes)
	fmt.Fprintf(w, "  Interests: %s\n", m.Interests)
}

// ErrorBanner writes the inline error shown on the collection view.
func ErrorBanner(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintf(w, "!! %s\n", msg)
}

func scoreBar(score float64) string {
	filled := int(score * scoreBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", scoreBarWidth-filled) + "]"
}
