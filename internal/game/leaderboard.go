package game

import (
	"fmt"
	"io"
	"time"
)

// LeaderboardEntry is one finished round.
type LeaderboardEntry struct {
	RoundID   string
	Name      string
	Score     int
	CreatedAt time.Time
}

// Leaderboard persists finished rounds and lists the best ones.
// Top must order by score descending, ties in insertion order.
type Leaderboard interface {
	Record(entry LeaderboardEntry) error
	Top(limit int) ([]LeaderboardEntry, error)
}

// FormatRank renders one leaderboard line, rank starting at 1.
func FormatRank(rank int, e LeaderboardEntry) string {
	return fmt.Sprintf("%d. %s: %d", rank, e.Name, e.Score)
}

// WriteLeaderboard writes a plain-text leaderboard snapshot to w.
func WriteLeaderboard(w io.Writer, size int, entries []LeaderboardEntry) error {
	if _, err := fmt.Fprintf(w, "Top-%d players:\n", size); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintln(w, FormatRank(i+1, e)); err != nil {
			return err
		}
	}
	return nil
}
