// Package weather fetches a minimal daily weather summary for the serving
// directory. It is an independent collaborator of the schedule pipeline and
// shares no data with it.
package weather

import "context"

// Summary is the normalized document written next to the schedule feed.
type Summary struct {
	MaxTemp   float64 `json:"max_temp"`
	Condition string  `json:"condition"`
	FetchedAt string  `json:"fetched_at"`
}

// Source yields the daily summary. The narrow interface keeps tests off the
// network and away from real credentials.
type Source interface {
	DailySummary(ctx context.Context) (Summary, error)
}
