package results

import (
	"context"
	"io"
	"tally/pkg/domain"
)

// Results computes the ranked result tables from the current scores and votes.
//
//go:generate mockgen -package mockresults -source=interface.go -destination=mock/mockresults.go *
type Results interface {
	JuryResults(ctx context.Context) ([]domain.AggregateResult, error)
	CommunityResults(ctx context.Context) ([]domain.CommunityResult, error)
	// WriteCSV renders the table selected by kind as CSV into w.
	WriteCSV(ctx context.Context, kind domain.ExportKind, w io.Writer) error
}
