// Package results reduces scores and votes to ranked result tables. Every
// computation reads a single consistent snapshot of the store.
package results

import (
	"context"
	"fmt"
	"io"
	"tally/internal/jury"
	"tally/internal/ranking"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"
	"tally/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const meterName = "tally/internal/results"

type results struct {
	storage  storage.Storage
	duration metric.Float64Histogram
}

// New creates a Results service backed by the provided storage.
func New(storage storage.Storage) (Results, error) {
	duration, err := otel.Meter(meterName).Float64Histogram("tally_results_duration_seconds",
		metric.WithDescription("Time spent computing a result table"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create results histogram: %w", err)
	}

	return &results{storage: storage, duration: duration}, nil
}

// ComputeJuryResults aggregates scores per project and ranks every project
// by weighted score.
func ComputeJuryResults(scores []domain.Score,
	criteria []domain.Criterion,
	projects []domain.Project) []domain.AggregateResult {
	return ranking.RankJury(jury.Aggregate(scores, criteria, projects), projects)
}

// ComputeCommunityResults counts votes per project and ranks the projects
// that received at least one vote.
func ComputeCommunityResults(votes []domain.VoteRecord, projects []domain.Project) []domain.CommunityResult {
	counts := map[domain.ProjectID]int{}
	for _, v := range votes {
		counts[v.ProjectID]++
	}

	return ranking.RankCommunity(counts, projects)
}

type juryTable struct {
	criteria []domain.Criterion
	projects []domain.Project
	results  []domain.AggregateResult
}

func (r *results) juryTable(ctx context.Context) (*juryTable, error) {
	defer r.observe(ctx, domain.ExportKindJury, time.Now())

	var table juryTable
	if err := r.storage.WithSnapshot(ctx, func(tx storage.AllStorage) error {
		scores, err := tx.Scores(ctx)
		if err != nil {
			return fmt.Errorf("could not get scores: %w", err)
		}
		table.criteria, err = tx.Criteria(ctx)
		if err != nil {
			return fmt.Errorf("could not get criteria: %w", err)
		}
		table.projects, err = tx.Projects(ctx)
		if err != nil {
			return fmt.Errorf("could not get projects: %w", err)
		}

		if n := jury.Orphans(scores, table.criteria, table.projects); n > 0 {
			logger.Debug(ctx, "ignoring scores with unknown project or criterion", zap.Int("count", n))
		}
		table.results = ComputeJuryResults(scores, table.criteria, table.projects)

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not compute jury results: %w", err)
	}

	return &table, nil
}

type communityTable struct {
	projects []domain.Project
	results  []domain.CommunityResult
}

func (r *results) communityTable(ctx context.Context) (*communityTable, error) {
	defer r.observe(ctx, domain.ExportKindCommunity, time.Now())

	var table communityTable
	if err := r.storage.WithSnapshot(ctx, func(tx storage.AllStorage) error {
		counts, err := tx.VoteCountsByProject(ctx)
		if err != nil {
			return fmt.Errorf("could not count votes: %w", err)
		}
		table.projects, err = tx.Projects(ctx)
		if err != nil {
			return fmt.Errorf("could not get projects: %w", err)
		}
		table.results = ranking.RankCommunity(counts, table.projects)

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not compute community results: %w", err)
	}

	return &table, nil
}

func (r *results) observe(ctx context.Context, kind domain.ExportKind, start time.Time) {
	r.duration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("table", string(kind))))
}

func (r *results) JuryResults(ctx context.Context) ([]domain.AggregateResult, error) {
	table, err := r.juryTable(ctx)
	if err != nil {
		return nil, err
	}

	return table.results, nil
}

func (r *results) CommunityResults(ctx context.Context) ([]domain.CommunityResult, error) {
	table, err := r.communityTable(ctx)
	if err != nil {
		return nil, err
	}

	return table.results, nil
}

func (r *results) WriteCSV(ctx context.Context, kind domain.ExportKind, w io.Writer) error {
	switch kind {
	case domain.ExportKindJury:
		table, err := r.juryTable(ctx)
		if err != nil {
			return err
		}

		return WriteJuryCSV(w, table.results, table.criteria, table.projects)
	case domain.ExportKindCommunity:
		table, err := r.communityTable(ctx)
		if err != nil {
			return err
		}

		return WriteCommunityCSV(w, table.results, table.projects)
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown result table %q", kind)
	}
}
