package postgres

import (
	"context"
	"fmt"
	"tally/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scoresTable = "scores"
)

// ReplaceJudgeScores deletes the judge's scores for the project and inserts
// the given ones. It must run inside a transaction to be atomic.
func (p *PgSQL) ReplaceJudgeScores(ctx context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID,
	scores []domain.Score) ([]domain.Score, error) {
	if _, err := p.Builder.Delete(scoresTable).
		Where(
			goqu.I("judge_id").Eq(uuid.UUID(judgeID)),
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
		).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not delete previous scores in pg: %w", mapError(err))
	}

	if len(scores) == 0 {
		return nil, nil
	}

	rows := make([]PgScore, len(scores))
	for i := range rows {
		rows[i].FromDomain(scores[i])
	}

	var result []PgScore
	if err := p.Builder.Insert(scoresTable).
		Rows(rows).
		Returning(&PgScore{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scores into pg: %w", mapError(err))
	}

	return pgScoresToDomain(result), nil
}

func (p *PgSQL) JudgeScores(ctx context.Context,
	judgeID domain.JudgeID,
	projectID domain.ProjectID) ([]domain.Score, error) {
	var rows []PgScore
	if err := p.Builder.From(scoresTable).
		Where(
			goqu.I("judge_id").Eq(uuid.UUID(judgeID)),
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
		).
		Order(goqu.I("criterion_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch judge scores from pg: %w", mapError(err))
	}

	return pgScoresToDomain(rows), nil
}

func (p *PgSQL) Scores(ctx context.Context) ([]domain.Score, error) {
	var rows []PgScore
	if err := p.Builder.From(scoresTable).
		Order(goqu.I("project_id").Asc(), goqu.I("criterion_id").Asc(), goqu.I("judge_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scores from pg: %w", mapError(err))
	}

	return pgScoresToDomain(rows), nil
}
