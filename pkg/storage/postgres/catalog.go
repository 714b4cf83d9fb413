package postgres

import (
	"context"
	"fmt"
	"tally/pkg/domain"
	"tally/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	projectsTable = "projects"
	judgesTable   = "judges"
	criteriaTable = "criteria"
)

func (p *PgSQL) StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var row PgProject
	if err := row.FromDomain(project); err != nil {
		return nil, err
	}

	if _, err := p.Builder.Insert(projectsTable).
		Rows(row).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store project into pg: %w", mapError(err))
	}

	return row.ToDomain()
}

func (p *PgSQL) ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) Projects(ctx context.Context) ([]domain.Project, error) {
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch projects from pg: %w", mapError(err))
	}

	out := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		project, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *project)
	}

	return out, nil
}

func (p *PgSQL) StoreJudge(ctx context.Context, judge domain.Judge) (*domain.Judge, error) {
	var row PgJudge
	row.FromDomain(judge)

	if _, err := p.Builder.Insert(judgesTable).
		Rows(row).
		Returning(&PgJudge{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store judge into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) JudgeByID(ctx context.Context, id domain.JudgeID) (*domain.Judge, error) {
	var row PgJudge
	found, err := p.Builder.From(judgesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch judge by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Judges(ctx context.Context) ([]domain.Judge, error) {
	var rows []PgJudge
	if err := p.Builder.From(judgesTable).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch judges from pg: %w", mapError(err))
	}

	out := make([]domain.Judge, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreCriterion(ctx context.Context, criterion domain.Criterion) (*domain.Criterion, error) {
	var row PgCriterion
	row.FromDomain(criterion)

	if _, err := p.Builder.Insert(criteriaTable).
		Rows(row).
		Returning(&PgCriterion{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store criterion into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

// UpdateCriterion replaces name, description, weight and max score of a
// criterion and returns the updated row, or nil if it does not exist.
func (p *PgSQL) UpdateCriterion(ctx context.Context,
	id domain.CriterionID,
	updates storage.CriterionUpdates) (*domain.Criterion, error) {
	var row PgCriterion
	found, err := p.Builder.Update(criteriaTable).
		Set(goqu.Record{
			"name":        updates.Name,
			"description": updates.Description,
			"weight":      updates.Weight,
			"max_score":   updates.MaxScore,
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCriterion{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update criterion in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteCriterion removes a criterion. Scores given on it are removed by the
// ON DELETE CASCADE foreign key.
func (p *PgSQL) DeleteCriterion(ctx context.Context, id domain.CriterionID) (bool, error) {
	res, err := p.Builder.Delete(criteriaTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete criterion in pg: %w", mapError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) CriterionByID(ctx context.Context, id domain.CriterionID) (*domain.Criterion, error) {
	var row PgCriterion
	found, err := p.Builder.From(criteriaTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch criterion by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Criteria(ctx context.Context) ([]domain.Criterion, error) {
	var rows []PgCriterion
	if err := p.Builder.From(criteriaTable).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch criteria from pg: %w", mapError(err))
	}

	out := make([]domain.Criterion, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}
