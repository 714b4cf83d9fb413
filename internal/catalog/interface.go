package catalog

import (
	"context"
	"tally/pkg/domain"
)

// CriterionInput carries the client-provided fields of a criterion.
type CriterionInput struct {
	Name        string
	Description string
	Weight      int
	MaxScore    int
}

// Catalog manages the reference data votes and scores point to.
//
//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	Project(ctx context.Context, ID domain.ProjectID) (*domain.Project, error)
	Projects(ctx context.Context) ([]domain.Project, error)

	CreateJudge(ctx context.Context, judge domain.Judge) (*domain.Judge, error)
	Judge(ctx context.Context, ID domain.JudgeID) (*domain.Judge, error)
	Judges(ctx context.Context) ([]domain.Judge, error)

	CreateCriterion(ctx context.Context, input CriterionInput) (*domain.Criterion, error)
	UpdateCriterion(ctx context.Context, ID domain.CriterionID, input CriterionInput) (*domain.Criterion, error)
	DeleteCriterion(ctx context.Context, ID domain.CriterionID) error
	Criteria(ctx context.Context) ([]domain.Criterion, error)
	// WeightReport sums the criteria weights. An unbalanced total is logged
	// and reported, never rejected.
	WeightReport(ctx context.Context) (domain.WeightReport, error)
}
