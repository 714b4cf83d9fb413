// Package catalog manages projects, judges and judging criteria.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tally/pkg/domain"
	"tally/pkg/logger"
	"tally/pkg/serrors"
	"tally/pkg/storage"

	"go.uber.org/zap"
)

// DefaultMaxScore is used when a criterion is created without a MaxScore.
const DefaultMaxScore = 10

type catalog struct {
	storage storage.Storage
}

// New creates a Catalog backed by the provided storage.
func New(storage storage.Storage) Catalog {
	return &catalog{storage: storage}
}

func (c *catalog) CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, serrors.With(serrors.ErrValidation, "project name is required")
	}

	members := make([]string, 0, len(project.TeamMembers))
	for _, m := range project.TeamMembers {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	project.TeamMembers = members

	res, err := c.storage.StoreProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("could not store project: %w", err)
	}

	return res, nil
}

func (c *catalog) Project(ctx context.Context, ID domain.ProjectID) (*domain.Project, error) {
	res, err := c.storage.ProjectByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	return res, nil
}

func (c *catalog) Projects(ctx context.Context) ([]domain.Project, error) {
	res, err := c.storage.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get projects: %w", err)
	}

	return res, nil
}

func (c *catalog) CreateJudge(ctx context.Context, judge domain.Judge) (*domain.Judge, error) {
	judge.Name = strings.TrimSpace(judge.Name)
	judge.Email = strings.ToLower(strings.TrimSpace(judge.Email))
	if judge.Name == "" {
		return nil, serrors.With(serrors.ErrValidation, "judge name is required")
	}
	if !strings.Contains(judge.Email, "@") {
		return nil, serrors.With(serrors.ErrValidation, "judge email is invalid")
	}

	res, err := c.storage.StoreJudge(ctx, judge)
	if errors.Is(err, storage.ErrConflict) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a judge with this email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store judge: %w", err)
	}

	return res, nil
}

func (c *catalog) Judge(ctx context.Context, ID domain.JudgeID) (*domain.Judge, error) {
	res, err := c.storage.JudgeByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get judge: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "judge not found")
	}

	return res, nil
}

func (c *catalog) Judges(ctx context.Context) ([]domain.Judge, error) {
	res, err := c.storage.Judges(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get judges: %w", err)
	}

	return res, nil
}

func validateCriterion(input *CriterionInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return serrors.With(serrors.ErrValidation, "criterion name is required")
	}
	if input.Weight < domain.MinCriterionWeight || input.Weight > domain.MaxCriterionWeight {
		return serrors.With(serrors.ErrValidation, "criterion weight must be between %d and %d",
			domain.MinCriterionWeight, domain.MaxCriterionWeight)
	}
	if input.MaxScore == 0 {
		input.MaxScore = DefaultMaxScore
	}
	if input.MaxScore < 1 {
		return serrors.With(serrors.ErrValidation, "criterion max score must be at least 1")
	}

	return nil
}

func (c *catalog) CreateCriterion(ctx context.Context, input CriterionInput) (*domain.Criterion, error) {
	if err := validateCriterion(&input); err != nil {
		return nil, err
	}

	res, err := c.storage.StoreCriterion(ctx, domain.Criterion{
		Name:        input.Name,
		Description: input.Description,
		Weight:      input.Weight,
		MaxScore:    input.MaxScore,
	})
	if errors.Is(err, storage.ErrConflict) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a criterion named %q already exists", input.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store criterion: %w", err)
	}
	c.checkWeights(ctx)

	return res, nil
}

func (c *catalog) UpdateCriterion(ctx context.Context,
	ID domain.CriterionID,
	input CriterionInput) (*domain.Criterion, error) {
	if err := validateCriterion(&input); err != nil {
		return nil, err
	}

	res, err := c.storage.UpdateCriterion(ctx, ID, storage.CriterionUpdates{
		Name:        input.Name,
		Description: input.Description,
		Weight:      input.Weight,
		MaxScore:    input.MaxScore,
	})
	if errors.Is(err, storage.ErrConflict) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a criterion named %q already exists", input.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update criterion: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "criterion not found")
	}
	c.checkWeights(ctx)

	return res, nil
}

// DeleteCriterion removes the criterion and every score given on it.
func (c *catalog) DeleteCriterion(ctx context.Context, ID domain.CriterionID) error {
	deleted, err := c.storage.DeleteCriterion(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete criterion: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "criterion not found")
	}
	c.checkWeights(ctx)

	return nil
}

func (c *catalog) Criteria(ctx context.Context) ([]domain.Criterion, error) {
	res, err := c.storage.Criteria(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get criteria: %w", err)
	}

	return res, nil
}

func (c *catalog) WeightReport(ctx context.Context) (domain.WeightReport, error) {
	criteria, err := c.storage.Criteria(ctx)
	if err != nil {
		return domain.WeightReport{}, fmt.Errorf("could not get criteria: %w", err)
	}

	report := Weights(criteria)
	if !report.Balanced {
		logger.Warn(ctx, "criteria weights do not add up",
			zap.Int("total", report.Total),
			zap.Int("expected", domain.TotalCriteriaWeight))
	}

	return report, nil
}

// checkWeights logs a warning after a mutation left the weights unbalanced.
func (c *catalog) checkWeights(ctx context.Context) {
	if _, err := c.WeightReport(ctx); err != nil {
		logger.Error(ctx, "could not check criteria weights", zap.Error(err))
	}
}

// Weights sums the weights of criteria.
func Weights(criteria []domain.Criterion) domain.WeightReport {
	total := 0
	for _, c := range criteria {
		total += c.Weight
	}

	return domain.WeightReport{Total: total, Balanced: total == domain.TotalCriteriaWeight}
}
