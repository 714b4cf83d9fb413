package jury_test

import (
	"errors"
	"tally/internal/jury"
	"tally/pkg/domain"
	"tally/pkg/serrors"
	mockstorage "tally/pkg/storage/mock"
	"tally/pkg/storage/memory"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	storage   *memory.Memory
	service   jury.Service
	judge     *domain.Judge
	project   *domain.Project
	criterion *domain.Criterion
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st := memory.New(memory.Options{})
	judge, err := st.StoreJudge(t.Context(), domain.Judge{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	project, err := st.StoreProject(t.Context(), domain.Project{Name: "Alpha"})
	require.NoError(t, err)
	criterion, err := st.StoreCriterion(t.Context(), domain.Criterion{Name: "Impact", Weight: 100, MaxScore: 10})
	require.NoError(t, err)

	return fixture{
		storage:   st,
		service:   jury.New(st),
		judge:     judge,
		project:   project,
		criterion: criterion,
	}
}

func TestService_SubmitScores(t *testing.T) {
	f := newFixture(t)

	stored, err := f.service.SubmitScores(t.Context(), f.judge.ID, f.project.ID, []jury.ScoreInput{
		{CriterionID: f.criterion.ID, Value: 7, Comment: "solid"},
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, 7, stored[0].Value)
	require.Equal(t, "solid", stored[0].Comment)

	scores, err := f.service.JudgeScores(t.Context(), f.judge.ID, f.project.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, f.criterion.ID, scores[0].CriterionID)
}

func TestService_SubmitScores_LastWriteWins(t *testing.T) {
	f := newFixture(t)
	other, err := f.storage.StoreCriterion(t.Context(), domain.Criterion{Name: "Design", Weight: 10, MaxScore: 5})
	require.NoError(t, err)

	_, err = f.service.SubmitScores(t.Context(), f.judge.ID, f.project.ID, []jury.ScoreInput{
		{CriterionID: f.criterion.ID, Value: 3},
		{CriterionID: other.ID, Value: 5},
	})
	require.NoError(t, err)

	_, err = f.service.SubmitScores(t.Context(), f.judge.ID, f.project.ID, []jury.ScoreInput{
		{CriterionID: f.criterion.ID, Value: 9},
	})
	require.NoError(t, err)

	scores, err := f.service.JudgeScores(t.Context(), f.judge.ID, f.project.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, 9, scores[0].Value)
}

func TestService_SubmitScores_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		inputs []jury.ScoreInput
		kind   serrors.Kind
	}{
		{name: "empty", inputs: nil, kind: serrors.ErrValidation},
		{name: "below range", inputs: []jury.ScoreInput{{CriterionID: f.criterion.ID, Value: 0}}, kind: serrors.ErrValidation},
		{name: "above range", inputs: []jury.ScoreInput{{CriterionID: f.criterion.ID, Value: 11}}, kind: serrors.ErrValidation},
		{
			name: "duplicate criterion",
			inputs: []jury.ScoreInput{
				{CriterionID: f.criterion.ID, Value: 2},
				{CriterionID: f.criterion.ID, Value: 3},
			},
			kind: serrors.ErrValidation,
		},
		{
			name:   "unknown criterion",
			inputs: []jury.ScoreInput{{CriterionID: domain.CriterionID(uuid.New()), Value: 1}},
			kind:   serrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.SubmitScores(t.Context(), f.judge.ID, f.project.ID, tt.inputs)
			require.ErrorIs(t, err, tt.kind)
		})
	}

	// nothing was stored by the rejected submissions
	scores, err := f.service.JudgeScores(t.Context(), f.judge.ID, f.project.ID)
	require.NoError(t, err)
	require.Empty(t, scores)
}

func TestService_SubmitScores_NotFound(t *testing.T) {
	f := newFixture(t)
	inputs := []jury.ScoreInput{{CriterionID: f.criterion.ID, Value: 5}}

	_, err := f.service.SubmitScores(t.Context(), domain.JudgeID(uuid.New()), f.project.ID, inputs)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorContains(t, err, "judge not found")

	_, err = f.service.SubmitScores(t.Context(), f.judge.ID, domain.ProjectID(uuid.New()), inputs)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorContains(t, err, "project not found")
}

func TestService_JudgeScores_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	boom := errors.New("boom")
	st.EXPECT().JudgeScores(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := jury.New(st).JudgeScores(t.Context(), domain.JudgeID{}, domain.ProjectID{})
	require.ErrorIs(t, err, boom)
}
