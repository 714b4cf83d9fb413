package voting_test

import (
	"context"
	"errors"
	"fmt"
	"tally/internal/voting"
	"tally/pkg/domain"
	"tally/pkg/serrors"
	"tally/pkg/storage"
	mockstorage "tally/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTracker(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, voting.Tracker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tr, err := voting.New(st, voting.Options{
		Quota:          3,
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		AttemptTimeout: time.Second,
	})
	require.NoError(t, err)

	return ctrl, st, tr
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestTracker_ReserveVote_Accepted(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	projectID := domain.ProjectID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil),
			tx.EXPECT().LockVoter(gomock.Any(), domain.VoterIdentity("ip1")).Return(nil),
			tx.EXPECT().CountVotesByIdentity(gomock.Any(), domain.VoterIdentity("ip1")).Return(2, nil),
			tx.EXPECT().ProjectsVotedBy(gomock.Any(), domain.VoterIdentity("ip1")).
				Return([]domain.ProjectID{domain.ProjectID(uuid.New())}, nil),
			tx.EXPECT().InsertVote(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, vote domain.VoteRecord) error {
					require.Equal(t, domain.VoterIdentity("ip1"), vote.Identity)
					require.Equal(t, projectID, vote.ProjectID)

					return nil
				}),
		)
	})

	require.NoError(t, tr.ReserveVote(t.Context(), "ip1", projectID))
}

func TestTracker_ReserveVote_ProjectNotFound(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	projectID := domain.ProjectID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(nil, nil)
	})

	err := tr.ReserveVote(t.Context(), "ip1", projectID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTracker_ReserveVote_QuotaExceeded(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	projectID := domain.ProjectID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
		tx.EXPECT().LockVoter(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().CountVotesByIdentity(gomock.Any(), gomock.Any()).Return(3, nil)
	})

	err := tr.ReserveVote(t.Context(), "ip1", projectID)
	require.ErrorIs(t, err, serrors.ErrQuotaExceeded)
}

func TestTracker_ReserveVote_Duplicate(t *testing.T) {
	projectID := domain.ProjectID(uuid.New())

	t.Run("previous vote found", func(t *testing.T) {
		ctrl, st, tr := newTestTracker(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			tx.EXPECT().LockVoter(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().CountVotesByIdentity(gomock.Any(), gomock.Any()).Return(1, nil)
			tx.EXPECT().ProjectsVotedBy(gomock.Any(), gomock.Any()).Return([]domain.ProjectID{projectID}, nil)
		})

		err := tr.ReserveVote(t.Context(), "ip1", projectID)
		require.ErrorIs(t, err, serrors.ErrDuplicateVote)
	})

	t.Run("unique constraint violated", func(t *testing.T) {
		ctrl, st, tr := newTestTracker(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
			tx.EXPECT().LockVoter(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().CountVotesByIdentity(gomock.Any(), gomock.Any()).Return(0, nil)
			tx.EXPECT().ProjectsVotedBy(gomock.Any(), gomock.Any()).Return(nil, nil)
			tx.EXPECT().InsertVote(gomock.Any(), gomock.Any()).
				Return(fmt.Errorf("could not insert vote into pg: %w", storage.ErrConflict))
		})

		err := tr.ReserveVote(t.Context(), "ip1", projectID)
		require.ErrorIs(t, err, serrors.ErrDuplicateVote)
	})

	t.Run("conflict detected on commit", func(t *testing.T) {
		_, st, tr := newTestTracker(t)
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("could not commit tx: %w", storage.ErrConflict))

		err := tr.ReserveVote(t.Context(), "ip1", projectID)
		require.ErrorIs(t, err, serrors.ErrDuplicateVote)
	})
}

func TestTracker_ReserveVote_EmptyIdentity(t *testing.T) {
	_, _, tr := newTestTracker(t)

	err := tr.ReserveVote(t.Context(), "", domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTracker_ReserveVote_RetriesTransientConflicts(t *testing.T) {
	ctrl, st, tr := newTestTracker(t)
	projectID := domain.ProjectID(uuid.New())

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not lock voter: %w", storage.ErrLockTimeout))
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not commit tx: %w", storage.ErrSerialization))
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ProjectByID(gomock.Any(), projectID).Return(&domain.Project{ID: projectID}, nil)
		tx.EXPECT().LockVoter(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().CountVotesByIdentity(gomock.Any(), gomock.Any()).Return(0, nil)
		tx.EXPECT().ProjectsVotedBy(gomock.Any(), gomock.Any()).Return(nil, nil)
		tx.EXPECT().InsertVote(gomock.Any(), gomock.Any()).Return(nil)
	})

	require.NoError(t, tr.ReserveVote(t.Context(), "ip1", projectID))
}

func TestTracker_ReserveVote_TransientConflictExhausted(t *testing.T) {
	_, st, tr := newTestTracker(t)

	// one attempt plus two retries
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not lock voter: %w", storage.ErrLockTimeout)).
		Times(3)

	err := tr.ReserveVote(t.Context(), "ip1", domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrTransientConflict)
	require.ErrorIs(t, err, storage.ErrLockTimeout)
}

func TestTracker_ReserveVote_AttemptTimeoutIsTransient(t *testing.T) {
	_, st, tr := newTestTracker(t)

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("could not lock voter: %w", context.DeadlineExceeded)).
		Times(3)

	err := tr.ReserveVote(t.Context(), "ip1", domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrTransientConflict)
}

func TestTracker_ReserveVote_CallerDeadline(t *testing.T) {
	_, st, tr := newTestTracker(t)

	ctx, cancel := context.WithCancel(t.Context())
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ func(storage.AllStorage) error) error {
			cancel()

			return fmt.Errorf("could not lock voter: %w", ctx.Err())
		})

	err := tr.ReserveVote(ctx, "ip1", domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrTransientConflict)
}

func TestTracker_ReserveVote_UnexpectedErrorNotRetried(t *testing.T) {
	_, st, tr := newTestTracker(t)

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	err := tr.ReserveVote(t.Context(), "ip1", domain.ProjectID(uuid.New()))
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
}

func TestTracker_Stats(t *testing.T) {
	_, st, tr := newTestTracker(t)
	voted := []domain.ProjectID{domain.ProjectID(uuid.New()), domain.ProjectID(uuid.New())}

	st.EXPECT().ProjectsVotedBy(gomock.Any(), domain.VoterIdentity("ip1")).Return(voted, nil)

	stats, err := tr.Stats(t.Context(), "ip1")
	require.NoError(t, err)
	require.Equal(t, domain.VoteStats{
		Identity:        "ip1",
		TotalVotes:      2,
		Remaining:       1,
		VotedProjectIDs: voted,
	}, stats)

	_, err = tr.Stats(t.Context(), "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
