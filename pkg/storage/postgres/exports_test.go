package postgres_test

import (
	"tally/pkg/domain"
	"tally/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Exports(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := t.Context()

	export, err := pgSQL.StoreExport(ctx, domain.Export{Kind: domain.ExportKindJury, Status: domain.ExportStatusPending})
	require.NoError(t, err)
	require.NotEqual(t, domain.ExportID{}, export.ID)
	require.Zero(t, export.Attempts)
	require.Nil(t, export.Content)

	t.Run("failed stays pending until attempts are spent", func(t *testing.T) {
		msg := "boom"
		updated, err := pgSQL.UpdateExportByID(ctx, export.ID, storage.ExportUpdates{
			Status:      domain.ExportStatusFailed,
			LastError:   &msg,
			MaxAttempts: 2,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ExportStatusPending, updated.Status)
		require.Equal(t, uint(1), updated.Attempts)
		require.Equal(t, "boom", updated.LastError)

		updated, err = pgSQL.UpdateExportByID(ctx, export.ID, storage.ExportUpdates{
			Status:      domain.ExportStatusFailed,
			LastError:   &msg,
			MaxAttempts: 2,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ExportStatusFailed, updated.Status)
		require.Equal(t, uint(2), updated.Attempts)
	})

	t.Run("completed stores content and clears the error", func(t *testing.T) {
		noError := ""
		updated, err := pgSQL.UpdateExportByID(ctx, export.ID, storage.ExportUpdates{
			Status:    domain.ExportStatusCompleted,
			Content:   []byte("Rank,Project,Votes\n"),
			LastError: &noError,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ExportStatusCompleted, updated.Status)
		require.Empty(t, updated.LastError)

		got, err := pgSQL.ExportByID(ctx, export.ID)
		require.NoError(t, err)
		require.Equal(t, "Rank,Project,Votes\n", string(got.Content))
		require.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("missing", func(t *testing.T) {
		got, err := pgSQL.ExportByID(ctx, domain.ExportID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)

		updated, err := pgSQL.UpdateExportByID(ctx, domain.ExportID(uuid.New()), storage.ExportUpdates{
			Status: domain.ExportStatusCompleted,
		})
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}
