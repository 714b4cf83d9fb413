package memory

import (
	"context"
	"tally/pkg/domain"
	"tally/pkg/storage"
	"time"

	"github.com/google/uuid"
)

func (m *Memory) StoreExport(_ context.Context, export domain.Export) (*domain.Export, error) {
	export.ID = domain.ExportID(uuid.New())
	export.CreatedAt = m.options.Now()
	export.Attempts = 0
	export.UpdatedAt = time.Time{}

	if err := m.exec(write{apply: func(s *state) {
		s.exports[export.ID] = export
	}}); err != nil {
		return nil, err
	}

	return &export, nil
}

func (m *Memory) UpdateExportByID(ctx context.Context,
	id domain.ExportID,
	updates storage.ExportUpdates) (*domain.Export, error) {
	current, err := m.ExportByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	updated := *current
	updated.Attempts++
	updated.UpdatedAt = m.options.Now()
	updated.Status = updates.Status
	if updates.Status == domain.ExportStatusFailed &&
		updates.MaxAttempts > 0 &&
		updated.Attempts < uint(updates.MaxAttempts) { //nolint: gosec
		updated.Status = current.Status
	}
	if updates.Content != nil {
		updated.Content = updates.Content
	}
	if updates.LastError != nil {
		updated.LastError = *updates.LastError
	}

	if err := m.exec(write{apply: func(s *state) {
		s.exports[id] = updated
	}}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (m *Memory) ExportByID(_ context.Context, id domain.ExportID) (*domain.Export, error) {
	var (
		export domain.Export
		found  bool
	)
	m.read(func(s *state) {
		export, found = s.exports[id]
	})
	if !found {
		return nil, nil
	}

	return &export, nil
}
