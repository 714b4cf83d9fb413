package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportID uniquely identifies an export request.
type ExportID uuid.UUID

func (id ExportID) String() string { return uuid.UUID(id).String() }

// ExportKind selects which result table an export renders.
type ExportKind string

const (
	ExportKindJury      ExportKind = "jury"
	ExportKindCommunity ExportKind = "community"
)

// Valid reports whether k is a known export kind.
func (k ExportKind) Valid() bool {
	return k == ExportKindJury || k == ExportKindCommunity
}

// ExportStatus represents the lifecycle state of an export.
type ExportStatus string

const (
	// ExportStatusPending indicates the export has been enqueued but not rendered yet.
	ExportStatusPending ExportStatus = "PENDING"
	// ExportStatusCompleted indicates Content holds the rendered CSV.
	ExportStatusCompleted ExportStatus = "COMPLETED"
	// ExportStatusFailed indicates rendering gave up; see LastError and Attempts.
	ExportStatusFailed ExportStatus = "FAILED"
)

// Export is an asynchronously rendered CSV of one of the result tables.
type Export struct {
	ID     ExportID     `json:"id"`
	Kind   ExportKind   `json:"kind"`
	Status ExportStatus `json:"status"`
	// Content is the rendered CSV, set once Status is COMPLETED.
	Content []byte `json:"-"`

	Attempts  uint   `json:"attempts"`
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
