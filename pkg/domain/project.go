package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a competing project.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ProjectID uuid.UUID

func (id ProjectID) String() string { return uuid.UUID(id).String() }

// Project is a competing entry. It is read-only reference data for voting
// and scoring.
type Project struct {
	ID          ProjectID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// TeamMembers lists the names of the people behind the project.
	TeamMembers []string  `json:"teamMembers"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectsByID indexes projects by their ID.
func ProjectsByID(projects []Project) map[ProjectID]Project {
	out := make(map[ProjectID]Project, len(projects))
	for _, p := range projects {
		out[p.ID] = p
	}

	return out
}
