package domain

import (
	"time"

	"github.com/google/uuid"
)

// JudgeID uniquely identifies a jury member.
type JudgeID uuid.UUID

func (id JudgeID) String() string { return uuid.UUID(id).String() }

// Judge is a jury member allowed to score projects.
type Judge struct {
	ID        JudgeID   `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
