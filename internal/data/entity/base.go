package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries identity, lifecycle timestamps and the soft-delete flag.
// ID and the timestamps are assigned by the repository on first save,
// not by the caller.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Deleted   bool      `db:"deleted"`
}

// MarkDeleted flips the soft-delete flag. The row stays in the store but
// becomes unreachable through every read path.
func (b *Base) MarkDeleted() {
	b.Deleted = true
}
