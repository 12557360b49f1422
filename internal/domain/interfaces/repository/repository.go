package repository

import (
	"context"

	"messenger-relay/internal/domain/entities"
)

// TurnRepository is the append-only turn log. Turns are never updated or
// deleted once written; Recent returns the newest `limit` turns for a user
// in chronological order.
type TurnRepository interface {
	Append(ctx context.Context, userID, role, content string) error
	Recent(ctx context.Context, userID string, limit int) ([]entities.Turn, error)
}
