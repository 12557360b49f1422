package repository

import (
	"context"
	"fmt"
	"sync"

	"messenger-relay/internal/domain/entities"

	"gorm.io/gorm"
)

// SQLite only supports one writer at a time, so we need a lock
// whenever we write to the database
var dbMutex sync.Mutex

type SqliteTurnRepository struct {
	db *gorm.DB
}

func NewSqliteTurnRepository(db *gorm.DB) *SqliteTurnRepository {
	return &SqliteTurnRepository{db: db}
}

// Append inserts a new turn. The timestamp is assigned by the database;
// duplicate content is allowed.
func (r *SqliteTurnRepository) Append(ctx context.Context, userID, role, content string) error {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	turn := entities.Turn{
		UserID:  userID,
		Role:    role,
		Content: content,
	}
	if err := r.db.WithContext(ctx).Create(&turn).Error; err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	return nil
}

// Recent returns the newest `limit` turns for a user in chronological order,
// oldest of the window first. Unknown users yield an empty slice.
func (r *SqliteTurnRepository) Recent(ctx context.Context, userID string, limit int) ([]entities.Turn, error) {
	var turns []entities.Turn
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&turns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent turns: %w", err)
	}

	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
