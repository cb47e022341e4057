package repository

import (
	"context"

	"gorm.io/gorm"

	"taskmanager/internal/model"
)

type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *model.TaskActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByTask returns the activity log of a task, oldest first
func (r *ActivityLogRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskActivityLog, error) {
	entries := make([]model.TaskActivityLog, 0)
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}
