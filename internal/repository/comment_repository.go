package repository

import (
	"context"

	"gorm.io/gorm"

	"taskmanager/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.TaskComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByTask returns the comments of a task, oldest first
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error) {
	comments := make([]model.TaskComment, 0)
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
