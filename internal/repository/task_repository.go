package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmanager/internal/model"
)

// Mutation is the set of rows written by a single task update.
type Mutation struct {
	Task     *model.Task
	Comment  *model.TaskComment
	Activity *model.TaskActivityLog
}

// MemberFinder looks up team members by display name.
type MemberFinder interface {
	FindByName(ctx context.Context, name string) (*model.TeamMember, error)
}

// MutateFunc receives the locked current row and returns the writes to
// perform. members reads through the same transaction, so lookups never wait
// for a second connection. A nil Mutation leaves the task untouched.
type MutateFunc func(ctx context.Context, members MemberFinder, current model.Task) (*Mutation, error)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Create(task).Error
	if hasPgCode(err, pgForeignKeyViolation) {
		return ErrMemberNotFound
	}
	return err
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListWithCommentCount retrieves every task with the number of its comments
func (r *TaskRepository) ListWithCommentCount(ctx context.Context) ([]model.TaskSummary, error) {
	tasks := make([]model.TaskSummary, 0)
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("tasks.*, COUNT(task_comments.id) AS comment_count").
		Joins("LEFT JOIN task_comments ON task_comments.task_id = tasks.id").
		Group("tasks.id").
		Order("tasks.id").
		Scan(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Mutate runs a read-modify-write of one task inside a transaction. The
// current row is locked so concurrent updates to the same task serialize.
func (r *TaskRepository) Mutate(ctx context.Context, id uint, fn MutateFunc) (*model.Task, error) {
	var updated *model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		mutation, err := fn(ctx, NewTeamMemberRepository(tx), current)
		if err != nil {
			return err
		}
		if mutation == nil || mutation.Task == nil {
			updated = &current
			return nil
		}

		mutation.Task.ID = current.ID
		if err := tx.Save(mutation.Task).Error; err != nil {
			if hasPgCode(err, pgForeignKeyViolation) {
				return ErrMemberNotFound
			}
			return err
		}

		if mutation.Comment != nil {
			mutation.Comment.TaskID = current.ID
			if err := NewCommentRepository(tx).Create(ctx, mutation.Comment); err != nil {
				return err
			}
		}

		if mutation.Activity != nil {
			mutation.Activity.TaskID = current.ID
			if err := NewActivityLogRepository(tx).Create(ctx, mutation.Activity); err != nil {
				return err
			}
		}

		updated = mutation.Task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task together with its comments and activity log and
// returns the deleted row.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&model.TaskComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskActivityLog{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Task{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
