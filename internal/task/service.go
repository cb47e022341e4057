// Package task holds the change-tracking engine for tasks: diffing proposed
// updates, applying them, narrating the result and announcing lifecycle
// events.
package task

import (
	"context"
	"fmt"
	"time"

	"taskmanager/internal/directory"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	ListWithCommentCount(ctx context.Context) ([]model.TaskSummary, error)
	Mutate(ctx context.Context, id uint, fn repository.MutateFunc) (*model.Task, error)
	Delete(ctx context.Context, id uint) (*model.Task, error)
}

type CommentStore interface {
	ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error)
}

type ActivityStore interface {
	ListByTask(ctx context.Context, taskID uint) ([]model.TaskActivityLog, error)
}

// Resolver maps an assignee display name to a team member id for new tasks.
type Resolver interface {
	Resolve(ctx context.Context, name string) (uint, error)
}

// Notifier hands a message to the chat side channel. It must not block.
type Notifier interface {
	Notify(message, channel string)
}

// Channels names where lifecycle announcements go. Default receives every
// event; Announce additionally receives a fixed notice on creation.
type Channels struct {
	Default  string
	Announce string
}

// createdNotice is sent to the announce channel for every new task.
const createdNotice = "new message"

type Service struct {
	tasks    TaskStore
	comments CommentStore
	activity ActivityStore
	members  Resolver
	notifier Notifier
	channels Channels
	now      func() time.Time
}

func NewService(
	tasks TaskStore,
	comments CommentStore,
	activity ActivityStore,
	members Resolver,
	notifier Notifier,
	channels Channels,
) *Service {
	return &Service{
		tasks:    tasks,
		comments: comments,
		activity: activity,
		members:  members,
		notifier: notifier,
		channels: channels,
		now:      time.Now,
	}
}

// Create stores a new task assigned to a resolvable member.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Task, error) {
	assigneeID, err := s.members.Resolve(ctx, req.Assignee)
	if err != nil {
		return nil, fmt.Errorf("resolve assignee %q: %w", req.Assignee, err)
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Assignee:    req.Assignee,
		AssigneeID:  &assigneeID,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		Comments:    req.Comments,
	}
	if task.DueDate != nil {
		day := dateOnly(*task.DueDate)
		task.DueDate = &day
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.notifier.Notify(createdNotice, s.channels.Announce)
	s.notifier.Notify(fmt.Sprintf("New Task \"%s\" has been assigned to \"%s\", due on %s",
		task.Title, task.Assignee, FormatDueDate(task.DueDate)), s.channels.Default)

	return task, nil
}

// Update applies the fields of req that differ from the stored task. An
// update that changes nothing returns the stored task and writes nothing.
func (s *Service) Update(ctx context.Context, id uint, req UpdateRequest) (*model.Task, error) {
	changed := false
	updated, err := s.tasks.Mutate(ctx, id, func(ctx context.Context, members repository.MemberFinder, current model.Task) (*repository.Mutation, error) {
		changes := ComputeChanges(current, req)
		if changes.IsEmpty() {
			return nil, nil
		}

		// The id is looked up again even when the assignee is unchanged so
		// that assignee and assignee_id never drift apart. The lookup runs on
		// the locked transaction.
		assignee := current.Assignee
		if changes.Assignee != nil {
			assignee = *changes.Assignee
		}
		assigneeID, err := directory.Resolve(ctx, members, assignee)
		if err != nil {
			return nil, fmt.Errorf("resolve assignee %q: %w", assignee, err)
		}

		next := ApplyChanges(current, changes, assigneeID)
		mutation := &repository.Mutation{
			Task:     &next,
			Activity: &model.TaskActivityLog{Activity: Narrate(current, next)},
		}
		if changes.Comments != nil {
			mutation.Comment = &model.TaskComment{
				Comment:   *changes.Comments,
				CreatedAt: s.now(),
			}
		}

		changed = true
		return mutation, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", id, err)
	}

	if changed {
		s.notifier.Notify(fmt.Sprintf("Task \"%s\" has been updated", updated.Title), s.channels.Default)
	}
	return updated, nil
}

// Delete removes a task with its comments and activity log.
func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	s.notifier.Notify(fmt.Sprintf("Task \"%s\" has been deleted", deleted.Title), s.channels.Default)
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]model.TaskSummary, error) {
	return s.tasks.ListWithCommentCount(ctx)
}

func (s *Service) Comments(ctx context.Context, id uint) ([]model.TaskComment, error) {
	return s.comments.ListByTask(ctx, id)
}

// ActivityLog returns the audit trail of a task, oldest entry first.
func (s *Service) ActivityLog(ctx context.Context, id uint) ([]model.TaskActivityLog, error) {
	return s.activity.ListByTask(ctx, id)
}
