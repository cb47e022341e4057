package task

import (
	"time"

	"taskmanager/internal/model"
)

// ChangeSet holds the new value of every field that differs from the stored
// task. Nil fields are unchanged.
type ChangeSet struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	Comments    *string
	Assignee    *string
}

// IsEmpty reports a no-op update.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Fields()) == 0
}

// Fields lists the changed field names in narration order.
func (c ChangeSet) Fields() []string {
	var fields []string
	if c.Title != nil {
		fields = append(fields, "title")
	}
	if c.Description != nil {
		fields = append(fields, "description")
	}
	if c.Status != nil {
		fields = append(fields, "status")
	}
	if c.Priority != nil {
		fields = append(fields, "priority")
	}
	if c.DueDate != nil {
		fields = append(fields, "due_date")
	}
	if c.Comments != nil {
		fields = append(fields, "comments")
	}
	if c.Assignee != nil {
		fields = append(fields, "assignee")
	}
	return fields
}

// ComputeChanges diffs a proposed update against the stored task.
//
// Present values that differ are changes, including "". Comments are the
// exception: clearing them is never a change. Due dates are compared by
// calendar day. An assignee change still has to be resolved by the caller
// before anything is written.
func ComputeChanges(current model.Task, proposed UpdateRequest) ChangeSet {
	var c ChangeSet

	c.Title = changedString(current.Title, proposed.Title)
	c.Description = changedString(current.Description, proposed.Description)
	c.Status = changedString(current.Status, proposed.Status)
	c.Priority = changedString(current.Priority, proposed.Priority)

	if proposed.Comments != nil && *proposed.Comments != "" {
		c.Comments = changedString(current.Comments, proposed.Comments)
	}

	if proposed.DueDate != nil && !sameDay(current.DueDate, proposed.DueDate) {
		day := dateOnly(*proposed.DueDate)
		c.DueDate = &day
	}

	c.Assignee = changedString(current.Assignee, proposed.Assignee)

	return c
}

func changedString(current string, proposed *string) *string {
	if proposed == nil || *proposed == current {
		return nil
	}
	v := *proposed
	return &v
}

// ApplyChanges returns the full row to persist: changed fields take their new
// value, everything else keeps the stored one. assigneeID must be the id
// resolved for the resulting assignee name.
func ApplyChanges(current model.Task, changes ChangeSet, assigneeID uint) model.Task {
	next := current
	next.Member = nil

	if changes.Title != nil {
		next.Title = *changes.Title
	}
	if changes.Description != nil {
		next.Description = *changes.Description
	}
	if changes.Status != nil {
		next.Status = *changes.Status
	}
	if changes.Priority != nil {
		next.Priority = *changes.Priority
	}
	if changes.DueDate != nil {
		due := *changes.DueDate
		next.DueDate = &due
	}
	if changes.Comments != nil {
		next.Comments = *changes.Comments
	}
	if changes.Assignee != nil {
		next.Assignee = *changes.Assignee
	}

	id := assigneeID
	next.AssigneeID = &id
	return next
}
