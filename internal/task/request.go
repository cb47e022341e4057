package task

import "time"

// CreateRequest is a validated task-creation payload.
type CreateRequest struct {
	Title       string
	Description string
	Assignee    string
	DueDate     *time.Time
	Priority    string
	Status      string
	Comments    string
}

// UpdateRequest is a validated partial update. A nil field was absent from
// the payload and never counts as a change; a pointer to "" is a present
// empty value.
type UpdateRequest struct {
	Title       *string
	Description *string
	Assignee    *string
	DueDate     *time.Time
	Priority    *string
	Status      *string
	Comments    *string
}
