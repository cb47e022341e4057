package model

import (
	"time"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `gorm:"index" json:"assignee"`
	AssigneeID  *uint      `gorm:"index" json:"assignee_id"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Comments    string     `json:"comments"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Member *TeamMember `gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TaskSummary is a task row annotated with the number of its comments.
type TaskSummary struct {
	Task
	CommentCount int64 `json:"comment_count"`
}
