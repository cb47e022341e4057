package model

import "time"

// TaskActivityLog is one narrated entry of a task's audit trail. Activity
// may be empty when nothing narratable changed.
type TaskActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TaskID    uint      `gorm:"not null;index" json:"task_id"`
	Activity  string    `json:"activity"`
	CreatedAt time.Time `json:"created_at"`
}
