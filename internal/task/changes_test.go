package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskmanager/internal/model"
	"taskmanager/internal/task"
)

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func storedTask() model.Task {
	return model.Task{
		ID:          5,
		Title:       "Fix bug",
		Description: "crash on save",
		Assignee:    "Alice",
		AssigneeID:  ptr(uint(7)),
		DueDate:     day(2024, time.June, 10),
		Priority:    "high",
		Status:      "open",
		Comments:    "note",
	}
}

func identicalRequest(t model.Task) task.UpdateRequest {
	return task.UpdateRequest{
		Title:       ptr(t.Title),
		Description: ptr(t.Description),
		Assignee:    ptr(t.Assignee),
		DueDate:     t.DueDate,
		Priority:    ptr(t.Priority),
		Status:      ptr(t.Status),
		Comments:    ptr(t.Comments),
	}
}

func TestComputeChanges_IdenticalPayloadIsEmpty(t *testing.T) {
	current := storedTask()

	changes := task.ComputeChanges(current, identicalRequest(current))

	assert.True(t, changes.IsEmpty())
	assert.Empty(t, changes.Fields())
}

func TestComputeChanges_AbsentFieldsAreNotChanges(t *testing.T) {
	changes := task.ComputeChanges(storedTask(), task.UpdateRequest{})

	assert.True(t, changes.IsEmpty())
}

func TestComputeChanges_OnlyDifferingFields(t *testing.T) {
	current := storedTask()
	req := identicalRequest(current)
	req.Status = ptr("closed")
	req.Priority = ptr("low")

	changes := task.ComputeChanges(current, req)

	assert.Equal(t, []string{"status", "priority"}, changes.Fields())
	assert.Equal(t, "closed", *changes.Status)
	assert.Equal(t, "low", *changes.Priority)
	assert.Nil(t, changes.Title)
}

func TestComputeChanges_EmptyStringIsAChange(t *testing.T) {
	current := storedTask()

	changes := task.ComputeChanges(current, task.UpdateRequest{Description: ptr("")})

	assert.Equal(t, []string{"description"}, changes.Fields())
	assert.Equal(t, "", *changes.Description)
}

func TestComputeChanges_ClearingCommentsIsIgnored(t *testing.T) {
	current := storedTask()

	changes := task.ComputeChanges(current, task.UpdateRequest{Comments: ptr("")})

	assert.True(t, changes.IsEmpty())
}

func TestComputeChanges_NewComment(t *testing.T) {
	changes := task.ComputeChanges(storedTask(), task.UpdateRequest{Comments: ptr("looks good")})

	assert.Equal(t, []string{"comments"}, changes.Fields())
	assert.Equal(t, "looks good", *changes.Comments)
}

func TestComputeChanges_DueDateComparedByDay(t *testing.T) {
	current := storedTask()
	sameDayLater := time.Date(2024, time.June, 10, 17, 45, 0, 0, time.FixedZone("CEST", 2*3600))

	changes := task.ComputeChanges(current, task.UpdateRequest{DueDate: &sameDayLater})
	assert.True(t, changes.IsEmpty())

	changes = task.ComputeChanges(current, task.UpdateRequest{DueDate: day(2024, time.June, 11)})
	assert.Equal(t, []string{"due_date"}, changes.Fields())
	assert.Equal(t, "2024-06-11", changes.DueDate.Format("2006-01-02"))
}

func TestComputeChanges_DueDateOnTaskWithoutOne(t *testing.T) {
	current := storedTask()
	current.DueDate = nil

	changes := task.ComputeChanges(current, task.UpdateRequest{DueDate: day(2024, time.June, 11)})

	assert.Equal(t, []string{"due_date"}, changes.Fields())
}

func TestComputeChanges_Assignee(t *testing.T) {
	changes := task.ComputeChanges(storedTask(), task.UpdateRequest{Assignee: ptr("Bob")})

	assert.Equal(t, []string{"assignee"}, changes.Fields())
	assert.Equal(t, "Bob", *changes.Assignee)
}

func TestApplyChanges_KeepsUnchangedFields(t *testing.T) {
	current := storedTask()
	changes := task.ChangeSet{Status: ptr("closed"), Assignee: ptr("Bob")}

	next := task.ApplyChanges(current, changes, 8)

	assert.Equal(t, "closed", next.Status)
	assert.Equal(t, "Bob", next.Assignee)
	assert.Equal(t, uint(8), *next.AssigneeID)
	assert.Equal(t, current.Title, next.Title)
	assert.Equal(t, current.Comments, next.Comments)
	assert.Equal(t, current.DueDate, next.DueDate)
	assert.Equal(t, "open", current.Status, "current must not be modified")
	assert.Equal(t, uint(7), *current.AssigneeID, "current must not be modified")
}
