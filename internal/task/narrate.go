package task

import (
	"fmt"
	"strings"

	"taskmanager/internal/model"
)

// Narrate describes what differs between two snapshots of a task. Clauses
// always come in the order title, description, status, priority, due date,
// comment, assignee. The result is empty when none of those differ.
func Narrate(before, after model.Task) string {
	var b strings.Builder

	if before.Title != after.Title {
		fmt.Fprintf(&b, "Title changed from \"%s\" to \"%s\". ", before.Title, after.Title)
	}
	if before.Description != after.Description {
		b.WriteString("Description changed ")
	}
	if before.Status != after.Status {
		fmt.Fprintf(&b, "Status changed from %s to %s. ", before.Status, after.Status)
	}
	if before.Priority != after.Priority {
		fmt.Fprintf(&b, "Priority changed from %s to %s. ", before.Priority, after.Priority)
	}
	if !sameDay(before.DueDate, after.DueDate) {
		fmt.Fprintf(&b, "Due date changed from %s to %s. ", FormatDueDate(before.DueDate), FormatDueDate(after.DueDate))
	}
	if before.Comments != after.Comments {
		fmt.Fprintf(&b, "User added a comment: %s", after.Comments)
	}
	if before.Assignee != after.Assignee {
		fmt.Fprintf(&b, "Assignee changed from %s to %s", before.Assignee, after.Assignee)
	}

	return b.String()
}
