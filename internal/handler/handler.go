package handler

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/middleware"
	"taskmanager/internal/model"
	"taskmanager/internal/task"
)

// TaskService is the task engine as seen by the HTTP layer.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest) (*model.Task, error)
	Update(ctx context.Context, id uint, req task.UpdateRequest) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context) ([]model.TaskSummary, error)
	Comments(ctx context.Context, id uint) ([]model.TaskComment, error)
	ActivityLog(ctx context.Context, id uint) ([]model.TaskActivityLog, error)
}

// MemberDirectory registers and lists team members.
type MemberDirectory interface {
	Register(ctx context.Context, name, email string) (*model.TeamMember, bool, error)
	List(ctx context.Context) ([]model.TeamMember, error)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func logError(c *gin.Context, msg string, err error) {
	log.Printf("❌ [%s] %s: %v", middleware.GetRequestID(c), msg, err)
}
