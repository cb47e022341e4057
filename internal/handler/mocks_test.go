package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"taskmanager/internal/handler"
	"taskmanager/internal/model"
	"taskmanager/internal/task"
)

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, req task.CreateRequest) (*model.Task, error) {
	args := m.Called(ctx, req)
	t := args.Get(0)
	if t == nil {
		return nil, args.Error(1)
	}
	return t.(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id uint, req task.UpdateRequest) (*model.Task, error) {
	args := m.Called(ctx, id, req)
	t := args.Get(0)
	if t == nil {
		return nil, args.Error(1)
	}
	return t.(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	t := args.Get(0)
	if t == nil {
		return nil, args.Error(1)
	}
	return t.(*model.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context) ([]model.TaskSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TaskSummary), args.Error(1)
}

func (m *MockTaskService) Comments(ctx context.Context, id uint) ([]model.TaskComment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.TaskComment), args.Error(1)
}

func (m *MockTaskService) ActivityLog(ctx context.Context, id uint) ([]model.TaskActivityLog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.TaskActivityLog), args.Error(1)
}

type MockMemberDirectory struct {
	mock.Mock
}

func (m *MockMemberDirectory) Register(ctx context.Context, name, email string) (*model.TeamMember, bool, error) {
	args := m.Called(ctx, name, email)
	member := args.Get(0)
	if member == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return member.(*model.TeamMember), args.Bool(1), args.Error(2)
}

func (m *MockMemberDirectory) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func setupTest() (*gin.Engine, *MockTaskService, *MockMemberDirectory) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	tasks := new(MockTaskService)
	members := new(MockMemberDirectory)
	taskHandler := handler.NewTaskHandler(tasks)
	memberHandler := handler.NewTeamMemberHandler(members)

	r.POST("/api/team-members", memberHandler.Register)
	r.GET("/api/team-members", memberHandler.List)
	r.GET("/api/tasks", taskHandler.List)
	r.POST("/api/tasks", taskHandler.Create)
	r.GET("/api/tasks/:id", taskHandler.Get)
	r.PUT("/api/tasks/:id", taskHandler.Update)
	r.DELETE("/api/tasks/:id", taskHandler.Delete)
	r.GET("/api/tasks/:id/comments", taskHandler.Comments)
	r.GET("/api/task-activity-log/:taskId", taskHandler.ActivityLog)

	return r, tasks, members
}
