package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TeamMemberHandler struct {
	members MemberDirectory
}

func NewTeamMemberHandler(members MemberDirectory) *TeamMemberHandler {
	return &TeamMemberHandler{members: members}
}

type RegisterMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Register creates a team member, or returns the one already registered
// under the same email
func (h *TeamMemberHandler) Register(c *gin.Context) {
	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid input")
		return
	}

	member, created, err := h.members.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		logError(c, "Error inserting team member", err)
		c.String(http.StatusInternalServerError, "Error inserting team member")
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "user": member})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": member.ID})
}

func (h *TeamMemberHandler) List(c *gin.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		logError(c, "Error fetching team members", err)
		c.String(http.StatusInternalServerError, "Error fetching team members")
		return
	}

	c.JSON(http.StatusOK, members)
}
