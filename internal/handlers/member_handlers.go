package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foundation_backend/internal/services"
	"foundation_backend/pkg/utils"
)

// MemberHandler holds the member service.
type MemberHandler struct {
	memberService services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: ms}
}

// ListMembers handles GET /api/members.
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers()
	if err != nil {
		utils.LogError(err, "ListMembers: Error from memberService.ListMembers")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"members":     members,
		"total_count": len(members),
	})
}

// CreateMember handles POST /api/members, the public volunteer intake form.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMember: Failed to bind JSON")
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	memberID, err := h.memberService.CreateMember(req)
	if err != nil {
		if errors.Is(err, services.ErrMemberValidation) {
			utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		} else if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		} else {
			utils.LogError(err, "CreateMember: Error from memberService.CreateMember")
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add volunteer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Volunteer added successfully",
		"member_id": memberID,
	})
}
