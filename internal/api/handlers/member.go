package handlers

import (
	"net/http"
	"strconv"

	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for choir members
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMember creates a new choir member
// @Summary Create a choir member
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a choir member by ID
// @Summary Get member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers retrieves choir members with pagination
// @Summary List choir members
// @Tags members
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	members, err := h.memberService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
