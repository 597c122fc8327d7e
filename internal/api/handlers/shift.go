package handlers

import (
	"net/http"
	"strconv"

	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for leadership shifts
type ShiftHandler struct {
	shiftService *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShift creates a new leadership shift
// @Summary Create a leadership shift
// @Description Create a new leadership shift. The leader may not already hold an UPCOMING or ACTIVE shift overlapping the interval.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 409 {object} map[string]interface{} "Overlapping shift"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("user_id")
	creatorID, _ := userID.(uuid.UUID)

	shift, err := h.shiftService.Create(&req, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift retrieves a shift by ID
// @Summary Get shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts retrieves shifts with pagination
// @Summary List leadership shifts
// @Tags shifts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	shifts, err := h.shiftService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// UpdateShift updates a leadership shift
// @Summary Update a leadership shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Overlapping shift"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift deletes a leadership shift
// @Summary Delete a leadership shift
// @Description Delete a shift. The ACTIVE shift cannot be deleted.
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Successfully deleted shift"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is active"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RefreshShiftStatuses applies date-driven status transitions
// @Summary Refresh shift statuses
// @Description Recompute shift statuses from their date windows. Idempotent; a second call reports zero updates.
// @Tags shifts
// @Produce json
// @Success 200 {object} service.ShiftStatusRefreshResult "Refresh summary"
// @Security BearerAuth
// @Router /shifts/refresh-statuses [post]
func (h *ShiftHandler) RefreshShiftStatuses(c *gin.Context) {
	result, err := h.shiftService.UpdateShiftStatuses()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCurrentShift retrieves the currently active shift
// @Summary Get the active shift
// @Tags shifts
// @Produce json
// @Success 200 {object} service.ShiftResponse "Active shift"
// @Failure 404 {object} map[string]interface{} "No active shift"
// @Security BearerAuth
// @Router /shifts/current [get]
func (h *ShiftHandler) GetCurrentShift(c *gin.Context) {
	shift, err := h.shiftService.GetCurrentActiveShift()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetNextShift retrieves the next upcoming shift
// @Summary Get the next upcoming shift
// @Tags shifts
// @Produce json
// @Success 200 {object} service.ShiftResponse "Next upcoming shift"
// @Failure 404 {object} map[string]interface{} "No upcoming shift"
// @Security BearerAuth
// @Router /shifts/next [get]
func (h *ShiftHandler) GetNextShift(c *gin.Context) {
	shift, err := h.shiftService.GetNextUpcomingShift()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetShiftStats retrieves shift counts by status
// @Summary Get shift statistics
// @Tags shifts
// @Produce json
// @Success 200 {object} service.ShiftStatsResponse "Shift counts by status"
// @Security BearerAuth
// @Router /shifts/stats [get]
func (h *ShiftHandler) GetShiftStats(c *gin.Context) {
	stats, err := h.shiftService.GetShiftStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
