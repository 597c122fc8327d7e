package handlers

import (
	"net/http"
	"strconv"

	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RehearsalHandler handles HTTP requests for rehearsals
type RehearsalHandler struct {
	rehearsalService *service.RehearsalService
}

// NewRehearsalHandler creates a new rehearsal handler
func NewRehearsalHandler(rehearsalService *service.RehearsalService) *RehearsalHandler {
	return &RehearsalHandler{rehearsalService: rehearsalService}
}

// CreateRehearsal creates a rehearsal with its plan graph
// @Summary Create a rehearsal
// @Description Create a rehearsal for a performance, optionally with its full song plan. Requires an ACTIVE shift.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param rehearsal body service.CreateRehearsalRequest true "Rehearsal data"
// @Success 201 {object} service.RehearsalResponse "Successfully created rehearsal"
// @Failure 400 {object} map[string]interface{} "Invalid request or no active shift"
// @Failure 403 {object} map[string]interface{} "Caller does not lead the active shift"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /rehearsals [post]
func (h *RehearsalHandler) CreateRehearsal(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	var req service.CreateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.Create(&req, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rehearsal)
}

// GetRehearsal retrieves a rehearsal with its plan graph
// @Summary Get rehearsal by ID
// @Tags rehearsals
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} service.RehearsalResponse "Successfully retrieved rehearsal"
// @Failure 404 {object} map[string]interface{} "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id} [get]
func (h *RehearsalHandler) GetRehearsal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	rehearsal, err := h.rehearsalService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// ListRehearsals retrieves rehearsals for a performance
// @Summary List rehearsals by performance
// @Tags rehearsals
// @Produce json
// @Param performance_id query string true "Performance ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.RehearsalListResponse "Successfully retrieved rehearsals"
// @Failure 400 {object} map[string]interface{} "Missing or invalid performance ID"
// @Security BearerAuth
// @Router /rehearsals [get]
func (h *RehearsalHandler) ListRehearsals(c *gin.Context) {
	performanceIDStr := c.Query("performance_id")
	if performanceIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "performance_id query parameter is required"})
		return
	}
	performanceID, err := uuid.Parse(performanceIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	rehearsals, err := h.rehearsalService.ListByPerformance(performanceID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rehearsals)
}

// UpdateRehearsal updates a rehearsal's own fields
// @Summary Update a rehearsal
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Param rehearsal body service.UpdateRehearsalRequest true "Fields to update"
// @Success 200 {object} service.RehearsalResponse "Successfully updated rehearsal"
// @Failure 403 {object} map[string]interface{} "Caller is not the creator"
// @Failure 404 {object} map[string]interface{} "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id} [put]
func (h *RehearsalHandler) UpdateRehearsal(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	var req service.UpdateRehearsalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.Update(id, &req, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// DeleteRehearsal deletes a rehearsal and its plan graph
// @Summary Delete a rehearsal
// @Tags rehearsals
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 204 "Successfully deleted rehearsal"
// @Failure 403 {object} map[string]interface{} "Caller is not the creator"
// @Failure 404 {object} map[string]interface{} "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id} [delete]
func (h *RehearsalHandler) DeleteRehearsal(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	if err := h.rehearsalService.Delete(id, authCtx); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSongs appends songs to a rehearsal's plan graph
// @Summary Add songs to a rehearsal
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Param songs body []service.RehearsalSongInput true "Songs to add"
// @Success 200 {object} service.RehearsalResponse "Rehearsal with updated plan"
// @Failure 404 {object} map[string]interface{} "Rehearsal or song not found"
// @Security BearerAuth
// @Router /rehearsals/{id}/songs [post]
func (h *RehearsalHandler) AddSongs(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	var songs []service.RehearsalSongInput
	if err := c.ShouldBindJSON(&songs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.AddSongs(id, songs, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// UpdateSong updates one song in a rehearsal's plan graph
// @Summary Update a rehearsal song
// @Description Update plan fields for one song. The song reference is immutable; member sets are replaced when provided.
// @Tags rehearsals
// @Accept json
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Param songId path string true "Rehearsal song ID (UUID)"
// @Param song body service.UpdateRehearsalSongRequest true "Fields to update"
// @Success 200 {object} service.RehearsalResponse "Rehearsal with updated plan"
// @Failure 400 {object} map[string]interface{} "Attempt to change the song reference"
// @Failure 404 {object} map[string]interface{} "Rehearsal or song not found"
// @Security BearerAuth
// @Router /rehearsals/{id}/songs/{songId} [put]
func (h *RehearsalHandler) UpdateSong(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	rehearsalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}
	songID, err := uuid.Parse(c.Param("songId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	var req service.UpdateRehearsalSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rehearsal, err := h.rehearsalService.UpdateSong(rehearsalID, songID, &req, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rehearsal)
}

// RemoveSong removes one song from a rehearsal's plan graph
// @Summary Remove a rehearsal song
// @Tags rehearsals
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Param songId path string true "Rehearsal song ID (UUID)"
// @Success 204 "Song removed"
// @Failure 404 {object} map[string]interface{} "Rehearsal or song not found"
// @Security BearerAuth
// @Router /rehearsals/{id}/songs/{songId} [delete]
func (h *RehearsalHandler) RemoveSong(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	rehearsalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}
	songID, err := uuid.Parse(c.Param("songId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	if err := h.rehearsalService.RemoveSong(rehearsalID, songID, authCtx); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckPromotionReadiness reports whether the rehearsal can be promoted
// @Summary Check promotion readiness
// @Description Report blockers and warnings for promoting this rehearsal into its performance. Read-only.
// @Tags rehearsals
// @Produce json
// @Param id path string true "Rehearsal ID (UUID)"
// @Success 200 {object} service.PromotionReadinessResponse "Readiness report"
// @Failure 404 {object} map[string]interface{} "Rehearsal not found"
// @Security BearerAuth
// @Router /rehearsals/{id}/promotion-readiness [get]
func (h *RehearsalHandler) CheckPromotionReadiness(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	readiness, err := h.rehearsalService.CheckPromotionReadiness(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, readiness)
}
