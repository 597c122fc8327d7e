package handlers

import (
	"net/http"
	"strconv"

	"choir-portal-backend/internal/auth"
	"choir-portal-backend/internal/database/models"
	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PerformanceHandler handles HTTP requests for performances
type PerformanceHandler struct {
	performanceService *service.PerformanceService
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

func callerContext(c *gin.Context) (*service.AuthContext, bool) {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return authCtx, true
}

// CreatePerformance creates a new performance under the live shift
// @Summary Create a performance
// @Description Create a performance. Requires an ACTIVE shift; non-admin callers must lead it.
// @Tags performances
// @Accept json
// @Produce json
// @Param performance body service.CreatePerformanceRequest true "Performance data"
// @Success 201 {object} service.PerformanceResponse "Successfully created performance"
// @Failure 400 {object} map[string]interface{} "Invalid request or no active shift"
// @Failure 403 {object} map[string]interface{} "Caller does not lead the active shift"
// @Security BearerAuth
// @Router /performances [post]
func (h *PerformanceHandler) CreatePerformance(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	var req service.CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.Create(&req, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, performance)
}

// GetPerformance retrieves a performance with its production graph
// @Summary Get performance by ID
// @Tags performances
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 200 {object} service.PerformanceResponse "Successfully retrieved performance"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /performances/{id} [get]
func (h *PerformanceHandler) GetPerformance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	performance, err := h.performanceService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// ListPerformances retrieves performances with optional status filter
// @Summary List performances
// @Tags performances
// @Produce json
// @Param status query string false "Filter by status (upcoming, in_preparation, ready, completed)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PerformanceListResponse "Successfully retrieved performances"
// @Security BearerAuth
// @Router /performances [get]
func (h *PerformanceHandler) ListPerformances(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var status *models.PerformanceStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.PerformanceStatus(statusStr)
		status = &s
	}

	performances, err := h.performanceService.List(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performances)
}

// UpdatePerformance updates a performance's descriptive fields
// @Summary Update a performance
// @Tags performances
// @Accept json
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Param performance body service.UpdatePerformanceRequest true "Fields to update"
// @Success 200 {object} service.PerformanceResponse "Successfully updated performance"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /performances/{id} [put]
func (h *PerformanceHandler) UpdatePerformance(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	var req service.UpdatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	performance, err := h.performanceService.Update(id, &req, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// DeletePerformance deletes a performance and its production graph
// @Summary Delete a performance
// @Tags performances
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 204 "Successfully deleted performance"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /performances/{id} [delete]
func (h *PerformanceHandler) DeletePerformance(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	if err := h.performanceService.Delete(id, authCtx); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkInPreparation opens a performance for rehearsal planning
// @Summary Mark performance in preparation
// @Description Move a performance from upcoming to in_preparation.
// @Tags performances
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 200 {object} service.PerformanceResponse "Performance now in preparation"
// @Failure 400 {object} map[string]interface{} "Performance is not upcoming"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /performances/{id}/mark-in-preparation [post]
func (h *PerformanceHandler) MarkInPreparation(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	performance, err := h.performanceService.MarkInPreparation(id, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// MarkCompleted closes out a ready performance
// @Summary Mark performance completed
// @Description Move a performance from ready to completed and credit the live shift.
// @Tags performances
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Success 200 {object} service.PerformanceResponse "Performance completed"
// @Failure 400 {object} map[string]interface{} "Performance is not ready"
// @Failure 404 {object} map[string]interface{} "Performance not found"
// @Security BearerAuth
// @Router /performances/{id}/mark-completed [post]
func (h *PerformanceHandler) MarkCompleted(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}

	performance, err := h.performanceService.MarkCompleted(id, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// PromoteRehearsal copies a rehearsal plan into the production graph
// @Summary Promote a rehearsal into a performance
// @Description Atomically replace the performance's production graph with a deep copy of the rehearsal's plan graph and advance the performance to ready.
// @Tags performances
// @Produce json
// @Param id path string true "Performance ID (UUID)"
// @Param rehearsalId path string true "Rehearsal ID (UUID)"
// @Success 200 {object} service.PerformanceResponse "Promoted performance with production graph"
// @Failure 400 {object} map[string]interface{} "Performance not in preparation or rehearsal belongs to another performance"
// @Failure 403 {object} map[string]interface{} "Caller does not lead the active shift"
// @Failure 404 {object} map[string]interface{} "Performance or rehearsal not found"
// @Security BearerAuth
// @Router /performances/{id}/promote/{rehearsalId} [post]
func (h *PerformanceHandler) PromoteRehearsal(c *gin.Context) {
	authCtx, ok := callerContext(c)
	if !ok {
		return
	}

	performanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid performance ID"})
		return
	}
	rehearsalID, err := uuid.Parse(c.Param("rehearsalId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rehearsal ID"})
		return
	}

	performance, err := h.performanceService.PromoteRehearsal(performanceID, rehearsalID, authCtx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}
