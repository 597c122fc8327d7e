package handlers

import (
	"net/http"
	"strconv"

	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SongHandler handles HTTP requests for the song library
type SongHandler struct {
	songService *service.SongService
}

// NewSongHandler creates a new song handler
func NewSongHandler(songService *service.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

// CreateSong adds a song to the library
// @Summary Add a song to the library
// @Tags songs
// @Accept json
// @Produce json
// @Param song body service.CreateSongRequest true "Song data"
// @Success 201 {object} service.SongResponse "Successfully created song"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /songs [post]
func (h *SongHandler) CreateSong(c *gin.Context) {
	var req service.CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, song)
}

// GetSong retrieves a song by ID
// @Summary Get song by ID
// @Tags songs
// @Produce json
// @Param id path string true "Song ID (UUID)"
// @Success 200 {object} service.SongResponse "Successfully retrieved song"
// @Failure 404 {object} map[string]interface{} "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [get]
func (h *SongHandler) GetSong(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	song, err := h.songService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, song)
}

// ListSongs retrieves songs with pagination
// @Summary List songs
// @Tags songs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SongListResponse "Successfully retrieved songs"
// @Security BearerAuth
// @Router /songs [get]
func (h *SongHandler) ListSongs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	songs, err := h.songService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, songs)
}
