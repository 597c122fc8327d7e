package service

import (
	"errors"
	"fmt"

	"choir-portal-backend/internal/database/models"
	apperrors "choir-portal-backend/internal/errors"
	"choir-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongService handles business logic for the song library
type SongService struct {
	repo      *repository.SongRepository
	validator *validator.Validate
}

// NewSongService creates a new song service
func NewSongService(repo *repository.SongRepository, validator *validator.Validate) *SongService {
	return &SongService{repo: repo, validator: validator}
}

// CreateSongRequest represents the request to add a song to the library
type CreateSongRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Author     string `json:"author,omitempty"`
	DefaultKey string `json:"default_key,omitempty" validate:"omitempty,max=10"`
	TempoBPM   int    `json:"tempo_bpm,omitempty" validate:"omitempty,min=20,max=300"`
	Tags       string `json:"tags,omitempty"`
}

// SongResponse represents the response for song operations
type SongResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	DefaultKey string    `json:"default_key,omitempty"`
	TempoBPM   int       `json:"tempo_bpm,omitempty"`
	Tags       string    `json:"tags,omitempty"`
	CreatedAt  string    `json:"created_at"`
}

// SongListResponse represents a paginated list of songs
type SongListResponse struct {
	Songs    []SongResponse `json:"songs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create adds a new song to the library
func (s *SongService) Create(req *CreateSongRequest) (*SongResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	song := &models.Song{
		Title:      req.Title,
		Author:     req.Author,
		DefaultKey: req.DefaultKey,
		TempoBPM:   req.TempoBPM,
		Tags:       req.Tags,
	}
	if err := s.repo.Create(song); err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}
	return s.toResponse(song), nil
}

// GetByID retrieves a song by ID
func (s *SongService) GetByID(id uuid.UUID) (*SongResponse, error) {
	song, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	return s.toResponse(song), nil
}

// List retrieves songs with pagination
func (s *SongService) List(page, pageSize int) (*SongListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	songs, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}

	responses := make([]SongResponse, len(songs))
	for i, song := range songs {
		responses[i] = *s.toResponse(&song)
	}

	return &SongListResponse{
		Songs:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts a song model to response
func (s *SongService) toResponse(song *models.Song) *SongResponse {
	return &SongResponse{
		ID:         song.ID,
		Title:      song.Title,
		Author:     song.Author,
		DefaultKey: song.DefaultKey,
		TempoBPM:   song.TempoBPM,
		Tags:       song.Tags,
		CreatedAt:  song.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
