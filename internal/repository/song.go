package repository

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongRepository handles database operations for the song library
type SongRepository struct {
	db *gorm.DB
}

// NewSongRepository creates a new song repository
func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create creates a new song
func (r *SongRepository) Create(song *models.Song) error {
	return r.db.Create(song).Error
}

// GetByID retrieves a song by ID
func (r *SongRepository) GetByID(id uuid.UUID) (*models.Song, error) {
	var song models.Song
	err := r.db.First(&song, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// List retrieves songs with pagination
func (r *SongRepository) List(limit, offset int) ([]models.Song, int64, error) {
	var songs []models.Song
	var total int64

	if err := r.db.Model(&models.Song{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("title ASC").Limit(limit).Offset(offset).Find(&songs).Error
	return songs, total, err
}
