package repository

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceRepository handles database operations for performances and
// their production graph (songs, musicians, voice parts, memberships).
type PerformanceRepository struct {
	db *gorm.DB
}

// NewPerformanceRepository creates a new performance repository
func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *PerformanceRepository) WithTx(tx *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{db: tx}
}

// Create creates a new performance
func (r *PerformanceRepository) Create(performance *models.Performance) error {
	return r.db.Create(performance).Error
}

// GetByID retrieves a performance by ID without its production graph
func (r *PerformanceRepository) GetByID(id uuid.UUID) (*models.Performance, error) {
	var performance models.Performance
	err := r.db.First(&performance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

// GetWithGraph retrieves a performance with its full production graph:
// songs in stored order, musicians, voice parts and voice-part members.
func (r *PerformanceRepository) GetWithGraph(id uuid.UUID) (*models.Performance, error) {
	var performance models.Performance
	err := r.db.
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("performance_songs.sort_order ASC")
		}).
		Preload("Songs.Song").
		Preload("Songs.LeadSinger").
		Preload("Songs.Musicians").
		Preload("Songs.VoiceParts").
		Preload("Songs.VoiceParts.Members").
		First(&performance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &performance, nil
}

// List retrieves performances, optionally filtered by status, newest first
func (r *PerformanceRepository) List(status *models.PerformanceStatus, limit, offset int) ([]models.Performance, int64, error) {
	var performances []models.Performance
	var total int64

	query := r.db.Model(&models.Performance{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date DESC").Limit(limit).Offset(offset).Find(&performances).Error
	return performances, total, err
}

// Update updates a performance
func (r *PerformanceRepository) Update(performance *models.Performance) error {
	return r.db.Save(performance).Error
}

// UpdateStatus sets the status of a performance
func (r *PerformanceRepository) UpdateStatus(id uuid.UUID, status models.PerformanceStatus) error {
	return r.db.Model(&models.Performance{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete deletes a performance; child rows cascade
func (r *PerformanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Performance{}, "id = ?", id).Error
}

// DeleteProductionGraph removes every production-graph row owned by the
// performance, in dependency order: musicians, voice-part memberships,
// voice parts, then the songs themselves. Callers run it inside the
// promotion transaction so a re-promotion always starts from empty.
func (r *PerformanceRepository) DeleteProductionGraph(performanceID uuid.UUID) error {
	var songIDs []uuid.UUID
	if err := r.db.Model(&models.PerformanceSong{}).
		Where("performance_id = ?", performanceID).
		Pluck("id", &songIDs).Error; err != nil {
		return err
	}
	if len(songIDs) == 0 {
		return nil
	}

	if err := r.db.Where("performance_song_id IN ?", songIDs).
		Delete(&models.PerformanceSongMusician{}).Error; err != nil {
		return err
	}

	var voicePartIDs []uuid.UUID
	if err := r.db.Model(&models.PerformanceVoicePart{}).
		Where("performance_song_id IN ?", songIDs).
		Pluck("id", &voicePartIDs).Error; err != nil {
		return err
	}
	if len(voicePartIDs) > 0 {
		if err := r.db.Exec(
			`DELETE FROM performance_voice_part_members WHERE performance_voice_part_id IN ?`,
			voicePartIDs,
		).Error; err != nil {
			return err
		}
		if err := r.db.Where("id IN ?", voicePartIDs).
			Delete(&models.PerformanceVoicePart{}).Error; err != nil {
			return err
		}
	}

	return r.db.Where("id IN ?", songIDs).Delete(&models.PerformanceSong{}).Error
}

// CreateSong inserts a performance song row
func (r *PerformanceRepository) CreateSong(song *models.PerformanceSong) error {
	return r.db.Create(song).Error
}

// CreateMusician inserts a performance song musician row
func (r *PerformanceRepository) CreateMusician(musician *models.PerformanceSongMusician) error {
	return r.db.Create(musician).Error
}

// CreateVoicePart inserts a performance voice part row
func (r *PerformanceRepository) CreateVoicePart(voicePart *models.PerformanceVoicePart) error {
	return r.db.Create(voicePart).Error
}

// AddVoicePartMembers inserts membership rows for a voice part. Rows are
// inserted directly against the join table so that an invalid member
// reference surfaces as a foreign-key violation and aborts the enclosing
// transaction instead of silently creating a member.
func (r *PerformanceRepository) AddVoicePartMembers(voicePartID uuid.UUID, memberIDs []uuid.UUID) error {
	for _, memberID := range memberIDs {
		if err := r.db.Exec(
			`INSERT INTO performance_voice_part_members (performance_voice_part_id, choir_member_id) VALUES (?, ?)`,
			voicePartID, memberID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// CountSongs counts the production-graph songs of a performance
func (r *PerformanceRepository) CountSongs(performanceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.PerformanceSong{}).
		Where("performance_id = ?", performanceID).
		Count(&count).Error
	return count, err
}
