package repository

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RehearsalRepository handles database operations for rehearsals and their
// rehearsal-plan graph (songs, musicians, voice parts, membership sets).
type RehearsalRepository struct {
	db *gorm.DB
}

// NewRehearsalRepository creates a new rehearsal repository
func NewRehearsalRepository(db *gorm.DB) *RehearsalRepository {
	return &RehearsalRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *RehearsalRepository) WithTx(tx *gorm.DB) *RehearsalRepository {
	return &RehearsalRepository{db: tx}
}

// Create creates a new rehearsal
func (r *RehearsalRepository) Create(rehearsal *models.Rehearsal) error {
	return r.db.Create(rehearsal).Error
}

// GetByID retrieves a rehearsal by ID without its plan graph
func (r *RehearsalRepository) GetByID(id uuid.UUID) (*models.Rehearsal, error) {
	var rehearsal models.Rehearsal
	err := r.db.First(&rehearsal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rehearsal, nil
}

// GetWithGraph retrieves a rehearsal with its full plan graph: songs in
// stored order, lead singers, chorus members, musicians, voice parts and
// voice-part members, plus attendees.
func (r *RehearsalRepository) GetWithGraph(id uuid.UUID) (*models.Rehearsal, error) {
	var rehearsal models.Rehearsal
	err := r.db.
		Preload("Attendees").
		Preload("Songs", func(db *gorm.DB) *gorm.DB {
			return db.Order("rehearsal_songs.sort_order ASC")
		}).
		Preload("Songs.Song").
		Preload("Songs.LeadSingers").
		Preload("Songs.ChorusMembers").
		Preload("Songs.Musicians").
		Preload("Songs.VoiceParts").
		Preload("Songs.VoiceParts.Members").
		First(&rehearsal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rehearsal, nil
}

// ListByPerformance retrieves the rehearsals preparing a performance
func (r *RehearsalRepository) ListByPerformance(performanceID uuid.UUID, limit, offset int) ([]models.Rehearsal, int64, error) {
	var rehearsals []models.Rehearsal
	var total int64

	if err := r.db.Model(&models.Rehearsal{}).
		Where("performance_id = ?", performanceID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("performance_id = ?", performanceID).
		Order("date ASC").Limit(limit).Offset(offset).
		Find(&rehearsals).Error
	return rehearsals, total, err
}

// Update updates a rehearsal
func (r *RehearsalRepository) Update(rehearsal *models.Rehearsal) error {
	return r.db.Save(rehearsal).Error
}

// Delete deletes a rehearsal; plan-graph rows cascade
func (r *RehearsalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Rehearsal{}, "id = ?", id).Error
}

// CreateSong inserts a rehearsal song row
func (r *RehearsalRepository) CreateSong(song *models.RehearsalSong) error {
	return r.db.Create(song).Error
}

// GetSongByID retrieves a rehearsal song with its children
func (r *RehearsalRepository) GetSongByID(id uuid.UUID) (*models.RehearsalSong, error) {
	var song models.RehearsalSong
	err := r.db.
		Preload("LeadSingers").
		Preload("ChorusMembers").
		Preload("Musicians").
		Preload("VoiceParts").
		Preload("VoiceParts.Members").
		First(&song, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// UpdateSong updates a rehearsal song row
func (r *RehearsalRepository) UpdateSong(song *models.RehearsalSong) error {
	return r.db.Save(song).Error
}

// DeleteSong deletes a rehearsal song after clearing its children
func (r *RehearsalRepository) DeleteSong(id uuid.UUID) error {
	if err := r.DeleteSongChildren(id); err != nil {
		return err
	}
	if err := r.db.Exec(
		`DELETE FROM rehearsal_song_lead_singers WHERE rehearsal_song_id = ?`, id,
	).Error; err != nil {
		return err
	}
	if err := r.db.Exec(
		`DELETE FROM rehearsal_song_chorus_members WHERE rehearsal_song_id = ?`, id,
	).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.RehearsalSong{}, "id = ?", id).Error
}

// DeleteSongChildren removes the musician and voice-part rows of a song in
// dependency order. Child replacement is delete-all-then-insert-all.
func (r *RehearsalRepository) DeleteSongChildren(songID uuid.UUID) error {
	if err := r.db.Where("rehearsal_song_id = ?", songID).
		Delete(&models.RehearsalSongMusician{}).Error; err != nil {
		return err
	}

	var voicePartIDs []uuid.UUID
	if err := r.db.Model(&models.RehearsalVoicePart{}).
		Where("rehearsal_song_id = ?", songID).
		Pluck("id", &voicePartIDs).Error; err != nil {
		return err
	}
	if len(voicePartIDs) > 0 {
		if err := r.db.Exec(
			`DELETE FROM rehearsal_voice_part_members WHERE rehearsal_voice_part_id IN ?`,
			voicePartIDs,
		).Error; err != nil {
			return err
		}
		if err := r.db.Where("id IN ?", voicePartIDs).
			Delete(&models.RehearsalVoicePart{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateMusician inserts a rehearsal song musician row
func (r *RehearsalRepository) CreateMusician(musician *models.RehearsalSongMusician) error {
	return r.db.Create(musician).Error
}

// CreateVoicePart inserts a rehearsal voice part row
func (r *RehearsalRepository) CreateVoicePart(voicePart *models.RehearsalVoicePart) error {
	return r.db.Create(voicePart).Error
}

// AddVoicePartMembers inserts membership rows for a rehearsal voice part,
// directly against the join table so invalid member references fail on the
// foreign key instead of creating phantom members.
func (r *RehearsalRepository) AddVoicePartMembers(voicePartID uuid.UUID, memberIDs []uuid.UUID) error {
	for _, memberID := range memberIDs {
		if err := r.db.Exec(
			`INSERT INTO rehearsal_voice_part_members (rehearsal_voice_part_id, choir_member_id) VALUES (?, ?)`,
			voicePartID, memberID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceLeadSingers replaces the lead-singer set of a rehearsal song
func (r *RehearsalRepository) ReplaceLeadSingers(songID uuid.UUID, memberIDs []uuid.UUID) error {
	if err := r.db.Exec(
		`DELETE FROM rehearsal_song_lead_singers WHERE rehearsal_song_id = ?`, songID,
	).Error; err != nil {
		return err
	}
	for _, memberID := range memberIDs {
		if err := r.db.Exec(
			`INSERT INTO rehearsal_song_lead_singers (rehearsal_song_id, choir_member_id) VALUES (?, ?)`,
			songID, memberID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceChorusMembers replaces the chorus-member set of a rehearsal song
func (r *RehearsalRepository) ReplaceChorusMembers(songID uuid.UUID, memberIDs []uuid.UUID) error {
	if err := r.db.Exec(
		`DELETE FROM rehearsal_song_chorus_members WHERE rehearsal_song_id = ?`, songID,
	).Error; err != nil {
		return err
	}
	for _, memberID := range memberIDs {
		if err := r.db.Exec(
			`INSERT INTO rehearsal_song_chorus_members (rehearsal_song_id, choir_member_id) VALUES (?, ?)`,
			songID, memberID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceAttendees replaces the attendee set of a rehearsal
func (r *RehearsalRepository) ReplaceAttendees(rehearsalID uuid.UUID, memberIDs []uuid.UUID) error {
	if err := r.db.Exec(
		`DELETE FROM rehearsal_attendees WHERE rehearsal_id = ?`, rehearsalID,
	).Error; err != nil {
		return err
	}
	for _, memberID := range memberIDs {
		if err := r.db.Exec(
			`INSERT INTO rehearsal_attendees (rehearsal_id, choir_member_id) VALUES (?, ?)`,
			rehearsalID, memberID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// CountSongs counts the plan-graph songs of a rehearsal
func (r *RehearsalRepository) CountSongs(rehearsalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RehearsalSong{}).
		Where("rehearsal_id = ?", rehearsalID).
		Count(&count).Error
	return count, err
}

// CountSongsMissingVoiceParts counts songs of a rehearsal that have no
// voice-part rows. Reported as a promotion-readiness warning.
func (r *RehearsalRepository) CountSongsMissingVoiceParts(rehearsalID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RehearsalSong{}).
		Where("rehearsal_id = ?", rehearsalID).
		Where("NOT EXISTS (SELECT 1 FROM rehearsal_voice_parts vp WHERE vp.rehearsal_song_id = rehearsal_songs.id)").
		Count(&count).Error
	return count, err
}
