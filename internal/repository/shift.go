package repository

import (
	"time"

	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for leadership shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// WithTx returns a copy of the repository scoped to the given transaction
func (r *ShiftRepository) WithTx(tx *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: tx}
}

// Create creates a new leadership shift
func (r *ShiftRepository) Create(shift *models.LeadershipShift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a leadership shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.LeadershipShift, error) {
	var shift models.LeadershipShift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// List retrieves leadership shifts ordered by start date, newest first
func (r *ShiftRepository) List(limit, offset int) ([]models.LeadershipShift, int64, error) {
	var shifts []models.LeadershipShift
	var total int64

	if err := r.db.Model(&models.LeadershipShift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByStatuses retrieves shifts in any of the given statuses ordered by
// start date ascending. Used by the status refresh pass.
func (r *ShiftRepository) GetByStatuses(statuses []models.ShiftStatus) ([]models.LeadershipShift, error) {
	var shifts []models.LeadershipShift
	err := r.db.Where("status IN ?", statuses).Order("start_date ASC").Find(&shifts).Error
	return shifts, err
}

// UpdateStatusIf transitions a shift from one status to another only when
// the stored status still matches. The affected-row count makes concurrent
// refreshes naturally idempotent: the second writer sees zero rows.
func (r *ShiftRepository) UpdateStatusIf(id uuid.UUID, from, to models.ShiftStatus) (bool, error) {
	result := r.db.Model(&models.LeadershipShift{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DemoteActive forces every ACTIVE shift (optionally excluding one) to
// COMPLETED. Always invoked before activating a shift so the single-active
// invariant holds even if it was previously violated.
func (r *ShiftRepository) DemoteActive(excludeID *uuid.UUID) (int64, error) {
	query := r.db.Model(&models.LeadershipShift{}).Where("status = ?", models.ShiftStatusActive)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	result := query.Update("status", models.ShiftStatusCompleted)
	return result.RowsAffected, result.Error
}

// CountActive counts shifts currently marked ACTIVE
func (r *ShiftRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.LeadershipShift{}).
		Where("status = ?", models.ShiftStatusActive).
		Count(&count).Error
	return count, err
}

// GetActive retrieves the shift currently marked ACTIVE
func (r *ShiftRepository) GetActive() (*models.LeadershipShift, error) {
	var shift models.LeadershipShift
	err := r.db.Preload("Leader").First(&shift, "status = ?", models.ShiftStatusActive).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetNextUpcoming retrieves the soonest-starting UPCOMING shift at or after now
func (r *ShiftRepository) GetNextUpcoming(now time.Time) (*models.LeadershipShift, error) {
	var shift models.LeadershipShift
	err := r.db.Preload("Leader").
		Where("status = ? AND end_date >= ?", models.ShiftStatusUpcoming, now).
		Order("start_date ASC").
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// HasLeaderOverlap reports whether the leader already has an UPCOMING or
// ACTIVE shift whose interval intersects [start,end].
func (r *ShiftRepository) HasLeaderOverlap(leaderID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.LeadershipShift{}).Where(
		"leader_id = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
		leaderID, []models.ShiftStatus{models.ShiftStatusUpcoming, models.ShiftStatusActive}, end, start,
	)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// HasLiveOverlap reports whether any ACTIVE shift's interval intersects
// [start,end]. Only one interval may be live cluster-wide.
func (r *ShiftRepository) HasLiveOverlap(start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.LeadershipShift{}).Where(
		"status = ? AND start_date <= ? AND end_date >= ?",
		models.ShiftStatusActive, end, start,
	)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a leadership shift
func (r *ShiftRepository) Update(shift *models.LeadershipShift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a leadership shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LeadershipShift{}, "id = ?", id).Error
}

// IncrementEventsScheduled bumps the scheduled-events counter of a shift
func (r *ShiftRepository) IncrementEventsScheduled(id uuid.UUID) error {
	return r.db.Model(&models.LeadershipShift{}).
		Where("id = ?", id).
		Update("events_scheduled", gorm.Expr("events_scheduled + 1")).Error
}

// IncrementEventsCompleted bumps the completed-events counter of a shift
func (r *ShiftRepository) IncrementEventsCompleted(id uuid.UUID) error {
	return r.db.Model(&models.LeadershipShift{}).
		Where("id = ?", id).
		Update("events_completed", gorm.Expr("events_completed + 1")).Error
}

// CountByStatus returns shift counts grouped by status
func (r *ShiftRepository) CountByStatus() (map[models.ShiftStatus]int64, error) {
	type row struct {
		Status models.ShiftStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.LeadershipShift{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ShiftStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
