package service

import (
	"errors"
	"fmt"
	"time"

	"choir-portal-backend/internal/clock"
	"choir-portal-backend/internal/database/models"
	apperrors "choir-portal-backend/internal/errors"
	"choir-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles business logic for leadership shifts, including the
// date-driven status refresh that keeps at most one shift ACTIVE.
type ShiftService struct {
	repo       *repository.ShiftRepository
	memberRepo *repository.ChoirMemberRepository
	validator  *validator.Validate
	clock      clock.Clock
	db         *gorm.DB
}

// NewShiftService creates a new shift service
func NewShiftService(repo *repository.ShiftRepository, memberRepo *repository.ChoirMemberRepository, validator *validator.Validate, clk clock.Clock, db *gorm.DB) *ShiftService {
	return &ShiftService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
		clock:      clk,
		db:         db,
	}
}

// CreateShiftRequest represents the request to create a leadership shift
type CreateShiftRequest struct {
	Name      string              `json:"name" validate:"required,min=2,max=200"`
	StartDate time.Time           `json:"start_date" validate:"required"`
	EndDate   time.Time           `json:"end_date" validate:"required"`
	LeaderID  uuid.UUID           `json:"leader_id" validate:"required"`
	Status    *models.ShiftStatus `json:"status,omitempty"`
	Notes     string              `json:"notes,omitempty"`
}

// UpdateShiftRequest represents the request to update a leadership shift
type UpdateShiftRequest struct {
	Name      *string             `json:"name,omitempty"`
	StartDate *time.Time          `json:"start_date,omitempty"`
	EndDate   *time.Time          `json:"end_date,omitempty"`
	LeaderID  *uuid.UUID          `json:"leader_id,omitempty"`
	Status    *models.ShiftStatus `json:"status,omitempty"`
	Notes     *string             `json:"notes,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	LeaderID        uuid.UUID          `json:"leader_id"`
	LeaderName      string             `json:"leader_name,omitempty"`
	Status          models.ShiftStatus `json:"status"`
	EventsScheduled int                `json:"events_scheduled"`
	EventsCompleted int                `json:"events_completed"`
	Notes           string             `json:"notes"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ShiftTransition records a single status change made by a refresh pass
type ShiftTransition struct {
	ShiftID uuid.UUID          `json:"shift_id"`
	Name    string             `json:"name"`
	From    models.ShiftStatus `json:"from"`
	To      models.ShiftStatus `json:"to"`
}

// ShiftStatusRefreshResult summarizes a status refresh pass. A pass over an
// already-consistent database reports zero updates.
type ShiftStatusRefreshResult struct {
	RefreshedAt time.Time         `json:"refreshed_at"`
	Updated     int               `json:"updated"`
	Transitions []ShiftTransition `json:"transitions"`
}

// ShiftStatsResponse aggregates shift counts by status
type ShiftStatsResponse struct {
	Total     int64 `json:"total"`
	Upcoming  int64 `json:"upcoming"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// Create creates a new leadership shift
func (s *ShiftService) Create(req *CreateShiftRequest, creatorID uuid.UUID) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	status := models.ShiftStatusUpcoming
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid shift status")
		}
		status = *req.Status
	}

	// Validate leader exists
	_, err := s.memberRepo.GetByID(req.LeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify leader: %w", err)
	}

	overlap, err := s.repo.HasLeaderOverlap(req.LeaderID, req.StartDate, req.EndDate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check leader overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrShiftLeaderOverlap
	}

	live, err := s.repo.HasLiveOverlap(req.StartDate, req.EndDate, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check live overlap: %w", err)
	}
	if live && status == models.ShiftStatusUpcoming {
		// An UPCOMING shift may not intersect the live shift's interval;
		// a refresh inside the overlap would hand leadership over.
		return nil, apperrors.ErrShiftIntervalOverlap
	}

	shift := &models.LeadershipShift{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		LeaderID:    req.LeaderID,
		Status:      status,
		Notes:       req.Notes,
		CreatedByID: creatorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if status == models.ShiftStatusActive {
			// Creating a shift directly as ACTIVE demotes whatever was live.
			if _, derr := repo.DemoteActive(nil); derr != nil {
				return fmt.Errorf("failed to demote active shifts: %w", derr)
			}
		}
		if cerr := repo.Create(shift); cerr != nil {
			return fmt.Errorf("failed to create shift: %w", cerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a leadership shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return s.toResponse(shift), nil
}

// List retrieves leadership shifts with pagination
func (s *ShiftService) List(page, pageSize int) (*ShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a leadership shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartDate != nil {
		shift.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		shift.EndDate = *req.EndDate
	}
	if req.LeaderID != nil {
		_, err := s.memberRepo.GetByID(*req.LeaderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to verify leader: %w", err)
		}
		shift.LeaderID = *req.LeaderID
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if !shift.EndDate.After(shift.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if req.StartDate != nil || req.EndDate != nil || req.LeaderID != nil {
		overlap, err := s.repo.HasLeaderOverlap(shift.LeaderID, shift.StartDate, shift.EndDate, &shift.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check leader overlap: %w", err)
		}
		if overlap {
			return nil, apperrors.ErrShiftLeaderOverlap
		}
	}

	newStatus := shift.Status
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid shift status")
		}
		newStatus = *req.Status
	}

	if newStatus == models.ShiftStatusUpcoming && (req.StartDate != nil || req.EndDate != nil) {
		live, lerr := s.repo.HasLiveOverlap(shift.StartDate, shift.EndDate, &shift.ID)
		if lerr != nil {
			return nil, fmt.Errorf("failed to check live overlap: %w", lerr)
		}
		if live {
			return nil, apperrors.ErrShiftIntervalOverlap
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if newStatus == models.ShiftStatusActive && shift.Status != models.ShiftStatusActive {
			if _, derr := repo.DemoteActive(&shift.ID); derr != nil {
				return fmt.Errorf("failed to demote active shifts: %w", derr)
			}
		}
		shift.Status = newStatus
		if uerr := repo.Update(shift); uerr != nil {
			return fmt.Errorf("failed to update shift: %w", uerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(shift), nil
}

// Delete deletes a leadership shift. The live shift cannot be deleted; it
// has to be cancelled or completed first.
func (s *ShiftService) Delete(id uuid.UUID) error {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if shift.Status == models.ShiftStatusActive {
		return apperrors.ErrShiftActiveDelete
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// UpdateShiftStatuses walks every UPCOMING and ACTIVE shift and applies the
// date-driven transitions: expired shifts complete, and the shift whose
// window covers the current instant goes live after everything else is
// demoted. The whole pass runs in one transaction and is idempotent, so
// overlapping callers settle on the same final state.
func (s *ShiftService) UpdateShiftStatuses() (*ShiftStatusRefreshResult, error) {
	now := s.clock.Now()
	result := &ShiftStatusRefreshResult{
		RefreshedAt: now,
		Transitions: []ShiftTransition{},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		shifts, err := repo.GetByStatuses([]models.ShiftStatus{
			models.ShiftStatusUpcoming,
			models.ShiftStatusActive,
		})
		if err != nil {
			return fmt.Errorf("failed to load shifts for refresh: %w", err)
		}

		var candidate *models.LeadershipShift
		for i := range shifts {
			shift := &shifts[i]
			switch shift.Status {
			case models.ShiftStatusActive:
				if now.After(shift.EndDate) {
					changed, uerr := repo.UpdateStatusIf(shift.ID, models.ShiftStatusActive, models.ShiftStatusCompleted)
					if uerr != nil {
						return fmt.Errorf("failed to complete shift %s: %w", shift.ID, uerr)
					}
					if changed {
						result.Updated++
						result.Transitions = append(result.Transitions, ShiftTransition{
							ShiftID: shift.ID,
							Name:    shift.Name,
							From:    models.ShiftStatusActive,
							To:      models.ShiftStatusCompleted,
						})
					}
				}
			case models.ShiftStatusUpcoming:
				if now.After(shift.EndDate) {
					// The window passed without the shift ever going live.
					changed, uerr := repo.UpdateStatusIf(shift.ID, models.ShiftStatusUpcoming, models.ShiftStatusCompleted)
					if uerr != nil {
						return fmt.Errorf("failed to expire shift %s: %w", shift.ID, uerr)
					}
					if changed {
						result.Updated++
						result.Transitions = append(result.Transitions, ShiftTransition{
							ShiftID: shift.ID,
							Name:    shift.Name,
							From:    models.ShiftStatusUpcoming,
							To:      models.ShiftStatusCompleted,
						})
					}
				} else if shift.Covers(now) && candidate == nil {
					candidate = shift
				}
			}
		}

		if candidate != nil {
			demoted, derr := repo.DemoteActive(&candidate.ID)
			if derr != nil {
				return fmt.Errorf("failed to demote active shifts: %w", derr)
			}
			result.Updated += int(demoted)

			changed, uerr := repo.UpdateStatusIf(candidate.ID, models.ShiftStatusUpcoming, models.ShiftStatusActive)
			if uerr != nil {
				return fmt.Errorf("failed to activate shift %s: %w", candidate.ID, uerr)
			}
			if changed {
				result.Updated++
				result.Transitions = append(result.Transitions, ShiftTransition{
					ShiftID: candidate.ID,
					Name:    candidate.Name,
					From:    models.ShiftStatusUpcoming,
					To:      models.ShiftStatusActive,
				})
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetCurrentActiveShift refreshes shift statuses and returns the shift that
// is ACTIVE afterwards. Stored status is never trusted without a refresh.
func (s *ShiftService) GetCurrentActiveShift() (*ShiftResponse, error) {
	if _, err := s.UpdateShiftStatuses(); err != nil {
		return nil, err
	}

	shift, err := s.repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActiveShiftNotFound
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}
	return s.toResponse(shift), nil
}

// GetNextUpcomingShift refreshes shift statuses and returns the soonest
// UPCOMING shift still ahead
func (s *ShiftService) GetNextUpcomingShift() (*ShiftResponse, error) {
	if _, err := s.UpdateShiftStatuses(); err != nil {
		return nil, err
	}

	shift, err := s.repo.GetNextUpcoming(s.clock.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUpcomingShiftNotFound
		}
		return nil, fmt.Errorf("failed to get next upcoming shift: %w", err)
	}
	return s.toResponse(shift), nil
}

// CheckUserOnActiveShift reports whether the user leads the live shift. It
// refreshes statuses first, so a shift whose window just opened authorizes
// its leader and an expired one stops doing so. The two failure modes stay
// distinct so callers can tell "nothing is live" from "someone else's shift
// is live".
func (s *ShiftService) CheckUserOnActiveShift(userID uuid.UUID) error {
	if _, err := s.UpdateShiftStatuses(); err != nil {
		return err
	}

	shift, err := s.repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoShiftCurrentlyLive
		}
		return fmt.Errorf("failed to get active shift: %w", err)
	}
	if shift.LeaderID != userID {
		return apperrors.ErrNotOnActiveShift
	}
	return nil
}

// ValidateSingleActiveShift verifies the single-active invariant holds
func (s *ShiftService) ValidateSingleActiveShift() error {
	count, err := s.repo.CountActive()
	if err != nil {
		return fmt.Errorf("failed to count active shifts: %w", err)
	}
	if count > 1 {
		return apperrors.ErrMultipleActiveShifts
	}
	return nil
}

// GetShiftStats refreshes shift statuses and returns counts grouped by status
func (s *ShiftService) GetShiftStats() (*ShiftStatsResponse, error) {
	if _, err := s.UpdateShiftStatuses(); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to get shift stats: %w", err)
	}

	stats := &ShiftStatsResponse{
		Upcoming:  counts[models.ShiftStatusUpcoming],
		Active:    counts[models.ShiftStatusActive],
		Completed: counts[models.ShiftStatusCompleted],
		Cancelled: counts[models.ShiftStatusCancelled],
	}
	stats.Total = stats.Upcoming + stats.Active + stats.Completed + stats.Cancelled
	return stats, nil
}

// toResponse converts a shift model to response
func (s *ShiftService) toResponse(shift *models.LeadershipShift) *ShiftResponse {
	response := &ShiftResponse{
		ID:              shift.ID,
		Name:            shift.Name,
		StartDate:       shift.StartDate.Format("2006-01-02"),
		EndDate:         shift.EndDate.Format("2006-01-02"),
		LeaderID:        shift.LeaderID,
		Status:          shift.Status,
		EventsScheduled: shift.EventsScheduled,
		EventsCompleted: shift.EventsCompleted,
		Notes:           shift.Notes,
		CreatedAt:       shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       shift.UpdatedAt.Format(time.RFC3339),
	}
	if shift.Leader.ID != uuid.Nil {
		response.LeaderName = shift.Leader.FullName
	}
	return response
}
