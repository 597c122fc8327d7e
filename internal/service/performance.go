package service

import (
	"errors"
	"fmt"
	"time"

	"choir-portal-backend/internal/database/models"
	apperrors "choir-portal-backend/internal/errors"
	"choir-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PerformanceService handles business logic for performances, their linear
// status machine and the promotion of rehearsal plans into production graphs.
type PerformanceService struct {
	repo          *repository.PerformanceRepository
	rehearsalRepo *repository.RehearsalRepository
	shiftRepo     *repository.ShiftRepository
	memberRepo    *repository.ChoirMemberRepository
	shiftService  *ShiftService
	validator     *validator.Validate
	db            *gorm.DB
}

// NewPerformanceService creates a new performance service
func NewPerformanceService(repo *repository.PerformanceRepository, rehearsalRepo *repository.RehearsalRepository, shiftRepo *repository.ShiftRepository, memberRepo *repository.ChoirMemberRepository, shiftService *ShiftService, validator *validator.Validate, db *gorm.DB) *PerformanceService {
	return &PerformanceService{
		repo:          repo,
		rehearsalRepo: rehearsalRepo,
		shiftRepo:     shiftRepo,
		memberRepo:    memberRepo,
		shiftService:  shiftService,
		validator:     validator,
		db:            db,
	}
}

// CreatePerformanceRequest represents the request to create a performance
type CreatePerformanceRequest struct {
	Title            string                 `json:"title" validate:"required,min=1,max=150"`
	Date             time.Time              `json:"date" validate:"required"`
	Location         string                 `json:"location,omitempty"`
	ExpectedAudience int                    `json:"expected_audience,omitempty"`
	Type             models.PerformanceType `json:"type" validate:"required"`
	ShiftLeadID      *uuid.UUID             `json:"shift_lead_id,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
}

// UpdatePerformanceRequest represents the request to update a performance
type UpdatePerformanceRequest struct {
	Title            *string                 `json:"title,omitempty"`
	Date             *time.Time              `json:"date,omitempty"`
	Location         *string                 `json:"location,omitempty"`
	ExpectedAudience *int                    `json:"expected_audience,omitempty"`
	Type             *models.PerformanceType `json:"type,omitempty"`
	Notes            *string                 `json:"notes,omitempty"`
}

// PerformanceMusicianResponse represents one instrumentalist assignment
type PerformanceMusicianResponse struct {
	ID               uuid.UUID         `json:"id"`
	MemberID         *uuid.UUID        `json:"member_id,omitempty"`
	MusicianName     string            `json:"musician_name,omitempty"`
	Instrument       models.Instrument `json:"instrument"`
	Role             string            `json:"role,omitempty"`
	IsSoloist        bool              `json:"is_soloist"`
	IsAccompanist    bool              `json:"is_accompanist"`
	SoloStartSeconds *int              `json:"solo_start_seconds,omitempty"`
	SoloEndSeconds   *int              `json:"solo_end_seconds,omitempty"`
	Notes            string            `json:"notes,omitempty"`
}

// PerformanceVoicePartResponse represents one vocal section assignment
type PerformanceVoicePartResponse struct {
	ID            uuid.UUID            `json:"id"`
	VoicePartType models.VoicePartType `json:"voice_part_type"`
	NeedsWork     bool                 `json:"needs_work"`
	FocusPoints   string               `json:"focus_points,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	MemberIDs     []uuid.UUID          `json:"member_ids"`
}

// PerformanceSongResponse represents one song in the production graph
type PerformanceSongResponse struct {
	ID               uuid.UUID                      `json:"id"`
	SongID           uuid.UUID                      `json:"song_id"`
	SongTitle        string                         `json:"song_title,omitempty"`
	LeadSingerID     *uuid.UUID                     `json:"lead_singer_id,omitempty"`
	LeadSingerName   string                         `json:"lead_singer_name,omitempty"`
	SortOrder        int                            `json:"sort_order"`
	AllocatedMinutes int                            `json:"allocated_minutes"`
	FocusPoints      string                         `json:"focus_points,omitempty"`
	Notes            string                         `json:"notes,omitempty"`
	MusicalKey       string                         `json:"musical_key,omitempty"`
	Musicians        []PerformanceMusicianResponse  `json:"musicians"`
	VoiceParts       []PerformanceVoicePartResponse `json:"voice_parts"`
}

// PerformanceResponse represents the response for performance operations
type PerformanceResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Title            string                    `json:"title"`
	Date             string                    `json:"date"`
	Location         string                    `json:"location,omitempty"`
	ExpectedAudience int                       `json:"expected_audience"`
	Type             models.PerformanceType    `json:"type"`
	Status           models.PerformanceStatus  `json:"status"`
	ShiftLeadID      uuid.UUID                 `json:"shift_lead_id"`
	Notes            string                    `json:"notes,omitempty"`
	Songs            []PerformanceSongResponse `json:"songs,omitempty"`
	CreatedAt        string                    `json:"created_at"`
	UpdatedAt        string                    `json:"updated_at"`
}

// PerformanceListResponse represents a paginated list of performances
type PerformanceListResponse struct {
	Performances []PerformanceResponse `json:"performances"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// authorize enforces the shift-scoped write gate: admins pass, everyone else
// must hold the LEAD category and lead the live shift.
func (s *PerformanceService) authorize(authCtx *AuthContext) error {
	if authCtx.IsPrivileged() {
		return nil
	}
	if authCtx.Category != models.MemberCategoryLead {
		return apperrors.ErrLeadCategoryRequired
	}
	return s.shiftService.CheckUserOnActiveShift(authCtx.UserID)
}

// Create creates a new performance under the live shift
func (s *PerformanceService) Create(req *CreatePerformanceRequest, authCtx *AuthContext) (*PerformanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid performance type")
	}

	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}
	if err := s.shiftService.ValidateSingleActiveShift(); err != nil {
		return nil, err
	}

	// Every performance is anchored to the live shift; without one there is
	// nobody to attribute the event to.
	active, err := s.shiftRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	shiftLeadID := active.LeaderID
	if req.ShiftLeadID != nil {
		_, err := s.memberRepo.GetByID(*req.ShiftLeadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to verify shift lead: %w", err)
		}
		shiftLeadID = *req.ShiftLeadID
	}

	performance := &models.Performance{
		Title:            req.Title,
		Date:             req.Date,
		Location:         req.Location,
		ExpectedAudience: req.ExpectedAudience,
		Type:             req.Type,
		Status:           models.PerformanceStatusUpcoming,
		ShiftLeadID:      shiftLeadID,
		Notes:            req.Notes,
		CreatedByID:      authCtx.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if cerr := s.repo.WithTx(tx).Create(performance); cerr != nil {
			return fmt.Errorf("failed to create performance: %w", cerr)
		}
		if ierr := s.shiftRepo.WithTx(tx).IncrementEventsScheduled(active.ID); ierr != nil {
			return fmt.Errorf("failed to increment scheduled events: %w", ierr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(performance), nil
}

// GetByID retrieves a performance with its production graph
func (s *PerformanceService) GetByID(id uuid.UUID) (*PerformanceResponse, error) {
	performance, err := s.repo.GetWithGraph(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}
	return s.toResponse(performance), nil
}

// List retrieves performances, optionally filtered by status
func (s *PerformanceService) List(status *models.PerformanceStatus, page, pageSize int) (*PerformanceListResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid performance status")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	performances, total, err := s.repo.List(status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list performances: %w", err)
	}

	responses := make([]PerformanceResponse, len(performances))
	for i, performance := range performances {
		responses[i] = *s.toResponse(&performance)
	}

	return &PerformanceListResponse{
		Performances: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update updates a performance's descriptive fields
func (s *PerformanceService) Update(id uuid.UUID, req *UpdatePerformanceRequest, authCtx *AuthContext) (*PerformanceResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}

	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	if req.Title != nil {
		performance.Title = *req.Title
	}
	if req.Date != nil {
		performance.Date = *req.Date
	}
	if req.Location != nil {
		performance.Location = *req.Location
	}
	if req.ExpectedAudience != nil {
		performance.ExpectedAudience = *req.ExpectedAudience
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid performance type")
		}
		performance.Type = *req.Type
	}
	if req.Notes != nil {
		performance.Notes = *req.Notes
	}

	if err := s.repo.Update(performance); err != nil {
		return nil, fmt.Errorf("failed to update performance: %w", err)
	}

	return s.toResponse(performance), nil
}

// Delete deletes a performance and its production graph
func (s *PerformanceService) Delete(id uuid.UUID, authCtx *AuthContext) error {
	if err := s.authorize(authCtx); err != nil {
		return err
	}

	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPerformanceNotFound
		}
		return fmt.Errorf("failed to get performance: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if derr := repo.DeleteProductionGraph(id); derr != nil {
			return fmt.Errorf("failed to delete production graph: %w", derr)
		}
		if derr := repo.Delete(id); derr != nil {
			return fmt.Errorf("failed to delete performance: %w", derr)
		}
		return nil
	})
	return err
}

// MarkInPreparation moves a performance from upcoming to in_preparation,
// opening it for rehearsal planning.
func (s *PerformanceService) MarkInPreparation(id uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}

	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	if performance.Status != models.PerformanceStatusUpcoming {
		return nil, apperrors.ErrPerformanceNotUpcoming
	}

	if err := s.repo.UpdateStatus(id, models.PerformanceStatusInPreparation); err != nil {
		return nil, fmt.Errorf("failed to update performance status: %w", err)
	}

	performance.Status = models.PerformanceStatusInPreparation
	return s.toResponse(performance), nil
}

// MarkCompleted moves a performance from ready to completed and credits the
// owning shift's completed-events counter.
func (s *PerformanceService) MarkCompleted(id uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}

	performance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	if performance.Status != models.PerformanceStatusReady {
		return nil, apperrors.ErrPerformanceNotReady
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if uerr := s.repo.WithTx(tx).UpdateStatus(id, models.PerformanceStatusCompleted); uerr != nil {
			return fmt.Errorf("failed to update performance status: %w", uerr)
		}
		active, aerr := s.shiftRepo.WithTx(tx).GetActive()
		if aerr != nil {
			if errors.Is(aerr, gorm.ErrRecordNotFound) {
				// No live shift to credit; the completion still stands.
				return nil
			}
			return fmt.Errorf("failed to get active shift: %w", aerr)
		}
		if ierr := s.shiftRepo.WithTx(tx).IncrementEventsCompleted(active.ID); ierr != nil {
			return fmt.Errorf("failed to increment completed events: %w", ierr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	performance.Status = models.PerformanceStatusCompleted
	return s.toResponse(performance), nil
}

// PromoteRehearsal replaces the performance's production graph with a deep
// copy of the rehearsal's plan graph and advances the performance to ready.
// The copy and the status change commit or roll back as one unit; a failed
// promotion leaves the previous production graph untouched.
func (s *PerformanceService) PromoteRehearsal(performanceID, rehearsalID uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}

	performance, err := s.repo.GetByID(performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}
	if performance.Status != models.PerformanceStatusInPreparation {
		return nil, apperrors.ErrPerformanceNotPreparing
	}

	rehearsal, err := s.rehearsalRepo.GetWithGraph(rehearsalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}
	if rehearsal.PerformanceID != performanceID {
		return nil, apperrors.ErrRehearsalMismatch
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if derr := repo.DeleteProductionGraph(performanceID); derr != nil {
			return fmt.Errorf("failed to clear production graph: %w", derr)
		}

		for _, rs := range rehearsal.Songs {
			song := &models.PerformanceSong{
				PerformanceID:    performanceID,
				SongID:           rs.SongID,
				SortOrder:        rs.SortOrder,
				AllocatedMinutes: rs.AllocatedMinutes,
				FocusPoints:      rs.FocusPoints,
				Notes:            rs.Notes,
				MusicalKey:       rs.MusicalKey,
			}
			// A performance song carries a single featured singer; the first
			// of the rehearsal's lead singers wins.
			if len(rs.LeadSingers) > 0 {
				leadID := rs.LeadSingers[0].ID
				song.LeadSingerID = &leadID
			}
			if cerr := repo.CreateSong(song); cerr != nil {
				return fmt.Errorf("failed to copy song %s: %w", rs.SongID, cerr)
			}

			for _, rm := range rs.Musicians {
				musician := &models.PerformanceSongMusician{
					PerformanceSongID: song.ID,
					MemberID:          rm.MemberID,
					MusicianName:      rm.MusicianName,
					Instrument:        models.MapInstrument(rm.Instrument),
					Role:              rm.Role,
					IsSoloist:         rm.IsSoloist,
					IsAccompanist:     rm.IsAccompanist,
					SoloStartSeconds:  rm.SoloStartSeconds,
					SoloEndSeconds:    rm.SoloEndSeconds,
					Notes:             rm.Notes,
				}
				if cerr := repo.CreateMusician(musician); cerr != nil {
					return fmt.Errorf("failed to copy musician: %w", cerr)
				}
			}

			for _, rvp := range rs.VoiceParts {
				voicePart := &models.PerformanceVoicePart{
					PerformanceSongID: song.ID,
					VoicePartType:     rvp.VoicePartType,
					NeedsWork:         rvp.NeedsWork,
					FocusPoints:       rvp.FocusPoints,
					Notes:             rvp.Notes,
				}
				if cerr := repo.CreateVoicePart(voicePart); cerr != nil {
					return fmt.Errorf("failed to copy voice part: %w", cerr)
				}

				memberIDs := make([]uuid.UUID, len(rvp.Members))
				for i, member := range rvp.Members {
					memberIDs[i] = member.ID
				}
				if aerr := repo.AddVoicePartMembers(voicePart.ID, memberIDs); aerr != nil {
					return fmt.Errorf("failed to copy voice part members: %w", aerr)
				}
			}
		}

		if uerr := repo.UpdateStatus(performanceID, models.PerformanceStatusReady); uerr != nil {
			return fmt.Errorf("failed to advance performance to ready: %w", uerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	promoted, err := s.repo.GetWithGraph(performanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload performance: %w", err)
	}
	return s.toResponse(promoted), nil
}

// toResponse converts a performance model to response
func (s *PerformanceService) toResponse(performance *models.Performance) *PerformanceResponse {
	response := &PerformanceResponse{
		ID:               performance.ID,
		Title:            performance.Title,
		Date:             performance.Date.Format(time.RFC3339),
		Location:         performance.Location,
		ExpectedAudience: performance.ExpectedAudience,
		Type:             performance.Type,
		Status:           performance.Status,
		ShiftLeadID:      performance.ShiftLeadID,
		Notes:            performance.Notes,
		CreatedAt:        performance.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        performance.UpdatedAt.Format(time.RFC3339),
	}

	for _, song := range performance.Songs {
		songResp := PerformanceSongResponse{
			ID:               song.ID,
			SongID:           song.SongID,
			SongTitle:        song.Song.Title,
			LeadSingerID:     song.LeadSingerID,
			SortOrder:        song.SortOrder,
			AllocatedMinutes: song.AllocatedMinutes,
			FocusPoints:      song.FocusPoints,
			Notes:            song.Notes,
			MusicalKey:       song.MusicalKey,
			Musicians:        []PerformanceMusicianResponse{},
			VoiceParts:       []PerformanceVoicePartResponse{},
		}
		if song.LeadSinger != nil {
			songResp.LeadSingerName = song.LeadSinger.FullName
		}
		for _, musician := range song.Musicians {
			songResp.Musicians = append(songResp.Musicians, PerformanceMusicianResponse{
				ID:               musician.ID,
				MemberID:         musician.MemberID,
				MusicianName:     musician.MusicianName,
				Instrument:       musician.Instrument,
				Role:             musician.Role,
				IsSoloist:        musician.IsSoloist,
				IsAccompanist:    musician.IsAccompanist,
				SoloStartSeconds: musician.SoloStartSeconds,
				SoloEndSeconds:   musician.SoloEndSeconds,
				Notes:            musician.Notes,
			})
		}
		for _, voicePart := range song.VoiceParts {
			memberIDs := make([]uuid.UUID, len(voicePart.Members))
			for i, member := range voicePart.Members {
				memberIDs[i] = member.ID
			}
			songResp.VoiceParts = append(songResp.VoiceParts, PerformanceVoicePartResponse{
				ID:            voicePart.ID,
				VoicePartType: voicePart.VoicePartType,
				NeedsWork:     voicePart.NeedsWork,
				FocusPoints:   voicePart.FocusPoints,
				Notes:         voicePart.Notes,
				MemberIDs:     memberIDs,
			})
		}
		response.Songs = append(response.Songs, songResp)
	}

	return response
}
