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

// RehearsalService handles business logic for rehearsals and their plan
// graphs, the raw material the promotion operation copies from.
type RehearsalService struct {
	repo         *repository.RehearsalRepository
	perfRepo     *repository.PerformanceRepository
	memberRepo   *repository.ChoirMemberRepository
	songRepo     *repository.SongRepository
	shiftRepo    *repository.ShiftRepository
	shiftService *ShiftService
	validator    *validator.Validate
	db           *gorm.DB
}

// NewRehearsalService creates a new rehearsal service
func NewRehearsalService(repo *repository.RehearsalRepository, perfRepo *repository.PerformanceRepository, memberRepo *repository.ChoirMemberRepository, songRepo *repository.SongRepository, shiftRepo *repository.ShiftRepository, shiftService *ShiftService, validator *validator.Validate, db *gorm.DB) *RehearsalService {
	return &RehearsalService{
		repo:         repo,
		perfRepo:     perfRepo,
		memberRepo:   memberRepo,
		songRepo:     songRepo,
		shiftRepo:    shiftRepo,
		shiftService: shiftService,
		validator:    validator,
		db:           db,
	}
}

// RehearsalMusicianInput describes one instrumentalist in a plan graph.
// Instrument is free text here; promotion normalizes it later.
type RehearsalMusicianInput struct {
	MemberID         *uuid.UUID `json:"member_id,omitempty"`
	MusicianName     string     `json:"musician_name,omitempty"`
	Instrument       string     `json:"instrument,omitempty"`
	Role             string     `json:"role,omitempty"`
	IsSoloist        bool       `json:"is_soloist,omitempty"`
	IsAccompanist    bool       `json:"is_accompanist,omitempty"`
	SoloStartSeconds *int       `json:"solo_start_seconds,omitempty"`
	SoloEndSeconds   *int       `json:"solo_end_seconds,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// RehearsalVoicePartInput describes one vocal section in a plan graph
type RehearsalVoicePartInput struct {
	VoicePartType models.VoicePartType `json:"voice_part_type" validate:"required"`
	NeedsWork     bool                 `json:"needs_work,omitempty"`
	FocusPoints   string               `json:"focus_points,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	MemberIDs     []uuid.UUID          `json:"member_ids,omitempty"`
}

// RehearsalSongInput describes one song in a plan graph
type RehearsalSongInput struct {
	SongID           uuid.UUID                 `json:"song_id" validate:"required"`
	SortOrder        int                       `json:"sort_order,omitempty"`
	Difficulty       int                       `json:"difficulty,omitempty" validate:"omitempty,min=0,max=10"`
	AllocatedMinutes int                       `json:"allocated_minutes,omitempty"`
	FocusPoints      string                    `json:"focus_points,omitempty"`
	Notes            string                    `json:"notes,omitempty"`
	MusicalKey       string                    `json:"musical_key,omitempty"`
	LeadSingerIDs    []uuid.UUID               `json:"lead_singer_ids,omitempty"`
	ChorusMemberIDs  []uuid.UUID               `json:"chorus_member_ids,omitempty"`
	Musicians        []RehearsalMusicianInput  `json:"musicians,omitempty"`
	VoiceParts       []RehearsalVoicePartInput `json:"voice_parts,omitempty"`
}

// CreateRehearsalRequest represents the request to create a rehearsal
type CreateRehearsalRequest struct {
	Title           string               `json:"title" validate:"required,min=1,max=150"`
	Date            time.Time            `json:"date" validate:"required"`
	Type            models.RehearsalType `json:"type" validate:"required"`
	PerformanceID   uuid.UUID            `json:"performance_id" validate:"required"`
	RehearsalLeadID *uuid.UUID           `json:"rehearsal_lead_id,omitempty"`
	IsTemplate      bool                 `json:"is_template,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Objectives      string               `json:"objectives,omitempty"`
	AttendeeIDs     []uuid.UUID          `json:"attendee_ids,omitempty"`
	Songs           []RehearsalSongInput `json:"songs,omitempty"`
}

// UpdateRehearsalRequest represents the request to update a rehearsal
type UpdateRehearsalRequest struct {
	Title           *string                 `json:"title,omitempty"`
	Date            *time.Time              `json:"date,omitempty"`
	Type            *models.RehearsalType   `json:"type,omitempty"`
	Status          *models.RehearsalStatus `json:"status,omitempty"`
	RehearsalLeadID *uuid.UUID              `json:"rehearsal_lead_id,omitempty"`
	Notes           *string                 `json:"notes,omitempty"`
	Objectives      *string                 `json:"objectives,omitempty"`
	Feedback        *string                 `json:"feedback,omitempty"`
	AttendeeIDs     *[]uuid.UUID            `json:"attendee_ids,omitempty"`
}

// UpdateRehearsalSongRequest represents the request to update one plan song.
// The song reference itself is immutable; remove and re-add to swap songs.
type UpdateRehearsalSongRequest struct {
	SongID           *uuid.UUID                 `json:"song_id,omitempty"`
	SortOrder        *int                       `json:"sort_order,omitempty"`
	Difficulty       *int                       `json:"difficulty,omitempty"`
	AllocatedMinutes *int                       `json:"allocated_minutes,omitempty"`
	FocusPoints      *string                    `json:"focus_points,omitempty"`
	Notes            *string                    `json:"notes,omitempty"`
	MusicalKey       *string                    `json:"musical_key,omitempty"`
	LeadSingerIDs    *[]uuid.UUID               `json:"lead_singer_ids,omitempty"`
	ChorusMemberIDs  *[]uuid.UUID               `json:"chorus_member_ids,omitempty"`
	Musicians        *[]RehearsalMusicianInput  `json:"musicians,omitempty"`
	VoiceParts       *[]RehearsalVoicePartInput `json:"voice_parts,omitempty"`
}

// RehearsalMusicianResponse represents one instrumentalist assignment
type RehearsalMusicianResponse struct {
	ID               uuid.UUID  `json:"id"`
	MemberID         *uuid.UUID `json:"member_id,omitempty"`
	MusicianName     string     `json:"musician_name,omitempty"`
	Instrument       string     `json:"instrument,omitempty"`
	Role             string     `json:"role,omitempty"`
	IsSoloist        bool       `json:"is_soloist"`
	IsAccompanist    bool       `json:"is_accompanist"`
	SoloStartSeconds *int       `json:"solo_start_seconds,omitempty"`
	SoloEndSeconds   *int       `json:"solo_end_seconds,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// RehearsalVoicePartResponse represents one vocal section assignment
type RehearsalVoicePartResponse struct {
	ID            uuid.UUID            `json:"id"`
	VoicePartType models.VoicePartType `json:"voice_part_type"`
	NeedsWork     bool                 `json:"needs_work"`
	FocusPoints   string               `json:"focus_points,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	MemberIDs     []uuid.UUID          `json:"member_ids"`
}

// RehearsalSongResponse represents one song in the plan graph
type RehearsalSongResponse struct {
	ID               uuid.UUID                    `json:"id"`
	SongID           uuid.UUID                    `json:"song_id"`
	SongTitle        string                       `json:"song_title,omitempty"`
	SortOrder        int                          `json:"sort_order"`
	Difficulty       int                          `json:"difficulty"`
	AllocatedMinutes int                          `json:"allocated_minutes"`
	FocusPoints      string                       `json:"focus_points,omitempty"`
	Notes            string                       `json:"notes,omitempty"`
	MusicalKey       string                       `json:"musical_key,omitempty"`
	LeadSingerIDs    []uuid.UUID                  `json:"lead_singer_ids"`
	ChorusMemberIDs  []uuid.UUID                  `json:"chorus_member_ids"`
	Musicians        []RehearsalMusicianResponse  `json:"musicians"`
	VoiceParts       []RehearsalVoicePartResponse `json:"voice_parts"`
}

// RehearsalResponse represents the response for rehearsal operations
type RehearsalResponse struct {
	ID              uuid.UUID               `json:"id"`
	Title           string                  `json:"title"`
	Date            string                  `json:"date"`
	Type            models.RehearsalType    `json:"type"`
	Status          models.RehearsalStatus  `json:"status"`
	PerformanceID   uuid.UUID               `json:"performance_id"`
	RehearsalLeadID uuid.UUID               `json:"rehearsal_lead_id"`
	IsTemplate      bool                    `json:"is_template"`
	Notes           string                  `json:"notes,omitempty"`
	Objectives      string                  `json:"objectives,omitempty"`
	Feedback        string                  `json:"feedback,omitempty"`
	AttendeeIDs     []uuid.UUID             `json:"attendee_ids"`
	Songs           []RehearsalSongResponse `json:"songs,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// RehearsalListResponse represents a paginated list of rehearsals
type RehearsalListResponse struct {
	Rehearsals []RehearsalResponse `json:"rehearsals"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// PromotionReadinessResponse reports whether a rehearsal can be promoted.
// Reasons block promotion; warnings do not.
type PromotionReadinessResponse struct {
	CanPromote bool     `json:"can_promote"`
	Reasons    []string `json:"reasons"`
	Warnings   []string `json:"warnings"`
}

// authorize enforces the shift-scoped write gate: admins pass, everyone else
// must hold the LEAD category and lead the live shift.
func (s *RehearsalService) authorize(authCtx *AuthContext) error {
	if authCtx.IsPrivileged() {
		return nil
	}
	if authCtx.Category != models.MemberCategoryLead {
		return apperrors.ErrLeadCategoryRequired
	}
	return s.shiftService.CheckUserOnActiveShift(authCtx.UserID)
}

// verifyMembers checks that every referenced member exists, so bad IDs fail
// with a clear error instead of a foreign-key violation.
func (s *RehearsalService) verifyMembers(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	members, err := s.memberRepo.GetByIDs(unique)
	if err != nil {
		return fmt.Errorf("failed to verify members: %w", err)
	}
	if len(members) != len(unique) {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// collectMemberIDs gathers every member reference in a song input
func collectMemberIDs(input *RehearsalSongInput) []uuid.UUID {
	var ids []uuid.UUID
	ids = append(ids, input.LeadSingerIDs...)
	ids = append(ids, input.ChorusMemberIDs...)
	for _, m := range input.Musicians {
		if m.MemberID != nil {
			ids = append(ids, *m.MemberID)
		}
	}
	for _, vp := range input.VoiceParts {
		ids = append(ids, vp.MemberIDs...)
	}
	return ids
}

// Create creates a rehearsal with its full plan graph in one transaction
func (s *RehearsalService) Create(req *CreateRehearsalRequest, authCtx *AuthContext) (*RehearsalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid rehearsal type")
	}

	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}

	// Rehearsals are planned under a live shift even for admins; without one
	// there is no leadership window to plan within.
	if _, err := s.shiftRepo.GetActive(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	performance, err := s.perfRepo.GetByID(req.PerformanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	rehearsalLeadID := performance.ShiftLeadID
	if req.RehearsalLeadID != nil {
		_, err := s.memberRepo.GetByID(*req.RehearsalLeadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to verify rehearsal lead: %w", err)
		}
		rehearsalLeadID = *req.RehearsalLeadID
	}

	if err := s.verifyMembers(req.AttendeeIDs); err != nil {
		return nil, err
	}
	for i := range req.Songs {
		if _, serr := s.songRepo.GetByID(req.Songs[i].SongID); serr != nil {
			if errors.Is(serr, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSongNotFound
			}
			return nil, fmt.Errorf("failed to verify song: %w", serr)
		}
		if merr := s.verifyMembers(collectMemberIDs(&req.Songs[i])); merr != nil {
			return nil, merr
		}
	}

	rehearsal := &models.Rehearsal{
		Title:           req.Title,
		Date:            req.Date,
		Type:            req.Type,
		Status:          models.RehearsalStatusPlanning,
		PerformanceID:   req.PerformanceID,
		RehearsalLeadID: rehearsalLeadID,
		IsTemplate:      req.IsTemplate,
		Notes:           req.Notes,
		Objectives:      req.Objectives,
		CreatedByID:     authCtx.UserID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if cerr := repo.Create(rehearsal); cerr != nil {
			return fmt.Errorf("failed to create rehearsal: %w", cerr)
		}
		if len(req.AttendeeIDs) > 0 {
			if aerr := repo.ReplaceAttendees(rehearsal.ID, req.AttendeeIDs); aerr != nil {
				return fmt.Errorf("failed to set attendees: %w", aerr)
			}
		}
		for i := range req.Songs {
			if serr := s.createSongGraph(repo, rehearsal.ID, &req.Songs[i]); serr != nil {
				return serr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(rehearsal.ID)
}

// createSongGraph persists one plan song and its children
func (s *RehearsalService) createSongGraph(repo *repository.RehearsalRepository, rehearsalID uuid.UUID, input *RehearsalSongInput) error {
	song := &models.RehearsalSong{
		RehearsalID:      rehearsalID,
		SongID:           input.SongID,
		SortOrder:        input.SortOrder,
		Difficulty:       input.Difficulty,
		AllocatedMinutes: input.AllocatedMinutes,
		FocusPoints:      input.FocusPoints,
		Notes:            input.Notes,
		MusicalKey:       input.MusicalKey,
	}
	if err := repo.CreateSong(song); err != nil {
		return fmt.Errorf("failed to create rehearsal song: %w", err)
	}

	if len(input.LeadSingerIDs) > 0 {
		if err := repo.ReplaceLeadSingers(song.ID, input.LeadSingerIDs); err != nil {
			return fmt.Errorf("failed to set lead singers: %w", err)
		}
	}
	if len(input.ChorusMemberIDs) > 0 {
		if err := repo.ReplaceChorusMembers(song.ID, input.ChorusMemberIDs); err != nil {
			return fmt.Errorf("failed to set chorus members: %w", err)
		}
	}

	for _, m := range input.Musicians {
		musician := &models.RehearsalSongMusician{
			RehearsalSongID:  song.ID,
			MemberID:         m.MemberID,
			MusicianName:     m.MusicianName,
			Instrument:       m.Instrument,
			Role:             m.Role,
			IsSoloist:        m.IsSoloist,
			IsAccompanist:    m.IsAccompanist,
			SoloStartSeconds: m.SoloStartSeconds,
			SoloEndSeconds:   m.SoloEndSeconds,
			Notes:            m.Notes,
		}
		if err := repo.CreateMusician(musician); err != nil {
			return fmt.Errorf("failed to create musician: %w", err)
		}
	}

	for _, vp := range input.VoiceParts {
		if !vp.VoicePartType.IsValid() {
			return apperrors.NewValidationError("voice_part_type", "invalid voice part type")
		}
		voicePart := &models.RehearsalVoicePart{
			RehearsalSongID: song.ID,
			VoicePartType:   vp.VoicePartType,
			NeedsWork:       vp.NeedsWork,
			FocusPoints:     vp.FocusPoints,
			Notes:           vp.Notes,
		}
		if err := repo.CreateVoicePart(voicePart); err != nil {
			return fmt.Errorf("failed to create voice part: %w", err)
		}
		if len(vp.MemberIDs) > 0 {
			if err := repo.AddVoicePartMembers(voicePart.ID, vp.MemberIDs); err != nil {
				return fmt.Errorf("failed to set voice part members: %w", err)
			}
		}
	}

	return nil
}

// GetByID retrieves a rehearsal with its plan graph
func (s *RehearsalService) GetByID(id uuid.UUID) (*RehearsalResponse, error) {
	rehearsal, err := s.repo.GetWithGraph(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}
	return s.toResponse(rehearsal), nil
}

// ListByPerformance retrieves the rehearsals preparing a performance
func (s *RehearsalService) ListByPerformance(performanceID uuid.UUID, page, pageSize int) (*RehearsalListResponse, error) {
	_, err := s.perfRepo.GetByID(performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to verify performance: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	rehearsals, total, err := s.repo.ListByPerformance(performanceID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rehearsals: %w", err)
	}

	responses := make([]RehearsalResponse, len(rehearsals))
	for i, rehearsal := range rehearsals {
		responses[i] = *s.toResponse(&rehearsal)
	}

	return &RehearsalListResponse{
		Rehearsals: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// requireOwner loads a rehearsal and checks the caller may modify it
func (s *RehearsalService) requireOwner(id uuid.UUID, authCtx *AuthContext) (*models.Rehearsal, error) {
	rehearsal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}
	if !authCtx.IsPrivileged() && rehearsal.CreatedByID != authCtx.UserID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return rehearsal, nil
}

// Update updates a rehearsal's own fields and attendee set
func (s *RehearsalService) Update(id uuid.UUID, req *UpdateRehearsalRequest, authCtx *AuthContext) (*RehearsalResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}
	rehearsal, err := s.requireOwner(id, authCtx)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		rehearsal.Title = *req.Title
	}
	if req.Date != nil {
		rehearsal.Date = *req.Date
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError("type", "invalid rehearsal type")
		}
		rehearsal.Type = *req.Type
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "invalid rehearsal status")
		}
		rehearsal.Status = *req.Status
	}
	if req.RehearsalLeadID != nil {
		_, err := s.memberRepo.GetByID(*req.RehearsalLeadID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to verify rehearsal lead: %w", err)
		}
		rehearsal.RehearsalLeadID = *req.RehearsalLeadID
	}
	if req.Notes != nil {
		rehearsal.Notes = *req.Notes
	}
	if req.Objectives != nil {
		rehearsal.Objectives = *req.Objectives
	}
	if req.Feedback != nil {
		rehearsal.Feedback = *req.Feedback
	}
	if req.AttendeeIDs != nil {
		if err := s.verifyMembers(*req.AttendeeIDs); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if uerr := repo.Update(rehearsal); uerr != nil {
			return fmt.Errorf("failed to update rehearsal: %w", uerr)
		}
		if req.AttendeeIDs != nil {
			if aerr := repo.ReplaceAttendees(rehearsal.ID, *req.AttendeeIDs); aerr != nil {
				return fmt.Errorf("failed to replace attendees: %w", aerr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete deletes a rehearsal and its plan graph
func (s *RehearsalService) Delete(id uuid.UUID, authCtx *AuthContext) error {
	if err := s.authorize(authCtx); err != nil {
		return err
	}
	rehearsal, err := s.requireOwner(id, authCtx)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var songIDs []uuid.UUID
		if perr := tx.Model(&models.RehearsalSong{}).
			Where("rehearsal_id = ?", rehearsal.ID).
			Pluck("id", &songIDs).Error; perr != nil {
			return fmt.Errorf("failed to list rehearsal songs: %w", perr)
		}
		for _, songID := range songIDs {
			if derr := repo.DeleteSong(songID); derr != nil {
				return fmt.Errorf("failed to delete rehearsal song: %w", derr)
			}
		}
		if aerr := repo.ReplaceAttendees(rehearsal.ID, nil); aerr != nil {
			return fmt.Errorf("failed to clear attendees: %w", aerr)
		}
		if derr := repo.Delete(rehearsal.ID); derr != nil {
			return fmt.Errorf("failed to delete rehearsal: %w", derr)
		}
		return nil
	})
}

// AddSongs appends songs to a rehearsal's plan graph
func (s *RehearsalService) AddSongs(id uuid.UUID, songs []RehearsalSongInput, authCtx *AuthContext) (*RehearsalResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}
	rehearsal, err := s.requireOwner(id, authCtx)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, apperrors.NewValidationError("songs", "at least one song is required")
	}

	for i := range songs {
		if songs[i].SongID == uuid.Nil {
			return nil, apperrors.NewValidationError("song_id", "song_id is required")
		}
		if _, serr := s.songRepo.GetByID(songs[i].SongID); serr != nil {
			if errors.Is(serr, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSongNotFound
			}
			return nil, fmt.Errorf("failed to verify song: %w", serr)
		}
		if merr := s.verifyMembers(collectMemberIDs(&songs[i])); merr != nil {
			return nil, merr
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for i := range songs {
			if serr := s.createSongGraph(repo, rehearsal.ID, &songs[i]); serr != nil {
				return serr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// UpdateSong updates one plan song. The song reference is immutable; member
// and musician sets are replaced wholesale when provided.
func (s *RehearsalService) UpdateSong(rehearsalID, songID uuid.UUID, req *UpdateRehearsalSongRequest, authCtx *AuthContext) (*RehearsalResponse, error) {
	if err := s.authorize(authCtx); err != nil {
		return nil, err
	}
	rehearsal, err := s.requireOwner(rehearsalID, authCtx)
	if err != nil {
		return nil, err
	}

	song, err := s.repo.GetSongByID(songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalSongNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal song: %w", err)
	}
	if song.RehearsalID != rehearsal.ID {
		return nil, apperrors.ErrRehearsalSongNotFound
	}

	if req.SongID != nil && *req.SongID != song.SongID {
		return nil, apperrors.ErrSongReferenceImmutable
	}

	if req.SortOrder != nil {
		song.SortOrder = *req.SortOrder
	}
	if req.Difficulty != nil {
		song.Difficulty = *req.Difficulty
	}
	if req.AllocatedMinutes != nil {
		song.AllocatedMinutes = *req.AllocatedMinutes
	}
	if req.FocusPoints != nil {
		song.FocusPoints = *req.FocusPoints
	}
	if req.Notes != nil {
		song.Notes = *req.Notes
	}
	if req.MusicalKey != nil {
		song.MusicalKey = *req.MusicalKey
	}

	if req.LeadSingerIDs != nil {
		if merr := s.verifyMembers(*req.LeadSingerIDs); merr != nil {
			return nil, merr
		}
	}
	if req.ChorusMemberIDs != nil {
		if merr := s.verifyMembers(*req.ChorusMemberIDs); merr != nil {
			return nil, merr
		}
	}
	if req.Musicians != nil {
		var ids []uuid.UUID
		for _, m := range *req.Musicians {
			if m.MemberID != nil {
				ids = append(ids, *m.MemberID)
			}
		}
		if merr := s.verifyMembers(ids); merr != nil {
			return nil, merr
		}
	}
	if req.VoiceParts != nil {
		var ids []uuid.UUID
		for _, vp := range *req.VoiceParts {
			if !vp.VoicePartType.IsValid() {
				return nil, apperrors.NewValidationError("voice_part_type", "invalid voice part type")
			}
			ids = append(ids, vp.MemberIDs...)
		}
		if merr := s.verifyMembers(ids); merr != nil {
			return nil, merr
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if uerr := repo.UpdateSong(song); uerr != nil {
			return fmt.Errorf("failed to update rehearsal song: %w", uerr)
		}
		if req.LeadSingerIDs != nil {
			if rerr := repo.ReplaceLeadSingers(song.ID, *req.LeadSingerIDs); rerr != nil {
				return fmt.Errorf("failed to replace lead singers: %w", rerr)
			}
		}
		if req.ChorusMemberIDs != nil {
			if rerr := repo.ReplaceChorusMembers(song.ID, *req.ChorusMemberIDs); rerr != nil {
				return fmt.Errorf("failed to replace chorus members: %w", rerr)
			}
		}
		if req.Musicians != nil || req.VoiceParts != nil {
			// Musicians and voice parts are replaced together to keep the
			// children consistent with a single request payload.
			if derr := repo.DeleteSongChildren(song.ID); derr != nil {
				return fmt.Errorf("failed to clear song children: %w", derr)
			}
			musicians := song.Musicians
			if req.Musicians != nil {
				musicians = nil
				for _, m := range *req.Musicians {
					musicians = append(musicians, models.RehearsalSongMusician{
						RehearsalSongID:  song.ID,
						MemberID:         m.MemberID,
						MusicianName:     m.MusicianName,
						Instrument:       m.Instrument,
						Role:             m.Role,
						IsSoloist:        m.IsSoloist,
						IsAccompanist:    m.IsAccompanist,
						SoloStartSeconds: m.SoloStartSeconds,
						SoloEndSeconds:   m.SoloEndSeconds,
						Notes:            m.Notes,
					})
				}
			}
			for i := range musicians {
				musician := musicians[i]
				musician.ID = uuid.Nil
				musician.RehearsalSongID = song.ID
				if cerr := repo.CreateMusician(&musician); cerr != nil {
					return fmt.Errorf("failed to create musician: %w", cerr)
				}
			}

			if req.VoiceParts != nil {
				for _, vp := range *req.VoiceParts {
					voicePart := &models.RehearsalVoicePart{
						RehearsalSongID: song.ID,
						VoicePartType:   vp.VoicePartType,
						NeedsWork:       vp.NeedsWork,
						FocusPoints:     vp.FocusPoints,
						Notes:           vp.Notes,
					}
					if cerr := repo.CreateVoicePart(voicePart); cerr != nil {
						return fmt.Errorf("failed to create voice part: %w", cerr)
					}
					if len(vp.MemberIDs) > 0 {
						if aerr := repo.AddVoicePartMembers(voicePart.ID, vp.MemberIDs); aerr != nil {
							return fmt.Errorf("failed to set voice part members: %w", aerr)
						}
					}
				}
			} else {
				for i := range song.VoiceParts {
					old := song.VoiceParts[i]
					voicePart := &models.RehearsalVoicePart{
						RehearsalSongID: song.ID,
						VoicePartType:   old.VoicePartType,
						NeedsWork:       old.NeedsWork,
						FocusPoints:     old.FocusPoints,
						Notes:           old.Notes,
					}
					if cerr := repo.CreateVoicePart(voicePart); cerr != nil {
						return fmt.Errorf("failed to recreate voice part: %w", cerr)
					}
					memberIDs := make([]uuid.UUID, len(old.Members))
					for j, member := range old.Members {
						memberIDs[j] = member.ID
					}
					if len(memberIDs) > 0 {
						if aerr := repo.AddVoicePartMembers(voicePart.ID, memberIDs); aerr != nil {
							return fmt.Errorf("failed to restore voice part members: %w", aerr)
						}
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(rehearsalID)
}

// RemoveSong removes one song from a rehearsal's plan graph
func (s *RehearsalService) RemoveSong(rehearsalID, songID uuid.UUID, authCtx *AuthContext) error {
	if err := s.authorize(authCtx); err != nil {
		return err
	}
	rehearsal, err := s.requireOwner(rehearsalID, authCtx)
	if err != nil {
		return err
	}

	song, err := s.repo.GetSongByID(songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRehearsalSongNotFound
		}
		return fmt.Errorf("failed to get rehearsal song: %w", err)
	}
	if song.RehearsalID != rehearsal.ID {
		return apperrors.ErrRehearsalSongNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if derr := s.repo.WithTx(tx).DeleteSong(song.ID); derr != nil {
			return fmt.Errorf("failed to delete rehearsal song: %w", derr)
		}
		return nil
	})
}

// CheckPromotionReadiness reports whether the rehearsal's plan graph can be
// promoted into its performance right now, without changing anything.
func (s *RehearsalService) CheckPromotionReadiness(id uuid.UUID) (*PromotionReadinessResponse, error) {
	rehearsal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRehearsalNotFound
		}
		return nil, fmt.Errorf("failed to get rehearsal: %w", err)
	}

	performance, err := s.perfRepo.GetByID(rehearsal.PerformanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPerformanceNotFound
		}
		return nil, fmt.Errorf("failed to get performance: %w", err)
	}

	result := &PromotionReadinessResponse{
		Reasons:  []string{},
		Warnings: []string{},
	}

	if performance.Status != models.PerformanceStatusInPreparation {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("performance is %s, promotion requires in_preparation", performance.Status))
	}

	songCount, err := s.repo.CountSongs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count rehearsal songs: %w", err)
	}
	if songCount == 0 {
		result.Reasons = append(result.Reasons, "rehearsal has no songs to promote")
	}

	missing, err := s.repo.CountSongsMissingVoiceParts(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count songs without voice parts: %w", err)
	}
	if missing > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d song(s) have no voice part assignments", missing))
	}
	if rehearsal.Status != models.RehearsalStatusCompleted {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("rehearsal status is %s, not Completed", rehearsal.Status))
	}

	result.CanPromote = len(result.Reasons) == 0
	return result, nil
}

// toResponse converts a rehearsal model to response
func (s *RehearsalService) toResponse(rehearsal *models.Rehearsal) *RehearsalResponse {
	response := &RehearsalResponse{
		ID:              rehearsal.ID,
		Title:           rehearsal.Title,
		Date:            rehearsal.Date.Format(time.RFC3339),
		Type:            rehearsal.Type,
		Status:          rehearsal.Status,
		PerformanceID:   rehearsal.PerformanceID,
		RehearsalLeadID: rehearsal.RehearsalLeadID,
		IsTemplate:      rehearsal.IsTemplate,
		Notes:           rehearsal.Notes,
		Objectives:      rehearsal.Objectives,
		Feedback:        rehearsal.Feedback,
		AttendeeIDs:     []uuid.UUID{},
		CreatedAt:       rehearsal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       rehearsal.UpdatedAt.Format(time.RFC3339),
	}
	for _, attendee := range rehearsal.Attendees {
		response.AttendeeIDs = append(response.AttendeeIDs, attendee.ID)
	}

	for _, song := range rehearsal.Songs {
		songResp := RehearsalSongResponse{
			ID:               song.ID,
			SongID:           song.SongID,
			SongTitle:        song.Song.Title,
			SortOrder:        song.SortOrder,
			Difficulty:       song.Difficulty,
			AllocatedMinutes: song.AllocatedMinutes,
			FocusPoints:      song.FocusPoints,
			Notes:            song.Notes,
			MusicalKey:       song.MusicalKey,
			LeadSingerIDs:    []uuid.UUID{},
			ChorusMemberIDs:  []uuid.UUID{},
			Musicians:        []RehearsalMusicianResponse{},
			VoiceParts:       []RehearsalVoicePartResponse{},
		}
		for _, singer := range song.LeadSingers {
			songResp.LeadSingerIDs = append(songResp.LeadSingerIDs, singer.ID)
		}
		for _, member := range song.ChorusMembers {
			songResp.ChorusMemberIDs = append(songResp.ChorusMemberIDs, member.ID)
		}
		for _, musician := range song.Musicians {
			songResp.Musicians = append(songResp.Musicians, RehearsalMusicianResponse{
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
			songResp.VoiceParts = append(songResp.VoiceParts, RehearsalVoicePartResponse{
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
