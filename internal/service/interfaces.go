package service

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberServiceInterface defines the interface for choir member service
type MemberServiceInterface interface {
	Create(req *CreateMemberRequest) (*MemberResponse, error)
	GetByID(id uuid.UUID) (*MemberResponse, error)
	List(page, pageSize int) (*MemberListResponse, error)
}

// SongServiceInterface defines the interface for song catalog service
type SongServiceInterface interface {
	Create(req *CreateSongRequest) (*SongResponse, error)
	GetByID(id uuid.UUID) (*SongResponse, error)
	List(page, pageSize int) (*SongListResponse, error)
}

// ShiftServiceInterface defines the interface for leadership shift service
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest, creatorID uuid.UUID) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	List(page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
	UpdateShiftStatuses() (*ShiftStatusRefreshResult, error)
	GetCurrentActiveShift() (*ShiftResponse, error)
	GetNextUpcomingShift() (*ShiftResponse, error)
	CheckUserOnActiveShift(userID uuid.UUID) error
	ValidateSingleActiveShift() error
	GetShiftStats() (*ShiftStatsResponse, error)
}

// PerformanceServiceInterface defines the interface for performance service
type PerformanceServiceInterface interface {
	Create(req *CreatePerformanceRequest, authCtx *AuthContext) (*PerformanceResponse, error)
	GetByID(id uuid.UUID) (*PerformanceResponse, error)
	List(status *models.PerformanceStatus, page, pageSize int) (*PerformanceListResponse, error)
	Update(id uuid.UUID, req *UpdatePerformanceRequest, authCtx *AuthContext) (*PerformanceResponse, error)
	Delete(id uuid.UUID, authCtx *AuthContext) error
	MarkInPreparation(id uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error)
	MarkCompleted(id uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error)
	PromoteRehearsal(performanceID, rehearsalID uuid.UUID, authCtx *AuthContext) (*PerformanceResponse, error)
}

// RehearsalServiceInterface defines the interface for rehearsal service
type RehearsalServiceInterface interface {
	Create(req *CreateRehearsalRequest, authCtx *AuthContext) (*RehearsalResponse, error)
	GetByID(id uuid.UUID) (*RehearsalResponse, error)
	ListByPerformance(performanceID uuid.UUID, page, pageSize int) (*RehearsalListResponse, error)
	Update(id uuid.UUID, req *UpdateRehearsalRequest, authCtx *AuthContext) (*RehearsalResponse, error)
	Delete(id uuid.UUID, authCtx *AuthContext) error
	AddSongs(id uuid.UUID, songs []RehearsalSongInput, authCtx *AuthContext) (*RehearsalResponse, error)
	UpdateSong(rehearsalID, songID uuid.UUID, req *UpdateRehearsalSongRequest, authCtx *AuthContext) (*RehearsalResponse, error)
	RemoveSong(rehearsalID, songID uuid.UUID, authCtx *AuthContext) error
	CheckPromotionReadiness(id uuid.UUID) (*PromotionReadinessResponse, error)
}
