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

// MemberService handles business logic for choir members
type MemberService struct {
	repo      *repository.ChoirMemberRepository
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo *repository.ChoirMemberRepository, validator *validator.Validate) *MemberService {
	return &MemberService{repo: repo, validator: validator}
}

// CreateMemberRequest represents the request to create a choir member
type CreateMemberRequest struct {
	FullName    string                `json:"full_name" validate:"required,min=1,max=100"`
	Email       string                `json:"email" validate:"required,email"`
	PhoneNumber string                `json:"phone_number,omitempty"`
	Category    models.MemberCategory `json:"category" validate:"required"`
	IsAdmin     bool                  `json:"is_admin,omitempty"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID          uuid.UUID             `json:"id"`
	FullName    string                `json:"full_name"`
	Email       string                `json:"email"`
	PhoneNumber string                `json:"phone_number,omitempty"`
	Category    models.MemberCategory `json:"category"`
	IsAdmin     bool                  `json:"is_admin"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   string                `json:"created_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new choir member
func (s *MemberService) Create(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "invalid member category")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.NewConflictError("member with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check member email: %w", err)
	}

	member := &models.ChoirMember{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Category:    req.Category,
		IsAdmin:     req.IsAdmin,
		IsActive:    true,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return s.toResponse(member), nil
}

// GetByID retrieves a choir member by ID
func (s *MemberService) GetByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return s.toResponse(member), nil
}

// List retrieves choir members with pagination
func (s *MemberService) List(page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	members, total, err := s.repo.List(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.toResponse(&member)
	}

	return &MemberListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts a member model to response
func (s *MemberService) toResponse(member *models.ChoirMember) *MemberResponse {
	return &MemberResponse{
		ID:          member.ID,
		FullName:    member.FullName,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
		Category:    member.Category,
		IsAdmin:     member.IsAdmin,
		IsActive:    member.IsActive,
		CreatedAt:   member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
