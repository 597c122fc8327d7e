package repository

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChoirMemberRepository handles database operations for choir members
type ChoirMemberRepository struct {
	db *gorm.DB
}

// NewChoirMemberRepository creates a new choir member repository
func NewChoirMemberRepository(db *gorm.DB) *ChoirMemberRepository {
	return &ChoirMemberRepository{db: db}
}

// Create creates a new choir member
func (r *ChoirMemberRepository) Create(member *models.ChoirMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a choir member by ID
func (r *ChoirMemberRepository) GetByID(id uuid.UUID) (*models.ChoirMember, error) {
	var member models.ChoirMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIDs retrieves choir members for a batch of IDs
func (r *ChoirMemberRepository) GetByIDs(ids []uuid.UUID) ([]models.ChoirMember, error) {
	var members []models.ChoirMember
	if len(ids) == 0 {
		return members, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&members).Error
	return members, err
}

// GetByEmail retrieves a choir member by email
func (r *ChoirMemberRepository) GetByEmail(email string) (*models.ChoirMember, error) {
	var member models.ChoirMember
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves choir members with pagination
func (r *ChoirMemberRepository) List(limit, offset int) ([]models.ChoirMember, int64, error) {
	var members []models.ChoirMember
	var total int64

	if err := r.db.Model(&models.ChoirMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

// Update updates a choir member
func (r *ChoirMemberRepository) Update(member *models.ChoirMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a choir member
func (r *ChoirMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ChoirMember{}, "id = ?", id).Error
}
