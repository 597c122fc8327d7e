package testutils

import (
	"fmt"
	"time"

	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all test data factories
type FactorySet struct {
	Member      *MemberFactory
	Song        *SongFactory
	Shift       *ShiftFactory
	Performance *PerformanceFactory
	Rehearsal   *RehearsalFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:      NewMemberFactory(),
		Song:        NewSongFactory(),
		Shift:       NewShiftFactory(),
		Performance: NewPerformanceFactory(),
		Rehearsal:   NewRehearsalFactory(),
	}
}

// MemberFactory provides methods to create test ChoirMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test ChoirMember with default values
func (f *MemberFactory) Create() *models.ChoirMember {
	id := uuid.New()
	return &models.ChoirMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:    "Jordan Vale",
		Email:       fmt.Sprintf("member-%s@choir.test", id.String()[:8]),
		PhoneNumber: "+1-555-0123",
		Category:    models.MemberCategorySinger,
		IsAdmin:     false,
		IsActive:    true,
	}
}

// Lead creates a test member with the LEAD category
func (f *MemberFactory) Lead() *models.ChoirMember {
	member := f.Create()
	member.FullName = "Riley Shore"
	member.Category = models.MemberCategoryLead
	return member
}

// Admin creates a test member with admin rights
func (f *MemberFactory) Admin() *models.ChoirMember {
	member := f.Create()
	member.FullName = "Admin Adams"
	member.IsAdmin = true
	return member
}

// Musician creates a test member with the MUSICIAN category
func (f *MemberFactory) Musician() *models.ChoirMember {
	member := f.Create()
	member.FullName = "Morgan Keys"
	member.Category = models.MemberCategoryMusician
	return member
}

// SongFactory provides methods to create test Song data
type SongFactory struct{}

// NewSongFactory creates a new SongFactory
func NewSongFactory() *SongFactory {
	return &SongFactory{}
}

// Create creates a test Song with default values
func (f *SongFactory) Create() *models.Song {
	id := uuid.New()
	return &models.Song{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:      "Test Anthem " + id.String()[:8],
		Author:     "Trad.",
		DefaultKey: "C",
		TempoBPM:   96,
	}
}

// WithTitle sets a custom title for the song
func (f *SongFactory) WithTitle(title string) *models.Song {
	song := f.Create()
	song.Title = title
	return song
}

// ShiftFactory provides methods to create test LeadershipShift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test shift covering the given window
func (f *ShiftFactory) Create(leaderID uuid.UUID, start, end time.Time, status models.ShiftStatus) *models.LeadershipShift {
	return &models.LeadershipShift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Shift " + start.Format("2006-01-02"),
		StartDate:   start,
		EndDate:     end,
		LeaderID:    leaderID,
		Status:      status,
		CreatedByID: leaderID,
	}
}

// PerformanceFactory provides methods to create test Performance data
type PerformanceFactory struct{}

// NewPerformanceFactory creates a new PerformanceFactory
func NewPerformanceFactory() *PerformanceFactory {
	return &PerformanceFactory{}
}

// Create creates a test Performance with default values
func (f *PerformanceFactory) Create(shiftLeadID uuid.UUID) *models.Performance {
	return &models.Performance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:            "Spring Concert",
		Date:             time.Now().AddDate(0, 1, 0),
		Location:         "Main Hall",
		ExpectedAudience: 120,
		Type:             models.PerformanceTypeConcert,
		Status:           models.PerformanceStatusUpcoming,
		ShiftLeadID:      shiftLeadID,
		CreatedByID:      shiftLeadID,
	}
}

// WithStatus sets the performance status
func (f *PerformanceFactory) WithStatus(shiftLeadID uuid.UUID, status models.PerformanceStatus) *models.Performance {
	performance := f.Create(shiftLeadID)
	performance.Status = status
	return performance
}

// RehearsalFactory provides methods to create test Rehearsal data
type RehearsalFactory struct{}

// NewRehearsalFactory creates a new RehearsalFactory
func NewRehearsalFactory() *RehearsalFactory {
	return &RehearsalFactory{}
}

// Create creates a test Rehearsal for a performance
func (f *RehearsalFactory) Create(performanceID, leadID uuid.UUID) *models.Rehearsal {
	return &models.Rehearsal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Tuesday Rehearsal",
		Date:            time.Now().AddDate(0, 0, 7),
		Type:            models.RehearsalTypeFull,
		Status:          models.RehearsalStatusPlanning,
		PerformanceID:   performanceID,
		RehearsalLeadID: leadID,
		CreatedByID:     leadID,
	}
}
