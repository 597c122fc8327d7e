package models

import (
	"time"

	"github.com/google/uuid"
)

// Performance represents a scheduled choir event. It is the aggregate root
// of the production graph: PerformanceSong rows and their musician and
// voice-part children are owned exclusively by it and cascade-deleted.
type Performance struct {
	BaseModel
	Title            string            `json:"title" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	Date             time.Time         `json:"date" gorm:"not null;index" validate:"required"`
	Location         string            `json:"location" gorm:"size:200"`
	ExpectedAudience int               `json:"expected_audience"`
	Type             PerformanceType   `json:"type" gorm:"type:varchar(30);not null" validate:"required"`
	Status           PerformanceStatus `json:"status" gorm:"type:varchar(20);not null;default:'upcoming';index"`
	ShiftLeadID      uuid.UUID         `json:"shift_lead_id" gorm:"type:uuid;not null;index"`
	Notes            string            `json:"notes" gorm:"type:text"`
	CreatedByID      uuid.UUID         `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	ShiftLead ChoirMember       `json:"shift_lead,omitempty" gorm:"foreignKey:ShiftLeadID"`
	Songs     []PerformanceSong `json:"songs,omitempty" gorm:"foreignKey:PerformanceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Performance
func (Performance) TableName() string {
	return "performances"
}

// PerformanceSong represents one song in a performance's production graph,
// produced by promoting a rehearsal plan.
type PerformanceSong struct {
	BaseModel
	PerformanceID    uuid.UUID  `json:"performance_id" gorm:"type:uuid;not null;index"`
	SongID           uuid.UUID  `json:"song_id" gorm:"type:uuid;not null"`
	LeadSingerID     *uuid.UUID `json:"lead_singer_id" gorm:"type:uuid"`
	SortOrder        int        `json:"sort_order" gorm:"not null;default:0"`
	AllocatedMinutes int        `json:"allocated_minutes"`
	FocusPoints      string     `json:"focus_points" gorm:"type:text"`
	Notes            string     `json:"notes" gorm:"type:text"`
	MusicalKey       string     `json:"musical_key" gorm:"size:10"`

	// Relationships
	Song       Song                      `json:"song,omitempty" gorm:"foreignKey:SongID"`
	LeadSinger *ChoirMember              `json:"lead_singer,omitempty" gorm:"foreignKey:LeadSingerID"`
	Musicians  []PerformanceSongMusician `json:"musicians,omitempty" gorm:"foreignKey:PerformanceSongID;constraint:OnDelete:CASCADE"`
	VoiceParts []PerformanceVoicePart    `json:"voice_parts,omitempty" gorm:"foreignKey:PerformanceSongID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PerformanceSong
func (PerformanceSong) TableName() string {
	return "performance_songs"
}

// PerformanceSongMusician represents an instrumentalist assigned to a
// performance song. Either MemberID or the free-text MusicianName is set.
type PerformanceSongMusician struct {
	BaseModel
	PerformanceSongID uuid.UUID  `json:"performance_song_id" gorm:"type:uuid;not null;index"`
	MemberID          *uuid.UUID `json:"member_id" gorm:"type:uuid"`
	MusicianName      string     `json:"musician_name" gorm:"size:100"`
	Instrument        Instrument `json:"instrument" gorm:"type:varchar(30);not null;default:'other'"`
	Role              string     `json:"role" gorm:"size:100"`
	IsSoloist         bool       `json:"is_soloist" gorm:"default:false"`
	IsAccompanist     bool       `json:"is_accompanist" gorm:"default:false"`
	SoloStartSeconds  *int       `json:"solo_start_seconds"`
	SoloEndSeconds    *int       `json:"solo_end_seconds"`
	Notes             string     `json:"notes" gorm:"type:text"`

	// Relationships
	Member *ChoirMember `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for PerformanceSongMusician
func (PerformanceSongMusician) TableName() string {
	return "performance_song_musicians"
}

// PerformanceVoicePart represents a vocal section assignment for one
// performance song, with its member set in a join table.
type PerformanceVoicePart struct {
	BaseModel
	PerformanceSongID uuid.UUID     `json:"performance_song_id" gorm:"type:uuid;not null;index"`
	VoicePartType     VoicePartType `json:"voice_part_type" gorm:"type:varchar(20);not null"`
	NeedsWork         bool          `json:"needs_work" gorm:"default:false"`
	FocusPoints       string        `json:"focus_points" gorm:"type:text"`
	Notes             string        `json:"notes" gorm:"type:text"`

	// Relationships
	Members []ChoirMember `json:"members,omitempty" gorm:"many2many:performance_voice_part_members;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PerformanceVoicePart
func (PerformanceVoicePart) TableName() string {
	return "performance_voice_parts"
}
