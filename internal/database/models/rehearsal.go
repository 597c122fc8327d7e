package models

import (
	"time"

	"github.com/google/uuid"
)

// Rehearsal represents a planning session preparing exactly one performance.
// It is the aggregate root of the rehearsal-plan graph: RehearsalSong rows
// and their children are owned exclusively by it and cascade-deleted.
type Rehearsal struct {
	BaseModel
	Title           string          `json:"title" gorm:"size:150;not null" validate:"required,min=1,max=150"`
	Date            time.Time       `json:"date" gorm:"not null;index" validate:"required"`
	Type            RehearsalType   `json:"type" gorm:"type:varchar(30);not null" validate:"required"`
	Status          RehearsalStatus `json:"status" gorm:"type:varchar(20);not null;default:'Planning'"`
	PerformanceID   uuid.UUID       `json:"performance_id" gorm:"type:uuid;not null;index" validate:"required"`
	RehearsalLeadID uuid.UUID       `json:"rehearsal_lead_id" gorm:"type:uuid;not null"`
	IsTemplate      bool            `json:"is_template" gorm:"default:false"`
	Notes           string          `json:"notes" gorm:"type:text"`
	Objectives      string          `json:"objectives" gorm:"type:text"`
	Feedback        string          `json:"feedback" gorm:"type:text"`
	CreatedByID     uuid.UUID       `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	Performance   Performance     `json:"performance,omitempty" gorm:"foreignKey:PerformanceID;constraint:OnDelete:CASCADE"`
	RehearsalLead ChoirMember     `json:"rehearsal_lead,omitempty" gorm:"foreignKey:RehearsalLeadID"`
	Attendees     []ChoirMember   `json:"attendees,omitempty" gorm:"many2many:rehearsal_attendees;constraint:OnDelete:CASCADE"`
	Songs         []RehearsalSong `json:"songs,omitempty" gorm:"foreignKey:RehearsalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rehearsal
func (Rehearsal) TableName() string {
	return "rehearsals"
}

// RehearsalSong mirrors PerformanceSong on the planning side, with
// additional many-to-many lead-singer and chorus-member sets.
type RehearsalSong struct {
	BaseModel
	RehearsalID      uuid.UUID `json:"rehearsal_id" gorm:"type:uuid;not null;index"`
	SongID           uuid.UUID `json:"song_id" gorm:"type:uuid;not null"`
	SortOrder        int       `json:"sort_order" gorm:"not null;default:0"`
	Difficulty       int       `json:"difficulty" gorm:"default:0"`
	AllocatedMinutes int       `json:"allocated_minutes"`
	FocusPoints      string    `json:"focus_points" gorm:"type:text"`
	Notes            string    `json:"notes" gorm:"type:text"`
	MusicalKey       string    `json:"musical_key" gorm:"size:10"`

	// Relationships
	Song          Song                    `json:"song,omitempty" gorm:"foreignKey:SongID"`
	LeadSingers   []ChoirMember           `json:"lead_singers,omitempty" gorm:"many2many:rehearsal_song_lead_singers;constraint:OnDelete:CASCADE"`
	ChorusMembers []ChoirMember           `json:"chorus_members,omitempty" gorm:"many2many:rehearsal_song_chorus_members;constraint:OnDelete:CASCADE"`
	Musicians     []RehearsalSongMusician `json:"musicians,omitempty" gorm:"foreignKey:RehearsalSongID;constraint:OnDelete:CASCADE"`
	VoiceParts    []RehearsalVoicePart    `json:"voice_parts,omitempty" gorm:"foreignKey:RehearsalSongID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RehearsalSong
func (RehearsalSong) TableName() string {
	return "rehearsal_songs"
}

// RehearsalSongMusician represents an instrumentalist on a rehearsal song.
// Instrument is free text on the planning side; promotion maps it into the
// closed performance-side enum.
type RehearsalSongMusician struct {
	BaseModel
	RehearsalSongID  uuid.UUID  `json:"rehearsal_song_id" gorm:"type:uuid;not null;index"`
	MemberID         *uuid.UUID `json:"member_id" gorm:"type:uuid"`
	MusicianName     string     `json:"musician_name" gorm:"size:100"`
	Instrument       string     `json:"instrument" gorm:"size:50"`
	Role             string     `json:"role" gorm:"size:100"`
	IsSoloist        bool       `json:"is_soloist" gorm:"default:false"`
	IsAccompanist    bool       `json:"is_accompanist" gorm:"default:false"`
	SoloStartSeconds *int       `json:"solo_start_seconds"`
	SoloEndSeconds   *int       `json:"solo_end_seconds"`
	Notes            string     `json:"notes" gorm:"type:text"`

	// Relationships
	Member *ChoirMember `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for RehearsalSongMusician
func (RehearsalSongMusician) TableName() string {
	return "rehearsal_song_musicians"
}

// RehearsalVoicePart represents a vocal section assignment for one
// rehearsal song, with its member set in a join table.
type RehearsalVoicePart struct {
	BaseModel
	RehearsalSongID uuid.UUID     `json:"rehearsal_song_id" gorm:"type:uuid;not null;index"`
	VoicePartType   VoicePartType `json:"voice_part_type" gorm:"type:varchar(20);not null"`
	NeedsWork       bool          `json:"needs_work" gorm:"default:false"`
	FocusPoints     string        `json:"focus_points" gorm:"type:text"`
	Notes           string        `json:"notes" gorm:"type:text"`

	// Relationships
	Members []ChoirMember `json:"members,omitempty" gorm:"many2many:rehearsal_voice_part_members;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RehearsalVoicePart
func (RehearsalVoicePart) TableName() string {
	return "rehearsal_voice_parts"
}
