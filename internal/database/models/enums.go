package models

import "strings"

// ShiftStatus defines the lifecycle states of a leadership shift.
// The stored value is a cached projection of the shift's [start,end]
// interval and must be refreshed before being trusted.
type ShiftStatus string

const (
	ShiftStatusUpcoming  ShiftStatus = "UPCOMING"
	ShiftStatusActive    ShiftStatus = "ACTIVE"
	ShiftStatusCompleted ShiftStatus = "COMPLETED"
	ShiftStatusCancelled ShiftStatus = "CANCELLED"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusUpcoming, ShiftStatusActive, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// PerformanceStatus defines the linear lifecycle of a performance:
// upcoming -> in_preparation -> ready -> completed, no skipping, no going back.
type PerformanceStatus string

const (
	PerformanceStatusUpcoming      PerformanceStatus = "upcoming"
	PerformanceStatusInPreparation PerformanceStatus = "in_preparation"
	PerformanceStatusReady         PerformanceStatus = "ready"
	PerformanceStatusCompleted     PerformanceStatus = "completed"
)

// IsValid checks if the PerformanceStatus is valid
func (s PerformanceStatus) IsValid() bool {
	switch s {
	case PerformanceStatusUpcoming, PerformanceStatusInPreparation, PerformanceStatusReady, PerformanceStatusCompleted:
		return true
	}
	return false
}

// PerformanceType defines the kinds of performance events
type PerformanceType string

const (
	PerformanceTypeConcert        PerformanceType = "concert"
	PerformanceTypeWorshipService PerformanceType = "worship_service"
	PerformanceTypeWedding        PerformanceType = "wedding"
	PerformanceTypeFuneral        PerformanceType = "funeral"
	PerformanceTypeCommunityEvent PerformanceType = "community_event"
	PerformanceTypeOther          PerformanceType = "other"
)

// IsValid checks if the PerformanceType is valid
func (t PerformanceType) IsValid() bool {
	switch t {
	case PerformanceTypeConcert, PerformanceTypeWorshipService, PerformanceTypeWedding,
		PerformanceTypeFuneral, PerformanceTypeCommunityEvent, PerformanceTypeOther:
		return true
	}
	return false
}

// RehearsalStatus defines the lifecycle states of a rehearsal
type RehearsalStatus string

const (
	RehearsalStatusPlanning   RehearsalStatus = "Planning"
	RehearsalStatusInProgress RehearsalStatus = "In Progress"
	RehearsalStatusCompleted  RehearsalStatus = "Completed"
	RehearsalStatusCancelled  RehearsalStatus = "Cancelled"
)

// IsValid checks if the RehearsalStatus is valid
func (s RehearsalStatus) IsValid() bool {
	switch s {
	case RehearsalStatusPlanning, RehearsalStatusInProgress, RehearsalStatusCompleted, RehearsalStatusCancelled:
		return true
	}
	return false
}

// RehearsalType defines the kinds of rehearsals
type RehearsalType string

const (
	RehearsalTypeFull      RehearsalType = "full_rehearsal"
	RehearsalTypeSectional RehearsalType = "sectional"
	RehearsalTypeDress     RehearsalType = "dress_rehearsal"
	RehearsalTypeMusicOnly RehearsalType = "music_only"
)

// IsValid checks if the RehearsalType is valid
func (t RehearsalType) IsValid() bool {
	switch t {
	case RehearsalTypeFull, RehearsalTypeSectional, RehearsalTypeDress, RehearsalTypeMusicOnly:
		return true
	}
	return false
}

// VoicePartType defines the named vocal sections
type VoicePartType string

const (
	VoicePartSoprano      VoicePartType = "soprano"
	VoicePartMezzoSoprano VoicePartType = "mezzo_soprano"
	VoicePartAlto         VoicePartType = "alto"
	VoicePartContralto    VoicePartType = "contralto"
	VoicePartTenor        VoicePartType = "tenor"
	VoicePartBaritone     VoicePartType = "baritone"
	VoicePartBass         VoicePartType = "bass"
)

// IsValid checks if the VoicePartType is valid
func (v VoicePartType) IsValid() bool {
	switch v {
	case VoicePartSoprano, VoicePartMezzoSoprano, VoicePartAlto, VoicePartContralto,
		VoicePartTenor, VoicePartBaritone, VoicePartBass:
		return true
	}
	return false
}

// Instrument defines the closed set of instruments on the performance side
type Instrument string

const (
	InstrumentPiano          Instrument = "piano"
	InstrumentOrgan          Instrument = "organ"
	InstrumentAcousticGuitar Instrument = "acoustic_guitar"
	InstrumentElectricGuitar Instrument = "electric_guitar"
	InstrumentBass           Instrument = "bass"
	InstrumentDrums          Instrument = "drums"
	InstrumentViolin         Instrument = "violin"
	InstrumentCello          Instrument = "cello"
	InstrumentFlute          Instrument = "flute"
	InstrumentTrumpet        Instrument = "trumpet"
	InstrumentSaxophone      Instrument = "saxophone"
	InstrumentKeyboard       Instrument = "keyboard"
	InstrumentPercussion     Instrument = "percussion"
	InstrumentOther          Instrument = "other"
)

// IsValid checks if the Instrument is valid
func (i Instrument) IsValid() bool {
	switch i {
	case InstrumentPiano, InstrumentOrgan, InstrumentAcousticGuitar, InstrumentElectricGuitar,
		InstrumentBass, InstrumentDrums, InstrumentViolin, InstrumentCello, InstrumentFlute,
		InstrumentTrumpet, InstrumentSaxophone, InstrumentKeyboard, InstrumentPercussion,
		InstrumentOther:
		return true
	}
	return false
}

// instrumentAliases maps common free-text spellings used on rehearsal plans
// to the closed performance-side enum.
var instrumentAliases = map[string]Instrument{
	"guitar":    InstrumentAcousticGuitar,
	"e-guitar":  InstrumentElectricGuitar,
	"bass":      InstrumentBass,
	"bass gtr":  InstrumentBass,
	"drums":     InstrumentDrums,
	"drum kit":  InstrumentDrums,
	"keys":      InstrumentKeyboard,
	"synth":     InstrumentKeyboard,
	"sax":       InstrumentSaxophone,
	"perc":      InstrumentPercussion,
	"congas":    InstrumentPercussion,
	"cajon":     InstrumentPercussion,
	"tambourin": InstrumentPercussion,
}

// MapInstrument translates a rehearsal-side free-text instrument value into
// the performance-side enum. Unknown values degrade to InstrumentOther
// instead of failing, so promotion never aborts on an unmapped instrument.
func MapInstrument(raw string) Instrument {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return InstrumentOther
	}
	if candidate := Instrument(normalized); candidate.IsValid() {
		return candidate
	}
	if mapped, ok := instrumentAliases[normalized]; ok {
		return mapped
	}
	return InstrumentOther
}

// MemberCategory defines the choir member categories used for permission gating
type MemberCategory string

const (
	MemberCategoryLead     MemberCategory = "LEAD"
	MemberCategorySinger   MemberCategory = "SINGER"
	MemberCategoryMusician MemberCategory = "MUSICIAN"
)

// IsValid checks if the MemberCategory is valid
func (c MemberCategory) IsValid() bool {
	switch c {
	case MemberCategoryLead, MemberCategorySinger, MemberCategoryMusician:
		return true
	}
	return false
}
