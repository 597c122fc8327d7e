package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftStatusIsValid(t *testing.T) {
	for _, status := range []ShiftStatus{ShiftStatusUpcoming, ShiftStatusActive, ShiftStatusCompleted, ShiftStatusCancelled} {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}
	assert.False(t, ShiftStatus("active").IsValid(), "shift statuses are uppercase")
	assert.False(t, ShiftStatus("").IsValid())
	assert.False(t, ShiftStatus("PAUSED").IsValid())
}

func TestPerformanceStatusIsValid(t *testing.T) {
	for _, status := range []PerformanceStatus{PerformanceStatusUpcoming, PerformanceStatusInPreparation, PerformanceStatusReady, PerformanceStatusCompleted} {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}
	assert.False(t, PerformanceStatus("UPCOMING").IsValid(), "performance statuses are lowercase")
	assert.False(t, PerformanceStatus("cancelled").IsValid(), "performances have no cancelled state")
}

func TestRehearsalEnums(t *testing.T) {
	assert.True(t, RehearsalStatusPlanning.IsValid())
	assert.True(t, RehearsalStatusInProgress.IsValid())
	assert.False(t, RehearsalStatus("in progress").IsValid())

	assert.True(t, RehearsalTypeFull.IsValid())
	assert.True(t, RehearsalTypeDress.IsValid())
	assert.False(t, RehearsalType("warmup").IsValid())
}

func TestVoicePartTypeIsValid(t *testing.T) {
	for _, part := range []VoicePartType{VoicePartSoprano, VoicePartMezzoSoprano, VoicePartAlto, VoicePartContralto, VoicePartTenor, VoicePartBaritone, VoicePartBass} {
		assert.True(t, part.IsValid(), "expected %q to be valid", part)
	}
	assert.False(t, VoicePartType("countertenor").IsValid())
}

func TestMapInstrument(t *testing.T) {
	tests := []struct {
		raw  string
		want Instrument
	}{
		{"piano", InstrumentPiano},
		{"Piano", InstrumentPiano},
		{"  DRUMS  ", InstrumentDrums},
		{"keys", InstrumentKeyboard},
		{"synth", InstrumentKeyboard},
		{"sax", InstrumentSaxophone},
		{"guitar", InstrumentAcousticGuitar},
		{"e-guitar", InstrumentElectricGuitar},
		{"cajon", InstrumentPercussion},
		{"kazoo", InstrumentOther},
		{"", InstrumentOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapInstrument(tt.raw), "MapInstrument(%q)", tt.raw)
	}
}

func TestShiftCovers(t *testing.T) {
	shift := &LeadershipShift{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, shift.Covers(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), "start boundary is inclusive")
	assert.True(t, shift.Covers(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)), "end boundary is inclusive")
	assert.True(t, shift.Covers(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, shift.Covers(time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)))
	assert.False(t, shift.Covers(time.Date(2026, 4, 1, 0, 0, 1, 0, time.UTC)))
}
