//go:build integration
// +build integration

package service

import (
	"testing"
	"time"

	"choir-portal-backend/internal/clock"
	"choir-portal-backend/internal/database/models"
	apperrors "choir-portal-backend/internal/errors"
	"choir-portal-backend/internal/repository"
	"choir-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RehearsalServiceTestSuite exercises rehearsal planning against a real
// database: graph creation, ownership gating, plan-song editing and the
// promotion-readiness report.
type RehearsalServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	memberRepo    *repository.ChoirMemberRepository
	songRepo      *repository.SongRepository
	shiftRepo     *repository.ShiftRepository
	perfRepo      *repository.PerformanceRepository
	rehearsalRepo *repository.RehearsalRepository

	shiftService       *ShiftService
	performanceService *PerformanceService
	rehearsalService   *RehearsalService
}

// SetupSuite runs before all tests in the suite
func (suite *RehearsalServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.memberRepo = repository.NewChoirMemberRepository(db)
	suite.songRepo = repository.NewSongRepository(db)
	suite.shiftRepo = repository.NewShiftRepository(db)
	suite.perfRepo = repository.NewPerformanceRepository(db)
	suite.rehearsalRepo = repository.NewRehearsalRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *RehearsalServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RehearsalServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	v := validator.New()
	clk := clock.Fixed(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	suite.shiftService = NewShiftService(suite.shiftRepo, suite.memberRepo, v, clk, db)
	suite.performanceService = NewPerformanceService(suite.perfRepo, suite.rehearsalRepo, suite.shiftRepo, suite.memberRepo, suite.shiftService, v, db)
	suite.rehearsalService = NewRehearsalService(suite.rehearsalRepo, suite.perfRepo, suite.memberRepo, suite.songRepo, suite.shiftRepo, suite.shiftService, v, db)
}

// TearDownTest runs after each test
func (suite *RehearsalServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// planningStage is the shared fixture: a live shift led by leader, an admin
// and a performance in preparation.
type planningStage struct {
	admin       *models.ChoirMember
	leader      *models.ChoirMember
	singer      *models.ChoirMember
	song        *models.Song
	adminCtx    *AuthContext
	leadCtx     *AuthContext
	performance *PerformanceResponse
}

func (suite *RehearsalServiceTestSuite) setupStage() *planningStage {
	stage := &planningStage{}

	stage.admin = suite.factories.Member.Admin()
	suite.Require().NoError(suite.memberRepo.Create(stage.admin))
	stage.leader = suite.factories.Member.Lead()
	suite.Require().NoError(suite.memberRepo.Create(stage.leader))
	stage.singer = suite.factories.Member.Create()
	suite.Require().NoError(suite.memberRepo.Create(stage.singer))

	stage.song = suite.factories.Song.Create()
	suite.Require().NoError(suite.songRepo.Create(stage.song))

	stage.adminCtx = &AuthContext{UserID: stage.admin.ID, Kind: CallerKindAdmin, Category: stage.admin.Category}
	stage.leadCtx = &AuthContext{UserID: stage.leader.ID, Kind: CallerKindUser, Category: models.MemberCategoryLead}

	activeStatus := models.ShiftStatusActive
	_, err := suite.shiftService.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		LeaderID:  stage.leader.ID,
		Status:    &activeStatus,
	}, stage.admin.ID)
	suite.Require().NoError(err)

	performance, err := suite.performanceService.Create(&CreatePerformanceRequest{
		Title: "Spring Concert",
		Date:  time.Date(2026, 3, 28, 19, 0, 0, 0, time.UTC),
		Type:  models.PerformanceTypeConcert,
	}, stage.leadCtx)
	suite.Require().NoError(err)

	performance, err = suite.performanceService.MarkInPreparation(performance.ID, stage.leadCtx)
	suite.Require().NoError(err)
	stage.performance = performance

	return stage
}

func (suite *RehearsalServiceTestSuite) createRehearsal(stage *planningStage, authCtx *AuthContext) *RehearsalResponse {
	rehearsal, err := suite.rehearsalService.Create(&CreateRehearsalRequest{
		Title:         "Tuesday Rehearsal",
		Date:          time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC),
		Type:          models.RehearsalTypeFull,
		PerformanceID: stage.performance.ID,
		Songs: []RehearsalSongInput{
			{
				SongID:        stage.song.ID,
				SortOrder:     1,
				LeadSingerIDs: []uuid.UUID{stage.singer.ID},
				VoiceParts: []RehearsalVoicePartInput{
					{VoicePartType: models.VoicePartSoprano, MemberIDs: []uuid.UUID{stage.singer.ID}},
				},
			},
		},
	}, authCtx)
	suite.Require().NoError(err)
	return rehearsal
}

func (suite *RehearsalServiceTestSuite) TestCreateBuildsPlanGraph() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	suite.Equal(models.RehearsalStatusPlanning, rehearsal.Status)
	suite.Equal(stage.performance.ID, rehearsal.PerformanceID)
	// Defaults to the performance's shift lead when none is given.
	suite.Equal(stage.leader.ID, rehearsal.RehearsalLeadID)
	suite.Require().Len(rehearsal.Songs, 1)
	suite.Equal(stage.song.ID, rehearsal.Songs[0].SongID)
	suite.ElementsMatch(rehearsal.Songs[0].LeadSingerIDs, []uuid.UUID{stage.singer.ID})
	suite.Require().Len(rehearsal.Songs[0].VoiceParts, 1)
	suite.ElementsMatch(rehearsal.Songs[0].VoiceParts[0].MemberIDs, []uuid.UUID{stage.singer.ID})
}

func (suite *RehearsalServiceTestSuite) TestCreateRequiresActiveShift() {
	stage := suite.setupStage()

	_, err := suite.shiftRepo.DemoteActive(nil)
	suite.Require().NoError(err)

	_, err = suite.rehearsalService.Create(&CreateRehearsalRequest{
		Title:         "Orphan Rehearsal",
		Date:          time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC),
		Type:          models.RehearsalTypeFull,
		PerformanceID: stage.performance.ID,
	}, stage.adminCtx)
	suite.ErrorIs(err, apperrors.ErrNoActiveShift)
}

func (suite *RehearsalServiceTestSuite) TestCreateRejectsUnknownPerformance() {
	stage := suite.setupStage()

	_, err := suite.rehearsalService.Create(&CreateRehearsalRequest{
		Title:         "Dangling Rehearsal",
		Date:          time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC),
		Type:          models.RehearsalTypeFull,
		PerformanceID: uuid.New(),
	}, stage.adminCtx)
	suite.ErrorIs(err, apperrors.ErrPerformanceNotFound)
}

func (suite *RehearsalServiceTestSuite) TestCreateRejectsUnknownMembers() {
	stage := suite.setupStage()

	_, err := suite.rehearsalService.Create(&CreateRehearsalRequest{
		Title:         "Bad Attendees",
		Date:          time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC),
		Type:          models.RehearsalTypeFull,
		PerformanceID: stage.performance.ID,
		AttendeeIDs:   []uuid.UUID{uuid.New()},
	}, stage.adminCtx)
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

func (suite *RehearsalServiceTestSuite) TestUpdateOwnershipGate() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	// An admin who is not the creator may still edit.
	title := "Renamed by Admin"
	updated, err := suite.rehearsalService.Update(rehearsal.ID, &UpdateRehearsalRequest{Title: &title}, stage.adminCtx)
	suite.Require().NoError(err)
	suite.Equal(title, updated.Title)

	// Another lead on the active shift would pass the shift gate, but the
	// creator-or-admin rule still applies. Hand the shift to them first.
	otherLead := suite.factories.Member.Lead()
	suite.Require().NoError(suite.memberRepo.Create(otherLead))
	_, err = suite.shiftRepo.DemoteActive(nil)
	suite.Require().NoError(err)
	activeStatus := models.ShiftStatusActive
	_, err = suite.shiftService.Create(&CreateShiftRequest{
		Name:      "Takeover Shift",
		StartDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		LeaderID:  otherLead.ID,
		Status:    &activeStatus,
	}, stage.admin.ID)
	suite.Require().NoError(err)

	otherCtx := &AuthContext{UserID: otherLead.ID, Kind: CallerKindUser, Category: models.MemberCategoryLead}
	_, err = suite.rehearsalService.Update(rehearsal.ID, &UpdateRehearsalRequest{Title: &title}, otherCtx)
	suite.ErrorIs(err, apperrors.ErrNotResourceOwner)
}

func (suite *RehearsalServiceTestSuite) TestUpdateReplacesAttendees() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	attendees := []uuid.UUID{stage.singer.ID}
	updated, err := suite.rehearsalService.Update(rehearsal.ID, &UpdateRehearsalRequest{AttendeeIDs: &attendees}, stage.leadCtx)
	suite.Require().NoError(err)
	suite.ElementsMatch(updated.AttendeeIDs, attendees)

	empty := []uuid.UUID{}
	updated, err = suite.rehearsalService.Update(rehearsal.ID, &UpdateRehearsalRequest{AttendeeIDs: &empty}, stage.leadCtx)
	suite.Require().NoError(err)
	suite.Empty(updated.AttendeeIDs)
}

func (suite *RehearsalServiceTestSuite) TestAddSongsAppendsToPlan() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	extra := suite.factories.Song.WithTitle("Encore Piece")
	suite.Require().NoError(suite.songRepo.Create(extra))

	updated, err := suite.rehearsalService.AddSongs(rehearsal.ID, []RehearsalSongInput{
		{SongID: extra.ID, SortOrder: 2, MusicalKey: "F"},
	}, stage.leadCtx)
	suite.Require().NoError(err)
	suite.Require().Len(updated.Songs, 2)
	suite.Equal(extra.ID, updated.Songs[1].SongID)
}

func (suite *RehearsalServiceTestSuite) TestUpdateSongRejectsSongSwap() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)
	planSongID := rehearsal.Songs[0].ID

	other := suite.factories.Song.WithTitle("Another Song")
	suite.Require().NoError(suite.songRepo.Create(other))

	_, err := suite.rehearsalService.UpdateSong(rehearsal.ID, planSongID, &UpdateRehearsalSongRequest{
		SongID: &other.ID,
	}, stage.leadCtx)
	suite.ErrorIs(err, apperrors.ErrSongReferenceImmutable)
}

func (suite *RehearsalServiceTestSuite) TestUpdateSongReplacesAssignments() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)
	planSongID := rehearsal.Songs[0].ID

	newKey := "Bb"
	voiceParts := []RehearsalVoicePartInput{
		{VoicePartType: models.VoicePartTenor, MemberIDs: []uuid.UUID{stage.singer.ID}},
		{VoicePartType: models.VoicePartBass},
	}
	updated, err := suite.rehearsalService.UpdateSong(rehearsal.ID, planSongID, &UpdateRehearsalSongRequest{
		MusicalKey: &newKey,
		VoiceParts: &voiceParts,
	}, stage.leadCtx)
	suite.Require().NoError(err)

	suite.Require().Len(updated.Songs, 1)
	song := updated.Songs[0]
	suite.Equal("Bb", song.MusicalKey)
	suite.Require().Len(song.VoiceParts, 2)
	types := []models.VoicePartType{song.VoiceParts[0].VoicePartType, song.VoiceParts[1].VoicePartType}
	suite.ElementsMatch(types, []models.VoicePartType{models.VoicePartTenor, models.VoicePartBass})
	// The lead singer set was not part of the request and survives.
	suite.ElementsMatch(song.LeadSingerIDs, []uuid.UUID{stage.singer.ID})
}

func (suite *RehearsalServiceTestSuite) TestRemoveSong() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)
	planSongID := rehearsal.Songs[0].ID

	suite.Require().NoError(suite.rehearsalService.RemoveSong(rehearsal.ID, planSongID, stage.leadCtx))

	count, err := suite.rehearsalRepo.CountSongs(rehearsal.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *RehearsalServiceTestSuite) TestDeleteRemovesPlanGraph() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	suite.Require().NoError(suite.rehearsalService.Delete(rehearsal.ID, stage.leadCtx))

	_, err := suite.rehearsalService.GetByID(rehearsal.ID)
	suite.ErrorIs(err, apperrors.ErrRehearsalNotFound)

	var songCount int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.RehearsalSong{}).Count(&songCount).Error)
	suite.Equal(int64(0), songCount)
}

func (suite *RehearsalServiceTestSuite) TestCheckPromotionReadiness() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	// Plan has songs, performance is in preparation: promotable, but the
	// rehearsal itself never ran, which is worth a warning.
	readiness, err := suite.rehearsalService.CheckPromotionReadiness(rehearsal.ID)
	suite.Require().NoError(err)
	suite.True(readiness.CanPromote)
	suite.Empty(readiness.Reasons)
	suite.NotEmpty(readiness.Warnings)

	// A completed rehearsal with a full plan is clean.
	completedStatus := models.RehearsalStatusCompleted
	_, err = suite.rehearsalService.Update(rehearsal.ID, &UpdateRehearsalRequest{Status: &completedStatus}, stage.leadCtx)
	suite.Require().NoError(err)

	readiness, err = suite.rehearsalService.CheckPromotionReadiness(rehearsal.ID)
	suite.Require().NoError(err)
	suite.True(readiness.CanPromote)
	suite.Empty(readiness.Warnings)
}

func (suite *RehearsalServiceTestSuite) TestCheckPromotionReadinessBlocksEmptyPlan() {
	stage := suite.setupStage()

	rehearsal, err := suite.rehearsalService.Create(&CreateRehearsalRequest{
		Title:         "Empty Plan",
		Date:          time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC),
		Type:          models.RehearsalTypeFull,
		PerformanceID: stage.performance.ID,
	}, stage.leadCtx)
	suite.Require().NoError(err)

	readiness, err := suite.rehearsalService.CheckPromotionReadiness(rehearsal.ID)
	suite.Require().NoError(err)
	suite.False(readiness.CanPromote)
	suite.NotEmpty(readiness.Reasons)
}

func (suite *RehearsalServiceTestSuite) TestCheckPromotionReadinessBlocksWrongPerformanceStatus() {
	stage := suite.setupStage()
	rehearsal := suite.createRehearsal(stage, stage.leadCtx)

	suite.Require().NoError(suite.perfRepo.UpdateStatus(stage.performance.ID, models.PerformanceStatusUpcoming))

	readiness, err := suite.rehearsalService.CheckPromotionReadiness(rehearsal.ID)
	suite.Require().NoError(err)
	suite.False(readiness.CanPromote)
	suite.NotEmpty(readiness.Reasons)
}

func (suite *RehearsalServiceTestSuite) TestListByPerformance() {
	stage := suite.setupStage()
	suite.createRehearsal(stage, stage.leadCtx)
	suite.createRehearsal(stage, stage.leadCtx)

	list, err := suite.rehearsalService.ListByPerformance(stage.performance.ID, 1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(2), list.Total)
	suite.Len(list.Rehearsals, 2)
}

func TestRehearsalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RehearsalServiceTestSuite))
}
