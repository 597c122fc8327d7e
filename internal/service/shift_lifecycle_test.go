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

// ShiftLifecycleTestSuite exercises the shift state machine against a real
// database: creation guards, the date-driven refresh and the single-active
// invariant.
type ShiftLifecycleTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	shiftRepo     *repository.ShiftRepository
	memberRepo    *repository.ChoirMemberRepository
	clk           *clock.FixedClock
	service       *ShiftService
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftLifecycleTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.shiftRepo = repository.NewShiftRepository(suite.baseTestSuite.DB)
	suite.memberRepo = repository.NewChoirMemberRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftLifecycleTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftLifecycleTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.clk = clock.Fixed(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	suite.service = NewShiftService(suite.shiftRepo, suite.memberRepo, validator.New(), suite.clk, suite.baseTestSuite.DB)
}

// TearDownTest runs after each test
func (suite *ShiftLifecycleTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftLifecycleTestSuite) createLeader() *models.ChoirMember {
	leader := suite.factories.Member.Lead()
	suite.Require().NoError(suite.memberRepo.Create(leader))
	return leader
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func statusPtr(s models.ShiftStatus) *models.ShiftStatus { return &s }

func (suite *ShiftLifecycleTestSuite) TestCreateDefaultsToUpcoming() {
	leader := suite.createLeader()

	resp, err := suite.service.Create(&CreateShiftRequest{
		Name:      "April Shift",
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 30),
		LeaderID:  leader.ID,
	}, leader.ID)

	suite.Require().NoError(err)
	suite.Equal(models.ShiftStatusUpcoming, resp.Status)
	suite.Equal(leader.ID, resp.LeaderID)
}

func (suite *ShiftLifecycleTestSuite) TestCreateRejectsInvertedDateRange() {
	leader := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "Backwards",
		StartDate: date(2026, 4, 30),
		EndDate:   date(2026, 4, 1),
		LeaderID:  leader.ID,
	}, leader.ID)

	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *ShiftLifecycleTestSuite) TestCreateRejectsUnknownLeader() {
	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "Ghost Shift",
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 30),
		LeaderID:  uuid.New(),
	}, uuid.New())

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

func (suite *ShiftLifecycleTestSuite) TestCreateRejectsLeaderOverlap() {
	leader := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "April Shift",
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 30),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	_, err = suite.service.Create(&CreateShiftRequest{
		Name:      "Overlapping Shift",
		StartDate: date(2026, 4, 15),
		EndDate:   date(2026, 5, 15),
		LeaderID:  leader.ID,
	}, leader.ID)

	suite.ErrorIs(err, apperrors.ErrShiftLeaderOverlap)
}

func (suite *ShiftLifecycleTestSuite) TestCreateRejectsIntervalOverlapWithLiveShift() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leaderA.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderA.ID)
	suite.Require().NoError(err)

	// Starts before the live shift does, but the intervals intersect.
	_, err = suite.service.Create(&CreateShiftRequest{
		Name:      "Shadowing Shift",
		StartDate: date(2026, 2, 15),
		EndDate:   date(2026, 3, 10),
		LeaderID:  leaderB.ID,
	}, leaderB.ID)
	suite.ErrorIs(err, apperrors.ErrShiftIntervalOverlap)

	_, err = suite.service.Create(&CreateShiftRequest{
		Name:      "April Shift",
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 30),
		LeaderID:  leaderB.ID,
	}, leaderB.ID)
	suite.NoError(err)
}

func (suite *ShiftLifecycleTestSuite) TestUpdateRejectsIntervalOverlapWithLiveShift() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leaderA.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderA.ID)
	suite.Require().NoError(err)

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "May Shift",
		StartDate: date(2026, 5, 1),
		EndDate:   date(2026, 5, 31),
		LeaderID:  leaderB.ID,
	}, leaderB.ID)
	suite.Require().NoError(err)

	// Rescheduling into the live shift's window is refused like a create.
	start := date(2026, 3, 20)
	end := date(2026, 4, 20)
	_, err = suite.service.Update(created.ID, &UpdateShiftRequest{
		StartDate: &start,
		EndDate:   &end,
	})
	suite.ErrorIs(err, apperrors.ErrShiftIntervalOverlap)
}

func (suite *ShiftLifecycleTestSuite) TestCreateActiveDemotesCurrentActive() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()

	first, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leaderA.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderA.ID)
	suite.Require().NoError(err)

	second, err := suite.service.Create(&CreateShiftRequest{
		Name:      "Takeover Shift",
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 4, 10),
		LeaderID:  leaderB.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderB.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.service.ValidateSingleActiveShift())

	demoted, err := suite.service.GetByID(first.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ShiftStatusCompleted, demoted.Status)

	current, err := suite.service.GetCurrentActiveShift()
	suite.Require().NoError(err)
	suite.Equal(second.ID, current.ID)
}

func (suite *ShiftLifecycleTestSuite) TestRefreshActivatesCoveringShift() {
	leader := suite.createLeader()

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	result, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)
	suite.Require().Len(result.Transitions, 1)
	suite.Equal(created.ID, result.Transitions[0].ShiftID)
	suite.Equal(models.ShiftStatusUpcoming, result.Transitions[0].From)
	suite.Equal(models.ShiftStatusActive, result.Transitions[0].To)

	current, err := suite.service.GetCurrentActiveShift()
	suite.Require().NoError(err)
	suite.Equal(created.ID, current.ID)
}

func (suite *ShiftLifecycleTestSuite) TestRefreshIsIdempotent() {
	leader := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	first, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(1, first.Updated)

	// Nothing changed in between; the second pass is a no-op.
	second, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(0, second.Updated)
	suite.Empty(second.Transitions)
}

func (suite *ShiftLifecycleTestSuite) TestRefreshCompletesExpiredActiveShift() {
	leader := suite.createLeader()

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leader.ID)
	suite.Require().NoError(err)

	suite.clk.Set(date(2026, 4, 2))

	result, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)

	got, err := suite.service.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ShiftStatusCompleted, got.Status)

	_, err = suite.service.GetCurrentActiveShift()
	suite.ErrorIs(err, apperrors.ErrActiveShiftNotFound)
}

func (suite *ShiftLifecycleTestSuite) TestRefreshExpiresUpcomingShiftThatNeverWentLive() {
	leader := suite.createLeader()

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "Missed Shift",
		StartDate: date(2026, 2, 1),
		EndDate:   date(2026, 2, 28),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	// Clock is already past the shift's window.
	result, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(1, result.Updated)
	suite.Require().Len(result.Transitions, 1)
	suite.Equal(models.ShiftStatusUpcoming, result.Transitions[0].From)
	suite.Equal(models.ShiftStatusCompleted, result.Transitions[0].To)

	got, err := suite.service.GetByID(created.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ShiftStatusCompleted, got.Status)
}

func (suite *ShiftLifecycleTestSuite) TestRefreshHandsOverBetweenShifts() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "February Shift",
		StartDate: date(2026, 2, 1),
		EndDate:   date(2026, 3, 10),
		LeaderID:  leaderA.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderA.ID)
	suite.Require().NoError(err)

	incoming, err := suite.service.Create(&CreateShiftRequest{
		Name:      "Mid-March Shift",
		StartDate: date(2026, 3, 11),
		EndDate:   date(2026, 4, 10),
		LeaderID:  leaderB.ID,
	}, leaderB.ID)
	suite.Require().NoError(err)

	// Clock sits inside the incoming shift's window, past the old one.
	result, err := suite.service.UpdateShiftStatuses()
	suite.Require().NoError(err)
	suite.Equal(2, result.Updated)

	suite.NoError(suite.service.ValidateSingleActiveShift())

	current, err := suite.service.GetCurrentActiveShift()
	suite.Require().NoError(err)
	suite.Equal(incoming.ID, current.ID)
}

func (suite *ShiftLifecycleTestSuite) TestGetCurrentShiftActivatesCoveringUpcomingShift() {
	leader := suite.createLeader()

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	// No explicit refresh: the read itself must notice the window is open.
	current, err := suite.service.GetCurrentActiveShift()
	suite.Require().NoError(err)
	suite.Equal(created.ID, current.ID)
	suite.Equal(models.ShiftStatusActive, current.Status)
}

func (suite *ShiftLifecycleTestSuite) TestCheckUserOnActiveShiftSeesDateDrivenTransitions() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "February Shift",
		StartDate: date(2026, 2, 1),
		EndDate:   date(2026, 2, 28),
		LeaderID:  leaderA.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leaderA.ID)
	suite.Require().NoError(err)

	// The stored ACTIVE row is stale; its window ended before the clock.
	suite.ErrorIs(suite.service.CheckUserOnActiveShift(leaderA.ID), apperrors.ErrNoShiftCurrentlyLive)

	_, err = suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leaderB.ID,
	}, leaderB.ID)
	suite.Require().NoError(err)

	// Still UPCOMING in storage, but the window covers the clock.
	suite.NoError(suite.service.CheckUserOnActiveShift(leaderB.ID))
}

func (suite *ShiftLifecycleTestSuite) TestGetShiftStatsRefreshesStatuses() {
	leader := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	stats, err := suite.service.GetShiftStats()
	suite.Require().NoError(err)
	suite.Equal(int64(1), stats.Active)
	suite.Equal(int64(0), stats.Upcoming)
}

func (suite *ShiftLifecycleTestSuite) TestDeleteActiveShiftRefused() {
	leader := suite.createLeader()

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leader.ID)
	suite.Require().NoError(err)

	err = suite.service.Delete(created.ID)
	suite.ErrorIs(err, apperrors.ErrShiftActiveDelete)
}

func (suite *ShiftLifecycleTestSuite) TestCheckUserOnActiveShift() {
	leader := suite.createLeader()
	other := suite.createLeader()

	suite.ErrorIs(suite.service.CheckUserOnActiveShift(leader.ID), apperrors.ErrNoShiftCurrentlyLive)

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leader.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.service.CheckUserOnActiveShift(leader.ID))
	suite.ErrorIs(suite.service.CheckUserOnActiveShift(other.ID), apperrors.ErrNotOnActiveShift)
}

func (suite *ShiftLifecycleTestSuite) TestGetNextUpcomingShift() {
	leader := suite.createLeader()

	_, err := suite.service.GetNextUpcomingShift()
	suite.ErrorIs(err, apperrors.ErrUpcomingShiftNotFound)

	created, err := suite.service.Create(&CreateShiftRequest{
		Name:      "April Shift",
		StartDate: date(2026, 4, 1),
		EndDate:   date(2026, 4, 30),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	next, err := suite.service.GetNextUpcomingShift()
	suite.Require().NoError(err)
	suite.Equal(created.ID, next.ID)
}

func (suite *ShiftLifecycleTestSuite) TestGetShiftStats() {
	leader := suite.createLeader()

	_, err := suite.service.Create(&CreateShiftRequest{
		Name:      "March Shift",
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
		LeaderID:  leader.ID,
		Status:    statusPtr(models.ShiftStatusActive),
	}, leader.ID)
	suite.Require().NoError(err)

	_, err = suite.service.Create(&CreateShiftRequest{
		Name:      "May Shift",
		StartDate: date(2026, 5, 1),
		EndDate:   date(2026, 5, 31),
		LeaderID:  leader.ID,
	}, leader.ID)
	suite.Require().NoError(err)

	stats, err := suite.service.GetShiftStats()
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Total)
	suite.Equal(int64(1), stats.Active)
	suite.Equal(int64(1), stats.Upcoming)
}

func TestShiftLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftLifecycleTestSuite))
}
