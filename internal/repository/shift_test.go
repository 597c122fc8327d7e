//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"choir-portal-backend/internal/database/models"
	"choir-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftRepositoryTestSuite tests the ShiftRepository
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	memberRepo    *ChoirMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewChoirMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) createLeader() *models.ChoirMember {
	leader := suite.factories.Member.Lead()
	suite.Require().NoError(suite.memberRepo.Create(leader))
	return leader
}

func (suite *ShiftRepositoryTestSuite) createShift(leaderID uuid.UUID, start, end time.Time, status models.ShiftStatus) *models.LeadershipShift {
	shift := suite.factories.Shift.Create(leaderID, start, end, status)
	suite.Require().NoError(suite.repo.Create(shift))
	return shift
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *ShiftRepositoryTestSuite) TestCreateAndGetByID() {
	leader := suite.createLeader()
	shift := suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusUpcoming)

	got, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(shift.Name, got.Name)
	suite.Equal(models.ShiftStatusUpcoming, got.Status)
}

func (suite *ShiftRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ShiftRepositoryTestSuite) TestUpdateStatusIfOnlyMatchesExpectedFrom() {
	leader := suite.createLeader()
	shift := suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusUpcoming)

	changed, err := suite.repo.UpdateStatusIf(shift.ID, models.ShiftStatusUpcoming, models.ShiftStatusActive)
	suite.NoError(err)
	suite.True(changed)

	// A second identical pass finds the row already transitioned.
	changed, err = suite.repo.UpdateStatusIf(shift.ID, models.ShiftStatusUpcoming, models.ShiftStatusActive)
	suite.NoError(err)
	suite.False(changed)

	got, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusActive, got.Status)
}

func (suite *ShiftRepositoryTestSuite) TestDemoteActiveExcludesGivenShift() {
	leaderA := suite.createLeader()
	leaderB := suite.createLeader()
	shiftA := suite.createShift(leaderA.ID, day(2026, 1, 1), day(2026, 1, 31), models.ShiftStatusActive)
	shiftB := suite.createShift(leaderB.ID, day(2026, 2, 1), day(2026, 2, 28), models.ShiftStatusActive)

	demoted, err := suite.repo.DemoteActive(&shiftB.ID)
	suite.NoError(err)
	suite.Equal(int64(1), demoted)

	gotA, err := suite.repo.GetByID(shiftA.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusCompleted, gotA.Status)

	gotB, err := suite.repo.GetByID(shiftB.ID)
	suite.NoError(err)
	suite.Equal(models.ShiftStatusActive, gotB.Status)

	count, err := suite.repo.CountActive()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *ShiftRepositoryTestSuite) TestGetActivePreloadsLeader() {
	leader := suite.createLeader()
	suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusActive)

	active, err := suite.repo.GetActive()
	suite.NoError(err)
	suite.Equal(leader.ID, active.LeaderID)
	suite.Equal(leader.FullName, active.Leader.FullName)
}

func (suite *ShiftRepositoryTestSuite) TestGetActiveNoneReturnsNotFound() {
	_, err := suite.repo.GetActive()
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ShiftRepositoryTestSuite) TestGetNextUpcomingPicksEarliestFutureShift() {
	leader := suite.createLeader()
	now := day(2026, 3, 15)
	suite.createShift(leader.ID, day(2026, 5, 1), day(2026, 5, 31), models.ShiftStatusUpcoming)
	next := suite.createShift(leader.ID, day(2026, 4, 1), day(2026, 4, 30), models.ShiftStatusUpcoming)
	// Already over, not a candidate.
	suite.createShift(leader.ID, day(2026, 2, 1), day(2026, 2, 28), models.ShiftStatusUpcoming)

	got, err := suite.repo.GetNextUpcoming(now)
	suite.NoError(err)
	suite.Equal(next.ID, got.ID)
}

func (suite *ShiftRepositoryTestSuite) TestHasLeaderOverlap() {
	leader := suite.createLeader()
	other := suite.createLeader()
	shift := suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusUpcoming)

	// Overlapping interval for the same leader.
	overlap, err := suite.repo.HasLeaderOverlap(leader.ID, day(2026, 3, 20), day(2026, 4, 10), nil)
	suite.NoError(err)
	suite.True(overlap)

	// Same interval, different leader.
	overlap, err = suite.repo.HasLeaderOverlap(other.ID, day(2026, 3, 20), day(2026, 4, 10), nil)
	suite.NoError(err)
	suite.False(overlap)

	// Adjacent interval, no overlap.
	overlap, err = suite.repo.HasLeaderOverlap(leader.ID, day(2026, 4, 1), day(2026, 4, 30), nil)
	suite.NoError(err)
	suite.False(overlap)

	// Excluding the conflicting shift itself clears the overlap.
	overlap, err = suite.repo.HasLeaderOverlap(leader.ID, day(2026, 3, 20), day(2026, 4, 10), &shift.ID)
	suite.NoError(err)
	suite.False(overlap)
}

func (suite *ShiftRepositoryTestSuite) TestHasLeaderOverlapIgnoresCompletedShifts() {
	leader := suite.createLeader()
	suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusCompleted)

	overlap, err := suite.repo.HasLeaderOverlap(leader.ID, day(2026, 3, 10), day(2026, 3, 20), nil)
	suite.NoError(err)
	suite.False(overlap)
}

func (suite *ShiftRepositoryTestSuite) TestIncrementEventCounters() {
	leader := suite.createLeader()
	shift := suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusActive)

	suite.NoError(suite.repo.IncrementEventsScheduled(shift.ID))
	suite.NoError(suite.repo.IncrementEventsScheduled(shift.ID))
	suite.NoError(suite.repo.IncrementEventsCompleted(shift.ID))

	got, err := suite.repo.GetByID(shift.ID)
	suite.NoError(err)
	suite.Equal(2, got.EventsScheduled)
	suite.Equal(1, got.EventsCompleted)
}

func (suite *ShiftRepositoryTestSuite) TestCountByStatus() {
	leader := suite.createLeader()
	suite.createShift(leader.ID, day(2026, 1, 1), day(2026, 1, 31), models.ShiftStatusCompleted)
	suite.createShift(leader.ID, day(2026, 2, 1), day(2026, 2, 28), models.ShiftStatusCompleted)
	suite.createShift(leader.ID, day(2026, 3, 1), day(2026, 3, 31), models.ShiftStatusActive)
	suite.createShift(leader.ID, day(2026, 4, 1), day(2026, 4, 30), models.ShiftStatusUpcoming)

	counts, err := suite.repo.CountByStatus()
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.ShiftStatusCompleted])
	suite.Equal(int64(1), counts[models.ShiftStatusActive])
	suite.Equal(int64(1), counts[models.ShiftStatusUpcoming])
	suite.Equal(int64(0), counts[models.ShiftStatusCancelled])
}

func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
