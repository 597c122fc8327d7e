package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "choir-portal-backend/internal/errors"
	"choir-portal-backend/internal/mocks"
	"choir-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite defines the test suite for shift endpoints
type ShiftHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockShiftServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.router = gin.New()
	suite.setupRoutesWithMock()
}

// TearDownTest cleans up after each test
func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// respondWithError mirrors the handler error mapping so the mock-backed
// routes produce the same status codes as the real handlers.
func respondWithError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// setupRoutesWithMock sets up routes that use the mock service directly
func (suite *ShiftHandlerTestSuite) setupRoutesWithMock() {
	suite.router.POST("/shifts", func(c *gin.Context) {
		var req service.CreateShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		shift, err := suite.mockService.Create(&req, uuid.Nil)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, shift)
	})

	suite.router.GET("/shifts/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
			return
		}
		shift, err := suite.mockService.GetByID(id)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, shift)
	})

	suite.router.POST("/shifts/refresh-statuses", func(c *gin.Context) {
		result, err := suite.mockService.UpdateShiftStatuses()
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	suite.router.GET("/shifts/current", func(c *gin.Context) {
		shift, err := suite.mockService.GetCurrentActiveShift()
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, shift)
	})

	suite.router.DELETE("/shifts/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
			return
		}
		if err := suite.mockService.Delete(id); err != nil {
			respondWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func (suite *ShiftHandlerTestSuite) makeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, payload)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *ShiftHandlerTestSuite) TestCreateShiftSuccess() {
	response := &service.ShiftResponse{
		ID:         uuid.New(),
		Name:       "March Shift",
		Status:     "UPCOMING",
		LeaderName: "Riley Shore",
	}
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(response, nil)

	recorder := suite.makeRequest(http.MethodPost, "/shifts", map[string]interface{}{
		"name":       "March Shift",
		"start_date": "2026-03-01T00:00:00Z",
		"end_date":   "2026-03-31T00:00:00Z",
		"leader_id":  uuid.New().String(),
	})

	suite.Equal(http.StatusCreated, recorder.Code)

	var got service.ShiftResponse
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Equal(response.ID, got.ID)
	suite.Equal("March Shift", got.Name)
}

func (suite *ShiftHandlerTestSuite) TestCreateShiftLeaderOverlapConflict() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrShiftLeaderOverlap)

	recorder := suite.makeRequest(http.MethodPost, "/shifts", map[string]interface{}{
		"name":       "March Shift",
		"start_date": "2026-03-01T00:00:00Z",
		"end_date":   "2026-03-31T00:00:00Z",
		"leader_id":  uuid.New().String(),
	})

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShiftNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrShiftNotFound)

	recorder := suite.makeRequest(http.MethodGet, "/shifts/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShiftInvalidID() {
	recorder := suite.makeRequest(http.MethodGet, "/shifts/not-a-uuid", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ShiftHandlerTestSuite) TestRefreshStatusesReportsTransitions() {
	shiftID := uuid.New()
	result := &service.ShiftStatusRefreshResult{
		Updated: 1,
		Transitions: []service.ShiftTransition{
			{ShiftID: shiftID, Name: "March Shift", From: "UPCOMING", To: "ACTIVE"},
		},
	}
	suite.mockService.EXPECT().UpdateShiftStatuses().Return(result, nil)

	recorder := suite.makeRequest(http.MethodPost, "/shifts/refresh-statuses", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var got service.ShiftStatusRefreshResult
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &got))
	suite.Equal(1, got.Updated)
	suite.Len(got.Transitions, 1)
	suite.Equal(shiftID, got.Transitions[0].ShiftID)
}

func (suite *ShiftHandlerTestSuite) TestGetCurrentShiftNoneActive() {
	suite.mockService.EXPECT().GetCurrentActiveShift().Return(nil, apperrors.ErrActiveShiftNotFound)

	recorder := suite.makeRequest(http.MethodGet, "/shifts/current", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ShiftHandlerTestSuite) TestDeleteActiveShiftConflict() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrShiftActiveDelete)

	recorder := suite.makeRequest(http.MethodDelete, "/shifts/"+id.String(), nil)

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *ShiftHandlerTestSuite) TestDeleteShiftSuccess() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.makeRequest(http.MethodDelete, "/shifts/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}

func TestRespondWithErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrPerformanceNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrShiftLeaderOverlap, http.StatusConflict},
		{"authorization", apperrors.ErrNotOnActiveShift, http.StatusForbidden},
		{"validation", apperrors.ErrNoActiveShift, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			respondWithError(c, tt.err)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
