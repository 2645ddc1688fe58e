package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsight/shiftsight-api/internal/dto"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
	"github.com/shiftsight/shiftsight-api/pkg/response"
)

type fakeSolutionService struct {
	analyzed     *dto.AnalyzedSolution
	analyzeErr   error
	view         *dto.AnalyzedSolution
	getErr       error
	deleteErr    error
	hours        *dto.EmployeeHoursResponse
	hoursErr     error
	lastRaw      []byte
	lastID       string
	lastEmployee int
}

func (f *fakeSolutionService) Analyze(_ context.Context, raw []byte) (*dto.AnalyzedSolution, error) {
	f.lastRaw = raw
	return f.analyzed, f.analyzeErr
}

func (f *fakeSolutionService) Get(_ context.Context, id string) (*dto.AnalyzedSolution, error) {
	f.lastID = id
	return f.view, f.getErr
}

func (f *fakeSolutionService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.deleteErr
}

func (f *fakeSolutionService) EmployeeHours(_ context.Context, id string, employeeID int) (*dto.EmployeeHoursResponse, error) {
	f.lastID = id
	f.lastEmployee = employeeID
	return f.hours, f.hoursErr
}

func newTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestSolutionUpload(t *testing.T) {
	fake := &fakeSolutionService{analyzed: &dto.AnalyzedSolution{ID: "sol-1"}}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodPost, "/api/v1/solutions", []byte(`{"variables": {}}`))
	h.Upload(c)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"variables": {}}`, string(fake.lastRaw))

	envelope := decodeEnvelope(t, recorder)
	require.NotNil(t, envelope.Data)
	assert.Nil(t, envelope.Error)
}

func TestSolutionUploadEmptyBody(t *testing.T) {
	fake := &fakeSolutionService{}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodPost, "/api/v1/solutions", nil)
	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Nil(t, fake.lastRaw)
}

func TestSolutionUploadMalformedDocument(t *testing.T) {
	fake := &fakeSolutionService{analyzeErr: appErrors.ErrMalformedSolution}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodPost, "/api/v1/solutions", []byte(`{"variables": {}}`))
	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrMalformedSolution.Code, envelope.Error.Code)
}

func TestSolutionGet(t *testing.T) {
	fake := &fakeSolutionService{view: &dto.AnalyzedSolution{ID: "sol-1"}}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodGet, "/api/v1/solutions/sol-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}}
	h.Get(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "sol-1", fake.lastID)
}

func TestSolutionGetNotFound(t *testing.T) {
	fake := &fakeSolutionService{getErr: appErrors.ErrSolutionNotFound}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodGet, "/api/v1/solutions/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

type fakeExportCleaner struct {
	removed []string
	err     error
}

func (f *fakeExportCleaner) Remove(solutionID string) error {
	f.removed = append(f.removed, solutionID)
	return f.err
}

func TestSolutionDelete(t *testing.T) {
	fake := &fakeSolutionService{}
	cleaner := &fakeExportCleaner{}
	h := &SolutionHandler{service: fake, exports: cleaner}

	c, recorder := newTestContext(t, http.MethodDelete, "/api/v1/solutions/sol-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}}
	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "sol-1", fake.lastID)
	assert.Equal(t, []string{"sol-1"}, cleaner.removed)
}

func TestSolutionDeleteNotFound(t *testing.T) {
	fake := &fakeSolutionService{deleteErr: appErrors.ErrSolutionNotFound}
	cleaner := &fakeExportCleaner{}
	h := &SolutionHandler{service: fake, exports: cleaner}

	c, recorder := newTestContext(t, http.MethodDelete, "/api/v1/solutions/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, cleaner.removed)
}

func TestSolutionEmployeeHours(t *testing.T) {
	fake := &fakeSolutionService{hours: &dto.EmployeeHoursResponse{SolutionID: "sol-1"}}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodGet, "/api/v1/solutions/sol-1/employees/5/hours", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}, {Key: "employeeId", Value: "5"}}
	h.EmployeeHours(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "sol-1", fake.lastID)
	assert.Equal(t, 5, fake.lastEmployee)
}

func TestSolutionEmployeeHoursInvalidID(t *testing.T) {
	fake := &fakeSolutionService{}
	h := &SolutionHandler{service: fake}

	c, recorder := newTestContext(t, http.MethodGet, "/api/v1/solutions/sol-1/employees/abc/hours", nil)
	c.Params = gin.Params{{Key: "id", Value: "sol-1"}, {Key: "employeeId", Value: "abc"}}
	h.EmployeeHours(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, fake.lastID)
}
