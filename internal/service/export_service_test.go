package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsight/shiftsight-api/internal/analysis"
	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/models"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
	"github.com/shiftsight/shiftsight-api/pkg/storage"
)

type fakeSolutionGetter struct {
	views map[string]*dto.AnalyzedSolution
}

func (f *fakeSolutionGetter) Get(_ context.Context, id string) (*dto.AnalyzedSolution, error) {
	view, ok := f.views[id]
	if !ok {
		return nil, appErrors.ErrSolutionNotFound
	}
	return view, nil
}

func exportView() *dto.AnalyzedSolution {
	return &dto.AnalyzedSolution{
		ID:   "sol-1",
		Days: []string{"2024-03-10", "2024-03-11"},
		Employees: []models.Employee{
			{ID: 5, Name: "Erika"},
			{ID: 7, Name: "Anna"},
		},
		Assignments: map[string][]string{
			"5-2024-03-10": {"F"},
			"7-2024-03-11": {"S", "N"},
		},
		Hours: []analysis.EmployeeHours{
			{EmployeeID: 5, ActualHours: 8, TargetHours: 8, TotalShifts: 1},
			{EmployeeID: 7, ActualHours: 18, TargetHours: 8, TotalShifts: 2, HasOvertime: true},
		},
	}
}

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewExportService(ExportServiceParams{
		Solutions: &fakeSolutionGetter{views: map[string]*dto.AnalyzedSolution{"sol-1": exportView()}},
		Storage:   store,
		Signer:    storage.NewSignedURLSigner("test-secret", time.Minute),
	})
}

func TestExportCSVAndDownloadRoundTrip(t *testing.T) {
	svc := newTestExportService(t)

	resp, err := svc.Export(context.Background(), "sol-1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "sol-1", resp.SolutionID)
	assert.Equal(t, "csv", resp.Format)
	assert.Equal(t, "sol-1.csv", resp.Filename)
	assert.Equal(t, "/api/v1/exports/"+resp.Token, resp.URL)
	assert.WithinDuration(t, time.Now().Add(time.Minute), resp.ExpiresAt, 5*time.Second)

	file, filename, err := svc.Open(resp.Token)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, "sol-1.csv", filename)

	content, err := io.ReadAll(file)
	require.NoError(t, err)

	// The BOM keeps spreadsheet imports from garbling umlaut shift names.
	text := string(content)
	require.True(t, strings.HasPrefix(text, "\ufeff"))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(text, "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Employee,2024-03-10,2024-03-11,Actual Hours,Target Hours,Overtime", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Erika,F,,8.00,8.00,no", strings.TrimSpace(lines[1]))
	assert.Equal(t, "Anna,,S/N,18.00,8.00,yes", strings.TrimSpace(lines[2]))
}

func TestExportPDF(t *testing.T) {
	svc := newTestExportService(t)

	resp, err := svc.Export(context.Background(), "sol-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "sol-1.pdf", resp.Filename)

	file, _, err := svc.Open(resp.Token)
	require.NoError(t, err)
	defer file.Close()

	header := make([]byte, 5)
	_, err = io.ReadFull(file, header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(header))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := newTestExportService(t)

	_, err := svc.Export(context.Background(), "sol-1", "xlsx")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrExportFormat.Code, appErr.Code)
}

func TestExportUnknownSolution(t *testing.T) {
	svc := newTestExportService(t)

	_, err := svc.Export(context.Background(), "missing", "csv")
	assert.ErrorIs(t, err, appErrors.ErrSolutionNotFound)
}

func TestRemoveDeletesRenderedFiles(t *testing.T) {
	svc := newTestExportService(t)

	csvResp, err := svc.Export(context.Background(), "sol-1", "csv")
	require.NoError(t, err)
	pdfResp, err := svc.Export(context.Background(), "sol-1", "pdf")
	require.NoError(t, err)

	require.NoError(t, svc.Remove("sol-1"))

	// Still-valid tokens stop resolving once the files are gone.
	_, _, err = svc.Open(csvResp.Token)
	assert.Error(t, err)
	_, _, err = svc.Open(pdfResp.Token)
	assert.Error(t, err)

	// Removing a solution that was never exported is a no-op.
	assert.NoError(t, svc.Remove("never-exported"))
}

func TestOpenRejectsTamperedToken(t *testing.T) {
	svc := newTestExportService(t)

	resp, err := svc.Export(context.Background(), "sol-1", "csv")
	require.NoError(t, err)

	_, _, err = svc.Open(resp.Token + "x")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
