package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/pkg/export"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
	"github.com/shiftsight/shiftsight-api/pkg/storage"
)

const (
	exportFormatCSV = "csv"
	exportFormatPDF = "pdf"
)

// analyzedSolutionGetter is the consumer-side view of the analysis service.
type analyzedSolutionGetter interface {
	Get(ctx context.Context, id string) (*dto.AnalyzedSolution, error)
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Solutions analyzedSolutionGetter
	Storage   *storage.LocalStorage
	Signer    *storage.SignedURLSigner
	Logger    *zap.Logger
	URLPrefix string
}

// ExportService renders the assignment grid of an analyzed solution into a
// downloadable CSV or PDF file, addressed by a signed token.
type ExportService struct {
	solutions analyzedSolutionGetter
	storage   *storage.LocalStorage
	signer    *storage.SignedURLSigner
	logger    *zap.Logger
	urlPrefix string
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(params ExportServiceParams) *ExportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	urlPrefix := params.URLPrefix
	if urlPrefix == "" {
		urlPrefix = "/api/v1/exports"
	}
	return &ExportService{
		solutions: params.Solutions,
		storage:   params.Storage,
		signer:    params.Signer,
		logger:    logger,
		urlPrefix: urlPrefix,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Export renders the solution grid in the requested format and returns a
// signed download reference.
func (s *ExportService) Export(ctx context.Context, solutionID, format string) (*dto.ExportResponse, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != exportFormatCSV && format != exportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrExportFormat,
			fmt.Sprintf("unsupported export format %q, expected csv or pdf", format))
	}

	view, err := s.solutions.Get(ctx, solutionID)
	if err != nil {
		return nil, err
	}

	dataset := buildScheduleDataset(view)

	var payload []byte
	switch format {
	case exportFormatPDF:
		payload, err = s.pdf.Render(dataset, fmt.Sprintf("Schedule %s", solutionID))
	default:
		payload, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render schedule export")
	}

	filename := fmt.Sprintf("schedules/%s.%s", solutionID, format)
	if _, err := s.storage.Save(filename, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store schedule export")
	}

	token, expiresAt, err := s.signer.Generate(solutionID, filename)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign schedule export")
	}

	s.logger.Info("schedule exported",
		zap.String("solution_id", solutionID),
		zap.String("format", format),
		zap.Int("bytes", len(payload)),
	)

	return &dto.ExportResponse{
		SolutionID: solutionID,
		Format:     format,
		Filename:   path.Base(filename),
		Token:      token,
		URL:        fmt.Sprintf("%s/%s", s.urlPrefix, token),
		ExpiresAt:  expiresAt,
	}, nil
}

// Remove deletes the rendered export files of a solution. Outstanding signed
// tokens for those files stop working, which is the point: the solution they
// render is gone.
func (s *ExportService) Remove(solutionID string) error {
	for _, format := range []string{exportFormatCSV, exportFormatPDF} {
		filename := fmt.Sprintf("schedules/%s.%s", solutionID, format)
		if err := s.storage.Remove(filename); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "remove schedule export")
		}
	}
	return nil
}

// Open validates a signed token and returns a handle on the rendered file.
func (s *ExportService) Open(token string) (*os.File, string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "invalid or expired export token")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found")
	}
	return file, path.Base(relPath), nil
}

// buildScheduleDataset lays the annotated solution out as a grid: one row
// per employee, one column per day carrying the assigned shift
// abbreviations, plus workload summary columns.
func buildScheduleDataset(view *dto.AnalyzedSolution) export.Dataset {
	headers := make([]string, 0, len(view.Days)+4)
	headers = append(headers, "Employee")
	headers = append(headers, view.Days...)
	headers = append(headers, "Actual Hours", "Target Hours", "Overtime")

	hoursByEmployee := make(map[int]int, len(view.Hours))
	for i, hours := range view.Hours {
		hoursByEmployee[hours.EmployeeID] = i
	}

	rows := make([]map[string]string, 0, len(view.Employees))
	for _, emp := range view.Employees {
		row := map[string]string{"Employee": emp.Name}
		for _, day := range view.Days {
			cell := fmt.Sprintf("%d-%s", emp.ID, day)
			row[day] = strings.Join(view.Assignments[cell], "/")
		}
		if i, ok := hoursByEmployee[emp.ID]; ok {
			hours := view.Hours[i]
			row["Actual Hours"] = fmt.Sprintf("%.2f", hours.ActualHours)
			row["Target Hours"] = fmt.Sprintf("%.2f", hours.TargetHours)
			if hours.HasOvertime {
				row["Overtime"] = "yes"
			} else {
				row["Overtime"] = "no"
			}
		}
		rows = append(rows, row)
	}

	return export.Dataset{Headers: headers, Rows: rows}
}
