package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/shiftsight/shiftsight-api/internal/analysis"
	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/models"
	"github.com/shiftsight/shiftsight-api/internal/solution"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
)

// solutionFetcher is the consumer-side view of the solver client.
type solutionFetcher interface {
	FetchSolution(ctx context.Context, scheduleID string) ([]byte, error)
}

// ComparisonServiceParams groups constructor dependencies.
type ComparisonServiceParams struct {
	Fetcher      solutionFetcher
	Metrics      *MetricsService
	Logger       *zap.Logger
	MaxBatchSize int
}

// ComparisonService fetches N schedules concurrently from the solver
// gateway, decodes them and groups corresponding employees for side-by-side
// comparison. The batch is fail-fast: any failed fetch or decode aborts the
// whole comparison with no partial result.
type ComparisonService struct {
	fetcher      solutionFetcher
	metrics      *MetricsService
	logger       *zap.Logger
	maxBatchSize int
}

// NewComparisonService constructs a ComparisonService.
func NewComparisonService(params ComparisonServiceParams) *ComparisonService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxBatch := params.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = 16
	}
	return &ComparisonService{
		fetcher:      params.Fetcher,
		metrics:      params.Metrics,
		logger:       logger,
		maxBatchSize: maxBatch,
	}
}

// Compare resolves the requested schedules and returns the grouped rows. An
// empty schedule list is the "no schedules to compare" terminal state and
// yields an empty grouping, not an error.
func (s *ComparisonService) Compare(ctx context.Context, req dto.ComparisonRequest) (*dto.ComparisonResponse, error) {
	if len(req.Schedules) == 0 {
		return &dto.ComparisonResponse{Schedules: 0, Filter: req.Filter, Rows: []models.ComparisonRow{}}, nil
	}
	if len(req.Schedules) > s.maxBatchSize {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("comparison batch exceeds the supported limit of %d schedules", s.maxBatchSize))
	}

	s.metrics.ObserveComparison(len(req.Schedules))

	documents, err := s.fetchAll(ctx, req.Schedules)
	if err != nil {
		return nil, err
	}

	refs := make([]analysis.ScheduleRef, 0, len(req.Schedules))
	for i, scheduleRef := range req.Schedules {
		sol, err := solution.Decode(documents[i])
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrBatchFetch.Code, http.StatusBadGateway,
				fmt.Sprintf("schedule %s returned an invalid solution document", scheduleRef.ScheduleID))
		}
		refs = append(refs, analysis.ScheduleRef{
			ScheduleID: scheduleRef.ScheduleID,
			Seed:       scheduleRef.Seed,
			Solution:   sol,
		})
	}

	rows := analysis.CompareSchedules(refs, req.Filter)

	s.logger.Info("schedules compared",
		zap.Int("schedules", len(refs)),
		zap.Int("rows", len(rows)),
		zap.String("filter", req.Filter),
	)

	return &dto.ComparisonResponse{
		Schedules: len(refs),
		Filter:    req.Filter,
		Rows:      rows,
	}, nil
}

// fetchAll issues every fetch concurrently and fails the whole batch on the
// first error, cancelling the remaining requests.
func (s *ComparisonService) fetchAll(ctx context.Context, refs []dto.ComparisonScheduleRef) ([][]byte, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	documents := make([][]byte, len(refs))
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i, ref := range refs {
		wg.Add(1)
		go func(i int, scheduleID string) {
			defer wg.Done()
			body, err := s.fetcher.FetchSolution(fetchCtx, scheduleID)
			if err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("schedule %s: %w", scheduleID, err)
					cancel()
				})
				return
			}
			documents[i] = body
		}(i, ref.ScheduleID)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, appErrors.Wrap(firstErr, appErrors.ErrBatchFetch.Code, http.StatusBadGateway,
			"failed to fetch one or more schedules")
	}
	return documents, nil
}
