package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shiftsight/shiftsight-api/internal/analysis"
	"github.com/shiftsight/shiftsight-api/internal/dto"
	"github.com/shiftsight/shiftsight-api/internal/models"
	"github.com/shiftsight/shiftsight-api/internal/solution"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
)

const solutionCachePrefix = "solution:"

// AnalysisServiceParams groups constructor dependencies.
type AnalysisServiceParams struct {
	Cache             *CacheService
	Metrics           *MetricsService
	Logger            *zap.Logger
	SolutionTTL       time.Duration
	OvertimeTolerance float64
	ShiftWishPolicy   analysis.ShiftWishPolicy
}

// AnalysisService turns raw solver documents into annotated, queryable view
// models and keeps them retrievable by id for the lifetime of the cache TTL.
// The analysis itself is synchronous and pure; callers that want to abandon
// a stale result simply discard the returned value.
type AnalysisService struct {
	cache        *CacheService
	metrics      *MetricsService
	logger       *zap.Logger
	ttl          time.Duration
	preferences  *analysis.PreferenceAnalyzer
	availability *analysis.AvailabilityAnalyzer
	hours        *analysis.HoursAggregator
	newID        func() string
}

// NewAnalysisService constructs an AnalysisService.
func NewAnalysisService(params AnalysisServiceParams) *AnalysisService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		cache:        params.Cache,
		metrics:      params.Metrics,
		logger:       logger,
		ttl:          params.SolutionTTL,
		preferences:  analysis.NewPreferenceAnalyzer(params.ShiftWishPolicy),
		availability: analysis.NewAvailabilityAnalyzer(),
		hours:        analysis.NewHoursAggregator(params.OvertimeTolerance),
		newID:        func() string { return uuid.NewString() },
	}
}

// Analyze decodes a raw solution document, runs every analysis pass, caches
// the annotated view model under a fresh id and returns it.
func (s *AnalysisService) Analyze(ctx context.Context, raw []byte) (*dto.AnalyzedSolution, error) {
	decodeStart := time.Now()
	sol, err := solution.Decode(raw)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDecode(time.Since(decodeStart))

	analysisStart := time.Now()
	index := analysis.NewAssignmentIndex(sol)
	s.preferences.Annotate(sol, index)
	view := s.buildView(sol, index)
	s.metrics.ObserveAnalysis(time.Since(analysisStart))

	view.ID = s.newID()
	if err := s.cache.Set(ctx, solutionCachePrefix+view.ID, view, s.ttl); err != nil {
		// The caller still gets the analyzed model; only later retrieval by
		// id is affected.
		s.logger.Warn("analyzed solution not cached", zap.String("solution_id", view.ID), zap.Error(err))
	}

	s.logger.Info("solution analyzed",
		zap.String("solution_id", view.ID),
		zap.Int("employees", len(view.Employees)),
		zap.Int("days", len(view.Days)),
		zap.Int("shifts", len(view.Shifts)),
	)

	return view, nil
}

// Get returns a previously analyzed solution by id.
func (s *AnalysisService) Get(ctx context.Context, id string) (*dto.AnalyzedSolution, error) {
	var view dto.AnalyzedSolution
	hit, err := s.cache.Get(ctx, solutionCachePrefix+id, &view)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, appErrors.ErrSolutionNotFound
	}
	return &view, nil
}

// Delete drops a previously analyzed solution from the store. The id stops
// resolving immediately; the cache TTL would otherwise keep it alive.
func (s *AnalysisService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, solutionCachePrefix+id); err != nil {
		return err
	}
	s.logger.Info("solution deleted", zap.String("solution_id", id))
	return nil
}

// EmployeeHours returns the workload stats of one employee in a previously
// analyzed solution.
func (s *AnalysisService) EmployeeHours(ctx context.Context, id string, employeeID int) (*dto.EmployeeHoursResponse, error) {
	view, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, hours := range view.Hours {
		if hours.EmployeeID == employeeID {
			return &dto.EmployeeHoursResponse{SolutionID: id, Hours: hours}, nil
		}
	}
	return nil, appErrors.ErrEmployeeNotFound
}

// buildView projects the annotated solution onto the serializable view
// model, rendering cell keys in their string form.
func (s *AnalysisService) buildView(sol *models.ScheduleSolution, index *analysis.AssignmentIndex) *dto.AnalyzedSolution {
	view := &dto.AnalyzedSolution{
		Days:                    make([]string, 0, len(sol.Days)),
		Shifts:                  sol.Shifts,
		Employees:               sol.Employees,
		Stats:                   sol.Stats,
		Assignments:             make(map[string][]string),
		AllDayOffWishCells:      cellStrings(sol.AllDayOffWishCells),
		FulfilledDayOffCells:    cellStrings(sol.FulfilledDayOffCells),
		FulfilledShiftWishCells: cellStrings(sol.FulfilledShiftWishCells),
		ShiftWishColors:         make(map[string][]string, len(sol.AllShiftWishColors)),
		UnavailableCells:        []string{},
		UnavailableShifts:       make(map[string][]string),
		Hours:                   make([]analysis.EmployeeHours, 0, len(sol.Employees)),
		ShiftWishPolicy:         string(s.preferences.Policy()),
	}

	for _, day := range sol.Days {
		view.Days = append(view.Days, day.Format(models.DayFormat))
	}

	for cell, colors := range sol.AllShiftWishColors {
		view.ShiftWishColors[cell.String()] = colors
	}

	for _, emp := range sol.Employees {
		view.Hours = append(view.Hours, s.hours.ComputeStats(emp, sol.Days, index))

		for _, day := range sol.Days {
			cell := models.NewCellKey(emp.ID, day).String()

			if assigned := index.AssignedShifts(emp.ID, day); len(assigned) > 0 {
				abbrevs := make([]string, 0, len(assigned))
				for _, shift := range assigned {
					abbrevs = append(abbrevs, shift.Abbreviation)
				}
				view.Assignments[cell] = abbrevs
			}

			if s.availability.IsUnavailable(emp, day) {
				view.UnavailableCells = append(view.UnavailableCells, cell)
			}
			for _, shift := range sol.Shifts {
				if s.availability.IsShiftUnavailable(emp, day, shift) {
					view.UnavailableShifts[cell] = append(view.UnavailableShifts[cell], shift.Abbreviation)
				}
			}
		}
	}

	sort.Strings(view.UnavailableCells)

	return view
}

func cellStrings(cells map[models.CellKey]struct{}) []string {
	rendered := make([]string, 0, len(cells))
	for cell := range cells {
		rendered = append(rendered, cell.String())
	}
	sort.Strings(rendered)
	return rendered
}
