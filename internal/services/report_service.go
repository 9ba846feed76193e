package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"booking_backend/internal/cache"
	"booking_backend/internal/models"
	"booking_backend/internal/repositories"
	"booking_backend/pkg/utils"
)

// Dashboard snapshots are cached under a key carrying the current generation. Writes bump the
// generation, so a snapshot loaded before a write lands under a key no later read uses.
const dashboardGenerationKey = "admin:dashboard:gen"

func dashboardCacheKey(generation int64) string {
	return "admin:dashboard:" + strconv.FormatInt(generation, 10)
}

// ReportService builds the admin dashboard.
type ReportService interface {
	GetAdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
}

type reportService struct {
	appointmentRepo repositories.AppointmentRepository
	cache           cache.Cache
	ttl             time.Duration
}

// NewReportService creates a new instance of ReportService. A ttl <= 0 disables caching.
func NewReportService(ar repositories.AppointmentRepository, c cache.Cache, ttl time.Duration) ReportService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &reportService{appointmentRepo: ar, cache: c, ttl: ttl}
}

func (s *reportService) GetAdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	key := ""
	if s.ttl > 0 {
		if generation, ok := s.generation(ctx); ok {
			key = dashboardCacheKey(generation)
			if cached, hit := s.cached(ctx, key); hit {
				return cached, nil
			}
		}
	}

	appointments, err := s.appointmentRepo.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	dashboard := &models.AdminDashboard{
		Appointments: appointments,
		CategoryData: AggregateByCategory(appointments),
		MonthlyData:  AggregateByMonth(appointments),
	}

	if key != "" {
		s.store(ctx, key, dashboard)
	}
	return dashboard, nil
}

// generation reads the current dashboard generation. A missing counter is generation 0.
func (s *reportService) generation(ctx context.Context) (int64, bool) {
	raw, hit, err := s.cache.Get(ctx, dashboardGenerationKey)
	if err != nil {
		utils.LogWarn("ReportService: cache read failed", map[string]interface{}{"error": err.Error()})
		return 0, false
	}
	if !hit {
		return 0, true
	}
	generation, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		utils.LogWarn("ReportService: undecodable dashboard generation", map[string]interface{}{"value": string(raw)})
		return 0, false
	}
	return generation, true
}

func (s *reportService) cached(ctx context.Context, key string) (*models.AdminDashboard, bool) {
	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		utils.LogWarn("ReportService: cache read failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	if !hit {
		return nil, false
	}
	var dashboard models.AdminDashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		utils.LogWarn("ReportService: discarding undecodable cache entry", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	return &dashboard, true
}

func (s *reportService) store(ctx context.Context, key string, dashboard *models.AdminDashboard) {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		utils.LogError(err, "ReportService: failed to encode dashboard")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		utils.LogWarn("ReportService: cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

// invalidateDashboard moves readers to a new generation after a committed write. Failures are logged only.
func invalidateDashboard(ctx context.Context, c cache.Cache) {
	if _, err := c.Incr(ctx, dashboardGenerationKey); err != nil {
		utils.LogWarn("Dashboard cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

// AggregateByCategory counts appointments per category. Labels keep first-occurrence order
// and only categories that occur are listed.
func AggregateByCategory(appointments []models.Appointment) models.ChartData {
	chart := models.ChartData{Labels: []string{}, Data: []int{}}
	index := make(map[string]int)
	for _, a := range appointments {
		i, seen := index[a.Category]
		if !seen {
			i = len(chart.Labels)
			index[a.Category] = i
			chart.Labels = append(chart.Labels, a.Category)
			chart.Data = append(chart.Data, 0)
		}
		chart.Data[i]++
	}
	return chart
}

// AggregateByMonth counts appointments per calendar month of their date, January..December,
// ignoring the year. All twelve months are always present.
func AggregateByMonth(appointments []models.Appointment) models.ChartData {
	chart := models.ChartData{Labels: make([]string, 12), Data: make([]int, 12)}
	for m := time.January; m <= time.December; m++ {
		chart.Labels[m-1] = m.String()
	}
	for _, a := range appointments {
		chart.Data[a.Date.Month()-1]++
	}
	return chart
}
