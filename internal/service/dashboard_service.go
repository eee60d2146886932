package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/cache"
)

// Defaults for the parameterized dashboard series
const (
	DefaultMonths        = 6
	DefaultYears         = 2
	DefaultActivityLimit = 10
	TopQuestionnaires    = 5
)

var monthAbbrev = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// exitReasons is the legacy presentation distribution: fixed labels and
// shares applied to the evaluation total
var exitReasons = []struct {
	motivo string
	cor    string
	share  int
}{
	{"Melhor oportunidade", "#2196f3", 35},
	{"Insatisfação salarial", "#f44336", 25},
	{"Problemas com gestão", "#ff9800", 20},
	{"Mudança de carreira", "#9c27b0", 15},
	{"Outros", "#607d8b", 5},
}

// DashboardService handles dashboard aggregate operations. Reads go
// through the redis cache when it is available.
type DashboardService interface {
	GeneralStats(ctx context.Context) (*domain.GeneralStats, error)
	EvaluationsByMonth(ctx context.Context, months int) ([]domain.TimeBucket, error)
	EvaluationsByYear(ctx context.Context, years int) ([]domain.YearBucket, error)
	StatusDistribution(ctx context.Context) ([]domain.StatusCount, error)
	RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	TopQuestionnaires(ctx context.Context) ([]domain.QuestionnaireUsage, error)
	QuestionnaireShares(ctx context.Context) ([]domain.QuestionnaireShare, error)
	SectorStats(ctx context.Context) ([]domain.SectorStats, error)
	EvaluatorSectorStats(ctx context.Context) ([]domain.EvaluatorSectorStats, error)
	ResponseFrequencies(ctx context.Context) ([]domain.ResponseFrequency, error)
	DailyPoints(ctx context.Context, filter repository.DailyPointsFilter) ([]domain.DailyPoints, error)
	ExitReasons(ctx context.Context) ([]domain.ExitReason, error)
	RatingStats(ctx context.Context) (*domain.RatingStats, error)
	CompletionRate(ctx context.Context) (*domain.CompletionRate, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	cache         cache.Service
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository, cacheService cache.Service) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		cache:         cacheService,
	}
}

func (s *dashboardService) fromCache(ctx context.Context, name string, dest interface{}) bool {
	return s.cache != nil && s.cache.IsAvailable() &&
		s.cache.GetDashboard(ctx, name, dest) == nil
}

func (s *dashboardService) toCache(ctx context.Context, name string, data interface{}) {
	if s.cache != nil && s.cache.IsAvailable() {
		// Cache write failures never fail the read path
		_ = s.cache.SetDashboard(ctx, name, data)
	}
}

func pendingCutoff(now time.Time) time.Time {
	return now.Add(-domain.PendingAfter)
}

// GeneralStats returns the headline counters
func (s *dashboardService) GeneralStats(ctx context.Context) (*domain.GeneralStats, error) {
	var cached domain.GeneralStats
	if s.fromCache(ctx, "estatisticas", &cached) {
		return &cached, nil
	}

	stats, err := s.dashboardRepo.GeneralStats(pendingCutoff(time.Now()))
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "estatisticas", stats)
	return stats, nil
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%d", monthAbbrev[t.Month()-1], t.Year())
}

// EvaluationsByMonth returns one bucket per calendar month, zero-filled
// and chronological, covering the trailing window ending this month
func (s *dashboardService) EvaluationsByMonth(ctx context.Context, months int) ([]domain.TimeBucket, error) {
	if months < 1 {
		months = DefaultMonths
	}
	key := fmt.Sprintf("avaliacoes-mes:%d", months)

	var cached []domain.TimeBucket
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	counts, err := s.dashboardRepo.MonthCounts(first)
	if err != nil {
		return nil, err
	}

	buckets := make([]domain.TimeBucket, 0, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		buckets = append(buckets, domain.TimeBucket{
			Label: monthLabel(month),
			Valor: counts[month.Format("2006-01")],
		})
	}
	s.toCache(ctx, key, buckets)
	return buckets, nil
}

// EvaluationsByYear returns one bucket per calendar year, zero-filled and
// chronological, ending this year
func (s *dashboardService) EvaluationsByYear(ctx context.Context, years int) ([]domain.YearBucket, error) {
	if years < 1 {
		years = DefaultYears
	}
	key := fmt.Sprintf("avaliacoes-tempo:%d", years)

	var cached []domain.YearBucket
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	now := time.Now()
	firstYear := now.Year() - (years - 1)
	since := time.Date(firstYear, time.January, 1, 0, 0, 0, 0, now.Location())

	counts, err := s.dashboardRepo.YearCounts(since)
	if err != nil {
		return nil, err
	}

	buckets := make([]domain.YearBucket, 0, years)
	for year := firstYear; year <= now.Year(); year++ {
		buckets = append(buckets, domain.YearBucket{
			Ano:   year,
			Valor: counts[year],
		})
	}
	s.toCache(ctx, key, buckets)
	return buckets, nil
}

// StatusDistribution returns the derived-status counts in fixed chart order
func (s *dashboardService) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	var cached []domain.StatusCount
	if s.fromCache(ctx, "status-avaliacoes", &cached) {
		return cached, nil
	}

	counts, err := s.dashboardRepo.StatusCounts(pendingCutoff(time.Now()))
	if err != nil {
		return nil, err
	}

	distribution := []domain.StatusCount{
		{Status: domain.EvaluationCompleted, Valor: counts.Concluidas, Cor: domain.ColorCompleted},
		{Status: domain.EvaluationPending, Valor: counts.Pendentes, Cor: domain.ColorPending},
		{Status: domain.EvaluationInProgress, Valor: counts.EmAndamento, Cor: domain.ColorInProgress},
	}
	s.toCache(ctx, "status-avaliacoes", distribution)
	return distribution, nil
}

func statusColor(status domain.EvaluationStatus) string {
	switch status {
	case domain.EvaluationCompleted:
		return domain.ColorCompleted
	case domain.EvaluationPending:
		return domain.ColorPending
	default:
		return domain.ColorInProgress
	}
}

// RecentActivities returns the latest evaluations as a feed with relative
// time labels
func (s *dashboardService) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}

	rows, err := s.dashboardRepo.RecentEvaluations(limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	activities := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		status := domain.DeriveStatus(row.Rating, row.DataCompleta, now)
		activities = append(activities, domain.Activity{
			Tipo:      "avaliacao",
			ID:        row.ID,
			Titulo:    fmt.Sprintf("Avaliação de %s", row.Funcionario),
			Descricao: fmt.Sprintf("%s aplicada por %s", row.Questionario, row.Avaliador),
			Data:      row.DataCompleta,
			Cor:       statusColor(status),
			Tempo:     domain.RelativeTimeLabel(row.DataCompleta, now),
		})
	}
	return activities, nil
}

// TopQuestionnaires returns the five most applied active questionnaires
func (s *dashboardService) TopQuestionnaires(ctx context.Context) ([]domain.QuestionnaireUsage, error) {
	var cached []domain.QuestionnaireUsage
	if s.fromCache(ctx, "questionarios-usados", &cached) {
		return cached, nil
	}

	usage, err := s.dashboardRepo.QuestionnaireUsage(TopQuestionnaires, true)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "questionarios-usados", usage)
	return usage, nil
}

// QuestionnaireShares returns each questionnaire's share of the total
// application volume
func (s *dashboardService) QuestionnaireShares(ctx context.Context) ([]domain.QuestionnaireShare, error) {
	usage, err := s.dashboardRepo.QuestionnaireUsage(0, false)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, u := range usage {
		total += u.TotalUsos
	}

	shares := make([]domain.QuestionnaireShare, 0, len(usage))
	for _, u := range usage {
		share := domain.QuestionnaireShare{
			CodQuestionario: u.CodQuestionario,
			Nome:            u.Nome,
			TotalUsos:       u.TotalUsos,
		}
		if total > 0 {
			share.Percentual = math.Round(float64(u.TotalUsos)/float64(total)*10000) / 100
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// SectorStats aggregates evaluations per sector of the evaluated employee
func (s *dashboardService) SectorStats(ctx context.Context) ([]domain.SectorStats, error) {
	var cached []domain.SectorStats
	if s.fromCache(ctx, "avaliacoes-setor", &cached) {
		return cached, nil
	}

	stats, err := s.dashboardRepo.SectorStats()
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "avaliacoes-setor", stats)
	return stats, nil
}

// EvaluatorSectorStats aggregates evaluator contributions per sector
func (s *dashboardService) EvaluatorSectorStats(ctx context.Context) ([]domain.EvaluatorSectorStats, error) {
	return s.dashboardRepo.EvaluatorSectorStats()
}

// ResponseFrequencies tallies observed responses per question and option
func (s *dashboardService) ResponseFrequencies(ctx context.Context) ([]domain.ResponseFrequency, error) {
	return s.dashboardRepo.ResponseFrequencies()
}

// DailyPoints sums ratings per calendar day under one filter mode
func (s *dashboardService) DailyPoints(ctx context.Context, filter repository.DailyPointsFilter) ([]domain.DailyPoints, error) {
	return s.dashboardRepo.DailyPoints(filter)
}

// ExitReasons derives the legacy exit-reason distribution from the
// evaluation total
func (s *dashboardService) ExitReasons(ctx context.Context) ([]domain.ExitReason, error) {
	total, err := s.dashboardRepo.CountEvaluations()
	if err != nil {
		return nil, err
	}

	reasons := make([]domain.ExitReason, 0, len(exitReasons))
	for _, r := range exitReasons {
		reasons = append(reasons, domain.ExitReason{
			Motivo:     r.motivo,
			Cor:        r.cor,
			Quantidade: total * int64(r.share) / 100,
			Percentual: r.share,
		})
	}
	return reasons, nil
}

// RatingStats summarizes the recorded ratings
func (s *dashboardService) RatingStats(ctx context.Context) (*domain.RatingStats, error) {
	return s.dashboardRepo.RatingStats()
}

// CompletionRate returns the derived-status breakdown with the completion
// ratio as a percentage
func (s *dashboardService) CompletionRate(ctx context.Context) (*domain.CompletionRate, error) {
	counts, err := s.dashboardRepo.StatusCounts(pendingCutoff(time.Now()))
	if err != nil {
		return nil, err
	}

	rate := &domain.CompletionRate{
		Concluidas:  counts.Concluidas,
		Pendentes:   counts.Pendentes,
		EmAndamento: counts.EmAndamento,
		Total:       counts.Total,
	}
	if counts.Total > 0 {
		rate.TaxaConclusao = math.Round(float64(counts.Concluidas)/float64(counts.Total)*10000) / 100
	}
	return rate, nil
}
