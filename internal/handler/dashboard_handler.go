package handler

import (
	"net/http"
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard aggregate requests
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/dashboard/estatisticas
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.GeneralStats(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, stats, nil)
}

// EvaluationsByMonth handles GET /api/dashboard/avaliacoes-mes
func (h *DashboardHandler) EvaluationsByMonth(c *gin.Context) {
	months := ginutil.QueryInt(c, "meses", service.DefaultMonths)

	buckets, err := h.service.EvaluationsByMonth(c.Request.Context(), months)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, buckets, nil)
}

// EvaluationsByYear handles GET /api/dashboard/avaliacoes-tempo
func (h *DashboardHandler) EvaluationsByYear(c *gin.Context) {
	years := ginutil.QueryInt(c, "anos", service.DefaultYears)

	buckets, err := h.service.EvaluationsByYear(c.Request.Context(), years)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, buckets, nil)
}

// StatusDistribution handles GET /api/dashboard/status-avaliacoes
func (h *DashboardHandler) StatusDistribution(c *gin.Context) {
	distribution, err := h.service.StatusDistribution(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, distribution, nil)
}

// RecentActivities handles GET /api/dashboard/atividades-recentes
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	limit := ginutil.QueryInt(c, "limite", service.DefaultActivityLimit)

	activities, err := h.service.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, activities, nil)
}

// TopQuestionnaires handles GET /api/dashboard/questionarios-usados
func (h *DashboardHandler) TopQuestionnaires(c *gin.Context) {
	usage, err := h.service.TopQuestionnaires(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, usage, nil)
}

// QuestionnaireShares handles GET /api/dashboard/avaliacoes-por-questionario
func (h *DashboardHandler) QuestionnaireShares(c *gin.Context) {
	shares, err := h.service.QuestionnaireShares(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, shares, nil)
}

// SectorStats handles GET /api/dashboard/avaliacoes-setor
func (h *DashboardHandler) SectorStats(c *gin.Context) {
	stats, err := h.service.SectorStats(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, stats, nil)
}

// EvaluatorSectorStats handles GET /api/dashboard/avaliadores-por-setor
func (h *DashboardHandler) EvaluatorSectorStats(c *gin.Context) {
	stats, err := h.service.EvaluatorSectorStats(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, stats, nil)
}

// ResponseFrequencies handles GET /api/dashboard/respostas-frequencia
func (h *DashboardHandler) ResponseFrequencies(c *gin.Context) {
	frequencies, err := h.service.ResponseFrequencies(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, frequencies, nil)
}

// DailyPoints handles GET /api/dashboard/pontos-por-data
func (h *DashboardHandler) DailyPoints(c *gin.Context) {
	var filter repository.DailyPointsFilter

	if raw := c.Query("data_inicial"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "data_inicial inválida", err)
			return
		}
		filter.Start = &start
	}
	if raw := c.Query("data_final"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "data_final inválida", err)
			return
		}
		filter.End = &end
	}
	if filter.Start == nil && filter.End == nil {
		filter.LastDays = ginutil.QueryIntPtr(c, "limite_dias")
	}

	points, err := h.service.DailyPoints(c.Request.Context(), filter)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, points, nil)
}

// ExitReasons handles GET /api/dashboard/motivos-saida
func (h *DashboardHandler) ExitReasons(c *gin.Context) {
	reasons, err := h.service.ExitReasons(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, reasons, nil)
}

// RatingStats handles GET /api/dashboard/rating-stats
func (h *DashboardHandler) RatingStats(c *gin.Context) {
	stats, err := h.service.RatingStats(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, stats, nil)
}

// CompletionRate handles GET /api/dashboard/taxa-conclusao
func (h *DashboardHandler) CompletionRate(c *gin.Context) {
	rate, err := h.service.CompletionRate(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, rate, nil)
}
