package handler

import (
	"net/http"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// EvaluationHandler handles evaluation requests
type EvaluationHandler struct {
	service service.EvaluationService
}

// NewEvaluationHandler creates a new EvaluationHandler
func NewEvaluationHandler(service service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{service: service}
}

// List handles GET /api/avaliacoes
func (h *EvaluationHandler) List(c *gin.Context) {
	evaluations, err := h.service.List(c.Query("funcionario"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluations, nil)
}

// Get handles GET /api/avaliacoes/:id
func (h *EvaluationHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	evaluation, err := h.service.Get(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluation, nil)
}

// Create handles POST /api/avaliacoes
func (h *EvaluationHandler) Create(c *gin.Context) {
	var req domain.CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	evaluation, err := h.service.Create(&req)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, evaluation)
}

// UpdateStatus handles PUT /api/avaliacoes/:id/status
func (h *EvaluationHandler) UpdateStatus(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var patch domain.EvaluationStatusPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	evaluation, err := h.service.UpdateStatus(id, &patch)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluation, nil)
}

// UpdateConfig handles PUT /api/avaliacoes/:id
func (h *EvaluationHandler) UpdateConfig(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var patch domain.EvaluationConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	evaluation, err := h.service.UpdateConfig(id, &patch)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluation, nil)
}

// Delete handles DELETE /api/avaliacoes/:id
func (h *EvaluationHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Avaliação removida"}, nil)
}

// SaveResponse handles POST /api/avaliacoes/respostas
func (h *EvaluationHandler) SaveResponse(c *gin.Context) {
	var req domain.SaveResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	response, err := h.service.SaveResponse(&req)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, response)
}

// ResponsesByQuestion handles GET /api/questoes/:id/respostas
func (h *EvaluationHandler) ResponsesByQuestion(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	tallies, err := h.service.ResponsesByQuestion(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, tallies, nil)
}

// ResponsesByQuestionnaire handles GET /api/questionarios/:id/grafico-respostas
func (h *EvaluationHandler) ResponsesByQuestionnaire(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	tallies, err := h.service.ResponsesByQuestionnaire(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, tallies, nil)
}

// ResponsesByEvaluation handles GET /api/avaliacoes/:id/grafico-respostas
func (h *EvaluationHandler) ResponsesByEvaluation(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	tallies, err := h.service.ResponsesByEvaluation(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, tallies, nil)
}
