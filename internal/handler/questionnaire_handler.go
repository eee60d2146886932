package handler

import (
	"net/http"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// QuestionnaireHandler handles questionnaire requests
type QuestionnaireHandler struct {
	service service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler
func NewQuestionnaireHandler(service service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service}
}

// List handles GET /api/questionarios
func (h *QuestionnaireHandler) List(c *gin.Context) {
	questionnaires, err := h.service.List()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, questionnaires, nil)
}

// Get handles GET /api/questionarios/:id
func (h *QuestionnaireHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	questionnaire, err := h.service.Get(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, questionnaire, nil)
}

// Create handles POST /api/questionarios
func (h *QuestionnaireHandler) Create(c *gin.Context) {
	var req domain.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	questionnaire, err := h.service.Create(&req)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, questionnaire)
}

// Update handles PUT /api/questionarios/:id
func (h *QuestionnaireHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var patch domain.QuestionnairePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	questionnaire, err := h.service.Update(id, &patch)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, questionnaire, nil)
}

// Delete handles DELETE /api/questionarios/:id
func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Questionário removido"}, nil)
}

// Classifications handles GET /api/classificacoes
func (h *QuestionnaireHandler) Classifications(c *gin.Context) {
	classifications, err := h.service.Classifications()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, classifications, nil)
}

// Categories handles GET /api/categorias
func (h *QuestionnaireHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, categories, nil)
}
