package handler

import (
	"net/http"
	"strings"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// QuestionHandler handles question requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// List handles GET /api/perguntas
func (h *QuestionHandler) List(c *gin.Context) {
	busca := c.Query("q")
	if busca == "" {
		busca = c.Query("busca")
	}
	status := c.Query("status")
	if ativa := c.Query("ativa"); ativa != "" {
		if strings.EqualFold(ativa, "true") {
			status = domain.QuestionStatusActive
		} else {
			status = domain.QuestionStatusInactive
		}
	}
	filter := repository.QuestionFilter{
		Status: status,
		Busca:  busca,
	}
	page := ginutil.QueryInt(c, "page", 1)
	perPage := ginutil.QueryInt(c, "per_page", service.DefaultQuestionsPerPage)

	questions, meta, err := h.service.List(filter, page, perPage)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, questions, meta)
}

// Get handles GET /api/perguntas/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	question, err := h.service.Get(id)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, question, nil)
}

// Create handles POST /api/perguntas
func (h *QuestionHandler) Create(c *gin.Context) {
	var req domain.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	question, err := h.service.Create(&req)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, question)
}

// Update handles PUT /api/perguntas/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	var patch domain.QuestionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	question, err := h.service.Update(id, &patch)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, question, nil)
}

// Delete handles DELETE /api/perguntas/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "ID inválido", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Pergunta removida"}, nil)
}
