package handler

import (
	"net/http"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// EvaluatorHandler handles evaluator and training requests
type EvaluatorHandler struct {
	service service.EvaluatorService
}

// NewEvaluatorHandler creates a new EvaluatorHandler
func NewEvaluatorHandler(service service.EvaluatorService) *EvaluatorHandler {
	return &EvaluatorHandler{service: service}
}

// List handles GET /api/avaliadores
func (h *EvaluatorHandler) List(c *gin.Context) {
	evaluators, err := h.service.List()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluators, nil)
}

// Get handles GET /api/avaliadores/:cpf
func (h *EvaluatorHandler) Get(c *gin.Context) {
	evaluator, err := h.service.Get(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluator, nil)
}

// Certificates handles GET /api/avaliadores/:cpf/certificados
func (h *EvaluatorHandler) Certificates(c *gin.Context) {
	certificates, err := h.service.Certificates(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, certificates, nil)
}

// Trainings handles GET /api/treinamentos
func (h *EvaluatorHandler) Trainings(c *gin.Context) {
	trainings, err := h.service.Trainings()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, trainings, nil)
}

// CreateLink handles POST /api/funcionario-treinamento
func (h *EvaluatorHandler) CreateLink(c *gin.Context) {
	var link domain.EmployeeTraining
	if err := c.ShouldBindJSON(&link); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}
	if link.FuncionarioCPF == "" || link.TreinamentoCod == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Funcionário e treinamento são obrigatórios", nil)
		return
	}

	created, err := h.service.CreateLink(&link)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, created)
}

// UpdateLink handles PUT /api/funcionario-treinamento
func (h *EvaluatorHandler) UpdateLink(c *gin.Context) {
	var patch domain.EmployeeTrainingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	if err := h.service.UpdateLink(&patch); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Vínculo atualizado"}, nil)
}

// DeleteLink handles DELETE /api/funcionario-treinamento, addressed by query keys
func (h *EvaluatorHandler) DeleteLink(c *gin.Context) {
	cpf := c.Query("funcionario_cpf")
	trainingID := ginutil.QueryIntPtr(c, "treinamento_cod")
	if cpf == "" || trainingID == nil {
		common.ErrorResponse(c, http.StatusBadRequest,
			"CPF do funcionário e código do treinamento são obrigatórios", nil)
		return
	}

	if err := h.service.DeleteLink(cpf, *trainingID); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Vínculo removido"}, nil)
}
