package handler

import (
	"net/http"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/domain"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee requests
type EmployeeHandler struct {
	service service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(service service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/funcionarios
func (h *EmployeeHandler) List(c *gin.Context) {
	filter := repository.EmployeeFilter{
		Status: c.Query("status"),
		Setor:  c.Query("departamento"),
		Busca:  c.Query("q"),
	}
	page := ginutil.QueryInt(c, "page", 1)
	perPage := ginutil.QueryInt(c, "per_page", service.DefaultEmployeesPerPage)

	employees, meta, err := h.service.List(filter, page, perPage)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, employees, meta)
}

// Get handles GET /api/funcionarios/:cpf
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.service.Get(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, employee, nil)
}

// Create handles POST /api/funcionarios
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req domain.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	employee, err := h.service.Create(&req)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.CreatedResponse(c, employee)
}

// Update handles PUT /api/funcionarios/:cpf
func (h *EmployeeHandler) Update(c *gin.Context) {
	var patch domain.EmployeePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Dados inválidos", err)
		return
	}

	employee, err := h.service.Update(c.Param("cpf"), &patch)
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, employee, nil)
}

// Delete handles DELETE /api/funcionarios/:cpf
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("cpf")); err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"message": "Funcionário removido"}, nil)
}

// Total handles GET /api/funcionarios/total
func (h *EmployeeHandler) Total(c *gin.Context) {
	total, err := h.service.Total()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"total": total}, nil)
}

// Stats handles GET /api/funcionarios/estatisticas
func (h *EmployeeHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, stats, nil)
}

// Sectors handles GET /api/departamentos, kept under its legacy alias
func (h *EmployeeHandler) Sectors(c *gin.Context) {
	sectors, err := h.service.Sectors()
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, sectors, nil)
}

// Classifications handles GET /api/funcionarios/:cpf/classificacoes
func (h *EmployeeHandler) Classifications(c *gin.Context) {
	classifications, err := h.service.Classifications(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, classifications, nil)
}

// Evaluations handles GET /api/funcionarios/:cpf/avaliacoes
func (h *EmployeeHandler) Evaluations(c *gin.Context) {
	evaluations, err := h.service.Evaluations(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, evaluations, nil)
}

// Trainings handles GET /api/funcionarios/:cpf/treinamentos
func (h *EmployeeHandler) Trainings(c *gin.Context) {
	trainings, err := h.service.Trainings(c.Param("cpf"))
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, trainings, nil)
}
