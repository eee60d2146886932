package handler

import (
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/common"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles maintenance requests
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// PurgeDatabase handles DELETE /api/admin/limpar-banco
func (h *AdminHandler) PurgeDatabase(c *gin.Context) {
	purged, err := h.service.PurgeDatabase(c.Request.Context())
	if err != nil {
		common.TranslateError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{
		"message": "Banco de dados limpo",
		"tabelas": purged,
	}, nil)
}
