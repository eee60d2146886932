package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data"`
	Meta  *Pagination `json:"meta,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	Details    string           `json:"details,omitempty"`
	References map[string]int64 `json:"references,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Pagination) {
	c.JSON(http.StatusOK, APIResponse{
		Data: data,
		Meta: meta,
	})
}

// CreatedResponse returns a 201 Created JSON response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Data: data,
	})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// TranslateError maps a classified service error onto an HTTP response
func TranslateError(c *gin.Context, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error": &ErrorInfo{
				Code:       getErrorCode(http.StatusConflict),
				Message:    conflict.Reason,
				References: conflict.References,
			},
		})
		return
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		ErrorResponse(c, http.StatusBadRequest, validation.Message, nil)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrNoFields):
		ErrorResponse(c, http.StatusBadRequest, "Nenhum campo para atualizar", nil)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Erro interno", err)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
