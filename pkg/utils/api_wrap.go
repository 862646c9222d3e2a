package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500; the detail stays in the server log.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPromptNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrReviewNotFound),
		errors.Is(err, ErrFavoriteNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUsernameAlreadyExists),
		errors.Is(err, ErrSlugAlreadyExists),
		errors.Is(err, ErrReviewAlreadyExists),
		errors.Is(err, ErrPaymentAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrAccountDisabled),
		errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrPurchaseRequired):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")

	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")

	case errors.Is(err, ErrAmountMismatch),
		errors.Is(err, ErrTokenAmountRequired),
		errors.Is(err, ErrInvalidStatusTransition):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrUpstreamAI):
		RespondError(c, http.StatusBadGateway, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
