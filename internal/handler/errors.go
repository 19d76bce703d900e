package handler

import (
	"errors"
	"net/http"

	"invoicedesk/internal/service"
	"invoicedesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto status codes and the response envelope.
func writeError(c *gin.Context, err error) {
	var (
		validationErr   *service.ValidationError
		preconditionErr *service.DeliveryPreconditionError
		generationErr   *service.ExportGenerationError
		deliveryErr     *service.DeliveryError
	)

	switch {
	case errors.As(err, &validationErr):
		status := http.StatusUnprocessableEntity
		c.JSON(status, response.Fail(status, validationErr.Reason, gin.H{"field": validationErr.Field}))
	case errors.As(err, &preconditionErr):
		status := http.StatusBadRequest
		c.JSON(status, response.Fail(status, preconditionErr.Reason, gin.H{"channel": preconditionErr.Channel}))
	case errors.As(err, &generationErr):
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Error generating invoice. Please try again."))
	case errors.As(err, &deliveryErr):
		_ = c.Error(err)
		status := http.StatusBadGateway
		c.JSON(status, response.Fail(status, "Failed to send email. Please try again.", gin.H{"channel": deliveryErr.Channel}))
	case errors.Is(err, service.ErrLineItemNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case errors.Is(err, service.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
	case errors.Is(err, service.ErrLastLineItem),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNoExport),
		errors.Is(err, service.ErrPreviewOutdated):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, msg))
}
