package handler

import (
	"errors"
	"fmt"
	"net/http"

	"invoicedesk/internal/repository"
	"invoicedesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	artifacts repository.ArtifactRepository
}

func NewExportHandler(artifacts repository.ArtifactRepository) *ExportHandler {
	return &ExportHandler{artifacts: artifacts}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/exports/:token", h.GetArtifact)
}

// GetArtifact streams a generated PDF or image as an attachment
// @Summary      Download generated file
// @Tags         invoice
// @Produce      application/pdf,image/jpeg
// @Param        token  path  string  true  "Artifact token from the export response"
// @Success      200
// @Failure      404  {object}  response.Response
// @Router       /exports/{token} [get]
func (h *ExportHandler) GetArtifact(c *gin.Context) {
	artifact, err := h.artifacts.FindByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "File not found or no longer available"))
			return
		}
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
