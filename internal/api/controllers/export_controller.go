package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

func (e *ExportController) MarkdownExportHandler(c *gin.Context) {
	req, ok := bindExport(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(req.Title, "md")))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", e.exportService.MarkdownBytes(req.Markdown))
}

func (e *ExportController) PDFExportHandler(c *gin.Context) {
	req, ok := bindExport(c)
	if !ok {
		return
	}

	data, rendered := e.exportService.PDFBytes(req.Title, req.Markdown)
	contentType := "application/pdf"
	if !rendered {
		// Degraded export: raw markdown bytes under the .pdf name.
		contentType = "text/markdown; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(req.Title, "pdf")))
	c.Data(http.StatusOK, contentType, data)
}

func bindExport(c *gin.Context) (request_models.ExportRequest, bool) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Markdown == "" {
		utils.RespondError(c, http.StatusBadRequest, "markdown is required")
		return req, false
	}
	if req.Title == "" {
		req.Title = "AI Travel Plan"
	}
	return req, true
}

func exportFilename(title, ext string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "itinerary"
	}
	return name + "." + ext
}
