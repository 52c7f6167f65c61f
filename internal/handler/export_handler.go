package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"export-manager-api/internal/dto"
	"export-manager-api/internal/response"
	"export-manager-api/internal/service"
)

type ExportHandler struct {
	exportService   service.ExportService
	templateService service.TemplateService
}

func NewExportHandler(exportService service.ExportService, templateService service.TemplateService) *ExportHandler {
	return &ExportHandler{
		exportService:   exportService,
		templateService: templateService,
	}
}

// CreateExport godoc
// @Summary      Create an export
// @Description  Creates a new export profile rooted at a catalog model
// @Tags         exports
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateExportRequest true "Export creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.ExportResponse} "Export created"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       / [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	export, err := h.exportService.CreateExport(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, export)
}

// GetExport godoc
// @Summary      Get an export
// @Description  Returns a single export profile by ID
// @Tags         exports
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ExportResponse} "Export detail"
// @Failure      400 {object} response.ErrorResponse "Invalid export ID"
// @Failure      404 {object} response.ErrorResponse "Export not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId} [get]
func (h *ExportHandler) GetExport(c *gin.Context) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return
	}

	export, err := h.exportService.GetExport(c.Request.Context(), exportID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, export)
}

// ListExports godoc
// @Summary      List exports
// @Description  Lists all export profiles
// @Tags         exports
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ExportResponse} "Export list"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       / [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	exports, err := h.exportService.ListExports(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, exports)
}

// DeleteExport godoc
// @Summary      Delete an export
// @Description  Deletes an export profile together with its lines
// @Tags         exports
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Success      200 {object} response.SuccessResponse "Export deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid export ID"
// @Failure      404 {object} response.ErrorResponse "Export not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId} [delete]
func (h *ExportHandler) DeleteExport(c *gin.Context) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return
	}

	if err := h.exportService.DeleteExport(c.Request.Context(), exportID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Export deleted successfully"})
}

// GenerateTemplate godoc
// @Summary      Generate a CSV template
// @Description  Builds a CSV header template from the export lines and returns a presigned download URL
// @Tags         exports
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lang query string false "Label language"
// @Success      200 {object} response.SuccessResponse{data=dto.TemplateResponse} "Template generated"
// @Failure      400 {object} response.ErrorResponse "Export has no lines or a line does not resolve"
// @Failure      404 {object} response.ErrorResponse "Export not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/template [post]
func (h *ExportHandler) GenerateTemplate(c *gin.Context) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return
	}

	template, err := h.templateService.GenerateTemplate(c.Request.Context(), exportID, c.Query("lang"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, template)
}
