package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"export-manager-api/internal/dto"
	"export-manager-api/internal/response"
	"export-manager-api/internal/service"
)

type ExportLineHandler struct {
	lineService service.ExportLineService
}

func NewExportLineHandler(lineService service.ExportLineService) *ExportLineHandler {
	return &ExportLineHandler{
		lineService: lineService,
	}
}

// CreateLine godoc
// @Summary      Create an export line
// @Description  Creates a line from either a dotted path name or discrete field selectors
// @Tags         export-lines
// @Accept       json
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lang query string false "Label language"
// @Param        request body dto.CreateExportLineRequest true "Line creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.ExportLineResponse} "Line created"
// @Failure      400 {object} response.ErrorResponse "Invalid request or unresolvable path"
// @Failure      404 {object} response.ErrorResponse "Export not found"
// @Failure      409 {object} response.ErrorResponse "Duplicate line name"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/lines [post]
func (h *ExportLineHandler) CreateLine(c *gin.Context) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return
	}

	var req dto.CreateExportLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	line, err := h.lineService.CreateLine(c.Request.Context(), exportID, &req, c.Query("lang"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, line)
}

// GetLine godoc
// @Summary      Get an export line
// @Description  Returns a single export line with its resolved field chain
// @Tags         export-lines
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lineId path string true "Line ID"
// @Param        lang query string false "Label language"
// @Success      200 {object} response.SuccessResponse{data=dto.ExportLineResponse} "Line detail"
// @Failure      400 {object} response.ErrorResponse "Invalid ID format"
// @Failure      404 {object} response.ErrorResponse "Export or line not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/lines/{lineId} [get]
func (h *ExportLineHandler) GetLine(c *gin.Context) {
	exportID, lineID, ok := parseLineIDs(c)
	if !ok {
		return
	}

	line, err := h.lineService.GetLine(c.Request.Context(), exportID, lineID, c.Query("lang"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, line)
}

// ListLines godoc
// @Summary      List export lines
// @Description  Lists all lines of an export in sequence order
// @Tags         export-lines
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lang query string false "Label language"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ExportLineResponse} "Line list"
// @Failure      400 {object} response.ErrorResponse "Invalid export ID"
// @Failure      404 {object} response.ErrorResponse "Export not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/lines [get]
func (h *ExportLineHandler) ListLines(c *gin.Context) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return
	}

	lines, err := h.lineService.ListLines(c.Request.Context(), exportID, c.Query("lang"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lines)
}

// UpdateLine godoc
// @Summary      Update an export line
// @Description  Updates a line; a name in the body wins over field selectors
// @Tags         export-lines
// @Accept       json
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lineId path string true "Line ID"
// @Param        lang query string false "Label language"
// @Param        request body dto.UpdateExportLineRequest true "Line update request"
// @Success      200 {object} response.SuccessResponse{data=dto.ExportLineResponse} "Line updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request or unresolvable path"
// @Failure      404 {object} response.ErrorResponse "Export or line not found"
// @Failure      409 {object} response.ErrorResponse "Duplicate line name"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/lines/{lineId} [patch]
func (h *ExportLineHandler) UpdateLine(c *gin.Context) {
	exportID, lineID, ok := parseLineIDs(c)
	if !ok {
		return
	}

	var req dto.UpdateExportLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	line, err := h.lineService.UpdateLine(c.Request.Context(), exportID, lineID, &req, c.Query("lang"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, line)
}

// DeleteLine godoc
// @Summary      Delete an export line
// @Description  Deletes a single line from an export
// @Tags         export-lines
// @Produce      json
// @Param        exportId path string true "Export ID"
// @Param        lineId path string true "Line ID"
// @Success      200 {object} response.SuccessResponse "Line deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid ID format"
// @Failure      404 {object} response.ErrorResponse "Export or line not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /{exportId}/lines/{lineId} [delete]
func (h *ExportLineHandler) DeleteLine(c *gin.Context) {
	exportID, lineID, ok := parseLineIDs(c)
	if !ok {
		return
	}

	if err := h.lineService.DeleteLine(c.Request.Context(), exportID, lineID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Line deleted successfully"})
}

func parseLineIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	exportID, err := uuid.Parse(c.Param("exportId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid export ID format")
		return uuid.Nil, uuid.Nil, false
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid line ID format")
		return uuid.Nil, uuid.Nil, false
	}

	return exportID, lineID, true
}
