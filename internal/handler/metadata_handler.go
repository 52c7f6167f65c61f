package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"export-manager-api/internal/dto"
	"export-manager-api/internal/response"
	"export-manager-api/internal/service"
)

type MetadataHandler struct {
	metadataService service.MetadataService
}

func NewMetadataHandler(metadataService service.MetadataService) *MetadataHandler {
	return &MetadataHandler{
		metadataService: metadataService,
	}
}

// RegisterModel godoc
// @Summary      Register a model in the catalog
// @Description  Registers a new exportable model by its technical name
// @Tags         metadata
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterModelRequest true "Model registration request"
// @Success      201 {object} response.SuccessResponse{data=dto.ModelMetaResponse} "Model registered"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Model already registered"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /models [post]
func (h *MetadataHandler) RegisterModel(c *gin.Context) {
	var req dto.RegisterModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	model, err := h.metadataService.RegisterModel(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, model)
}

// ListModels godoc
// @Summary      List catalog models
// @Description  Lists all registered exportable models
// @Tags         metadata
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.ModelMetaResponse} "Model list"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /models [get]
func (h *MetadataHandler) ListModels(c *gin.Context) {
	models, err := h.metadataService.ListModels(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, models)
}

// RegisterField godoc
// @Summary      Register a field on a model
// @Description  Registers a new field with its type, relation target and translated descriptions
// @Tags         metadata
// @Accept       json
// @Produce      json
// @Param        model path string true "Technical model name"
// @Param        request body dto.RegisterFieldRequest true "Field registration request"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldMetaResponse} "Field registered"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Model not registered"
// @Failure      409 {object} response.ErrorResponse "Field already exists"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /models/{model}/fields [post]
func (h *MetadataHandler) RegisterField(c *gin.Context) {
	modelName := c.Param("model")
	if modelName == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "model path parameter is required")
		return
	}

	var req dto.RegisterFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.metadataService.RegisterField(c.Request.Context(), modelName, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, field)
}

// ListFields godoc
// @Summary      List fields of a model
// @Description  Lists all fields registered on a catalog model
// @Tags         metadata
// @Produce      json
// @Param        model path string true "Technical model name"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldMetaResponse} "Field list"
// @Failure      404 {object} response.ErrorResponse "Model not registered"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /models/{model}/fields [get]
func (h *MetadataHandler) ListFields(c *gin.Context) {
	modelName := c.Param("model")
	if modelName == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "model path parameter is required")
		return
	}

	fields, err := h.metadataService.ListFields(c.Request.Context(), modelName)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, fields)
}
