package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// TrainingCenterHandler lida com requisições HTTP relacionadas a centros de treinamento
type TrainingCenterHandler struct {
	trainingCenterService *services.TrainingCenterService
	logger                ports.Logger
}

// NewTrainingCenterHandler cria um novo TrainingCenterHandler
func NewTrainingCenterHandler(trainingCenterService *services.TrainingCenterService, logger ports.Logger) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		trainingCenterService: trainingCenterService,
		logger:                logger,
	}
}

// CreateTrainingCenter cria um novo centro de treinamento
//
//	@Summary	Criar um novo centro de treinamento
//	@Tags		centros_treinamento
//	@Accept		json
//	@Produce	json
//	@Param		centro_treinamento	body		dto.CreateTrainingCenterRequest	true	"Centro de treinamento"
//	@Success	201					{object}	dto.TrainingCenterResponse
//	@Failure	303					{object}	dto.ErrorResponse	"Nome já cadastrado"
//	@Failure	400					{object}	dto.ErrorResponse
//	@Router		/centros_treinamento [post]
func (h *TrainingCenterHandler) CreateTrainingCenter(c *gin.Context) {
	var req dto.CreateTrainingCenterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.BindingErrorResponseI18n(c, err))
		return
	}

	trainingCenter, err := h.trainingCenterService.CreateTrainingCenter(c.Request.Context(), req.ToCreateTrainingCenterInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainingCenterResponse(trainingCenter))
}

// ListTrainingCenters lista todos os centros de treinamento
//
//	@Summary	Consultar todos os centros de treinamento
//	@Tags		centros_treinamento
//	@Produce	json
//	@Success	200	{array}	dto.TrainingCenterResponse
//	@Router		/centros_treinamento [get]
func (h *TrainingCenterHandler) ListTrainingCenters(c *gin.Context) {
	centers, err := h.trainingCenterService.ListTrainingCenters(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainingCenterResponses(centers))
}

// GetTrainingCenter busca um centro de treinamento por ID
//
//	@Summary	Consulta um centro de treinamento pelo id
//	@Tags		centros_treinamento
//	@Produce	json
//	@Param		id	path		string	true	"ID do centro de treinamento"	format(uuid)
//	@Success	200	{object}	dto.TrainingCenterResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/centros_treinamento/{id} [get]
func (h *TrainingCenterHandler) GetTrainingCenter(c *gin.Context) {
	trainingCenter, err := h.trainingCenterService.GetTrainingCenter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainingCenterResponse(trainingCenter))
}
