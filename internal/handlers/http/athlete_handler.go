package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// AthleteHandler lida com requisições HTTP relacionadas a atletas
type AthleteHandler struct {
	athleteService *services.AthleteService
	logger         ports.Logger
}

// NewAthleteHandler cria um novo AthleteHandler
func NewAthleteHandler(athleteService *services.AthleteService, logger ports.Logger) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
		logger:         logger,
	}
}

// CreateAthlete cria um novo atleta
//
//	@Summary	Criar um novo atleta
//	@Tags		atletas
//	@Accept		json
//	@Produce	json
//	@Param		atleta	body		dto.CreateAthleteRequest	true	"Atleta"
//	@Success	201		{object}	dto.AthleteResponse
//	@Failure	303		{object}	dto.ErrorResponse	"CPF ou nome já cadastrado"
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/atletas [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req dto.CreateAthleteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.BindingErrorResponseI18n(c, err))
		return
	}

	athlete, err := h.athleteService.CreateAthlete(c.Request.Context(), req.ToCreateAthleteInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAthleteResponse(athlete))
}

// ListAthletes lista atletas na projeção resumida
//
//	@Summary	Consultar todos os atletas
//	@Tags		atletas
//	@Produce	json
//	@Param		nome	query	string	false	"Filtrar por nome do atleta"
//	@Param		cpf		query	string	false	"Filtrar por CPF do atleta"
//	@Success	200		{array}	dto.AthleteSummaryResponse
//	@Router		/atletas [get]
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	var query dto.AthleteFilterQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		dto.Respond(c, dto.BindingErrorResponseI18n(c, err))
		return
	}

	athletes, err := h.athleteService.ListAthletes(c.Request.Context(), repositories.AthleteFilters{
		Name: query.Name,
		CPF:  query.CPF,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteSummaryResponses(athletes))
}

// GetAthlete busca um atleta por ID
//
//	@Summary	Consulta um atleta pelo id
//	@Tags		atletas
//	@Produce	json
//	@Param		id	path		string	true	"ID do atleta"	format(uuid)
//	@Success	200	{object}	dto.AthleteResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/atletas/{id} [get]
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	athlete, err := h.athleteService.GetAthlete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// UpdateAthlete atualiza parcialmente um atleta
//
//	@Summary	Editar um atleta pelo id
//	@Tags		atletas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"ID do atleta"	format(uuid)
//	@Param		atleta	body		dto.UpdateAthleteRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.AthleteResponse
//	@Failure	303		{object}	dto.ErrorResponse	"CPF ou nome já cadastrado"
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/atletas/{id} [patch]
func (h *AthleteHandler) UpdateAthlete(c *gin.Context) {
	var req dto.UpdateAthleteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.BindingErrorResponseI18n(c, err))
		return
	}

	athlete, err := h.athleteService.UpdateAthlete(c.Request.Context(), c.Param("id"), req.ToUpdateAthleteInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// DeleteAthlete remove um atleta
//
//	@Summary	Deletar um atleta pelo id
//	@Tags		atletas
//	@Param		id	path	string	true	"ID do atleta"	format(uuid)
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/atletas/{id} [delete]
func (h *AthleteHandler) DeleteAthlete(c *gin.Context) {
	if err := h.athleteService.DeleteAthlete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
