package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/services"
)

// CategoryHandler lida com requisições HTTP relacionadas a categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
	logger          ports.Logger
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService, logger ports.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategory cria uma nova categoria
//
//	@Summary	Criar uma nova categoria
//	@Tags		categorias
//	@Accept		json
//	@Produce	json
//	@Param		categoria	body		dto.CreateCategoryRequest	true	"Categoria"
//	@Success	201			{object}	dto.CategoryResponse
//	@Failure	303			{object}	dto.ErrorResponse	"Nome já cadastrado"
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/categorias [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Respond(c, dto.BindingErrorResponseI18n(c, err))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// ListCategories lista todas as categorias
//
//	@Summary	Consultar todas as categorias
//	@Tags		categorias
//	@Produce	json
//	@Success	200	{array}	dto.CategoryResponse
//	@Router		/categorias [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// GetCategory busca uma categoria por ID
//
//	@Summary	Consulta uma categoria pelo id
//	@Tags		categorias
//	@Produce	json
//	@Param		id	path		string	true	"ID da categoria"	format(uuid)
//	@Success	200	{object}	dto.CategoryResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/categorias/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}
