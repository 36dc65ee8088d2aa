package handler

import (
	"net/http"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/response"
	"github.com/academia/malla-api/internal/service"
	"github.com/gin-gonic/gin"
)

type CurriculumHandler struct {
	curriculumService *service.CurriculumService
}

func NewCurriculumHandler(curriculumService *service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

// curriculumKey reads the four key segments. A non-numeric promo has
// already been answered with 400 when ok is false.
func curriculumKey(c *gin.Context) (model.CurriculumKey, bool) {
	key, err := service.ParseCurriculumKey(
		c.Param("facultadCodigo"),
		c.Param("carreraCodigo"),
		c.Param("promo"),
		c.Param("materiaCodigo"),
	)
	if err != nil {
		response.Fail(c, err)
		return key, false
	}
	return key, true
}

// List godoc
// GET /malla
func (h *CurriculumHandler) List(c *gin.Context) {
	items, err := h.curriculumService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListByMajor godoc
// GET /malla/facultad/:facultadCodigo/carrera/:carreraCodigo
func (h *CurriculumHandler) ListByMajor(c *gin.Context) {
	items, err := h.curriculumService.ListByMajor(c.Request.Context(), c.Param("facultadCodigo"), c.Param("carreraCodigo"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListByMajorPromo godoc
// GET /malla/facultad/:facultadCodigo/carrera/:carreraCodigo/promo/:promo
func (h *CurriculumHandler) ListByMajorPromo(c *gin.Context) {
	items, err := h.curriculumService.ListByMajorPromo(
		c.Request.Context(),
		c.Param("facultadCodigo"),
		c.Param("carreraCodigo"),
		c.Param("promo"),
	)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /malla/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo
func (h *CurriculumHandler) Get(c *gin.Context) {
	key, ok := curriculumKey(c)
	if !ok {
		return
	}

	e, err := h.curriculumService.Get(c.Request.Context(), key)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// Create godoc
// POST /malla
func (h *CurriculumHandler) Create(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	e, err := h.curriculumService.Create(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, e)
}

// Update godoc
// PUT /malla/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo
func (h *CurriculumHandler) Update(c *gin.Context) {
	key, ok := curriculumKey(c)
	if !ok {
		return
	}
	input, ok := bindBody(c)
	if !ok {
		return
	}

	e, err := h.curriculumService.Update(c.Request.Context(), key, input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, e)
}

// Delete godoc
// DELETE /malla/:facultadCodigo/:carreraCodigo/:promo/:materiaCodigo
func (h *CurriculumHandler) Delete(c *gin.Context) {
	key, ok := curriculumKey(c)
	if !ok {
		return
	}

	res, err := h.curriculumService.Delete(c.Request.Context(), key)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
