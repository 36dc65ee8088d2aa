package handler

import (
	"net/http"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/response"
	"github.com/academia/malla-api/internal/service"
	"github.com/gin-gonic/gin"
)

type MajorHandler struct {
	majorService *service.MajorService
}

func NewMajorHandler(majorService *service.MajorService) *MajorHandler {
	return &MajorHandler{majorService: majorService}
}

func majorKey(c *gin.Context) model.MajorKey {
	return model.MajorKey{FacultyCode: c.Param("facultadCodigo"), Code: c.Param("codigo")}
}

// List godoc
// GET /carreras
func (h *MajorHandler) List(c *gin.Context) {
	items, err := h.majorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListByFaculty godoc
// GET /carreras/facultad/:facultadCodigo
func (h *MajorHandler) ListByFaculty(c *gin.Context) {
	items, err := h.majorService.ListByFaculty(c.Request.Context(), c.Param("facultadCodigo"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /carreras/:facultadCodigo/:codigo
func (h *MajorHandler) Get(c *gin.Context) {
	m, err := h.majorService.Get(c.Request.Context(), majorKey(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create godoc
// POST /carreras
func (h *MajorHandler) Create(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	m, err := h.majorService.Create(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Update godoc
// PUT /carreras/:facultadCodigo/:codigo
func (h *MajorHandler) Update(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	m, err := h.majorService.Update(c.Request.Context(), majorKey(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Delete godoc
// DELETE /carreras/:facultadCodigo/:codigo
func (h *MajorHandler) Delete(c *gin.Context) {
	res, err := h.majorService.Delete(c.Request.Context(), majorKey(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
