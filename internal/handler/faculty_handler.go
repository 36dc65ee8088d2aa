package handler

import (
	"net/http"

	"github.com/academia/malla-api/internal/response"
	"github.com/academia/malla-api/internal/service"
	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	facultyService *service.FacultyService
}

func NewFacultyHandler(facultyService *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

// List godoc
// GET /facultades
func (h *FacultyHandler) List(c *gin.Context) {
	items, err := h.facultyService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /facultades/:codigo
func (h *FacultyHandler) Get(c *gin.Context) {
	f, err := h.facultyService.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Create godoc
// POST /facultades
func (h *FacultyHandler) Create(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	f, err := h.facultyService.Create(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// Update godoc
// PUT /facultades/:codigo
func (h *FacultyHandler) Update(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	f, err := h.facultyService.Update(c.Request.Context(), c.Param("codigo"), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, f)
}

// Delete godoc
// DELETE /facultades/:codigo
func (h *FacultyHandler) Delete(c *gin.Context) {
	res, err := h.facultyService.Delete(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
