package handler

import (
	"net/http"

	"github.com/academia/malla-api/internal/model"
	"github.com/academia/malla-api/internal/response"
	"github.com/academia/malla-api/internal/service"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func courseKey(c *gin.Context) model.CourseKey {
	return model.CourseKey{FacultyCode: c.Param("facultadCodigo"), Code: c.Param("codigo")}
}

// List godoc
// GET /materias
func (h *CourseHandler) List(c *gin.Context) {
	items, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListByFaculty godoc
// GET /materias/facultad/:facultadCodigo
func (h *CourseHandler) ListByFaculty(c *gin.Context) {
	items, err := h.courseService.ListByFaculty(c.Request.Context(), c.Param("facultadCodigo"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /materias/:facultadCodigo/:codigo
func (h *CourseHandler) Get(c *gin.Context) {
	m, err := h.courseService.Get(c.Request.Context(), courseKey(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create godoc
// POST /materias
func (h *CourseHandler) Create(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	m, err := h.courseService.Create(c.Request.Context(), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Update godoc
// PUT /materias/:facultadCodigo/:codigo
func (h *CourseHandler) Update(c *gin.Context) {
	input, ok := bindBody(c)
	if !ok {
		return
	}

	m, err := h.courseService.Update(c.Request.Context(), courseKey(c), input)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Delete godoc
// DELETE /materias/:facultadCodigo/:codigo
func (h *CourseHandler) Delete(c *gin.Context) {
	res, err := h.courseService.Delete(c.Request.Context(), courseKey(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
