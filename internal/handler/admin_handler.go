package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
)

// AdminHandler handles administrative student-account operations.
type AdminHandler struct {
	studentService *service.StudentService
	authService    *service.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(studentService *service.StudentService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		studentService: studentService,
		authService:    authService,
	}
}

// ListStudents godoc
// GET /api/v1/admin/students
func (h *AdminHandler) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	students, pagination, err := h.studentService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, students, pagination)
}

// SetStudentStatus godoc
// PUT /api/v1/admin/students/:id/status
func (h *AdminHandler) SetStudentStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		failStudentUpdate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ativo": *req.Active})
}

// UpdateStudentEmail godoc
// PUT /api/v1/admin/students/:id/email
func (h *AdminHandler) UpdateStudentEmail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateEmailRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.UpdateEmail(c.Request.Context(), id, req.Email); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
			return
		}
		failStudentUpdate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"email": req.Email})
}

// UpdateStudentName godoc
// PUT /api/v1/admin/students/:id/name
func (h *AdminHandler) UpdateStudentName(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateNameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.studentService.UpdateName(c.Request.Context(), id, req.Name); err != nil {
		failStudentUpdate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"nome": req.Name})
}

// DeleteStudent godoc
// DELETE /api/v1/admin/students/:id
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		failStudentUpdate(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"mensagem": "Aluno excluído com sucesso."})
}

// ResetStudentSession godoc
// POST /api/v1/admin/students/:id/reset-session
// Clears a stuck single-device session so the student can log in again.
func (h *AdminHandler) ResetStudentSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.authService.ResetStudentSession(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

func failStudentUpdate(c *gin.Context, err error) {
	if errors.Is(err, service.ErrStudentNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
