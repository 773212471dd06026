package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galaxia-edu/galaxia-backend/internal/middleware"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
	"github.com/galaxia-edu/galaxia-backend/internal/service"
	"github.com/galaxia-edu/galaxia-backend/internal/validator"
)

// AuthHandler handles registration and authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, studentService *service.StudentService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		studentService: studentService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a student account with default progress state.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), &req, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"mensagem": "Sucesso!! Aluno cadastrado!",
		"aluno": gin.H{
			"id":    student.ID,
			"nome":  student.Name,
			"email": student.Email,
		},
	})
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password and returns a JWT with the role claim.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(student.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if !student.Active {
		response.Fail(c, http.StatusForbidden, response.ErrAccountDisabled)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), student)
	if err != nil {
		if errors.Is(err, service.ErrSessionAlreadyActive) {
			response.Fail(c, http.StatusConflict, response.ErrSessionActive)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"cargo": student.Role,
		"aluno": gin.H{
			"id":    student.ID,
			"nome":  student.Name,
			"email": student.Email,
		},
	})
}

// GetProfile godoc
// GET /api/v1/auth/me
// Returns the authenticated student's full profile: account data plus game
// and topic progress.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	profile, err := h.studentService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			// Valid token, but the account was removed in the meantime.
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// TokenInfo godoc
// GET /api/v1/auth/token-info
// Echoes the identity embedded in a valid token.
func (h *AuthHandler) TokenInfo(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"identity": claims.Email,
		"cargo":    claims.Role,
	})
}

// Logout godoc
// POST /api/v1/auth/logout
// Releases the student's single-device session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.ResetStudentSession(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
