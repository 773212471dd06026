package model

import "time"

// Role represents the student account role.
type Role string

const (
	RoleStudent Role = "usuario"
	RoleAdmin   Role = "admin"
)

// Student represents a student account.
type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"nome"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	BirthDate      string    `json:"datanasc"`
	AIConsent      bool      `json:"ia_consentimento"`
	Role           Role      `json:"cargo"`
	Active         bool      `json:"ativo"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalAnswered  int       `json:"total_questions_answered"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for student registration.
type RegisterRequest struct {
	Name      string `json:"nome" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"senha" binding:"required,min=6,max=128"`
	BirthDate string `json:"data_nasc" binding:"required"`
	AIConsent *bool  `json:"ia_consentimento" binding:"required"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=1,max=128"`
}

// UpdateStatusRequest toggles a student account on or off.
type UpdateStatusRequest struct {
	Active *bool `json:"ativo" binding:"required"`
}

// UpdateEmailRequest changes a student's e-mail address.
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateNameRequest changes a student's display name.
type UpdateNameRequest struct {
	Name string `json:"nome" binding:"required,min=1,max=100"`
}
