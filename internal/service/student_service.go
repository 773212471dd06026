package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
	"github.com/galaxia-edu/galaxia-backend/internal/response"
)

// ErrStudentNotFound is returned when no account matches the identifier.
var ErrStudentNotFound = errors.New("student not found")

// StudentService handles account business logic.
type StudentService struct {
	studentRepo  *repository.StudentRepository
	progressRepo *repository.ProgressRepository
	log          zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, progressRepo *repository.ProgressRepository, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		progressRepo: progressRepo,
		log:          log.With().Str("component", "student_service").Logger(),
	}
}

// Register creates a student account with default progress state: level 1
// on every track, zeroed topic accuracy. The password arrives pre-hashed.
func (s *StudentService) Register(ctx context.Context, req *model.RegisterRequest, passwordHash string) (*model.Student, error) {
	student := &model.Student{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		BirthDate:    req.BirthDate,
		AIConsent:    *req.AIConsent,
		Role:         model.RoleStudent,
		Active:       true,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	if err := s.progressRepo.InitDefaults(ctx, student.ID); err != nil {
		// Account exists but progress rows failed; surface the error so the
		// client retries instead of starting with a half-initialized state.
		s.log.Error().Err(err).Int("student_id", student.ID).Msg("progress init failed")
		return nil, err
	}

	return student, nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	return student, err
}

// GetByEmail retrieves a student by e-mail.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStudentNotFound
	}
	return student, err
}

// Profile bundles the account with its game and topic progress, the full
// picture the profile screen renders.
type Profile struct {
	Student *model.Student        `json:"aluno"`
	Games   map[string]*model.GameProgress `json:"processo"`
	Topics  []model.TopicProgress `json:"progresso_topicos"`
}

// GetProfile assembles a student's profile.
func (s *StudentService) GetProfile(ctx context.Context, id int) (*Profile, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	games := map[string]*model.GameProgress{}
	for _, game := range []string{"via_lactea", "andromeda"} {
		p, err := s.progressRepo.GetGame(ctx, id, game)
		if errors.Is(err, pgx.ErrNoRows) {
			continue // legacy accounts may predate a track
		}
		if err != nil {
			return nil, err
		}
		games[game] = p
	}

	topics, err := s.progressRepo.ListTopics(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{Student: student, Games: games, Topics: topics}, nil
}

// List retrieves students with pagination.
func (s *StudentService) List(ctx context.Context, page, perPage int) ([]model.Student, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	students, total, err := s.studentRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if students == nil {
		students = []model.Student{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return students, pagination, nil
}

// SetActive toggles an account.
func (s *StudentService) SetActive(ctx context.Context, id int, active bool) error {
	found, err := s.studentRepo.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}

// UpdateEmail changes an account's e-mail.
func (s *StudentService) UpdateEmail(ctx context.Context, id int, email string) error {
	found, err := s.studentRepo.UpdateEmail(ctx, id, email)
	if err != nil {
		return err
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}

// UpdateName changes an account's display name.
func (s *StudentService) UpdateName(ctx context.Context, id int, name string) error {
	found, err := s.studentRepo.UpdateName(ctx, id, name)
	if err != nil {
		return err
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes an account and its progress.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	found, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}
