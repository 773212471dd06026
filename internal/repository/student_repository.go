package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/galaxia-edu/galaxia-backend/internal/model"
)

var ErrDuplicateEmail = errors.New("student with this email already exists")

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, name, email, password_hash, birth_date, ai_consent, role, active,
	 correct_answers, total_answered, created_at, updated_at`

func scanStudent(row interface{ Scan(dest ...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.BirthDate, &s.AIConsent,
		&s.Role, &s.Active, &s.CorrectAnswers, &s.TotalAnswered, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetByEmail retrieves a student by their unique e-mail.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
}

// ListPaginated retrieves students ordered by name.
func (r *StudentRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Student, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// Create inserts a new student account.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (name, email, password_hash, birth_date, ai_consent, role, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, correct_answers, total_answered, created_at, updated_at`,
		s.Name, s.Email, s.PasswordHash, s.BirthDate, s.AIConsent, s.Role, s.Active,
	).Scan(&s.ID, &s.CorrectAnswers, &s.TotalAnswered, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// SetActive toggles the account on or off.
func (r *StudentRepository) SetActive(ctx context.Context, id int, active bool) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, active, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateEmail changes the account e-mail.
func (r *StudentRepository) UpdateEmail(ctx context.Context, id int, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET email = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, email, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, ErrDuplicateEmail
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateName changes the display name.
func (r *StudentRepository) UpdateName(ctx context.Context, id int, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, name, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetRole promotes or demotes an account.
func (r *StudentRepository) SetRole(ctx context.Context, id int, role model.Role) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET role = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`, role, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a student by ID. Progress rows go with it (FK cascade).
func (r *StudentRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
