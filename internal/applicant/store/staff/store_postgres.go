package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
	txcontext "maricheck/pkg/platform/tx"

	"github.com/lib/pq"
)

const staffColumns = `id, full_name, email_or_whatsapp, position_applying, department, years_experience,
	current_employer, location, availability_date, mobile_number, education, certifications,
	salary_expectation, resume_file, photo_file, status, admin_notes, screening_notes, created_at, updated_at`

// PostgresStore persists staff applicants in the staff_members table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, m *models.StaffMember) error {
	var newID int64
	err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, `
		INSERT INTO staff_members (full_name, email_or_whatsapp, position_applying, department,
			years_experience, current_employer, location, availability_date, mobile_number,
			education, certifications, salary_expectation, resume_file, photo_file,
			status, admin_notes, screening_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`, m.FullName, m.EmailOrWhatsApp, m.PositionApplying, m.Department,
		m.YearsExperience, m.CurrentEmployer, m.Location, m.AvailabilityDate, m.MobileNumber,
		m.Education, m.Certifications, m.SalaryExpectation,
		m.Documents[models.SlotResume], m.Documents[models.SlotPhoto],
		m.Status.Code(), m.AdminNotes, m.ScreeningNotes, m.CreatedAt, m.UpdatedAt,
	).Scan(&newID)
	if err != nil {
		return fmt.Errorf("insert staff member: %w", err)
	}
	m.ID = id.StaffID(newID)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, staffID id.StaffID) (*models.StaffMember, error) {
	row := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff_members WHERE id = $1`, int64(staffID))
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find staff member: %w", err)
	}
	return m, nil
}

func (s *PostgresStore) Update(ctx context.Context, m *models.StaffMember) error {
	return update(ctx, txcontext.Runner(ctx, s.db), m)
}

func update(ctx context.Context, q txcontext.Querier, m *models.StaffMember) error {
	res, err := q.ExecContext(ctx, `
		UPDATE staff_members SET
			full_name = $2, email_or_whatsapp = $3, position_applying = $4, department = $5,
			years_experience = $6, current_employer = $7, location = $8, availability_date = $9,
			mobile_number = $10, education = $11, certifications = $12, salary_expectation = $13,
			resume_file = $14, photo_file = $15, status = $16, admin_notes = $17,
			screening_notes = $18, updated_at = $19
		WHERE id = $1
	`, int64(m.ID), m.FullName, m.EmailOrWhatsApp, m.PositionApplying, m.Department,
		m.YearsExperience, m.CurrentEmployer, m.Location, m.AvailabilityDate,
		m.MobileNumber, m.Education, m.Certifications, m.SalaryExpectation,
		m.Documents[models.SlotResume], m.Documents[models.SlotPhoto],
		m.Status.Code(), m.AdminNotes, m.ScreeningNotes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update staff member: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Execute locks the row, validates, mutates and writes it back in one
// transaction, joining the one bound to ctx if any.
func (s *PostgresStore) Execute(ctx context.Context, staffID id.StaffID, validate func(*models.StaffMember) error, mutate func(*models.StaffMember)) (*models.StaffMember, error) {
	if sqlTx, ok := txcontext.From(ctx); ok {
		return execute(ctx, sqlTx, staffID, validate, mutate)
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin staff transaction: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	m, err := execute(ctx, sqlTx, staffID, validate, mutate)
	if err != nil {
		return nil, err
	}
	if err := sqlTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit staff transaction: %w", err)
	}
	return m, nil
}

func execute(ctx context.Context, sqlTx *sql.Tx, staffID id.StaffID, validate func(*models.StaffMember) error, mutate func(*models.StaffMember)) (*models.StaffMember, error) {
	m, err := scanMember(sqlTx.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff_members WHERE id = $1 FOR UPDATE`, int64(staffID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock staff member: %w", err)
	}
	if validate != nil {
		if err := validate(m); err != nil {
			return nil, err
		}
	}
	mutate(m)
	if err := update(ctx, sqlTx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns matching staff applicants, newest first.
func (s *PostgresStore) List(ctx context.Context, filter models.ListFilter) ([]*models.StaffMember, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + staffColumns + ` FROM staff_members` + where + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := txcontext.Runner(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff members: %w", err)
	}
	defer rows.Close()

	var out []*models.StaffMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff members: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context, filter models.ListFilter) (int, error) {
	where, args := filterClause(filter)
	var n int
	if err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM staff_members`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count staff members: %w", err)
	}
	return n, nil
}

func filterClause(filter models.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if len(filter.Statuses) > 0 {
		codes := make([]int64, len(filter.Statuses))
		for i, c := range filter.Statuses {
			codes[i] = int64(c)
		}
		args = append(args, pq.Array(codes))
		conds = append(conds, fmt.Sprintf("status = ANY($%d::text::int[])", len(args)))
	}
	if term := filter.SearchTerm(); term != "" {
		args = append(args, "%"+strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(full_name ILIKE $%d OR position_applying ILIKE $%d OR department ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.StaffMember, error) {
	var (
		m             models.StaffMember
		rawID         int64
		status        int
		resume, photo string
	)
	err := row.Scan(&rawID, &m.FullName, &m.EmailOrWhatsApp, &m.PositionApplying, &m.Department,
		&m.YearsExperience, &m.CurrentEmployer, &m.Location, &m.AvailabilityDate, &m.MobileNumber,
		&m.Education, &m.Certifications, &m.SalaryExpectation, &resume, &photo,
		&status, &m.AdminNotes, &m.ScreeningNotes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.ID = id.StaffID(rawID)
	m.Status = models.StaffStatus(status)
	m.AvailabilityDate = time.Date(m.AvailabilityDate.Year(), m.AvailabilityDate.Month(), m.AvailabilityDate.Day(), 0, 0, 0, 0, time.UTC)
	m.Documents = models.Documents{}
	if resume != "" {
		m.Documents[models.SlotResume] = resume
	}
	if photo != "" {
		m.Documents[models.SlotPhoto] = photo
	}
	return &m, nil
}
