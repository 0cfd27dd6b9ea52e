package crew

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"maricheck/internal/applicant/models"
	"maricheck/internal/platform/postgres"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
	txcontext "maricheck/pkg/platform/tx"

	"github.com/lib/pq"
)

const (
	passportConstraint = "crew_members_passport_key"
	tokenConstraint    = "crew_members_profile_token_key"
)

// PostgresStore persists crew members in the crew_members table. Document
// slot columns are derived from the crew slot table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var (
	profileColumns = []string{
		"name", "rank", "passport", "nationality", "date_of_birth", "years_experience",
		"last_vessel_type", "next_available_port", "availability_date", "mobile_number", "email",
		"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship",
	}
	stateColumns = []string{"status", "admin_notes", "screening_notes", "created_at", "updated_at"}

	documentSlots   = slotNames()
	insertColumns   = concat(profileColumns, documentSlots, []string{"profile_token"}, stateColumns)
	selectColumns   = "id, " + strings.Join(insertColumns, ", ")
	updatableFields = concat(profileColumns[:2], profileColumns[3:], documentSlots, []string{"status", "admin_notes", "screening_notes", "updated_at"})
)

func slotNames() []string {
	specs := models.CrewSlots()
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, string(s.Slot))
	}
	return out
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ", ")
}

func (s *PostgresStore) Create(ctx context.Context, member *models.CrewMember) error {
	query := fmt.Sprintf(`INSERT INTO crew_members (%s) VALUES (%s) RETURNING id`,
		strings.Join(insertColumns, ", "), placeholders(1, len(insertColumns)))

	args := concatArgs(profileArgs(member), documentArgs(member.Documents), []any{nullableToken(member.ProfileToken)}, stateArgs(member))
	var newID int64
	err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, query, args...).Scan(&newID)
	if err != nil {
		if postgres.IsUniqueViolation(err, passportConstraint) || postgres.IsUniqueViolation(err, tokenConstraint) {
			return fmt.Errorf("insert crew member: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("insert crew member: %w", err)
	}
	member.ID = id.CrewID(newID)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, crewID id.CrewID) (*models.CrewMember, error) {
	return s.findOne(ctx, "id = $1", int64(crewID))
}

func (s *PostgresStore) FindByPassport(ctx context.Context, passport id.Passport) (*models.CrewMember, error) {
	return s.findOne(ctx, "passport = $1", passport.String())
}

func (s *PostgresStore) FindByProfileToken(ctx context.Context, token string) (*models.CrewMember, error) {
	if token == "" {
		return nil, sentinel.ErrNotFound
	}
	return s.findOne(ctx, "profile_token = $1", token)
}

func (s *PostgresStore) findOne(ctx context.Context, where string, arg any) (*models.CrewMember, error) {
	query := `SELECT ` + selectColumns + ` FROM crew_members WHERE ` + where
	member, err := scanMember(txcontext.Runner(ctx, s.db).QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find crew member: %w", err)
	}
	return member, nil
}

// Update overwrites every mutable column (last writer wins). Passport,
// profile token and created_at are never rewritten.
func (s *PostgresStore) Update(ctx context.Context, member *models.CrewMember) error {
	return s.update(ctx, txcontext.Runner(ctx, s.db), member)
}

func (s *PostgresStore) update(ctx context.Context, q txcontext.Querier, member *models.CrewMember) error {
	sets := make([]string, len(updatableFields))
	for i, col := range updatableFields {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}
	query := `UPDATE crew_members SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	profile := profileArgs(member)
	args := concatArgs(
		[]any{int64(member.ID)},
		profile[:2], profile[3:],
		documentArgs(member.Documents),
		[]any{member.Status.Code(), member.AdminNotes, member.ScreeningNotes, member.UpdatedAt},
	)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update crew member: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update crew member: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Execute locks the row with SELECT ... FOR UPDATE, runs validate then mutate,
// and writes the result in the same transaction. It joins a transaction already
// bound to ctx.
func (s *PostgresStore) Execute(ctx context.Context, crewID id.CrewID, validate func(*models.CrewMember) error, mutate func(*models.CrewMember)) (*models.CrewMember, error) {
	if sqlTx, ok := txcontext.From(ctx); ok {
		return s.execute(ctx, sqlTx, crewID, validate, mutate)
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin crew transaction: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	member, err := s.execute(ctx, sqlTx, crewID, validate, mutate)
	if err != nil {
		return nil, err
	}
	if err := sqlTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit crew transaction: %w", err)
	}
	return member, nil
}

func (s *PostgresStore) execute(ctx context.Context, sqlTx *sql.Tx, crewID id.CrewID, validate func(*models.CrewMember) error, mutate func(*models.CrewMember)) (*models.CrewMember, error) {
	query := `SELECT ` + selectColumns + ` FROM crew_members WHERE id = $1 FOR UPDATE`
	member, err := scanMember(sqlTx.QueryRowContext(ctx, query, int64(crewID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock crew member: %w", err)
	}
	if validate != nil {
		if err := validate(member); err != nil {
			return nil, err
		}
	}
	mutate(member)
	if err := s.update(ctx, sqlTx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetProfileTokenIfEmpty writes token only when profile_token is NULL and
// returns whichever token is on record afterwards.
func (s *PostgresStore) SetProfileTokenIfEmpty(ctx context.Context, crewID id.CrewID, token string) (string, error) {
	q := txcontext.Runner(ctx, s.db)
	var current string
	err := q.QueryRowContext(ctx, `
		UPDATE crew_members SET profile_token = $2
		WHERE id = $1 AND profile_token IS NULL
		RETURNING profile_token
	`, int64(crewID), token).Scan(&current)
	if err == nil {
		return current, nil
	}
	if postgres.IsUniqueViolation(err, tokenConstraint) {
		return "", fmt.Errorf("set profile token: %w", sentinel.ErrAlreadyUsed)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("set profile token: %w", err)
	}

	var existing sql.NullString
	err = q.QueryRowContext(ctx, `SELECT profile_token FROM crew_members WHERE id = $1`, int64(crewID)).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read profile token: %w", err)
	}
	return existing.String, nil
}

// List returns matching members, newest first.
func (s *PostgresStore) List(ctx context.Context, filter models.ListFilter) ([]*models.CrewMember, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + selectColumns + ` FROM crew_members` + where + ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := txcontext.Runner(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list crew members: %w", err)
	}
	defer rows.Close()

	var out []*models.CrewMember
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crew member: %w", err)
		}
		out = append(out, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate crew members: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Count(ctx context.Context, filter models.ListFilter) (int, error) {
	where, args := filterClause(filter)
	var n int
	if err := txcontext.Runner(ctx, s.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM crew_members`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count crew members: %w", err)
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
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR passport ILIKE $%d OR rank ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.CrewMember, error) {
	var (
		m        models.CrewMember
		rawID    int64
		passport string
		status   int
		token    sql.NullString
		docRefs  = make([]string, len(documentSlots))
	)
	dest := []any{
		&rawID,
		&m.Name, &m.Rank, &passport, &m.Nationality, &m.DateOfBirth, &m.YearsExperience,
		&m.LastVesselType, &m.NextAvailablePort, &m.AvailabilityDate, &m.MobileNumber, &m.Email,
		&m.EmergencyContactName, &m.EmergencyContactPhone, &m.EmergencyContactRelationship,
	}
	for i := range docRefs {
		dest = append(dest, &docRefs[i])
	}
	dest = append(dest, &token, &status, &m.AdminNotes, &m.ScreeningNotes, &m.CreatedAt, &m.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	m.ID = id.CrewID(rawID)
	m.Passport = id.Passport(passport)
	m.ProfileToken = token.String
	m.Status = models.CrewStatus(status)
	m.Documents = models.Documents{}
	for i, slot := range documentSlots {
		if docRefs[i] != "" {
			m.Documents[models.Slot(slot)] = docRefs[i]
		}
	}
	m.DateOfBirth = asDate(m.DateOfBirth)
	m.AvailabilityDate = asDate(m.AvailabilityDate)
	return &m, nil
}

func profileArgs(m *models.CrewMember) []any {
	return []any{
		m.Name, m.Rank, m.Passport.String(), m.Nationality, m.DateOfBirth, m.YearsExperience,
		m.LastVesselType, m.NextAvailablePort, m.AvailabilityDate, m.MobileNumber, m.Email,
		m.EmergencyContactName, m.EmergencyContactPhone, m.EmergencyContactRelationship,
	}
}

func documentArgs(docs models.Documents) []any {
	out := make([]any, len(documentSlots))
	for i, slot := range documentSlots {
		out[i] = docs[models.Slot(slot)]
	}
	return out
}

func stateArgs(m *models.CrewMember) []any {
	return []any{m.Status.Code(), m.AdminNotes, m.ScreeningNotes, m.CreatedAt, m.UpdatedAt}
}

func concatArgs(parts ...[]any) []any {
	var out []any
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func nullableToken(token string) sql.NullString {
	return sql.NullString{String: token, Valid: token != ""}
}

func asDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
