package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/hetulpatel/socialnetwork/internal/models"
)

const (
	defaultPath = "data/social_network.db"
)

// ErrInvalidPerson is returned when a person is missing a required field.
var ErrInvalidPerson = errors.New("invalid person")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database.
func Open(path string) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer, one connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	return &Store{path: path, db: db}, nil
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const peopleSchemaSQL = `
CREATE TABLE IF NOT EXISTS people (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	address TEXT NOT NULL,
	city TEXT NOT NULL,
	province TEXT NOT NULL,
	bio TEXT,
	age INTEGER,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// CreateTables ensures the people table exists.
func (s *Store) CreateTables(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, peopleSchemaSQL); err != nil {
		return fmt.Errorf("create people table: %w", err)
	}
	return nil
}

// DropTables removes the people table.
func (s *Store) DropTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS people;`)
	return err
}

// ClearTables deletes every row of the people table.
func (s *Store) ClearTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM people;`)
	return err
}

// TableExists reports whether a table with the given name is present.
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return n > 0, nil
}

const insertPersonSQL = `
INSERT INTO people (
	name, email, address, city, province, bio, age, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// InsertPeople stores people in a single transaction. Any failure rolls
// back the whole batch. Zero timestamps are filled with the current time.
func (s *Store) InsertPeople(ctx context.Context, people []models.Person) error {
	if len(people) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertPersonSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range people {
		if err := s.execInsert(ctx, stmt, p); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert person %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) execInsert(ctx context.Context, stmt *sql.Stmt, p models.Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}
	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = created
	}

	var age sql.NullInt64
	if p.Age != nil {
		age = sql.NullInt64{Int64: int64(*p.Age), Valid: true}
	}
	bio := sql.NullString{String: p.Bio, Valid: p.Bio != ""}

	_, err := stmt.ExecContext(
		ctx,
		p.Name,
		p.Email,
		p.Address,
		p.City,
		p.Province,
		bio,
		age,
		formatTime(created),
		formatTime(updated),
	)
	return err
}

func validatePerson(p models.Person) error {
	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"address", p.Address},
		{"city", p.City},
		{"province", p.Province},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidPerson, r.field)
		}
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("%w: age %d is negative", ErrInvalidPerson, *p.Age)
	}
	return nil
}

// PeopleAtLeastAge returns (name, age) for everyone aged minAge or older,
// ordered by id. People without an age never match.
func (s *Store) PeopleAtLeastAge(ctx context.Context, minAge int) ([]models.NameAge, error) {
	query, args, err := psql.Select("name", "age").
		From("people").
		Where(sq.GtOrEq{"age": minAge}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build age query: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select people: %w", err)
	}
	defer rows.Close()

	out := []models.NameAge{}
	for rows.Next() {
		var r models.NameAge
		if err := rows.Scan(&r.Name, &r.Age); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPeople returns every person ordered by id.
func (s *Store) ListPeople(ctx context.Context) ([]models.Person, error) {
	query, args, err := psql.Select(
		"id", "name", "email", "address", "city", "province",
		"bio", "age", "created_at", "updated_at",
	).From("people").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var (
			p                models.Person
			bio              sql.NullString
			age              sql.NullInt64
			created, updated any
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Address, &p.City, &p.Province,
			&bio, &age, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p.Bio = bio.String
		if age.Valid {
			v := int(age.Int64)
			p.Age = &v
		}
		if p.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("person %d created_at: %w", p.ID, err)
		}
		if p.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, fmt.Errorf("person %d updated_at: %w", p.ID, err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return people, nil
}

// CountPeople returns the number of rows in the people table.
func (s *Store) CountPeople(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime accepts the driver's decoded time.Time or the raw stored text.
func parseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTimeText(t)
	case []byte:
		return parseTimeText(string(t))
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected time type %T", v)
	}
}

func parseTimeText(s string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05.999999"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
