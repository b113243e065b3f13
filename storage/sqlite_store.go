package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"guestlist/guest"
)

type SQLiteStore struct {
	db *sql.DB
}

var ErrGuestNotFound = errors.New("guest not found")

const (
	// SettingTitle holds the event name shown in the UI and used to name
	// exported reports.
	SettingTitle = "title"
)

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS guests (
	id TEXT PRIMARY KEY,
	invite_name TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	group_name TEXT NOT NULL,
	accommodation TEXT NOT NULL DEFAULT '',
	age_group TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	friday TEXT NOT NULL DEFAULT '',
	arrived INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := s.ensureArrivedColumn(); err != nil {
		return err
	}

	return nil
}

// ensureArrivedColumn upgrades databases created before the arrival toggle
// existed.
func (s *SQLiteStore) ensureArrivedColumn() error {
	rows, err := s.db.Query(`PRAGMA table_info(guests);`)
	if err != nil {
		return fmt.Errorf("query table info: %w", err)
	}
	defer rows.Close()

	hasArrived := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scan table info: %w", err)
		}
		if strings.EqualFold(name, "arrived") {
			hasArrived = true
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate table info: %w", err)
	}

	if hasArrived {
		return nil
	}

	if _, err := s.db.Exec(`ALTER TABLE guests ADD COLUMN arrived INTEGER NOT NULL DEFAULT 0;`); err != nil {
		return fmt.Errorf("add arrived column: %w", err)
	}

	return nil
}

// ReplaceGuests atomically swaps the stored collection for the given one,
// preserving slice order. Import merges call this with the full merged
// collection so a failed write never leaves a partial state behind.
func (s *SQLiteStore) ReplaceGuests(guests []guest.Guest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM guests;`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear guests: %w", err)
	}

	const insertStmt = `
INSERT INTO guests (
	id,
	invite_name,
	name,
	phone,
	group_name,
	accommodation,
	age_group,
	status,
	friday,
	arrived,
	position
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for position, g := range guests {
		if _, err := stmt.Exec(
			g.ID,
			g.InviteName,
			g.Name,
			g.Phone,
			string(g.Group),
			g.Accommodation,
			string(g.AgeGroup),
			string(g.Status),
			string(g.Friday),
			boolToInt(g.Arrived),
			position,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert guest %s: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (s *SQLiteStore) ListGuests() ([]guest.Guest, error) {
	rows, err := s.db.Query(`
SELECT id, invite_name, name, phone, group_name, accommodation, age_group, status, friday, arrived
FROM guests
ORDER BY position, created_at, id;`)
	if err != nil {
		return nil, fmt.Errorf("query guests: %w", err)
	}
	defer rows.Close()

	guests := make([]guest.Guest, 0, 128)
	for rows.Next() {
		var (
			g       guest.Guest
			arrived int
		)
		var groupName, ageGroup, status, friday string
		if err := rows.Scan(
			&g.ID,
			&g.InviteName,
			&g.Name,
			&g.Phone,
			&groupName,
			&g.Accommodation,
			&ageGroup,
			&status,
			&friday,
			&arrived,
		); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		g.Group = guest.Group(groupName)
		g.AgeGroup = guest.AgeGroup(ageGroup)
		g.Status = guest.Status(status)
		g.Friday = guest.Friday(friday)
		g.Arrived = arrived != 0
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate guests: %w", err)
	}

	return guests, nil
}

// SetArrived flips the venue arrival toggle for one guest.
func (s *SQLiteStore) SetArrived(id string, arrived bool) error {
	result, err := s.db.Exec(`UPDATE guests SET arrived = ? WHERE id = ?;`, boolToInt(arrived), id)
	if err != nil {
		return fmt.Errorf("update arrived flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("count affected rows: %w", err)
	}
	if affected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// SetSetting upserts one key/value pair. The pipeline treats this as an
// opaque sink; failures do not roll back an in-memory merge.
func (s *SQLiteStore) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
INSERT INTO settings (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetSetting returns the stored value for key, or "" when unset.
func (s *SQLiteStore) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
