package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/ports"
)

// SQLiteStore keeps stored commands in a private in-memory SQLite database.
// The database lives exactly as long as the store.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens a fresh in-memory database.
func NewSQLiteStore() (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS commands (
		name TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		directory TEXT NOT NULL DEFAULT ''
	);`)
	return err
}

// Get returns the entry stored under name.
func (s *SQLiteStore) Get(name string) (domain.StoredCommand, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd := domain.StoredCommand{Name: name}
	err := s.db.QueryRow(`SELECT command, notes, directory FROM commands WHERE name = ?`, name).
		Scan(&cmd.Command, &cmd.Notes, &cmd.Directory)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.StoredCommand{}, false, nil
	}
	if err != nil {
		return domain.StoredCommand{}, false, err
	}
	return cmd, true, nil
}

// Put inserts or fully replaces the entry.
func (s *SQLiteStore) Put(cmd domain.StoredCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR REPLACE INTO commands (name, command, notes, directory) VALUES (?, ?, ?, ?)`,
		cmd.Name, cmd.Command, cmd.Notes, cmd.Directory)
	return err
}

// Delete removes name and reports whether it existed.
func (s *SQLiteStore) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec(`DELETE FROM commands WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Names lists entry names ordered bytewise, matching sort.Strings.
func (s *SQLiteStore) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT name FROM commands ORDER BY name COLLATE BINARY`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the database; its contents are gone afterwards.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.CommandRegistry = (*SQLiteStore)(nil)
