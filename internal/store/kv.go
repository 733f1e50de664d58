package store

import (
	"database/sql"
	"errors"
)

// kv provides string get/set/delete over the kv table.
type kv struct {
	db *sql.DB
}

// get returns the value for key, or ("", false) when absent or on any
// storage error. Storage trouble reads as absence on purpose: the
// contracts built on top of kv degrade rather than fail.
func (s kv) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			warnf("read %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

func (s kv) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s kv) delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
