package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/findvisor/internal/models"
)

// Record stores one executed command line.
func (db *DB) Record(r models.CommandRecord) error {
	if r.ExecutedAt.IsZero() {
		r.ExecutedAt = time.Now()
	}
	_, err := db.conn.Exec(`
		INSERT INTO commands (session, line, result, ok, executed_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.Session, r.Line, r.Result, r.OK, r.ExecutedAt.UTC())
	if err != nil {
		return fmt.Errorf("history: record: %w", err)
	}
	return nil
}

// Recent returns up to limit commands, newest first.
func (db *DB) Recent(limit int) ([]models.CommandRecord, error) {
	return db.query(`
		SELECT session, line, result, ok, executed_at FROM commands
		ORDER BY executed_at DESC, id DESC LIMIT ?
	`, limit)
}

// Search returns up to limit commands whose line contains keyword,
// ignoring ASCII case, newest first. A blank keyword behaves like Recent.
func (db *DB) Search(keyword string, limit int) ([]models.CommandRecord, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return db.Recent(limit)
	}
	return db.query(`
		SELECT session, line, result, ok, executed_at FROM commands
		WHERE line LIKE ? ESCAPE '\'
		ORDER BY executed_at DESC, id DESC LIMIT ?
	`, "%"+escapeLike(keyword)+"%", limit)
}

// Count returns the number of stored commands.
func (db *DB) Count() (int, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT count(*) FROM commands`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}

func (db *DB) query(q string, args ...any) ([]models.CommandRecord, error) {
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []models.CommandRecord
	for rows.Next() {
		var r models.CommandRecord
		if err := rows.Scan(&r.Session, &r.Line, &r.Result, &r.OK, &r.ExecutedAt); err != nil {
			return nil, err
		}
		r.ExecutedAt = r.ExecutedAt.Local()
		out = append(out, r)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
