package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var schema = map[string][]string{
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS celstep_history (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			session  TEXT    NOT NULL,
			source   TEXT    NOT NULL,
			saved_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS celstep_history_session ON celstep_history (session, id)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS celstep_history (
			id       BIGINT      NOT NULL AUTO_INCREMENT PRIMARY KEY,
			session  VARCHAR(64) NOT NULL,
			source   MEDIUMTEXT  NOT NULL,
			saved_at BIGINT      NOT NULL,
			INDEX celstep_history_session (session, id)
		)`,
	},
}

// SQLStore keeps history in a SQL database through database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// OpenSQL opens dsn with the named driver and creates the history table if
// needed.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	ddl, ok := schema[driver]
	if !ok {
		return nil, fmt.Errorf("history: unsupported sql driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: create schema: %w", err)
		}
	}
	log.Infof("history: using %s store", driver)
	return &SQLStore{db: db, driver: driver, now: time.Now}, nil
}

func (s *SQLStore) Save(ctx context.Context, session, source string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO celstep_history (session, source, saved_at) VALUES (?, ?, ?)`,
		session, source, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("history: save %s: %w", session, err)
	}
	return nil
}

func (s *SQLStore) Latest(ctx context.Context, session string) (string, bool, error) {
	var source string
	err := s.db.QueryRowContext(ctx,
		`SELECT source FROM celstep_history WHERE session = ? ORDER BY id DESC LIMIT 1`,
		session).Scan(&source)
	switch {
	case err == sql.ErrNoRows:
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("history: latest %s: %w", session, err)
	}
	return source, true, nil
}

func (s *SQLStore) List(ctx context.Context, session string, limit int) ([]Entry, error) {
	query := `SELECT source, saved_at FROM celstep_history WHERE session = ? ORDER BY id DESC`
	args := []any{session}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list %s: %w", session, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			source string
			nanos  int64
		)
		if err := rows.Scan(&source, &nanos); err != nil {
			return nil, fmt.Errorf("history: scan %s: %w", session, err)
		}
		out = append(out, Entry{
			Session: session,
			Source:  source,
			SavedAt: time.Unix(0, nanos).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: list %s: %w", session, err)
	}
	return out, nil
}

func (s *SQLStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM celstep_history WHERE saved_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
