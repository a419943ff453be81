// Package archive stores simulation runs and their selected frames in
// a local SQLite database, so results from many runs can be listed and
// exported without keeping the original state-data files around.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mdwrap/mdwrap/internal/statedata"
)

// ErrNotFound is returned when a requested run or frame does not exist
// in the archive.
var ErrNotFound = errors.New("not found in archive")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	source_path TEXT NOT NULL,
	frames      INTEGER NOT NULL,
	columns     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS frames (
	run_id     TEXT NOT NULL REFERENCES runs(id),
	method     TEXT NOT NULL,
	step       REAL NOT NULL,
	row        BLOB NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (run_id, method)
);
`

// columnSep separates column labels in the runs.columns field. Labels
// come from state-data headers and never contain newlines.
const columnSep = "\n"

// Run describes one archived run.
type Run struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Source    string
	Frames    int
	Columns   []string
}

// frameRecord is the msgpack shape of an archived frame.
type frameRecord struct {
	Columns []string           `msgpack:"columns"`
	Values  map[string]float64 `msgpack:"values"`
}

// Archive is a handle on the run archive.
type Archive struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// Open opens (creating if needed) the archive database at path.
func Open(path string, logger *zap.SugaredLogger) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping archive database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}
	return &Archive{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	return a.db.Close()
}

// ImportRun records a run and returns its new identifier. Only the
// run's shape is stored here; selected frames are added with SaveFrame.
func (a *Archive) ImportRun(ctx context.Context, name string, s *statedata.Series, source string) (string, error) {
	if s == nil || s.Len() == 0 {
		return "", statedata.ErrEmptySeries
	}
	id := uuid.New().String()
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, created_at, source_path, frames, columns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, time.Now().UTC().Format(time.RFC3339), source,
		s.Len(), strings.Join(s.Columns, columnSep))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	a.logger.Infof("archived run %q as %s (%d frames)", name, id, s.Len())
	return id, nil
}

// SaveFrame stores the frame selected for a run by a given method,
// replacing any previous selection by the same method.
func (a *Archive) SaveFrame(ctx context.Context, runID, method string, f statedata.Frame) error {
	if ok, err := a.runExists(ctx, runID); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}

	blob, err := msgpack.Marshal(frameRecord{Columns: f.Columns, Values: f.Values})
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	stepCol, _ := statedata.Column(statedata.Step)
	_, err = a.db.ExecContext(ctx,
		`INSERT INTO frames (run_id, method, step, row, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (run_id, method) DO UPDATE SET
		 step = excluded.step, row = excluded.row, created_at = excluded.created_at`,
		runID, method, f.Values[stepCol], blob,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert frame: %w", err)
	}
	return nil
}

// GetFrame returns the frame selected for a run by a given method.
func (a *Archive) GetFrame(ctx context.Context, runID, method string) (statedata.Frame, error) {
	var blob []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT row FROM frames WHERE run_id = ? AND method = ?`,
		runID, method).Scan(&blob)
	if err == sql.ErrNoRows {
		return statedata.Frame{}, fmt.Errorf("frame for run %s, method %s: %w",
			runID, method, ErrNotFound)
	}
	if err != nil {
		return statedata.Frame{}, fmt.Errorf("failed to query frame: %w", err)
	}

	var rec frameRecord
	if err := msgpack.Unmarshal(blob, &rec); err != nil {
		return statedata.Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return statedata.Frame{Columns: rec.Columns, Values: rec.Values}, nil
}

// ListRuns returns all archived runs, most recent first.
func (a *Archive) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, name, created_at, source_path, frames, columns
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt, columns string
		if err := rows.Scan(&r.ID, &r.Name, &createdAt, &r.Source, &r.Frames, &columns); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		r.Columns = strings.Split(columns, columnSep)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (a *Archive) runExists(ctx context.Context, runID string) (bool, error) {
	var n int
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query run: %w", err)
	}
	return n > 0, nil
}
