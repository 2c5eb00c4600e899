//Package store persists analyzed molecules and their curvature datasets
//in a local SQLite database, so uploads and cell edits survive process
//restarts.
package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gvallverdu/curview/dataset"
)

//ErrNotFound is returned when no molecule has the requested id.
var ErrNotFound = errors.New("store: molecule not found")

const schema = `
CREATE TABLE IF NOT EXISTS molecules (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	natoms     INTEGER NOT NULL,
	xyz        TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

//Record is one analyzed molecule: the uploaded geometry and the
//per-atom curvature data computed from it.
type Record struct {
	ID        string
	Name      string
	NAtoms    int
	XYZ       string
	Data      *dataset.Dataset
	CreatedAt time.Time
	UpdatedAt time.Time
}

//Info is the listing view of a record, without the payload.
type Info struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NAtoms    int       `json:"natoms"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

//Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (S *Store) Close() error {
	return S.db.Close()
}

//NewID returns a fresh random molecule id.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

//Put inserts a record. An empty ID is filled in, and the timestamps are
//always set here.
func (S *Store) Put(rec *Record) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	if rec.ID == "" {
		rec.ID = NewID()
	}
	blob, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("store: encode dataset: %w", err)
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	_, err = S.db.Exec(`
		INSERT INTO molecules (id, name, natoms, xyz, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.NAtoms, rec.XYZ, string(blob), now, now)
	if err != nil {
		return fmt.Errorf("store: insert %s: %w", rec.ID, err)
	}
	return nil
}

//Get returns the record with this id, or ErrNotFound.
func (S *Store) Get(id string) (*Record, error) {
	S.mu.RLock()
	defer S.mu.RUnlock()
	return S.get(id)
}

func (S *Store) get(id string) (*Record, error) {
	rec := &Record{ID: id}
	var blob string
	err := S.db.QueryRow(`
		SELECT name, natoms, xyz, data, created_at, updated_at
		FROM molecules WHERE id = ?
	`, id).Scan(&rec.Name, &rec.NAtoms, &rec.XYZ, &blob, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}
	rec.Data = &dataset.Dataset{}
	if err := json.Unmarshal([]byte(blob), rec.Data); err != nil {
		return nil, fmt.Errorf("store: decode dataset of %s: %w", id, err)
	}
	return rec, nil
}

//List returns all stored molecules, most recent first.
func (S *Store) List() ([]Info, error) {
	S.mu.RLock()
	defer S.mu.RUnlock()
	rows, err := S.db.Query(`
		SELECT id, name, natoms, created_at, updated_at
		FROM molecules ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()
	infos := []Info{}
	for rows.Next() {
		var in Info
		if err := rows.Scan(&in.ID, &in.Name, &in.NAtoms, &in.CreatedAt, &in.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		infos = append(infos, in)
	}
	return infos, rows.Err()
}

//Delete removes the record with this id, or returns ErrNotFound.
func (S *Store) Delete(id string) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	res, err := S.db.Exec(`DELETE FROM molecules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

//UpdateCell edits one cell of the stored dataset and returns the
//updated record. The species column is rejected by the dataset itself.
func (S *Store) UpdateCell(id string, row int, column string, value float64) (*Record, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	rec, err := S.get(id)
	if err != nil {
		return nil, err
	}
	if err := rec.Data.SetValue(row, column, value); err != nil {
		return nil, err
	}
	blob, err := json.Marshal(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("store: encode dataset: %w", err)
	}
	rec.UpdatedAt = time.Now().UTC()
	_, err = S.db.Exec(`
		UPDATE molecules SET data = ?, updated_at = ? WHERE id = ?
	`, string(blob), rec.UpdatedAt, id)
	if err != nil {
		return nil, fmt.Errorf("store: update %s: %w", id, err)
	}
	return rec, nil
}
