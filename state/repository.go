package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/vntracker/internal/apperr"
	"github.com/ayoisaiah/vntracker/internal/models"
)

const (
	uiBucket    = "ui"
	snapshotKey = "app_state"
)

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is vntracker already running? Only one window can be open at a time",
	}

	// ErrNoSnapshot is returned by Load when nothing has been saved yet.
	ErrNoSnapshot = &apperr.Error{
		Message: "no saved window state",
	}
)

// Repository persists State snapshots in a BoltDB file.
type Repository struct {
	*bolt.DB
}

// Open creates or opens the snapshot database at path and locks it.
func Open(path string) (*Repository, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(uiBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db}, nil
}

// Save stores the persisted fields of st.
func (r *Repository) Save(st *State) error {
	value, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return r.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(uiBucket)).Put([]byte(snapshotKey), value)
	})
}

// Load overwrites the persisted fields of st with the saved snapshot.
func (r *Repository) Load(st *State) error {
	return r.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(uiBucket)).Get([]byte(snapshotKey))
		if len(b) == 0 {
			return ErrNoSnapshot
		}

		return json.Unmarshal(b, st)
	})
}

// Restore loads the saved snapshot into st. When there is none or it cannot
// be decoded, st is reset to the store's games with every flag cleared.
func (r *Repository) Restore(st *State) error {
	restored := *st

	err := r.Load(&restored)
	if err != nil {
		st.Reset()
		return err
	}

	if restored.Games == nil {
		restored.Games = []models.Game{}
	}

	*st = restored

	return nil
}
