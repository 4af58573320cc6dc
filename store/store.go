// Package store persists games and play sessions as JSON documents
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/ayoisaiah/vntracker/internal/models"
	"github.com/ayoisaiah/vntracker/internal/osutil"
	"github.com/ayoisaiah/vntracker/internal/syncutil"
)

const tmpSuffix = ".tmp"

// Store keeps the games and sessions documents on a filesystem. Every
// read-modify-write of a document holds that document's lock.
type Store struct {
	fs           afero.Fs
	gamesPath    string
	sessionsPath string
	gamesMu      syncutil.Mutex
	sessionsMu   syncutil.Mutex
}

// New returns a store for the given document paths on fsys.
func New(fsys afero.Fs, gamesPath, sessionsPath string) *Store {
	return &Store{
		fs:           fsys,
		gamesPath:    gamesPath,
		sessionsPath: sessionsPath,
	}
}

// NewOS returns a store on the operating system filesystem with both
// documents in dir. An empty dir is the working directory.
func NewOS(dir, gamesFile, sessionsFile string) *Store {
	return New(
		afero.NewOsFs(),
		filepath.Join(dir, gamesFile),
		filepath.Join(dir, sessionsFile),
	)
}

func (s *Store) LoadGames() []models.Game {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	return s.readGames()
}

func (s *Store) SaveGames(games []models.Game) error {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	return s.writeGames(games)
}

func (s *Store) MutateGames(
	fn func(games []models.Game) ([]models.Game, error),
) ([]models.Game, error) {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	games, err := fn(s.readGames())
	if err != nil {
		return nil, err
	}

	return games, s.writeGames(games)
}

func (s *Store) UpdateGame(
	id uint32,
	fn func(g *models.Game),
) (models.Game, error) {
	var updated models.Game

	_, err := s.MutateGames(func(games []models.Game) ([]models.Game, error) {
		i := slices.IndexFunc(games, func(g models.Game) bool {
			return g.ID == id
		})
		if i < 0 {
			return nil, ErrGameNotFound.Fmt(id)
		}

		fn(&games[i])
		updated = games[i]

		return games, nil
	})

	return updated, err
}

func (s *Store) LoadSessions(gameID uint32) []models.Session {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	all := s.readSessions()

	sessions := make([]models.Session, 0, len(all))

	for _, sess := range all {
		if sess.GameID == gameID {
			sessions = append(sessions, sess)
		}
	}

	return sessions
}

func (s *Store) AllSessions() []models.Session {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	return s.readSessions()
}

func (s *Store) SaveSession(sess models.Session) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions := append(s.readSessions(), sess)

	return writeJSON(s.fs, s.sessionsPath, sessions)
}

func (s *Store) DeleteSessionsForGame(gameID uint32) (bool, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	sessions := s.readSessions()
	before := len(sessions)

	sessions = slices.DeleteFunc(sessions, func(sess models.Session) bool {
		return sess.GameID == gameID
	})

	if len(sessions) == before {
		return false, nil
	}

	return true, writeJSON(s.fs, s.sessionsPath, sessions)
}

func (s *Store) readGames() []models.Game {
	games := []models.Game{}
	readJSON(s.fs, s.gamesPath, &games)

	return games
}

func (s *Store) writeGames(games []models.Game) error {
	if games == nil {
		games = []models.Game{}
	}

	return writeJSON(s.fs, s.gamesPath, games)
}

func (s *Store) readSessions() []models.Session {
	sessions := []models.Session{}
	readJSON(s.fs, s.sessionsPath, &sessions)

	return sessions
}

// readJSON decodes path into v. A missing file leaves v untouched and a
// malformed one is logged and reset to an empty document.
func readJSON[T any](fsys afero.Fs, path string, v *[]T) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("reading data file", slog.String("path", path), slog.Any("error", err))
		}

		return
	}

	var out []T

	if err := json.Unmarshal(b, &out); err != nil {
		slog.Warn("ignoring malformed data file", slog.String("path", path), slog.Any("error", err))
		return
	}

	if out != nil {
		*v = out
	}
}

// writeJSON writes v as indented JSON to a temporary file next to path and
// renames it over path.
func writeJSON(fsys afero.Fs, path string, v any) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return errEncode.Fmt(path).Wrap(err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, osutil.DirPermission); err != nil {
			return errWrite.Fmt(path).Wrap(err)
		}
	}

	tmp := path + tmpSuffix

	if err := afero.WriteFile(fsys, tmp, data, osutil.FilePermission); err != nil {
		return errWrite.Fmt(path).Wrap(err)
	}

	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errWrite.Fmt(path).Wrap(err)
	}

	return nil
}
