// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "VNTRACKER_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir           string
	configFileName   string
	stateDBFileName  string
	logFileName      string
	gamesFileName    string
	sessionsFileName string

	// Computed absolute paths
	configFilePath string
	stateDBPath    string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths()
		paths.applyEnvironmentOverrides(os.Getenv(envName))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func newPaths() *Paths {
	return &Paths{
		appDir:           "vntracker",
		configFileName:   "config.yml",
		stateDBFileName:  "ui.db",
		logFileName:      "vntracker.log",
		gamesFileName:    "games.json",
		sessionsFileName: "sessions.json",
	}
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func StateDBPath() string {
	return Must().stateDBPath
}

func LogFilePath() string {
	return Must().logFilePath
}

// GamesFileName is the default name of the games document.
func GamesFileName() string {
	if paths == nil {
		return newPaths().gamesFileName
	}

	return paths.gamesFileName
}

// SessionsFileName is the default name of the sessions document.
func SessionsFileName() string {
	if paths == nil {
		return newPaths().sessionsFileName
	}

	return paths.sessionsFileName
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.stateDBFileName = fmt.Sprintf("ui_%s.db", env)
	p.logFileName = fmt.Sprintf("vntracker_%s.log", env)
	p.gamesFileName = fmt.Sprintf("games_%s.json", env)
	p.sessionsFileName = fmt.Sprintf("sessions_%s.json", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.stateDBPath, err = xdg.StateFile(
		filepath.Join(p.appDir, p.stateDBFileName),
	)
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.StateFile(
		filepath.Join(p.appDir, "log", p.logFileName),
	)
	if err != nil {
		return err
	}

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

// FileStem returns the base name of path without its extension. A name whose
// only dot is the leading one (".profile") has no extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}

	if strings.LastIndex(base, ".") == 0 {
		return base
	}

	return StripExtension(base)
}
