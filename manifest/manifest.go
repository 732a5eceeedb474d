// Package manifest handles celstep.toml configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file Load and FindAndLoad look for.
const FileName = "celstep.toml"

// Manifest represents a celstep.toml configuration.
type Manifest struct {
	Server  Server  `toml:"server"`
	History History `toml:"history"`
	Eval    Eval    `toml:"eval"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the celstep.toml file (set at load time).
	Dir string `toml:"-"`
}

// Server configures the stepping service listeners.
type Server struct {
	Addr          string        `toml:"addr"`
	GRPCAddr      string        `toml:"grpc-addr"`
	SessionTTL    time.Duration `toml:"session-ttl"`
	SweepInterval time.Duration `toml:"sweep-interval"`
}

// History configures where per-session source text is kept.
type History struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
	// Retention drops entries older than this; zero keeps everything.
	Retention time.Duration `toml:"retention"`
}

// Eval configures parsing and evaluation limits.
type Eval struct {
	MaxDepth      int    `toml:"max-depth"`
	SizeLimit     int    `toml:"size-limit"`
	DefaultSource string `toml:"default-source"`

	// Trace logs every executed instruction on the celstep.vm logger at
	// debug level.
	Trace bool `toml:"trace"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no celstep.toml exists.
func Default() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	if m.Server.Addr == "" {
		m.Server.Addr = ":4567"
	}
	if m.Server.SessionTTL <= 0 {
		m.Server.SessionTTL = 30 * time.Minute
	}
	if m.Server.SweepInterval <= 0 {
		m.Server.SweepInterval = 5 * time.Minute
	}
	if m.History.Driver == "" {
		m.History.Driver = "memory"
	}
	if m.Eval.MaxDepth <= 0 {
		m.Eval.MaxDepth = 512
	}
	if m.Eval.DefaultSource == "" {
		m.Eval.DefaultSource = "1 + 1"
	}
	if m.Log.Verbosity == 0 {
		m.Log.Verbosity = 1
	}
}

// Validate reports settings that cannot work together.
func (m *Manifest) Validate() error {
	switch m.History.Driver {
	case "memory":
	case "sqlite", "mysql":
		if m.History.DSN == "" {
			return fmt.Errorf("history driver %s needs a dsn", m.History.Driver)
		}
	default:
		return fmt.Errorf("unknown history driver %q (want sqlite, mysql or memory)", m.History.Driver)
	}
	if m.History.Retention < 0 {
		return fmt.Errorf("history retention must not be negative, got %s", m.History.Retention)
	}
	if m.Eval.SizeLimit < 0 {
		return fmt.Errorf("eval size-limit must not be negative, got %d", m.Eval.SizeLimit)
	}
	return nil
}

// Load parses a celstep.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// A relative sqlite path is relative to the manifest.
	if m.History.Driver == "sqlite" && m.History.DSN != "" && !filepath.IsAbs(m.History.DSN) && m.History.DSN != ":memory:" {
		m.History.DSN = filepath.Join(m.Dir, m.History.DSN)
	}
	return m, nil
}

// Parse decodes celstep.toml content and fills in defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s", undecoded[0])
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAndLoad walks up from startDir to find a celstep.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}
