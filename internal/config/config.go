package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/slotgrid/internal/app"
	"github.com/atomicstack/slotgrid/internal/ticker"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File mirrors the optional YAML configuration file. Unset keys fall through
// to built-in defaults.
type File struct {
	Tick     string `yaml:"tick"`
	LogFile  string `yaml:"log_file"`
	Trace    *bool  `yaml:"trace"`
	Socket   string `yaml:"socket"`
	RootMenu string `yaml:"root_menu"`
	Actor    string `yaml:"actor"`
	Width    *int   `yaml:"width"`
	Height   *int   `yaml:"height"`
	Footer   *bool  `yaml:"footer"`
}

const (
	envConfigFile = "SLOTGRID_CONFIG"
	envTick       = "SLOTGRID_TICK"
	envSocketPath = "SLOTGRID_SOCKET"
	envRootMenu   = "SLOTGRID_ROOT_MENU"
	envActor      = "SLOTGRID_ACTOR"
	envWidth      = "SLOTGRID_WIDTH"
	envHeight     = "SLOTGRID_HEIGHT"
	envShowFooter = "SLOTGRID_FOOTER"
	envTrace      = "SLOTGRID_TRACE"
	envLogFile    = "SLOTGRID_LOG_FILE"
)

const defaultActor = "player"

var (
	ErrInvalidTick     = errors.New("tick interval must be positive")
	ErrInvalidRootMenu = errors.New("unknown root menu")
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Each value is
// taken from the first source that sets it: flag, environment, config file,
// built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slotgrid", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", "", "path to a YAML config file")
	tick := fs.Duration("tick", ticker.DefaultInterval, "wall-clock length of one animation tick")
	socket := fs.String("socket", "", "path to the tmux socket used by the session picker")
	rootMenu := fs.String("root-menu", app.RootDemo, "menu opened at startup (demo or sessions)")
	actor := fs.String("actor", defaultActor, "name of the actor owning the session")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", false, "enable footer hint row")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := *configPath
	if !set["config"] {
		path = envOrDefault(env, envConfigFile, "")
	}
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	r := resolver{set: set, env: env}
	fileTick, err := parseFileTick(file.Tick)
	if err != nil {
		return Config{}, err
	}
	*tick = r.durationValue("tick", *tick, envTick, fileTick)
	*socket = r.stringValue("socket", *socket, envSocketPath, file.Socket)
	*rootMenu = r.stringValue("root-menu", *rootMenu, envRootMenu, file.RootMenu)
	*actor = r.stringValue("actor", *actor, envActor, file.Actor)
	*width = r.intValue("width", *width, envWidth, file.Width)
	*height = r.intValue("height", *height, envHeight, file.Height)
	*footer = r.boolValue("footer", *footer, envShowFooter, file.Footer)
	*trace = r.boolValue("trace", *trace, envTrace, file.Trace)
	*logFile = r.stringValue("log-file", *logFile, envLogFile, file.LogFile)

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			RootMenu:     *rootMenu,
			Actor:        *actor,
			TickInterval: *tick,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":   path,
			"tick":     tick.String(),
			"socket":   *socket,
			"rootMenu": *rootMenu,
			"actor":    *actor,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (File, error) {
	var file File
	if strings.TrimSpace(path) == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseFileTick(v string) (*time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("config file tick: %w", err)
	}
	return &d, nil
}

// resolver picks a value for a flag that was not given on the command line.
type resolver struct {
	set map[string]bool
	env map[string]string
}

func (r resolver) stringValue(name, flagVal, envKey, fileVal string) string {
	if r.set[name] {
		return flagVal
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if fileVal != "" {
		return fileVal
	}
	return flagVal
}

func (r resolver) intValue(name string, flagVal int, envKey string, fileVal *int) int {
	if r.set[name] {
		return flagVal
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		return envOrInt(r.env, envKey, flagVal)
	}
	if fileVal != nil {
		return *fileVal
	}
	return flagVal
}

func (r resolver) boolValue(name string, flagVal bool, envKey string, fileVal *bool) bool {
	if r.set[name] {
		return flagVal
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		return envOrBool(r.env, envKey, flagVal)
	}
	if fileVal != nil {
		return *fileVal
	}
	return flagVal
}

func (r resolver) durationValue(name string, flagVal time.Duration, envKey string, fileVal *time.Duration) time.Duration {
	if r.set[name] {
		return flagVal
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	if fileVal != nil {
		return *fileVal
	}
	return flagVal
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.TickInterval <= 0 {
		return fmt.Errorf("%w (got %s)", ErrInvalidTick, cfg.App.TickInterval)
	}
	if !app.ValidRootMenu(cfg.App.RootMenu) {
		return fmt.Errorf("%w %q", ErrInvalidRootMenu, cfg.App.RootMenu)
	}
	return nil
}
