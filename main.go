package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/slotgrid/internal/app"
	"github.com/atomicstack/slotgrid/internal/config"
	"github.com/atomicstack/slotgrid/internal/logging"
	"github.com/atomicstack/slotgrid/internal/logging/events"
	"golang.org/x/term"
)

var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

var errNoTerminal = errors.New("slotgrid must run attached to a terminal")

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	width, height, err := terminalSize(int(os.Stdout.Fd()))
	if err != nil {
		logging.Error(err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	events.App.Start(startupTracePayload(runtimeCfg, width, height))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Sync()
}

// terminalSize reports the dimensions of fd, failing when fd is not a
// terminal. A terminal whose size cannot be read reports 0x0.
func terminalSize(fd int) (int, int, error) {
	if fd < 0 || !isTerminal(fd) {
		return 0, 0, errNoTerminal
	}
	width, height, err := getSize(fd)
	if err != nil {
		logging.Warn("app.terminal.size", map[string]interface{}{"error": err.Error()})
		return 0, 0, nil
	}
	return width, height, nil
}

// startupTracePayload records what the session was started with.
func startupTracePayload(cfg config.Config, termWidth, termHeight int) map[string]interface{} {
	return map[string]interface{}{
		"tick":     cfg.App.TickInterval.String(),
		"rootMenu": cfg.App.RootMenu,
		"actor":    cfg.App.Actor,
		"socket":   cfg.App.SocketPath,
		"config":   cfg.Flags["config"],
		"trace":    cfg.Logging.Trace,
		"logFile":  cfg.Logging.FilePath,
		"terminal": map[string]int{"width": termWidth, "height": termHeight},
	}
}
