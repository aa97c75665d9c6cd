// Command tweentui animates a few progress bars in the terminal with the tween scheduler.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/logx"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlay")
	logFile := flag.String("log-file", "tweentui.log", "log file; the terminal belongs to the UI")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logCfg := config.Log
	logCfg.Console = false
	logCfg.File = logx.FileConfig{Enabled: true, Path: *logFile}
	logSvc, logger := logx.New(logCfg)
	defer logSvc.Close()

	m := newModel([]string{"health", "mana", "xp", "loading"}, config.Tween.TickRate, logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui exited", logx.Err(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
