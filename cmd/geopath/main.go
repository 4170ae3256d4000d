package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"geopath/internal/config"
	"geopath/internal/logging"
	"geopath/internal/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if cfg.Preview {
		// the terminal belongs to the previewer while it runs
		m := tui.NewWithPath(cfg.Input, cfg.Size(), zap.NewNop())
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal("previewer failed", zap.Error(err))
		}
		return
	}

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error("conversion failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
