package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"geopoly/internal/config"
	"geopoly/internal/logger"
	"geopoly/internal/metrics"
	"geopoly/internal/tui"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	lg := logger.Setup(w)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Error("metrics_server_error", "addr", cfg.MetricsAddr, "err", err)
			}
		}()
		lg.Info("metrics_server_start", "addr", cfg.MetricsAddr)
	}

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg, os.Args[1])
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		lg.Error("tui_exit", "err", err)
		log.Fatal(err)
	}
}
