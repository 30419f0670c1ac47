package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ruinscape/opsgrid/internal/app"
	"github.com/ruinscape/opsgrid/internal/config"
	"github.com/ruinscape/opsgrid/internal/server"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to config file")
	port := flag.Int("port", 0, "override listen port")
	local := flag.Bool("local", false, "run the dashboard in this terminal instead of serving SSH")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	if *port > 0 {
		cfg.Port = *port
	}

	if *local {
		runLocal(cfg)
		return
	}

	srv, err := server.New(&cfg)
	if err != nil {
		log.Fatal("creating server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("opsgrid listening", "port", cfg.Port)
		if err := srv.Start(); err != nil {
			log.Fatal("server error", "err", err)
		}
	}()

	sig := <-done
	fmt.Println()
	log.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
	log.Info("opsgrid stopped")
}

func runLocal(cfg config.Config) {
	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("running dashboard", "err", err)
	}
}
