package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/claude/sprintlab/internal/config"
	"github.com/claude/sprintlab/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults when empty)")
	serverURL := flag.String("server", "", "SprintLab server URL; analyses run in-process when empty")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("sprintlab-mcp", Version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := newLogger(os.Stderr, cfg)

	var ds mcp.DataSource = mcp.Local{Limits: cfg.Limits.SessionLimits()}
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("using remote SprintLab server", "url", *serverURL)
	}

	if err := mcpserver.ServeStdio(mcp.New(ds, Version, log)); err != nil {
		log.Error("mcp stdio server failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
}
