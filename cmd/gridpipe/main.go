// CLAUDE:SUMMARY Entry point for the gridpipe CLI — one-shot recognition of a block, or MCP stdio server with edit persistence.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/gridpipe"
	"github.com/hazyhaar/gridpipe/editstore"
)

func main() {
	logLevel := env("LOG_LEVEL", "info")
	mcpTransport := env("MCP_TRANSPORT", "")

	// Logging.
	var lvl slog.Level
	switch logLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Engine configuration.
	cfg := gridpipe.Config{Logger: logger}
	if path := os.Getenv("GRIDPIPE_CONFIG"); path != "" {
		loaded, err := gridpipe.LoadConfig(path)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		loaded.Logger = logger
		cfg = *loaded
	}
	eng := gridpipe.New(cfg)

	if mcpTransport == "stdio" {
		runMCP(ctx, eng)
		return
	}

	runOnce(eng)
}

// runMCP serves the grid tools over stdio. EDITS_DB additionally wires the
// edit persistence tools.
func runMCP(ctx context.Context, eng *gridpipe.Engine) {
	srv := mcp.NewServer(&mcp.Implementation{Name: "gridpipe", Version: "1.0.0"}, nil)
	eng.RegisterMCP(srv)

	if dbPath := os.Getenv("EDITS_DB"); dbPath != "" {
		store, err := editstore.Open(ctx, dbPath)
		if err != nil {
			slog.Error("edits db", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		store.RegisterMCP(srv)
		slog.Info("edit persistence enabled", "db", dbPath)
	}

	slog.Info("MCP server starting", "transport", "stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		slog.Error("MCP server", "error", err)
		os.Exit(1)
	}
}

// runOnce recognizes one block from the file argument or stdin and prints
// JSON, or Markdown with OUTPUT=markdown.
func runOnce(eng *gridpipe.Engine) {
	var data []byte
	var err error
	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		slog.Error("read input", "error", err)
		os.Exit(1)
	}

	res := eng.Recognize(string(data), nil)

	if env("OUTPUT", "json") == "markdown" {
		if res.Grid == nil {
			fmt.Println(res.Preformatted)
			return
		}
		md, err := eng.ExportMarkdown(res.Grid, nil)
		if err != nil {
			slog.Error("export markdown", "error", err)
			os.Exit(1)
		}
		fmt.Println(md)
		return
	}

	out := map[string]any{
		"format":        res.Format,
		"confidence":    res.Confidence,
		"repaired":      res.Repaired,
		"used_fallback": res.UsedFallback,
	}
	if res.Grid != nil {
		out["visual"] = gridpipe.Render(res.Grid, nil)
	} else {
		out["preformatted"] = res.Preformatted
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("encode output", "error", err)
		os.Exit(1)
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
