package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/web/site"
)

var (
	flagWebAddr string
	flagWebDir  string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser build over HTTP",
	Long: `Serve the WebAssembly build of the game with an HTML page.

Build the bundle first:
  mkdir -p dist
  GOOS=js GOARCH=wasm go build -o dist/flappy.wasm ./cmd/flappy-web
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" dist/

Examples:
  arcade web
  arcade web --addr :9000 --dir ./dist`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagWebDir, "dir", "dist", "Directory containing flappy.wasm and wasm_exec.js")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := site.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.Dir = flagWebDir
	cfg.Logger = logger

	server, err := site.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("open in a browser", "url", "http://localhost:"+portOf(flagWebAddr))
	return server.ListenAndServe(ctx)
}
