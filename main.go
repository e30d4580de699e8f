package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"livelyicons/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Set up logging
	closeLog := setupLogging()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	code := cli.New(os.Stdout, os.Stderr, version).Run(ctx, os.Args[1:])

	cancel()
	closeLog()
	os.Exit(code)
}

// setupLogging sends the standard logger to the user cache dir so it never
// writes over the terminal UI
func setupLogging() func() {
	log.SetOutput(io.Discard)

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(cacheDir, "lively")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}

	logFile, err := os.OpenFile(filepath.Join(dir, "lively.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }
}
