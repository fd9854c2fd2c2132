package main

import (
	"log/slog"
	"os"

	"github.com/mgmerino/journal/cmd"
)

func main() {
	logLevel := slog.LevelInfo
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			logLevel = slog.LevelDebug
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cmd.Execute()
}
