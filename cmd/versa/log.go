package main

import (
	"log/slog"
	"os"

	"github.com/versa-format/versa/debug"
)

var (
	theLog = slog.New(debug.NewHandler(os.Stderr, slog.LevelInfo))
)
