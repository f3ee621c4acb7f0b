//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/specvital/fwdetect/pkg/engine"
	"github.com/specvital/fwdetect/pkg/snapshot"

	_ "github.com/specvital/fwdetect/pkg/detectors/all"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/detect.go <snapshot.yaml>\n")
		os.Exit(1)
	}

	inputs, err := snapshot.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapshot error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	result, runErr := engine.New(engine.WithLogger(logger)).Run(ctx, inputs)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "run error: %v\n", runErr)
		if result == nil {
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Report()); err != nil {
		fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
