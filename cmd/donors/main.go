// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command donors answers queries over a donation list ordered by amount.
//
// Usage:
//
//	donors [flags] <donations-file> <command> [<args>]
//
// Commands:
//
//	all              Print every donor, poorest first
//	rich             Print the largest donor
//	cheap            Print the smallest donor
//	who [+|-]amount  Print the donor matching, above (+) or below (-) amount
//
// Flags:
//
//	--log-level        Log level: error, warn, info, debug (default: warn)
//	--skip-duplicates  Drop records whose amount is already loaded
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/albertocavalcante/donors/internal/donors"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: donors [flags] <donations-file> <command> [<args>]")

func run(args []string, stdout, stderr io.Writer) error {
	app := cli.App{
		Name:      "donors",
		Usage:     "query a donation list ordered by amount",
		UsageText: "donors [flags] <donations-file> <command> [<args>]",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (error, warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"DONORS_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "skip-duplicates",
				Usage:   "drop records whose amount is already loaded instead of failing",
				EnvVars: []string{"DONORS_SKIP_DUPLICATES"},
			},
		},
		HideHelpCommand: true,
		Action:          runQuery,
	}
	return app.Run(args)
}

func runQuery(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	if cctx.NArg() < 2 {
		return errUsage
	}
	path := cctx.Args().Get(0)
	command := cctx.Args().Get(1)
	rest := cctx.Args().Slice()[2:]

	if err := donors.Validate(command, rest); err != nil {
		return err
	}

	m, err := donors.LoadFile(cctx.Context, path, donors.LoadOptions{
		SkipDuplicates: cctx.Bool("skip-duplicates"),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	logger.Debug("running query", "command", command, "args", rest, "donations", m.Size())
	return donors.Run(cctx.App.Writer, m, command, rest)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
