// Command csvline joins and splits single CSV records from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the root command. Global flags configure logging, output and input decoding.
type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"CSVLINE_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error"`
	NoColor  bool   `help:"Disable colored log output" env:"NO_COLOR"`
	Format   string `help:"Output format for decoded records (text, lines, csv, json, yaml)" short:"f" env:"CSVLINE_FORMAT" default:"text" enum:"text,lines,csv,json,yaml"`
	Encoding string `help:"Text encoding of the input, e.g. shift_jis or windows-1252" short:"e" env:"CSVLINE_ENCODING" default:"utf-8"`

	Join    JoinCLI    `cmd:"" help:"Join fields into one CSV record line"`
	Split   SplitCLI   `cmd:"" help:"Split one CSV record line into fields"`
	Records RecordsCLI `cmd:"" help:"Read CSV records from a file or stdin"`
}

// errNoRecord is returned by join when there are no fields to encode.
var errNoRecord = errors.New("no record")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("csvline"),
		kong.Description("Join and split single CSV records."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "csvline: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "csvline: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cli.LogLevel, cli.NoColor)

	con, err := newConsole(stdin, stdout, cli.Format, cli.Encoding)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return 2
	}

	if err := kctx.Run(logger, con); err != nil {
		if errors.Is(err, errNoRecord) {
			return 1
		}
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string, noColor bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
