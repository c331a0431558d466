package main

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/oleg578/csvline"
)

type JoinCLI struct {
	Fields []string `arg:"" optional:"" help:"Fields to join, in column order"`
	Stdin  bool     `help:"Read fields from stdin, one per line, after any argument fields"`
}

func (j *JoinCLI) Run(logger *slog.Logger, con *console) error {
	fields := make([]string, 0, len(j.Fields))
	for _, arg := range j.Fields {
		field, err := con.decodeString(arg)
		if err != nil {
			return err
		}
		fields = append(fields, field)
	}

	if j.Stdin {
		sc := bufio.NewScanner(con.reader(con.in))
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			fields = append(fields, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("failed to read fields from stdin: %w", err)
		}
	}

	line, ok, err := csvline.Join(fields)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("no fields given, nothing to join")
		return errNoRecord
	}
	logger.Debug("joined record", "fields", len(fields), "bytes", len(line))

	_, err = fmt.Fprintln(con.out, line)
	return err
}
