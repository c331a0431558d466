package main

import (
	"log/slog"

	"github.com/oleg578/csvline"
)

type SplitCLI struct {
	Line string `arg:"" help:"CSV record line to split (newlines only inside quotes)"`
}

func (s *SplitCLI) Run(logger *slog.Logger, con *console) error {
	line, err := con.decodeString(s.Line)
	if err != nil {
		return err
	}

	fields, err := csvline.Split(line)
	if err != nil {
		return err
	}
	logger.Debug("split record", "fields", len(fields))

	w := con.recordWriter()
	if err := w.Write(fields); err != nil {
		return err
	}
	return w.Close()
}
