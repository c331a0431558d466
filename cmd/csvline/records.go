package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oleg578/csvline"
)

type RecordsCLI struct {
	File  string `arg:"" optional:"" type:"existingfile" help:"CSV file to read (default: stdin)"`
	Limit int    `help:"Stop after this many records (0 reads all)" short:"n" default:"0"`
}

func (r *RecordsCLI) Run(logger *slog.Logger, con *console) error {
	var src io.Reader = con.in
	if r.File != "" {
		f, err := os.Open(r.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", r.File, err)
		}
		defer f.Close()
		src = f
	}

	rd := csvline.NewReader(con.reader(src))
	w := con.recordWriter()

	for record, err := range rd.Records() {
		if err != nil {
			return err
		}
		logger.Debug("read record", "record", rd.RecordCount(), "line", rd.Line(), "fields", len(record))
		if err := w.Write(record); err != nil {
			return err
		}
		if r.Limit > 0 && rd.RecordCount() >= r.Limit {
			break
		}
	}

	logger.Info("finished reading records", "records", rd.RecordCount(), "line", rd.Line())
	return w.Close()
}
