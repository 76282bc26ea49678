package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes the history as CSV with a header row.
func WriteCSV(w io.Writer, h *History) error {
	records := h.Records()
	if records == nil {
		records = []GenerationStats{}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing generation stats: %w", err)
	}
	return nil
}

// WriteCSVFile writes the history to path, replacing any existing file.
func WriteCSVFile(path string, h *History) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
