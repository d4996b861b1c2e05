package spread

import (
	"encoding/csv"
	"io"

	"github.com/rxtech-lab/bond-spread/pkg/errors"
)

// Writer receives the output rows of a run.
type Writer interface {
	// WriteHeader writes the column names
	WriteHeader(header []string) error
	// WriteRow writes one result row
	WriteRow(row []string) error
	// Close flushes pending output
	Close() error
}

// CSVWriter writes rows to a CSV stream, flushing after every row.
type CSVWriter struct {
	csv    *csv.Writer
	closer io.Closer
}

// NewCSVWriter creates a CSVWriter over w. If w is an io.Closer it is closed by Close.
func NewCSVWriter(w io.Writer, crlf bool) *CSVWriter {
	csvWriter := csv.NewWriter(w)
	csvWriter.UseCRLF = crlf

	closer, _ := w.(io.Closer)

	return &CSVWriter{
		csv:    csvWriter,
		closer: closer,
	}
}

func (w *CSVWriter) WriteHeader(header []string) error {
	return w.WriteRow(header)
}

func (w *CSVWriter) WriteRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to write row", err)
	}

	w.csv.Flush()

	if err := w.csv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to flush row", err)
	}

	return nil
}

func (w *CSVWriter) Close() error {
	w.csv.Flush()

	if err := w.csv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to flush output", err)
	}

	if w.closer != nil {
		if err := w.closer.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, "failed to close output", err)
		}
	}

	return nil
}
