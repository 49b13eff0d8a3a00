// Package report lists people at or above an age cutoff and exports them.
package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hetulpatel/socialnetwork/internal/models"
)

var csvHeader = []string{"name", "age"}

// Source is the query side of the people store.
type Source interface {
	PeopleAtLeastAge(ctx context.Context, minAge int) ([]models.NameAge, error)
}

// Options controls a report run.
type Options struct {
	MinimumAge int
	CSVPath    string
}

// Run queries the source, prints the matching people to w and writes them
// to the CSV file. The printed lines and the CSV rows are the same records.
func Run(ctx context.Context, src Source, opts Options, w io.Writer) ([]models.NameAge, error) {
	records, err := src.PeopleAtLeastAge(ctx, opts.MinimumAge)
	if err != nil {
		return nil, fmt.Errorf("query people aged %d+: %w", opts.MinimumAge, err)
	}
	if err := Print(w, records); err != nil {
		return nil, fmt.Errorf("print report: %w", err)
	}
	if err := WriteCSV(opts.CSVPath, records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return records, nil
}

// Print writes one "<name> is <age> years old." line per record.
func Print(w io.Writer, records []models.NameAge) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s is %d years old.\n", r.Name, r.Age); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the records under a name,age header, replacing any
// existing file.
func WriteCSV(path string, records []models.NameAge) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, records)
}

// Encode writes the CSV form of records to w.
func Encode(w io.Writer, records []models.NameAge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Name, strconv.Itoa(r.Age)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV.
func ReadCSV(path string) ([]models.NameAge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses CSV produced by Encode.
func Decode(r io.Reader) ([]models.NameAge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header[0] != csvHeader[0] || header[1] != csvHeader[1] {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	out := []models.NameAge{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		age, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("parse age %q: %w", rec[1], err)
		}
		out = append(out, models.NameAge{Name: rec[0], Age: age})
	}
	return out, nil
}
