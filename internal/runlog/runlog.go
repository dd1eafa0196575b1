// Package runlog keeps an append-only CSV history of valuation runs.
//
// Each row records when a property was valued, the per-stream present
// values the run produced and, when reports were committed, the commit
// that holds them. Amounts are written with two decimal places.
package runlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeval/homeval/internal/valuation"
)

// File is the log location relative to the workspace root.
const File = "logs/valuation-log.csv"

// Header lists the log columns in file order.
var Header = []string{
	"timestamp",
	"run_id",
	"property",
	"format",
	"tax_pv",
	"property_pv",
	"carry_pv",
	"mortgage_payments_pv",
	"net_present_value",
	"commit_hash",
}

// Entry is one valuation run.
type Entry struct {
	Timestamp          time.Time
	RunID              uuid.UUID
	Property           string
	Format             string
	TaxPV              decimal.Decimal
	PropertyPV         decimal.Decimal
	CarryPV            decimal.Decimal
	MortgagePaymentsPV decimal.Decimal
	NetPresentValue    decimal.Decimal
	CommitHash         string // empty when nothing was committed
}

// NewEntry stamps a fresh run of property with the totals of s.
func NewEntry(property, format string, s valuation.Summary) Entry {
	return Entry{
		Timestamp:          time.Now().UTC(),
		RunID:              uuid.New(),
		Property:           property,
		Format:             format,
		TaxPV:              s.TaxPV,
		PropertyPV:         s.PropertyPV,
		CarryPV:            s.CarryPV,
		MortgagePaymentsPV: s.MortgagePaymentsPV,
		NetPresentValue:    s.NetPresentValue,
	}
}

// amounts lists the money columns in Header order.
func (e *Entry) amounts() []*decimal.Decimal {
	return []*decimal.Decimal{&e.TaxPV, &e.PropertyPV, &e.CarryPV, &e.MortgagePaymentsPV, &e.NetPresentValue}
}

// MarshalEntry renders e as a CSV record in Header order.
func MarshalEntry(e Entry) []string {
	row := []string{e.Timestamp.UTC().Format(time.RFC3339), e.RunID.String(), e.Property, e.Format}
	for _, d := range e.amounts() {
		row = append(row, d.StringFixed(2))
	}
	return append(row, e.CommitHash)
}

// UnmarshalEntry parses a record written by MarshalEntry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != len(Header) {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(record))
	}

	var e Entry
	var err error
	if e.Timestamp, err = time.Parse(time.RFC3339, record[0]); err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[0], err)
	}
	if e.RunID, err = uuid.Parse(record[1]); err != nil {
		return Entry{}, fmt.Errorf("parsing run_id %q: %w", record[1], err)
	}
	e.Property = record[2]
	e.Format = record[3]

	amounts := record[4 : len(record)-1]
	for i, dst := range e.amounts() {
		d, err := decimal.NewFromString(amounts[i])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing %s %q: %w", Header[4+i], amounts[i], err)
		}
		*dst = d
	}
	e.CommitHash = record[len(record)-1]
	return e, nil
}

// Append adds e to the workspace log at repoRoot, writing the header when
// the file is new.
func Append(repoRoot string, e Entry) error {
	path := filepath.Join(repoRoot, File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening valuation log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat valuation log: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns every run logged at repoRoot, oldest first. A missing log
// yields no entries.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(repoRoot, File))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening valuation log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading valuation log header: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("unexpected valuation log header %v", header)
	}

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading valuation log: %w", err)
		}
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
}
