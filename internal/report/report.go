package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/homeval/homeval/internal/cashflow"
	"github.com/homeval/homeval/internal/mortgage"
	"github.com/homeval/homeval/internal/valuation"
)

// Dir is the workspace subdirectory holding generated reports.
const Dir = "reports"

// Bundle collects everything one valuation run reports.
type Bundle struct {
	Property string
	Currency string
	Tax      cashflow.Table
	Value    cashflow.Table // terminal property value stream
	Mortgage *mortgage.Schedule
	Carry    *cashflow.Table
	Summary  valuation.Summary
}

// NewBundle evaluates v into a Bundle. carryMultiplier is only used when
// carry income is enabled.
func NewBundle(property, currency string, v *valuation.Valuation, carryMultiplier float64) (Bundle, error) {
	summary, err := v.Summary(carryMultiplier)
	if err != nil {
		return Bundle{}, fmt.Errorf("summarizing valuation: %w", err)
	}
	b := Bundle{
		Property: property,
		Currency: currency,
		Tax:      v.TaxTable(),
		Value:    v.PropertyTable(),
		Summary:  summary,
	}
	if ms, ok := v.MortgageSchedule(); ok {
		b.Mortgage = &ms
	}
	if v.Capabilities().WithCarryIncome {
		carry, err := v.CarryIncomeTable(carryMultiplier)
		if err != nil {
			return Bundle{}, err
		}
		b.Carry = &carry
	}
	return b, nil
}

// Save writes one CSV per stream plus summary.csv into <repoRoot>/reports
// and returns the written paths relative to repoRoot.
func Save(repoRoot string, b Bundle) ([]string, error) {
	dir := filepath.Join(repoRoot, Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating reports dir: %w", err)
	}

	type file struct {
		name  string
		write func(io.Writer) error
	}
	files := []file{
		{"tax.csv", func(w io.Writer) error { return WriteTable(w, b.Tax) }},
		{"property.csv", func(w io.Writer) error { return WriteTable(w, b.Value) }},
	}
	if b.Mortgage != nil {
		files = append(files, file{"mortgage.csv", func(w io.Writer) error { return WriteMortgage(w, *b.Mortgage) }})
	}
	if b.Carry != nil {
		files = append(files, file{"carry.csv", func(w io.Writer) error { return WriteTable(w, *b.Carry) }})
	}
	files = append(files, file{"summary.csv", func(w io.Writer) error { return WriteSummary(w, b.Summary) }})

	var written []string
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return nil, err
		}
		written = append(written, filepath.Join(Dir, f.name))
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

type section struct {
	title   string
	columns []string
	rows    []periodRow
}

// RenderText prints every table and the summary as aligned text.
func RenderText(w io.Writer, b Bundle) error {
	fmt.Fprintf(w, "Valuation: %s\n\n", b.Property)

	sections := []section{
		{"Property tax", cashflow.Columns, tableRows(b.Tax)},
		{"Property value", cashflow.Columns, tableRows(b.Value)},
	}
	if b.Mortgage != nil {
		sections = append(sections, section{"Mortgage schedule", mortgage.Columns, mortgageRows(*b.Mortgage)})
	}
	if b.Carry != nil {
		sections = append(sections, section{"Carry income", cashflow.Columns, tableRows(*b.Carry)})
	}

	for _, s := range sections {
		fmt.Fprintf(w, "## %s\n", s.title)
		if err := textTable(w, s.columns, s.rows); err != nil {
			return fmt.Errorf("rendering %s: %w", strings.ToLower(s.title), err)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "## Summary")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, line := range SummaryLines(b.Summary) {
		fmt.Fprintf(tw, "%s\t%s\t\n", line.Label, FormatMoney(line.Amount, b.Currency))
	}
	return tw.Flush()
}

type periodRow struct {
	period int
	values []float64
}

func tableRows(t cashflow.Table) []periodRow {
	rows := t.Rows()
	out := make([]periodRow, len(rows))
	for i, r := range rows {
		out[i] = periodRow{period: int(r.Period), values: r.Values()}
	}
	return out
}

func mortgageRows(s mortgage.Schedule) []periodRow {
	rows := s.Rows()
	out := make([]periodRow, len(rows))
	for i, r := range rows {
		out[i] = periodRow{period: int(r.Period), values: r.Values()}
	}
	return out
}

func textTable(w io.Writer, columns []string, rows []periodRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t\n", PeriodHeader, strings.Join(columns, "\t"))
	for _, r := range rows {
		cells := make([]string, len(r.values))
		for i, v := range r.values {
			cells[i] = decimal.NewFromFloat(v).StringFixed(6)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", strconv.Itoa(r.period), strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
