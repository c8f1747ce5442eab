// Command seedslabs converts a professional tax slab Excel workbook into a
// SQL seed file of statutory configuration rows. Expected sheet columns:
// State Code, Financial Year, From, To (blank = unbounded), Amount.
// Usage: go run ./cmd/seedslabs <workbook.xlsx>
// Output: db/seeds/pt_slabs.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"anupalan/internal/statutory"
)

type slabGroup struct {
	stateCode     string
	financialYear int
	slabs         []statutory.Slab
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedslabs <workbook.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/pt_slabs.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	groups, err := parseSlabSheet(f)
	if err != nil {
		return fmt.Errorf("parse slab sheet: %w", err)
	}
	log.Printf("parsed %d state slab tables", len(groups))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSeed(out, groups); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}

func parseSlabSheet(f *excelize.File) ([]slabGroup, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	grouped := make(map[string]*slabGroup)
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		stateCode := strings.ToUpper(strings.TrimSpace(row[0]))
		if stateCode == "" {
			continue
		}
		var fy int
		if _, err := fmt.Sscanf(strings.TrimSpace(row[1]), "%d", &fy); err != nil {
			return nil, fmt.Errorf("row %d: bad financial year %q", i+1, row[1])
		}
		from, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad from %q", i+1, row[2])
		}
		var to *decimal.Decimal
		if s := strings.TrimSpace(row[3]); s != "" {
			v, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad to %q", i+1, row[3])
			}
			to = &v
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount %q", i+1, row[4])
		}

		key := statutory.StateSlabKey{StateCode: stateCode, FinancialYear: fy}.String()
		g, ok := grouped[key]
		if !ok {
			g = &slabGroup{stateCode: stateCode, financialYear: fy}
			grouped[key] = g
		}
		g.slabs = append(g.slabs, statutory.Slab{From: from, To: to, Rate: amount})
	}

	out := make([]slabGroup, 0, len(grouped))
	for _, g := range grouped {
		sort.Slice(g.slabs, func(i, j int) bool { return g.slabs[i].From.LessThan(g.slabs[j].From) })
		if err := statutory.ValidateSlabs(g.slabs); err != nil {
			return nil, fmt.Errorf("state %s FY%d: %w", g.stateCode, g.financialYear, err)
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].stateCode != out[j].stateCode {
			return out[i].stateCode < out[j].stateCode
		}
		return out[i].financialYear < out[j].financialYear
	})
	return out, nil
}

func writeSeed(out *os.File, groups []slabGroup) error {
	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Professional tax slab seed data generated from Excel.",
		fmt.Sprintf("-- %d state slab tables. Replace :tenant_id and :created_by before running.", len(groups)),
		"BEGIN;",
		"",
	} {
		if err := w(line); err != nil {
			return err
		}
	}

	for _, g := range groups {
		key := statutory.StateSlabKey{StateCode: g.stateCode, FinancialYear: g.financialYear}
		value, err := json.Marshal(g.slabs)
		if err != nil {
			return fmt.Errorf("marshal slabs for %s: %w", key, err)
		}
		stmt := fmt.Sprintf(
			`INSERT INTO statutory_configurations (id, tenant_id, key, value, financial_year, effective_from, is_active, created_by, created_at)
VALUES (gen_random_uuid(), :tenant_id, '%s', '%s', %d, '%04d-04-01', true, :created_by, now());`,
			key, strings.ReplaceAll(string(value), "'", "''"), g.financialYear, g.financialYear)
		if err := w(stmt); err != nil {
			return err
		}
	}

	return w("\nCOMMIT;")
}
