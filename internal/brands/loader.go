// Package brands loads the brand list from a spreadsheet and turns each row
// into an ordered set of candidate logo URLs.
package brands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/youruser/brandcards/internal/util"
)

// Required sheet headers, exactly as they appear in the source sheets.
const (
	ColBrand     = "Prekės ženklas"
	ColSite      = "Oficiali svetainė"
	ColPrimary   = "Brandfetch (logo)"
	ColSecondary = "Clearbit (logo)"
)

var requiredColumns = []string{ColBrand, ColSite, ColPrimary, ColSecondary}

// MissingColumnsError reports which required headers the sheet lacks.
// It is fatal to the whole run; nothing is rendered when it occurs.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// Load reads the brand sheet at path, dispatching on the file extension
// (.xlsx or .csv).
func Load(path string) ([]Brand, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported sheet format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

func loadCSV(path string) ([]Brand, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return fromRows(rows)
}

func loadXLSX(path string) ([]Brand, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]Brand, error) {
	if len(rows) == 0 {
		return nil, errors.New("sheet has no header row")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var out []Brand
	for _, row := range rows[1:] {
		name := get(row, ColBrand)
		if name == "" {
			continue
		}
		b := Brand{Name: name, Site: get(row, ColSite)}
		for _, u := range []string{get(row, ColPrimary), get(row, ColSecondary)} {
			if u != "" {
				b.LogoURLs = append(b.LogoURLs, util.EnsureURL(u))
			}
		}
		if fav := util.FaviconURL(b.Site); fav != "" {
			b.LogoURLs = append(b.LogoURLs, fav)
		}
		out = append(out, b)
	}
	return out, nil
}
