// Package export writes the manifest as a spreadsheet for curators.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Header is the column order of every export.
var Header = []string{"id", "title", "description", "tags", "thumb", "new", "play_url", "direct_url", "plays"}

// Row is one exported game.
type Row struct {
	Game  catalog.Game
	Plays int
}

func (r Row) values() []string {
	return []string{
		r.Game.ID,
		r.Game.DisplayTitle(),
		r.Game.Description,
		strings.Join(r.Game.Tags, ", "),
		r.Game.Thumb,
		strconv.FormatBool(r.Game.New),
		r.Game.PlayURL(),
		r.Game.DirectURL(),
		strconv.Itoa(r.Plays),
	}
}

// Rows pairs each game with its play count. plays may be nil.
func Rows(m catalog.Manifest, plays map[string]int) []Row {
	rows := make([]Row, 0, len(m))
	for _, g := range m {
		rows = append(rows, Row{Game: g, Plays: plays[g.ID]})
	}
	return rows
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// WriteFile writes rows to path in the format implied by its extension.
func WriteFile(path string, rows []Row) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, format, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes rows in the given format.
func Write(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteCSV writes a header line followed by one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SheetName is the worksheet the XLSX export writes to.
const SheetName = "Sheet1"

// WriteXLSX writes a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, r := range rows {
		vals := r.values()
		row := make([]interface{}, len(vals))
		for j, v := range vals {
			row[j] = v
		}
		// plays is numeric so it sorts and sums in a spreadsheet.
		row[len(row)-1] = r.Plays
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}
