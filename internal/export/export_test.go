package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
)

var manifest = catalog.Manifest{
	{ID: "snake", Title: "Snake", Tags: []string{"arcade", "retro"}, New: true},
	{ID: "space rocks", Description: "Shoot, rocks"},
}

func TestRows(t *testing.T) {
	rows := Rows(manifest, map[string]int{"snake": 4})
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Plays != 4 || rows[1].Plays != 0 {
		t.Errorf("plays = %d, %d", rows[0].Plays, rows[1].Plays)
	}
	if got := Rows(manifest, nil); got[0].Plays != 0 {
		t.Errorf("nil plays map = %d", got[0].Plays)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Rows(manifest, map[string]int{"snake": 2})); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "id"},
		{1, 1, "Snake"},
		{1, 3, "arcade, retro"},
		{1, 5, "true"},
		{1, 8, "2"},
		{2, 1, "space rocks"},
		{2, 2, "Shoot, rocks"},
		{2, 6, "play.html?game=space%20rocks"},
		{2, 7, "games/space rocks/index.html"},
	}
	for _, tt := range tests {
		if got := records[tt.row][tt.col]; got != tt.want {
			t.Errorf("records[%d][%d] = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, Rows(manifest, map[string]int{"snake": 7})); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "id" || rows[1][0] != "snake" || rows[2][0] != "space rocks" {
		t.Errorf("id column = %q, %q, %q", rows[0][0], rows[1][0], rows[2][0])
	}
	if rows[1][8] != "7" {
		t.Errorf("plays = %q, want 7", rows[1][8])
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"games.csv", FormatCSV, false},
		{"out/Games.XLSX", FormatXLSX, false},
		{"games.json", "", true},
		{"games", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFor(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.csv")
	if err := WriteFile(path, Rows(manifest, nil)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected non-empty file, got %v, %v", info, err)
	}

	if err := WriteFile(filepath.Join(dir, "games.txt"), nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
