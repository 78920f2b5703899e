package canvasfile

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/glyphpaint/internal/canvas"
)

func sampleGrid() *canvas.Grid {
	g := canvas.New(3, 2)
	g.Set(0, 0, canvas.Filled(canvas.Tile{Glyph: 1, FG: color.RGBA{255, 255, 255, 255}, BG: color.RGBA{0, 0, 0, 255}}))
	g.Set(2, 1, canvas.Filled(canvas.Tile{Glyph: 219, FG: color.RGBA{10, 20, 30, 40}, BG: color.RGBA{1, 2, 3, 4}}))
	return g
}

func TestEncode_Layout(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleGrid()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"size_x": 3`, `"size_y": 2`, `"idx": 219`, "null"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestDecode_CompactDocument(t *testing.T) {
	doc := `{"cells":[{"idx":65,"fc":[255,0,0,255],"bc":[0,0,0,255]},null],"size_x":2,"size_y":1}`
	g, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tile, ok := g.Get(0, 0).Tile()
	if !ok || tile.Glyph != 65 || tile.FG != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("cell (0,0) = %v", g.Get(0, 0))
	}
	if !g.Get(1, 0).IsEmpty() {
		t.Fatalf("cell (1,0) = %v, want empty", g.Get(1, 0))
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero size", `{"cells":[],"size_x":0,"size_y":3}`, ErrInvalidSize},
		{"short cells", `{"cells":[null],"size_x":2,"size_y":1}`, ErrCellCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := Decode(strings.NewReader("{")); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"art.json", "art.json.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			want := sampleGrid()
			if err := Save(path, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !got.Equal(want) {
				t.Fatalf("loaded grid differs from saved grid")
			}
		})
	}
}

func TestSave_CompressedIsNotPlainJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.zst")
	if err := Save(path, sampleGrid()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		t.Fatal("expected compressed bytes, got JSON")
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "a.json"), sampleGrid()); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want not exist", err)
	}
}
