// Package canvasfile reads and writes canvases as JSON documents.
//
// The document layout is
//
//	{"cells": [null | {"idx": 1, "fc": [r,g,b,a], "bc": [r,g,b,a]}, ...], "size_x": 16, "size_y": 16}
//
// with cells in row-major order. Files whose name ends in ".zst" are
// zstd-compressed.
package canvasfile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/klauspost/compress/zstd"
)

var (
	// ErrInvalidSize indicates a document with a non-positive width or height.
	ErrInvalidSize = errors.New("invalid canvas size")
	// ErrCellCount indicates a document whose cell list does not match its size.
	ErrCellCount = errors.New("cell count does not match canvas size")
)

// CompressedExt marks zstd-compressed canvas files.
const CompressedExt = ".zst"

type jsonTile struct {
	Idx int      `json:"idx"`
	FC  [4]uint8 `json:"fc"`
	BC  [4]uint8 `json:"bc"`
}

type jsonCanvas struct {
	Cells []*jsonTile `json:"cells"`
	SizeX int         `json:"size_x"`
	SizeY int         `json:"size_y"`
}

func toRGBA(c [4]uint8) color.RGBA { return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]} }
func fromRGBA(c color.RGBA) [4]uint8 { return [4]uint8{c.R, c.G, c.B, c.A} }

// Encode writes g as an indented JSON document.
func Encode(w io.Writer, g *canvas.Grid) error {
	doc := jsonCanvas{
		Cells: make([]*jsonTile, 0, g.Width()*g.Height()),
		SizeX: g.Width(),
		SizeY: g.Height(),
	}
	for _, c := range g.Cells() {
		t, ok := c.Tile()
		if !ok {
			doc.Cells = append(doc.Cells, nil)
			continue
		}
		doc.Cells = append(doc.Cells, &jsonTile{Idx: t.Glyph, FC: fromRGBA(t.FG), BC: fromRGBA(t.BG)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode canvas: %w", err)
	}
	return nil
}

// Decode reads a JSON document and validates its shape.
func Decode(r io.Reader) (*canvas.Grid, error) {
	var doc jsonCanvas
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode canvas: %w", err)
	}
	if doc.SizeX <= 0 || doc.SizeY <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, doc.SizeX, doc.SizeY)
	}
	if len(doc.Cells) != doc.SizeX*doc.SizeY {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrCellCount, doc.SizeX, doc.SizeY, len(doc.Cells))
	}
	cells := make([]canvas.Cell, len(doc.Cells))
	for i, t := range doc.Cells {
		if t == nil {
			continue
		}
		cells[i] = canvas.Filled(canvas.Tile{Glyph: t.Idx, FG: toRGBA(t.FC), BG: toRGBA(t.BC)})
	}
	return canvas.FromCells(doc.SizeX, doc.SizeY, cells)
}

func compressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

// Load reads the canvas stored at path.
func Load(path string) (*canvas.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if compressed(path) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}
	g, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("load '%s': %w", path, err)
	}
	logger.Debugf("CanvasFile: loaded %dx%d canvas from %s", g.Width(), g.Height(), path)
	return g, nil
}

// Save writes g to path. The file is written to a temporary sibling first and
// renamed into place, so a failed save leaves the previous file intact.
func Save(path string, g *canvas.Grid) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("save '%s': %w", path, err)
	}
	if err := write(tmp, path, g); err != nil {
		tmp.Close()
		return fmt.Errorf("save '%s': %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	logger.Debugf("CanvasFile: saved %dx%d canvas to %s", g.Width(), g.Height(), path)
	return nil
}

func write(f *os.File, path string, g *canvas.Grid) error {
	bw := bufio.NewWriter(f)
	if compressed(path) {
		enc, err := zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if err := Encode(enc, g); err != nil {
			enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else if err := Encode(bw, g); err != nil {
		return err
	}
	return bw.Flush()
}
