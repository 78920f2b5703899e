package history

import (
	"image/color"
	"testing"

	"github.com/bethropolis/glyphpaint/internal/canvas"
)

var (
	cellA = canvas.Filled(canvas.Tile{Glyph: 'A', FG: color.RGBA{255, 255, 255, 255}, BG: color.RGBA{0, 0, 0, 255}})
	cellB = canvas.Filled(canvas.Tile{Glyph: 'B', FG: color.RGBA{0, 255, 0, 255}, BG: color.RGBA{0, 0, 0, 255}})
)

// distinctPoints returns n commands that all differ from their predecessor.
func distinctPoints(n, width int) []Command {
	cmds := make([]Command, n)
	for i := range cmds {
		c := cellA
		if i%2 == 1 {
			c = cellB
		}
		cmds[i] = Point{Cell: c, X: i % width, Y: (i / width) % width}
	}
	return cmds
}

func replay(base *canvas.Grid, cmds []Command) *canvas.Grid {
	g := base.Clone()
	ApplyAll(g, cmds)
	return g
}

func TestManager_PushDeduplicatesConsecutive(t *testing.T) {
	m := NewManager(0)
	p := Point{Cell: cellA, X: 1, Y: 1}
	if !m.Push(p) {
		t.Fatal("expected first push to change the log")
	}
	if m.Push(p) {
		t.Fatal("expected identical push to be ignored")
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
	m.Push(Point{Cell: cellB, X: 1, Y: 1})
	m.Push(p)
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
}

func TestManager_PushClearsRedo(t *testing.T) {
	m := NewManager(0)
	m.Push(Point{Cell: cellA})
	m.Push(Point{Cell: cellB})
	m.Undo()
	if !m.CanRedo() {
		t.Fatal("expected redo to be available")
	}
	m.Push(Point{Cell: cellA, X: 2})
	if m.CanRedo() {
		t.Fatal("expected push to clear the redo stack")
	}
}

func TestManager_DuplicatePushKeepsRedo(t *testing.T) {
	m := NewManager(0)
	m.Push(Point{Cell: cellA})
	m.Push(Point{Cell: cellB})
	m.Undo()
	m.Push(Point{Cell: cellA})
	if m.RedoLen() != 1 {
		t.Fatalf("redo len = %d, want 1", m.RedoLen())
	}
}

func TestManager_UndoRedoRoundTrip(t *testing.T) {
	m := NewManager(0)
	for _, cmd := range distinctPoints(5, 4) {
		m.Push(cmd)
	}
	before := m.Commands()

	if !m.Undo() || !m.Redo() {
		t.Fatal("expected undo and redo to succeed")
	}
	after := m.Commands()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Fatalf("command %d = %v, want %v", i, after[i], before[i])
		}
	}
}

func TestManager_EmptyOperations(t *testing.T) {
	m := NewManager(0)
	if m.Undo() || m.Redo() {
		t.Fatal("expected undo/redo on empty history to report false")
	}
	base := canvas.New(2, 2)
	if got := m.Render(base); !got.Equal(base) {
		t.Fatal("expected empty history to render the base")
	}
}

func TestManager_PushThenUndoRestoresRender(t *testing.T) {
	base := canvas.New(4, 4)
	m := NewManager(0)
	for _, cmd := range distinctPoints(17, 4) {
		m.Push(cmd)
	}
	commands := []Command{
		Point{Cell: cellB, X: 3, Y: 3},
		RectFill{Cell: cellA, X0: 3, Y0: 3, X1: 0, Y1: 0},
		NewRegionFill(m.Render(base), 0, 0, canvas.Empty()),
		NewResize(m.Render(base), 6, 2, canvas.AnchorCenter),
	}
	for _, cmd := range commands {
		t.Run(cmd.Kind().String(), func(t *testing.T) {
			want := m.Render(base)
			m.Push(cmd)
			m.Undo()
			if got := m.Render(base); !got.Equal(want) {
				t.Fatalf("render after push+undo differs from render before push")
			}
		})
	}
}

func TestManager_RenderMatchesFullReplay(t *testing.T) {
	base := canvas.New(5, 5)
	base.Set(4, 4, cellB)
	m := NewManager(4)
	cmds := distinctPoints(23, 5)
	for i, cmd := range cmds {
		m.Push(cmd)
		got := m.Render(base)
		if !got.Equal(replay(base, cmds[:i+1])) {
			t.Fatalf("render after %d pushes differs from full replay", i+1)
		}
	}
	if m.Boundary() != 23/4 {
		t.Fatalf("boundary = %d, want %d", m.Boundary(), 23/4)
	}

	// Walk back and forward through the whole log.
	for i := len(cmds) - 1; i >= 0; i-- {
		m.Undo()
		if got := m.Render(base); !got.Equal(replay(base, cmds[:i])) {
			t.Fatalf("render after undo to %d differs from full replay", i)
		}
	}
	for i := 1; i <= len(cmds); i++ {
		m.Redo()
		if got := m.Render(base); !got.Equal(replay(base, cmds[:i])) {
			t.Fatalf("render after redo to %d differs from full replay", i)
		}
	}
}

func TestManager_UndoAcrossBoundaryInvalidatesCheckpoint(t *testing.T) {
	base := canvas.New(8, 8)
	m := NewManager(DefaultCheckpointGap)
	cmds := distinctPoints(20, 8)
	for _, cmd := range cmds {
		m.Push(cmd)
	}
	m.Render(base)
	if m.Boundary() != 1 {
		t.Fatalf("boundary = %d, want 1", m.Boundary())
	}

	m.Undo()
	if m.Boundary() != 1 {
		t.Fatalf("boundary after one undo = %d, want 1", m.Boundary())
	}
	for i := 0; i < 3; i++ {
		m.Undo()
	}
	// 16 commands left: still covered by the first batch.
	if m.Boundary() != 1 {
		t.Fatalf("boundary at 16 commands = %d, want 1", m.Boundary())
	}
	m.Undo()
	if m.Boundary() != 0 {
		t.Fatalf("boundary at 15 commands = %d, want 0", m.Boundary())
	}
	if got := m.Render(base); !got.Equal(replay(base, cmds[:15])) {
		t.Fatal("render after invalidation differs from full replay")
	}
}

func TestManager_TwentyPushesOneUndo(t *testing.T) {
	base := canvas.New(16, 16)
	m := NewManager(16)
	cmds := make([]Command, 20)
	for i := range cmds {
		cmds[i] = Point{Cell: cellA, X: i % 16, Y: i / 16}
		m.Push(cmds[i])
	}
	// The checkpoint only advances on render.
	m.Render(base)
	if m.Boundary() != 1 {
		t.Fatalf("boundary = %d, want 1", m.Boundary())
	}

	// 19 commands: 19/16 == 1, the checkpoint still holds.
	m.Undo()
	if m.Boundary() != 1 {
		t.Fatalf("boundary = %d, want 1", m.Boundary())
	}
	if got := m.Render(base); !got.Equal(replay(base, cmds[:19])) {
		t.Fatal("render differs from replay of 19 commands")
	}
}

func TestManager_RenderReturnsOwnedCopy(t *testing.T) {
	base := canvas.New(3, 3)
	m := NewManager(1)
	m.Push(Point{Cell: cellA, X: 0, Y: 0})

	first := m.Render(base)
	first.Set(2, 2, cellB)
	second := m.Render(base)
	if !second.Get(2, 2).IsEmpty() {
		t.Fatal("expected render result to be isolated from the checkpoint")
	}
	if !base.Get(0, 0).IsEmpty() {
		t.Fatal("expected base grid to be untouched")
	}
}

func TestManager_Clear(t *testing.T) {
	base := canvas.New(4, 4)
	m := NewManager(2)
	for _, cmd := range distinctPoints(6, 4) {
		m.Push(cmd)
	}
	m.Undo()
	m.Render(base)
	m.Clear()
	if m.Len() != 0 || m.RedoLen() != 0 || m.Boundary() != 0 {
		t.Fatalf("state after clear: len=%d redo=%d boundary=%d", m.Len(), m.RedoLen(), m.Boundary())
	}
	other := canvas.New(2, 3)
	if got := m.Render(other); !got.Equal(other) {
		t.Fatal("expected render after clear to start from the new base")
	}
}

func TestManager_SplitPointAssociativity(t *testing.T) {
	base := canvas.New(6, 6)
	m := NewManager(3)
	m.Push(Point{Cell: cellA, X: 0, Y: 0})
	m.Push(Point{Cell: cellA, X: 1, Y: 0})
	m.Push(RectFill{Cell: cellB, X0: 5, Y0: 5, X1: 3, Y1: 3})
	m.Push(NewRegionFill(m.Render(base), 0, 0, cellB))
	m.Push(NewResize(m.Render(base), 8, 4, canvas.AnchorBottomRight))
	m.Push(Point{Cell: cellA, X: 7, Y: 3})
	m.Push(NewRegionFill(m.Render(base), 0, 0, cellA))

	log := m.Commands()
	whole := replay(base, log)
	for k := 0; k <= len(log); k++ {
		g := base.Clone()
		ApplyAll(g, log[:k])
		ApplyAll(g, log[k:])
		if !g.Equal(whole) {
			t.Fatalf("split at %d differs from applying the whole log", k)
		}
	}
	if !m.Render(base).Equal(whole) {
		t.Fatal("render differs from applying the whole log")
	}
}

func TestScenario_FillAfterPoints(t *testing.T) {
	base := canvas.New(4, 4)
	m := NewManager(DefaultCheckpointGap)
	m.Push(Point{Cell: cellA, X: 0, Y: 0})
	m.Push(Point{Cell: cellA, X: 1, Y: 0})
	m.Push(NewRegionFill(m.Render(base), 0, 0, cellB))

	got := m.Render(base)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := canvas.Empty()
			if y == 0 && x <= 1 {
				want = cellB
			}
			if got.Get(x, y) != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got.Get(x, y), want)
			}
		}
	}
}
