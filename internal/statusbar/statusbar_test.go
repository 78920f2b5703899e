package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestStatusBar_DefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetInfo(Info{
		FilePath: "/tmp/art.json",
		Modified: true,
		Width:    32, Height: 16,
		CursorX: 3, CursorY: 4,
		Tool: "fill", Glyph: '█',
		FG: "#ffffff", BG: "#000000",
		Anchor: "center",
		Undo:   2,
	})
	text, style := sb.Text()
	for _, want := range []string{"art.json [+]", "32x16", "(3,4)", "fill █", "undo 2 redo 0"} {
		if !strings.Contains(text, want) {
			t.Fatalf("text %q missing %q", text, want)
		}
	}
	if style != sb.config.StyleModified {
		t.Fatal("expected modified style")
	}
}

func TestStatusBar_MessageExpires(t *testing.T) {
	sb := New(Config{MessageTimeout: time.Second, StyleError: tcell.StyleDefault.Bold(true)})
	now := time.Unix(100, 0)
	sb.now = func() time.Time { return now }

	sb.SetErrorMessage("save failed: %s", "disk full")
	text, style := sb.Text()
	if text != "save failed: disk full" || style != sb.config.StyleError {
		t.Fatalf("text = %q", text)
	}

	now = now.Add(2 * time.Second)
	if text, _ := sb.Text(); !strings.HasPrefix(text, "[No Name]") {
		t.Fatalf("text after timeout = %q", text)
	}
}

func TestStatusBar_Draw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(12, 3)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("saved everything")
	sb.Draw(s, 12, 3)
	var got []rune
	for x := 0; x < 12; x++ {
		r, _, _, _ := s.GetContent(x, 2)
		got = append(got, r)
	}
	if string(got) != "saved everyt" {
		t.Fatalf("row = %q", string(got))
	}
}
