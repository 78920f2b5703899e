package event

import "testing"

func TestManager_DispatchOrder(t *testing.T) {
	m := NewManager()
	var got []int
	m.Subscribe(TypeCanvasSaved, func(e Event) bool {
		got = append(got, 1)
		if d, ok := e.Data.(CanvasSavedData); !ok || d.FilePath != "a.json" {
			t.Errorf("data = %#v, want CanvasSavedData for a.json", e.Data)
		}
		return false
	})
	m.Subscribe(TypeCanvasSaved, func(Event) bool { got = append(got, 2); return false })
	m.Subscribe(TypeCanvasLoaded, func(Event) bool { got = append(got, 99); return false })

	m.Dispatch(TypeCanvasSaved, CanvasSavedData{FilePath: "a.json"})
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("handlers ran %v, want [1 2]", got)
	}
}

func TestManager_ConsumedStops(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })
	m.Dispatch(TypeAppQuit, AppQuitData{})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestManager_SubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeCanvasModified, func(Event) bool {
		m.Subscribe(TypeCanvasModified, func(Event) bool { late++; return false })
		return false
	})
	m.Dispatch(TypeCanvasModified, nil)
	if late != 0 {
		t.Fatalf("late handler ran %d times during the dispatch that added it", late)
	}
	m.Dispatch(TypeCanvasModified, nil)
	if late != 1 {
		t.Fatalf("late = %d, want 1", late)
	}
}

func TestManager_NilDrops(t *testing.T) {
	var m *Manager
	m.Dispatch(TypeAppReady, AppReadyData{})
}

func TestType_String(t *testing.T) {
	if TypeHistoryCleared.String() != "history-cleared" {
		t.Fatalf("String = %q", TypeHistoryCleared.String())
	}
	if Type(42).String() != "Type(42)" {
		t.Fatalf("String = %q", Type(42).String())
	}
}
