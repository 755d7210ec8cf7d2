package graph

import "testing"

func widgetNode(t *testing.T) *Node {
	t.Helper()
	return NewNode(7, "widgets", &countingOp{},
		[]SocketSpec{
			{Type: TypeString, Label: "Op", Default: Choice{Index: 1, Options: []string{"a", "b", "c"}}},
			{Type: TypeNumber, Label: "A", Default: Text{Value: "1.5"}},
			{Type: TypeNumber, Label: "Plain"},
			{Type: TypeNumber, Label: "Val", Default: Range{Min: 0, Max: 100, Current: 30}},
		},
		[]SocketSpec{{Type: TypeNumber, Label: "Out"}})
}

func TestSerializeWidgets(t *testing.T) {
	n := widgetNode(t)
	rec := n.Serialize()

	if rec.OpCode != 7 {
		t.Errorf("op code = %d, want 7", rec.OpCode)
	}
	if rec.ID != string(n.ID) {
		t.Errorf("id = %q, want %q", rec.ID, n.ID)
	}
	want := map[string]string{
		"widget0": "1",
		"widget1": "1.5",
		"widget3": "30",
	}
	if len(rec.Widgets) != len(want) {
		t.Fatalf("widgets = %v, want %v", rec.Widgets, want)
	}
	for k, v := range want {
		if rec.Widgets[k] != v {
			t.Errorf("widgets[%q] = %q, want %q", k, rec.Widgets[k], v)
		}
	}
	if _, ok := rec.Widgets["widget2"]; ok {
		t.Error("empty default should not serialize a widget entry")
	}
}

func TestRestoreAppliesWidgets(t *testing.T) {
	n := widgetNode(t)
	problems := n.Restore(NodeRecord{
		OpCode: 7,
		Widgets: map[string]string{
			"widget0": "2",
			"widget1": "banana",
			"widget3": "85",
		},
	})
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}

	if got := n.Inputs[0].Default.(Choice).Index; got != 2 {
		t.Errorf("choice index = %d, want 2", got)
	}
	if got := n.Inputs[1].Default.(Text).Value; got != "banana" {
		t.Errorf("text = %q, want banana", got)
	}
	if got := n.Inputs[3].Default.(Range).Current; got != 85 {
		t.Errorf("range = %v, want 85", got)
	}
	if !n.IsDirty() {
		t.Error("restore should leave the node dirty")
	}
}

func TestRestoreIsTolerant(t *testing.T) {
	n := widgetNode(t)
	problems := n.Restore(NodeRecord{
		OpCode: 7,
		Widgets: map[string]string{
			"widget0": "99",  // choice index out of range
			"widget3": "abc", // not a number
			// widget1 missing entirely
		},
	})
	if len(problems) != 2 {
		t.Fatalf("problems = %v, want 2 entries", problems)
	}

	// Malformed entries keep the construction defaults.
	if got := n.Inputs[0].Default.(Choice).Index; got != 1 {
		t.Errorf("choice index = %d, want construction default 1", got)
	}
	if got := n.Inputs[3].Default.(Range).Current; got != 30 {
		t.Errorf("range = %v, want construction default 30", got)
	}
	if got := n.Inputs[1].Default.(Text).Value; got != "1.5" {
		t.Errorf("text = %q, want construction default 1.5", got)
	}
}
