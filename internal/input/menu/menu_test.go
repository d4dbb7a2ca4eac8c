package menu

import "testing"

func TestDefaultLayout(t *testing.T) {
	m := New()

	cols := m.Columns()
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	titles := []string{"File", "Color", "Settings"}
	for i, c := range cols {
		if c.Title != titles[i] {
			t.Errorf("column %d: expected %q, got %q", i, titles[i], c.Title)
		}
	}

	item, ok := m.Selected()
	if !ok || item.ID != ItemNewFile {
		t.Errorf("expected New file selected, got %+v", item)
	}
}

func TestHorizontalWrap(t *testing.T) {
	m := New()

	m.Left()
	if m.Column() != 2 {
		t.Errorf("Left from first column should wrap to 2, got %d", m.Column())
	}
	m.Right()
	if m.Column() != 0 {
		t.Errorf("Right from last column should wrap to 0, got %d", m.Column())
	}
}

func TestColumnChangeResetsItem(t *testing.T) {
	m := New()
	m.Down()
	m.Down()

	m.Right()
	if m.Item() != 0 {
		t.Errorf("expected item 0 after column change, got %d", m.Item())
	}
}

func TestVerticalWrap(t *testing.T) {
	m := New()

	m.Up()
	item, _ := m.Selected()
	if item.ID != ItemSaveAs {
		t.Errorf("Up from first item should wrap to Save as, got %q", item.Label)
	}
	m.Down()
	item, _ = m.Selected()
	if item.ID != ItemNewFile {
		t.Errorf("Down from last item should wrap to New file, got %q", item.Label)
	}
}

func TestSelectSaveAs(t *testing.T) {
	m := New()
	for i := 0; i < 3; i++ {
		m.Down()
	}

	item, _ := m.Selected()
	if item.ID != ItemSaveAs || item.Label != "Save as" {
		t.Errorf("expected Save as, got %+v", item)
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Right()
	m.Down()

	m.Reset()
	if m.Column() != 0 || m.Item() != 0 {
		t.Errorf("expected (0, 0), got (%d, %d)", m.Column(), m.Item())
	}
}

func TestSingleEntries(t *testing.T) {
	m := NewWithColumns([]Column{
		{Title: "Only", Items: []Item{{ItemSave, "Save"}}},
		{Title: "Empty"},
	})

	if len(m.Columns()) != 1 {
		t.Fatalf("empty columns should be dropped, got %d", len(m.Columns()))
	}
	if m.Right() || m.Left() || m.Up() || m.Down() {
		t.Error("single entry menu should not move")
	}
}

func TestEmptyMenu(t *testing.T) {
	m := NewWithColumns(nil)
	if _, ok := m.Selected(); ok {
		t.Error("empty menu has no selection")
	}
	if m.Down() {
		t.Error("empty menu should not move")
	}
}
