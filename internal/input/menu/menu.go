// Package menu implements the menu bar model: titled columns of items and
// a selection that wraps in both directions.
package menu

// ItemID identifies the action behind a menu item.
type ItemID uint8

// Menu item identifiers.
const (
	ItemNewFile ItemID = iota
	ItemOpenFile
	ItemSave
	ItemSaveAs
	ItemTheme1
	ItemTheme2
	ItemTheme3
	ItemSaveOnUnfocus
	ItemHighlight
)

// Item is a selectable menu entry.
type Item struct {
	ID    ItemID
	Label string
}

// Column is a menu title and the items listed under it.
type Column struct {
	Title string
	Items []Item
}

// DefaultColumns returns the editor's menu layout.
func DefaultColumns() []Column {
	return []Column{
		{Title: "File", Items: []Item{
			{ItemNewFile, "New file"},
			{ItemOpenFile, "Open file"},
			{ItemSave, "Save"},
			{ItemSaveAs, "Save as"},
		}},
		{Title: "Color", Items: []Item{
			{ItemTheme1, "Theme1"},
			{ItemTheme2, "Theme2"},
			{ItemTheme3, "Theme3"},
		}},
		{Title: "Settings", Items: []Item{
			{ItemSaveOnUnfocus, "Save on unfocus"},
			{ItemHighlight, "Syntax highlight"},
		}},
	}
}

// Menu tracks the selected column and item.
type Menu struct {
	columns []Column
	column  int
	item    int
}

// New creates a menu with the default layout.
func New() *Menu {
	return NewWithColumns(DefaultColumns())
}

// NewWithColumns creates a menu with a custom layout. Columns without
// items are dropped.
func NewWithColumns(columns []Column) *Menu {
	m := &Menu{}
	for _, c := range columns {
		if len(c.Items) > 0 {
			m.columns = append(m.columns, c)
		}
	}
	return m
}

// Columns returns the menu layout.
func (m *Menu) Columns() []Column {
	return m.columns
}

// Column returns the index of the selected column.
func (m *Menu) Column() int {
	return m.column
}

// Item returns the index of the selected item within the column.
func (m *Menu) Item() int {
	return m.item
}

// Right selects the next column, wrapping to the first, and resets the item.
func (m *Menu) Right() bool {
	if len(m.columns) < 2 {
		return false
	}
	m.column = (m.column + 1) % len(m.columns)
	m.item = 0
	return true
}

// Left selects the previous column, wrapping to the last, and resets the
// item.
func (m *Menu) Left() bool {
	if len(m.columns) < 2 {
		return false
	}
	m.column = (m.column - 1 + len(m.columns)) % len(m.columns)
	m.item = 0
	return true
}

// Down selects the next item, wrapping to the first.
func (m *Menu) Down() bool {
	n := m.itemCount()
	if n < 2 {
		return false
	}
	m.item = (m.item + 1) % n
	return true
}

// Up selects the previous item, wrapping to the last.
func (m *Menu) Up() bool {
	n := m.itemCount()
	if n < 2 {
		return false
	}
	m.item = (m.item - 1 + n) % n
	return true
}

// Selected returns the selected item. ok is false for an empty menu.
func (m *Menu) Selected() (item Item, ok bool) {
	if len(m.columns) == 0 {
		return Item{}, false
	}
	return m.columns[m.column].Items[m.item], true
}

// Reset selects the first item of the first column.
func (m *Menu) Reset() {
	m.column = 0
	m.item = 0
}

func (m *Menu) itemCount() int {
	if len(m.columns) == 0 {
		return 0
	}
	return len(m.columns[m.column].Items)
}
