package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the widget bindings. Plain runes are left to the text inputs so numbers,
// signs and exponents can be typed.
type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	FocusUp   key.Binding
	FocusDown key.Binding
	Category  key.Binding
	CycleFrom key.Binding
	CycleTo   key.Binding
	Swap      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		FocusUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "from field")),
		FocusDown: key.NewBinding(key.WithKeys("down", "enter"), key.WithHelp("↓", "to field")),
		Category:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "category")),
		CycleFrom: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "from unit")),
		CycleTo:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "to unit")),
		Swap:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Swap, k.CycleFrom, k.CycleTo, k.Category, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.FocusUp, k.FocusDown},
		{k.Category, k.CycleFrom, k.CycleTo, k.Swap, k.Quit},
	}
}
