package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the game's key bindings. Lowercase rotates positive,
// uppercase negative.
type KeyMap struct {
	PitchUp   key.Binding
	PitchDown key.Binding
	YawUp     key.Binding
	YawDown   key.Binding
	RollUp    key.Binding
	RollDown  key.Binding

	StepUp   key.Binding
	StepDown key.Binding
	ZoomOut  key.Binding
	ZoomIn   key.Binding

	StarsUp   key.Binding
	StarsDown key.Binding
	Catalog   key.Binding
	Names     key.Binding
	Distance  key.Binding
	Pane      key.Binding

	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PitchUp:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p/P", "pitch +/-")),
		PitchDown: key.NewBinding(key.WithKeys("P")),
		YawUp:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y/Y", "yaw +/-")),
		YawDown:   key.NewBinding(key.WithKeys("Y")),
		RollUp:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r/R", "roll +/-")),
		RollDown:  key.NewBinding(key.WithKeys("R")),

		StepUp:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S/s", "step up/down")),
		StepDown: key.NewBinding(key.WithKeys("s")),
		ZoomOut:  key.NewBinding(key.WithKeys("Z"), key.WithHelp("Z/z", "zoom out/in")),
		ZoomIn:   key.NewBinding(key.WithKeys("z")),

		StarsUp:   key.NewBinding(key.WithKeys("V"), key.WithHelp("V/v", "more/fewer stars")),
		StarsDown: key.NewBinding(key.WithKeys("v")),
		Catalog:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle catalog")),
		Names:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle star names")),
		Distance:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle distance")),
		Pane:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "target-only view")),

		Restart: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "bank score, new round")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PitchUp, k.YawUp, k.RollUp, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PitchUp, k.YawUp, k.RollUp, k.StepUp},
		{k.ZoomOut, k.StarsUp, k.Catalog, k.Names},
		{k.Distance, k.Pane, k.Restart, k.Quit},
	}
}
