package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit           key.Binding
	ForceQuit      key.Binding
	Refresh        key.Binding // r: pull new posts
	Compose        key.Binding // n: focus the inline compose box
	ComposeEditor  key.Binding // e: compose via $EDITOR
	Publish        key.Binding // ctrl+s: publish the compose box
	Like           key.Binding
	Comments       key.Binding // c: open the comment thread
	Profile        key.Binding
	Up             key.Binding
	Down           key.Binding
	Back           key.Binding
	Submit         key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	TogglePassword key.Binding
	SwitchForm     key.Binding // ctrl+r: jump between login and registration
	Follow         key.Binding
	ToggleHints    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "salir"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "forzar salida"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "actualizar"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "escribir"),
		),
		ComposeEditor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "escribir ($EDITOR)"),
		),
		Publish: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "publicar"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "me gusta"),
		),
		Comments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comentarios"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "perfil"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "arriba"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "abajo"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "volver"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "enviar"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "siguiente"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "anterior"),
		),
		TogglePassword: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "mostrar contraseña"),
		),
		SwitchForm: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "registro / login"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "seguir"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ayuda"),
		),
	}
}

// ShortHelp implements help.KeyMap for the feed list.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compose, k.Like, k.Comments, k.Refresh, k.Profile, k.ToggleHints, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Like, k.Comments},
		{k.Compose, k.ComposeEditor, k.Publish, k.Back},
		{k.Refresh, k.Profile, k.ToggleHints, k.Quit, k.ForceQuit},
	}
}
