package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeys holds key bindings for the character list
type browseKeys struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	First    key.Binding
	Last     key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Reload   key.Binding
	Back     key.Binding
	Forward  key.Binding
	Copy     key.Binding
	Image    key.Binding
	Profile  key.Binding
	Logout   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings for the footer
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.PrevPage, k.NextPage, k.Filter, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help overlay
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.PrevPage, k.NextPage, k.First, k.Last},
		{k.Filter, k.Clear, k.Reload, k.Back, k.Forward},
		{k.Copy, k.Image, k.Profile, k.Logout, k.Help, k.Quit},
	}
}

// detailKeys holds key bindings for the detail modal
type detailKeys struct {
	Prev  key.Binding
	Next  key.Binding
	Image key.Binding
	Close key.Binding
	Help  key.Binding
}

// ShortHelp returns the bindings for the footer
func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Image, k.Close}
}

// FullHelp returns the bindings grouped for the help overlay
func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Image, k.Close, k.Help}}
}

// BrowseKeyMap returns the key bindings of the character list
func BrowseKeyMap() browseKeys {
	return browseKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last page"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filters"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "forward"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Image: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		Profile: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "edit profile"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DetailKeyMap returns the key bindings of the detail modal
func DetailKeyMap() detailKeys {
	return detailKeys{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Image: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
