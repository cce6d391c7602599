package common

import (
	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/browse"
)

// This file contains custom tea.Msg types for communication between components.

// CharactersLoadedMsg carries the result of a list fetch
type CharactersLoadedMsg struct {
	Result browse.PageResult
}

// DetailLoadedMsg carries the result of a detail fetch
type DetailLoadedMsg struct {
	Result browse.DetailResult
}

// ApplyFiltersMsg is sent by the filter bar when the user confirms a filter set
type ApplyFiltersMsg struct {
	Filter api.Filter
}

// CloseFiltersMsg is sent by the filter bar when it is dismissed without changes
type CloseFiltersMsg struct{}

// SubmitProfileMsg is sent by the profile form on submit
type SubmitProfileMsg struct {
	Username string
	JobTitle string
}

// CancelProfileMsg is sent by the profile form when editing is abandoned
type CancelProfileMsg struct{}

// ImageOpenedMsg reports the outcome of opening a character image
type ImageOpenedMsg struct {
	URL string
	Err error
}
