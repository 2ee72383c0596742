package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/store"
)

// forgetMsg requests deletion of a record.
type forgetMsg struct {
	id string
}

// forgetModel confirms deleting a saved person.
type forgetModel struct {
	record store.Record
	back   viewID
	err    string
}

func newForgetModel(r store.Record, back viewID) forgetModel {
	return forgetModel{record: r, back: back}
}

func (m forgetModel) Init() tea.Cmd {
	return nil
}

func (m forgetModel) Update(msg tea.Msg) (forgetModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(km, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if km.String() == "y" {
		id := m.record.ID
		return m, func() tea.Msg { return forgetMsg{id: id} }
	}

	// any other key cancels
	back := m.back
	return m, func() tea.Msg { return navigateMsg{view: back} }
}

func (m forgetModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("forget "+m.record.Person.FullName()+"?") + "\n\n"
	s += "  " + zstyle.MutedText.Render(m.record.Person.Email) + "\n\n"
	s += "  " + zstyle.StatusWarn.Render("this cannot be undone.") + " (y/n)\n"

	if m.err != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.err) + "\n"
	}
	return s
}
