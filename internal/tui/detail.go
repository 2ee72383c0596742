package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/person"
	"github.com/zarlcorp/zpersona/internal/store"
)

// detailModel displays all fields of a saved person.
type detailModel struct {
	record store.Record
	fields []person.Field
	cursor int
	flash  string
}

func newDetailModel(r store.Record) detailModel {
	return detailModel{
		record: r,
		fields: r.Person.Fields(),
	}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		f := m.fields[m.cursor]
		if err := copyToClipboard(f.Value); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied " + f.Label
		return m, clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		if err := copyToClipboard(fieldsText(m.fields)); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied all"
		return m, clearFlashAfter()

	case "d":
		rec := m.record
		return m, func() tea.Msg { return forgetStartMsg{record: rec} }
	}

	return m, nil
}

func (m detailModel) View() string {
	name := zstyle.Subtitle.Render(m.record.Person.FullName())
	meta := zstyle.MutedText.Render(m.record.ShortID() + "  " + m.record.Locale +
		"  saved " + m.record.CreatedAt.Format(time.DateOnly))
	s := "\n  " + name + "  " + meta + "\n\n"

	s += renderFields(m.fields, m.cursor)
	s += "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
