package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/person"
)

// generateModel displays a freshly generated person with actions.
type generateModel struct {
	person person.Person
	locale string
	props  []person.Property
	fields []person.Field
	cursor int
	saved  bool
	flash  string
}

// generateMsg asks the root to generate a person with the given overrides.
type generateMsg struct {
	props []person.Property
}

// savePersonMsg requests saving the current person.
type savePersonMsg struct {
	person person.Person
}

// personSavedMsg confirms the person was saved.
type personSavedMsg struct {
	id string
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(p person.Person, locale string, props []person.Property) generateModel {
	return generateModel{
		person: p,
		locale: locale,
		props:  props,
		fields: p.Fields(),
	}
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case personSavedMsg:
		m.saved = true
		m.flash = "saved as " + msg.id
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
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
	case "s":
		if m.saved {
			m.flash = "already saved"
			return m, clearFlashAfter()
		}
		p := m.person
		return m, func() tea.Msg { return savePersonMsg{person: p} }

	case "c":
		if err := copyToClipboard(fieldsText(m.fields)); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied all"
		return m, clearFlashAfter()

	case "n":
		props := m.props
		return m, func() tea.Msg { return generateMsg{props: props} }

	case "e":
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }
	}

	return m, nil
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// fieldsText renders fields as "label: value" lines for the clipboard.
func fieldsText(fields []person.Field) string {
	var b strings.Builder
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	return b.String()
}

// renderFields draws the field list with the cursor row highlighted.
func renderFields(fields []person.Field, cursor int) string {
	var b strings.Builder
	for i, f := range fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-11s", f.Label))
		value := f.Value
		if value == "" {
			value = zstyle.MutedText.Render("-")
		}
		if i == cursor {
			b.WriteString(zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, value)) + "\n")
		} else {
			fmt.Fprintf(&b, "    %s %s\n", label, value)
		}
	}
	return b.String()
}

func (m generateModel) View() string {
	sub := m.locale
	if n := len(m.props); n > 0 {
		sub += fmt.Sprintf("  %d overrides", n)
	}
	s := "\n  " + zstyle.Subtitle.Render(m.person.FullName()) + "  " + zstyle.MutedText.Render(sub) + "\n\n"

	s += renderFields(m.fields, m.cursor)
	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
