package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/person"
)

// formField maps one input to a person directive key.
type formField struct {
	label       string
	key         string
	placeholder string
}

var formFields = []formField{
	{"sex", "sex", "male or female"},
	{"age", "age", "e.g. 30"},
	{"min age", "minAge", "1"},
	{"max age", "maxAge", "100"},
	{"born", "dateOfBirth", "YYYY-MM-DD"},
	{"first name", "firstName", ""},
	{"last name", "lastName", ""},
	{"job", "jobTitle", ""},
	{"phone format", "telephoneFormat", "e.g. +48 ### ### ###"},
}

// formModel collects overrides for the next generation. Empty inputs are
// left to the generator.
type formModel struct {
	inputs []textinput.Model
	focus  int
	flash  string
}

func newFormModel() formModel {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.Prompt = ""
		ti.Placeholder = f.placeholder
		inputs[i] = ti
	}
	return formModel{inputs: inputs}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) focusFirst() formModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	return m
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), textinput.Blink
	case "shift+tab", "up":
		return m.moveFocus(-1), textinput.Blink
	case "ctrl+r":
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.flash = "cleared"
		return m, clearFlashAfter()
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// directives returns key=value strings for every filled input.
func (m formModel) directives() []string {
	var out []string
	for i, f := range formFields {
		v := strings.TrimSpace(m.inputs[i].Value())
		if v == "" {
			continue
		}
		out = append(out, f.key+"="+v)
	}
	return out
}

func (m formModel) submit() (formModel, tea.Cmd) {
	var props []person.Property
	for _, d := range m.directives() {
		p, err := person.ParseProperty(d)
		if err != nil {
			m.flash = err.Error()
			return m.focusOn(d), clearFlashAfter()
		}
		props = append(props, p)
	}

	m.flash = ""
	return m, func() tea.Msg { return generateMsg{props: props} }
}

// focusOn moves focus to the input that produced directive d.
func (m formModel) focusOn(d string) formModel {
	k, _, _ := strings.Cut(d, "=")
	for i, f := range formFields {
		if f.key == k {
			return m.moveFocus(i - m.focus)
		}
	}
	return m
}

func (m formModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("overrides") + "  " +
		zstyle.MutedText.Render("empty fields are generated") + "\n\n"

	for i, f := range formFields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-13s", f.label))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
	}

	s += "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
