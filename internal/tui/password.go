package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/core/pkg/zstyle"
)

const minPasswordLen = 4

// lockStage is where the lock screen is in its flow. A new store asks for
// the password twice; an existing one asks once.
type lockStage int

const (
	stageUnlock lockStage = iota
	stageCreate
	stageConfirm
)

var stagePrompts = map[lockStage]string{
	stageUnlock:  "master password:",
	stageCreate:  "create master password:",
	stageConfirm: "confirm password:",
}

// lockModel asks for the master password before the store is opened.
type lockModel struct {
	input   textinput.Model
	initial lockStage
	stage   lockStage
	pending string
	problem string
}

// passwordSubmitMsg carries the password to open the store with.
type passwordSubmitMsg struct {
	password string
}

// passwordErrMsg reports that the store refused to open.
type passwordErrMsg struct {
	err error
}

func newPasswordModel(firstRun bool) lockModel {
	in := textinput.New()
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 128
	in.Width = 40
	in.Focus()

	stage := stageUnlock
	if firstRun {
		stage = stageCreate
	}
	return lockModel{input: in, initial: stage, stage: stage}
}

func (m lockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lockModel) Update(msg tea.Msg) (lockModel, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordErrMsg:
		return m.restart(openFailure(msg.err)), nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, zstyle.KeyEnter):
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// restart returns to the first prompt showing problem.
func (m lockModel) restart(problem string) lockModel {
	m.stage = m.initial
	m.pending = ""
	m.problem = problem
	m.input.Reset()
	return m
}

func openFailure(err error) string {
	if errors.Is(err, zstore.ErrWrongPassword) {
		return "wrong password"
	}
	return err.Error()
}

func (m lockModel) advance() (lockModel, tea.Cmd) {
	entered := m.input.Value()
	if entered == "" {
		return m, nil
	}

	switch m.stage {
	case stageCreate:
		if len(entered) < minPasswordLen {
			return m.restart(fmt.Sprintf("use at least %d characters", minPasswordLen)), nil
		}
		m.pending = entered
		m.stage = stageConfirm
		m.problem = ""
		m.input.Reset()
		return m, nil

	case stageConfirm:
		if entered != m.pending {
			return m.restart("passwords do not match"), nil
		}
	}

	m.problem = ""
	return m, func() tea.Msg { return passwordSubmitMsg{password: entered} }
}

func (m lockModel) View() string {
	pad := lipgloss.NewStyle().MarginLeft(2)

	s := "\n" + pad.Render(zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent))) + "\n"
	s += pad.Render(zstyle.MutedText.Render("zpersona")) + "\n\n"
	s += "  " + stagePrompts[m.stage] + "\n"
	s += "  " + m.input.View() + "\n"

	if m.stage == stageCreate {
		s += "\n  " + zstyle.MutedText.Render("saved persons are encrypted with this password")
	}
	if m.problem != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.problem)
	}
	return s + "\n"
}
