package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/locale"
)

// setLocaleMsg asks the root to switch and persist the generation locale.
type setLocaleMsg struct {
	tag string
}

// settingsModel picks the locale used for generation.
type settingsModel struct {
	locales []string
	current string
	cursor  int
	flash   string
}

func newSettingsModel(current string) settingsModel {
	m := settingsModel{locales: locale.Supported(), current: current}
	for i, tag := range m.locales {
		if tag == current {
			m.cursor = i
		}
	}
	return m
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
			if m.cursor < len(m.locales)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			tag := m.locales[m.cursor]
			if tag == m.current {
				return m, nil
			}
			return m, func() tea.Msg { return setLocaleMsg{tag: tag} }
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m settingsModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("locale") + "\n\n"

	for i, tag := range m.locales {
		status := ""
		if tag == m.current {
			status = " " + zstyle.StatusOK.Render("active")
		}
		if i == m.cursor {
			s += zstyle.Highlight.Render(fmt.Sprintf("  > %s", tag)) + status + "\n"
		} else {
			s += fmt.Sprintf("    %s%s\n", tag, status)
		}
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}
	return s
}
