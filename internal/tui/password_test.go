package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstore"
)

func TestPasswordViewShowsPrompt(t *testing.T) {
	m := newPasswordModel(false)
	view := m.View()

	if !strings.Contains(view, "master password") {
		t.Error("view should show master password prompt")
	}
	if strings.Contains(view, "create") {
		t.Error("unlock view should not contain 'create'")
	}
	if !strings.Contains(view, "zpersona") {
		t.Error("view should show tool name")
	}
}

func TestPasswordFirstRunShowsCreate(t *testing.T) {
	m := newPasswordModel(true)
	view := m.View()

	if !strings.Contains(view, "create master password") {
		t.Error("first-run view should show 'create master password'")
	}
	if !strings.Contains(view, "encrypted") {
		t.Error("first-run view should explain what the password protects")
	}
}

func TestPasswordFirstRunConfirmFlow(t *testing.T) {
	m := newPasswordModel(true)

	m.input.SetValue("secret")
	m, _ = m.Update(enterKey())
	if m.stage != stageConfirm {
		t.Fatal("should be confirming after first entry")
	}
	if !strings.Contains(m.View(), "confirm password") {
		t.Error("view should show confirm prompt")
	}

	m.input.SetValue("secret")
	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("matching passwords should emit a command")
	}
	submit, ok := cmd().(passwordSubmitMsg)
	if !ok {
		t.Fatalf("expected passwordSubmitMsg, got %T", cmd())
	}
	if submit.password != "secret" {
		t.Errorf("password = %q, want secret", submit.password)
	}
}

func TestPasswordFirstRunMismatch(t *testing.T) {
	m := newPasswordModel(true)

	m.input.SetValue("secret1")
	m, _ = m.Update(enterKey())
	m.input.SetValue("secret2")
	m, _ = m.Update(enterKey())

	if !strings.Contains(m.View(), "passwords do not match") {
		t.Error("should show mismatch error")
	}
	if m.stage == stageConfirm {
		t.Error("should reset confirming state")
	}
}

func TestPasswordFirstRunTooShort(t *testing.T) {
	m := newPasswordModel(true)

	m.input.SetValue("abc")
	m, cmd := m.Update(enterKey())

	if cmd != nil || m.stage == stageConfirm {
		t.Error("short password should be rejected before confirmation")
	}
	if !strings.Contains(m.View(), fmt.Sprintf("at least %d", minPasswordLen)) {
		t.Error("should explain the length rule")
	}
}

func TestPasswordUnlockSubmitsImmediately(t *testing.T) {
	m := newPasswordModel(false)
	m.input.SetValue("abc")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("unlock should submit without confirmation")
	}
	if _, ok := cmd().(passwordSubmitMsg); !ok {
		t.Error("expected passwordSubmitMsg")
	}
}

func TestPasswordSubmitEmptyIgnored(t *testing.T) {
	m := newPasswordModel(false)
	_, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("empty password should not emit command")
	}
}

func TestPasswordQKeyDoesNotQuit(t *testing.T) {
	m := newPasswordModel(false)

	updated, cmd := m.Update(keyMsg('q'))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("pressing 'q' should not quit the password view")
		}
	}
	if updated.input.Value() != "q" {
		t.Errorf("input = %q, want q", updated.input.Value())
	}
}

func TestPasswordCtrlCQuits(t *testing.T) {
	m := newPasswordModel(false)
	_, cmd := m.Update(specialKey(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should produce QuitMsg")
	}
}

func TestPasswordErrMsgClearsInput(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrong password", fmt.Errorf("open store: %w", zstore.ErrWrongPassword), "wrong password"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPasswordModel(false)
			m.input.SetValue("typed")

			m, _ = m.Update(passwordErrMsg{err: tt.err})

			if m.input.Value() != "" {
				t.Error("input should be cleared on error")
			}
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("view should show %q", tt.want)
			}
		})
	}
}

func TestPasswordOpenFailureRestartsFirstRun(t *testing.T) {
	m := newPasswordModel(true)

	m.input.SetValue("secret")
	m, _ = m.Update(enterKey())
	m, _ = m.Update(passwordErrMsg{err: errors.New("mkdir: permission denied")})

	if m.stage != stageCreate {
		t.Errorf("stage = %d, want create", m.stage)
	}
	if !strings.Contains(m.View(), "create master password") {
		t.Error("should ask to create the password again")
	}
}
