// Package tui implements the root Bubble Tea model for zpersona.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/fairy"
	"github.com/zarlcorp/zpersona/internal/person"
	"github.com/zarlcorp/zpersona/internal/store"
)

// accent is zpersona's brand colour.
var accent = lipgloss.Color("#7AA2F7")

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewGenerate
	viewForm
	viewList
	viewDetail
	viewForget
	viewSettings
)

// Model is the root TUI model.
type Model struct {
	version  string
	cfg      config.Config
	logger   *slog.Logger
	now      func() time.Time
	firstRun bool

	store *store.Store
	fairy *fairy.Fairy

	active   viewID
	password lockModel
	menu     menuModel
	generate generateModel
	form     formModel
	list     listModel
	detail   detailModel
	forget   forgetModel
	settings settingsModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model. The store is opened once the user enters
// the master password.
func New(version string, cfg config.Config, firstRun bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		version:  version,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		firstRun: firstRun,
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version, cfg.Locale),
		form:     newFormModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case generateMsg:
		return m.handleGenerate(msg.props)

	case quickEmailMsg:
		return m.handleQuickEmail()

	case savePersonMsg:
		return m.handleSave(msg.person)

	case viewRecordMsg:
		m.detail = newDetailModel(msg.record)
		m.active = viewDetail
		return m, nil

	case forgetStartMsg:
		m.forget = newForgetModel(msg.record, m.active)
		m.active = viewForget
		return m, nil

	case forgetMsg:
		return m.handleForget(msg.id)

	case setLocaleMsg:
		return m.handleSetLocale(msg.tag)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo and render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewGenerate:
		content = m.generate.View()
	case viewForm:
		content = m.form.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	case viewForget:
		content = m.forget.View()
	case viewSettings:
		content = m.settings.View()
	}

	header := zstyle.RenderHeader("zpersona", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func viewTitle(id viewID) string {
	switch id {
	case viewGenerate:
		return "Generated Person"
	case viewForm:
		return "Overrides"
	case viewList:
		return "Saved Persons"
	case viewDetail:
		return "Person Details"
	case viewForget:
		return "Forget"
	case viewSettings:
		return "Settings"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy all"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "e", Desc: "overrides"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "enter", Desc: "generate"},
			{Key: "ctrl+r", Desc: "reset"},
			{Key: "esc", Desc: "cancel"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "forget"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "d", Desc: "forget"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewForget:
		return []zstyle.HelpPair{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
		}
	case viewSettings:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewForget:
		m.forget, cmd = m.forget.Update(msg)
	case viewSettings:
		m.settings, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	s, err := store.OpenDir(m.cfg.DataDir, password)
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	tag := m.cfg.Locale
	if pref := s.Preferences().Locale; pref != "" {
		tag = pref
	}

	f, err := m.newFairy(tag)
	if err != nil {
		m.logger.Warn("saved locale unusable, using configured", "locale", tag, "err", err)
		if f, err = m.newFairy(m.cfg.Locale); err != nil {
			s.Close()
			m.password, _ = m.password.Update(passwordErrMsg{err: err})
			return m, nil
		}
	}

	m.store = s
	m.fairy = f
	return m.navigate(viewMenu)
}

func (m Model) newFairy(tag string) (*fairy.Fairy, error) {
	opts := []fairy.Option{
		fairy.WithLocale(tag),
		fairy.WithLogger(m.logger),
		fairy.WithClock(m.now),
	}
	if m.cfg.Seed != nil {
		opts = append(opts, fairy.WithSeed(*m.cfg.Seed))
	}
	return fairy.New(opts...)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version, m.locale())
		if m.store != nil {
			if rs, err := m.store.List(); err == nil {
				mm.savedCount = len(rs)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewGenerate:
		return m.handleGenerate(nil)

	case viewForm:
		m.form = m.form.focusFirst()
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case viewList:
		m, cmd := m.loadList("")
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen

	case viewSettings:
		m.settings = newSettingsModel(m.locale())
		m.active = viewSettings
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) locale() string {
	if m.fairy != nil {
		return m.fairy.Locale()
	}
	return m.cfg.Locale
}

func (m Model) handleGenerate(props []person.Property) (tea.Model, tea.Cmd) {
	p, err := m.fairy.Person(props...)
	if err != nil {
		flash := "generate: " + err.Error()
		switch m.active {
		case viewForm:
			m.form.flash = flash
		case viewGenerate:
			m.generate.flash = flash
		default:
			m.menu.flash = flash
		}
		return m, clearFlashAfter()
	}

	m.generate = newGenerateModel(p, m.fairy.Locale(), props)
	m.active = viewGenerate
	return m, tea.ClearScreen
}

func (m Model) handleQuickEmail() (tea.Model, tea.Cmd) {
	addr, err := m.fairy.Email()
	if err != nil {
		m.menu.flash = "email: " + err.Error()
		return m, clearFlashAfter()
	}
	if err := copyToClipboard(addr); err != nil {
		m.menu.flash = addr + " (copy: " + err.Error() + ")"
		return m, clearFlashAfter()
	}
	m.menu.flash = "copied " + addr
	return m, clearFlashAfter()
}

func (m Model) handleSave(p person.Person) (tea.Model, tea.Cmd) {
	rec := store.NewRecord(m.fairy.Locale(), p, m.now())
	if err := m.store.Save(rec); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.logger.Debug("person saved", "id", rec.ID)
	m.generate, _ = m.generate.Update(personSavedMsg{id: rec.ShortID()})
	return m, clearFlashAfter()
}

func (m Model) loadList(flash string) (Model, tea.Cmd) {
	rs, err := m.store.List()
	if err != nil {
		m.list = newListModel(nil)
		m.list.flash = "load: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	m.list = newListModel(rs)
	m.active = viewList
	if flash == "" {
		return m, nil
	}
	m.list.flash = flash
	return m, clearFlashAfter()
}

func (m Model) handleForget(id string) (tea.Model, tea.Cmd) {
	rec, err := m.store.Delete(id)
	if err != nil {
		m.forget.err = err.Error()
		return m, nil
	}
	return m.loadList(fmt.Sprintf("forgot %s", rec.Person.FullName()))
}

func (m Model) handleSetLocale(tag string) (tea.Model, tea.Cmd) {
	f, err := m.newFairy(tag)
	if err != nil {
		m.settings.flash = "locale: " + err.Error()
		return m, clearFlashAfter()
	}
	if err := m.store.SavePreferences(store.Preferences{Locale: tag}); err != nil {
		m.settings.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.fairy = f
	m.settings.current = tag
	m.settings.flash = "locale set to " + tag
	return m, clearFlashAfter()
}

// Close locks the store. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
