package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"bankey/internal/domain"
	"bankey/internal/eventbus"
	"bankey/internal/login"
	"bankey/internal/onboarding"
	"bankey/internal/ui/views"
)

type screen int

const (
	screenLogin screen = iota
	screenOnboarding
	screenHome
)

func (s screen) String() string {
	switch s {
	case screenLogin:
		return "login"
	case screenOnboarding:
		return "onboarding"
	case screenHome:
		return "home"
	default:
		return "unknown"
	}
}

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// Options configures the UI model
type Options struct {
	Bus               eventbus.EventBus
	Pages             []domain.Page
	UnknownPagePolicy onboarding.UnknownPagePolicy
	Checker           login.Checker
	OnboardingEnabled bool
	SignInDelay       time.Duration
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	keys     KeyMap
	help     help.Model
	renderer *views.Renderer

	screen screen
	width  int
	height int
	status string

	// onboarding
	pages             []domain.Page
	policy            onboarding.UnknownPagePolicy
	pager             *onboarding.Pager
	onboardingEnabled bool
	onboarded         bool // once per session

	// login
	form        *login.Form
	fields      [fieldCount]textinput.Model
	focus       int
	spinner     spinner.Model
	signInDelay time.Duration
	attemptID   string
	signedInAs  string

	helpOps *HelpOps
}

// NewModel creates a new UI model starting on the login screen
func NewModel(opts Options) (*Model, error) {
	// Fail early on a page list the pager would reject
	if _, err := onboarding.New(opts.Pages); err != nil {
		return nil, fmt.Errorf("invalid onboarding pages: %w", err)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:               opts.Bus,
		keys:              DefaultKeyMap(),
		help:              help.New(),
		renderer:          views.NewRenderer(),
		screen:            screenLogin,
		pages:             opts.Pages,
		policy:            opts.UnknownPagePolicy,
		onboardingEnabled: opts.OnboardingEnabled,
		form:              login.NewForm(login.NewValidator(opts.Checker)),
		spinner:           sp,
		signInDelay:       opts.SignInDelay,
		helpOps:           NewHelpOps(nil),
	}

	username := textinput.New()
	username.Placeholder = "Username"
	username.Prompt = ""
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m.fields[fieldUsername] = username
	m.fields[fieldPassword] = password
	m.fields[fieldUsername].Focus()

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.form.State() != login.FormLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case signInCompleteMsg:
		return m, m.completeSignIn(msg.attemptID)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.status = fmt.Sprintf("Help unavailable: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Pager) {
			return m, m.openKeyReference()
		}

		switch m.screen {
		case screenOnboarding:
			return m, m.updateOnboarding(msg)
		case screenHome:
			return m, m.updateHome(msg)
		default:
			return m, m.updateLogin(msg)
		}
	}

	// Cursor blink and other input internals
	if m.screen == screenLogin {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) tea.Cmd {
	loading := m.form.State() == login.FormLoading

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case loading:
		// Fields are frozen until the sign-in completes
		return nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.fields[m.focus].Blur()
	m.focus = i
	return m.fields[m.focus].Focus()
}

func (m *Model) submit() tea.Cmd {
	username := m.fields[fieldUsername].Value()
	password := m.fields[fieldPassword].Value()

	outcome, err := m.form.Submit(domain.NewCredentials(username, password))
	if errors.Is(err, login.ErrSubmitInProgress) {
		return nil
	}

	attemptID := uuid.NewString()
	if err != nil {
		log.Printf("Sign-in %s failed: %v", attemptID, err)
		m.status = fmt.Sprintf("Sign-in failed: %v", err)
		m.publish(domain.ErrorEvent{Message: "sign-in failed", Err: err})
		return nil
	}

	m.status = ""
	m.publish(domain.LoginAttemptedEvent{AttemptID: attemptID, Outcome: outcome.Kind.String()})
	if !outcome.OK() {
		return nil
	}

	m.attemptID = attemptID
	m.signedInAs = username
	m.publish(domain.LoginSucceededEvent{AttemptID: attemptID, Username: username})
	return tea.Batch(m.spinner.Tick, signInAfter(m.signInDelay, attemptID))
}

func (m *Model) completeSignIn(attemptID string) tea.Cmd {
	if m.screen != screenLogin || m.form.State() != login.FormLoading || attemptID != m.attemptID {
		return nil
	}

	m.form.Reset()
	m.resetFields()

	if m.onboardingEnabled && !m.onboarded {
		m.startOnboarding()
	} else {
		m.screen = screenHome
	}
	return nil
}

func (m *Model) resetFields() {
	for i := range m.fields {
		m.fields[i].Reset()
		m.fields[i].Blur()
	}
	m.focus = fieldUsername
	m.fields[fieldUsername].Focus()
}

func (m *Model) startOnboarding() {
	pager, err := onboarding.New(m.pages,
		onboarding.WithUnknownPagePolicy(m.policy),
		onboarding.WithChangeHandler(func(index int, page domain.Page, _ onboarding.Visibility) {
			m.publish(domain.PageChangedEvent{Index: index, PageID: page.ID})
		}),
		onboarding.WithFinishHandler(m.finishOnboarding),
	)
	if err != nil {
		// Pages were checked in NewModel
		log.Printf("Could not start onboarding: %v", err)
		m.screen = screenHome
		return
	}

	m.pager = pager
	m.screen = screenOnboarding
	m.syncOnboardingKeys()
}

func (m *Model) syncOnboardingKeys() {
	v := m.pager.Visibility()
	m.keys.Previous.SetEnabled(v.ShowPrevious)
	m.keys.Next.SetEnabled(v.ShowNext)
	m.keys.Done.SetEnabled(v.ShowDone)
}

func (m *Model) updateOnboarding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Previous):
		m.pager.Previous()
	case key.Matches(msg, m.keys.Next):
		m.pager.Next()
	case key.Matches(msg, m.keys.Done):
		m.pager.Finish(domain.FinishDone)
	case key.Matches(msg, m.keys.Skip):
		m.pager.Finish(domain.FinishSkipped)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}

	if m.screen == screenOnboarding {
		m.syncOnboardingKeys()
	}
	return nil
}

func (m *Model) finishOnboarding(reason domain.FinishReason) {
	m.onboarded = true
	m.screen = screenHome
	m.publish(domain.OnboardingFinishedEvent{Reason: reason})
}

func (m *Model) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Logout):
		m.logout()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	}
	return nil
}

func (m *Model) logout() {
	m.publish(domain.LogoutRequestedEvent{})
	m.form.Reset()
	m.resetFields()
	m.signedInAs = ""
	m.attemptID = ""
	m.status = ""
	m.screen = screenLogin
}

func (m *Model) openKeyReference() tea.Cmd {
	if m.helpOps.program == nil {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.helpOps.showHelpPager(RenderKeyReference(m.keys))
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// View renders the current screen
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenOnboarding:
		v := m.pager.Visibility()
		content = m.renderer.RenderOnboarding(views.OnboardingState{
			Page:         m.pager.Current(),
			Index:        m.pager.CurrentIndex(),
			Count:        m.pager.Count(),
			ShowPrevious: v.ShowPrevious,
			ShowNext:     v.ShowNext,
			ShowDone:     v.ShowDone,
		})
	case screenHome:
		content = m.renderer.RenderHome(m.signedInAs)
	default:
		content = m.renderer.RenderLogin(views.LoginState{
			UsernameField: m.fields[fieldUsername].View(),
			PasswordField: m.fields[fieldPassword].View(),
			Loading:       m.form.State() == login.FormLoading,
			SpinnerFrame:  m.spinner.View(),
			Error:         m.form.ErrorMessage(),
		})
	}

	return m.renderer.Frame(content, m.status, m.help.View(m.keys.forScreen(m.screen)))
}
