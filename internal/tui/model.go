// Package tui provides the interactive profile browser
package tui

import (
	"context"
	"fmt"
	"sort"

	"ccconfig/config"
	"ccconfig/config/models"
	"ccconfig/internal/platform"
	"ccconfig/internal/probe"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view state
type ViewState int

const (
	ViewMain        ViewState = iota // Main list view
	ViewDetail                       // Detail view
	ViewAdd                          // Add profile form
	ViewDelete                       // Delete confirmation dialog
	ViewHelp                         // Help panel
	ViewPingTesting                  // Ping test in progress
	ViewPingResult                   // Ping test result
)

// Entry is one row of the profile list
type Entry struct {
	Name    string
	Profile models.Profile
}

// Model is the core state model for TUI
type Model struct {
	profiles  []Entry         // Sorted by name
	current   string          // Active profile name
	cursor    int             // Current cursor position
	selected  int             // Profile shown in the detail view
	viewState ViewState       // Current view state
	manager   *config.Manager // Store access
	shell     platform.Shell
	prober    *probe.Prober
	changes   <-chan struct{} // nil when the store is not watched

	// Form related
	formInputs []textinput.Model
	formFocus  int

	// Messages and errors
	message  string
	errorMsg string

	// Window size
	width  int
	height int

	scrollOffset     int
	helpScrollOffset int

	pingResult *probe.Result
	pingTarget string
}

// Option configures a Model
type Option func(*Model)

// WithShell sets the shell used to render env commands in the detail view
func WithShell(sh platform.Shell) Option {
	return func(m *Model) {
		m.shell = sh
	}
}

// WithProber sets the prober used by the ping action
func WithProber(p *probe.Prober) Option {
	return func(m *Model) {
		m.prober = p
	}
}

// WithChanges makes the model reload whenever changes fires
func WithChanges(changes <-chan struct{}) Option {
	return func(m *Model) {
		m.changes = changes
	}
}

// NewModel creates a new TUI model
func NewModel(manager *config.Manager, opts ...Option) Model {
	m := Model{
		profiles:   []Entry{},
		selected:   -1,
		viewState:  ViewMain,
		manager:    manager,
		shell:      platform.Detect().Shell,
		formInputs: []textinput.Model{},
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.prober == nil {
		m.prober = probe.New()
	}
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadProfiles(m.manager), waitForChange(m.changes))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScrollOffset()
		return m, nil

	case ProfilesLoadedMsg:
		m.applyLoaded(msg)
		return m, nil

	case StoreChangedMsg:
		return m, tea.Batch(loadProfiles(m.manager), waitForChange(m.changes))

	case ProfileSwitchedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.current = msg.Name
		m.message = fmt.Sprintf("Switched to %s; run `cc-config env` in your shell to apply it", msg.Name)
		return m, loadProfiles(m.manager)

	case ProfileAddedMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.message = "Profile added: " + msg.Name
		m.viewState = ViewMain
		m.formInputs = []textinput.Model{}
		m.formFocus = 0
		return m, loadProfiles(m.manager)

	case ProfileDeletedMsg:
		m.viewState = ViewMain
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
			return m, nil
		}
		m.message = "Profile removed: " + msg.Name
		return m, loadProfiles(m.manager)

	case PingResultMsg:
		if msg.Err != nil {
			m.pingResult = &probe.Result{Profile: m.pingTarget, Error: msg.Err.Error()}
		} else {
			m.pingResult = msg.Result
		}
		m.viewState = ViewPingResult
		return m, nil

	case errMsg:
		m.errorMsg = string(msg)
		return m, nil
	}

	return m, nil
}

func (m *Model) applyLoaded(msg ProfilesLoadedMsg) {
	var selectedName string
	if m.selected >= 0 && m.selected < len(m.profiles) {
		selectedName = m.profiles[m.selected].Name
	}

	m.profiles = msg.Profiles
	m.current = msg.Current

	// Keep the cursor in range after a reload (e.g. after deletion)
	if len(m.profiles) > 0 && m.cursor >= len(m.profiles) {
		m.cursor = len(m.profiles) - 1
	}
	m.selected = m.indexOf(selectedName)
	if m.viewState == ViewDetail && m.selected < 0 {
		m.viewState = ViewMain
	}
	m.adjustScrollOffset()
}

func (m Model) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, e := range m.profiles {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case ViewMain:
		return m.handleMainViewKeys(msg)
	case ViewDetail:
		return m.handleDetailViewKeys(msg)
	case ViewAdd:
		return m.handleFormViewKeys(msg)
	case ViewDelete:
		return m.handleDeleteViewKeys(msg)
	case ViewHelp:
		return m.handleHelpViewKeys(msg)
	case ViewPingTesting:
		// During testing, only allow quit
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case ViewPingResult:
		return m.handlePingResultViewKeys(msg)
	default:
		return m, nil
	}
}

func (m *Model) clearMessages() {
	m.message = ""
	m.errorMsg = ""
}

func (m Model) hasCursor() bool {
	return m.cursor >= 0 && m.cursor < len(m.profiles)
}

// handleMainViewKeys handles keyboard input in main view
func (m Model) handleMainViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		m.moveDown()
		m.clearMessages()
		return m, nil

	case "k", "up":
		m.moveUp()
		m.clearMessages()
		return m, nil

	case "g":
		m.moveToTop()
		m.clearMessages()
		return m, nil

	case "G":
		m.moveToBottom()
		m.clearMessages()
		return m, nil

	case "enter":
		if m.hasCursor() {
			m.selected = m.cursor
			m.viewState = ViewDetail
		}
		return m, nil

	case "u":
		if m.hasCursor() {
			m.clearMessages()
			return m, useProfile(m.manager, m.profiles[m.cursor].Name)
		}
		return m, nil

	case "a":
		m.initAddForm()
		return m, nil

	case "d":
		return m.startDelete()

	case "p":
		return m.startPing()

	case "r":
		m.clearMessages()
		return m, loadProfiles(m.manager)

	case "?":
		m.viewState = ViewHelp
		m.helpScrollOffset = 0
		return m, nil
	}

	return m, nil
}

// handleDetailViewKeys handles keyboard input in detail view
func (m Model) handleDetailViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q", "enter":
		m.viewState = ViewMain
		return m, nil

	case "u":
		if m.selected >= 0 && m.selected < len(m.profiles) {
			m.clearMessages()
			m.viewState = ViewMain
			return m, useProfile(m.manager, m.profiles[m.selected].Name)
		}
		return m, nil

	case "d":
		m.cursor = m.selected
		return m.startDelete()

	case "p":
		m.cursor = m.selected
		return m.startPing()
	}

	return m, nil
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	if !m.hasCursor() {
		return m, nil
	}
	m.clearMessages()
	if m.profiles[m.cursor].Name == m.current {
		m.viewState = ViewMain
		m.errorMsg = "The active profile cannot be removed; switch to another profile first"
		return m, nil
	}
	m.viewState = ViewDelete
	return m, nil
}

func (m Model) startPing() (tea.Model, tea.Cmd) {
	if !m.hasCursor() {
		return m, nil
	}
	e := m.profiles[m.cursor]
	m.clearMessages()
	m.pingTarget = e.Name
	m.pingResult = nil
	m.viewState = ViewPingTesting
	return m, pingProfile(m.prober, e)
}

// moveUp moves cursor up
func (m *Model) moveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.adjustScrollOffset()
}

// moveDown moves cursor down
func (m *Model) moveDown() {
	if m.cursor < len(m.profiles)-1 {
		m.cursor++
	}
	m.adjustScrollOffset()
}

// moveToTop moves cursor to top
func (m *Model) moveToTop() {
	m.cursor = 0
	m.adjustScrollOffset()
}

// moveToBottom moves cursor to bottom
func (m *Model) moveToBottom() {
	if len(m.profiles) > 0 {
		m.cursor = len(m.profiles) - 1
	}
	m.adjustScrollOffset()
}

// getVisibleListHeight returns the number of lines available for the list
func (m *Model) getVisibleListHeight() int {
	// Title, separator and blank line above; blank line, separator and
	// status bar below.
	headerLines := 3
	footerLines := 4

	available := m.height - headerLines - footerLines
	if available < 1 {
		available = 1
	}
	return available
}

// adjustScrollOffset adjusts the scroll offset to keep cursor visible
func (m *Model) adjustScrollOffset() {
	visibleHeight := m.getVisibleListHeight()

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visibleHeight {
		m.scrollOffset = m.cursor - visibleHeight + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}

	maxOffset := len(m.profiles) - visibleHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
}

// View renders the UI
func (m Model) View() string {
	switch m.viewState {
	case ViewHelp:
		return m.RenderHelpView()
	case ViewDetail:
		return m.RenderDetailView()
	case ViewAdd:
		return RenderForm(m.formInputs, m.formFocus, "Add profile", m.errorMsg)
	case ViewDelete:
		return m.RenderDeleteConfirm()
	case ViewPingTesting:
		return m.RenderPingTestingView()
	case ViewPingResult:
		return m.RenderPingResultView()
	default:
		return m.RenderMainView()
	}
}

// loadProfiles creates a command to read the store
func loadProfiles(manager *config.Manager) tea.Cmd {
	return func() tea.Msg {
		current, profiles, err := manager.List()
		if err != nil {
			return errMsg(err.Error())
		}

		names := make([]string, 0, len(profiles))
		for name := range profiles {
			names = append(names, name)
		}
		sort.Strings(names)

		entries := make([]Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, Entry{Name: name, Profile: profiles[name]})
		}
		return ProfilesLoadedMsg{Current: current, Profiles: entries}
	}
}

// useProfile creates a command to switch the active profile
func useProfile(manager *config.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		return ProfileSwitchedMsg{Name: name, Err: manager.Use(name)}
	}
}

// handleFormViewKeys handles keyboard input in the add form
func (m Model) handleFormViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.viewState = ViewMain
		m.errorMsg = ""
		m.formInputs = []textinput.Model{}
		m.formFocus = 0
		return m, nil

	case "tab", "down":
		m.formFocus = NextFormField(m.formInputs, m.formFocus)
		return m, nil

	case "shift+tab", "up":
		m.formFocus = PrevFormField(m.formInputs, m.formFocus)
		return m, nil

	case "enter":
		formData := GetFormData(m.formInputs)
		if err := formData.Validate(); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		if m.indexOf(formData.Input().Name) >= 0 {
			m.errorMsg = fmt.Sprintf("profile %q already exists", formData.Input().Name)
			return m, nil
		}

		m.errorMsg = ""
		return m, submitAddForm(m.manager, formData)

	default:
		if m.formFocus >= 0 && m.formFocus < len(m.formInputs) {
			var cmd tea.Cmd
			m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// initAddForm initializes the form for adding a new profile
func (m *Model) initAddForm() {
	m.formInputs = FormInputs()
	m.formFocus = 0
	m.viewState = ViewAdd
	m.clearMessages()
}

// submitAddForm creates a command to add a new profile
func submitAddForm(manager *config.Manager, data FormData) tea.Cmd {
	input := data.Input()
	return func() tea.Msg {
		return ProfileAddedMsg{Name: input.Name, Err: manager.Add(input)}
	}
}

// handleDeleteViewKeys handles keyboard input in delete confirmation view
func (m Model) handleDeleteViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "y", "Y":
		if m.hasCursor() {
			return m, deleteProfile(m.manager, m.profiles[m.cursor].Name)
		}
		m.viewState = ViewMain
		return m, nil

	case "n", "N", "esc":
		m.viewState = ViewMain
		m.clearMessages()
		return m, nil
	}

	return m, nil
}

// deleteProfile creates a command to remove a profile
func deleteProfile(manager *config.Manager, name string) tea.Cmd {
	return func() tea.Msg {
		return ProfileDeletedMsg{Name: name, Err: manager.Remove(name)}
	}
}

// handleHelpViewKeys handles keyboard input in help view
func (m Model) handleHelpViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "q", "?":
		m.viewState = ViewMain
		m.helpScrollOffset = 0
		return m, nil

	case "j", "down":
		m.helpScrollOffset++
		m.adjustHelpScrollOffset()
		return m, nil

	case "k", "up":
		if m.helpScrollOffset > 0 {
			m.helpScrollOffset--
		}
		return m, nil

	case "g":
		m.helpScrollOffset = 0
		return m, nil

	case "G":
		m.helpScrollOffset = len(m.buildHelpLines()) - m.getVisibleHelpHeight()
		m.adjustHelpScrollOffset()
		return m, nil
	}

	return m, nil
}

// getVisibleHelpHeight returns the number of lines available for help content
func (m *Model) getVisibleHelpHeight() int {
	available := m.height - 5
	if available < 1 {
		available = 1
	}
	return available
}

// adjustHelpScrollOffset keeps the help scroll offset within bounds
func (m *Model) adjustHelpScrollOffset() {
	maxOffset := len(m.buildHelpLines()) - m.getVisibleHelpHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.helpScrollOffset > maxOffset {
		m.helpScrollOffset = maxOffset
	}
	if m.helpScrollOffset < 0 {
		m.helpScrollOffset = 0
	}
}

// pingProfile creates a command to probe a profile's endpoint
func pingProfile(prober *probe.Prober, e Entry) tea.Cmd {
	return func() tea.Msg {
		result, err := prober.Probe(context.Background(), e.Name, e.Profile)
		return PingResultMsg{Result: result, Err: err}
	}
}

// handlePingResultViewKeys handles keyboard input in ping result view
func (m Model) handlePingResultViewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter", "esc", "q":
		m.viewState = ViewMain
		m.pingResult = nil
		return m, nil

	case "r":
		return m.startPing()
	}

	return m, nil
}
