package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/imgsearch/internal/application/settings"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
	"github.com/tesso57/imgsearch/internal/presentation/tui/update"
	"github.com/tesso57/imgsearch/internal/presentation/tui/view"
	listview "github.com/tesso57/imgsearch/internal/presentation/tui/view/list"
)

// Options carries the collaborators of the TUI model.
type Options struct {
	Provider     usecase.SearchProvider
	Saved        usecase.SavedService
	Logger       *slog.Logger
	InitialQuery string
	OpenBrowser  func(string) error
}

// Model represents the main application state.
type Model struct {
	settings      settings.Settings
	search        *usecase.SearchService
	notifications *usecase.NotificationQueue
	saved         usecase.SavedService
	openBrowser   func(string) error
	initialQuery  string
	state         *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, opt Options) *Model {
	queue := &usecase.NotificationQueue{}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	browser := opt.OpenBrowser
	if browser == nil {
		browser = openBrowser
	}

	st := newModelState(cfg)
	if ids, err := opt.Saved.IDs(); err != nil {
		logger.Warn("load saved images", slog.Any("error", err))
	} else if ids != nil {
		st.Saved = ids
	}

	return &Model{
		settings:      cfg,
		search:        usecase.NewSearchService(opt.Provider, queue, logger),
		notifications: queue,
		saved:         opt.Saved,
		openBrowser:   browser,
		initialQuery:  opt.InitialQuery,
		state:         st,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	if m.initialQuery != "" {
		return update.SubmitQuery(m.state, m.initialQuery, m.deps())
	}
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.PageFetchedMsg:
		cmds = append(cmds, update.HandlePageFetchedMsg(m.state, msg, m.deps()))
	case update.ToastExpiredMsg:
		update.HandleToastExpiredMsg(m.state, msg)
		return m, nil
	}

	if m.viewState().ShowLoader {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.GalleryView:
		m.state.Gallery, cmd = m.state.Gallery.Update(msg)
		cmds = append(cmds, cmd)
	case state.SearchView:
		m.state.SearchInput, cmd = m.state.SearchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) viewState() usecase.ViewState {
	return usecase.DeriveViewState(m.search.Snapshot(), m.state.Modal.Selection())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Search:        m.search,
		Notifications: m.notifications,
		Saved:         m.saved,
		OpenBrowser:   m.openBrowser,
		ToastDuration: m.settings.ToastDuration(),
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	st := &state.ModelState{
		Session:     state.SearchView,
		Gallery:     newGalleryList(cfg),
		SearchInput: newSearchInput(),
		Help:        help.New(),
		Spinner:     newSpinner(cfg),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		Saved:       map[int]bool{},
	}

	st.Gallery.KeyMap.PrevPage = st.Keys.UpPage
	st.Gallery.KeyMap.NextPage = st.Keys.DownPage
	st.Gallery.KeyMap.CursorUp = st.Keys.Up
	st.Gallery.KeyMap.CursorDown = st.Keys.Down

	return st
}

func newGalleryList(cfg settings.Settings) list.Model {
	delegate := listview.NewImageDelegate(lipgloss.Color(cfg.Theme.Accent), lipgloss.Color(cfg.Theme.Tags))
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Images"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search images and photos"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}
