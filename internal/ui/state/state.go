package state

// AppState contains the UI-only state; search state lives in the coordinator
type AppState struct {
	// Dataset loading
	Loading    bool   // whether the dataset is being fetched
	LoadSource string // where the dataset comes from
	LoadError  string // cause of a failed load, shown under the error banner

	// UI state
	ShowHelp         bool
	HelpScrollOffset int    // scroll offset for help popup
	StatusMessage    string // status bar message
	SpinnerFrame     int    // advanced on every tick while busy
	InPagerMode      bool   // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetLoading marks the dataset load as started
func (s *AppState) SetLoading(source string) {
	s.Loading = true
	s.LoadSource = source
	s.LoadError = ""
}

// SetLoaded marks the dataset load as finished
func (s *AppState) SetLoaded() {
	s.Loading = false
}

// SetLoadFailed records why the dataset could not be loaded
func (s *AppState) SetLoadFailed(cause error) {
	s.Loading = false
	if cause != nil {
		s.LoadError = cause.Error()
	}
}

// ToggleHelp shows or hides the help popup, resetting its scroll
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ScrollHelp moves the help popup by delta lines, never above the top
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}

// Tick advances the spinner
func (s *AppState) Tick() {
	s.SpinnerFrame++
}
