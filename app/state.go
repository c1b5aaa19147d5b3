package app

import "github.com/quanticsoul4772/pcode-go/models"

// InputMode decides whether keys navigate or edit text
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeInsert
)

func (m InputMode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Level is the severity of a status message
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Message is the status line shown below the current screen
type Message struct {
	Level Level
	Text  string
}

// Row labels
const NewProfileRow = "<new>"

var (
	MainRows = []string{"Env", "Up", "Down", "Start", "Stop"}
	EditRows = []string{"profile", "username", "hostname", "path", "save"}
)

// AppState is the whole session. It is only changed by Dispatch.
type AppState struct {
	Screen       Screen
	Cursor       Cursor
	Mode         InputMode
	ProfileNames []string
	LastResult   *models.CommandResult
	Message      Message
	MainRow      int
}

// NewState returns the state the program starts in
func NewState() AppState {
	return AppState{
		Screen: MainScreen{},
		Cursor: NewCursor(len(MainRows)),
	}
}

// WorkingProfile returns the profile being edited or acted on, or the zero
// profile on the menu and list screens
func (s AppState) WorkingProfile() models.Profile {
	switch scr := s.Screen.(type) {
	case ProfileEditScreen:
		return scr.Profile()
	case TargetScreen:
		return scr.Profile
	case RmiScreen:
		return scr.Profile
	}
	return models.Profile{}
}

// TargetFilter returns the service typed on a target screen
func (s AppState) TargetFilter() string {
	if scr, ok := s.Screen.(TargetScreen); ok {
		return scr.Target
	}
	return ""
}

// Rows returns the row labels of the current screen
func (s AppState) Rows() []string {
	switch scr := s.Screen.(type) {
	case MainScreen:
		return MainRows
	case ProfileListScreen:
		if scr.Purpose == PurposeEnv {
			return append([]string{NewProfileRow}, s.ProfileNames...)
		}
		return s.ProfileNames
	case ProfileEditScreen:
		return EditRows
	case TargetScreen:
		return []string{"target", scr.Action.Title()}
	case RmiScreen:
		rows := make([]string, len(models.Scopes))
		for i, scope := range models.Scopes {
			rows[i] = scope.Title()
		}
		return rows
	}
	return nil
}

// Editable returns true if row holds text that Insert mode can change
func (s AppState) Editable(row int) bool {
	switch s.Screen.(type) {
	case ProfileEditScreen:
		return row >= FieldProfile && row <= FieldPath
	case TargetScreen:
		return row == RowTarget
	}
	return false
}
