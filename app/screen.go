package app

import "github.com/quanticsoul4772/pcode-go/models"

// Kind names the state the session is in
type Kind int

const (
	KindMain Kind = iota
	KindProfileList
	KindProfileEdit
	KindUp
	KindUpTarget
	KindDown
	KindDownRmiChoice
	KindStart
	KindStartTarget
	KindStop
	KindStopTarget
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "Main"
	case KindProfileList:
		return "ProfileList"
	case KindProfileEdit:
		return "ProfileEdit"
	case KindUp:
		return "Up"
	case KindUpTarget:
		return "UpTarget"
	case KindDown:
		return "Down"
	case KindDownRmiChoice:
		return "DownRmiChoice"
	case KindStart:
		return "Start"
	case KindStartTarget:
		return "StartTarget"
	case KindStop:
		return "Stop"
	case KindStopTarget:
		return "StopTarget"
	default:
		return "Unknown"
	}
}

// Screen is one of MainScreen, ProfileListScreen, ProfileEditScreen,
// TargetScreen or RmiScreen. Each variant carries only the data its screen
// needs.
type Screen interface {
	Kind() Kind
	screen()
}

// Purpose is the main menu entry a profile list was opened from
type Purpose int

const (
	PurposeEnv Purpose = iota
	PurposeUp
	PurposeDown
	PurposeStart
	PurposeStop
)

// Action returns the lifecycle action chosen from the list. The Env list
// has no action.
func (p Purpose) Action() (models.Action, bool) {
	switch p {
	case PurposeUp:
		return models.ActionUp, true
	case PurposeDown:
		return models.ActionDown, true
	case PurposeStart:
		return models.ActionStart, true
	case PurposeStop:
		return models.ActionStop, true
	default:
		return 0, false
	}
}

func purposeOf(a models.Action) Purpose {
	switch a {
	case models.ActionUp:
		return PurposeUp
	case models.ActionDown:
		return PurposeDown
	case models.ActionStart:
		return PurposeStart
	default:
		return PurposeStop
	}
}

// MainScreen is the top menu
type MainScreen struct{}

func (MainScreen) Kind() Kind { return KindMain }
func (MainScreen) screen()    {}

// ProfileListScreen lists saved profiles for editing or for an action
type ProfileListScreen struct {
	Purpose Purpose
}

func (s ProfileListScreen) Kind() Kind {
	switch s.Purpose {
	case PurposeUp:
		return KindUp
	case PurposeDown:
		return KindDown
	case PurposeStart:
		return KindStart
	case PurposeStop:
		return KindStop
	default:
		return KindProfileList
	}
}

func (ProfileListScreen) screen() {}

// Edit form field rows
const (
	FieldProfile = iota
	FieldUsername
	FieldHostname
	FieldPath
	RowSave
)

// ProfileEditScreen edits a new or existing profile. Original is the name
// the profile was loaded under and is empty for a new profile.
type ProfileEditScreen struct {
	Fields   [4]string
	Original string
}

func (ProfileEditScreen) Kind() Kind { return KindProfileEdit }
func (ProfileEditScreen) screen()    {}

// Profile returns the profile described by the form fields
func (s ProfileEditScreen) Profile() models.Profile {
	return models.Profile{
		Name:       s.Fields[FieldProfile],
		Username:   s.Fields[FieldUsername],
		Hostname:   s.Fields[FieldHostname],
		RemotePath: s.Fields[FieldPath],
	}
}

// Target screen rows
const (
	RowTarget = iota
	RowRun
)

// TargetScreen runs up, start or stop against a profile, optionally
// narrowed to one service
type TargetScreen struct {
	Action  models.Action
	Profile models.Profile
	Target  string
}

func (s TargetScreen) Kind() Kind {
	switch s.Action {
	case models.ActionUp:
		return KindUpTarget
	case models.ActionStart:
		return KindStartTarget
	default:
		return KindStopTarget
	}
}

func (TargetScreen) screen() {}

// RmiScreen picks which images a down removes
type RmiScreen struct {
	Profile models.Profile
}

func (RmiScreen) Kind() Kind { return KindDownRmiChoice }
func (RmiScreen) screen()    {}
