package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/quanticsoul4772/pcode-go/errors"
	"github.com/quanticsoul4772/pcode-go/logging"
	"github.com/quanticsoul4772/pcode-go/models"
)

// ProfileStore persists profiles by name
type ProfileStore interface {
	List() ([]string, error)
	Load(name string) (models.Profile, error)
	Save(p models.Profile) error
	Delete(name string) error
}

// CommandRunner executes a remote lifecycle action and blocks until it
// finishes
type CommandRunner interface {
	Run(ctx context.Context, req models.Request) *models.CommandResult
}

// Dispatcher applies events to the session state
type Dispatcher struct {
	store  ProfileStore
	runner CommandRunner
	logger *log.Logger
}

// NewDispatcher creates a dispatcher backed by store and runner
func NewDispatcher(store ProfileStore, runner CommandRunner, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{
		store:  store,
		runner: runner,
		logger: logger.With("component", "dispatch"),
	}
}

// Dispatch returns the state that follows s after ev. Remote actions run
// synchronously, so Dispatch blocks until they finish. Events a screen does
// not handle leave the state unchanged.
func (d *Dispatcher) Dispatch(s AppState, ev Event) (AppState, Effect) {
	from := s.Screen.Kind()
	next, effect := d.dispatch(s, ev)
	if to := next.Screen.Kind(); to != from {
		d.logger.Debug("screen change", "from", from, "to", to, "event", ev)
	}
	return next, effect
}

func (d *Dispatcher) dispatch(s AppState, ev Event) (AppState, Effect) {
	if s.Mode == ModeInsert {
		return d.insert(s, ev), EffectNone
	}

	switch ev.Kind {
	case EventMoveUp:
		s.Cursor = s.Cursor.Prev()
		return s, EffectNone
	case EventMoveDown:
		s.Cursor = s.Cursor.Next()
		return s, EffectNone
	}

	switch scr := s.Screen.(type) {
	case MainScreen:
		return d.main(s, ev)
	case ProfileListScreen:
		return d.profileList(s, scr, ev), EffectNone
	case ProfileEditScreen:
		return d.profileEdit(s, scr, ev), EffectNone
	case TargetScreen:
		return d.target(s, scr, ev), EffectNone
	case RmiScreen:
		return d.rmi(s, scr, ev), EffectNone
	}
	return s, EffectNone
}

func (d *Dispatcher) main(s AppState, ev Event) (AppState, Effect) {
	switch ev.Kind {
	case EventCancel:
		return s, EffectExit
	case EventConfirm:
		row, ok := s.Cursor.Index()
		if !ok {
			return s, EffectNone
		}
		names, err := d.store.List()
		if err != nil {
			return d.fail(s, "could not list profiles", err), EffectNone
		}
		s.MainRow = row
		return enterList(s, Purpose(row), names, 0), EffectNone
	}
	return s, EffectNone
}

func (d *Dispatcher) profileList(s AppState, scr ProfileListScreen, ev Event) AppState {
	row, ok := s.Cursor.Index()

	switch ev.Kind {
	case EventCancel:
		return enterMain(s)

	case EventConfirm:
		if !ok {
			return s
		}
		if scr.Purpose == PurposeEnv {
			if row == 0 {
				return enter(s, ProfileEditScreen{}, len(EditRows))
			}
			name := s.ProfileNames[row-1]
			p, err := d.store.Load(name)
			if err != nil {
				return d.fail(s, "could not load profile", err)
			}
			form := ProfileEditScreen{
				Fields:   [4]string{p.Name, p.Username, p.Hostname, p.RemotePath},
				Original: name,
			}
			return enter(s, form, len(EditRows))
		}

		p, err := d.store.Load(s.ProfileNames[row])
		if err != nil {
			return d.fail(s, "could not load profile", err)
		}
		action, _ := scr.Purpose.Action()
		if action == models.ActionDown {
			return enter(s, RmiScreen{Profile: p}, len(models.Scopes))
		}
		return enter(s, TargetScreen{Action: action, Profile: p}, 2)

	case EventDelete:
		if scr.Purpose != PurposeEnv || !ok || row == 0 {
			return s
		}
		name := s.ProfileNames[row-1]
		if err := d.store.Delete(name); err != nil {
			return d.fail(s, "could not delete profile", err)
		}
		names := make([]string, 0, len(s.ProfileNames)-1)
		names = append(names, s.ProfileNames[:row-1]...)
		s.ProfileNames = append(names, s.ProfileNames[row:]...)
		s.Cursor = s.Cursor.SetLength(len(s.ProfileNames) + 1)
		s.Message = Message{Level: LevelSuccess, Text: fmt.Sprintf("deleted profile %s", name)}
	}
	return s
}

func (d *Dispatcher) profileEdit(s AppState, scr ProfileEditScreen, ev Event) AppState {
	switch ev.Kind {
	case EventCancel:
		return d.backToList(s, PurposeEnv, scr.Original)

	case EventConfirm:
		row, _ := s.Cursor.Index()
		if s.Editable(row) {
			s.Mode = ModeInsert
			return s
		}

		p := scr.Profile()
		if !p.Complete() {
			s.Message = Message{Level: LevelError, Text: "profile, username, hostname and path are required"}
			return s
		}
		if err := d.store.Save(p); err != nil {
			return d.fail(s, "could not save profile", err)
		}
		names, err := d.store.List()
		if err != nil {
			return d.fail(s, "could not list profiles", err)
		}
		s = enterList(s, PurposeEnv, names, 0)
		s.Message = Message{Level: LevelSuccess, Text: fmt.Sprintf("saved profile %s", p.Name)}
	}
	return s
}

func (d *Dispatcher) target(s AppState, scr TargetScreen, ev Event) AppState {
	switch ev.Kind {
	case EventCancel:
		return d.backToList(s, purposeOf(scr.Action), scr.Profile.Name)

	case EventConfirm:
		row, _ := s.Cursor.Index()
		if s.Editable(row) {
			s.Mode = ModeInsert
			return s
		}
		return d.run(s, models.Request{
			Action:   scr.Action,
			Profile:  scr.Profile,
			Modifier: models.Modifier{Target: scr.Target},
		})
	}
	return s
}

func (d *Dispatcher) rmi(s AppState, scr RmiScreen, ev Event) AppState {
	switch ev.Kind {
	case EventCancel:
		return d.backToList(s, PurposeDown, scr.Profile.Name)

	case EventConfirm:
		row, ok := s.Cursor.Index()
		if !ok {
			return s
		}
		return d.run(s, models.Request{
			Action:   models.ActionDown,
			Profile:  scr.Profile,
			Modifier: models.Modifier{Scope: models.Scopes[row]},
		})
	}
	return s
}

// insert edits the text bound to the selected row
func (d *Dispatcher) insert(s AppState, ev Event) AppState {
	row, _ := s.Cursor.Index()

	switch ev.Kind {
	case EventConfirm, EventCancel:
		s.Mode = ModeNormal
		return s
	case EventChar, EventBackspace:
	default:
		return s
	}

	edit := func(text string) string {
		if ev.Kind == EventChar {
			return text + string(ev.Rune)
		}
		_, size := utf8.DecodeLastRuneInString(text)
		return text[:len(text)-size]
	}

	switch scr := s.Screen.(type) {
	case ProfileEditScreen:
		if row >= FieldProfile && row <= FieldPath {
			scr.Fields[row] = edit(scr.Fields[row])
			s.Screen = scr
		}
	case TargetScreen:
		if row == RowTarget {
			scr.Target = edit(scr.Target)
			s.Screen = scr
		}
	}
	return s
}

func (d *Dispatcher) run(s AppState, req models.Request) AppState {
	result := d.runner.Run(context.Background(), req)
	s.LastResult = result
	if result.Failed() {
		s.Message = Message{Level: LevelError, Text: result.Summary()}
	} else {
		s.Message = Message{Level: LevelSuccess, Text: result.Summary()}
	}
	return s
}

// backToList returns to the profile list for purpose, selecting name when
// it is still listed
func (d *Dispatcher) backToList(s AppState, purpose Purpose, name string) AppState {
	names, err := d.store.List()
	if err != nil {
		d.logger.Error("reload profiles", "err", err)
		names = s.ProfileNames
	}

	row := 0
	for i, n := range names {
		if n == name {
			row = i
			if purpose == PurposeEnv {
				row++
			}
			break
		}
	}

	s = enterList(s, purpose, names, row)
	if err != nil {
		s.Message = Message{Level: LevelError, Text: fmt.Sprintf("could not list profiles: %v", err)}
	}
	return s
}

// fail keeps the current screen and reports err on the status line
func (d *Dispatcher) fail(s AppState, what string, err error) AppState {
	d.logger.Error(what, "screen", s.Screen.Kind(), "kind", errors.KindOf(err), "err", err)
	s.Message = Message{Level: LevelError, Text: fmt.Sprintf("%s: %v", what, err)}
	return s
}

func enter(s AppState, scr Screen, rows int) AppState {
	s.Screen = scr
	s.Cursor = NewCursor(rows)
	s.Mode = ModeNormal
	s.Message = Message{}
	return s
}

func enterList(s AppState, purpose Purpose, names []string, row int) AppState {
	rows := len(names)
	if purpose == PurposeEnv {
		rows++
	}
	s = enter(s, ProfileListScreen{Purpose: purpose}, rows)
	s.ProfileNames = names
	s.Cursor = s.Cursor.Set(row)
	return s
}

func enterMain(s AppState) AppState {
	s = enter(s, MainScreen{}, len(MainRows))
	s.ProfileNames = nil
	s.Cursor = s.Cursor.Set(s.MainRow)
	return s
}
