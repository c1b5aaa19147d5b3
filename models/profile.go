package models

import (
	"fmt"
	"strings"
	"time"
)

// Profile is a named set of connection parameters for one remote host
type Profile struct {
	Name       string
	Username   string
	Hostname   string
	RemotePath string
}

// Complete returns true if every field is filled in
func (p Profile) Complete() bool {
	return p.Name != "" && p.Username != "" && p.Hostname != "" && p.RemotePath != ""
}

// Destination returns the ssh destination in user@host form
func (p Profile) Destination() string {
	if p.Username == "" {
		return p.Hostname
	}
	return fmt.Sprintf("%s@%s", p.Username, p.Hostname)
}

// IsZero returns true for the empty profile
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// Action is a docker compose lifecycle command
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionStart
	ActionStop
)

// String returns the compose subcommand for the action
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Title returns the action name as shown in menus
func (a Action) Title() string {
	s := a.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Scope controls which images a down action removes
type Scope int

const (
	ScopeNone Scope = iota
	ScopeLocal
	ScopeAll
)

// String returns the --rmi argument for the scope, empty for ScopeNone
func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeAll:
		return "all"
	default:
		return ""
	}
}

// Title returns the scope name as shown in menus
func (s Scope) Title() string {
	switch s {
	case ScopeLocal:
		return "Local"
	case ScopeAll:
		return "All"
	default:
		return "None"
	}
}

// Scopes lists the down removal choices in menu order
var Scopes = []Scope{ScopeNone, ScopeLocal, ScopeAll}

// Modifier narrows an action. The zero value applies the action to every
// service and removes no images.
type Modifier struct {
	Target string
	Scope  Scope
}

// HasTarget returns true if the modifier names a single service
func (m Modifier) HasTarget() bool {
	return m.Target != ""
}

// Request is one remote lifecycle invocation
type Request struct {
	Action   Action
	Profile  Profile
	Modifier Modifier
}

// CommandResult is the outcome of a remote lifecycle invocation
type CommandResult struct {
	Action     Action
	Profile    string
	Command    string
	Stdout     string
	Stderr     string
	ExitStatus int
	Err        error
	Started    time.Time
	Duration   time.Duration
}

// Failed returns true if the command could not run or exited non-zero
func (r *CommandResult) Failed() bool {
	return r.Err != nil || r.ExitStatus != 0
}

// Summary returns a one-line description of the outcome
func (r *CommandResult) Summary() string {
	if r.Failed() {
		if r.Err != nil {
			return fmt.Sprintf("%s on %s failed: %v", r.Action, r.Profile, r.Err)
		}
		return fmt.Sprintf("%s on %s failed with exit status %d", r.Action, r.Profile, r.ExitStatus)
	}
	return fmt.Sprintf("%s on %s completed in %s", r.Action, r.Profile, formatDuration(r.Duration))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}
