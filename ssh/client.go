package ssh

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quanticsoul4772/pcode-go/config"
	"github.com/quanticsoul4772/pcode-go/errors"
	"github.com/quanticsoul4772/pcode-go/logging"
	"github.com/quanticsoul4772/pcode-go/models"
)

// Client runs docker compose on the remote host through the ssh binary
type Client struct {
	binary  string
	options []string
	logger  *log.Logger
	now     func() time.Time
}

// NewClient creates a new SSH client
func NewClient(cfg *config.Config, logger *log.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		binary:  cfg.SSHBinary,
		options: cfg.SSHOptions,
		logger:  logger.With("component", "ssh"),
		now:     time.Now,
	}
}

// RemoteCommand returns the shell command run on the remote host
func RemoteCommand(req models.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cd %s && docker compose %s", quotePath(req.Profile.RemotePath), req.Action)

	switch req.Action {
	case models.ActionUp:
		b.WriteString(" -d")
		if req.Modifier.HasTarget() {
			fmt.Fprintf(&b, " --build %s", shellQuote(req.Modifier.Target))
		}
	case models.ActionDown:
		if rmi := req.Modifier.Scope.String(); rmi != "" {
			fmt.Fprintf(&b, " --rmi %s", rmi)
		}
	case models.ActionStart, models.ActionStop:
		if req.Modifier.HasTarget() {
			fmt.Fprintf(&b, " %s", shellQuote(req.Modifier.Target))
		}
	}
	return b.String()
}

// Command returns the argv used for req, starting with the ssh binary
func (c *Client) Command(req models.Request) []string {
	args := []string{c.binary, "-tt"}
	for _, opt := range c.options {
		args = append(args, "-o", opt)
	}
	args = append(args, req.Profile.Destination(), RemoteCommand(req))
	return args
}

// Run executes req and captures its output. A transport error or non-zero
// exit status is reported in the result as a RemoteCommandFailure.
func (c *Client) Run(ctx context.Context, req models.Request) *models.CommandResult {
	argv := c.Command(req)
	result := &models.CommandResult{
		Action:  req.Action,
		Profile: req.Profile.Name,
		Command: strings.Join(argv, " "),
		Started: c.now(),
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Info("running remote command", "profile", req.Profile.Name, "action", req.Action.String(), "host", req.Profile.Destination())
	c.logger.Debug("remote command", "argv", argv)

	err := cmd.Run()
	result.Duration = c.now().Sub(result.Started)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitStatus = exitErr.ExitCode()
			result.Err = errors.E(errors.RemoteCommandFailure,
				fmt.Sprintf("docker compose %s exited with status %d", req.Action, result.ExitStatus), req.Profile.Name, nil)
		} else {
			result.ExitStatus = -1
			result.Err = errors.E(errors.RemoteCommandFailure, "could not run ssh", req.Profile.Name, err)
		}
		c.logger.Error("remote command failed", "profile", req.Profile.Name, "action", req.Action.String(), "status", result.ExitStatus, "err", err)
		return result
	}

	c.logger.Info("remote command finished", "profile", req.Profile.Name, "action", req.Action.String(), "duration", result.Duration)
	return result
}

// quotePath quotes a remote path, leaving a leading "~/" unquoted so the
// remote shell still expands it
func quotePath(p string) string {
	if p == "~" {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		return "~/" + shellQuote(p[2:])
	}
	return shellQuote(p)
}

// shellQuote quotes s for a POSIX shell
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./=:@%+,", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
