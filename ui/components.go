package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/quanticsoul4772/pcode-go/app"
	"github.com/quanticsoul4772/pcode-go/models"
)

const (
	// Unicode symbols
	IconSuccess = "✓"
	IconError   = "✗"
	IconInfo    = "ℹ"
	IconArrow   = "›"
	IconBullet  = "•"
	IconCaret   = "▏"

	// outputTail is how many output lines the result panel shows
	outputTail = 8
)

// RenderHeader renders a centered header with box border
func RenderHeader(s Styles, title, subtitle string) string {
	var content string
	if subtitle != "" {
		content = fmt.Sprintf("%s  %s", title, s.Subtitle.Render(subtitle))
	} else {
		content = title
	}
	return s.Header.Render(content)
}

// RenderBreadcrumb renders navigation breadcrumbs
func RenderBreadcrumb(s Styles, parts ...string) string {
	return s.Breadcrumb.Render(strings.Join(parts, fmt.Sprintf(" %s ", IconArrow)))
}

// RenderSection renders a section header with underline
func RenderSection(s Styles, title string) string {
	return s.Section.Render(title)
}

// RenderMessage renders the status line with an icon for its level
func RenderMessage(s Styles, msg app.Message) string {
	if msg.Text == "" {
		return ""
	}
	switch msg.Level {
	case app.LevelSuccess:
		return fmt.Sprintf("  %s %s", s.Success.Render(IconSuccess), s.Success.Render(msg.Text))
	case app.LevelError:
		return fmt.Sprintf("  %s %s", s.Error.Render(IconError), s.Error.Bold(true).Render(msg.Text))
	default:
		return fmt.Sprintf("  %s %s", s.Info.Render(IconInfo), msg.Text)
	}
}

// RenderMenuItem renders one selectable row, marking the active one with an arrow
func RenderMenuItem(s Styles, label string, active bool) string {
	if active {
		return fmt.Sprintf("  %s %s", s.Info.Render(IconArrow), s.MenuItemActive.Render(label))
	}
	return fmt.Sprintf("    %s", s.MenuItem.Render(label))
}

// RenderField renders a labelled text field. An empty value shows the
// placeholder; a field being edited shows a caret.
func RenderField(s Styles, label, value, placeholder string, active, editing bool) string {
	var v string
	switch {
	case editing:
		v = s.FieldEditing.Render(value) + s.Warning.Render(IconCaret)
	case value == "":
		v = s.Placeholder.Render(placeholder)
	default:
		v = s.FieldValue.Render(value)
	}

	prefix := "    "
	if active {
		prefix = fmt.Sprintf("  %s ", s.Info.Render(IconArrow))
	}
	return prefix + s.FieldLabel.Render(label) + " " + v
}

// RenderResult renders the outcome of the last remote command
func RenderResult(s Styles, r *models.CommandResult) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("Last run: %s on %s", r.Action, r.Profile)))
	b.WriteString("\n")
	if r.Command != "" {
		b.WriteString(s.Help.Render("$ " + r.Command))
		b.WriteString("\n")
	}

	switch {
	case r.Err != nil && r.ExitStatus <= 0:
		b.WriteString(s.Error.Render(fmt.Sprintf("%s %v", IconError, r.Err)))
	case r.Failed():
		b.WriteString(s.Error.Render(fmt.Sprintf("%s exit status %d", IconError, r.ExitStatus)))
	default:
		b.WriteString(s.Success.Render(fmt.Sprintf("%s exit status 0 (%s)", IconSuccess, r.Duration.Round(time.Millisecond))))
	}

	for _, out := range []string{r.Stdout, r.Stderr} {
		if lines := tail(out, outputTail); len(lines) > 0 {
			b.WriteString("\n")
			b.WriteString(s.ResultOutput.Render(strings.Join(lines, "\n")))
		}
	}
	return s.Result.Render(b.String())
}

// tail returns the last n non-empty lines of out. Carriage returns from the
// remote pty are dropped.
func tail(out string, n int) []string {
	out = strings.ReplaceAll(out, "\r", "")
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
