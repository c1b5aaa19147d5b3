package ui

import (
	"strings"

	"github.com/quanticsoul4772/pcode-go/app"
	"github.com/quanticsoul4772/pcode-go/models"
)

const (
	appTitle    = "PCODE"
	appSubtitle = "docker compose over ssh"
)

// Render paints the whole screen for st. help is the rendered key help
// footer and width the terminal width, zero if unknown.
func Render(s Styles, st app.AppState, help string, width int) string {
	header := s.Header
	if width > 0 && width-4 < 60 {
		header = header.Width(max(width-4, 20))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header.Render(appTitle + "  " + s.Subtitle.Render(appSubtitle)))
	b.WriteString("\n")
	b.WriteString(RenderBreadcrumb(s, Breadcrumb(st)...))
	if st.Mode == app.ModeInsert {
		b.WriteString("  ")
		b.WriteString(s.ModeBadge.Render(st.Mode.String()))
	}
	b.WriteString("\n")

	b.WriteString(RenderSection(s, sectionTitle(st)))
	b.WriteString("\n")
	b.WriteString(renderRows(s, st))
	b.WriteString("\n")

	if msg := RenderMessage(s, st.Message); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if result := RenderResult(s, st.LastResult); result != "" {
		b.WriteString(result)
		b.WriteString("\n")
	}

	if help != "" {
		b.WriteString(s.StatusBar.Render(help))
		b.WriteString("\n")
	}
	return b.String()
}

// Breadcrumb returns the navigation path to the current screen
func Breadcrumb(st app.AppState) []string {
	parts := []string{"Home"}
	switch scr := st.Screen.(type) {
	case app.ProfileListScreen:
		parts = append(parts, purposeTitle(scr.Purpose))
	case app.ProfileEditScreen:
		name := scr.Original
		if name == "" {
			name = "new profile"
		}
		parts = append(parts, "Env", name)
	case app.TargetScreen:
		parts = append(parts, scr.Action.Title(), scr.Profile.Name)
	case app.RmiScreen:
		parts = append(parts, models.ActionDown.Title(), scr.Profile.Name)
	}
	return parts
}

func purposeTitle(p app.Purpose) string {
	if action, ok := p.Action(); ok {
		return action.Title()
	}
	return app.MainRows[app.PurposeEnv]
}

func sectionTitle(st app.AppState) string {
	switch scr := st.Screen.(type) {
	case app.ProfileListScreen:
		if scr.Purpose == app.PurposeEnv {
			return "Profiles"
		}
		return "Choose a profile"
	case app.ProfileEditScreen:
		return "Profile"
	case app.TargetScreen:
		return "Service (empty for all)"
	case app.RmiScreen:
		return "Remove images"
	}
	return "Menu"
}

func renderRows(s Styles, st app.AppState) string {
	selected, ok := st.Cursor.Index()
	active := func(i int) bool { return ok && i == selected }
	editing := func(i int) bool { return active(i) && st.Mode == app.ModeInsert }

	var lines []string
	switch scr := st.Screen.(type) {
	case app.ProfileEditScreen:
		placeholders := []string{"name", "user", "host or ip", "/path/to/compose/project"}
		for i := app.FieldProfile; i <= app.FieldPath; i++ {
			lines = append(lines, RenderField(s, app.EditRows[i], scr.Fields[i], placeholders[i], active(i), editing(i)))
		}
		lines = append(lines, RenderMenuItem(s, "[ "+app.EditRows[app.RowSave]+" ]", active(app.RowSave)))

	case app.TargetScreen:
		lines = append(lines,
			s.Help.Render("    "+scr.Profile.Destination()+":"+scr.Profile.RemotePath),
			RenderField(s, "target", scr.Target, "all services", active(app.RowTarget), editing(app.RowTarget)),
			RenderMenuItem(s, "[ "+scr.Action.Title()+" ]", active(app.RowRun)),
		)

	default:
		rows := st.Rows()
		if len(rows) == 0 {
			return s.Warning.Render("  No profiles found. Create one from Env.")
		}
		for i, row := range rows {
			lines = append(lines, RenderMenuItem(s, row, active(i)))
		}
	}
	return strings.Join(lines, "\n")
}
