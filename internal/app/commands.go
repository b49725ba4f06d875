package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/inspion/internal/planner"
	"github.com/nhle/inspion/internal/query"
	"github.com/nhle/inspion/internal/ui/command"
)

// executeCommand handles a parsed command from the command palette.
func (m *Model) executeCommand(c command.Command) tea.Cmd {
	switch c.Name {
	case command.Export:
		return m.exportSnapshot()
	case command.Import:
		return m.importSnapshot()
	case command.List:
		m.overlay = OverlayNone
		return m.dispatch(planner.SwitchView{View: planner.ViewList})
	case command.Calendar:
		m.overlay = OverlayNone
		return m.dispatch(planner.SwitchView{View: planner.ViewCalendar})
	case command.Workload:
		m.overlay = OverlayNone
		return m.dispatch(planner.SwitchView{View: planner.ViewWorkload})
	case command.Today:
		return m.dispatch(planner.GoToToday{})
	case command.Settings:
		return m.openSettings()
	case command.Clear:
		return m.dispatch(planner.ClearFilter{})
	case command.Quit:
		return tea.Quit

	case command.Folder:
		f, err := query.ParseFolder(c.Arg(0))
		if err != nil {
			m.flashError(err)
			return nil
		}
		return m.dispatch(planner.SetFolder{Folder: f})

	case command.Sort:
		s, err := ParseSortArg(m.planner.State().Sort, c.Arg(0))
		if err != nil {
			m.flashError(err)
			return nil
		}
		return m.dispatch(planner.SetSort{Sort: s})

	case command.Filter:
		f, err := ApplyFilterArg(m.planner.State().Filter, c.Arg(0), c.Arg(1))
		if err != nil {
			m.flashError(err)
			return nil
		}
		return m.dispatch(planner.SetFilter{Filter: f})
	}
	return nil
}

// ParseSortArg reads "key", "key:asc" or "key:desc". Without a direction
// the current one is kept.
func ParseSortArg(current query.Sort, arg string) (query.Sort, error) {
	name, dir, hasDir := strings.Cut(arg, ":")
	k, err := query.ParseSortKey(name)
	if err != nil {
		return current, err
	}
	s := query.Sort{Key: k, Direction: current.Direction}
	if hasDir {
		switch strings.ToLower(dir) {
		case "asc":
			s.Direction = query.Asc
		case "desc":
			s.Direction = query.Desc
		default:
			return current, fmt.Errorf("unknown sort direction %q", dir)
		}
	}
	return s, nil
}

// ApplyFilterArg sets one filter field from palette input. The value "all"
// disables the field.
func ApplyFilterArg(f query.Filter, field, value string) (query.Filter, error) {
	value = strings.TrimSpace(value)
	off := strings.EqualFold(value, query.All)

	switch strings.ToLower(field) {
	case "search":
		if off {
			value = ""
		}
		f.Search = value

	case "importance", "urgency":
		l := query.ParseLevelFilter(value)
		if l == nil && !off {
			return f, fmt.Errorf("%s must be 0, 1, 2 or all", field)
		}
		if strings.EqualFold(field, "importance") {
			f.Importance = l
		} else {
			f.Urgency = l
		}

	case "priority":
		p := query.ParsePriorityFilter(value)
		if p == nil && !off {
			return f, fmt.Errorf("unknown priority %q", value)
		}
		f.Priority = p

	case "status":
		s := query.ParseStatusFilter(value)
		if s == nil && !off {
			return f, fmt.Errorf("unknown status %q", value)
		}
		f.Status = s

	default:
		return f, fmt.Errorf("unknown filter field %q", field)
	}
	return f, nil
}
