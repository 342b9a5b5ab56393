package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tarunark/weekplan/internal/domain"
)

const weekCellWidth = 12

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.mode == ModeHelp {
		return m.viewHelp()
	}
	return m.viewMain()
}

// viewMain renders the task tree, the week grid and the footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	}

	left := m.viewTaskPane()
	right := m.viewWeekPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	switch m.mode {
	case ModeInputTitle:
		b.WriteString("New task: " + m.titleInput.View() + "\n")
	case ModeConfirmDelete:
		prompt := fmt.Sprintf("Delete %s? enter to confirm, any other key to cancel", m.confirmTaskID)
		b.WriteString(m.styles.Error.Render(prompt) + "\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewHeader renders the title line with the displayed week range.
func (m *Model) viewHeader() string {
	title := m.styles.Title.Render("weekplan")
	if m.week == nil || len(m.week.Dates) == 0 {
		return title
	}
	span := m.week.Dates[0] + " .. " + m.week.Dates[len(m.week.Dates)-1]
	return title + "  " + m.styles.Muted.Render(span)
}

// viewTaskPane renders the flattened task tree.
func (m *Model) viewTaskPane() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Tasks") + "\n")
	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Muted.Render("no tasks") + "\n")
	}
	for i, node := range m.tasks {
		marker := "  "
		if i == m.cursor && m.focus == PaneTasks {
			marker = "> "
		}
		line := marker + strings.Repeat("  ", node.Depth) + m.renderTaskLine(node.Task)
		if i == m.cursor && m.focus == PaneTasks {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}

	style := m.styles.PaneInactive
	if m.focus == PaneTasks {
		style = m.styles.PaneActive
	}
	return style.Render(b.String())
}

// renderTaskLine renders a single task row.
func (m *Model) renderTaskLine(t *domain.Task) string {
	letter := "M"
	if t.Priority != "" {
		letter = string(t.Priority[0])
	}
	prio := m.styles.PriorityStyle(t.Priority).Render(letter)
	title := truncate(t.Title, 32)
	if t.State != domain.StateActive {
		title = m.styles.StateStyle(t.State).Render(title)
	}
	return fmt.Sprintf("[%s] %s  %s", prio, t.ID, title)
}

// viewWeekPane renders the slot grid for the displayed week.
func (m *Model) viewWeekPane() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Week") + "\n")

	if m.week == nil {
		b.WriteString(m.styles.Muted.Render("loading week") + "\n")
	} else {
		// Date header, one column per day.
		b.WriteString(strings.Repeat(" ", 14))
		for _, date := range m.week.Dates {
			b.WriteString(pad(date[5:], weekCellWidth))
		}
		b.WriteString("\n")

		for slot := 0; slot < m.slotsPerDay(); slot++ {
			b.WriteString(pad(m.slotLabel(slot), 14))
			for day, date := range m.week.Dates {
				b.WriteString(m.renderCell(date, day, slot))
			}
			b.WriteString("\n")
		}
	}

	style := m.styles.PaneInactive
	if m.focus == PaneWeek {
		style = m.styles.PaneActive
	}
	return style.Render(b.String())
}

// slotLabel renders the slot's time range from the configured boundaries.
func (m *Model) slotLabel(slot int) string {
	if slot+1 >= len(m.labels) {
		return fmt.Sprintf("slot %d", slot)
	}
	return m.labels[slot] + "-" + m.labels[slot+1]
}

// renderCell renders one schedule cell.
func (m *Model) renderCell(date string, day, slot int) string {
	text := "·"
	filled := false
	if cells, ok := m.week.Assignments[date]; ok {
		if id, ok := cells[domain.SlotKey(slot)]; ok {
			filled = true
			text = id
			if t, ok := m.week.Tasks[id]; ok && t.Title != "" {
				text = t.Title
			}
		}
	}
	text = pad(truncate(text, weekCellWidth-2), weekCellWidth)

	if m.focus == PaneWeek && day == m.day && slot == m.slot {
		return m.styles.CellSelected.Render(text)
	}
	if filled {
		return m.styles.CellFilled.Render(text)
	}
	return m.styles.CellEmpty.Render(text)
}

// viewHelp renders the full-keymap help overlay.
func (m *Model) viewHelp() string {
	m.help.ShowAll = true
	content := m.styles.Title.Render("Help") + "\n\n" + m.help.View(m.keys)
	m.help.ShowAll = false
	return content
}

// truncate shortens s to at most n runes, with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// pad right-pads s with spaces to width n.
func pad(s string, n int) string {
	if len([]rune(s)) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len([]rune(s)))
}
