package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rolldo-dev/rolldo/internal/animation"
	"github.com/rolldo-dev/rolldo/internal/domain"
)

// View renders the full screen: task list on the left, dice and timer on the
// right, with the edit or confirm dialog replacing the help line when open.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorWarn))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  🎲 Rolldo") + "\n\n")

	left := m.viewTasks()
	right := lipgloss.JoinVertical(lipgloss.Left, m.viewDice(), m.viewTimer())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	switch {
	case m.editing:
		b.WriteString(m.viewEditDialog())
	case m.confirm != nil:
		b.WriteString(m.viewConfirmDialog())
	default:
		b.WriteString(helpStyle.Render("  1-6 edit · r roll · space start/pause · c complete · x end · q quit"))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(warnStyle.Render("  " + m.status))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewTasks() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorTitle)).
		Padding(0, 1).
		Margin(0, 1)

	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDone)).Strikethrough(true)
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorActive)).Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDone))

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render("📝 Your Tasks"))
	for i := range m.state.Tasks {
		task := m.state.Tasks[i]
		mark := " "
		if task.Completed {
			mark = "✓"
		}
		text := task.Text
		if text == "" {
			text = "(empty)"
		}
		line := fmt.Sprintf("[%d] [%s] %s", i+1, mark, text)

		active := m.state.Timer.Running &&
			m.state.Timer.TaskIndex != nil && *m.state.Timer.TaskIndex == i
		switch {
		case active:
			rows = append(rows, activeStyle.Render("▶ "+line))
		case task.Completed:
			rows = append(rows, doneStyle.Render("  "+line))
		case task.Text == "":
			rows = append(rows, emptyStyle.Render("  "+line))
		default:
			rows = append(rows, taskStyle.Render("  "+line))
		}
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewDice() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorTimer)).
		Padding(0, 1).
		Margin(0, 1)

	color := m.theme.ColorTask
	switch {
	case m.rolling:
		color = animation.RainbowColorAt(m.rollOffset)
	case m.settled:
		color = m.theme.ColorActive
	}
	faceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	content := lipgloss.NewStyle().Bold(true).Render("🎲 Dice") + "\n" +
		faceStyle.Render(diceFace(m.diceValue))
	return panelStyle.Render(content)
}

func (m Model) viewTimer() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorActive)).
		Padding(0, 1).
		Margin(0, 1)

	timer := m.state.Timer
	color := m.theme.ColorTimer
	if timer.IsBreak {
		color = m.theme.ColorBreak
	}
	if !timer.Running && timer.RemainingSeconds > 0 {
		color = m.theme.ColorPaused
	}
	clockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	var parts []string
	parts = append(parts, lipgloss.NewStyle().Bold(true).Render("⏱  Timer"))
	parts = append(parts, clockStyle.Render(renderClock(timer.RemainingSeconds)))
	parts = append(parts, m.timerStatusLine())

	if timer.DurationSeconds > 0 {
		fraction := float64(timer.RemainingSeconds) / float64(timer.DurationSeconds)
		if m.fillFrames != nil {
			fraction = m.fillFrames[m.fillStep]
		}
		parts = append(parts, m.bar.ViewAs(fraction))
	}

	return panelStyle.Render(strings.Join(parts, "\n"))
}

func (m Model) timerStatusLine() string {
	timer := m.state.Timer
	switch {
	case timer.Running && timer.IsBreak:
		return "▶ Break time!"
	case timer.Running && timer.TaskIndex != nil:
		return fmt.Sprintf("▶ Task %d", *timer.TaskIndex+1)
	case timer.Running:
		return "▶ Running"
	case timer.RemainingSeconds > 0:
		return "⏸ Paused"
	default:
		return "Ready to roll!"
	}
}

func (m Model) viewEditDialog() string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorActive)).
		Padding(0, 1).
		Margin(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	content := fmt.Sprintf("Edit Task %d (max %d chars)\n%s\n%s",
		m.editIndex+1, domain.TaskCharLimit,
		m.input.View(),
		helpStyle.Render("enter save · esc cancel"))
	return dialogStyle.Render(content)
}

func (m Model) viewConfirmDialog() string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorWarn)).
		Padding(0, 1).
		Margin(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	content := lipgloss.NewStyle().Bold(true).Render(m.confirm.title)
	if m.confirm.detail != "" {
		content += "\n" + m.confirm.detail
	}
	content += "\n" + helpStyle.Render("y confirm · n cancel")
	return dialogStyle.Render(content)
}
