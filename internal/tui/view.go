package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayflow/internal/constants"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/optimizer"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/tui/components/block"
	"github.com/julianstephens/dayflow/internal/utils"
)

// cards are laid out side by side when each gets at least this many columns.
const minCardWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateAlarmPlaying:
		return m.viewAlarm()
	case constants.StateAdding:
		content = m.viewAdding()
	case constants.StateRanking:
		content = m.viewRanking()
	case constants.StateSettings:
		content = m.viewSettings()
	case constants.StateEditSettings:
		content = m.form.View()
	default:
		content = m.viewMain()
	}

	parts := []string{m.viewHeader(), m.viewTabs(), docStyle.Render(content)}
	if m.message != "" {
		parts = append(parts, errorStyle.Render(m.message))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	greeting := m.tr.Greeting(planner.Greeting(m.now))
	if m.session.User != nil {
		greeting += ", " + m.session.User.Name
	}
	line := greetingStyle.Render(greeting) + "  " + clockStyle.Render(m.now.Format("15:04:05"))

	st := m.status
	line += "  " + mutedStyle.Render(fmt.Sprintf("%s %s %s-%s", m.tr.T(i18n.Now), m.tr.Period(st.Period), st.Block.Start, st.Block.End))
	if st.RecoveryMode {
		line += " " + badgeStyle.Render(m.tr.T(i18n.RecoveryMode))
	}
	if st.WindDown {
		line += " " + badgeStyle.Render(m.tr.T(i18n.WindDown))
	}
	return line
}

func (m Model) viewTabs() string {
	titles := []i18n.Key{i18n.Today, i18n.Upcoming, i18n.Week, i18n.Month}
	tabs := make([]string, len(titles))
	for i, t := range titles {
		if viewMode(i) == m.view {
			tabs[i] = activeTabStyle.Render(m.tr.T(t))
		} else {
			tabs[i] = inactiveTabStyle.Render(m.tr.T(t))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewMain() string {
	switch m.view {
	case viewUpcoming:
		return m.upcoming.View()
	case viewWeek:
		return m.viewWeek()
	case viewMonth:
		return m.viewMonth()
	}
	return m.viewDay()
}

func (m Model) viewDay() string {
	views := m.blocks()
	cards := make([]string, len(views))

	width := 0
	sideBySide := m.width >= minCardWidth*len(views)
	if sideBySide {
		width = (m.width - 2) / len(views)
	} else if m.width > 0 {
		width = m.width - 2
	}

	for i, v := range views {
		b := block.New(v)
		b.SetSize(width)
		b.Focused = i == m.focus
		if b.Focused {
			b.Cursor = m.cursor
		}
		cards[i] = b.Render(m.tr)
	}

	date := m.date
	if d, err := utils.ParseDateInLocation(m.date, m.now.Location()); err == nil {
		date = d.Format("Monday, 2 Jan 2006")
	}
	title := mutedStyle.Render(date)

	var grid string
	if sideBySide {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	out := []string{title, grid}
	if m.status.RecoveryMode && m.date == m.today() {
		out = append(out, mutedStyle.Render("✦ "+m.tr.Tip(m.now.YearDay())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m Model) anchor() time.Time {
	d, err := utils.ParseDateInLocation(m.date, m.now.Location())
	if err != nil {
		return m.now
	}
	return d
}

func (m Model) viewWeek() string {
	var b strings.Builder
	for _, d := range planner.WeekView(m.session.Tasks, m.anchor()) {
		label := d.Date
		if t, err := utils.ParseDateInLocation(d.Date, m.now.Location()); err == nil {
			label = t.Format("Mon 02 Jan")
		}
		switch {
		case d.Date == m.today():
			label = todayStyle.Render(label)
		case d.Date == m.date:
			label = greetingStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s  ", label)
		if d.Total == 0 {
			b.WriteString(mutedStyle.Render("-"))
		} else {
			fmt.Fprintf(&b, "%d/%d", d.Completed, d.Total)
			for _, p := range models.WakingPeriods {
				if n := d.Counts[p]; n > 0 {
					fmt.Fprintf(&b, "  %s %d", m.tr.Period(p), n)
				}
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewMonth() string {
	anchor := m.anchor()
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	var b strings.Builder
	b.WriteString(greetingStyle.Render(first.Format("January 2006")))
	b.WriteString("\n Su  Mo  Tu  We  Th  Fr  Sa\n")
	b.WriteString(strings.Repeat("    ", int(first.Weekday())))
	for i, d := range planner.MonthView(m.session.Tasks, anchor) {
		cell := fmt.Sprintf("%3d ", i+1)
		switch {
		case d.Date == m.today():
			cell = todayStyle.Render(cell)
		case d.Total > 0:
			cell = busyStyle.Render(cell)
		}
		b.WriteString(cell)
		if (int(first.Weekday())+i)%7 == 6 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewAdding() string {
	if m.form != nil {
		return m.form.View()
	}
	var b strings.Builder
	b.WriteString(greetingStyle.Render(m.tr.T(i18n.AddPoint)))
	b.WriteString("\n\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	if m.suggested != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("→ %s (%d)", m.suggested, m.suggested.Points())))
	}
	return b.String()
}

func (m Model) viewRanking() string {
	fb := m.focusedBlock()
	var b strings.Builder

	mode := string(m.strategy())
	if m.eisenhower {
		mode = "eisenhower"
	}
	fmt.Fprintf(&b, "%s  %s\n\n", greetingStyle.Render(m.tr.Period(fb.Block.ID)), mutedStyle.Render("← "+mode+" →"))

	tasks := planner.Pending(fb.Tasks)
	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	ids := m.rankedIDs()
	if len(ids) == 0 {
		b.WriteString(mutedStyle.Render(m.tr.T(i18n.Placeholder)))
	}
	for i, id := range ids {
		t := byID[id]
		extra := fmt.Sprintf("%s · %s", t.Weight, t.Priority)
		if m.eisenhower {
			extra = string(optimizer.Classify(t))
		}
		fmt.Fprintf(&b, "%2d. %s  %s\n", i+1, t.Title, mutedStyle.Render(extra))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter: apply  e: eisenhower  esc: back"))
	return b.String()
}

func (m Model) viewSettings() string {
	s := m.session.Settings
	var b strings.Builder
	b.WriteString(greetingStyle.Render(m.tr.T(i18n.Rhythm)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s → %s\n", s.WakeTime, s.RestTime)

	days := make([]string, len(s.RecoveryDays))
	for i, d := range s.RecoveryDays {
		days[i] = time.Weekday(d).String()[:3]
	}
	fmt.Fprintf(&b, "  %s: %s\n", m.tr.T(i18n.RecoveryMode), strings.Join(days, ", "))
	fmt.Fprintf(&b, "  %s: %s\n\n", m.tr.T(i18n.LanguageLabel), s.Language)

	for _, bl := range m.session.Blocks() {
		fmt.Fprintf(&b, "  %-12s %s-%s\n", m.tr.Period(bl.ID), bl.Start, bl.End)
	}

	b.WriteString("\n")
	b.WriteString(greetingStyle.Render(m.tr.T(i18n.AlarmTitle)))
	b.WriteString("\n")
	state := "off"
	if s.Alarm.Enabled {
		state = "on"
	}
	fmt.Fprintf(&b, "  %s  %s  %s\n\n", state, s.Alarm.Time, m.tr.Sound(s.Alarm.Sound))
	b.WriteString(mutedStyle.Render("enter: edit  esc: back"))
	return b.String()
}

func (m Model) viewAlarm() string {
	s := m.session.Settings.Alarm
	box := alarmStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		greetingStyle.Render(m.tr.T(i18n.FlowStart)),
		"",
		clockStyle.Render(m.now.Format("15:04")),
		mutedStyle.Render(m.tr.Sound(s.Sound)),
		"",
		fmt.Sprintf("[enter] %s   [z] %s", m.tr.T(i18n.EnterThread), m.tr.T(i18n.Snooze)),
	))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
