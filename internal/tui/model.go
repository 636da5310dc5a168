package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/engine"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/ui"
)

type dashModel struct {
	ctx   context.Context
	svc   *engine.Service
	today string

	width  int
	height int

	player  *storage.Player
	cap     int
	quests  []engine.QuestStatus
	plan    *engine.WorkoutPlan
	actions []storage.KiAction

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	player  *storage.Player
	cap     int
	quests  []engine.QuestStatus
	plan    *engine.WorkoutPlan
	actions []storage.KiAction
	err     error
}

type questDoneMsg struct {
	questID string
	res     *engine.QuestResult
	err     error
}

func newDashModel(ctx context.Context, svc *engine.Service, today string) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		today:   today,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Player(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		st, err := m.svc.Settings(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.TodayQuestStatus(m.ctx, m.today)
		if err != nil {
			return loadedMsg{err: err}
		}
		plan, err := m.svc.TodayPlan(m.ctx, m.today)
		if err != nil {
			return loadedMsg{err: err}
		}
		actions, err := m.svc.RecentActions(m.ctx, 8)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{player: p, cap: st.DailyKiCap, quests: quests, plan: plan, actions: actions}
	}
}

func (m dashModel) completeQuestCmd(questID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, engine.QuestInput{DateISO: m.today, QuestID: questID})
		return questDoneMsg{questID: questID, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.player = msg.player
		m.cap = msg.cap
		m.quests = msg.quests
		m.plan = msg.plan
		m.actions = msg.actions
		if m.selected >= len(m.quests) {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case questDoneMsg:
		if msg.err != nil {
			m.lastLog = "Quest failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.res.Message
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.quests) {
				q := m.quests[m.selected]
				if q.Completed {
					m.lastLog = "Quest ya completada hoy."
					return m, nil
				}
				return m, m.completeQuestCmd(q.Def.QuestID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m dashModel) View() string {
	if m.loading {
		return "Loading…"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n\nPress q to quit."
	}

	var sections []string
	sections = append(sections, m.renderPlayer())
	sections = append(sections, m.renderQuests())
	sections = append(sections, m.renderPlan())
	sections = append(sections, m.renderActions())
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m dashModel) renderPlayer() string {
	prog := engine.ProgressToNext(m.player.KiTotal)
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconTurtle+" Escuela de la Tortuga — "+m.today) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", ui.Gold.Render(prog.Current.Label()), ui.Muted.Render(fmt.Sprintf("%d KI total", m.player.KiTotal))))
	if prog.Next != nil {
		bar := progressBar(m.player.KiTotal-prog.Current.MinKi, prog.Next.MinKi-prog.Current.MinKi, 20)
		b.WriteString(fmt.Sprintf("Next: %s %s %s\n", prog.Next.Label(), bar, ui.Muted.Render(fmt.Sprintf("%d to go", prog.Remaining))))
	} else {
		b.WriteString(ui.Gold.Render("Máxima transformación alcanzada") + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %d/%d KI hoy   %s %d días\n", ui.Key.Render("Cap:"), m.player.KiToday, m.cap, ui.Key.Render(ui.IconStreak+" Streak:"), m.player.Streak))
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m dashModel) renderQuests() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconQuest+" Quests del día") + "\n")
	for i, q := range m.quests {
		cursor := "  "
		line := fmt.Sprintf("%s %s", ui.CheckMark(q.Completed), q.Def.Title)
		if i == m.selected {
			cursor = ui.Key.Render("> ")
			line = ui.H2.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m dashModel) renderPlan() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconKi+" Plan: "+m.plan.Name) + "\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("~%d min · %s", m.plan.EstimatedMinutes, m.plan.TemplateID)) + "\n")
	for _, block := range m.plan.Blocks {
		b.WriteString(ui.Key.Render(block.Name) + "\n")
		for _, e := range block.Exercises {
			if e.HasReps() {
				b.WriteString(fmt.Sprintf("  - %s %s\n", e.Name, ui.Muted.Render(fmt.Sprintf("%d×%d", e.Sets, e.Reps))))
			} else {
				b.WriteString(fmt.Sprintf("  - %s %s\n", e.Name, ui.Muted.Render(fmt.Sprintf("%d×%ds", e.Sets, e.TimeSec))))
			}
		}
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m dashModel) renderActions() string {
	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconScroll+" Último KI") + "\n")
	if len(m.actions) == 0 {
		b.WriteString(ui.Muted.Render("Sin acciones todavía.") + "\n")
	}
	for _, a := range m.actions {
		delta := fmt.Sprintf("+%d", a.KiDelta)
		if a.KiDelta == 0 {
			delta = ui.Muted.Render("+0")
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n", ui.Muted.Render(a.Date), delta, strings.ReplaceAll(a.Type, "_", " ")))
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m dashModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ select · enter complete quest · r refresh · q quit")
	return help + "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
