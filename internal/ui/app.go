// Package ui provides terminal user interface components for the farflife app.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"farflife/internal/config"
	"farflife/internal/engine"
	"farflife/internal/notify"
	"farflife/internal/scheduler"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneEssentials PaneID = iota
	PaneQuests
	PaneReview
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all three panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmDeletions      bool
	ConfirmResets         bool
	Celebrations          bool
	NarrowLayoutThreshold int
	Notifications         notify.Config
}

// App is the main application model that coordinates all panes.
type App struct {
	svc            *engine.Service
	styles         *Styles
	config         *AppConfig
	notifier       notify.Notifier
	essentialsPane *EssentialsPane
	questsPane     *QuestsPane
	reviewPane     *ReviewPane
	helpOverlay    *HelpOverlay
	confirm        *confirmState
	rollover       chan rolloverMsg
	activePane     PaneID
	layoutMode     LayoutMode
	showHelp       bool
	showWelcome    bool
	width          int
	height         int
	status         string
	statusErr      bool
	statusUntil    time.Time
	celebration    string
	celebTimer     time.Time
	quitting       bool

	// Daily goal input state
	settingGoal bool
	goalInput   textinput.Model

	// Key bindings
	keys      GlobalKeyMap
	inputKeys InputKeyMap
	helpKeys  HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	essentialsPaneStart int
	essentialsPaneEnd   int
	questsPaneStart     int
	questsPaneEnd       int
	reviewPaneStart     int
	reviewPaneEnd       int
	contentTop          int // Y coordinate where content starts
}

type confirmState struct {
	title string
	body  string
	cmd   tea.Cmd
}

// NewApp creates a new application model. The engine has already loaded
// and reconciled state, so the constructor is non-blocking.
func NewApp(svc *engine.Service, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmDeletions:      true,
			ConfirmResets:         true,
			Celebrations:          true,
			NarrowLayoutThreshold: 80,
			Notifications:         notify.DefaultConfig(),
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	// Create panes with config-aware key bindings
	essentialsPane := NewEssentialsPaneWithKeys(svc, styles, cfg.Keys)
	questsPane := NewQuestsPaneWithKeys(svc, styles, cfg.Keys)
	reviewPane := NewReviewPane(svc, styles)
	helpOverlay := NewHelpOverlay(styles)

	gi := textinput.New()
	gi.Placeholder = "Daily goal XP (e.g., 100)"
	gi.CharLimit = 5
	gi.Width = 24

	app := &App{
		svc:            svc,
		styles:         styles,
		config:         cfg,
		notifier:       notify.New(),
		essentialsPane: essentialsPane,
		questsPane:     questsPane,
		reviewPane:     reviewPane,
		helpOverlay:    helpOverlay,
		rollover:       make(chan rolloverMsg, 1),
		activePane:     PaneEssentials,
		showHelp:       false,
		showWelcome:    isFirstRun(svc),
		goalInput:      gi,
		keys:           NewGlobalKeyMap(cfg.Keys),
		inputKeys:      NewInputKeyMap(cfg.Keys),
		helpKeys:       DefaultHelpKeyMap(),
	}

	// Set initial focus
	essentialsPane.SetFocused(true)
	questsPane.SetFocused(false)
	reviewPane.SetFocused(false)

	return app
}

// isFirstRun checks if this appears to be the first time running the app.
// The seeded defaults carry no earned progress, so any lifetime counter or
// history entry means the app has been used before.
func isFirstRun(svc *engine.Service) bool {
	stats := svc.LifetimeStats()
	if stats.TotalDaysCompleted > 0 || stats.TotalXPEarned > 0 || stats.TotalQuestsCompleted > 0 {
		return false
	}
	state := svc.State()
	return svc.TodayXP() == 0 && len(state.DailyHistory) == 0
}

// tickMsg is sent periodically for time updates.
type tickMsg time.Time

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the clock tick and arms the midnight listener.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		waitForRolloverCmd(a.rollover),
	)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle engine outcome messages first so they are processed
	// regardless of which pane is active.
	switch msg := msg.(type) {
	case progressMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
			return a, nil
		}
		if msg.result.Celebrate {
			if a.config.Celebrations {
				a.celebration = fmt.Sprintf("🎉 Daily goal reached! %d XP banked", a.svc.TodayXP())
				a.celebTimer = time.Now().Add(5 * time.Second)
			}
			return a, notifyGoalCmd(a.notifier, a.config.Notifications, a.svc.TodayXP(), a.svc.Streak())
		}
		if msg.result.GoalReached {
			a.SetStatus("Daily goal reached", false)
		}
		return a, nil

	case itemsChangedMsg:
		if msg.err != nil {
			a.SetStatus(msg.err.Error(), true)
		} else if msg.desc != "" {
			a.SetStatus(msg.desc, false)
		}
		return a, nil

	case rolloverMsg:
		a.svc.ReconcileDay()
		a.SetStatus("A new day begins: "+a.svc.Today(), false)
		return a, waitForRolloverCmd(a.rollover)

	case notifyDoneMsg:
		if msg.err != nil {
			a.SetStatus("Notification: "+msg.err.Error(), true)
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirm != nil {
			switch msg.String() {
			case "y", "Y", "enter":
				cmd := a.confirm.cmd
				a.confirm = nil
				return a, cmd
			case "n", "N", "esc":
				a.confirm = nil
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		// Daily goal input mode
		if a.settingGoal {
			return a, a.updateGoalInput(msg)
		}

		// Check if any pane is in input mode
		inInputMode := a.essentialsPane.IsEditing() || a.questsPane.IsEditing()

		if !inInputMode {
			// Confirm deletions if enabled.
			if a.config.ConfirmDeletions {
				if cmd, handled := a.interceptDelete(msg); handled {
					return a, cmd
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneEssentials)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneQuests)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneReview)
				return a, nil

			case key.Matches(msg, a.keys.SetGoal):
				a.settingGoal = true
				a.goalInput.SetValue(strconv.Itoa(a.svc.DailyGoal()))
				a.goalInput.Focus()
				return a, textinput.Blink

			case key.Matches(msg, a.keys.ResetToday):
				cmd := a.resetTodayCmd()
				if a.config.ConfirmResets {
					a.confirm = &confirmState{
						title: "Reset today?",
						body:  "Today's XP and completions are cleared. Lifetime totals stay.",
						cmd:   cmd,
					}
					return a, nil
				}
				return a, cmd

			case key.Matches(msg, a.keys.ResetAll):
				cmd := a.resetAllCmd()
				if a.config.ConfirmResets {
					a.confirm = &confirmState{
						title: "Reset everything?",
						body:  "All progress, history, and custom items are replaced with the starter set.",
						cmd:   cmd,
					}
					return a, nil
				}
				return a, cmd
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tickMsg:
		now := time.Now()
		if a.status != "" && !a.statusUntil.IsZero() && now.After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		if a.celebration != "" && now.After(a.celebTimer) {
			a.celebration = ""
			a.celebTimer = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	if !a.showHelp {
		var cmd tea.Cmd
		switch a.activePane {
		case PaneEssentials:
			cmd = a.essentialsPane.Update(msg)
		case PaneQuests:
			cmd = a.questsPane.Update(msg)
		case PaneReview:
			// Review pane is read-only
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// interceptDelete turns a delete keypress into a confirmation overlay.
// Returns handled=false when the key is not a delete for the active pane.
func (a *App) interceptDelete(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch a.activePane {
	case PaneEssentials:
		if key.Matches(msg, a.essentialsPane.keys.Delete) {
			items := a.svc.DailyEssentials()
			cursor := a.essentialsPane.cursor
			if len(items) == 0 || cursor < 0 || cursor >= len(items) {
				a.SetStatus("No essential selected", true)
				return nil, true
			}
			item := items[cursor]
			a.confirm = &confirmState{
				title: "Delete essential?",
				body:  truncateText(item.Name, 60),
				cmd:   a.deleteEssentialCmd(item.ID, item.Name),
			}
			return nil, true
		}
	case PaneQuests:
		if key.Matches(msg, a.questsPane.keys.Delete) {
			quests := a.svc.Quests()
			cursor := a.questsPane.cursor
			if len(quests) == 0 || cursor < 0 || cursor >= len(quests) {
				a.SetStatus("No quest selected", true)
				return nil, true
			}
			quest := quests[cursor]
			a.confirm = &confirmState{
				title: "Delete quest?",
				body:  truncateText(quest.Name, 60),
				cmd:   a.deleteQuestCmd(quest.ID, quest.Name),
			}
			return nil, true
		}
	}
	return nil, false
}

// updateGoalInput handles keypresses while the daily goal form is open.
func (a *App) updateGoalInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.inputKeys.Confirm):
		raw := strings.TrimSpace(a.goalInput.Value())
		a.settingGoal = false
		a.goalInput.Reset()
		goal, err := strconv.Atoi(raw)
		if err != nil {
			a.SetStatus("Goal must be a number", true)
			return nil
		}
		res, setErr := a.svc.SetDailyGoal(goal)
		if setErr == nil {
			a.SetStatus(fmt.Sprintf("Daily goal set to %d XP", goal), false)
		}
		return progressCmd(res, setErr)

	case key.Matches(msg, a.inputKeys.Cancel):
		a.settingGoal = false
		a.goalInput.Reset()
		return nil
	}

	var cmd tea.Cmd
	a.goalInput, cmd = a.goalInput.Update(msg)
	return cmd
}

// deleteEssentialCmd builds the deferred delete used by the confirm overlay.
func (a *App) deleteEssentialCmd(id, name string) tea.Cmd {
	return func() tea.Msg {
		err := a.svc.DeleteDailyTask(id)
		a.essentialsPane.clampCursor()
		return itemsChangedMsg{desc: "Deleted " + name, err: err}
	}
}

// deleteQuestCmd builds the deferred delete used by the confirm overlay.
func (a *App) deleteQuestCmd(id, name string) tea.Cmd {
	return func() tea.Msg {
		err := a.svc.DeleteQuest(id)
		a.questsPane.clampCursor()
		return itemsChangedMsg{desc: "Deleted " + name, err: err}
	}
}

// resetTodayCmd builds the deferred same-day reset.
func (a *App) resetTodayCmd() tea.Cmd {
	return func() tea.Msg {
		a.svc.ResetToday()
		return itemsChangedMsg{desc: "Today's progress reset"}
	}
}

// resetAllCmd builds the deferred full reset.
func (a *App) resetAllCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.svc.ResetAll()
		a.essentialsPane.clampCursor()
		a.questsPane.clampCursor()
		return itemsChangedMsg{desc: "Fresh start! Everything reset", err: err}
	}
}

// updateMouse handles mouse events at the app level.
func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showWelcome {
		if msg.Action == tea.MouseActionPress {
			a.showWelcome = false
		}
		return a, nil
	}

	if a.confirm != nil {
		if msg.Action == tea.MouseActionPress {
			a.confirm = nil
			a.SetStatus("Canceled", false)
		}
		return a, nil
	}

	// Any click closes help
	if a.showHelp {
		if msg.Action == tea.MouseActionPress {
			a.showHelp = false
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// In narrow mode, check for tab bar clicks
		if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
			tabWidth := a.width / 3
			if msg.X < tabWidth {
				a.setActivePane(PaneEssentials)
			} else if msg.X < tabWidth*2 {
				a.setActivePane(PaneQuests)
			} else {
				a.setActivePane(PaneReview)
			}
			return a, nil
		}

		// Determine which pane was clicked (in wide mode)
		clickedPane := a.paneAtPosition(msg.X)
		if clickedPane >= 0 && clickedPane != a.activePane {
			a.setActivePane(clickedPane)
		}

		// Forward click to active pane with adjusted coordinates
		if msg.Y >= a.contentTop {
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop
			if a.layoutMode == LayoutWide {
				switch a.activePane {
				case PaneQuests:
					localMsg.X = msg.X - a.questsPaneStart
				case PaneReview:
					localMsg.X = msg.X - a.reviewPaneStart
				}
			}

			switch a.activePane {
			case PaneEssentials:
				return a, a.essentialsPane.Update(localMsg)
			case PaneQuests:
				return a, a.questsPane.Update(localMsg)
			}
		}

	case tea.MouseActionMotion:
		// Ignore motion events for now
	}

	// Handle scroll wheel
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		localMsg := msg
		localMsg.Y = msg.Y - a.contentTop

		switch a.activePane {
		case PaneEssentials:
			return a, a.essentialsPane.Update(localMsg)
		case PaneQuests:
			return a, a.questsPane.Update(localMsg)
		}
	}

	return a, nil
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	switch a.activePane {
	case PaneEssentials:
		a.setActivePane(PaneQuests)
	case PaneQuests:
		a.setActivePane(PaneReview)
	case PaneReview:
		a.setActivePane(PaneEssentials)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.essentialsPane.SetFocused(pane == PaneEssentials)
	a.questsPane.SetFocused(pane == PaneQuests)
	a.reviewPane.SetFocused(pane == PaneReview)
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.essentialsPaneStart && x < a.essentialsPaneEnd {
		return PaneEssentials
	}
	if x >= a.questsPaneStart && x < a.questsPaneEnd {
		return PaneQuests
	}
	if x >= a.reviewPaneStart && x < a.reviewPaneEnd {
		return PaneReview
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to all panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.essentialsPane.SetSize(paneWidth, narrowHeight)
		a.questsPane.SetSize(paneWidth, narrowHeight)
		a.reviewPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, all panes occupy the same space
		a.essentialsPaneStart = 0
		a.essentialsPaneEnd = a.width
		a.questsPaneStart = 0
		a.questsPaneEnd = a.width
		a.reviewPaneStart = 0
		a.reviewPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: three panes side-by-side
		a.layoutMode = LayoutWide

		var essentialsWidth, questsWidth, reviewWidth int
		if totalWidth < 120 {
			// Medium: balanced three-column
			essentialsWidth = (totalWidth * 35) / 100
			questsWidth = (totalWidth * 35) / 100
			reviewWidth = totalWidth - essentialsWidth - questsWidth - 2
		} else {
			// Wide: comfortable three-column with max widths
			essentialsWidth = min((totalWidth*36)/100, 52)
			questsWidth = min((totalWidth*36)/100, 52)
			reviewWidth = min(totalWidth-essentialsWidth-questsWidth-2, 45)
		}

		a.essentialsPane.SetSize(essentialsWidth, contentHeight)
		a.questsPane.SetSize(questsWidth, contentHeight)
		a.reviewPane.SetSize(reviewWidth, contentHeight)

		// Calculate pane positions (with 1 space gaps between panes)
		a.essentialsPaneStart = 0
		a.essentialsPaneEnd = essentialsWidth
		a.questsPaneStart = essentialsWidth + 1
		a.questsPaneEnd = a.questsPaneStart + questsWidth
		a.reviewPaneStart = a.questsPaneEnd + 1
		a.reviewPaneEnd = a.reviewPaneStart + reviewWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirm != nil {
		return a.renderConfirm()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to farflife"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(fmt.Sprintf("Earn XP by completing essentials and quests.\nReach %d XP to keep your streak alive.\n", a.svc.DailyGoal())))
	b.WriteString(bodyStyle.Render("Tab switches panes. ? opens help.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirm() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.confirm.title))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirm.body))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] confirm    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders all three panes side by side.
func (a *App) renderWideContent() string {
	essentialsView := a.essentialsPane.View()
	questsView := a.questsPane.View()
	reviewView := a.reviewPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, essentialsView, " ", questsView, " ", reviewView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneEssentials:
		b.WriteString(a.essentialsPane.View())
	case PaneQuests:
		b.WriteString(a.questsPane.View())
	case PaneReview:
		b.WriteString(a.reviewPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	// Tab labels
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneEssentials, "Essentials"},
		{PaneQuests, "Quests"},
		{PaneReview, "Review"},
	}

	// Create tab styles
	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			// Active tab: highlighted with brackets
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			// Inactive tab: muted
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a nice exit message with today's progress.
func (a *App) renderGoodbye() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you tomorrow!\n")
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Today: %d/%d XP (%d%%)\n", a.svc.TodayXP(), a.svc.DailyGoal(), a.svc.GoalPercent()))
	if a.svc.GoalReachedToday() {
		b.WriteString("  Goal reached! 🎉\n")
	}
	if a.svc.Streak() > 0 {
		b.WriteString(fmt.Sprintf("  Streak: %d days 🔥\n", a.svc.Streak()))
	}
	b.WriteString("\n")

	return b.String()
}

// renderTitleBar creates the top title bar with the XP goal progress.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" farflife ")

	// XP progress summary
	percent := a.svc.GoalPercent()
	bar := a.styles.RenderXPBar(percent, 16)
	xpText := a.styles.XPValueStyle.Render(fmt.Sprintf("%d/%d XP", a.svc.TodayXP(), a.svc.DailyGoal()))
	progress := bar + " " + xpText
	if a.svc.GoalReachedToday() {
		progress += " " + a.styles.GoalReachedStyle.Render("✓")
	}

	// Streak indicator
	var streak string
	if a.svc.Streak() > 0 {
		streak = a.styles.StreakStyle.Render(fmt.Sprintf("🔥%d", a.svc.Streak()))
	}

	// Current date/time
	now := a.svc.Now()
	dateStr := now.Format("Mon Jan 2 · 15:04")
	date := a.styles.DateStyle.Render(dateStr)

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	progressWidth := lipgloss.Width(progress)
	streakWidth := lipgloss.Width(streak)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + progressWidth + streakWidth + dateWidth
	spacerWidth := a.width - usedWidth - 6
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	// Build the title bar
	var parts []string
	parts = append(parts, title)
	parts = append(parts, "  "+progress)

	// Distribute spacing
	leftSpacer := strings.Repeat(" ", spacerWidth/2)
	rightSpacer := strings.Repeat(" ", spacerWidth-spacerWidth/2)

	parts = append(parts, leftSpacer)

	if streak != "" {
		parts = append(parts, streak)
	}

	parts = append(parts, rightSpacer)
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.celebration != "" {
		return a.styles.CelebrationStyle.Render(a.celebration)
	}

	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.settingGoal {
		prompt := a.styles.InputPromptStyle.Render("Goal: ")
		return prompt + a.goalInput.View() + "  " + a.styles.RenderHelp("enter", "save", "esc", "cancel")
	}

	// Input mode help
	if a.essentialsPane.IsEditing() || a.questsPane.IsEditing() {
		return a.styles.RenderHelp(
			"enter", "next/save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneEssentials:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"e", "edit",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneQuests:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "complete",
			"e", "edit",
			"x", "del",
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneReview:
		return a.styles.RenderHelp(
			"s", "set goal",
			"r", "reset today",
			"R", "reset all",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// truncateText shortens s to at most n runes, appending an ellipsis.
func truncateText(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// forwardRollover hands a midnight boundary to the program's message
// loop. The send never blocks the scheduler goroutine; if a rollover is
// already queued the new one is dropped, since one reconcile covers any
// number of missed boundaries.
func (a *App) forwardRollover(t time.Time) {
	select {
	case a.rollover <- rolloverMsg(t):
	default:
	}
}

// Run starts the Bubble Tea program with the given engine, styles, and
// config. A midnight scheduler feeds rollover events into the app so the
// day boundary is honored while the program stays open.
func Run(svc *engine.Service, styles *Styles, cfg *AppConfig) error {
	app := NewApp(svc, styles, cfg)

	sched := scheduler.NewMidnight(app.forwardRollover)
	sched.Start()
	defer sched.Stop()

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}
