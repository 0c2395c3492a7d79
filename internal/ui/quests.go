// Package ui provides terminal user interface components for the farflife app.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"farflife/internal/config"
	"farflife/internal/engine"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// QuestsPane shows the repeatable quests list.
type QuestsPane struct {
	svc     *engine.Service
	styles  *Styles
	cursor  int
	focused bool
	width   int
	height  int

	// Two-step add/edit form state
	adding      bool
	editing     bool
	step        int
	input       textinput.Model
	pendingName string
	editID      string

	// Key bindings
	keys      ItemKeyMap
	inputKeys InputKeyMap
}

// NewQuestsPane creates a new quests pane.
func NewQuestsPane(svc *engine.Service, styles *Styles) *QuestsPane {
	return NewQuestsPaneWithKeys(svc, styles, &config.KeysConfig{})
}

// NewQuestsPaneWithKeys creates a new quests pane with custom key bindings.
func NewQuestsPaneWithKeys(svc *engine.Service, styles *Styles, keyCfg *config.KeysConfig) *QuestsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Quest name (e.g., Meditate)"
	ti.CharLimit = 60
	ti.Width = 30

	return &QuestsPane{
		svc:       svc,
		styles:    styles,
		cursor:    0,
		focused:   false,
		input:     ti,
		keys:      NewItemKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the pane dimensions.
func (p *QuestsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *QuestsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *QuestsPane) IsFocused() bool {
	return p.focused
}

// IsEditing returns whether the pane is collecting form input.
func (p *QuestsPane) IsEditing() bool {
	return p.adding || p.editing
}

// clampCursor keeps the cursor inside the current list bounds.
func (p *QuestsPane) clampCursor() {
	n := len(p.svc.Quests())
	if p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

// Update handles messages for the quests pane.
func (p *QuestsPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if p.IsEditing() {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				return p.confirmForm()

			case key.Matches(msg, p.inputKeys.Cancel):
				p.resetForm()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		quests := p.svc.Quests()
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(quests) > 0 {
				p.cursor = min(p.cursor+1, len(quests)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(quests) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(quests) > 0 {
				p.cursor = len(quests) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.step = stepName
			p.input.Placeholder = "Quest name (e.g., Meditate)"
			p.input.CharLimit = 60
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Edit):
			if len(quests) > 0 && p.cursor < len(quests) {
				quest := quests[p.cursor]
				p.editing = true
				p.step = stepName
				p.editID = quest.ID
				p.input.Placeholder = "Quest name (e.g., Meditate)"
				p.input.CharLimit = 60
				p.input.SetValue(quest.Name)
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.Complete):
			if len(quests) > 0 && p.cursor < len(quests) {
				res, err := p.svc.CompleteQuest(quests[p.cursor].ID)
				return progressCmd(res, err)
			}

		case key.Matches(msg, p.keys.Delete):
			if len(quests) > 0 && p.cursor < len(quests) {
				quest := quests[p.cursor]
				err := p.svc.DeleteQuest(quest.ID)
				p.clampCursor()
				return itemsChangedCmd("Deleted "+quest.Name, err)
			}
		}
	}

	return nil
}

// confirmForm advances the two-step form and commits on the XP step.
func (p *QuestsPane) confirmForm() tea.Cmd {
	if p.step == stepName {
		name := strings.TrimSpace(p.input.Value())
		if name == "" {
			return nil
		}
		p.pendingName = name
		p.step = stepXP
		p.input.Reset()
		p.input.Placeholder = "XP value (e.g., 50)"
		p.input.CharLimit = 4
		return nil
	}

	xp, err := strconv.Atoi(strings.TrimSpace(p.input.Value()))
	if err != nil || xp < 1 {
		return nil
	}

	name := p.pendingName
	if p.editing {
		id := p.editID
		p.resetForm()
		return itemsChangedCmd("Updated "+name, p.svc.UpdateQuest(id, name, xp))
	}
	p.resetForm()
	_, addErr := p.svc.AddQuest(name, xp)
	return itemsChangedCmd("Added "+name, addErr)
}

// resetForm clears the add/edit form state.
func (p *QuestsPane) resetForm() {
	p.adding = false
	p.editing = false
	p.step = stepName
	p.pendingName = ""
	p.editID = ""
	p.input.Reset()
	p.input.Placeholder = "Quest name (e.g., Meditate)"
	p.input.CharLimit = 60
}

// handleMouse processes mouse events for the quests pane.
func (p *QuestsPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	quests := p.svc.Quests()
	if len(quests) == 0 {
		return nil
	}

	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(quests)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		row := msg.Y - headerRows
		if row < 0 || row >= len(quests) {
			return nil
		}
		p.cursor = row

		// Clicks on the marker area complete the quest
		if msg.X < 5 {
			res, err := p.svc.CompleteQuest(quests[row].ID)
			return progressCmd(res, err)
		}
	}

	return nil
}

// View renders the quests pane.
func (p *QuestsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("⚔️ QUESTS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	quests := p.svc.Quests()
	if len(quests) == 0 && !p.IsEditing() {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  No quests yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		totalToday := 0

		for i, quest := range quests {
			totalToday += quest.CompletedCount

			xpBadge := p.styles.XPValueStyle.Render(fmt.Sprintf("+%d", quest.XP))
			xpWidth := lipgloss.Width(xpBadge)

			// Repeat counter, only once completed today
			var counter string
			if quest.CompletedCount > 0 {
				counter = p.styles.GoalReachedStyle.Render(fmt.Sprintf(" ×%d", quest.CompletedCount))
			}
			counterWidth := lipgloss.Width(counter)

			// Layout: [space][marker][space][name][pad][xp][counter]
			availableTextWidth := p.width - 4 - 3 - xpWidth - counterWidth - 1
			if availableTextWidth < 5 {
				availableTextWidth = 5
			}

			name := runewidth.Truncate(quest.Name, availableTextWidth, "..")
			nameWidth := runewidth.StringWidth(name)
			padding := availableTextWidth - nameWidth
			if padding < 1 {
				padding = 1
			}

			marker := "◆"
			var line string
			if i == p.cursor && p.focused && !p.IsEditing() {
				textPart := fmt.Sprintf("%s %s%s%s%s", marker, name, strings.Repeat(" ", padding), xpBadge, counter)
				line = p.styles.ItemSelectedStyle.Render(" " + textPart + " ")
			} else {
				styledMarker := lipgloss.NewStyle().Foreground(p.styles.ColorAccent).Render(marker)
				line = fmt.Sprintf(" %s %s%s%s%s", styledMarker, p.styles.ItemPendingStyle.Render(name), strings.Repeat(" ", padding), xpBadge, counter)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d completed today", totalToday))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	if p.IsEditing() {
		b.WriteString("\n")
		var prompt string
		if p.step == stepName {
			prompt = p.styles.InputPromptStyle.Render("Name: ")
		} else {
			prompt = p.styles.InputPromptStyle.Render("XP: ")
		}
		b.WriteString("  " + prompt + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// CompletedToday returns how many quest repetitions were banked today.
func (p *QuestsPane) CompletedToday() int {
	total := 0
	for _, quest := range p.svc.Quests() {
		total += quest.CompletedCount
	}
	return total
}
