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

// inputStep tracks which field a two-step item form is collecting.
const (
	stepName = iota
	stepXP
)

// EssentialsPane shows the once-per-day essentials list.
type EssentialsPane struct {
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

// NewEssentialsPane creates a new essentials pane.
func NewEssentialsPane(svc *engine.Service, styles *Styles) *EssentialsPane {
	return NewEssentialsPaneWithKeys(svc, styles, &config.KeysConfig{})
}

// NewEssentialsPaneWithKeys creates a new essentials pane with custom key bindings.
func NewEssentialsPaneWithKeys(svc *engine.Service, styles *Styles, keyCfg *config.KeysConfig) *EssentialsPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "Essential name (e.g., Stretch)"
	ti.CharLimit = 60
	ti.Width = 30

	return &EssentialsPane{
		svc:       svc,
		styles:    styles,
		cursor:    0,
		focused:   true,
		input:     ti,
		keys:      NewItemKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the pane dimensions.
func (p *EssentialsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-6)
}

// SetFocused sets whether this pane is focused.
func (p *EssentialsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *EssentialsPane) IsFocused() bool {
	return p.focused
}

// IsEditing returns whether the pane is collecting form input.
func (p *EssentialsPane) IsEditing() bool {
	return p.adding || p.editing
}

// clampCursor keeps the cursor inside the current list bounds.
func (p *EssentialsPane) clampCursor() {
	n := len(p.svc.DailyEssentials())
	if p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

// Update handles messages for the essentials pane.
func (p *EssentialsPane) Update(msg tea.Msg) tea.Cmd {
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
		items := p.svc.DailyEssentials()
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(items) > 0 {
				p.cursor = min(p.cursor+1, len(items)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(items) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(items) > 0 {
				p.cursor = len(items) - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.step = stepName
			p.input.Placeholder = "Essential name (e.g., Stretch)"
			p.input.CharLimit = 60
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Edit):
			if len(items) > 0 && p.cursor < len(items) {
				item := items[p.cursor]
				p.editing = true
				p.step = stepName
				p.editID = item.ID
				p.input.Placeholder = "Essential name (e.g., Stretch)"
				p.input.CharLimit = 60
				p.input.SetValue(item.Name)
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.Complete):
			if len(items) > 0 && p.cursor < len(items) {
				res, err := p.svc.CompleteDailyTask(items[p.cursor].ID)
				return progressCmd(res, err)
			}

		case key.Matches(msg, p.keys.Delete):
			if len(items) > 0 && p.cursor < len(items) {
				item := items[p.cursor]
				err := p.svc.DeleteDailyTask(item.ID)
				p.clampCursor()
				return itemsChangedCmd("Deleted "+item.Name, err)
			}
		}
	}

	return nil
}

// confirmForm advances the two-step form and commits on the XP step.
func (p *EssentialsPane) confirmForm() tea.Cmd {
	if p.step == stepName {
		name := strings.TrimSpace(p.input.Value())
		if name == "" {
			return nil
		}
		p.pendingName = name
		p.step = stepXP
		p.input.Reset()
		p.input.Placeholder = "XP value (e.g., 10)"
		p.input.CharLimit = 4
		return nil
	}

	xp, err := strconv.Atoi(strings.TrimSpace(p.input.Value()))
	if err != nil || xp < 1 {
		// Stay on the XP step until the value parses
		return nil
	}

	name := p.pendingName
	if p.editing {
		id := p.editID
		p.resetForm()
		return itemsChangedCmd("Updated "+name, p.svc.UpdateDailyTask(id, name, xp))
	}
	p.resetForm()
	_, addErr := p.svc.AddDailyTask(name, xp)
	return itemsChangedCmd("Added "+name, addErr)
}

// resetForm clears the add/edit form state.
func (p *EssentialsPane) resetForm() {
	p.adding = false
	p.editing = false
	p.step = stepName
	p.pendingName = ""
	p.editID = ""
	p.input.Reset()
	p.input.Placeholder = "Essential name (e.g., Stretch)"
	p.input.CharLimit = 60
}

// handleMouse processes mouse events for the essentials pane.
func (p *EssentialsPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	items := p.svc.DailyEssentials()
	if len(items) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(items)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		row := msg.Y - headerRows
		if row < 0 || row >= len(items) {
			return nil
		}
		p.cursor = row

		// Clicks on the checkbox area complete the item
		if msg.X < 5 {
			res, err := p.svc.CompleteDailyTask(items[row].ID)
			return progressCmd(res, err)
		}
	}

	return nil
}

// View renders the essentials pane.
func (p *EssentialsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("🌱 ESSENTIALS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	items := p.svc.DailyEssentials()
	if len(items) == 0 && !p.IsEditing() {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  No essentials yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		doneCount := 0
		doneXP := 0

		for i, item := range items {
			if item.Completed {
				doneCount++
				doneXP += item.XP
			}

			var checkbox string
			if item.Completed {
				checkbox = p.styles.CheckboxDone
			} else {
				checkbox = p.styles.CheckboxPending
			}

			xpBadge := p.styles.XPValueStyle.Render(fmt.Sprintf("+%d", item.XP))
			xpWidth := lipgloss.Width(xpBadge)

			// Layout: [space][checkbox][space][name][pad][xp]
			availableTextWidth := p.width - 4 - 5 - xpWidth - 1
			if availableTextWidth < 5 {
				availableTextWidth = 5
			}

			name := runewidth.Truncate(item.Name, availableTextWidth, "..")
			nameWidth := runewidth.StringWidth(name)
			padding := availableTextWidth - nameWidth
			if padding < 1 {
				padding = 1
			}

			var line string
			if i == p.cursor && p.focused && !p.IsEditing() {
				textPart := fmt.Sprintf("%s %s%s%s", checkbox, name, strings.Repeat(" ", padding), xpBadge)
				line = p.styles.ItemSelectedStyle.Render(" " + textPart + " ")
			} else {
				var styledName string
				if item.Completed {
					styledName = p.styles.ItemDoneStyle.Render(name)
				} else {
					styledName = p.styles.ItemPendingStyle.Render(name)
				}
				line = fmt.Sprintf(" %s %s%s%s", checkbox, styledName, strings.Repeat(" ", padding), xpBadge)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d/%d done · %d XP", doneCount, len(items), doneXP))
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

// Stats returns completion statistics for the title bar.
func (p *EssentialsPane) Stats() (done, total int) {
	items := p.svc.DailyEssentials()
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return done, len(items)
}
