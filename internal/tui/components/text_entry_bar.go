package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryMode represents the current input mode of the text entry bar
type EntryMode string

const (
	ModeInactive    EntryMode = ""
	ModeTitle       EntryMode = "title"
	ModeDescription EntryMode = "description"
)

var (
	activeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	inactiveStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Foreground(lipgloss.Color("240"))
)

// TextEntryBar is the add-task input. A task is entered in two steps:
// title first, then an optional description.
type TextEntryBar struct {
	textInput textinput.Model
	mode      EntryMode
	width     int
}

// NewTextEntryBar creates a new TextEntryBar component
func NewTextEntryBar() *TextEntryBar {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.CharLimit = 500

	return &TextEntryBar{
		textInput: ti,
		mode:      ModeInactive,
		width:     80,
	}
}

// Update handles Bubble Tea messages
func (teb *TextEntryBar) Update(msg tea.Msg) (*TextEntryBar, tea.Cmd) {
	if !teb.textInput.Focused() {
		return teb, nil
	}

	var cmd tea.Cmd
	teb.textInput, cmd = teb.textInput.Update(msg)
	return teb, cmd
}

// View renders the text entry bar
func (teb *TextEntryBar) View() string {
	if teb.mode == ModeInactive {
		content := "> Press a to add a new task"
		return inactiveStyle.Width(teb.width - 2).Render(content)
	}

	content := "> " + teb.getPromptForMode() + teb.textInput.View()
	return activeStyle.Width(teb.width - 2).Render(content)
}

func (teb *TextEntryBar) getPromptForMode() string {
	switch teb.mode {
	case ModeTitle:
		return "New task: "
	case ModeDescription:
		return "Description (optional): "
	default:
		return ""
	}
}

// SetWidth sets the width of the text entry bar
func (teb *TextEntryBar) SetWidth(width int) {
	teb.width = width

	// border (2) + padding (2)
	promptLen := len("> " + teb.getPromptForMode())
	availableWidth := width - promptLen - 4
	if availableWidth < 10 {
		availableWidth = 10
	}
	teb.textInput.Width = availableWidth
}

// SetMode sets the current entry mode
func (teb *TextEntryBar) SetMode(mode EntryMode) {
	teb.mode = mode

	if teb.width > 0 {
		teb.SetWidth(teb.width)
	}

	switch mode {
	case ModeTitle:
		teb.textInput.Placeholder = "Add a new task..."
	case ModeDescription:
		teb.textInput.Placeholder = "Add a description (optional)..."
	default:
		teb.textInput.Placeholder = ""
	}
}

// GetMode returns the current entry mode
func (teb *TextEntryBar) GetMode() EntryMode {
	return teb.mode
}

// GetValue returns the current input value
func (teb *TextEntryBar) GetValue() string {
	return teb.textInput.Value()
}

// SetValue replaces the input value
func (teb *TextEntryBar) SetValue(v string) {
	teb.textInput.SetValue(v)
}

// Clear resets the input value
func (teb *TextEntryBar) Clear() {
	teb.textInput.SetValue("")
}

// Focus focuses the text input
func (teb *TextEntryBar) Focus() tea.Cmd {
	return teb.textInput.Focus()
}

// Blur removes focus from the text input
func (teb *TextEntryBar) Blur() {
	teb.textInput.Blur()
}

// Reset clears, blurs and deactivates the bar
func (teb *TextEntryBar) Reset() {
	teb.Clear()
	teb.Blur()
	teb.SetMode(ModeInactive)
}

// IsFocused returns whether the text input is focused
func (teb *TextEntryBar) IsFocused() bool {
	return teb.textInput.Focused()
}
