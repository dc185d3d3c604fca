package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the drill's styling. Allowed,
// when set, filters typed characters.
type TextInput struct {
	Model   textinput.Model
	Allowed func(r rune) bool
	marked  bool
	valid   bool
}

// NewTextInput creates an unfocused styled text input.
func NewTextInput(prompt, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Allowed != nil {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if !t.Allowed(r) {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a ✓/✗ mark once graded.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.marked {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Mark shows a validation mark next to the input.
func (t *TextInput) Mark(valid bool) {
	t.marked = true
	t.valid = valid
}

// MatrixChars accepts digits and row separators.
func MatrixChars(r rune) bool {
	return (r >= '0' && r <= '9') || r == ' ' || r == ','
}

// ListChars accepts vertex letters, cost digits and separators.
func ListChars(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == ',', r == ':':
		return true
	}
	return false
}
