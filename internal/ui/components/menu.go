package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/ui/theme"
)

const buttonWidth = 22

// MenuItem is one button. Key, when set, activates the item directly.
type MenuItem struct {
	Label  string
	Key    string
	Action func() tea.Cmd
}

// Menu is a vertical list of buttons. Selection wraps at both ends.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected + n - 1) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == key {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if act := m.Items[i].Action; act != nil {
		return act()
	}
	return nil
}

// View stacks the buttons centred in cw.
func (m Menu) View(cw int) string {
	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		buttons[i] = button(item, i == m.Selected)
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(buttons, "\n"))
}

func button(item MenuItem, selected bool) string {
	label := item.Label
	if item.Key != "" {
		label += " [" + strings.ToUpper(item.Key) + "]"
	}
	style := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !selected {
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
