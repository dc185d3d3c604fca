package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary      = lipgloss.Color("#6366F1") // Indigo
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F59E0B") // Amber
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Graph drawing
var (
	Vertex = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)

	EdgeLine = lipgloss.NewStyle().
			Foreground(Secondary)

	EdgeCost = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// History blocks
var (
	HistoryCorrect = lipgloss.NewStyle().
			Foreground(Success)

	HistoryIncorrect = lipgloss.NewStyle().
				Foreground(Error)

	HistoryUnanswered = lipgloss.NewStyle().
				Foreground(Border)
)
