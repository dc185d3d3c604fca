package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/ui/theme"
)

const arcadeTitleFull = ` █████╗ ██████╗      ██╗ █████╗  ██████╗███████╗███╗   ██╗████████╗
██╔══██╗██╔══██╗     ██║██╔══██╗██╔════╝██╔════╝████╗  ██║╚══██╔══╝
███████║██║  ██║     ██║███████║██║     █████╗  ██╔██╗ ██║   ██║
██╔══██║██║  ██║██   ██║██╔══██║██║     ██╔══╝  ██║╚██╗██║   ██║
██║  ██║██████╔╝╚█████╔╝██║  ██║╚██████╗███████╗██║ ╚████║   ██║
╚═╝  ╚═╝╚═════╝  ╚════╝ ╚═╝  ╚═╝ ╚═════╝╚══════╝╚═╝  ╚═══╝   ╚═╝`

const arcadeTitleCompact = "A · D · J · A · C · E · N · T"

// renderTitle returns the block title, or the compact one when the block
// letters would not fit.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || lipgloss.Width(arcadeTitleFull) > cw {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderRulesBar summarizes the mastery rule and graph modes.
func renderRulesBar(cfg config.Config, cw int) string {
	ruleStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	modes := "RANDOM GRAPHS"
	if !cfg.RandomizeModes {
		dir := "DIRECTED"
		if cfg.Undirected {
			dir = "UNDIRECTED"
		}
		weight := "UNWEIGHTED"
		if cfg.Weighted {
			weight = "WEIGHTED"
		}
		modes = dir + " · " + weight
	}

	stats := fmt.Sprintf("%s  %s",
		ruleStyle.Render(fmt.Sprintf("★ %d OF LAST %d", cfg.MasteryNumerator, cfg.MasteryDenominator)),
		modeStyle.Render(modes),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
