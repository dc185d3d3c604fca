package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/question"
	"github.com/abhisek/adjacent/internal/ui/components"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated graphs with their answers (no mastery tracking)",
	Long: `Generate graphs and print each one with its adjacency matrix and
adjacency list.

This is a stateless developer tool. Nothing is graded and no mastery is
tracked. Useful for checking the generator and the graph renderer.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 3, "Number of graphs to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	log, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	eng, cfg, err := newEngine(cmd, log)
	if err != nil {
		return err
	}
	cfg.SuppressAutoStart = false

	out := cmd.OutOrStdout()
	for i := 1; i <= count; i++ {
		if err := eng.Regenerate(cfg); err != nil {
			return fmt.Errorf("generate graph %d: %w", i, err)
		}
		printPreview(out, eng.Snapshot(), i, count)
	}
	return nil
}

func printPreview(w io.Writer, snap engine.Snapshot, i, count int) {
	fmt.Fprintf(w, "── Graph %d/%d (%s) ──\n", i, count, modeName(snap))
	lipgloss.Fprintln(w, components.GraphView(snap.Vertices, snap.Connected, snap.Edges, snap.Mode))
	fmt.Fprintln(w)

	if snap.Question != nil {
		fmt.Fprintf(w, "Question: %s\n\n", snap.Question.Prompt)
	}

	matrix := make([]string, len(snap.AdjacencyMatrix))
	for j, row := range snap.AdjacencyMatrix {
		matrix[j] = question.FormatMatrixRow(row)
	}
	list := make([]string, len(snap.AdjacencyList))
	for j, row := range snap.AdjacencyList {
		list[j] = question.FormatListRow(row, snap.Mode.Weighted)
	}
	printRows(w, "Adjacency matrix", snap.Vertices, matrix)
	printRows(w, "Adjacency list", snap.Vertices, list)
}

func printRows(w io.Writer, title string, labels, rows []string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("─", 24))
	for j, row := range rows {
		fmt.Fprintf(w, "%s  %s\n", labels[j], row)
	}
	fmt.Fprintln(w)
}

func modeName(snap engine.Snapshot) string {
	dir := "directed"
	if snap.Mode.Undirected {
		dir = "undirected"
	}
	if snap.Mode.Weighted {
		return dir + ", weighted"
	}
	return dir + ", unweighted"
}
