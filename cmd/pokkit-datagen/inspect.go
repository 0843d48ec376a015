package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pokkit-datagen/internal/chatml"
	"pokkit-datagen/internal/inspect"
	"pokkit-datagen/internal/tokenizer"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
)

func newInspectCmd() *cobra.Command {
	var (
		samples []int
		exact   bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <file.jsonl>",
		Short: "Print dataset statistics and sample ChatML renderings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()

			renderer, err := chatml.New()
			if err != nil {
				return err
			}
			counter := tokenizer.Fallback()
			if exact {
				counter = tokenizer.New()
			}

			st, err := inspect.New(counter, renderer, samples...).Run(f)
			if err != nil {
				return err
			}
			printInspect(args[0], st, counter.Exact())
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&samples, "sample", []int{5, 42}, "Example indexes (0-based) to render")
	cmd.Flags().BoolVar(&exact, "tiktoken", true, "Count tokens with tiktoken cl100k_base (falls back to length estimate when unavailable)")
	return cmd
}

func printInspect(path string, st *inspect.Stats, exact bool) {
	const keyWidth = 26

	tokenLabel := "Avg tokens per example"
	if !exact {
		tokenLabel = "Avg tokens (estimated)"
	}
	lines := []string{
		colors.Paint("📊 "+path, colors.BOLD, colors.BRIGHT_CYAN),
		"",
		terminal.Row("Total examples", keyWidth, fmt.Sprint(st.Examples)),
		terminal.Row("Avg messages per example", keyWidth, fmt.Sprintf("%.1f", st.AvgMessages())),
		terminal.Row(tokenLabel, keyWidth, fmt.Sprintf("%.1f", st.AvgTokens())),
	}
	if st.Malformed > 0 {
		lines = append(lines, terminal.Row("Unparseable lines", keyWidth, colors.Paint(fmt.Sprint(st.Malformed), colors.RED)))
	}
	fmt.Println()
	fmt.Print(terminal.Box(lines...))

	dist := st.Distribution()
	if len(dist) > 0 {
		fmt.Printf("\n%s\n", colors.Paint("Tool call distribution:", colors.BOLD))
		for _, tc := range dist {
			bar := strings.Repeat("#", tc.Count/10)
			fmt.Printf("  %s %5d  %s\n", terminal.Pad(tc.Name, 25, terminal.AlignLeft), tc.Count, colors.Paint(bar, colors.GREEN))
		}
	}

	for _, s := range st.Samples {
		title := fmt.Sprintf("=== Example %d ===", s.Index)
		if s.Index == st.MultiStep {
			title = fmt.Sprintf("=== Example %d (first multi-step) ===", s.Index)
		}
		fmt.Printf("\n%s\n%s", colors.Paint(title, colors.BOLD, colors.BRIGHT_YELLOW), s.Rendering)
	}
}
