package main

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"pokkit-datagen/internal/audit"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/schema"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
	"pokkit-datagen/internal/validator"
)

func newAuditCmd(a *app) *cobra.Command {
	var (
		input   string
		output  string
		purge   bool
		samples int
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Scan a dataset for structural errors, voice violations and duplicates",
		Example: `  pokkit-datagen audit --input data/train.jsonl
  pokkit-datagen audit --input data/train.jsonl --purge --output data/train_clean.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if purge && output == "" {
				return fmt.Errorf("--purge requires --output")
			}

			in, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			v, err := validator.ForRegistry(tools.Pokkit())
			if err != nil {
				return err
			}
			auditor := audit.New(v, a.cfg.Audit.Rules())

			var clean *jsonl.Writer
			if purge {
				out, cerr := createOutput(output)
				if cerr != nil {
					return cerr
				}
				defer closeOutput(out, &err)
				clean = jsonl.NewWriter(out)
			}

			rep, err := auditor.Run(in, clean)
			if err != nil {
				return err
			}
			printAuditReport(input, rep, samples)

			if purge {
				fmt.Printf("\n%s\n", colors.Paint(fmt.Sprintf("✅ Purged dataset saved: %d clean examples → %s", rep.Clean, output), colors.GREEN))
				fmt.Printf("   Removed: %d contaminated examples (%d%%)\n", rep.Contaminated(), percent(rep.Contaminated(), rep.Total))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&input, "input", "i", "data/train.jsonl", "Dataset to audit")
	fl.StringVarP(&output, "output", "o", "", "Where --purge writes clean examples")
	fl.BoolVar(&purge, "purge", false, "Write only clean examples to --output")
	fl.IntVar(&samples, "samples", 10, "Contaminated examples to show")
	return cmd
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return 100 * n / total
}

func printAuditReport(input string, rep *audit.Report, samples int) {
	const keyWidth = 24

	lines := []string{
		colors.Paint("🔍 Audit: "+input, colors.BOLD, colors.BRIGHT_CYAN),
		"",
		terminal.Row("Total examples", keyWidth, fmt.Sprint(rep.Total)),
		terminal.Row("Contaminated", keyWidth, fmt.Sprintf("%d (%d%%)", rep.Contaminated(), percent(rep.Contaminated(), rep.Total))),
		terminal.Row("Clean", keyWidth, fmt.Sprintf("%d (%d%%)", rep.Clean, percent(rep.Clean, rep.Total))),
	}
	if rep.Malformed > 0 {
		lines = append(lines, terminal.Row("Unparseable lines", keyWidth, colors.Paint(fmt.Sprint(rep.Malformed), colors.RED)))
	}

	type kindCount struct {
		kind audit.IssueKind
		n    int
	}
	var counts []kindCount
	for k, n := range rep.Counts {
		counts = append(counts, kindCount{k, n})
	}
	slices.SortFunc(counts, func(x, y kindCount) int {
		if c := cmp.Compare(y.n, x.n); c != 0 {
			return c
		}
		return cmp.Compare(x.kind, y.kind)
	})
	if len(counts) > 0 {
		lines = append(lines, "", colors.Paint("Issues found:", colors.BOLD))
		for _, c := range counts {
			lines = append(lines, terminal.Row("  "+string(c.kind), keyWidth, fmt.Sprint(c.n)))
		}
	}

	fmt.Println()
	fmt.Print(terminal.Box(lines...))

	if len(rep.Findings) == 0 || samples <= 0 {
		return
	}
	shown := min(samples, len(rep.Findings))
	fmt.Printf("\n%s\n", colors.Paint(fmt.Sprintf("Sample contaminated examples (first %d):", shown), colors.BRIGHT_YELLOW))
	for _, f := range rep.Findings[:shown] {
		fmt.Printf("\n  %s line %d\n", colors.Paint("●", colors.RED), f.Line)
		for _, is := range f.Issues {
			fmt.Printf("    %s\n", is)
		}
		fmt.Printf("    User: %s\n", terminal.Truncate(firstText(f.Example, schema.RoleUser), 80))
		fmt.Printf("    Asst: %s\n", terminal.Truncate(firstText(f.Example, schema.RoleAssistant), 120))
	}
}

func firstText(ex schema.Example, role schema.Role) string {
	for _, m := range ex.Messages {
		if m.Role == role && m.Text() != "" {
			return m.Text()
		}
	}
	return "(none)"
}
