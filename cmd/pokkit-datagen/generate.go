package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/catalog"
	"pokkit-datagen/internal/logger"
	"pokkit-datagen/internal/pipeline"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
	"pokkit-datagen/internal/validator"
)

type generateFlags struct {
	output     string
	evalOutput string
	count      int
	evalCount  int
	seed       int64
	permissive bool
	persona    string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate train (and optional eval) JSONL splits",
		Example: `  pokkit-datagen generate --output data/train.jsonl --count 5000 --seed 42
  pokkit-datagen generate -o data/train.jsonl --eval-output data/eval.jsonl --eval-count 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "Train split output path")
	fl.StringVar(&f.evalOutput, "eval-output", "", "Eval split output path (omit to skip eval)")
	fl.IntVarP(&f.count, "count", "n", 0, "Train examples to write (default generation.count)")
	fl.IntVar(&f.evalCount, "eval-count", 0, "Eval examples to write (default generation.eval_count)")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (default generation.seed)")
	fl.BoolVar(&f.permissive, "permissive", false, "Allow tool names outside the manifest")
	fl.StringVar(&f.persona, "persona", catalog.Pokkit.Name, "Default persona for the system turn")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, f *generateFlags) (err error) {
	opts := a.cfg.Options()
	fl := cmd.Flags()
	if fl.Changed("count") {
		opts.Count = f.count
	}
	if fl.Changed("eval-count") {
		opts.EvalCount = f.evalCount
	}
	if fl.Changed("seed") {
		opts.Seed = f.seed
	}
	if f.permissive {
		opts.Mode = validator.Permissive
	}
	if opts.Count < 0 || opts.EvalCount < 0 {
		return fmt.Errorf("counts must be >= 0")
	}

	p, err := persona(f.persona)
	if err != nil {
		return err
	}
	opts.System = p.System

	manifest := tools.Pokkit()
	v, err := validator.ForRegistry(manifest)
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}

	train, err := createOutput(f.output)
	if err != nil {
		return err
	}
	defer closeOutput(train, &err)

	wantEval, err := evalRequested(f.evalOutput, opts.EvalCount)
	if err != nil {
		return err
	}

	// eval 必须是无类型的 nil 才会被引擎跳过
	var eval io.Writer
	if wantEval {
		ef, cerr := createOutput(f.evalOutput)
		if cerr != nil {
			return cerr
		}
		defer closeOutput(ef, &err)
		eval = ef
	}

	options := []pipeline.Option{
		pipeline.WithProgress(func(split string, written, target int) {
			fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("  %s: %d/%d written...", split, written, target), colors.DIM))
		}),
	}
	rl := a.runLog("generate")
	if rl != nil {
		defer rl.Close()
		options = append(options, pipeline.WithRecorder(rl))
	}

	fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("🐸 Generating %d train / %d eval examples (seed %d, %s)",
		opts.Count, evalTarget(eval, opts.EvalCount), opts.Seed, opts.Mode), colors.BOLD, colors.BRIGHT_CYAN))

	start := time.Now()
	engine := pipeline.New(catalog.Default(), v, assembler.New(manifest.List()), opts, options...)
	report, err := engine.Run(cmd.Context(), train, eval)
	if err != nil {
		return err
	}

	if rl != nil {
		if lerr := rl.LogSummary(report); lerr != nil {
			slog.Debug("run log summary failed", "error", lerr)
		}
	}
	printGenerateSummary(report, time.Since(start), rl)
	return nil
}

func evalTarget(eval io.Writer, n int) int {
	if eval == nil {
		return 0
	}
	return n
}

func printGenerateSummary(r pipeline.Report, elapsed time.Duration, rl *logger.RunLogger) {
	const keyWidth = 22

	lines := []string{
		colors.Paint("✅ Generation complete", colors.BOLD, colors.GREEN),
		"",
		terminal.Row("Generated", keyWidth, fmt.Sprint(r.Generated())),
		terminal.Row("Written", keyWidth, fmt.Sprint(r.Written())),
		terminal.Row("Duplicates skipped", keyWidth, fmt.Sprint(r.Duplicates())),
	}

	rejected := r.Rejected()
	total := 0
	for _, k := range validator.Kinds {
		total += rejected[k]
	}
	lines = append(lines, terminal.Row("Validation rejects", keyWidth, fmt.Sprint(total)))
	for _, k := range validator.Kinds {
		if n := rejected[k]; n > 0 {
			lines = append(lines, terminal.Row("  "+string(k), keyWidth, fmt.Sprint(n)))
		}
	}

	for _, s := range r.Splits {
		line := terminal.Row(s.Split, keyWidth, fmt.Sprintf("%d/%d (attempts %d)", s.Written, s.Target, s.Attempts))
		if short := s.Shortfall(); short > 0 {
			line += colors.Paint(fmt.Sprintf("  ⚠️  short by %d", short), colors.YELLOW)
		}
		lines = append(lines, line)
	}
	lines = append(lines, terminal.Row("Elapsed", keyWidth, elapsed.Round(time.Millisecond).String()))

	fmt.Println()
	fmt.Print(terminal.Box(lines...))

	if len(r.Warnings) > 0 {
		fmt.Printf("\n%s\n", colors.Paint(fmt.Sprintf("⚠️  First %d rejected candidates:", len(r.Warnings)), colors.BRIGHT_YELLOW))
		for _, w := range r.Warnings {
			fmt.Printf("  %s\n", terminal.Truncate(w, 120))
		}
		if r.Suppressed > 0 {
			fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("  ... and %d more", r.Suppressed), colors.DIM))
		}
	}
	if rl != nil {
		if path := rl.GetLogFilePath(); path != "" {
			fmt.Printf("\n%s\n", colors.Paint("📝 Run log: "+path, colors.DIM))
		}
	}
}

// evalRequested 判断是否写 eval 文件。给了路径但数量为 0 时报错，避免静默跳过
func evalRequested(path string, count int) (bool, error) {
	if path == "" {
		return false, nil
	}
	if count <= 0 {
		return false, fmt.Errorf("--eval-output %s given but eval count is 0 (set --eval-count or generation.eval_count)", path)
	}
	return true, nil
}
