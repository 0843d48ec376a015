package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pokkit-datagen/internal/assembler"
	"pokkit-datagen/internal/catalog"
	"pokkit-datagen/internal/config"
	"pokkit-datagen/internal/dedup"
	"pokkit-datagen/internal/distill"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/llm"
	"pokkit-datagen/internal/tools"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
	"pokkit-datagen/internal/validator"
)

type distillFlags struct {
	output      string
	dedupWith   []string
	count       int
	seed        int64
	model       string
	concurrency int
	persona     string
}

func newDistillCmd(a *app) *cobra.Command {
	f := &distillFlags{}
	cmd := &cobra.Command{
		Use:   "distill",
		Short: "Generate voice examples by asking an LLM to answer as Pokkit",
		Example: `  pokkit-datagen distill --output data/llm_train.jsonl --count 2000
  pokkit-datagen distill -o data/llm_eval.jsonl --count 200 --seed 99 --dedup-with data/llm_train.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistill(cmd, a, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "data/llm_train.jsonl", "Output path")
	fl.StringSliceVar(&f.dedupWith, "dedup-with", nil, "Existing datasets whose examples must not be repeated")
	fl.IntVarP(&f.count, "count", "n", 2000, "Examples to write")
	fl.Int64Var(&f.seed, "seed", 42, "Prompt sampling seed")
	fl.StringVar(&f.model, "model", "", "Model name (default llm.model)")
	fl.IntVar(&f.concurrency, "concurrency", 0, "Parallel requests (default llm.concurrency)")
	fl.StringVar(&f.persona, "persona", catalog.Pokkit.Name, "Persona the model speaks as")
	return cmd
}

func runDistill(cmd *cobra.Command, a *app, f *distillFlags) (err error) {
	cfg := a.cfg
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return fmt.Errorf("no API key (set llm.api_key or %s)", config.APIKeyEnv)
	}

	model := cfg.LLM.Model
	if f.model != "" {
		model = f.model
	}
	concurrency := cfg.LLM.Concurrency
	if f.concurrency > 0 {
		concurrency = f.concurrency
	}
	p, err := persona(f.persona)
	if err != nil {
		return err
	}

	rc := cfg.LLM.Retry.Retry()
	client := llm.NewClient(apiKey, cfg.LLM.APIBase, model,
		llm.WithRetryConfig(rc),
		llm.WithSampling(cfg.LLM.Temperature, cfg.LLM.MaxTokens),
		llm.WithRetryCallback(func(err error, attempt int) {
			fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("⚠️  LLM call failed (attempt %d): %v", attempt, err), colors.BRIGHT_YELLOW))
			fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("   Retrying in %s...", rc.CalculateDelay(attempt-1)), colors.DIM))
		}),
	)

	seen := dedup.NewSet()
	for _, path := range f.dedupWith {
		n, err := admitFile(seen, path)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("✅ Loaded %d fingerprints from %s", n, path), colors.GREEN))
	}

	manifest := tools.Pokkit()
	v, err := validator.ForRegistry(manifest)
	if err != nil {
		return err
	}
	d := distill.New(client, v, assembler.New(manifest.List()), seen)

	rl := a.runLog("distill")
	if rl != nil {
		defer rl.Close()
		d.WithTranscript(rl)
	}

	out, err := createOutput(f.output)
	if err != nil {
		return err
	}
	defer closeOutput(out, &err)

	prompts := distill.Bank()
	fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("🐸 Distilling %d examples → %s", f.count, f.output), colors.BOLD, colors.BRIGHT_CYAN))
	fmt.Printf("%s\n", colors.Paint(fmt.Sprintf("   Model: %s | Persona: %s | Prompt pool: %d | Concurrency: %d",
		model, p.Name, len(prompts), concurrency), colors.DIM))

	start := time.Now()
	st, err := d.Run(cmd.Context(), jsonl.NewWriter(out), distill.Options{
		Count:       f.count,
		Seed:        f.seed,
		Concurrency: concurrency,
		Model:       model,
		Persona:     p,
		Prompts:     prompts,
	})
	if err != nil {
		return err
	}
	if rl != nil {
		if lerr := rl.LogSummary(st); lerr != nil {
			slog.Debug("run log summary failed", "error", lerr)
		}
	}

	const keyWidth = 14
	lines := []string{
		colors.Paint("✅ Distillation complete", colors.BOLD, colors.GREEN),
		"",
		terminal.Row("Written", keyWidth, fmt.Sprintf("%d/%d", st.Written, f.count)),
		terminal.Row("Requests", keyWidth, fmt.Sprint(st.Attempts)),
		terminal.Row("Failed", keyWidth, fmt.Sprint(st.Failed)),
		terminal.Row("Rejected", keyWidth, fmt.Sprint(st.Rejected)),
		terminal.Row("Duplicates", keyWidth, fmt.Sprint(st.Duplicates)),
		terminal.Row("Elapsed", keyWidth, time.Since(start).Round(time.Second).String()),
	}
	if short := st.Shortfall(f.count); short > 0 {
		lines = append(lines, colors.Paint(fmt.Sprintf("⚠️  short by %d", short), colors.YELLOW))
	}
	fmt.Println()
	fmt.Print(terminal.Box(lines...))
	return nil
}

// admitFile 把已有数据集的指纹加入集合，返回读到的样本数
func admitFile(seen *dedup.Set, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n := 0
	err = jsonl.Scan(f, func(rec jsonl.Record) error {
		if rec.Err != nil {
			return nil
		}
		seen.AdmitExample(rec.Example)
		n++
		return nil
	})
	return n, err
}
