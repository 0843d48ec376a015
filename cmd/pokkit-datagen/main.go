// cmd/pokkit-datagen/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pokkit-datagen/internal/catalog"
	"pokkit-datagen/internal/config"
	"pokkit-datagen/internal/logger"
	"pokkit-datagen/internal/ui/colors"
)

var version = "dev"

// app 各子命令共享的状态，在 PersistentPreRunE 中初始化
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:   "pokkit-datagen",
		Short: "🐸 Synthetic tool-calling dataset generator for Pokkit",
		Long: colors.Paint("pokkit-datagen", colors.BOLD, colors.BRIGHT_CYAN) + `

Generate, audit, inspect, distill and browse chat-format JSONL datasets
for fine-tuning an on-device tool-calling assistant.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "configs/config.yaml", "YAML config file (missing file means defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(a),
		newAuditCmd(a),
		newInspectCmd(),
		newDistillCmd(a),
		newBrowseCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", colors.Paint("❌ "+err.Error(), colors.RED))
		stop()
		os.Exit(1)
	}
}

// init 加载 .env 和配置文件，并设置 slog
func (a *app) init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	a.cfg = cfg
	return nil
}

// runLog 打开本次运行的日志文件。失败时只打印警告，返回 nil。
func (a *app) runLog(command string) *logger.RunLogger {
	rl, err := logger.NewRunLogger(a.cfg.Log.Dir)
	if err == nil {
		err = rl.StartNewRun(command)
	}
	if err != nil {
		slog.Warn("run log disabled", "error", err)
		return nil
	}
	return rl
}

func persona(name string) (catalog.Persona, error) {
	p, ok := catalog.Personas[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(catalog.Personas))
		for n := range catalog.Personas {
			names = append(names, n)
		}
		sort.Strings(names)
		return catalog.Persona{}, fmt.Errorf("unknown persona %q (available: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}

// createOutput 创建输出文件，必要时创建父目录
func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

// closeOutput 关闭文件，把关闭错误并入 err
func closeOutput(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", f.Name(), cerr)
	}
}
