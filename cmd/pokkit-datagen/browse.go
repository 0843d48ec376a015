package main

import (
	"fmt"
	"os"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"pokkit-datagen/internal/browse"
	"pokkit-datagen/internal/jsonl"
	"pokkit-datagen/internal/ui/colors"
	"pokkit-datagen/internal/ui/terminal"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file.jsonl>",
		Short: "Interactively page through a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			examples, err := jsonl.ReadAll(f)
			f.Close()
			if err != nil {
				return err
			}

			s := browse.NewSession(examples)
			fmt.Print(terminal.Box(
				colors.Paint("🐸 Pokkit dataset browser", colors.BOLD, colors.BRIGHT_CYAN),
				fmt.Sprintf("%s · %d examples", args[0], s.Len()),
				colors.Paint("/help for commands, Enter for next", colors.DIM),
			))
			if s.Len() > 0 {
				fmt.Println(s.Render())
			}

			// go-prompt 的 executor 没有返回值，用 ExitChecker 结束循环
			done := false
			p := prompt.New(
				func(in string) {
					out, quit := s.Execute(in)
					fmt.Println(out)
					done = quit
				},
				browse.Completer,
				prompt.OptionPrefix("browse › "),
				prompt.OptionTitle("pokkit-datagen browse"),
				prompt.OptionInputTextColor(prompt.Yellow),
				prompt.OptionSetExitCheckerOnInput(func(string, bool) bool { return done }),
			)
			p.Run()
			return nil
		},
	}
}
