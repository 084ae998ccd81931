package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lex"
	"github.com/aretw0/lex/internal/cli"
	"github.com/aretw0/lex/internal/presentation/tui"
	"github.com/aretw0/lex/pkg/player"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play a dialogue script in the terminal",
	Long:  `Parses the script and plays it back step by step with a short pause between outputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}
		plain, _ := cmd.Flags().GetBool("plain")
		delay, _ := cmd.Flags().GetDuration("delay")

		script, err := cli.ReadScript(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := []player.Option{
			player.WithDelay(delay),
			player.WithLogger(newLogger(cmd)),
		}
		if !plain {
			tui.PrintBanner(lex.Version)
			opts = append(opts, player.WithRenderer(tui.NewRenderer()))
		}

		// Cancel playback on Ctrl+C instead of dying mid-line.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := lex.Play(ctx, script, opts...); err != nil {
			fmt.Printf("Playback error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("plain", false, "Disable the banner and markdown rendering")
	playCmd.Flags().Duration("delay", 500*time.Millisecond, "Pause between outputs")

	// Make 'play' the default if no command is provided.
	rootCmd.Run = playCmd.Run
}
