package main

import (
	"fmt"
	"os"
	"strings"

	"salary-portal/internal/app"
	"salary-portal/internal/export"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "salary-export <" + strings.Join(export.Artifacts(), "|") + ">",
		Short:     "Write a salary portal export to stdout or a file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: export.Artifacts(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			// exports never mutate, so nothing needs publishing
			cfg.KafkaBroker = ""

			a, err := app.Open(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			file, err := export.NewService(a.Store, logger).Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(file.Body)
				return err
			}
			if err := os.WriteFile(output, file.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			cmd.PrintErrf("wrote %s (%d bytes)\n", output, len(file.Body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}
