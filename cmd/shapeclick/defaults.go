package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeclick/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default quiz config",
	Long: `Print the built-in quiz config as YAML. Save it to
~/.shapeclick/configs/quiz.yaml or ./configs/quiz.yaml and edit it to
change the defaults; keys you leave out keep their built-in values.

Example:
  shapeclick defaults > ~/.shapeclick/configs/quiz.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
