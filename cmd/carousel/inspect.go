package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/carousel/internal/deck"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Print the deck discovered at path as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := deck.Load(args[0])
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
