package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Long: `Print the configuration the game would use, after defaults and
inherited level values are filled in, and the file it came from.

With --print-default, print the built-in YAML instead. It is a
commented starting point for ~/.t2048/config.yaml.

Examples:
  t2048 config
  t2048 config --config ./my-2048.yaml
  t2048 config --print-default > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagPrintDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	return writeConfig(os.Stdout, a.cfg, a.configPath)
}

// writeConfig prints cfg as YAML under a comment naming its source.
func writeConfig(w io.Writer, cfg config.Config, source string) error {
	if source == "" {
		source = "built-in default"
	}
	if _, err := fmt.Fprintf(w, "# source: %s\n", source); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
