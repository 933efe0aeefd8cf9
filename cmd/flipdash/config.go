package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flipdash/internal/config"
	"github.com/vovakirdan/flipdash/internal/input/serial"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the embedded default config as YAML, or validate a config file.

Copy the output to ~/.flipdash/configs/flipdash.yaml or ./configs/flipdash.yaml
to customize the game.

Examples:
  flipdash config > ~/.flipdash/configs/flipdash.yaml
  flipdash config --check ./my-flipdash.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	Args:  cobra.NoArgs,
	RunE:  runPorts,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck != "" {
		if _, err := config.LoadFile(flagCheck); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", flagCheck)
		return nil
	}
	_, err := os.Stdout.Write(config.DefaultYAML())
	return err
}

func runPorts(_ *cobra.Command, _ []string) error {
	ports, err := serial.Ports()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("No serial ports found.")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}
