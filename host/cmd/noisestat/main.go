// noisestat inspects the sample-batch stream produced by a device running
// cmd/adcx_stream and reports noise-source statistics.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-adcx/host/config"
	"github.com/jangala-dev/tinygo-adcx/host/serial"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "noisestat",
	Short: "noisestat inspects sample batches streamed by an adcx device",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		"noisestat.yaml", "path to the tool configuration")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func logErr(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "noisestat %s: %s\n", cmd.Name(), err)
}

// openLink loads the configuration and opens the device link, discarding any
// partial line already in flight.
func openLink() (*serial.Port, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	port, err := serial.Open(serial.Config{
		Device:      cfg.Link.Device,
		Baud:        cfg.Link.Baud,
		ReadTimeout: time.Duration(cfg.Link.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, nil, err
	}
	return port, cfg, nil
}
