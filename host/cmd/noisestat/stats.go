package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-adcx/host/batch"
)

var statsBatches int

func init() {
	statsCmd.Flags().IntVarP(&statsBatches, "batches", "n", 64,
		"number of batches to aggregate")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "aggregate statistics and an entropy estimate over several batches",
	Run:   stats,
}

func stats(cmd *cobra.Command, args []string) {
	port, cfg, err := openLink()
	if err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
	defer port.Close()

	var acc batch.Accumulator
	collected := 0

	sc := bufio.NewScanner(port)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	for collected < statsBatches && sc.Scan() {
		f, err := batch.ParseFrame(sc.Text())
		if err != nil {
			logErr(cmd, err)
			continue
		}
		if len(f.Samples) != cfg.Batch.Size {
			logErr(cmd, fmt.Errorf("frame %d: %d samples, expected %d",
				f.Seq, len(f.Samples), cfg.Batch.Size))
			continue
		}
		acc.Add(f)
		collected++
	}
	if err := sc.Err(); err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
	if collected < statsBatches {
		logErr(cmd, fmt.Errorf("stream ended after %d of %d batches", collected, statsBatches))
		if collected == 0 {
			os.Exit(1)
		}
	}

	s := acc.Summary(cfg.Batch.ReferenceMv)
	fmt.Printf("batches:  %d (%d samples)\n", s.Frames, s.Samples)
	fmt.Printf("mean:     %.2f mV\n", s.MeanMillivolts)
	fmt.Printf("rms:      %.2f mV\n", s.RMSMillivolts)
	fmt.Printf("range:    %d..%d\n", s.Min, s.Max)
	fmt.Printf("entropy:  %.3f bits/sample\n", s.EntropyBits)
}
