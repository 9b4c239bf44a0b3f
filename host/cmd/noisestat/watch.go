package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jangala-dev/tinygo-adcx/host/batch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "print per-batch statistics as batches arrive",
	Run:   watch,
}

func watch(cmd *cobra.Command, args []string) {
	port, cfg, err := openLink()
	if err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
	defer port.Close()

	sc := bufio.NewScanner(port)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	for sc.Scan() {
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

		var acc batch.Accumulator
		acc.Add(f)
		s := acc.Summary(cfg.Batch.ReferenceMv)
		fmt.Printf("batch %6d  mean %7.2f mV  rms %6.2f mV  min %4d  max %4d\n",
			f.Seq, s.MeanMillivolts, s.RMSMillivolts, s.Min, s.Max)
	}
	if err := sc.Err(); err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
}
