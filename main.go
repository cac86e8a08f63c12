// main.go - ibmxt command-line entry point
//
// A cobra root command replacing the teacher's bare os.Args check, grounded
// on oisee-z80-optimizer's cobra+pflag usage (the pack's only real Cobra
// consumer) per SPEC_FULL.md AMBIENT STACK.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	var (
		biosPath   string
		videoPath  string
		clockHz    float64
		traceLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "ibmxt",
		Short: "ibmxt — an IBM-XT-class 8086 emulator core",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Boot a BIOS image on the emulated motherboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if biosPath == "" {
				return fmt.Errorf("ibmxt run: --bios is required")
			}

			log := NewStdLogger(traceLevel == "debug")

			var basePeriod time.Duration
			if clockHz > 0 {
				basePeriod = time.Duration(float64(time.Second) / clockHz)
			}

			mach, err := NewMachine(MachineConfig{
				BIOSROMPath:  biosPath,
				VideoROMPath: videoPath,
				BasePeriod:   basePeriod,
				Log:          log,
			})
			if err != nil {
				return fmt.Errorf("ibmxt run: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			fmt.Fprintf(os.Stderr, "ibmxt: booting %s\n", biosPath)
			err = mach.Run(ctx)
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("ibmxt run: %w", err)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&biosPath, "bios", "", "path to the BIOS ROM image (required)")
	runCmd.Flags().StringVar(&videoPath, "video-rom", "", "path to an optional video BIOS ROM image")
	runCmd.Flags().Float64Var(&clockHz, "clock-hz", 0, "override the base clock frequency in Hz (default 4.77MHz)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "warn", "log level: debug or warn")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
