package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/easymeasure"
)

const defaultKeyWidth = 40

func init() {
	rootCmd.AddCommand(ExecCmd)
}

var ExecCmd = newExecCmd()

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- command [args...]",
		Short: "measure the elapsed time and memory usage of a command",
		Args:  cobra.MinimumNArgs(1),

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,
		RunE:         execute,
	}

	cmd.Flags().StringP("key", "k", "", "measurement key, defaults to the command line")
	cmd.Flags().IntP("repeat", "n", 1, "run the command n times")
	cmd.Flags().StringP("format", "f", easymeasure.FormatTable, "output format, could be \"text\", \"table\", \"html\" or \"chart\"")
	cmd.Flags().String("log-file", "", "append the report to the log file")
	cmd.Flags().String("memory-meter", "", "memory meter, could be \"children\", \"heap\", \"sys\" or \"total\"")
	return cmd
}

func checkConfig(config *easymeasure.Config) error {
	if config == nil {
		return fmt.Errorf("config is not loaded")
	}

	return nil
}

func execute(cmd *cobra.Command, args []string) error {
	if err := checkConfig(config); err != nil {
		return err
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return err
	}

	repeat, err := cmd.Flags().GetInt("repeat")
	if err != nil {
		return err
	}

	if repeat < 1 {
		return fmt.Errorf("repeat must be greater than 0, %d given", repeat)
	}

	execConfig, err := overrideConfig(cmd, *config)
	if err != nil {
		return err
	}

	registry, err := easymeasure.NewWithConfig(execConfig, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if len(key) == 0 {
		key = previewCommand(strings.Join(args, " "), defaultKeyWidth)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// the children meter only counts the processes recorded into it
	processMeter, _ := registry.MemoryMeter().(*easymeasure.ProcessMeter)

	for i := 1; i <= repeat; i++ {
		runKey := runKeyOf(key, i, repeat)

		descMeasurement(cmd.ErrOrStderr(), "running", runKey, nil)

		runErr := registry.Measure(runKey, func() error {
			return runCommand(ctx, args, processMeter)
		})

		v, err := registry.Resolve(runKey)
		if err != nil {
			return err
		}

		if runErr != nil {
			descMeasurement(cmd.ErrOrStderr(), "failed", runKey, &v)
			if err := registry.PrintAll(); err != nil {
				log.WithError(err).Error("failed to print measurements")
			}

			return errors.Wrapf(runErr, "command %q failed", runKey)
		}

		descMeasurement(cmd.ErrOrStderr(), "done", runKey, &v)
	}

	return registry.PrintAll()
}

func runKeyOf(key string, i, repeat int) string {
	if repeat > 1 {
		return fmt.Sprintf("%s#%d", key, i)
	}

	return key
}

// overrideConfig applies the flags that were explicitly set on top of the loaded config.
func overrideConfig(cmd *cobra.Command, c easymeasure.Config) (*easymeasure.Config, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") || len(c.Format) == 0 {
		c.Format = format
	}

	if cmd.Flags().Changed("log-file") {
		if c.LogFile, err = cmd.Flags().GetString("log-file"); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("memory-meter") {
		if c.MemoryMeter, err = cmd.Flags().GetString("memory-meter"); err != nil {
			return nil, err
		}
	}

	// the memory of this process does not change with the command
	if len(c.MemoryMeter) == 0 {
		c.MemoryMeter = easymeasure.MemoryMeterChildren
	}

	return &c, nil
}

// runCommand runs the command and records its peak rss into the meter when given.
func runCommand(ctx context.Context, args []string, meter *easymeasure.ProcessMeter) error {
	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if meter != nil && c.ProcessState != nil {
		meter.Record(c.ProcessState)
	}

	return err
}
