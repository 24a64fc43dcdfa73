package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigcalc/internal/trace"
)

// setupTracing builds the tracer from [trace] in the config, overridden by
// the --trace* flags, and attaches it to the command context.
// It returns a cleanup function.
func setupTracing(cmd *cobra.Command, c *cli) (func(), error) {
	flags := cmd.Root().PersistentFlags()

	output := c.cfg.Trace.Output
	if flags.Changed("trace") {
		output, _ = flags.GetString("trace")
	}
	levelStr := c.cfg.Trace.Level
	if flags.Changed("trace-level") {
		levelStr, _ = flags.GetString("trace-level")
	}
	modeStr := c.cfg.Trace.Mode
	if flags.Changed("trace-mode") {
		modeStr, _ = flags.GetString("trace-mode")
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// An explicit output without a level means "trace commands".
	if level == trace.LevelOff && output != "" {
		level = trace.LevelCommand
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	// The error level only pays off when events are buffered for the dump.
	if level == trace.LevelError && !flags.Changed("trace-mode") {
		mode = trace.ModeRing
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	c.tracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	heartbeat := trace.StartHeartbeat(tracer, heartbeatInterval)
	return func() {
		heartbeat.Stop()
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
