package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackpal/gateway"
	"golang.org/x/term"

	"github.com/tkjaer/netprobe/internal/config"
	"github.com/tkjaer/netprobe/internal/output"
	"github.com/tkjaer/netprobe/internal/pinger"
	"github.com/tkjaer/netprobe/internal/probe"
	"github.com/tkjaer/netprobe/internal/shared"
)

func main() {
	args, err := config.ParseArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logFile, err := config.SetupLogging(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if args.IncludeGateway {
		gw, err := gateway.DiscoverGateway()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not discover default gateway: %v\n", err)
			os.Exit(1)
		}
		slog.Debug("Discovered default gateway", "address", gw)
		args.AddTarget(gw.String())
	}

	slog.Debug("Starting reachability test",
		"targets", args.Targets,
		"duration", args.TestDuration(),
		"rate", args.Rate,
	)

	var p pinger.Pinger
	if args.Native {
		p = pinger.NewNativePinger(true)
	} else {
		p = pinger.NewExecPinger()
	}

	pm := probe.NewProbeManager(args, p)

	// Set up signal handling for Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Run in a goroutine so we can handle signals
	type runResult struct {
		report *shared.SessionReport
		err    error
	}
	done := make(chan runResult, 1)
	go func() {
		report, err := pm.Run()
		done <- runResult{report: report, err: err}
	}()

	// Wait for either completion or interrupt
	select {
	case res := <-done:
		if res.err != nil {
			slog.Error("Probe manager error", "error", res.err)
			os.Exit(1)
		}
		if err := writeReport(args, pm, res.report); err != nil {
			slog.Error("Failed to write report", "error", err)
			os.Exit(1)
		}
	case <-sigChan:
		// User pressed Ctrl+C; no partial report is written
		pm.Stop()
		<-done
		fmt.Fprintln(os.Stderr, "\nTest interrupted by user")
		os.Exit(1)
	}

	slog.Debug("Reachability test completed")
}

func writeReport(args config.Args, pm *probe.ProbeManager, report *shared.SessionReport) error {
	om := &output.OutputManager{}
	defer om.Close()

	jsonOut, err := output.NewJSONOutput(args.JsonFile)
	if err != nil {
		return err
	}
	om.Register(jsonOut)

	// Human summary on stderr when someone is watching
	if term.IsTerminal(int(os.Stderr.Fd())) {
		om.Register(output.NewTextOutput(os.Stderr, pm.Resolver()))
	}

	return om.WriteReport(report)
}
