package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"elevsim/src/config"
	"elevsim/src/elev"
	"elevsim/src/timer"
	"elevsim/src/types"
	"elevsim/src/utils"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (default: built-in single passenger)")
	ticks := flag.Int("ticks", -1, "Number of ticks to simulate (default: from scenario)")
	live := flag.Bool("live", false, "Step the simulation in wall-clock time")
	interval := flag.Duration("interval", 0, "Tick interval in live mode (default: from environment)")
	envFile := flag.String("env", ".env", "Dotenv file with ELEVSIM_* settings")
	flag.Parse()

	if err := run(*scenarioPath, *ticks, *live, *interval, *envFile); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(scenarioPath string, ticks int, live bool, interval time.Duration, envFile string) error {
	settings, err := config.LoadSettings(envFile)
	if err != nil {
		return err
	}
	closeLog, err := elev.InitLogger(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	scenario := config.DefaultScenario()
	if scenarioPath != "" {
		if scenario, err = config.LoadScenario(scenarioPath); err != nil {
			return err
		}
	}
	if ticks >= 0 {
		scenario.Ticks = ticks
	}
	if interval > 0 {
		settings.TickInterval = interval
	}

	requests := scenario.Ledger()
	sim, err := elev.New(scenario.NumFloors, requests)
	if err != nil {
		return err
	}
	slog.Info("Starting simulation",
		"scenario", scenario.Name,
		"floors", scenario.NumFloors,
		"ticks", scenario.Ticks,
		"requests", len(requests))

	if live {
		runLive(sim, scenario.Ticks, settings.TickInterval)
	} else {
		sim.Simulate(scenario.Ticks)
	}

	slog.Info("Simulation finished", "tick", sim.Time(), "floor", sim.CurrFloor(), "state", sim.CurrState())
	return utils.PrintReport(os.Stdout, requests)
}

// runLive steps the simulation from the ticker until the budget is spent or the user interrupts.
func runLive(sim *elev.Simulator, ticks int, interval time.Duration) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	tickCh := make(chan bool)
	timerAction := make(chan timer.TimerAction, 1)
	go timer.Ticker(ctx, interval, tickCh, timerAction)
	timerAction <- timer.Start

	simMgr := elev.StartSimMgr(sim)
	defer simMgr.Close()

	var snapshot types.Snapshot
	for remaining := ticks; remaining > 0; remaining-- {
		select {
		case <-tickCh:
			snapshot = simMgr.Step()
			utils.PrintStatus(os.Stdout, snapshot)
		case <-ctx.Done():
			fmt.Println()
			slog.Warn("Interrupted", "tick", snapshot.Tick, "remaining", remaining)
			return
		}
	}
	fmt.Println()
}
