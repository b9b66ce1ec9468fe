package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"statusagent/config"
	"statusagent/event"
	"statusagent/status"
)

// Build info
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg := config.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("Status Agent %s (%s) built on %s", version, commit, date)
	log.Infof("Master: %s, publish port: %d", cfg.Master, cfg.PublishPort)
	log.Infof("Interval: %v", cfg.CheckInterval)

	var sender *event.Sender
	var bus event.Bus = event.NopBus{}
	if cfg.EventURL != "" || cfg.ReportURL != "" {
		sender = event.NewSender(cfg.EventURL, cfg.ReportURL, cfg.APIKey)
		bus = sender
	}

	checker := status.NewMasterChecker(cfg.PublishPort, status.ExecRunner{}, bus)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runChecks(ctx, cfg, checker, sender)

	<-stop
	log.Info("Shutting down...")
	cancel()
	time.Sleep(1 * time.Second) // Give time for cleanup if needed
}

// runChecks drives the scheduled connectivity check and report push. The
// connected flag carries the assumed master state between ticks; the
// checker flips it when live observation disagrees.
func runChecks(ctx context.Context, cfg *config.Config, checker *status.MasterChecker, sender *event.Sender) {
	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	connected := false
	connected = runCycle(ctx, cfg, checker, sender, connected)

	for {
		select {
		case <-ticker.C:
			connected = runCycle(ctx, cfg, checker, sender, connected)
		case <-ctx.Done():
			return
		}
	}
}

// runCycle performs one check/push cycle and returns the new assumed
// master state.
func runCycle(ctx context.Context, cfg *config.Config, checker *status.MasterChecker, sender *event.Sender, connected bool) bool {
	cycleCtx, cancel := context.WithTimeout(ctx, cfg.CheckInterval)
	defer cancel()

	if cfg.Master != "" {
		present, err := checker.Check(cycleCtx, cfg.Master, connected)
		if err != nil {
			log.Errorf("Master check failed: %v", err)
		} else {
			connected = present
		}

		latency := status.MasterLatency(cycleCtx, cfg.Master, 5*time.Second)
		if latency.Success {
			log.Debugf("Master latency: %.1fms", latency.Latency)
		}
	}

	if sender != nil {
		report, err := status.Collect(cycleCtx)
		if err != nil {
			log.Errorf("Collection failed: %v", err)
			return connected
		}
		if err := sender.PushReport(cycleCtx, report); err != nil {
			log.Errorf("Report push failed: %v", err)
		}
	}

	return connected
}
