package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/runner"
	"TrendSentinel/internal/session"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the live prediction loop on a cron cadence and
// answers interactive commands.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *runner.Runner
	Gate   *session.Gate
	Ctx    context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, r *runner.Runner, gate *session.Gate) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: r,
		Gate:   gate,
		Ctx:    ctx,
	}
}

// Register registers the live prediction task. The gate inside the
// runner decides whether each tick actually runs, so the cron
// expression only needs to be a superset of session hours.
func (s *Scheduler) Register(liveCron string) error {
	if _, err := s.Cron.AddFunc(liveCron, s.liveTask); err != nil {
		return fmt.Errorf("register live task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the live task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.liveTask()
}

func (s *Scheduler) liveTask() {
	log.Println("[INFO] running live prediction task")
	if _, err := s.Runner.RunLive(s.Ctx, time.Now()); err != nil {
		log.Printf("[ERROR] live prediction: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/predict":
		// Manual trigger bypasses the session gate.
		sig, err := s.Runner.Run(s.Ctx, time.Now())
		if err != nil {
			return fmt.Sprintf("❌ prediction failed: %v", err)
		}
		return notifier.FormatSignalReport(sig)
	case "/gate":
		open, reason := s.Gate.Check(time.Now())
		return notifier.FormatGateStatus(open, string(reason))
	default:
		return "Available commands:\n• /predict: run a prediction now\n• /gate: show session gate status"
	}
}
