// Local fixture runner: feeds JSON event fixtures through the handler and
// prints the resulting envelopes, one invocation per fixture.
//
//	runner -event events/01_user_signup_valid.json
//	runner -dir events
//	runner -suite configs/suite.yaml [-watch]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/hussainAl3mri/lambda-event-validator/internal/event"
	"github.com/hussainAl3mri/lambda-event-validator/internal/fixture"
	"github.com/hussainAl3mri/lambda-event-validator/internal/handler"
	"github.com/hussainAl3mri/lambda-event-validator/internal/metrics"
)

func main() {
	eventPath := flag.String("event", "", "run a single JSON event fixture")
	dirPath := flag.String("dir", "", "run every *.json fixture in a directory")
	suitePath := flag.String("suite", "", "run a YAML suite of fixtures with expectations")
	watch := flag.Bool("watch", false, "with -suite: re-run whenever the suite or a fixture changes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	switch {
	case *eventPath != "":
		env, err := invoke(*eventPath)
		if err != nil {
			slog.Error("fixture failed to load", "err", err)
			os.Exit(1)
		}
		printEnvelope(*eventPath, env)
	case *dirPath != "":
		if err := runDir(*dirPath); err != nil {
			slog.Error("run failed", "err", err)
			os.Exit(1)
		}
	case *suitePath != "":
		runSuiteMode(*suitePath, *watch)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// invoke runs one fixture through the handler with a fresh invocation
// context, mirroring what the Lambda runtime would pass.
func invoke(path string) (handler.Envelope, error) {
	evt, err := fixture.LoadEvent(path)
	if err != nil {
		metrics.FixtureLoadErrors.Inc()
		return handler.Envelope{}, err
	}
	env := handler.Handle(evt, invocationContext())
	metrics.Invocations.WithLabelValues(typeLabel(evt), env.Status).Inc()
	return env, nil
}

func invocationContext() event.Record {
	return event.Record{
		"invocation_id": uuid.New().String(),
		"invoked_at":    time.Now().UTC().Format(time.RFC3339),
	}
}

// typeLabel extracts the declared event type for metric labels. Malformed
// events all land under "unknown".
func typeLabel(evt interface{}) string {
	rec, ok := evt.(map[string]interface{})
	if !ok {
		return "unknown"
	}
	if s, ok := rec["type"].(string); ok && event.TypeAllowed(s) {
		return s
	}
	return "unknown"
}

func printEnvelope(path string, env handler.Envelope) {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		slog.Error("encode envelope", "fixture", path, "err", err)
		return
	}
	fmt.Printf("=== %s\n%s\n", path, out)
}

func runDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.json fixtures in %s", dir)
	}
	sort.Strings(paths)

	for _, p := range paths {
		env, err := invoke(p)
		if err != nil {
			slog.Warn("skipping fixture", "err", err)
			continue
		}
		printEnvelope(p, env)
	}
	return nil
}

func runSuiteMode(path string, watch bool) {
	loader, err := fixture.NewLoader(path)
	if err != nil {
		slog.Error("failed to load suite", "err", err)
		os.Exit(1)
	}
	if err := fixture.Validate(loader.Suite()); err != nil {
		slog.Error("suite validation failed", "err", err)
		os.Exit(1)
	}

	failed := runSuite(loader)

	if !watch {
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	loader.OnChange(func(s *fixture.Suite) {
		if err := fixture.Validate(s); err != nil {
			slog.Warn("re-run skipped: suite invalid", "err", err)
			return
		}
		runSuite(loader)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Error("suite watcher unavailable", "err", err)
		os.Exit(1)
	}
	defer stopWatch()

	slog.Info("watching for changes", "suite", path, "dir", loader.Suite().Dir)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("goodbye")
}

// runSuite invokes every case and checks its expectations. Returns the
// number of failed cases.
func runSuite(loader *fixture.Loader) int {
	suite := loader.Suite()
	failed := 0

	for _, c := range suite.Cases {
		env, err := invoke(loader.CasePath(c))
		if err != nil {
			slog.Error("case failed to load", "case", c.Name, "err", err)
			metrics.SuiteCaseFailures.WithLabelValues(c.Name).Inc()
			failed++
			continue
		}
		if reason, ok := checkCase(c, env); !ok {
			slog.Error("case failed", "case", c.Name, "reason", reason)
			metrics.SuiteCaseFailures.WithLabelValues(c.Name).Inc()
			failed++
			continue
		}
		slog.Info("case passed", "case", c.Name, "status", env.Status)
	}

	slog.Info("suite finished", "cases", len(suite.Cases), "failed", failed)
	return failed
}

// checkCase compares an envelope against a case's expectations.
func checkCase(c fixture.Case, env handler.Envelope) (reason string, ok bool) {
	if c.WantStatus != "" && env.Status != c.WantStatus {
		return fmt.Sprintf("status %q, want %q (errors: %v)", env.Status, c.WantStatus, env.Errors), false
	}
	if len(c.WantErrors) > 0 {
		if len(env.Errors) != len(c.WantErrors) {
			return fmt.Sprintf("errors %v, want %v", env.Errors, c.WantErrors), false
		}
		for i := range c.WantErrors {
			if env.Errors[i] != c.WantErrors[i] {
				return fmt.Sprintf("errors %v, want %v", env.Errors, c.WantErrors), false
			}
		}
	}
	return "", true
}
