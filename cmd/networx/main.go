// cmd/networx/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"networx-client/internal/auth"
	"networx-client/internal/common/config"
	"networx-client/internal/common/errors"
	"networx-client/internal/common/logger"
	"networx-client/internal/common/observability"
	"networx-client/internal/profile"
	"networx-client/internal/recommend"
	"networx-client/internal/render"
	"networx-client/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			log.Info("metrics listener starting", map[string]interface{}{
				"address": cfg.Metrics.Address,
			})
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				log.Warn("metrics listener stopped", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()
	}

	session := auth.NewStaticSession(cfg.Auth.Token)
	if !session.Authenticated() {
		fmt.Fprintln(os.Stderr, "Sign in before searching for similar users (set NETWORX_TOKEN or auth.token)")
		os.Exit(1)
	}

	client := recommend.NewClient(cfg.Recommender, log)
	controller := workflow.NewController(workflow.Dependencies{
		Client:        client,
		Session:       session,
		Logger:        log,
		Observability: obs,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSession(ctx, controller, os.Stdin, os.Stdout); err != nil && err != io.EOF {
		log.Error("session ended with error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

// runSession drives the collect -> submit -> show-results loop until
// the user quits or input ends.
func runSession(ctx context.Context, controller *workflow.Controller, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for ctx.Err() == nil {
		snap := controller.Snapshot()
		render.ErrorBanner(out, snap.Err)

		fmt.Fprintln(out, "Find Similar Users")
		fmt.Fprintln(out, "Enter your profile (empty input keeps the shown value)")
		if err := collectProfile(scanner, out, controller); err != nil {
			return err
		}

		fmt.Fprintln(out, "Searching...")
		if err := controller.Submit(ctx); err != nil {
			if errors.IsFetchFailure(err) {
				// Inline banner on the next collection pass; input kept.
				continue
			}
			fmt.Fprintf(out, "%s\n", userMessage(err))
			continue
		}

		snap = controller.Snapshot()
		render.Results(out, snap)

		if !promptYes(scanner, out, "New search? [y/N] ") {
			return nil
		}
		if err := controller.Reset(); err != nil {
			return err
		}
	}
	return nil
}

func collectProfile(scanner *bufio.Scanner, out io.Writer, controller *workflow.Controller) error {
	current := controller.Snapshot().Profile
	for _, f := range profile.Fields() {
		if f == profile.FieldGender {
			fmt.Fprintf(out, "  options: %s\n", strings.Join(profile.Genders(), ", "))
		}
		if f == profile.FieldProductCategoryPreference {
			fmt.Fprintf(out, "  options: %s\n", strings.Join(profile.Categories(), ", "))
		}
		fmt.Fprintf(out, "%s [%s]: ", f.Label(), current.Value(f))
		if !scanner.Scan() {
			return io.EOF
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if err := controller.SetField(f, raw); err != nil {
			return err
		}
	}

	for _, hint := range controller.Snapshot().Profile.Hints() {
		fmt.Fprintf(out, "note: %s\n", hint)
	}
	return nil
}

func promptYes(scanner *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func userMessage(err error) string {
	switch errors.CodeOf(err) {
	case errors.ErrCodeMissingRequiredFields:
		return "Please fill in all required fields"
	case errors.ErrCodeNotAuthenticated:
		return "Sign in before searching for similar users"
	case errors.ErrCodeSubmissionInFlight:
		return "A submission is already in flight"
	}
	return err.Error()
}
