// Package update checks GitHub releases for a newer keyhint and installs it.
package update

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/creativeprojects/go-selfupdate"
)

const repo = "markovic-nikola/keyhint"

// noticeWait bounds how long quitting waits for an unfinished release check.
const noticeWait = 300 * time.Millisecond

// CheckInBackground looks for a newer release in a background goroutine.
// The returned function, called after the TUI exits, writes a notice to w if
// one was found. It waits at most noticeWait for a check still in flight.
// Failures are only logged.
func CheckInBackground(ctx context.Context, currentVersion string) func(w io.Writer) {
	ch := make(chan string, 1)

	go func() {
		defer close(ch)

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		updater, err := selfupdate.NewUpdater(selfupdate.Config{})
		if err != nil {
			slog.Debug("update check skipped", "err", err)
			return
		}

		latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
		if err != nil || !found {
			slog.Debug("no release found", "found", found, "err", err)
			return
		}

		if !latest.LessOrEqual(currentVersion) {
			ch <- latest.Version()
		}
	}()

	return notifier(ch, currentVersion, noticeWait)
}

func notifier(ch <-chan string, currentVersion string, wait time.Duration) func(w io.Writer) {
	return func(w io.Writer) {
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case v, ok := <-ch:
			if ok {
				fmt.Fprintf(w, "\nA new version of keyhint is available: %s -> %s\n", currentVersion, v)
				fmt.Fprintln(w, "Run `keyhint update` to update.")
			}
		case <-timer.C:
			slog.Debug("release check still running, skipping notice")
		}
	}
}

// Run replaces the running executable with the latest release, reporting
// progress to w.
func Run(ctx context.Context, w io.Writer, currentVersion string) error {
	fmt.Fprintf(w, "Current version: %s\n", currentVersion)
	fmt.Fprintln(w, "Checking for updates...")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return fmt.Errorf("create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !found {
		fmt.Fprintln(w, "No releases found.")
		return nil
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(w, "Already up to date (latest: %s).\n", latest.Version())
		return nil
	}

	fmt.Fprintf(w, "New version available: %s -> %s\n", currentVersion, latest.Version())

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	slog.Info("updating", "from", currentVersion, "to", latest.Version(), "exe", exe)
	fmt.Fprintln(w, "Downloading and installing update...")
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(w, "Successfully updated to version %s.\n", latest.Version())
	return nil
}
