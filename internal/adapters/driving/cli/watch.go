package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cbvtrading/quotegen-cli/internal/logger"
)

// settleDelay gives the writing process time to finish before the new
// file is read.
const settleDelay = 250 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and generate quotations for new batch files",
	Long: `Watches a directory and runs generation for every batch file dropped
into it. Failures are reported and watching continues. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if services == nil || services.Generator == nil {
		return errors.New("generator not configured")
	}
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("watching %s for batch files\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) || !isBatchFile(event.Name) {
				continue
			}
			logger.Debug("new batch file %s", event.Name)
			time.Sleep(settleDelay)

			result, err := services.Generator.GenerateFromFile(ctx, event.Name)
			if err != nil {
				cmd.PrintErrf("%s: %v\n", event.Name, err)
				continue
			}
			cmd.Printf("%s: wrote %s\n", event.Name, result.ArtifactPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}

// isBatchFile reports whether the path looks like a batch input file.
func isBatchFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".csv" || ext == ".txt"
}
