package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pluqqy/tagpick/internal/cli"
	"github.com/pluqqy/tagpick/pkg/importer"
	"github.com/pluqqy/tagpick/pkg/models"
	"github.com/pluqqy/tagpick/pkg/picker"
)

var (
	watchFor      time.Duration
	watchDebounce time.Duration
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-import a catalog file every time it changes",
		Long: `Import a catalog file and keep importing it whenever it is saved,
until interrupted. Useful while curating a tag list in an editor with
tagpick running in another terminal.

Examples:
  tagpick watch my-tags.json

  # Stop on its own after ten minutes
  tagpick watch words.txt --for 10m`,
		Args:    cobra.ExactArgs(1),
		PreRunE: requireProject,
		RunE:    runWatch,
	}

	cmd.Flags().DurationVar(&watchFor, "for", 0, "Stop watching after this long (0 watches until interrupted)")
	cmd.Flags().DurationVar(&watchDebounce, "debounce", importer.DefaultWatchDebounce, "Quiet period before a change is re-imported")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := cli.ValidateImportFile(path); err != nil {
		return err
	}

	ctx, ctrl, err := openController(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	log := ctx.Logger().Named("watch")
	label := filepath.Base(path)

	onImport := func(catalog *models.Catalog) {
		result := picker.ImportResult{Catalog: catalog, Origin: picker.OriginFile, Label: label}
		if err := ctrl.ApplyImport(result); err != nil {
			cli.PrintError("%v", err)
		}
	}
	onError := func(err error) {
		cli.PrintError("%v", ctrl.ReportImportError(err))
	}

	watcher, err := importer.NewWatcher(path, onImport, onError, log)
	if err != nil {
		return err
	}
	watcher.SetDebounce(watchDebounce)

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		if watchFor <= 0 {
			return nil
		}
		select {
		case <-time.After(watchFor):
			log.Debug("watch period elapsed", zap.Duration("for", watchFor))
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	cli.PrintInfo("Watching %s (Ctrl+C to stop)", path)
	if err := g.Wait(); err != nil {
		return err
	}
	cli.PrintInfo("Stopped watching %s", path)
	return nil
}
