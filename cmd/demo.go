package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"placer/internal/board"
	"placer/internal/config"
	"placer/internal/geometry"
	"placer/internal/library"
	"placer/internal/log"
	"placer/internal/pubsub"
	"placer/internal/tracing"
	"placer/internal/watcher"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted board editing session",
	Long: `Run a scripted editing session against an in-memory board: place a few
components, edit them between snapshots, then walk the history backward
and forward. Moves replayed by undo and redo are printed as they happen.

Examples:
  # Run with the built-in standard package library
  placer demo

  # Run against a library file, with back-side flip style rotate-first
  placer demo -l packages.yaml --flip-rotate-first`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup, err := log.Init(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("initializing log: %w", err)
	}
	defer cleanup()
	log.SetEnabled(cfg.Debug)

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	return runSession(cmd.Context(), cfg, provider.Tracer(), os.Stdout)
}

// runSession executes the scripted edit/undo/redo sequence and writes a
// transcript to out.
func runSession(ctx context.Context, cfg config.Config, tracer trace.Tracer, out io.Writer) error {
	sessionID := uuid.NewString()

	ctx, session := tracer.Start(ctx, tracing.SpanPrefixBoard+"session",
		trace.WithAttributes(attribute.String(tracing.AttrSessionID, sessionID)))
	defer session.End()

	loader := library.NewLoader()
	lib, err := loadLibrary(ctx, cfg, loader, tracer)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "session %s: library with %d packages\n", sessionID, lib.Count())

	if cfg.AutoReload && cfg.LibraryPath != "" {
		w, err := watcher.New(watcher.Config{
			LibraryPath: cfg.LibraryPath,
			DebounceDur: time.Duration(cfg.AutoReloadDebounce) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("creating library watcher: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting library watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()
		go func() {
			for range changes {
				loader.Invalidate(ctx, cfg.LibraryPath)
				log.Info(log.CatWatcher, "library file changed", "path", cfg.LibraryPath)
			}
		}()
	}

	dip8, err := lib.Get("DIP-8")
	if err != nil {
		return fmt.Errorf("looking up footprint: %w", err)
	}
	dip14, err := lib.Get("DIP-14")
	if err != nil {
		return fmt.Errorf("looking up footprint: %w", err)
	}

	broker := pubsub.NewBroker[*board.Component]()
	defer broker.Close()
	observer := board.NewBrokerObserver(broker)

	subCtx, stopSub := context.WithCancel(ctx)
	defer stopSub()
	moves := broker.Subscribe(subCtx)
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for evt := range moves {
			fmt.Fprintf(out, "  replayed %s\n", evt.Payload)
		}
	}()

	components := board.NewComponents()
	components.SetFlipStyleRotateFirst(cfg.FlipStyleRotateFirst)

	components.Add("U1", geometry.Point{X: 10, Y: 10}, 0, true, dip8, dip8, false)
	components.Add("U2", geometry.Point{X: 30, Y: 10}, 90, true, dip14, dip14, false)
	components.Add("R1", geometry.Point{X: 20, Y: 25}, 0, false, dip8, dip8, false)
	components.GenerateSnapshot()
	fmt.Fprintf(out, "placed %d components, snapshot taken\n", components.Count())

	_, edit := tracer.Start(ctx, tracing.SpanPrefixBoard+"edit",
		trace.WithAttributes(
			attribute.String(tracing.AttrSessionID, sessionID),
			attribute.String(tracing.AttrEditOp, "move+rotate"),
		))
	if err := components.Move(1, geometry.Vector{DX: 5, DY: 0}); err != nil {
		edit.End()
		return err
	}
	if err := components.Rotate(2, 45, geometry.Point{X: 30, Y: 10}); err != nil {
		edit.End()
		return err
	}
	if err := components.ChangeSide(3, geometry.Point{X: 20, Y: 25}); err != nil {
		edit.End()
		return err
	}
	edit.End()
	fmt.Fprintln(out, "edited U1, U2, R1")

	fmt.Fprintln(out, "undo:")
	if !components.Undo(observer) {
		return fmt.Errorf("undo failed with history available")
	}
	fmt.Fprintln(out, "redo:")
	if !components.Redo(observer) {
		return fmt.Errorf("redo failed with an undone snapshot available")
	}

	// Let the subscriber drain before closing the broker.
	stopSub()
	broker.Close()
	<-printed

	if drifts := components.CheckIndexConsistency(); len(drifts) != 0 {
		return fmt.Errorf("registry index drifted: %v", drifts)
	}

	fmt.Fprintln(out, "final board:")
	for _, comp := range components.List() {
		fmt.Fprintf(out, "  %s\n", comp)
	}
	return nil
}

// loadLibrary loads the configured library file, or the built-in
// standard library when no path is set.
func loadLibrary(ctx context.Context, cfg config.Config, loader *library.Loader, tracer trace.Tracer) (*library.Library, error) {
	if cfg.LibraryPath == "" {
		return library.Standard(), nil
	}

	ctx, span := tracer.Start(ctx, tracing.SpanPrefixLibrary+"load",
		trace.WithAttributes(attribute.String(tracing.AttrLibraryPath, cfg.LibraryPath)))
	defer span.End()

	lib, err := loader.Load(ctx, cfg.LibraryPath)
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	span.SetAttributes(attribute.Int(tracing.AttrLibraryPackages, lib.Count()))
	return lib, nil
}
