package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"yubin/internal/eventbus"
	"yubin/internal/logic"
	"yubin/internal/ui"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/services/search"
)

// runTUI wires the loader, the search session and the Bubble Tea program
func runTUI(parent context.Context, opts *RootOptions) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, _, err := loadConfig(opts, bus)
	if err != nil {
		return err
	}
	closeLog := setupLogging(cfg, opts.Verbose, true, os.Stderr)
	defer closeLog()

	sessionOpts, err := sessionOptions(cfg, &SearchOptions{})
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}
	sessionOpts.Scheduler = search.TimerScheduler{}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// The loader subscribes to load requests on the bus
	loader, err := newLoader(cfg, bus)
	if err != nil {
		return err
	}
	defer loader.Stop()

	session := coordinator.NewCoordinator(logic.NewMemoryRecordStore(), sessionOpts)

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, session)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	// Forward load events to the UI loop
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventLoadCompleted,
		eventbus.EventLoadFailed,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	log.Printf("Starting UI for %s", cfg.Dataset.Source)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return WrapExitError(ExitFailure, "UI error", err)
	}
	return nil
}
