package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"bankey/internal/config"
	"bankey/internal/eventbus"
	"bankey/internal/ui"
)

func main() {
	var (
		configPath     string
		logPath        string
		skipOnboarding bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&logPath, "log", "", "Log file (overrides ui.log_file)")
	flag.BoolVar(&skipOnboarding, "skip-onboarding", false, "Go straight to the home screen after sign-in")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg := loadOrCreateConfig(configSvc)

	// Set up logging
	if logPath == "" {
		logPath = cfg.UI.LogFile
	}
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	subscribeAuditLog(bus)

	uiModel, err := ui.NewModel(ui.Options{
		Bus:               bus,
		Pages:             cfg.Pages(),
		UnknownPagePolicy: cfg.UnknownPagePolicy(),
		Checker:           cfg.Checker(),
		OnboardingEnabled: cfg.Onboarding.Enabled && !skipOnboarding,
		SignInDelay:       cfg.SignInDelay(),
	})
	if err != nil {
		fmt.Printf("Error creating UI: %v\n", err)
		os.Exit(1)
	}

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		bus.Close()
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()
	bus.Close()
	log.Printf("Events published: %d, dropped: %d", bus.Published(), bus.Dropped())
}

// loadOrCreateConfig loads the config file, writing the defaults on first run.
// A broken config file is reported and the defaults are used without overwriting it.
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	path := configSvc.Path()
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			fmt.Fprintf(os.Stderr, "Ignoring config %s: %v\n", path, err)
			return config.DefaultConfig()
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}

// subscribeAuditLog writes every session event to the log
func subscribeAuditLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventLoginAttempted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoginAttemptedEvent); ok {
			log.Printf("Sign-in attempt %s: %s", event.AttemptID, event.Outcome)
		}
	})
	bus.Subscribe(eventbus.EventLoginSucceeded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoginSucceededEvent); ok {
			log.Printf("Sign-in attempt %s: signed in as %s", event.AttemptID, event.Username)
		}
	})
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			log.Printf("Onboarding page %d (%s)", event.Index, event.PageID)
		}
	})
	bus.Subscribe(eventbus.EventOnboardingFinished, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OnboardingFinishedEvent); ok {
			log.Printf("Onboarding finished: %s", event.Reason)
		}
	})
	bus.Subscribe(eventbus.EventLogoutRequested, func(eventbus.DomainEvent) {
		log.Printf("Logged out")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}
