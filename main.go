package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"scrollhead/internal/config"
	"scrollhead/internal/domain"
	"scrollhead/internal/eventbus"
	"scrollhead/internal/history"
	"scrollhead/internal/ui"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scrollhead",
		Short: "A scrolling list whose header collapses and expands with scroll direction",
		Long: `scrollhead shows a scrollable list under a header band. Scrolling forward
collapses the header, scrolling back expands it.

Two strategies decide the header state:
  offset  classify the change in scroll offset against a threshold
  index   compare throttled indices of rows scrolled into view`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultFileName+")")
	rootCmd.PersistentFlags().String("strategy", "", "Header strategy: offset or index")
	rootCmd.PersistentFlags().Int("items", 0, "Number of list rows")
	rootCmd.PersistentFlags().String("log", "scrollhead.log", "Log file")

	rootCmd.AddCommand(
		newReplayCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// loadConfig loads the config file and applies the command line overrides
func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	path, _ := cmd.Flags().GetString("config")

	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(bus, path)
	} else {
		svc = config.NewConfigService(path)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
		s, err := domain.ParseStrategy(strategy)
		if err != nil {
			return nil, nil, err
		}
		cfg.Strategy = string(s)
	}
	if cmd.Flags().Changed("items") {
		items, _ := cmd.Flags().GetInt("items")
		cfg.Items = items
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, svc, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Set up logging
	logPath, _ := cmd.Flags().GetString("log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	bus := eventbus.New()
	defer bus.Close()

	cfg, svc, err := loadConfig(cmd, bus)
	if err != nil {
		return err
	}
	log.Printf("Config %s: strategy=%s items=%d", svc.Path(), cfg.Strategy, cfg.Items)

	recorder := history.New(cfg.UISettings.HistorySize)
	detach := recorder.Attach(bus)
	defer detach()

	bus.Subscribe(eventbus.EventStrategyChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StrategyChangedEvent); ok {
			log.Printf("Strategy changed: %s -> %s", event.From, event.To)
		}
	})
	bus.Subscribe(eventbus.EventDecisionSuppressed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DecisionSuppressedEvent); ok {
			log.Printf("Suppressed repeated %s decision", event.Decision)
		}
	})

	log.Printf("Creating UI model...")
	model := ui.NewModel(bus, cfg, recorder)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally (%d transitions)", recorder.Len())

	return nil
}
