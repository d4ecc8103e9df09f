package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/go-leo/bestiary/command"
	"github.com/go-leo/bestiary/config"
	"github.com/go-leo/bestiary/event"
	"github.com/go-leo/bestiary/factory"
	"github.com/go-leo/bestiary/logger"
	"github.com/go-leo/bestiary/registry"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "bestiary",
		Short:         "Populate the creature map and stage an encounter with a random creature",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, log, err := setup(cmd, cfgPath)
			if err != nil {
				return err
			}
			return encounter(cmd.Context(), m, log)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "yaml or json configuration file")
	root.AddCommand(newCensusCmd(&cfgPath))
	return root
}

// setup loads the configuration and returns a populated map.
func setup(cmd *cobra.Command, cfgPath string) (*registry.Map, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New("bestiary", append(cfg.Log.Options(), logger.Output(cmd.ErrOrStderr()))...)
	m, err := newMap(cfg, cmd.OutOrStdout(), log)
	if err != nil {
		log.Errorf("build registry: %v", err)
		return nil, nil, err
	}
	if err := m.Populate(cmd.Context()); err != nil {
		log.Errorf("populate: %v", err)
		return nil, nil, err
	}
	return m, log, nil
}

func newMap(cfg *config.Config, out io.Writer, log *logger.ZerologLogger) (*registry.Map, error) {
	bus := event.NewBus()
	err := bus.On(registry.Populated{}, event.Func(func(e event.Event) error {
		populated := e.Body().(registry.Populated)
		log.Debugf("%s batch of %d, total %d", populated.Variant, populated.Count, populated.Total)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	opts := []registry.Option{
		registry.Repetitions(*cfg.Repetitions),
		registry.Output(out),
		registry.WithLogger(log.With("registry")),
		registry.WithBus(bus),
		registry.WithMiddleware(factory.Logging(log.With("factory"))),
	}
	if cfg.Seed != 0 {
		opts = append(opts, registry.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	return registry.New(opts...)
}

func encounter(ctx context.Context, m *registry.Map, log logger.Logger) error {
	c, err := m.RandomCreature()
	if err != nil {
		log.Errorf("pick creature: %v", err)
		return err
	}
	log.Infof("encounter with %s (%s)", c.Name(), c.Variant())
	_, err = command.Encounter(c).Execute(ctx)
	return err
}
