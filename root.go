package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/announcer/internal/app"
	"github.com/llehouerou/announcer/internal/config"
	"github.com/llehouerou/announcer/internal/errmsg"
	"github.com/llehouerou/announcer/internal/logging"
	"github.com/llehouerou/announcer/internal/mpris"
	"github.com/llehouerou/announcer/internal/notify"
	"github.com/llehouerou/announcer/internal/player"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "announcer",
		Short:         "Browse, play and sequence announcement clips",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringP("config", "c", "", "Configuration file path")
	cmd.Flags().String("catalogue", "", "Clip catalogue file or http(s) URL")
	cmd.Flags().String("sounds", "", "Directory clip files are resolved under")
	cmd.Flags().String("search", "", "Search backend: trigram or fts")
	cmd.Flags().String("log-file", "", "Write a debug log to this file")

	return cmd
}

// loadConfig reads the config files and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	explicit, _ := flags.GetString("config")

	cfg, err := config.Load(explicit)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("catalogue", &cfg.Catalogue)
	override("sounds", &cfg.SoundRoot)
	override("search", &cfg.Search.Backend)
	if flags.Changed("log-file") {
		override("log-file", &cfg.Log.File)
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logs, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logs.Close()

	sched := app.NewScheduler()
	speaker := player.NewSpeaker(sched)
	defer speaker.Close()

	deps := app.Deps{
		Config:  cfg,
		Backend: speaker,
		Sched:   sched,
		Log:     logs,
	}
	if cfg.Notify {
		deps.Notifier = notify.Desktop()
	}
	m := app.New(deps)

	if cfg.MPRIS {
		adapter, err := mpris.New(sched, m.Playback, m.Playback.State)
		if err != nil {
			logs.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
			m.SetPublisher(adapter)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
