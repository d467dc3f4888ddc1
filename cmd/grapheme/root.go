package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"grapheme/internal/app"
	"grapheme/internal/config"
	"grapheme/internal/dialog"
	"grapheme/internal/hotkey"
	"grapheme/internal/i18n"
)

type options struct {
	configPath string
	soundsDir  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "grapheme",
		Short:        "Letter game: press a letter, see it and hear it",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runGame(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default: config.json next to the binary)")
	cmd.PersistentFlags().StringVar(&opts.soundsDir, "sounds", "", "sounds directory with one folder per letter (default: Sounds)")

	cmd.AddCommand(newScanCmd(opts))
	return cmd
}

func (o *options) load() (*config.Config, error) {
	var cfg *config.Config
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	} else {
		cfg = config.New()
	}

	if o.soundsDir != "" {
		cfg.SetSoundsDir(o.soundsDir)
	}
	return cfg, nil
}

func runGame(cfg *config.Config) error {
	log.Printf("Grapheme %s запускается...", Version)

	var runErr error
	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(func() {
		application, err := app.New(cfg)
		if err != nil {
			log.Printf("Ошибка инициализации: %v", err)
			msg := i18n.T("error_startup")
			var appErr *app.Error
			if errors.As(err, &appErr) {
				msg = appErr.Message
			}
			dialog.ShowError(i18n.T("error_title"), msg)
			runErr = err
			return
		}

		log.Println("Приложение запущено. Нажмите любую букву.")
		application.Run()
	})
	return runErr
}
