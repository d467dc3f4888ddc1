// Package app содержит основную логику приложения.
package app

import (
	"errors"
	"log"
	"sync"

	"grapheme/internal/assets"
	"grapheme/internal/audio"
	"grapheme/internal/audio/clip"
	"grapheme/internal/config"
	"grapheme/internal/display"
	"grapheme/internal/game"
	"grapheme/internal/hotkey"
	"grapheme/internal/i18n"
	"grapheme/internal/notify"
	"grapheme/internal/registry"
	"grapheme/internal/startup"
	"grapheme/internal/tray"
)

// Error - ошибка запуска с сообщением для пользователя.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// App представляет главное приложение.
type App struct {
	mu       sync.Mutex
	config   *config.Config
	player   *audio.Player
	registry *registry.Registry
	game     *game.Game
	notifier *notify.Notifier
	tray     *tray.Tray
	hotkey   *hotkey.Handler
	window   *display.Window
	closed   bool
}

// New загружает буквы и звуки и создаёт приложение.
// Любая ошибка загрузки прерывает запуск.
func New(cfg *config.Config) (*App, error) {
	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}
	data := cfg.Data()

	// Окно загрузки видно пока декодируются звуки
	startupWin := startup.New()
	startupWin.Show()
	defer startupWin.Hide()

	paths, err := assets.Scan(data.SoundsDir)
	if err != nil {
		return nil, &Error{Message: i18n.Tf("error_no_sounds", data.SoundsDir), Err: err}
	}
	report := assets.Summarize(paths)
	log.Printf("Найдено звуков: %d в %s", report.Total, data.SoundsDir)
	for _, l := range report.Missing {
		log.Printf("Нет звуков для буквы %s", l)
	}

	player, err := audio.New()
	if err != nil {
		return nil, &Error{Message: i18n.T("error_audio"), Err: err}
	}
	player.SetMuted(cfg.Muted())

	opts := registry.Options{
		FontSize:     data.Font.Size,
		ShadowOffset: data.Font.ShadowOffset,
		TextColor:    config.MustColor(data.Colors.Text),
		ShadowColor:  config.MustColor(data.Colors.Shadow),
	}
	reg, err := registry.Build(paths, opts, clip.Load, startupWin.Loaded)
	if err != nil {
		player.Close()
		return nil, &Error{Message: startupMessage(err, data.SoundsDir), Err: err}
	}

	a := &App{
		config:   cfg,
		player:   player,
		registry: reg,
		game:     game.New(reg, player, nil),
		notifier: notify.New(cfg.NotificationsEnabled()),
	}

	a.window = display.New(a.game, display.Config{
		Title:      i18n.T("window_title"),
		Width:      data.Window.Width,
		Height:     data.Window.Height,
		FPS:        data.Window.FPS,
		Background: config.MustColor(data.Colors.Background),
	})

	// Горячая клавиша выхода закрывает окно, остальное делает Run
	a.hotkey = hotkey.New(a.window.Close)

	a.tray = tray.New(tray.Callbacks{
		OnMuteToggle: func() bool {
			muted := a.config.ToggleMuted()
			a.player.SetMuted(muted)
			return muted
		},
		OnQuit: a.window.Close,
	}, cfg.Muted(), cfg.QuitHotkey().String())

	return a, nil
}

func startupMessage(err error, soundsDir string) string {
	var missing *registry.MissingLetterError
	if errors.As(err, &missing) {
		return i18n.Tf("error_missing_letter", missing.Letter.String(), soundsDir)
	}
	return i18n.T("error_startup")
}

// Run показывает окно игры и блокируется до его закрытия.
func (a *App) Run() {
	go func() {
		if err := a.window.Run(); err != nil {
			log.Printf("Ошибка окна: %v", err)
		}
		log.Println("Окно закрыто")
		a.tray.Quit()
	}()

	a.tray.Run(func() {
		clips := a.registry.ClipCount()
		a.tray.SetClipCount(clips)

		hk := a.config.QuitHotkey()
		if err := a.hotkey.Register(hk); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.Tf("error_hotkey", hk.String()))
		}

		a.notifier.Ready(clips)
	})

	a.Close()
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true

	if a.hotkey != nil {
		a.hotkey.Unregister()
	}

	if a.player != nil {
		a.player.Close()
	}
}
