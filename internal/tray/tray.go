// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"

	"grapheme/embedded"
	"grapheme/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnMuteToggle func() bool
	OnQuit       func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks Callbacks
	muted     bool
	quitCombo string
	status    *systray.MenuItem
	muteBtn   *systray.MenuItem
	quitBtn   *systray.MenuItem
}

// New создаёт новый Tray. quitCombo - горячая клавиша выхода для подписи меню.
func New(callbacks Callbacks, muted bool, quitCombo string) *Tray {
	return &Tray{
		callbacks: callbacks,
		muted:     muted,
		quitCombo: quitCombo,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.Icon)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.Tf("tray_sounds", 0), "")
	t.status.Disable()

	systray.AddSeparator()

	// Без звука
	t.muteBtn = systray.AddMenuItemCheckbox(i18n.T("tray_mute"), i18n.T("tray_mute_hint"), t.muted)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.Tf("tray_quit_combo", t.quitCombo), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.muteBtn.ClickedCh:
			if t.callbacks.OnMuteToggle != nil {
				if t.callbacks.OnMuteToggle() {
					t.muteBtn.Check()
				} else {
					t.muteBtn.Uncheck()
				}
			}

		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			return
		}
	}
}

// SetClipCount показывает количество загруженных звуков.
func (t *Tray) SetClipCount(n int) {
	if t.status != nil {
		t.status.SetTitle(i18n.Tf("tray_sounds", n))
	}
}

func (t *Tray) onExit() {
	// Ресурсы освобождает app
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
