// Package i18n provides internationalization support.
package i18n

import (
	"fmt"
	"sync"
)

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	RU Language = "ru"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":     "Grapheme",
		"app_tooltip":  "Grapheme - letter game",
		"window_title": "Letter Game",

		// Tray menu
		"tray_sounds":     "Sounds loaded: %d",
		"tray_mute":       "Mute",
		"tray_mute_hint":  "Turn letter sounds off",
		"tray_quit":       "Quit",
		"tray_quit_hint":  "Close the letter game",
		"tray_quit_combo": "Quit (%s)",

		// Notifications
		"notify_ready":      "Ready",
		"notify_ready_hint": "%d sounds loaded. Press any letter!",

		// Startup window
		"startup_status":   "Loading letters...",
		"startup_letter":   "Letter %s (%d/%d)",
		"startup_scanning": "Looking for sounds...",

		// Errors
		"error_title":          "Letter Game",
		"error_startup":        "The letter game could not start",
		"error_missing_letter": "No sounds for letter %q in %s",
		"error_no_sounds":      "Sounds folder not found: %s",
		"error_audio":          "Audio device is not available",
		"error_hotkey":         "Could not register quit hotkey %s",
	},

	RU: {
		// App
		"app_name":     "Grapheme",
		"app_tooltip":  "Grapheme - игра с буквами",
		"window_title": "Буквы",

		// Tray menu
		"tray_sounds":     "Загружено звуков: %d",
		"tray_mute":       "Без звука",
		"tray_mute_hint":  "Выключить звуки букв",
		"tray_quit":       "Выход",
		"tray_quit_hint":  "Закрыть игру",
		"tray_quit_combo": "Выход (%s)",

		// Notifications
		"notify_ready":      "Готово",
		"notify_ready_hint": "Загружено звуков: %d. Нажмите любую букву!",

		// Startup window
		"startup_status":   "Загрузка букв...",
		"startup_letter":   "Буква %s (%d/%d)",
		"startup_scanning": "Поиск звуков...",

		// Errors
		"error_title":          "Буквы",
		"error_startup":        "Не удалось запустить игру",
		"error_missing_letter": "Нет звуков для буквы %q в %s",
		"error_no_sounds":      "Папка со звуками не найдена: %s",
		"error_audio":          "Звуковое устройство недоступно",
		"error_hotkey":         "Не удалось зарегистрировать горячую клавишу %s",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to English, then to the key itself
	if s, ok := translations[EN][key]; ok {
		return s
	}
	return key
}

// Tf formats the translation for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{EN, RU}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
