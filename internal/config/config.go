// Package config предоставляет настройки приложения с сохранением в файл.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// FileName - имя файла настроек рядом с бинарником.
const FileName = "config.json"

// EnvPrefix - префикс переменных окружения (GRAPHEME_SOUNDS_DIR и т.п.).
const EnvPrefix = "GRAPHEME"

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу горячей клавиши выхода.
type Key string

// HotkeyConfig хранит настройки горячей клавиши.
type HotkeyConfig struct {
	Modifiers []Modifier `mapstructure:"modifiers"`
	Key       Key        `mapstructure:"key"`
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.Modifiers {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(h.Key))
	return strings.Join(parts, "+")
}

// WindowConfig - размер окна и частота кадров.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`
}

// FontConfig - размер букв и смещение тени.
type FontConfig struct {
	Size         float64 `mapstructure:"size"`
	ShadowOffset int     `mapstructure:"shadow_offset"`
}

// ColorsConfig - цвета в виде "#rrggbb".
type ColorsConfig struct {
	Background string `mapstructure:"background"`
	Text       string `mapstructure:"text"`
	Shadow     string `mapstructure:"shadow"`
}

// Data - все настройки для сериализации.
type Data struct {
	SoundsDir     string       `mapstructure:"sounds_dir"`
	UILanguage    string       `mapstructure:"ui_language"`
	Notifications bool         `mapstructure:"notifications"`
	Muted         bool         `mapstructure:"muted"`
	Window        WindowConfig `mapstructure:"window"`
	Font          FontConfig   `mapstructure:"font"`
	Colors        ColorsConfig `mapstructure:"colors"`
	QuitHotkey    HotkeyConfig `mapstructure:"quit_hotkey"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sounds_dir", "Sounds")
	v.SetDefault("ui_language", "en")
	v.SetDefault("notifications", true)
	v.SetDefault("muted", false)
	v.SetDefault("window.width", 1920)
	v.SetDefault("window.height", 1080)
	v.SetDefault("window.fps", 240)
	v.SetDefault("font.size", 540)
	v.SetDefault("font.shadow_offset", 6)
	v.SetDefault("colors.background", "#323232")
	v.SetDefault("colors.text", "#ffffff")
	v.SetDefault("colors.shadow", "#000000")
	v.SetDefault("quit_hotkey.modifiers", []string{string(ModCtrl), string(ModShift)})
	v.SetDefault("quit_hotkey.key", "q")
}

// Config хранит настройки приложения.
type Config struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
	data Data
}

// DefaultPath возвращает путь к config.json рядом с исполняемым файлом.
func DefaultPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	// Резолвим симлинки
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(execPath), FileName)
}

// New загружает настройки из DefaultPath или возвращает настройки по умолчанию.
func New() *Config {
	c, err := Load(DefaultPath())
	if err != nil {
		log.Printf("Ошибка чтения настроек, используются значения по умолчанию: %v", err)
		c, _ = Load("")
	}
	return c
}

// Load загружает настройки из path. Отсутствующий файл не является ошибкой.
// Пустой path - только значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	c := &Config{v: v, path: path}
	if err := v.Unmarshal(&c.data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.data.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (d Data) validate() error {
	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", d.Window.Width, d.Window.Height)
	}
	if d.Window.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", d.Window.FPS)
	}
	if d.Font.Size <= 0 {
		return fmt.Errorf("invalid font size %v", d.Font.Size)
	}
	for _, hex := range []string{d.Colors.Background, d.Colors.Text, d.Colors.Shadow} {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// save сохраняет настройки в файл. Ошибки не критичны и только логируются.
func (c *Config) save() {
	if c.path == "" {
		return
	}
	if err := c.v.WriteConfigAs(c.path); err != nil {
		log.Printf("Ошибка сохранения настроек: %v", err)
	}
}

// Path возвращает путь к файлу настроек.
func (c *Config) Path() string {
	return c.path
}

// Data возвращает копию всех настроек.
func (c *Config) Data() Data {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// SoundsDir возвращает директорию со звуками.
func (c *Config) SoundsDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.SoundsDir
}

// SetSoundsDir переопределяет директорию со звуками на время запуска (не сохраняется).
func (c *Config) SetSoundsDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.SoundsDir = dir
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.UILanguage
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Notifications
}

// Muted возвращает true если звук выключен.
func (c *Config) Muted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Muted
}

// SetMuted включает/выключает звук и сохраняет настройку.
func (c *Config) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Muted = muted
	c.v.Set("muted", muted)
	c.save()
}

// ToggleMuted переключает звук.
func (c *Config) ToggleMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Muted = !c.data.Muted
	c.v.Set("muted", c.data.Muted)
	c.save()
	return c.data.Muted
}

// QuitHotkey возвращает горячую клавишу выхода.
func (c *Config) QuitHotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.QuitHotkey
}

// ParseColor разбирает цвет вида "#rrggbb".
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor как ParseColor, но для уже проверенных при загрузке цветов.
func MustColor(hex string) color.NRGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
