//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"
	"grapheme/internal/config"
)

// modifierMap переводит модификаторы из настроек в модификаторы macOS (Option, Cmd).
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.ModOption,
	config.ModSuper: hotkey.ModCmd,
}
