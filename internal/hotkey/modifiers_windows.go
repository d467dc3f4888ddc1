//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"
	"grapheme/internal/config"
)

// modifierMap переводит модификаторы из настроек в модификаторы Win32.
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.ModAlt,
	config.ModSuper: hotkey.ModWin,
}
