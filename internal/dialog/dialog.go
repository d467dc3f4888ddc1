// Package dialog предоставляет нативные диалоги.
package dialog

import (
	"github.com/ncruces/zenity"
)

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	zenity.Info(message, zenity.Title(title), zenity.InfoIcon)
}

// ShowError показывает сообщение об ошибке и ждёт пока пользователь его закроет.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title), zenity.ErrorIcon)
}
