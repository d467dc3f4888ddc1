// Package input переводит события клавиатуры окна в набор зажатых клавиш.
package input

import (
	"gioui.org/io/event"
	"gioui.org/io/key"

	"grapheme/internal/letter"
	"grapheme/internal/tracker"
)

// CancelKey - клавиша, которая убирает букву с экрана.
const CancelKey = key.NameEscape

// AnyModifier - модификаторы, с которыми клавиша всё равно отслеживается.
// Отпускание буквы при зажатом Ctrl тоже должно дойти до трекера.
const AnyModifier = key.ModShift | key.ModCtrl | key.ModAlt | key.ModSuper | key.ModCommand

// Filters возвращает фильтры событий для 26 букв и клавиши отмены.
// Модификаторы не мешают: буква с Shift или Ctrl считается той же буквой.
func Filters() []event.Filter {
	filters := make([]event.Filter, 0, letter.Count+1)
	for _, l := range letter.All() {
		filters = append(filters, key.Filter{Name: Name(l), Optional: AnyModifier})
	}
	filters = append(filters, key.Filter{Name: CancelKey, Optional: AnyModifier})
	return filters
}

// Name возвращает имя клавиши буквы в gio.
func Name(l letter.Letter) key.Name {
	return key.Name(l.Upper())
}

// Apply обновляет keys по событию. Возвращает false если клавиша не отслеживается.
func Apply(keys *tracker.Keys, e key.Event) bool {
	pressed := e.State == key.Press
	if e.Name == CancelKey {
		keys.Cancel = pressed
		return true
	}
	l, ok := letter.Parse(string(e.Name))
	if !ok {
		return false
	}
	keys.Set(l, pressed)
	return true
}
