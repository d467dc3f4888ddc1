package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationsHaveSameKeys(t *testing.T) {
	for key := range translations[EN] {
		_, ok := translations[RU][key]
		assert.True(t, ok, "ru is missing %q", key)
	}
	for key := range translations[RU] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "en is missing %q", key)
	}
}

func TestT(t *testing.T) {
	t.Cleanup(func() { SetLanguage(EN) })

	SetLanguage(RU)
	assert.Equal(t, RU, GetLanguage())
	assert.Equal(t, "Выход", T("tray_quit"))
	assert.Equal(t, "Загружено звуков: 3", Tf("tray_sounds", 3))

	SetLanguage(Language("xx"))
	assert.Equal(t, RU, GetLanguage(), "unknown language is ignored")

	SetLanguage(EN)
	assert.Equal(t, "Quit (ctrl+q)", Tf("tray_quit_combo", "ctrl+q"))
	assert.Equal(t, "no_such_key", T("no_such_key"))
}
