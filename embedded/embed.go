// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// Icon - иконка трея: белая буква на оранжевом круге.
//
//go:embed icon.png
var Icon []byte
