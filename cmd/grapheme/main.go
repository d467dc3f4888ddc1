// Grapheme - игра с буквами для малышей.
//
// Нажатие буквы показывает её на весь экран и проигрывает случайное
// произношение из папки Sounds/<буква>/.
package main

import (
	"log"
	"os"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
