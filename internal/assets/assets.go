// Package assets находит звуковые файлы букв на диске.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"grapheme/internal/letter"
)

// SoundExt - подстрока в имени файла, по которой файл считается звуком.
const SoundExt = ".mp3"

// ErrNoRoot возвращается если корневая директория звуков недоступна.
var ErrNoRoot = errors.New("sounds directory not found")

// Scan обходит дерево root и группирует абсолютные пути звуков по имени
// родительской директории. Директории без звуков в результат не попадают.
func Scan(root string) (map[string][]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoRoot, root)
	}

	result := make(map[string][]string)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Нечитаемые поддиректории пропускаем
			log.Printf("Пропуск %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.Contains(d.Name(), SoundExt) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		dir := filepath.Base(filepath.Dir(abs))
		result[dir] = append(result[dir], abs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// LetterReport - сколько звуков найдено для буквы.
type LetterReport struct {
	Letter letter.Letter
	Clips  int
}

// Report описывает обеспеченность букв звуками.
type Report struct {
	Letters []LetterReport
	Missing []letter.Letter
	Total   int
}

// Complete возвращает true если у каждой буквы есть директория со звуками.
func (r Report) Complete() bool {
	return len(r.Missing) == 0
}

// Summarize строит отчёт по результату Scan.
func Summarize(paths map[string][]string) Report {
	var r Report
	for _, l := range letter.All() {
		n := len(paths[l.String()])
		r.Letters = append(r.Letters, LetterReport{Letter: l, Clips: n})
		r.Total += n
		if _, ok := paths[l.String()]; !ok {
			r.Missing = append(r.Missing, l)
		}
	}
	return r
}

// Print выводит отчёт таблицей: буква, количество звуков.
func (r Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, lr := range r.Letters {
		status := fmt.Sprint(lr.Clips)
		if lr.Clips == 0 {
			status = "missing"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", lr.Letter.Upper(), status)
	}
	fmt.Fprintf(tw, "\nTotal\t%d\n", r.Total)
	return tw.Flush()
}
