// Package clip загружает звуки букв в память. Не зависит от PortAudio.
package clip

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
)

const (
	// SampleRate - частота дискретизации, к которой приводятся все звуки.
	SampleRate beep.SampleRate = 44100
	// Channels - количество каналов (stereo).
	Channels = 2

	// resampleQuality - качество ресемплинга beep (1..64), 4 хватает для речи.
	resampleQuality = 4
)

// Format - формат, в который приводятся все загруженные звуки.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: Channels, Precision: 2}

// Clip - звук, полностью декодированный в память в формате устройства.
type Clip struct {
	Path   string
	buffer *beep.Buffer
}

// Load декодирует mp3 файл и приводит его к SampleRate.
func Load(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	// mp3.Decode забирает f и закрывает его вместе со streamer
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	return Read(path, streamer, format.SampleRate)
}

// Read буферизует s целиком, при необходимости ресемплируя из rate.
func Read(path string, s beep.Streamer, rate beep.SampleRate) (*Clip, error) {
	if rate != SampleRate {
		s = beep.Resample(resampleQuality, rate, SampleRate, s)
	}

	buffer := beep.NewBuffer(Format)
	buffer.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Clip{Path: path, buffer: buffer}, nil
}

// Duration возвращает длительность звука.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.buffer == nil {
		return 0
	}
	return SampleRate.D(c.buffer.Len())
}

// Streamer возвращает новый независимый поток по звуку, nil для пустого.
func (c *Clip) Streamer() beep.Streamer {
	if c == nil || c.buffer == nil || c.buffer.Len() == 0 {
		return nil
	}
	return c.buffer.Streamer(0, c.buffer.Len())
}
