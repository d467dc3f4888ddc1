// Package audio воспроизводит звуки букв через PortAudio.
package audio

import (
	"sync"

	"github.com/faiface/beep"
	"github.com/gordonklaus/portaudio"

	"grapheme/internal/audio/clip"
)

const (
	// SampleRate - частота дискретизации устройства вывода.
	SampleRate = clip.SampleRate
	// Channels - количество каналов (stereo).
	Channels = clip.Channels
	// FramesPerBuffer - размер буфера устройства.
	FramesPerBuffer = 2048
)

// Player смешивает звуки и выводит их на устройство по умолчанию.
// Звуки могут накладываться друг на друга.
type Player struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	mixer  beep.Mixer
	buf    [][2]float64
	muted  bool
}

// New открывает устройство вывода и запускает поток.
func New() (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	p := &Player{
		buf: make([][2]float64, FramesPerBuffer),
	}

	stream, err := portaudio.OpenDefaultStream(
		0,                   // input channels
		Channels,            // output channels
		float64(SampleRate), // sample rate
		FramesPerBuffer,     // frames per buffer
		p.process,
	)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	p.stream = stream

	return p, nil
}

// process вызывается PortAudio из своего потока.
func (p *Player) process(out [][]float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buf = fill(out, &p.mixer, p.buf)
}

// fill раскладывает сэмплы s по раздельным каналам out, дополняя тишиной
// если s закончился. Возвращает буфер для повторного использования.
func fill(out [][]float32, s beep.Streamer, buf [][2]float64) [][2]float64 {
	if len(out) == 0 {
		return buf
	}
	frames := len(out[0])
	if cap(buf) < frames {
		buf = make([][2]float64, frames)
	}
	buf = buf[:frames]

	n, _ := s.Stream(buf)
	for i := 0; i < frames; i++ {
		var left, right float32
		if i < n {
			left, right = float32(buf[i][0]), float32(buf[i][1])
		}
		out[0][i] = left
		if len(out) > 1 {
			out[1][i] = right
		}
	}
	return buf
}

// Play запускает звук поверх уже играющих. Пустой звук и nil игнорируются.
func (p *Player) Play(c *clip.Clip) {
	s := c.Streamer()
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	p.mixer.Add(s)
}

// SetMuted включает/выключает звук. Включение тишины обрывает играющие звуки.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if muted {
		p.mixer.Clear()
	}
}

// Muted возвращает true если звук выключен.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close останавливает поток и освобождает PortAudio.
func (p *Player) Close() {
	p.mu.Lock()
	stream := p.stream
	p.stream = nil
	p.mu.Unlock()

	if stream != nil {
		stream.Stop()
		stream.Close()
	}
	portaudio.Terminate()
}
