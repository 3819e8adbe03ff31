/*
File    : pixc/vm/pad.go
Package : vm
*/
package vm

import "math/rand"

// Pad is the display device PixIR's pad built-ins address. The VM
// never touches a physical display itself; it delegates every pad
// opcode to whatever Pad implementation the caller supplies, so the
// same bytecode can run headless in a test and against a real
// framebuffer in a standalone VM binary.
type Pad interface {
	Width() int64
	Height() int64
	ReadPixel(x, y int64) string
	SetPixel(x, y int64, colourHex string)
	SetPixelRect(x, y, w, h int64, colourHex string)
	RandInt(bound int64) int64
	Delay(ms int64)
}

// BufferPad is an in-memory Pad backed by a map from (x, y) to colour,
// useful for the reference VM and for tests: it never blocks on Delay
// and its RandInt draws from a generator seeded by the caller, for
// reproducibility.
type BufferPad struct {
	w, h   int64
	pixels map[[2]int64]string
	rng    *rand.Rand
	delays []int64 // recorded delay durations, for tests to assert on
}

// NewBufferPad creates a w×h pad whose pixels all start "000000".
func NewBufferPad(w, h int64, seed int64) *BufferPad {
	return &BufferPad{
		w:      w,
		h:      h,
		pixels: make(map[[2]int64]string),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (p *BufferPad) Width() int64  { return p.w }
func (p *BufferPad) Height() int64 { return p.h }

func (p *BufferPad) ReadPixel(x, y int64) string {
	if c, ok := p.pixels[[2]int64{x, y}]; ok {
		return c
	}
	return "000000"
}

func (p *BufferPad) SetPixel(x, y int64, colourHex string) {
	p.pixels[[2]int64{x, y}] = colourHex
}

func (p *BufferPad) SetPixelRect(x, y, w, h int64, colourHex string) {
	for dx := int64(0); dx < w; dx++ {
		for dy := int64(0); dy < h; dy++ {
			p.SetPixel(x+dx, y+dy, colourHex)
		}
	}
}

func (p *BufferPad) RandInt(bound int64) int64 {
	if bound <= 0 {
		return 0
	}
	return p.rng.Int63n(bound)
}

func (p *BufferPad) Delay(ms int64) {
	p.delays = append(p.delays, ms)
}

// Delays returns every duration passed to __delay, in call order.
func (p *BufferPad) Delays() []int64 { return p.delays }
