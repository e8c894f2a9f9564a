package palette

import (
	"image"
	"image/color"

	"pokedex/app/internal/domain"
)

const (
	quantizeBits = 5
	// Pixels below half opacity do not count towards any color.
	minAlpha = 0x80
)

type bucket struct {
	count   int
	r, g, b uint64
}

func (b *bucket) average() domain.Color {
	n := uint64(b.count)
	return domain.Color{
		R: uint8(b.r / n),
		G: uint8(b.g / n),
		B: uint8(b.b / n),
	}
}

// histogram groups opaque pixels by their quantized color.
type histogram map[uint16]*bucket

func buildHistogram(img image.Image) histogram {
	hist := make(histogram)
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < minAlpha {
				continue
			}

			key := quantize(c.R)<<(2*quantizeBits) | quantize(c.G)<<quantizeBits | quantize(c.B)
			b, ok := hist[key]
			if !ok {
				b = &bucket{}
				hist[key] = b
			}
			b.count++
			b.r += uint64(c.R)
			b.g += uint64(c.G)
			b.b += uint64(c.B)
		}
	}

	return hist
}

func quantize(v uint8) uint16 {
	return uint16(v >> (8 - quantizeBits))
}

// dominant returns the average color of the most populous bucket. Ties go to
// the lower key so the result does not depend on map order.
func (h histogram) dominant() domain.Color {
	var (
		bestKey uint16
		best    *bucket
	)
	for key, b := range h {
		if best == nil || b.count > best.count || (b.count == best.count && key < bestKey) {
			bestKey, best = key, b
		}
	}
	return best.average()
}
