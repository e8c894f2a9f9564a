// Package palette computes representative colors of decoded images.
package palette

import (
	"fmt"
	"image"
	"slices"

	"pokedex/app/internal/config"
	"pokedex/app/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Algorithm selects how the dominant color is picked.
type Algorithm string

const (
	// AlgorithmHistogram returns the most populous quantized color. Deterministic.
	AlgorithmHistogram Algorithm = "histogram"

	// AlgorithmKMeans clusters the pixels and returns the largest cluster.
	// Images with more distinct colors than clusters are seeded randomly, so
	// repeated runs may differ slightly.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns the supported algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmHistogram, AlgorithmKMeans}
}

// Outcome is the terminal result of one extraction. Found is false when the
// image has no usable pixels, in which case the caller keeps its fallback color.
type Outcome struct {
	Color domain.Color
	Found bool
}

type Extractor interface {
	// ComputeDominantColor runs off the caller's goroutine and delivers exactly
	// one Outcome before the channel is closed.
	ComputeDominantColor(img image.Image) <-chan Outcome

	// ComputeDominantColorFunc calls onFinish from a background goroutine when
	// a color is found. onFinish is never called otherwise.
	ComputeDominantColorFunc(img image.Image, onFinish func(domain.Color))
}

type extractor struct {
	algorithm Algorithm
	clusters  int
	resize    uint
}

func NewExtractor(cfg config.PaletteConfig) (Extractor, error) {
	algorithm := Algorithm(cfg.Algorithm)
	if !slices.Contains(ValidAlgorithms(), algorithm) {
		return nil, fmt.Errorf("unknown palette algorithm: %s (valid algorithms: %v)", cfg.Algorithm, ValidAlgorithms())
	}
	if cfg.Clusters <= 0 {
		return nil, fmt.Errorf("palette clusters must be positive, got %d", cfg.Clusters)
	}
	if cfg.Resize < 0 {
		return nil, fmt.Errorf("palette resize must not be negative, got %d", cfg.Resize)
	}

	return &extractor{
		algorithm: algorithm,
		clusters:  cfg.Clusters,
		resize:    uint(cfg.Resize),
	}, nil
}

func (e *extractor) ComputeDominantColor(img image.Image) <-chan Outcome {
	out := make(chan Outcome, 1)

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("❌ Dominant color extraction panicked: %v", r)
				out <- Outcome{}
			}
		}()

		color, found := e.dominantColor(img)
		out <- Outcome{Color: color, Found: found}
	}()

	return out
}

func (e *extractor) ComputeDominantColorFunc(img image.Image, onFinish func(domain.Color)) {
	outcome := e.ComputeDominantColor(img)
	go func() {
		if result := <-outcome; result.Found {
			onFinish(result.Color)
		}
	}()
}

func (e *extractor) dominantColor(img image.Image) (domain.Color, bool) {
	if img == nil || img.Bounds().Empty() {
		return domain.Color{}, false
	}

	hist := buildHistogram(img)
	if len(hist) == 0 {
		return domain.Color{}, false
	}

	if e.algorithm == AlgorithmKMeans && len(hist) > e.clusters {
		if color, ok := kmeansColor(img, e.clusters, e.resize); ok {
			return color, true
		}
	}

	return hist.dominant(), true
}
