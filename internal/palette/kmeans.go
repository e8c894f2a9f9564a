package palette

import (
	"image"

	"pokedex/app/internal/domain"

	"github.com/EdlinOrg/prominentcolor"
	log "github.com/sirupsen/logrus"
)

// kmeansColor returns the centroid of the most populous k-means cluster.
func kmeansColor(img image.Image, k int, resize uint) (domain.Color, bool) {
	centroids, err := prominentcolor.KmeansWithAll(k, img, prominentcolor.ArgumentNoCropping, resize, nil)
	if err != nil {
		log.WithError(err).Debug("k-means extraction failed, falling back to histogram")
		return domain.Color{}, false
	}

	var best *prominentcolor.ColorItem
	for i, centroid := range centroids {
		if best == nil || centroid.Cnt > best.Cnt {
			best = &centroids[i]
		}
	}

	if best == nil {
		return domain.Color{}, false
	}

	return domain.Color{
		R: uint8(best.Color.R),
		G: uint8(best.Color.G),
		B: uint8(best.Color.B),
	}, true
}
