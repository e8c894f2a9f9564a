package client

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"pokedex/app/internal/config"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
	"resty.dev/v3"
)

// ImageListener receives the decoded image or the reason it could not be loaded.
type ImageListener func(img image.Image, err error)

type ImageLoader interface {
	// Load fetches and decodes url on its own goroutine, then calls listener exactly once.
	Load(ctx context.Context, url string, listener ImageListener)
	Close() error
}

type imageLoader struct {
	httpClient *resty.Client
}

func NewImageLoader(cfg config.PokeAPIConfig) ImageLoader {
	return &imageLoader{
		httpClient: newRestyClient(cfg, "image/png,image/webp,image/*;q=0.8"),
	}
}

func (l *imageLoader) Load(ctx context.Context, url string, listener ImageListener) {
	go func() {
		img, err := l.fetchImage(ctx, url)
		if err != nil {
			log.WithError(err).WithField("url", url).Debug("Failed to load image")
		}
		listener(img, err)
	}()
}

func (l *imageLoader) Close() error {
	return l.httpClient.Close()
}

func (l *imageLoader) fetchImage(ctx context.Context, url string) (image.Image, error) {
	body, err := get(ctx, l.httpClient, url)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}

	log.Debugf("Decoded %s image from %s (%dx%d)", format, url, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}
