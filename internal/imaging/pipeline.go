// Package imaging is the ingestion pipeline for uploaded photos: decode,
// downscale to a bounded dimension, re-encode as lossy JPEG, and return a
// self-contained data URI that embeds directly in a content document.
// Keeping uploads small is what makes the storage budget workable.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// maxDimension bounds the dominant axis of processed images. Images
	// already within bounds are never upscaled.
	maxDimension = 800

	// jpegQuality is the fixed lossy re-encode quality (0.7 on a 0-1 scale).
	jpegQuality = 70
)

// dataURIPrefix precedes the base64 payload in pipeline output.
const dataURIPrefix = "data:image/jpeg;base64,"

// Result is the outcome of an asynchronous ingestion.
type Result struct {
	DataURI string
	Err     error
}

// Process decodes the image read from r, scales it so the dominant axis is
// at most 800 pixels with the aspect ratio preserved, re-encodes it as JPEG
// at quality 70, and returns the result as a data URI. It returns an error
// when the source cannot be read or decoded; no partial result is ever
// returned. The context is consulted between the decode, scale, and encode
// stages so an abandoned upload stops early.
func Process(ctx context.Context, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	bounds := src.Bounds()
	width, height := boundedSize(bounds.Dx(), bounds.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ProcessAsync runs Process in its own goroutine and returns a one-shot
// result channel. The channel is buffered: if the caller's view has been
// torn down and nobody receives, the result is dropped silently and the
// goroutine still exits.
func ProcessAsync(ctx context.Context, r io.Reader) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		uri, err := Process(ctx, r)
		ch <- Result{DataURI: uri, Err: err}
	}()

	return ch
}

// boundedSize clamps the dominant axis to maxDimension and scales the other
// axis proportionally, rounding to the nearest pixel. Dimensions already
// within bounds are returned unchanged.
func boundedSize(width, height int) (int, int) {
	if width > height {
		if width > maxDimension {
			height = scaled(height, width)
			width = maxDimension
		}
	} else {
		if height > maxDimension {
			width = scaled(width, height)
			height = maxDimension
		}
	}

	return width, height
}

// scaled resizes minor proportionally to the dominant axis shrinking to
// maxDimension, never returning less than one pixel.
func scaled(minor, dominant int) int {
	v := int(math.Round(float64(minor) * maxDimension / float64(dominant)))
	if v < 1 {
		return 1
	}
	return v
}
