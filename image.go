// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

import (
	"context"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// defaultProbeTimeout bounds remote image header downloads.
const defaultProbeTimeout = 10 * time.Second

// ImageSize is pixel size of an image resource.
type ImageSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// ImageProbe resolves pixel dimensions of an image reference.
// Implementations report absence through ok=false and never fail loudly.
// A canceled ctx makes blocking lookups give up.
type ImageProbe interface {
	Probe(ctx context.Context, ref string) (size ImageSize, ok bool)
}

// DefaultProbe reads local files and http(s) URLs and decodes image headers.
type DefaultProbe struct {
	// Client is used for remote references; nil uses a client with Timeout.
	Client *http.Client
	// Timeout applies when Client is nil.
	Timeout time.Duration
}

// Probe implements ImageProbe.
func (p DefaultProbe) Probe(ctx context.Context, ref string) (ImageSize, bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	ref = strings.TrimSpace(ref)
	if ref == "" || ctx.Err() != nil {
		return ImageSize{}, false
	}

	if isRemoteRef(ref) {
		return p.probeRemote(ctx, ref)
	}

	file, err := os.Open(strings.TrimPrefix(ref, "file://"))
	if err != nil {
		return ImageSize{}, false
	}
	defer func() {
		_ = file.Close()
	}()

	return decodeImageSize(file)
}

// probeRemote downloads an image header over HTTP.
func (p DefaultProbe) probeRemote(ctx context.Context, ref string) (ImageSize, bool) {
	client := p.Client
	if client == nil {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = defaultProbeTimeout
		}

		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return ImageSize{}, false
	}

	resp, err := client.Do(req)
	if err != nil {
		return ImageSize{}, false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return ImageSize{}, false
	}

	return decodeImageSize(resp.Body)
}

// decodeImageSize reads only the image header.
func decodeImageSize(r io.Reader) (ImageSize, bool) {
	config, _, err := image.DecodeConfig(r)
	if err != nil || config.Width <= 0 || config.Height <= 0 {
		return ImageSize{}, false
	}

	return ImageSize{Width: config.Width, Height: config.Height}, true
}

func isRemoteRef(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// StaticProbe serves known image sizes from memory.
type StaticProbe map[string]ImageSize

// Probe implements ImageProbe.
func (p StaticProbe) Probe(_ context.Context, ref string) (ImageSize, bool) {
	size, ok := p[ref]
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return ImageSize{}, false
	}

	return size, true
}
