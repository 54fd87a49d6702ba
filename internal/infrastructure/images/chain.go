package images

import (
	"context"
	"log/slog"
	"strings"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

// fallbackRule maps a keyword substring onto a locally served asset.
// Rules are evaluated in order; the first match wins.
type fallbackRule struct {
	pattern string
	path    string
}

var fallbackRules = []fallbackRule{
	{"bad", "/static/images/innenausstattung/bathroom.jpg"},
	{"bathroom", "/static/images/innenausstattung/bathroom.jpg"},
	{"küche", "/static/images/fliesen/subway-tiles.jpg"},
	{"kitchen", "/static/images/fliesen/subway-tiles.jpg"},
	{"marmor", "/static/images/fliesen/marmor.jpg"},
	{"marble", "/static/images/fliesen/marmor.jpg"},
	{"naturstein", "/static/images/fliesen/naturstein.jpg"},
	{"stone", "/static/images/fliesen/naturstein.jpg"},
	{"mosaik", "/static/images/fliesen/mosaic.jpg"},
	{"mosaic", "/static/images/fliesen/mosaic.jpg"},
}

const defaultFallbackImage = "/static/images/fliesen/grossformat.jpg"

// Chain tries stock-photo providers in priority order and falls back to a
// locally owned asset when none of them delivers. Provider failures never
// propagate past the chain.
type Chain struct {
	providers []ports.ImageProvider
	logger    *slog.Logger
}

// NewChain wires the ordered provider list.
func NewChain(providers []ports.ImageProvider, log *slog.Logger) *Chain {
	return &Chain{providers: providers, logger: log}
}

// Resolve returns an image for the article. Providers without credentials are
// skipped; any provider error falls through to the next entry.
func (c *Chain) Resolve(ctx context.Context, title string, keywords []string) domain.ImageResult {
	for _, provider := range c.providers {
		if !provider.Available() {
			continue
		}

		result, err := provider.Fetch(ctx, title, keywords)
		if err != nil {
			c.warn("image provider failed", "provider", provider.Name(), "error", err)
			continue
		}
		return result
	}

	return localFallback(keywords)
}

// localFallback picks an owned asset by keyword substring. Own photos carry
// no attribution.
func localFallback(keywords []string) domain.ImageResult {
	combined := strings.ToLower(strings.Join(keywords, " "))

	img := defaultFallbackImage
	for _, rule := range fallbackRules {
		if strings.Contains(combined, rule.pattern) {
			img = rule.path
			break
		}
	}

	return domain.ImageResult{
		URL:    img,
		Thumb:  img,
		Author: "Hermitage Frankfurt",
		Source: "Lokal",
	}
}

func (c *Chain) warn(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
