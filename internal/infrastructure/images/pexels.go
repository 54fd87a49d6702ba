package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

const (
	pexelsEndpoint = "https://api.pexels.com/v1/search"
	pexelsPageSize = 15
)

// PexelsProvider resolves images via the Pexels search API.
type PexelsProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

var _ ports.ImageProvider = (*PexelsProvider)(nil)

// NewPexelsProvider builds the provider; an empty key leaves it unavailable.
func NewPexelsProvider(apiKey string) *PexelsProvider {
	return &PexelsProvider{
		apiKey:     apiKey,
		endpoint:   pexelsEndpoint,
		httpClient: &http.Client{Timeout: imageFetchTimeout},
	}
}

// Name identifies the provider.
func (p *PexelsProvider) Name() string { return "Pexels" }

// Available reports whether a credential is configured.
func (p *PexelsProvider) Available() bool { return p.apiKey != "" }

type pexelsResponse struct {
	Photos []struct {
		URL string `json:"url"`
		Src struct {
			Large    string `json:"large"`
			Medium   string `json:"medium"`
			Original string `json:"original"`
		} `json:"src"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
	} `json:"photos"`
}

// Fetch searches landscape photos and picks the result whose index is the
// title hash reduced modulo the result count.
func (p *PexelsProvider) Fetch(ctx context.Context, title string, keywords []string) (domain.ImageResult, error) {
	query := BuildSearchQuery(title, keywords)

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprintf("%d", pexelsPageSize))
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("fetch pexels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ImageResult{}, fmt.Errorf("pexels status %s", resp.Status)
	}

	var parsed pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.ImageResult{}, fmt.Errorf("decode pexels response: %w", err)
	}

	if len(parsed.Photos) == 0 {
		return domain.ImageResult{}, fmt.Errorf("pexels returned no results for %q", query)
	}

	photo := parsed.Photos[hashIndex(title, len(parsed.Photos))]
	return domain.ImageResult{
		URL:         photo.Src.Large,
		Thumb:       photo.Src.Medium,
		Author:      photo.Photographer,
		AuthorURL:   photo.PhotographerURL,
		Source:      "Pexels",
		SourceURL:   photo.URL,
		Attribution: fmt.Sprintf("Foto von %s auf Pexels", photo.Photographer),
	}, nil
}
