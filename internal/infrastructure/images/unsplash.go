package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ContentEngine/internal/domain"
	"ContentEngine/internal/ports"
)

const (
	unsplashEndpoint  = "https://api.unsplash.com/search/photos"
	unsplashPageSize  = 5
	imageFetchTimeout = 10 * time.Second
)

// UnsplashProvider resolves images via the Unsplash search API.
// Unsplash mandates author attribution for every served photo.
type UnsplashProvider struct {
	accessKey  string
	endpoint   string
	httpClient *http.Client
}

var _ ports.ImageProvider = (*UnsplashProvider)(nil)

// NewUnsplashProvider builds the provider; an empty key leaves it unavailable.
func NewUnsplashProvider(accessKey string) *UnsplashProvider {
	return &UnsplashProvider{
		accessKey:  accessKey,
		endpoint:   unsplashEndpoint,
		httpClient: &http.Client{Timeout: imageFetchTimeout},
	}
}

// Name identifies the provider.
func (p *UnsplashProvider) Name() string { return "Unsplash" }

// Available reports whether a credential is configured.
func (p *UnsplashProvider) Available() bool { return p.accessKey != "" }

type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Fetch searches landscape photos for the deterministic query and returns the
// top-ranked result with its mandatory attribution string.
func (p *UnsplashProvider) Fetch(ctx context.Context, title string, keywords []string) (domain.ImageResult, error) {
	query := BuildSearchQuery(title, keywords)

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", fmt.Sprintf("%d", unsplashPageSize))
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("fetch unsplash: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ImageResult{}, fmt.Errorf("unsplash status %s", resp.Status)
	}

	var parsed unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.ImageResult{}, fmt.Errorf("decode unsplash response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return domain.ImageResult{}, fmt.Errorf("unsplash returned no results for %q", query)
	}

	photo := parsed.Results[0]
	return domain.ImageResult{
		URL:         photo.URLs.Regular,
		Thumb:       photo.URLs.Small,
		Author:      photo.User.Name,
		AuthorURL:   photo.User.Links.HTML,
		Source:      "Unsplash",
		SourceURL:   photo.Links.HTML,
		Attribution: fmt.Sprintf("Foto von %s auf Unsplash", photo.User.Name),
	}, nil
}
