package images

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestUnsplashAvailability(t *testing.T) {
	t.Parallel()

	if NewUnsplashProvider("").Available() {
		t.Error("provider without key must be unavailable")
	}
	if !NewUnsplashProvider("k").Available() {
		t.Error("provider with key must be available")
	}
}

func TestUnsplashFetchPicksTopResult(t *testing.T) {
	t.Parallel()

	var query url.Values
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"urls":{"regular":"https://img.example/1.jpg","small":"https://img.example/1s.jpg"},
			 "links":{"html":"https://unsplash.example/1"},
			 "user":{"name":"Jane Doe","links":{"html":"https://unsplash.example/jane"}}},
			{"urls":{"regular":"https://img.example/2.jpg","small":"https://img.example/2s.jpg"},
			 "links":{"html":"https://unsplash.example/2"},
			 "user":{"name":"John Roe","links":{"html":"https://unsplash.example/john"}}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewUnsplashProvider("access-key")
	p.endpoint = srv.URL
	p.httpClient = srv.Client()

	got, err := p.Fetch(context.Background(), "Fliesen Trends 2025", []string{"Fliesen Frankfurt"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if auth != "Client-ID access-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if query.Get("per_page") != "5" || query.Get("orientation") != "landscape" {
		t.Errorf("unexpected query parameters: %v", query)
	}
	if got.URL != "https://img.example/1.jpg" || got.Author != "Jane Doe" {
		t.Errorf("must pick the top-ranked result, got %+v", got)
	}
	if got.Attribution != "Foto von Jane Doe auf Unsplash" {
		t.Errorf("attribution = %q", got.Attribution)
	}
}

func TestUnsplashFetchEmptyResultsIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(srv.Close)

	p := NewUnsplashProvider("k")
	p.endpoint = srv.URL
	p.httpClient = srv.Client()

	if _, err := p.Fetch(context.Background(), "Fliesen", nil); err == nil {
		t.Fatal("empty result set must be an error so the chain falls through")
	}
}

func TestPexelsFetchUsesHashedIndex(t *testing.T) {
	t.Parallel()

	const title = "Terrassenplatten im Vergleich"
	const photoCount = 3

	var photos string
	for i := 0; i < photoCount; i++ {
		if i > 0 {
			photos += ","
		}
		photos += fmt.Sprintf(`{"url":"https://pexels.example/%d",
			"src":{"large":"https://img.example/p%d.jpg","medium":"https://img.example/p%dm.jpg"},
			"photographer":"Fotograf %d","photographer_url":"https://pexels.example/u%d"}`, i, i, i, i, i)
	}

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"photos":[%s]}`, photos)
	}))
	t.Cleanup(srv.Close)

	p := NewPexelsProvider("pexels-key")
	p.endpoint = srv.URL
	p.httpClient = srv.Client()

	got, err := p.Fetch(context.Background(), title, nil)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	if auth != "pexels-key" {
		t.Errorf("Authorization = %q", auth)
	}

	want := hashIndex(title, photoCount)
	if got.URL != fmt.Sprintf("https://img.example/p%d.jpg", want) {
		t.Errorf("url = %q, want photo index %d", got.URL, want)
	}
	if got.Attribution != fmt.Sprintf("Foto von Fotograf %d auf Pexels", want) {
		t.Errorf("attribution = %q", got.Attribution)
	}
	if got.Source != "Pexels" {
		t.Errorf("source = %q", got.Source)
	}
}

func TestPexelsFetchErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	p := NewPexelsProvider("k")
	p.endpoint = srv.URL
	p.httpClient = srv.Client()

	if _, err := p.Fetch(context.Background(), "Fliesen", nil); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}
