package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"fruitshop/internal/models"
)

// sourceData is the data-source document shape: four top-level keys matching
// the entity models.
type sourceData struct {
	Products   []models.Product   `json:"products"`
	Categories []models.Category  `json:"categories"`
	Promotions []models.Promotion `json:"promotions"`
	Settings   models.Settings    `json:"settings"`
}

// Source supplies the initial catalog document.
type Source interface {
	Fetch(ctx context.Context) (sourceData, error)
}

// FileSource reads the catalog document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(context.Context) (sourceData, error) {
	var data sourceData
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return data, err
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return data, nil
}

// HTTPSource fetches the catalog document from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) (sourceData, error) {
	var data sourceData

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return data, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return data, fmt.Errorf("fetching %s: status %d", s.URL, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return data, err
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("parsing %s: %w", s.URL, err)
	}
	return data, nil
}

// Load populates the store from source. Any failure falls back to the
// built-in data set so the shop is never empty; the return value reports
// whether the fallback was used. Load never returns an error.
func (s *Store) Load(ctx context.Context, source Source) (usedFallback bool) {
	if source != nil {
		data, err := source.Fetch(ctx)
		if err == nil {
			s.mu.Lock()
			s.setData(data)
			s.mu.Unlock()
			log.Printf("[catalog] loaded %d products, %d categories, %d promotions",
				len(data.Products), len(data.Categories), len(data.Promotions))
			return false
		}
		log.Println("[catalog] data source failed, using fallback data:", err)
	}

	s.mu.Lock()
	s.setData(fallbackData())
	s.mu.Unlock()
	return true
}
