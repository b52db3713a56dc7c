package mylab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

// Provider — HTTP-фасад поискового API каталога оборудования.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) catalog.CatalogProvider {
	return &Provider{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
		logger:     logger.Named("mylab_provider"),
	}
}

func (p *Provider) Name() string {
	return "mylab"
}

type searchResponse struct {
	Results []catalog.RawEquipmentRecord `json:"results"`
}

// SearchEquipments выполняет GET {base}/equipments/search. term уходит
// одноимённым параметром, каждый выбранный фасет — параметром filter[<name>].
func (p *Provider) SearchEquipments(ctx context.Context, term string, filters map[string][]string) ([]catalog.RawEquipmentRecord, error) {
	query := url.Values{}
	if term != "" {
		query.Set("term", term)
	}
	for name, options := range filters {
		for _, opt := range options {
			query.Add(fmt.Sprintf("filter[%s]", name), opt)
		}
	}

	rawData, err := p.fetchData(ctx, "/equipments/search", query)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска в каталоге: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(rawData, &resp); err != nil {
		return nil, fmt.Errorf("ошибка парсинга ответа каталога: %w", err)
	}
	p.logger.Debug("Каталог вернул записи",
		zap.String("term", term),
		zap.Int("count", len(resp.Results)),
	)
	return resp.Results, nil
}

// GetFilters выполняет GET {base}/equipments/filters и отдаёт фасеты как есть.
func (p *Provider) GetFilters(ctx context.Context) ([]entities.ExternalFilter, error) {
	rawData, err := p.fetchData(ctx, "/equipments/filters", nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения фасетов каталога: %w", err)
	}

	var filters []entities.ExternalFilter
	if err := json.Unmarshal(rawData, &filters); err != nil {
		return nil, fmt.Errorf("ошибка парсинга фасетов каталога: %w", err)
	}
	return filters, nil
}

func (p *Provider) fetchData(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	reqURL := p.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("каталог ответил статусом %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
