package product

import (
	"bytes"
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shop-api/pkg/cerror"
	"shop-api/pkg/config"
)

// Searcher maintains the product search index and answers full text
// queries against it.
type Searcher interface {
	IndexProduct(ctx context.Context, product *ProductDocument) error
	RemoveProduct(ctx context.Context, productId string) error
	SearchProducts(ctx context.Context, query string, from, size int) (*SearchResult, error)
}

type searcher struct {
	esClient *elasticsearch.Client
	index    string
}

func NewElasticsearchClient(esConfig *config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{esConfig.Url},
		Username:  esConfig.Username,
		Password:  esConfig.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	response, err := esClient.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer response.Body.Close() //nolint:errcheck

	if response.IsError() {
		return nil, fmt.Errorf("elasticsearch returned error status: %s", response.Status())
	}

	return esClient, nil
}

func NewSearcher(esClient *elasticsearch.Client, index string) Searcher {
	return &searcher{
		esClient: esClient,
		index:    index,
	}
}

func (s *searcher) IndexProduct(ctx context.Context, product *ProductDocument) error {
	body, err := json.Marshal(product.ToResponse())
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while marshal product for indexing",
			zap.Error(err),
		)
	}

	response, err := s.esClient.Index(
		s.index,
		bytes.NewReader(body),
		s.esClient.Index.WithDocumentID(product.Id),
		s.esClient.Index.WithContext(ctx),
	)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while index product",
			zap.Error(err),
		)
	}
	defer response.Body.Close() //nolint:errcheck

	if response.IsError() {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"elasticsearch returned error status while index product",
			zap.String("status", response.Status()),
		)
	}

	return nil
}

func (s *searcher) RemoveProduct(ctx context.Context, productId string) error {
	response, err := s.esClient.Delete(
		s.index,
		productId,
		s.esClient.Delete.WithContext(ctx),
	)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while remove product from index",
			zap.Error(err),
		)
	}
	defer response.Body.Close() //nolint:errcheck

	// A 404 here means the product was never indexed. Nothing to do.
	if response.IsError() && response.StatusCode != fiber.StatusNotFound {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"elasticsearch returned error status while remove product",
			zap.String("status", response.Status()),
		)
	}

	return nil
}

func (s *searcher) SearchProducts(
	ctx context.Context,
	query string,
	from, size int,
) (*SearchResult, error) {
	searchBody := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"title^2", "description", "brand", "category"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(searchBody)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while encode search query",
			zap.Error(err),
		)
	}

	response, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(s.index),
		s.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while search products",
			zap.Error(err),
		)
	}
	defer response.Body.Close() //nolint:errcheck

	if response.IsError() {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"elasticsearch returned error status while search products",
			zap.String("status", response.Status()),
		)
	}

	var searchResponse struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ProductResponse `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	err = json.NewDecoder(response.Body).Decode(&searchResponse)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode search response",
			zap.Error(err),
		)
	}

	products := make([]*ProductResponse, 0, len(searchResponse.Hits.Hits))
	for i := range searchResponse.Hits.Hits {
		products = append(products, &searchResponse.Hits.Hits[i].Source)
	}

	return &SearchResult{
		Products: products,
		Total:    searchResponse.Hits.Total.Value,
	}, nil
}
