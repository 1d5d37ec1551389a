package product

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"shop-api/pkg/event"
	"shop-api/pkg/logger"
)

const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

type ProductEvent struct {
	Type      string `json:"type"`
	ProductId string `json:"productId"`
	Title     string `json:"title,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Service interface {
	CreateProduct(ctx context.Context, payload *CreateProductPayload) (*ProductResponse, error)
	GetProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
	GetProductById(ctx context.Context, productId string) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, productId string, payload *UpdateProductPayload) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, productId string) error
	SearchProducts(ctx context.Context, query string, from, size int) (*SearchResult, error)
}

type service struct {
	productRepository Repository
	productSearcher   Searcher
	eventProducer     event.Producer
}

func NewService(
	productRepository Repository,
	productSearcher Searcher,
	eventProducer event.Producer,
) Service {
	return &service{
		productRepository: productRepository,
		productSearcher:   productSearcher,
		eventProducer:     eventProducer,
	}
}

func (s *service) CreateProduct(
	ctx context.Context,
	payload *CreateProductPayload,
) (*ProductResponse, error) {
	now := time.Now().UTC().Unix()
	productId, err := s.productRepository.InsertProduct(ctx, &ProductDocument{
		Id:          uuid.New().String(),
		Title:       payload.Title,
		Slug:        slug.Make(payload.Title),
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Brand:       payload.Brand,
		Quantity:    payload.Quantity,
		Images:      payload.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	product, err := s.productRepository.FindProductWithId(ctx, productId)
	if err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	s.publishEvent(ctx, &ProductEvent{
		Type:      EventProductCreated,
		ProductId: product.Id,
		Title:     product.Title,
		Timestamp: now,
	})

	return product.ToResponse(), nil
}

func (s *service) GetProducts(ctx context.Context, filter *ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}

	products, total, err := s.productRepository.FindProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, product.ToResponse())
	}

	totalPages := total / filter.Limit
	if total%filter.Limit != 0 {
		totalPages++
	}

	return &ListResult{
		Products:   responses,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetProductById(ctx context.Context, productId string) (*ProductResponse, error) {
	product, err := s.productRepository.FindProductWithId(ctx, productId)
	if err != nil {
		return nil, err
	}

	return product.ToResponse(), nil
}

func (s *service) UpdateProduct(
	ctx context.Context,
	productId string,
	payload *UpdateProductPayload,
) (*ProductResponse, error) {
	update := &ProductDocument{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Brand:       payload.Brand,
		Quantity:    -1,
		Images:      payload.Images,
	}
	if payload.Title != "" {
		update.Slug = slug.Make(payload.Title)
	}
	if payload.Quantity != nil {
		update.Quantity = *payload.Quantity
	}

	product, err := s.productRepository.UpdateProductById(ctx, productId, update)
	if err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	s.publishEvent(ctx, &ProductEvent{
		Type:      EventProductUpdated,
		ProductId: product.Id,
		Title:     product.Title,
		Timestamp: time.Now().UTC().Unix(),
	})

	return product.ToResponse(), nil
}

func (s *service) DeleteProduct(ctx context.Context, productId string) error {
	err := s.productRepository.DeleteProductById(ctx, productId)
	if err != nil {
		return err
	}

	err = s.productSearcher.RemoveProduct(ctx, productId)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"error occurred while remove product from search index",
			zap.String("productId", productId),
			zap.Error(err),
		)
	}

	s.publishEvent(ctx, &ProductEvent{
		Type:      EventProductDeleted,
		ProductId: productId,
		Timestamp: time.Now().UTC().Unix(),
	})

	return nil
}

func (s *service) SearchProducts(
	ctx context.Context,
	query string,
	from, size int,
) (*SearchResult, error) {
	return s.productSearcher.SearchProducts(ctx, query, from, size)
}

// indexProduct is best effort. The catalog in mongodb stays the source
// of truth when the search cluster is unavailable.
func (s *service) indexProduct(ctx context.Context, product *ProductDocument) {
	err := s.productSearcher.IndexProduct(ctx, product)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"error occurred while index product",
			zap.String("productId", product.Id),
			zap.Error(err),
		)
	}
}

func (s *service) publishEvent(ctx context.Context, productEvent *ProductEvent) {
	err := s.eventProducer.PublishEvent(
		ctx,
		event.TopicProductEvents,
		productEvent.ProductId,
		productEvent,
	)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"error occurred while publish product event",
			zap.String("eventType", productEvent.Type),
			zap.Error(err),
		)
	}
}
