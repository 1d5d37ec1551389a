package product

type CreateProductPayload struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Quantity    int64    `json:"quantity" validate:"gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

type UpdateProductPayload struct {
	Title       string   `json:"title" validate:"omitempty"`
	Description string   `json:"description" validate:"omitempty"`
	Price       float64  `json:"price" validate:"omitempty,gt=0"`
	Category    string   `json:"category" validate:"omitempty"`
	Brand       string   `json:"brand" validate:"omitempty"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

type ProductDocument struct {
	Id          string   `bson:"_id"`
	Title       string   `bson:"title"`
	Slug        string   `bson:"slug"`
	Description string   `bson:"description"`
	Price       float64  `bson:"price"`
	Category    string   `bson:"category"`
	Brand       string   `bson:"brand"`
	Quantity    int64    `bson:"quantity"`
	Images      []string `bson:"images"`
	CreatedAt   int64    `bson:"createdAt"`
	UpdatedAt   int64    `bson:"updatedAt"`
}

type ProductResponse struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Quantity    int64    `json:"quantity"`
	Images      []string `json:"images"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}

func (d *ProductDocument) ToResponse() *ProductResponse {
	return &ProductResponse{
		Id:          d.Id,
		Title:       d.Title,
		Slug:        d.Slug,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Brand:       d.Brand,
		Quantity:    d.Quantity,
		Images:      d.Images,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

const (
	SortByNewest    = "newest"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListFilter struct {
	Category string
	Brand    string
	MinPrice float64
	MaxPrice float64
	SortBy   string
	Page     int64
	Limit    int64
}

type ListResult struct {
	Products   []*ProductResponse `json:"products"`
	Total      int64              `json:"total"`
	Page       int64              `json:"page"`
	Limit      int64              `json:"limit"`
	TotalPages int64              `json:"totalPages"`
}

type SearchResult struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
}
