package product

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shop-api/internal/auth"
	"shop-api/pkg/cerror"
	"shop-api/pkg/logger"
	"shop-api/pkg/server"
)

type handler struct {
	productService Service
	guard          auth.Guard
	validate       *validator.Validate
}

func NewHandler(productService Service, guard auth.Guard) server.Handler {
	return &handler{
		productService: productService,
		guard:          guard,
		validate:       validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	productApi := app.Group("/api/product")

	authenticated := h.guard.RequireAuthentication()
	adminOnly := h.guard.RequireRole(auth.RoleAdmin)

	// "search" must be registered before ":id".
	productApi.Get("/search", h.SearchProducts)
	productApi.Get("/", h.GetProducts)
	productApi.Post("/", authenticated, adminOnly, h.CreateProduct)
	productApi.Get("/:id", h.GetProductById)
	productApi.Put("/:id", authenticated, adminOnly, h.UpdateProduct)
	productApi.Delete("/:id", authenticated, adminOnly, h.DeleteProduct)
}

func (h *handler) CreateProduct(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createProduct"))

	var payload CreateProductPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	product, err := h.productService.CreateProduct(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(product)
}

func (h *handler) GetProducts(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getProducts"))

	filter := &ListFilter{
		Category: ctx.Query("category"),
		Brand:    ctx.Query("brand"),
		MinPrice: ctx.QueryFloat("minPrice"),
		MaxPrice: ctx.QueryFloat("maxPrice"),
		SortBy:   ctx.Query("sortBy", SortByNewest),
		Page:     int64(ctx.QueryInt("page", 1)),
		Limit:    int64(ctx.QueryInt("limit", DefaultPageSize)),
	}

	listResult, err := h.productService.GetProducts(ctx.Context(), filter)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(listResult)
}

func (h *handler) GetProductById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getProductById"))

	product, err := h.productService.GetProductById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(product)
}

func (h *handler) UpdateProduct(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateProduct"))

	var payload UpdateProductPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	product, err := h.productService.UpdateProduct(ctx.Context(), ctx.Params("id"), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(product)
}

func (h *handler) DeleteProduct(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "deleteProduct"))

	err := h.productService.DeleteProduct(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "product deleted",
		})
}

func (h *handler) SearchProducts(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "searchProducts"))

	query := ctx.Query("q")
	if query == "" {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"search query is required",
		).SetSeverity(zap.WarnLevel)
	}

	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.QueryInt("limit", DefaultPageSize)
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	from := (page - 1) * limit

	searchResult, err := h.productService.SearchProducts(ctx.Context(), query, from, limit)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(searchResult)
}
