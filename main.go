package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"shop-api/internal/auth"
	"shop-api/internal/product"
	"shop-api/internal/user"
	"shop-api/pkg/config"
	"shop-api/pkg/event"
	"shop-api/pkg/jwt_generator"
	"shop-api/pkg/logger"
	"shop-api/pkg/metrics"
	"shop-api/pkg/server"
)

func main() {
	logWithProductionConfig, _ := zap.NewProduction()
	log := logWithProductionConfig.Sugar()
	defer logWithProductionConfig.Sync() //nolint:errcheck

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err := godotenv.Load()
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	ctx := context.Background()
	mongoDbClient, err := setupMongodbClient(cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Fatalw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient, ctx)

	eventProducer := event.NewProducer(cfg.Kafka)
	defer eventProducer.Close() //nolint:errcheck

	esClient, err := product.NewElasticsearchClient(&cfg.Elasticsearch)
	if err != nil {
		log.Fatalw(
			"failed to create elasticsearch client",
			zap.Error(err),
		)
	}
	productSearcher := product.NewSearcher(esClient, cfg.Elasticsearch.ProductIndex)

	userRepository := user.NewRepository(mongoDbClient, &cfg.Mongodb)
	err = userRepository.EnsureIndexes(ctx)
	if err != nil {
		log.Fatalw(
			"failed to create user indexes",
			zap.Error(err),
		)
	}
	userService := user.NewService(userRepository, jwtGenerator, eventProducer)
	guard := auth.NewGuard(userService, jwtGenerator)
	userHandler := user.NewHandler(userService, guard)

	productRepository := product.NewRepository(mongoDbClient, &cfg.Mongodb)
	err = productRepository.EnsureIndexes(ctx)
	if err != nil {
		log.Fatalw(
			"failed to create product indexes",
			zap.Error(err),
		)
	}
	productService := product.NewService(productRepository, productSearcher, eventProducer)
	productHandler := product.NewHandler(productService, guard)

	tokenCleaner, err := user.NewCleaner(userRepository, log)
	if err != nil {
		log.Fatalw(
			"failed to create refresh token cleaner",
			zap.Error(err),
		)
	}
	tokenCleaner.Start()
	defer tokenCleaner.Stop()

	handlers := []server.Handler{userHandler, productHandler}
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logMiddleware)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	go serveMetrics(cfg.MetricsPort, log)

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			panic(err)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func serveMetrics(port string, log *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	err := http.ListenAndServe(":"+port, mux)
	if err != nil {
		log.Errorw(
			"metrics listener stopped",
			zap.Error(err),
		)
	}
}

func setupMongodbClient(cfg *config.Config) (*mongo.Client, error) {
	mongodbCredential := options.Credential{
		Username: cfg.Mongodb.Username,
		Password: cfg.Mongodb.Password,
	}
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	credentials := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetAuth(mongodbCredential).
		SetServerAPIOptions(mongodbServerAPIOptions)

	ctx := context.Background()
	mongodbClient, err := mongo.Connect(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return mongodbClient, nil
}
