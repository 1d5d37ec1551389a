package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
)

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	metricsPort := os.Getenv(MetricsPort)
	if metricsPort == "" {
		metricsPort = "9090"
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	kafkaConfig, err := ReadKafkaConfig()
	if err != nil {
		return nil, err
	}

	elasticsearchConfig, err := ReadElasticsearchConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    serverPort,
		MetricsPort:   metricsPort,
		Mongodb:       mongodbConfig,
		Jwt:           jwtConfig,
		Kafka:         kafkaConfig,
		Elasticsearch: elasticsearchConfig,
	}, nil
}

func (c *Config) Print() {
	_, _ = pretty.Println(c)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbUsername := os.Getenv(MongodbUsername)
	if mongodbUsername == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUsername)
	}

	mongodbPassword := os.Getenv(MongodbPassword)
	if mongodbPassword == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbPassword)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	mongodbUserCollection := os.Getenv(MongodbUserCollection)
	if mongodbUserCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUserCollection)
	}

	mongodbProductCollection := os.Getenv(MongodbProductCollection)
	if mongodbProductCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbProductCollection)
	}

	return MongodbConfig{
		Uri:      mongodbUri,
		Username: mongodbUsername,
		Password: mongodbPassword,
		Database: mongodbDatabase,
		Collections: map[string]string{
			MongodbUserCollection:    mongodbUserCollection,
			MongodbProductCollection: mongodbProductCollection,
		},
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	secret := os.Getenv(JwtSecret)
	if secret == "" {
		return JwtConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, JwtSecret)
	}

	return JwtConfig{
		Secret: []byte(secret),
	}, nil
}

func ReadKafkaConfig() (KafkaConfig, error) {
	brokers := os.Getenv(KafkaBrokers)
	if brokers == "" {
		return KafkaConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, KafkaBrokers)
	}

	return KafkaConfig{
		Brokers: strings.Split(brokers, ","),
	}, nil
}

func ReadElasticsearchConfig() (ElasticsearchConfig, error) {
	elasticsearchUrl := os.Getenv(ElasticsearchUrl)
	if elasticsearchUrl == "" {
		return ElasticsearchConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, ElasticsearchUrl)
	}

	elasticsearchUsername := os.Getenv(ElasticsearchUsername)
	if elasticsearchUsername == "" {
		return ElasticsearchConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, ElasticsearchUsername)
	}

	elasticsearchPassword := os.Getenv(ElasticsearchPassword)
	if elasticsearchPassword == "" {
		return ElasticsearchConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, ElasticsearchPassword)
	}

	productIndex := os.Getenv(ElasticsearchProductIndex)
	if productIndex == "" {
		productIndex = "products"
	}

	return ElasticsearchConfig{
		Url:          elasticsearchUrl,
		Username:     elasticsearchUsername,
		Password:     elasticsearchPassword,
		ProductIndex: productIndex,
	}, nil
}
