package config

const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"

	ServerPort  = "SERVER_PORT"
	MetricsPort = "METRICS_PORT"

	MongodbUri               = "MONGODB_URI"
	MongodbUsername          = "MONGODB_USERNAME"
	MongodbPassword          = "MONGODB_PASSWORD"
	MongodbDatabase          = "MONGODB_DATABASE"
	MongodbUserCollection    = "MONGODB_USER_COLLECTION"
	MongodbProductCollection = "MONGODB_PRODUCT_COLLECTION"

	JwtSecret = "JWT_SECRET"

	KafkaBrokers = "KAFKA_BROKERS"

	ElasticsearchUrl          = "ELASTICSEARCH_URL"
	ElasticsearchUsername     = "ELASTICSEARCH_USERNAME"
	ElasticsearchPassword     = "ELASTICSEARCH_PASSWORD"
	ElasticsearchProductIndex = "ELASTICSEARCH_PRODUCT_INDEX"
)

type Config struct {
	ServerPort    string
	MetricsPort   string
	Mongodb       MongodbConfig
	Jwt           JwtConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
}

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

type JwtConfig struct {
	Secret []byte
}

type KafkaConfig struct {
	Brokers []string
}

type ElasticsearchConfig struct {
	Url          string
	Username     string
	Password     string
	ProductIndex string
}
