package configs

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Koala    KoalaConfig    `mapstructure:"koala"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	MaxFileSize      int64         `mapstructure:"max_file_size"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	BootstrapServers string      `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int         `mapstructure:"retry_backoff_ms"`
	BatchSize        int         `mapstructure:"batch_size"`
	Acks             string      `mapstructure:"acks"`
	Topics           KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	InfoLog  string `mapstructure:"info_log"`
	ErrorLog string `mapstructure:"error_log"`
	WarnLog  string `mapstructure:"warn_log"`
}

type RabbitMQConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Name        string `mapstructure:"name"`
	Password    string `mapstructure:"password"`
	Queue       string `mapstructure:"queue"`
	Exchange    string `mapstructure:"exchange"`
	ConsumerTag string `mapstructure:"consumer_tag"`
}

type StorageConfig struct {
	Type string     `mapstructure:"type"`
	Bolt BoltConfig `mapstructure:"bolt"`
	Mega MegaConfig `mapstructure:"mega"`
}

type BoltConfig struct {
	Path string `mapstructure:"path"`
}

type MegaConfig struct {
	Email         string `mapstructure:"email"`
	Password      string `mapstructure:"password"`
	MainDirectory string `mapstructure:"main_directory"`
}

type KoalaConfig struct {
	TokenURL                 string `mapstructure:"token_url"`
	ClientID                 string `mapstructure:"client_id"`
	ClientSecret             string `mapstructure:"client_secret"`
	LoginCompleteRedirectURI string `mapstructure:"login_complete_redirect_uri"`
}

func LoadConfig() Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("internal/configs")
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("[DEBUG] [Gallery-Service] Config file not found; using defaults or environment variables")
		} else {
			log.Fatalf("[DEBUG] [Gallery-Service] Error reading config file: %s", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalf("[DEBUG] [Gallery-Service] Unable to decode into struct, %v", err)
	}
	docker_flag := os.Getenv("DOCKER")
	if docker_flag == "TRUE" {
		LoadDockerConfig(&config)
		log.Println("[DEBUG] [Gallery-Service] Successful Load Config (docker)")
		return config
	}
	log.Println("[DEBUG] [Gallery-Service] Successful Load Config (localhost)")
	return config
}

func LoadDockerConfig(config *Config) {
	redis := os.Getenv("REDIS_HOST")
	kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	rabbit := os.Getenv("RABBITMQ_HOST")
	db := os.Getenv("DB_HOST")
	config.Redis.Host = redis
	config.Kafka.BootstrapServers = kafka
	config.RabbitMQ.Host = rabbit
	config.Database.Host = db
}
