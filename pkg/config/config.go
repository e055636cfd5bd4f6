package config

import (
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Redis holds connection settings for the hash store backing the product
// directory and the order store.
type Redis struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
}

func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

type BookService struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8002"`
}

type ProductService struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8000"`
	Redis
}

type OrderService struct {
	HTTPAddr          string        `envconfig:"HTTP_ADDR" default:":8001"`
	ProductServiceURL string        `envconfig:"PRODUCT_SERVICE_URL" default:"http://localhost:8000"`
	LookupTimeout     time.Duration `envconfig:"PRODUCT_LOOKUP_TIMEOUT" default:"5s"`
	KafkaAddr         string        `envconfig:"KAFKA_ADDR" default:""`
	OrderEventsTopic  string        `envconfig:"ORDER_EVENTS_TOPIC" default:"order.events"`
	Redis
}

func LoadBookService() (*BookService, error) {
	var cfg BookService
	return &cfg, load(&cfg)
}

func LoadProductService() (*ProductService, error) {
	var cfg ProductService
	return &cfg, load(&cfg)
}

func LoadOrderService() (*OrderService, error) {
	var cfg OrderService
	return &cfg, load(&cfg)
}

func load(cfg any) error {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	return envconfig.Process("", cfg)
}
