package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Mongo struct {
	URI      string `yaml:"MONGO_URI" env:"MONGO_URI" env-required:"true"`
	Database string `yaml:"MONGO_DBNAME" env:"MONGO_DBNAME" env-default:"merchstore"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Stripe struct {
	APIKey string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
}

// Payment selects the gateway. Mode "demo" simulates success after DemoDelay
// without contacting a processor; "live" charges through Stripe.
type Payment struct {
	Mode      string        `yaml:"PAYMENT_MODE" env:"PAYMENT_MODE" env-default:"demo"`
	DemoDelay time.Duration `yaml:"PAYMENT_DEMO_DELAY" env:"PAYMENT_DEMO_DELAY" env-default:"700ms"`
	Currency  string        `yaml:"PAYMENT_CURRENCY" env:"PAYMENT_CURRENCY" env-default:"usd"`
}

type Auth struct {
	JWTKey   string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	LoginURL string `yaml:"LOGIN_URL" env:"LOGIN_URL" env-default:"/login"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@xomerch.example"`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"XO Merch"`
}

type Cart struct {
	NoticeTTL time.Duration `yaml:"CART_NOTICE_TTL" env:"CART_NOTICE_TTL" env-default:"3s"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Mongo        Mongo        `yaml:"mongo"`
	RedisConnect RedisConnect `yaml:"redis"`
	Stripe       Stripe       `yaml:"stripe"`
	Payment      Payment      `yaml:"payment"`
	Auth         Auth         `yaml:"auth"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Cart         Cart         `yaml:"cart"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	if r.Username != "" || r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Addr, r.DB)
	}

	return fmt.Sprintf("redis://%s/%d", r.Addr, r.DB)
}
