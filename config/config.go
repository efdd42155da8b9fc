package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string   `mapstructure:"APP_PORT"`
	Env         string   `mapstructure:"ENV"`
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Appointment store: "mongo", "firestore" or "memory".
	StoreBackend            string `mapstructure:"STORE_BACKEND"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	DatabaseName            string `mapstructure:"DATABASE_NAME"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int           `mapstructure:"REDIS_QUEUE_DB"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`

	// EmailJS.
	EmailJSServiceID  string `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `mapstructure:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `mapstructure:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey string `mapstructure:"EMAILJS_PRIVATE_KEY"`
	EmailJSAPIURL     string `mapstructure:"EMAILJS_API_URL"`
	// "direct" sends inside the booking request, "queued" hands off to the worker.
	MailDelivery string `mapstructure:"MAIL_DELIVERY"`

	RemoteTimeout time.Duration `mapstructure:"REMOTE_TIMEOUT"`
	ShopTimezone  string        `mapstructure:"SHOP_TIMEZONE"`
	ShopLocation  string        `mapstructure:"SHOP_LOCATION"`

	// Admin gate.
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	AdminTokenSecret  string `mapstructure:"ADMIN_TOKEN_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", []string{"*"})
	v.SetDefault("STORE_BACKEND", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "barberia")
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("EMAILJS_SERVICE_ID", "")
	v.SetDefault("EMAILJS_TEMPLATE_ID", "")
	v.SetDefault("EMAILJS_PUBLIC_KEY", "")
	v.SetDefault("EMAILJS_PRIVATE_KEY", "")
	v.SetDefault("EMAILJS_API_URL", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("MAIL_DELIVERY", MailDeliveryDirect)
	v.SetDefault("REMOTE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHOP_TIMEZONE", "Europe/Madrid")
	v.SetDefault("SHOP_LOCATION", "Felipe IV 4 Bajo/Amara, San Sebastián")
	v.SetDefault("ADMIN_PASSWORD", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_TOKEN_SECRET", "")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// ShopLocation returns the configured shop time zone, falling back to UTC
// when the zone database does not know it.
func ShopLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.ShopTimezone)
	if err != nil {
		log.Printf("Unknown SHOP_TIMEZONE %q, using UTC: %v", AppConfig.ShopTimezone, err)
		return time.UTC
	}
	return loc
}

// StoreAccessKey reports the credential the selected appointment store needs.
// An empty value means the store is not configured.
func (c Config) StoreAccessKey() string {
	switch c.StoreBackend {
	case StoreFirestore:
		if c.FirebaseCredentialsFile != "" {
			return c.FirebaseCredentialsFile
		}
		return c.FirebaseProjectID
	case StoreMemory:
		return StoreMemory
	default:
		return c.DatabaseURL
	}
}
