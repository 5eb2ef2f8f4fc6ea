package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries everything the server needs from the environment.
type Config struct {
	MongoURI string
	DBName   string

	Port    string
	GinMode string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash []byte

	CloudinaryURL string

	GeminiAPIKey string
	GeminiModel  string

	// Frontend on-demand revalidation webhook. Optional; mutations become
	// local no-ops when unset.
	RevalidateURL    string
	RevalidateSecret string

	// Web push to the site owner. Optional.
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	PushSubscriber  string

	CORSOrigins []string
}

// Load reads .env (if present) and the process environment.
// Missing required variables are reported together in one error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:         os.Getenv("MONGODB_URI"),
		DBName:           getenv("DB_NAME", "portfolio"),
		Port:             getenv("PORT", "8080"),
		GinMode:          os.Getenv("GIN_MODE"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		RevalidateURL:    os.Getenv("REVALIDATE_URL"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
		VAPIDPublicKey:   os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey:  os.Getenv("VAPID_PRIVATE_KEY"),
		PushSubscriber:   getenv("PUSH_SUBSCRIBER", "mailto:admin@localhost"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	var missing []string
	for name, value := range map[string]string{
		"MONGODB_URI":    cfg.MongoURI,
		"JWT_SECRET":     cfg.JWTSecret,
		"ADMIN_USERNAME": cfg.AdminUsername,
		"CLOUDINARY_URL": cfg.CloudinaryURL,
		"GEMINI_API_KEY": cfg.GeminiAPIKey,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	// Either a precomputed bcrypt hash or a plain password to hash at boot.
	switch {
	case os.Getenv("ADMIN_PASSWORD_HASH") != "":
		cfg.AdminPasswordHash = []byte(os.Getenv("ADMIN_PASSWORD_HASH"))
	case os.Getenv("ADMIN_PASSWORD") != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(os.Getenv("ADMIN_PASSWORD")), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing ADMIN_PASSWORD: %w", err)
		}
		cfg.AdminPasswordHash = hash
	default:
		missing = append(missing, "ADMIN_PASSWORD")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
