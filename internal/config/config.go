package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string

	// development | production; controls error detail in responses
	AppEnv string

	// bootstrap super admin, created at startup if absent
	AdminEmail    string
	AdminPassword string

	// outbound mail; when SMTPAddr is empty sends are logged instead
	SMTPAddr string
	SMTPFrom string
	SMTPUser string
	SMTPPass string

	// optional YAML script for the chatbot; built-in script when empty
	ChatbotScript string

	// local-tier overrides for the effective profile resolution
	ProfileOverrides map[string]string
}

// profileEnv maps effective-profile fields onto their PROFILE_*/SOCIAL_*/SEO_*
// environment variables.
var profileEnv = map[string]string{
	"name":            "PROFILE_NAME",
	"email":           "PROFILE_EMAIL",
	"title":           "PROFILE_TITLE",
	"location":        "PROFILE_LOCATION",
	"bio":             "PROFILE_BIO",
	"avatar":          "PROFILE_AVATAR",
	"phone":           "PROFILE_PHONE",
	"brand":           "PROFILE_BRAND",
	"github":          "SOCIAL_GITHUB",
	"linkedin":        "SOCIAL_LINKEDIN",
	"twitter":         "SOCIAL_TWITTER",
	"website":         "SOCIAL_WEBSITE",
	"siteTitle":       "SEO_SITE_TITLE",
	"metaDescription": "SEO_META_DESCRIPTION",
	"keywords":        "SEO_KEYWORDS",
	"ogImage":         "SEO_OG_IMAGE",
	"ogTitle":         "SEO_OG_TITLE",
	"ogType":          "SEO_OG_TYPE",
}

// Load reads the environment, with .env applied first when present.
// Missing required keys panic at startup.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          mustGetenv("DATABASE_URL"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		AppEnv:               getenv("APP_ENV", "development"),
		AdminEmail:           getenv("ADMIN_EMAIL", ""),
		AdminPassword:        getenv("ADMIN_PASSWORD", ""),
		SMTPAddr:             getenv("SMTP_ADDR", ""),
		SMTPFrom:             getenv("SMTP_FROM", ""),
		SMTPUser:             getenv("SMTP_USER", ""),
		SMTPPass:             getenv("SMTP_PASS", ""),
		ChatbotScript:        getenv("CHATBOT_SCRIPT", ""),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.ProfileOverrides = map[string]string{}
	for field, env := range profileEnv {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			cfg.ProfileOverrides[field] = v
		}
	}

	cfg.JWTSecret = mustGetenv("JWT_SECRET")
	return cfg
}

func (c Config) Production() bool { return c.AppEnv == "production" }

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
