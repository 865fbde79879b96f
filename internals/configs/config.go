package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	BaseSiteDomain    string
	PlatformURL       string
	SiblingAPIURL     string
	SiblingAPIKey     string
	SiblingAppURL     string
	MidtransServerKey string
	DefaultTenantSlug string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	BaseSiteDomain = GetEnv("BASE_SITE_DOMAIN", "sites.edusitepro.co.za")
	PlatformURL = GetEnv("PLATFORM_URL", "https://app.edusitepro.co.za")
	SiblingAPIURL = GetEnv("SIBLING_API_URL")
	SiblingAPIKey = GetEnv("SIBLING_API_KEY")
	SiblingAppURL = GetEnv("SIBLING_APP_URL", "https://app.kidsconnect.co.za")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	DefaultTenantSlug = GetEnv("DEFAULT_TENANT_SLUG")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if SiblingAPIURL == "" {
		log.Println("⚠️ SIBLING_API_URL is not set, sibling notifications disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// SyncTargetOrgIDs reads SYNC_ORG_IDS (comma separated). Empty means "all".
func SyncTargetOrgIDs() []string {
	raw := strings.TrimSpace(GetEnv("SYNC_ORG_IDS"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
