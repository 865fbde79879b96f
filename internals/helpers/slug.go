package helper

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9-]+`)
	reHyphens  = regexp.MustCompile(`-+`)
)

// NormalizeSlug turns free text into a slug [a-z0-9-]: lowercase, every run of
// other characters becomes a single hyphen, hyphens trimmed at both ends.
// Idempotent: NormalizeSlug(NormalizeSlug(s)) == NormalizeSlug(s).
func NormalizeSlug(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DefaultSubdomain builds the canonical subdomain for a tenant slug.
func DefaultSubdomain(slug, baseDomain string) string {
	return slug + "." + baseDomain
}

// SlugExists probes one table/column for an exact slug match. The DB unique
// constraint remains the real guarantee; this only gives callers a friendlier
// error before they attempt the insert.
func SlugExists(db *gorm.DB, table, column, slug string) (bool, error) {
	var count int64
	err := db.Table(table).
		Where(fmt.Sprintf("%s = ?", column), slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureUniqueSlug returns base if free, otherwise tries base with a random
// 4-digit suffix up to 3 times before giving up.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	taken, err := SlugExists(db, table, column, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 0; i < 3; i++ {
		candidate := fmt.Sprintf("%s-%d", base, 1000+rand.Intn(9000))
		taken, err = SlugExists(db, table, column, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("could not find a free slug for " + base)
}
