package seeds

import (
	"log"

	siteModel "edusitepro_backend/internals/features/sites/model"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// RunAllSeeds loads static reference data. Safe to re-run: every seed keys on
// a unique column and skips rows that already exist.
func RunAllSeeds(db *gorm.DB) {
	SeedSiteTemplates(db)
}

// SeedSiteTemplates fills the template registry that provisioning picks from.
func SeedSiteTemplates(db *gorm.DB) {
	templates := []siteModel.SiteTemplateModel{
		{
			SiteTemplateKey:         "default",
			SiteTemplateName:        "Default",
			SiteTemplateDescription: strPtr("Clean layout with a hero banner and feature cards."),
		},
		{
			SiteTemplateKey:         "playful",
			SiteTemplateName:        "Playful",
			SiteTemplateDescription: strPtr("Bright colours and rounded shapes for early learning centres."),
		},
		{
			SiteTemplateKey:         "classic",
			SiteTemplateName:        "Classic",
			SiteTemplateDescription: strPtr("Understated serif layout for established schools."),
		},
	}

	for _, tpl := range templates {
		err := db.Where("site_template_key = ?", tpl.SiteTemplateKey).
			FirstOrCreate(&tpl).Error
		if err != nil {
			log.Printf("[WARN] seed site template %q: %v", tpl.SiteTemplateKey, err)
		}
	}
	log.Println("[INFO] Site template registry seeded")
}
