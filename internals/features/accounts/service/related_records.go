package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RelatedRecord declares a table whose rows belong to a user account. New
// user-owned tables are registered here instead of being hard-coded into the
// deletion path.
type RelatedRecord struct {
	Entity      string // table name
	OwnerColumn string // uuid column referencing users.user_id
	Optional    bool   // optional rows never block account deletion
}

// RelatedRecords is the authoritative list of user-owned tables.
var RelatedRecords = []RelatedRecord{
	{Entity: "profiles", OwnerColumn: "profile_user_id", Optional: false},
	{Entity: "students", OwnerColumn: "student_user_id", Optional: true},
}

type RelatedRecordCount struct {
	Entity   string `json:"entity"`
	Count    int64  `json:"count"`
	Optional bool   `json:"optional"`
}

// CountRelatedRecords walks the registry and reports how many rows each
// entity holds for the given user. Used as a pre-deletion preview.
func CountRelatedRecords(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]RelatedRecordCount, error) {
	out := make([]RelatedRecordCount, 0, len(RelatedRecords))
	for _, rec := range RelatedRecords {
		var count int64
		err := db.WithContext(ctx).Table(rec.Entity).
			Where(fmt.Sprintf("%s = ?", rec.OwnerColumn), userID).
			Count(&count).Error
		if err != nil {
			// optional entities may not have a table in every deployment
			if rec.Optional {
				logrus.WithField("entity", rec.Entity).WithError(err).
					Warn("skipping optional related entity")
				continue
			}
			return nil, fmt.Errorf("count %s: %w", rec.Entity, err)
		}
		out = append(out, RelatedRecordCount{Entity: rec.Entity, Count: count, Optional: rec.Optional})
	}
	return out, nil
}

// HasBlockingRelatedRecords reports whether any non-optional entity still
// holds rows for the user.
func HasBlockingRelatedRecords(counts []RelatedRecordCount) bool {
	for _, c := range counts {
		if !c.Optional && c.Count > 0 {
			return true
		}
	}
	return false
}
