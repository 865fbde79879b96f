package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return gdb, mock
}

func expectOrgSourceRow(mock sqlmock.Sqlmock, id uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "organizations"`).WillReturnRows(
		sqlmock.NewRows([]string{
			"organization_id", "organization_name", "organization_slug",
			"organization_registration_open",
		}).AddRow(id.String(), "Sunny Days Organization", "sunny-days-org", true))
}

// The allow-listed columns and the ON CONFLICT key are what make re-running a
// sync refresh the row instead of duplicating it.
var orgUpsertSQL = `INSERT INTO "organizations" .+ON CONFLICT \("id"\) DO UPDATE SET ` +
	`"name"=.+"slug"=.+"type"=.+"branding_colors"=.+"registration_open"=.+"updated_at"=`

func expectOrgUpsert(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(orgUpsertSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestSyncOrganizationPushIsIdempotentUpsert(t *testing.T) {
	primary, primaryMock := newMockDB(t)
	sibling, siblingMock := newMockDB(t)
	client := NewClient(primary, sibling)
	id := uuid.New()

	// two runs, two identical upserts; the second never turns into a bare
	// insert that would violate the shared primary key
	for i := 0; i < 2; i++ {
		expectOrgSourceRow(primaryMock, id)
		expectOrgUpsert(siblingMock)
	}

	require.NoError(t, client.SyncOrganization(context.Background(), id, DirectionAToB))
	require.NoError(t, client.SyncOrganization(context.Background(), id, DirectionAToB))

	assert.NoError(t, primaryMock.ExpectationsWereMet())
	assert.NoError(t, siblingMock.ExpectationsWereMet())
}

func TestSyncOrganizationMissingSourceSkipped(t *testing.T) {
	primary, primaryMock := newMockDB(t)
	sibling, siblingMock := newMockDB(t)
	client := NewClient(primary, sibling)

	primaryMock.ExpectQuery(`SELECT \* FROM "organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}))

	require.NoError(t, client.SyncOrganization(context.Background(), uuid.New(), DirectionAToB))

	// nothing reaches the sibling side
	assert.NoError(t, primaryMock.ExpectationsWereMet())
	assert.NoError(t, siblingMock.ExpectationsWereMet())
}

func TestSyncOrganizationPullUpsertsByPrimaryKey(t *testing.T) {
	primary, primaryMock := newMockDB(t)
	sibling, siblingMock := newMockDB(t)
	client := NewClient(primary, sibling)
	id := uuid.New()

	siblingMock.ExpectQuery(`SELECT \* FROM "organizations"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "slug", "registration_open"}).
			AddRow(id.String(), "Sunny Days Organization", "sunny-days-org", true))

	primaryMock.ExpectBegin()
	primaryMock.ExpectQuery(`INSERT INTO "organizations" .+ON CONFLICT \("organization_id"\) DO UPDATE SET `+
		`"organization_name"=.+"organization_slug"=.+"organization_type"=.+`+
		`"organization_branding_colors"=.+"organization_registration_open"=.+"organization_updated_at"=.+RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{
			"organization_plan_tier", "organization_max_centres",
			"organization_status", "organization_subscription_status",
		}).AddRow("solo", 1, "active", "trialing"))
	primaryMock.ExpectCommit()

	require.NoError(t, client.SyncOrganization(context.Background(), id, DirectionBToA))

	assert.NoError(t, siblingMock.ExpectationsWereMet())
	assert.NoError(t, primaryMock.ExpectationsWereMet())
}

func TestSyncClassesPushUpsertsAllowListedColumns(t *testing.T) {
	primary, primaryMock := newMockDB(t)
	sibling, siblingMock := newMockDB(t)
	client := NewClient(primary, sibling)
	orgID := uuid.New()

	primaryMock.ExpectQuery(`SELECT \* FROM "site_classes"`).WillReturnRows(
		sqlmock.NewRows([]string{
			"site_class_id", "site_class_organization_id", "site_class_name",
			"site_class_grade_level", "site_class_academic_year",
			"site_class_capacity", "site_class_enrolled_count", "site_class_is_active",
		}).AddRow(uuid.New().String(), orgID.String(), "Grade R Red", "grade_r", 2026, 25, 18, true))

	siblingMock.ExpectBegin()
	siblingMock.ExpectExec(`INSERT INTO "classes" .+ON CONFLICT \("id"\) DO UPDATE SET `+
		`"name"=.+"grade_level"=.+"academic_year"=.+"capacity"=.+`+
		`"enrolled_count"=.+"is_active"=.+"updated_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	siblingMock.ExpectCommit()

	require.NoError(t, client.SyncClasses(context.Background(), orgID, DirectionAToB))

	assert.NoError(t, primaryMock.ExpectationsWereMet())
	assert.NoError(t, siblingMock.ExpectationsWereMet())
}

func TestSyncAllCountsFailuresWithoutAborting(t *testing.T) {
	primary, primaryMock := newMockDB(t)
	sibling, _ := newMockDB(t)
	client := NewClient(primary, sibling)

	ids := []uuid.UUID{uuid.New(), uuid.New()}

	// first org: both lookups blow up
	primaryMock.ExpectQuery(`SELECT \* FROM "organizations"`).WillReturnError(errors.New("primary down"))
	primaryMock.ExpectQuery(`SELECT \* FROM "site_classes"`).WillReturnError(errors.New("primary down"))

	// second org: nothing to sync on either entity
	primaryMock.ExpectQuery(`SELECT \* FROM "organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"organization_id"}))
	primaryMock.ExpectQuery(`SELECT \* FROM "site_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"site_class_id"}))

	failed := client.SyncAll(context.Background(), ids, DirectionAToB)
	assert.Equal(t, 2, failed)
	assert.NoError(t, primaryMock.ExpectationsWereMet())
}
