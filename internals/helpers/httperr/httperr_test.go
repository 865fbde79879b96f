package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 400, StatusOf(Validation("bad input")))
	assert.Equal(t, 404, StatusOf(NotFound("gone")))
	assert.Equal(t, 409, StatusOf(Conflict("taken")))
	assert.Equal(t, 422, StatusOf(CapacityExceeded("full")))
	assert.Equal(t, 500, StatusOf(errors.New("anything else")))
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	inner := Conflict("slug already exists")
	wrapped := fmt.Errorf("provisioning failed: %w", inner)
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))

	// wrapped driver errors still classify
	wrapped := fmt.Errorf("create centre: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))
}
