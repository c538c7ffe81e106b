package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/frontdesk-go-api/internal/models"
)

// openTestDB opens an isolated in-memory database per test so counts never
// leak between tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Recruiter{},
		&models.Registration{},
		&models.RegistrationStep{},
		&models.ExclusionEntry{},
		&models.NewHireOrientation{},
		&models.BadgeAppointment{},
		&models.FingerprintAppointment{},
		&models.TeamVisit{},
		&models.OrientationConfig{},
		&models.Announcement{},
	))
	return db
}
