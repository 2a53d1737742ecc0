package usecase

import (
	"io"
	"testing"
	"time"

	"github.com/josephprado/schedjoeler-api/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database shared across the test's
// transactions. Limiting to one connection keeps every session on the
// same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.User{}, &entity.Appointment{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, firstName, lastName string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName: firstName,
		LastName:  lastName,
	}
	user.EnsureUUID()

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedAppointment(t *testing.T, db *gorm.DB, provider, client *entity.User, when time.Time, status entity.AppointmentStatus) *entity.Appointment {
	t.Helper()

	appointment := &entity.Appointment{
		DateTime:   when,
		ProviderID: provider.ID,
		ClientID:   client.ID,
		Status:     status,
	}
	appointment.EnsureUUID()

	if err := db.Omit("Provider", "Client").Create(appointment).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return appointment
}
