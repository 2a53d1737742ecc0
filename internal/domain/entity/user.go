package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person that can take either side of an appointment,
// as provider or as client. The UUID is the only identifier ever exposed
// on the wire; the surrogate ID stays internal.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// EnsureUUID assigns a reference token if one has not been set yet.
// Tokens are immutable once assigned.
func (u *User) EnsureUUID() {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
}
