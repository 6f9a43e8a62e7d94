package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is used when neither signup nor the federated profile
// supplies a picture.
const DefaultAvatar = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Fullname       string    `gorm:"not null"`
	Avatar         string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
