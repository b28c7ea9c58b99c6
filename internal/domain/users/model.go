package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeCustomer = "customer"
	TypeArtist   = "artist"
)

type User struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	UserType     string  `gorm:"type:varchar(20);not null;default:'customer'" json:"userType"`

	Bio          string `json:"bio,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Favorite is one "user likes artwork" membership row. The composite unique
// index makes duplicate memberships impossible; these rows, not the likes
// counter on the artwork, are the authoritative liked state.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_artwork" json:"userId"`
	ArtworkID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_artwork" json:"artworkId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Follow is one "user follows artist" membership row, mirroring Favorite.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_user_artist" json:"userId"`
	ArtistID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follows_user_artist" json:"artistId"`
	CreatedAt time.Time `json:"createdAt"`
}
