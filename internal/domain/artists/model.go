package artists

import (
	"time"

	"kalakriti/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Award struct {
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Organization string `json:"organization"`
}

type Exhibition struct {
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

type Artist struct {
	ID     string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string      `gorm:"type:uuid;not null;uniqueIndex:idx_artists_user" json:"userId"`
	User   *users.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ArtistName string `gorm:"not null" json:"artistName"`

	// Stored as a JSON-encoded text column so set-membership filters stay
	// portable across postgres and the sqlite test database.
	Specializations []string `gorm:"serializer:json;type:text" json:"specializations"`

	Experience  int                               `gorm:"not null;default:0" json:"experience"`
	Awards      datatypes.JSONSlice[Award]        `json:"awards"`
	Exhibitions datatypes.JSONSlice[Exhibition]   `json:"exhibitions"`
	SocialLinks datatypes.JSONType[SocialLinks]   `json:"socialLinks"`

	ArtworkCount int     `gorm:"not null;default:0" json:"artworkCount"`
	Followers    int     `gorm:"not null;default:0" json:"followers"`
	Rating       float64 `gorm:"not null;default:0" json:"rating"`
	TotalSales   int     `gorm:"not null;default:0" json:"totalSales"`
	IsVerified   bool    `gorm:"not null;default:false" json:"isVerified"`
	// No default tag, so an explicit false survives Create (gorm drops
	// zero-valued fields that carry a default).
	IsActive bool `gorm:"not null" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
