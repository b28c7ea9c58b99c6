package artworks

import (
	"time"

	"kalakriti/internal/domain/artists"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type Dimensions struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Unit   string  `json:"unit,omitempty"` // "cm" | "inches"
}

type Artwork struct {
	ID       string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string          `gorm:"not null" json:"title"`
	ArtistID string          `gorm:"type:uuid;not null;index" json:"artistId"`
	Artist   *artists.Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	ArtForm              string `gorm:"column:artform;type:varchar(20);not null;index" json:"artform"`
	Description          string `gorm:"not null" json:"description"`
	CulturalSignificance string `json:"culturalSignificance,omitempty"`

	Images     datatypes.JSONSlice[Image]     `json:"images"`
	Dimensions datatypes.JSONType[Dimensions] `json:"dimensions"`

	Medium      string  `gorm:"not null" json:"medium"`
	YearCreated int     `json:"yearCreated,omitempty"`
	Price       float64 `gorm:"not null;index" json:"price"`
	Currency    string  `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	// No default tag: gorm drops zero-valued fields that carry one on
	// Create, which would turn an explicit false back into true.
	IsForSale bool `gorm:"not null" json:"isForSale"`
	IsSold    bool `gorm:"not null;default:false" json:"isSold"`

	// Searched by substring, so stored like artist specializations.
	Tags []string `gorm:"serializer:json;type:text" json:"tags"`

	Likes    int    `gorm:"not null;default:0" json:"likes"`
	Views    int    `gorm:"not null;default:0" json:"views"`
	Featured bool   `gorm:"not null;default:false" json:"featured"`
	Status   string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
