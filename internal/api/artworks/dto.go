package artworks

import (
	"fmt"
	"time"

	"kalakriti/internal/domain/artforms"
	"kalakriti/internal/domain/artworks"
)

type ImageInput struct {
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}

type DimensionsInput struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type CreateArtworkRequest struct {
	Title                string           `json:"title" binding:"required"`
	ArtForm              string           `json:"artform" binding:"required"`
	Description          string           `json:"description" binding:"required"`
	CulturalSignificance string           `json:"culturalSignificance"`
	Images               []ImageInput     `json:"images"`
	Dimensions           *DimensionsInput `json:"dimensions"`
	Medium               string           `json:"medium" binding:"required"`
	YearCreated          int              `json:"yearCreated"`
	Price                *float64         `json:"price" binding:"required"`
	Currency             string           `json:"currency"`
	IsForSale            *bool            `json:"isForSale"`
	Tags                 []string         `json:"tags"`
}

// UpdateArtworkRequest carries only the updatable fields, each optional.
// Fields outside this struct (artform, currency, featured, status, counters)
// cannot be touched through the update endpoint by construction.
type UpdateArtworkRequest struct {
	Title                *string          `json:"title"`
	Description          *string          `json:"description"`
	CulturalSignificance *string          `json:"culturalSignificance"`
	Images               []ImageInput     `json:"images"`
	Dimensions           *DimensionsInput `json:"dimensions"`
	Medium               *string          `json:"medium"`
	YearCreated          *int             `json:"yearCreated"`
	Price                *float64         `json:"price"`
	IsForSale            *bool            `json:"isForSale"`
	Tags                 []string         `json:"tags"`
}

func validateTitle(title string) (string, bool) {
	if len(title) < 2 || len(title) > 200 {
		return "Title must be 2-200 characters", false
	}
	return "", true
}

func validateDescription(desc string) (string, bool) {
	if len(desc) < 10 || len(desc) > 1000 {
		return "Description must be 10-1000 characters", false
	}
	return "", true
}

func validateYear(year int) (string, bool) {
	if year != 0 && (year < 1900 || year > time.Now().Year()) {
		return fmt.Sprintf("Year created must be between 1900 and %d", time.Now().Year()), false
	}
	return "", true
}

func validateDimensionsUnit(d *DimensionsInput) (string, bool) {
	if d != nil && d.Unit != "" && d.Unit != "cm" && d.Unit != "inches" {
		return "Dimensions unit must be cm or inches", false
	}
	return "", true
}

func (r *CreateArtworkRequest) validate() []string {
	var errs []string
	if msg, ok := validateTitle(r.Title); !ok {
		errs = append(errs, msg)
	}
	if !artforms.Valid(r.ArtForm) {
		errs = append(errs, "Invalid art form")
	}
	if msg, ok := validateDescription(r.Description); !ok {
		errs = append(errs, msg)
	}
	if len(r.CulturalSignificance) > 500 {
		errs = append(errs, "Cultural significance cannot exceed 500 characters")
	}
	if r.Medium == "" {
		errs = append(errs, "Medium is required")
	}
	if msg, ok := validateYear(r.YearCreated); !ok {
		errs = append(errs, msg)
	}
	if r.Price == nil || *r.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	}
	if msg, ok := validateDimensionsUnit(r.Dimensions); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func (r *UpdateArtworkRequest) validate() []string {
	var errs []string
	if r.Title != nil {
		if msg, ok := validateTitle(*r.Title); !ok {
			errs = append(errs, msg)
		}
	}
	if r.Description != nil {
		if msg, ok := validateDescription(*r.Description); !ok {
			errs = append(errs, msg)
		}
	}
	if r.CulturalSignificance != nil && len(*r.CulturalSignificance) > 500 {
		errs = append(errs, "Cultural significance cannot exceed 500 characters")
	}
	if r.Medium != nil && *r.Medium == "" {
		errs = append(errs, "Medium cannot be empty")
	}
	if r.YearCreated != nil {
		if msg, ok := validateYear(*r.YearCreated); !ok {
			errs = append(errs, msg)
		}
	}
	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, "Price must be a positive number")
	}
	if msg, ok := validateDimensionsUnit(r.Dimensions); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func toImages(in []ImageInput) []artworks.Image {
	out := make([]artworks.Image, 0, len(in))
	for _, img := range in {
		out = append(out, artworks.Image{URL: img.URL, Caption: img.Caption})
	}
	return out
}

func toDimensions(in *DimensionsInput) artworks.Dimensions {
	if in == nil {
		return artworks.Dimensions{}
	}
	unit := in.Unit
	if unit == "" {
		unit = "cm"
	}
	return artworks.Dimensions{Width: in.Width, Height: in.Height, Unit: unit}
}
