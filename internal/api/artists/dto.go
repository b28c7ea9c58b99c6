package artists

import (
	"kalakriti/internal/domain/artforms"
	"kalakriti/internal/domain/artists"

	"gorm.io/datatypes"
)

// UpdateProfileRequest carries the updatable profile fields, each optional.
// Counters, verification and active state are not reachable from here.
type UpdateProfileRequest struct {
	ArtistName      *string              `json:"artistName"`
	Specializations []string             `json:"specializations"`
	Experience      *int                 `json:"experience"`
	Awards          []artists.Award      `json:"awards"`
	Exhibitions     []artists.Exhibition `json:"exhibitions"`
	SocialLinks     *artists.SocialLinks `json:"socialLinks"`
}

func (r *UpdateProfileRequest) validate() []string {
	var errs []string
	if r.ArtistName != nil && (len(*r.ArtistName) < 2 || len(*r.ArtistName) > 100) {
		errs = append(errs, "Artist name must be 2-100 characters")
	}
	if r.Experience != nil && (*r.Experience < 0 || *r.Experience > 100) {
		errs = append(errs, "Experience must be between 0-100 years")
	}
	for _, s := range r.Specializations {
		if !artforms.Valid(s) {
			errs = append(errs, "Invalid specialization: "+s)
		}
	}
	return errs
}

func (r *UpdateProfileRequest) apply(a *artists.Artist) {
	if r.ArtistName != nil {
		a.ArtistName = *r.ArtistName
	}
	if r.Specializations != nil {
		a.Specializations = r.Specializations
	}
	if r.Experience != nil {
		a.Experience = *r.Experience
	}
	if r.Awards != nil {
		a.Awards = datatypes.NewJSONSlice(r.Awards)
	}
	if r.Exhibitions != nil {
		a.Exhibitions = datatypes.NewJSONSlice(r.Exhibitions)
	}
	if r.SocialLinks != nil {
		a.SocialLinks = datatypes.NewJSONType(*r.SocialLinks)
	}
}
