package artworks

import (
	"errors"
	"net/http"
	"strconv"

	"kalakriti/database"
	"kalakriti/internal/api/paging"
	"kalakriti/internal/api/respond"
	"kalakriti/internal/apperrors"
	"kalakriti/internal/domain/artists"
	"kalakriti/internal/domain/artworks"
	"kalakriti/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// mustArtistProfile resolves the acting user's artist profile.
func mustArtistProfile(c *gin.Context) (*artists.Artist, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return nil, false
	}
	var artist artists.Artist
	if err := database.DB.Where("user_id = ?", userID).First(&artist).Error; err != nil {
		respond.Err(c, apperrors.NotFound("Artist profile not found"))
		return nil, false
	}
	return &artist, true
}

// GET /api/artworks
func ListArtworks(c *gin.Context) {
	filter := ParseListFilter(c)
	page := paging.Parse(c, paging.DefaultLimit)

	var total int64
	if err := database.DB.Model(&artworks.Artwork{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		respond.ServerError(c, "Server error while fetching artworks")
		return
	}

	list := []artworks.Artwork{}
	err := database.DB.Model(&artworks.Artwork{}).
		Scopes(filter.Scope, OrderScope(c), page.Scope, withArtist).
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching artworks")
		return
	}

	respond.List(c, list, page.Meta(total))
}

// GET /api/artworks/:id
//
// Every fetch bumps the view counter by one, atomically in the store so
// concurrent readers never lose an increment.
func GetArtwork(c *gin.Context) {
	var artwork artworks.Artwork
	err := database.DB.Scopes(withArtist).First(&artwork, "id = ?", c.Param("id")).Error
	if err != nil {
		respond.Err(c, apperrors.NotFound("Artwork not found"))
		return
	}

	err = database.DB.Model(&artworks.Artwork{}).
		Where("id = ?", artwork.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching artwork")
		return
	}
	artwork.Views++

	respond.OK(c, artwork)
}

// POST /api/artworks
func CreateArtwork(c *gin.Context) {
	artist, ok := mustArtistProfile(c)
	if !ok {
		return
	}

	var input CreateArtworkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.ValidationFailed(c, []string{err.Error()})
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respond.ValidationFailed(c, errs)
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}
	isForSale := true
	if input.IsForSale != nil {
		isForSale = *input.IsForSale
	}

	artwork := artworks.Artwork{
		Title:                input.Title,
		ArtistID:             artist.ID,
		ArtForm:              input.ArtForm,
		Description:          input.Description,
		CulturalSignificance: input.CulturalSignificance,
		Images:               datatypes.NewJSONSlice(toImages(input.Images)),
		Dimensions:           datatypes.NewJSONType(toDimensions(input.Dimensions)),
		Medium:               input.Medium,
		YearCreated:          input.YearCreated,
		Price:                *input.Price,
		Currency:             currency,
		IsForSale:            isForSale,
		Tags:                 input.Tags,
		Status:               artworks.StatusPending,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&artwork).Error; err != nil {
			return err
		}
		return tx.Model(&artists.Artist{}).
			Where("id = ?", artist.ID).
			UpdateColumn("artwork_count", gorm.Expr("artwork_count + 1")).Error
	})
	if err != nil {
		respond.ServerError(c, "Server error while creating artwork")
		return
	}

	var created artworks.Artwork
	if err := database.DB.Scopes(withArtist).First(&created, "id = ?", artwork.ID).Error; err != nil {
		respond.ServerError(c, "Server error while creating artwork")
		return
	}

	respond.Created(c, "Artwork created successfully", created)
}

func (r *UpdateArtworkRequest) apply(a *artworks.Artwork) {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.CulturalSignificance != nil {
		a.CulturalSignificance = *r.CulturalSignificance
	}
	if r.Images != nil {
		a.Images = datatypes.NewJSONSlice(toImages(r.Images))
	}
	if r.Dimensions != nil {
		a.Dimensions = datatypes.NewJSONType(toDimensions(r.Dimensions))
	}
	if r.Medium != nil {
		a.Medium = *r.Medium
	}
	if r.YearCreated != nil {
		a.YearCreated = *r.YearCreated
	}
	if r.Price != nil {
		a.Price = *r.Price
	}
	if r.IsForSale != nil {
		a.IsForSale = *r.IsForSale
	}
	if r.Tags != nil {
		a.Tags = r.Tags
	}
}

// PUT /api/artworks/:id
//
// A 404 covers both "no such artwork" and "not yours", so callers cannot
// probe for existence.
func UpdateArtwork(c *gin.Context) {
	artist, ok := mustArtistProfile(c)
	if !ok {
		return
	}

	var artwork artworks.Artwork
	err := database.DB.
		Where("id = ? AND artist_id = ?", c.Param("id"), artist.ID).
		First(&artwork).Error
	if err != nil {
		respond.Err(c, apperrors.NotFound("Artwork not found or you do not have permission to edit it"))
		return
	}

	var input UpdateArtworkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.ValidationFailed(c, []string{err.Error()})
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respond.ValidationFailed(c, errs)
		return
	}

	input.apply(&artwork)
	if err := database.DB.Save(&artwork).Error; err != nil {
		respond.ServerError(c, "Server error while updating artwork")
		return
	}

	var updated artworks.Artwork
	if err := database.DB.Scopes(withArtist).First(&updated, "id = ?", artwork.ID).Error; err != nil {
		respond.ServerError(c, "Server error while updating artwork")
		return
	}

	respond.Message(c, "Artwork updated successfully", gin.H{"data": updated})
}

// DELETE /api/artworks/:id
func DeleteArtwork(c *gin.Context) {
	artist, ok := mustArtistProfile(c)
	if !ok {
		return
	}

	var artwork artworks.Artwork
	err := database.DB.
		Where("id = ? AND artist_id = ?", c.Param("id"), artist.ID).
		First(&artwork).Error
	if err != nil {
		respond.Err(c, apperrors.NotFound("Artwork not found or you do not have permission to delete it"))
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&artworks.Artwork{}, "id = ?", artwork.ID).Error; err != nil {
			return err
		}
		// Clamped at zero; see the like toggle for the same pattern.
		return tx.Model(&artists.Artist{}).
			Where("id = ?", artist.ID).
			UpdateColumn("artwork_count", gorm.Expr("CASE WHEN artwork_count > 0 THEN artwork_count - 1 ELSE 0 END")).Error
	})
	if err != nil {
		respond.ServerError(c, "Server error while deleting artwork")
		return
	}

	respond.Message(c, "Artwork deleted successfully", nil)
}

// POST /api/artworks/:id/like
//
// Flips liked state relative to the current membership row. Membership and
// counter move together inside one transaction; the membership rows stay the
// source of truth and the counter is decremented with a floor of zero.
func ToggleLike(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var artwork artworks.Artwork
	if err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		respond.Err(c, apperrors.NotFound("Artwork not found"))
		return
	}

	var liked bool
	var likes int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var fav users.Favorite
		err := tx.Where("user_id = ? AND artwork_id = ?", userID, artwork.ID).First(&fav).Error

		switch {
		case err == nil:
			// unlike
			if err := tx.Delete(&fav).Error; err != nil {
				return err
			}
			if err := tx.Model(&artworks.Artwork{}).
				Where("id = ?", artwork.ID).
				UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			// like
			if err := tx.Create(&users.Favorite{UserID: userID, ArtworkID: artwork.ID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&artworks.Artwork{}).
				Where("id = ?", artwork.ID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		return tx.Model(&artworks.Artwork{}).
			Select("likes").
			Where("id = ?", artwork.ID).
			Scan(&likes).Error
	})
	if err != nil {
		respond.ServerError(c, "Server error while processing like")
		return
	}

	message := "Artwork unliked"
	if liked {
		message = "Artwork liked"
	}
	respond.Message(c, message, gin.H{"liked": liked, "likes": likes})
}

// POST /api/artworks/:id/purchase
//
// Purchasing is a stub: nothing is recorded, the buyer is pointed at the
// artist instead.
func PurchaseArtwork(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	var artwork artworks.Artwork
	err := database.DB.Scopes(withArtist).
		Where("status = ?", artworks.StatusApproved).
		First(&artwork, "id = ?", c.Param("id")).Error
	if err != nil {
		respond.Err(c, apperrors.NotFound("Artwork not found"))
		return
	}

	if !artwork.IsForSale || artwork.IsSold {
		respond.Error(c, http.StatusBadRequest, "This artwork is not for sale")
		return
	}

	respond.Message(c, "Purchases are not handled online yet. Please contact the artist directly.", gin.H{
		"data": gin.H{
			"artworkId": artwork.ID,
			"price":     artwork.Price,
			"currency":  artwork.Currency,
		},
	})
}

// GET /api/artworks/featured/list
func FeaturedArtworks(c *gin.Context) {
	limit := 6
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		limit = v
	}

	list := []artworks.Artwork{}
	err := database.DB.Model(&artworks.Artwork{}).
		Where("featured = ? AND status = ? AND is_for_sale = ?", true, artworks.StatusApproved, true).
		Scopes(withArtist).
		Order("likes DESC, views DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching featured artworks")
		return
	}

	respond.OK(c, list)
}
