package artists

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

// GET /api/artists
func ListArtists(c *gin.Context) {
	filter := ParseListFilter(c)
	page := paging.Parse(c, paging.DefaultLimit)

	var total int64
	if err := database.DB.Model(&artists.Artist{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		respond.ServerError(c, "Server error while fetching artists")
		return
	}

	list := []artists.Artist{}
	err := database.DB.Model(&artists.Artist{}).
		Select("artists.*").
		Scopes(filter.Scope, OrderScope(c), page.Scope, withUser).
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching artists")
		return
	}

	respond.List(c, list, page.Meta(total))
}

type artistWithArtworks struct {
	artists.Artist
	Artworks []artworks.Artwork `json:"artworks"`
}

// GET /api/artists/:id
func GetArtist(c *gin.Context) {
	var artist artists.Artist
	err := database.DB.Scopes(withUser).First(&artist, "id = ?", c.Param("id")).Error
	if err != nil || !artist.IsActive {
		respond.Err(c, apperrors.NotFound("Artist not found"))
		return
	}

	recent := []artworks.Artwork{}
	err = database.DB.
		Where("artist_id = ? AND status = ?", artist.ID, artworks.StatusApproved).
		Order("created_at DESC").
		Limit(12).
		Find(&recent).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching artist")
		return
	}

	respond.OK(c, artistWithArtworks{Artist: artist, Artworks: recent})
}

// PUT /api/artists/profile
func UpdateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var artist artists.Artist
	if err := database.DB.Where("user_id = ?", userID).First(&artist).Error; err != nil {
		respond.Err(c, apperrors.NotFound("Artist profile not found"))
		return
	}

	var input UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.ValidationFailed(c, []string{err.Error()})
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respond.ValidationFailed(c, errs)
		return
	}

	input.apply(&artist)
	if err := database.DB.Save(&artist).Error; err != nil {
		respond.ServerError(c, "Server error while updating profile")
		return
	}

	var updated artists.Artist
	if err := database.DB.Scopes(withUser).First(&updated, "id = ?", artist.ID).Error; err != nil {
		respond.ServerError(c, "Server error while updating profile")
		return
	}

	respond.Message(c, "Artist profile updated successfully", gin.H{"data": updated})
}

// POST /api/artists/:id/follow
//
// Same dual-write shape as the like toggle: the follow membership row and
// the followers counter move inside one transaction, counter floored at
// zero. Following yourself is rejected before anything is written.
func ToggleFollow(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var artist artists.Artist
	err := database.DB.First(&artist, "id = ?", c.Param("id")).Error
	if err != nil || !artist.IsActive {
		respond.Err(c, apperrors.NotFound("Artist not found"))
		return
	}

	if artist.UserID == userID {
		respond.Err(c, apperrors.ErrSelfAction)
		return
	}

	var following bool
	var followers int
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var follow users.Follow
		err := tx.Where("user_id = ? AND artist_id = ?", userID, artist.ID).First(&follow).Error

		switch {
		case err == nil:
			// unfollow
			if err := tx.Delete(&follow).Error; err != nil {
				return err
			}
			if err := tx.Model(&artists.Artist{}).
				Where("id = ?", artist.ID).
				UpdateColumn("followers", gorm.Expr("CASE WHEN followers > 0 THEN followers - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
			following = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			// follow
			if err := tx.Create(&users.Follow{UserID: userID, ArtistID: artist.ID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&artists.Artist{}).
				Where("id = ?", artist.ID).
				UpdateColumn("followers", gorm.Expr("followers + 1")).Error; err != nil {
				return err
			}
			following = true
		default:
			return err
		}

		return tx.Model(&artists.Artist{}).
			Select("followers").
			Where("id = ?", artist.ID).
			Scan(&followers).Error
	})
	if err != nil {
		respond.ServerError(c, "Server error while processing follow")
		return
	}

	message := "Artist unfollowed"
	if following {
		message = "Artist followed"
	}
	respond.Message(c, message, gin.H{"following": following, "followers": followers})
}

// GET /api/artists/:id/artworks
func ListArtistArtworks(c *gin.Context) {
	var artist artists.Artist
	err := database.DB.First(&artist, "id = ?", c.Param("id")).Error
	if err != nil || !artist.IsActive {
		respond.Err(c, apperrors.NotFound("Artist not found"))
		return
	}

	page := paging.Parse(c, paging.DefaultLimit)

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Where("artist_id = ? AND status = ?", artist.ID, artworks.StatusApproved)
		if artform := c.Query("artform"); artform != "" {
			q = q.Where("artform = ?", artform)
		}
		if v := c.Query("isForSale"); v != "" {
			q = q.Where("is_for_sale = ?", v == "true")
		}
		return q
	}

	var total int64
	if err := database.DB.Model(&artworks.Artwork{}).Scopes(scope).Count(&total).Error; err != nil {
		respond.ServerError(c, "Server error while fetching artworks")
		return
	}

	list := []artworks.Artwork{}
	err = database.DB.Model(&artworks.Artwork{}).
		Scopes(scope, page.Scope).
		Order("created_at DESC").
		Preload("Artist").
		Preload("Artist.User").
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching artworks")
		return
	}

	respond.List(c, list, page.Meta(total))
}

// GET /api/artists/featured/list
func FeaturedArtists(c *gin.Context) {
	limit := 6
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		limit = v
	}

	list := []artists.Artist{}
	err := database.DB.Model(&artists.Artist{}).
		Where("is_verified = ? AND is_active = ? AND artwork_count > ?", true, true, 0).
		Scopes(withUser).
		Order("followers DESC, rating DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while fetching featured artists")
		return
	}

	respond.OK(c, list)
}

// GET /api/artists/search/query
func SearchArtists(c *gin.Context) {
	filter := ParseSearchFilter(c)
	page := paging.Parse(c, paging.DefaultLimit)

	var total int64
	if err := database.DB.Model(&artists.Artist{}).Scopes(filter.Scope).Count(&total).Error; err != nil {
		respond.ServerError(c, "Server error while searching artists")
		return
	}

	list := []artists.Artist{}
	err := database.DB.Model(&artists.Artist{}).
		Select("artists.*").
		Scopes(filter.Scope, page.Scope, withUser).
		Order("followers DESC, rating DESC").
		Find(&list).Error
	if err != nil {
		respond.ServerError(c, "Server error while searching artists")
		return
	}

	respond.List(c, list, page.Meta(total))
}
