package users

import (
	"net/http"

	"kalakriti/database"
	"kalakriti/internal/api/respond"
	"kalakriti/internal/apperrors"
	"kalakriti/internal/domain/artists"
	"kalakriti/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// GET /api/auth/me
//
// The favorites/following id sets ride along so the client can render
// liked/followed state without extra round trips; the membership rows are
// the authoritative record of that state.
func GetCurrentUser(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		respond.Err(c, apperrors.NotFound("User not found"))
		return
	}

	favorites := []string{}
	if err := database.DB.Model(&users.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("artwork_id", &favorites).Error; err != nil {
		respond.ServerError(c, "Failed to load favorites")
		return
	}

	following := []string{}
	if err := database.DB.Model(&users.Follow{}).
		Where("user_id = ?", userID).
		Pluck("artist_id", &following).Error; err != nil {
		respond.ServerError(c, "Failed to load following")
		return
	}

	data := gin.H{
		"user":      user,
		"favorites": favorites,
		"following": following,
	}

	if user.UserType == users.TypeArtist {
		var artist artists.Artist
		if err := database.DB.Where("user_id = ?", userID).First(&artist).Error; err == nil {
			data["artist"] = artist
		}
	}

	respond.OK(c, data)
}
