package artworks_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kalakriti/config"
	"kalakriti/database"
	routes "kalakriti/internal/app/http"
	"kalakriti/internal/domain/artists"
	"kalakriti/internal/domain/artworks"
	"kalakriti/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	database.DB = db
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func signToken(t *testing.T, u users.User) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   u.ID,
		"email":     u.Email,
		"user_type": u.UserType,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response is not JSON: %s", w.Body.String())
	return w, body
}

func seedArtist(t *testing.T, name string, specializations ...string) (users.User, artists.Artist) {
	t.Helper()
	user := users.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		UserType: users.TypeArtist,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	artist := artists.Artist{
		UserID:          user.ID,
		ArtistName:      name + " Studio",
		Specializations: specializations,
		IsActive:        true,
	}
	require.NoError(t, database.DB.Create(&artist).Error)
	return user, artist
}

func seedCustomer(t *testing.T, name string) users.User {
	t.Helper()
	user := users.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		UserType: users.TypeCustomer,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedArtwork(t *testing.T, artist artists.Artist, title, artform string, price float64, status string) artworks.Artwork {
	t.Helper()
	artwork := artworks.Artwork{
		Title:       title,
		ArtistID:    artist.ID,
		ArtForm:     artform,
		Description: "A handcrafted piece in the " + artform + " tradition.",
		Medium:      "Natural pigments on cloth",
		Price:       price,
		Currency:    "INR",
		IsForSale:   true,
		Status:      status,
	}
	require.NoError(t, database.DB.Create(&artwork).Error)
	return artwork
}

func dataList(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()
	list, ok := body["data"].([]interface{})
	require.True(t, ok, "expected data array, got %T", body["data"])
	return list
}

func titlesOf(list []interface{}) []string {
	titles := make([]string, 0, len(list))
	for _, item := range list {
		titles = append(titles, item.(map[string]interface{})["title"].(string))
	}
	return titles
}

func TestListArtworksShowsOnlyApproved(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")

	seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)
	seedArtwork(t, artist, "Waiting Piece", "Warli", 3000, artworks.StatusPending)
	seedArtwork(t, artist, "Rejected Piece", "Warli", 2000, artworks.StatusRejected)

	w, body := doJSON(t, r, http.MethodGet, "/api/artworks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])

	list := dataList(t, body)
	assert.Equal(t, []string{"Harvest Dance"}, titlesOf(list))

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])
}

func TestListArtworksFilters(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")

	seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)
	seedArtwork(t, artist, "Peacock Pair", "Madhubani", 9000, artworks.StatusApproved)
	seedArtwork(t, artist, "Village Morning", "Warli", 12000, artworks.StatusApproved)

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"by artform", "?artform=Madhubani", []string{"Peacock Pair"}},
		{"price range", "?minPrice=5000&maxPrice=10000", []string{"Peacock Pair"}},
		{"min price only", "?minPrice=9000&sort=price", []string{"Peacock Pair", "Village Morning"}},
		{"search is case-insensitive", "?search=PEACOCK", []string{"Peacock Pair"}},
		{"search matches nothing", "?search=bronze", []string{}},
		{"search wildcard is literal", "?search=%25", []string{}},
		{"search underscore is literal", "?search=_eacock", []string{}},
		{"sort by price descending", "?sort=price&order=desc", []string{"Village Morning", "Peacock Pair", "Harvest Dance"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := doJSON(t, r, http.MethodGet, "/api/artworks"+tc.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, titlesOf(dataList(t, body)))

			pagination := body["pagination"].(map[string]interface{})
			assert.Equal(t, float64(len(tc.want)), pagination["total"])
		})
	}
}

func TestListArtworksPagePastEnd(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	for i := 0; i < 3; i++ {
		seedArtwork(t, artist, fmt.Sprintf("Piece %d", i), "Warli", 1000, artworks.StatusApproved)
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/artworks?limit=2&page=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, dataList(t, body))
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.Equal(t, float64(5), pagination["current"])
}

func TestGetArtworkCountsViews(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	w, body := doJSON(t, r, http.MethodGet, "/api/artworks/"+artwork.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["views"])

	_, body = doJSON(t, r, http.MethodGet, "/api/artworks/"+artwork.ID, "", nil)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["views"])

	var stored artworks.Artwork
	require.NoError(t, database.DB.First(&stored, "id = ?", artwork.ID).Error)
	assert.Equal(t, 2, stored.Views)
}

func TestGetArtworkNotFound(t *testing.T) {
	r := setupServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/artworks/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestCreateArtwork(t *testing.T) {
	r := setupServer(t)
	user, artist := seedArtist(t, "meena")
	token := signToken(t, user)

	payload := map[string]interface{}{
		"title":       "Harvest Dance",
		"artform":     "Warli",
		"description": "Figures circling the harvest fire, painted in rice paste.",
		"medium":      "Rice paste on mud-washed cloth",
		"price":       4500,
		"tags":        []string{"village", "harvest"},
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", body)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Harvest Dance", data["title"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "INR", data["currency"])

	var stored artists.Artist
	require.NoError(t, database.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.Equal(t, 1, stored.ArtworkCount)
}

func TestCreateArtworkNotForSalePersists(t *testing.T) {
	r := setupServer(t)
	user, _ := seedArtist(t, "meena")
	token := signToken(t, user)

	payload := map[string]interface{}{
		"title":       "Harvest Dance",
		"artform":     "Warli",
		"description": "Figures circling the harvest fire, painted in rice paste.",
		"medium":      "Rice paste on mud-washed cloth",
		"price":       4500,
		"isForSale":   false,
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", body)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["isForSale"])

	var stored artworks.Artwork
	require.NoError(t, database.DB.First(&stored, "id = ?", data["id"]).Error)
	assert.False(t, stored.IsForSale, "an explicit false must survive the create")
}

func TestCreateArtworkValidation(t *testing.T) {
	r := setupServer(t)
	user, _ := seedArtist(t, "meena")
	token := signToken(t, user)

	payload := map[string]interface{}{
		"title":       "X",
		"artform":     "Cubism",
		"description": "too short",
		"medium":      "Oil",
		"price":       -5,
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks", token, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestCreateArtworkRequiresArtist(t *testing.T) {
	r := setupServer(t)
	customer := seedCustomer(t, "ravi")
	token := signToken(t, customer)

	w, _ := doJSON(t, r, http.MethodPost, "/api/artworks", token, map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateArtworkOwnership(t *testing.T) {
	r := setupServer(t)
	ownerUser, owner := seedArtist(t, "meena")
	otherUser, _ := seedArtist(t, "lakshmi")
	artwork := seedArtwork(t, owner, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	// a non-owner gets a 404, indistinguishable from a missing artwork
	w, _ := doJSON(t, r, http.MethodPut, "/api/artworks/"+artwork.ID, signToken(t, otherUser),
		map[string]interface{}{"price": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body := doJSON(t, r, http.MethodPut, "/api/artworks/"+artwork.ID, signToken(t, ownerUser),
		map[string]interface{}{"price": 9999})
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(9999), data["price"])
	assert.Equal(t, "Harvest Dance", data["title"], "fields not in the request stay untouched")
}

func TestDeleteArtworkAdjustsCount(t *testing.T) {
	r := setupServer(t)
	user, artist := seedArtist(t, "meena")
	token := signToken(t, user)
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	require.NoError(t, database.DB.Model(&artists.Artist{}).
		Where("id = ?", artist.ID).
		UpdateColumn("artwork_count", 1).Error)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/artworks/"+artwork.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored artists.Artist
	require.NoError(t, database.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.Equal(t, 0, stored.ArtworkCount)

	// deleting again is a 404
	w, _ = doJSON(t, r, http.MethodDelete, "/api/artworks/"+artwork.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArtworkCountNeverNegative(t *testing.T) {
	r := setupServer(t)
	user, artist := seedArtist(t, "meena")
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	// counter already at zero despite the existing artwork row
	w, _ := doJSON(t, r, http.MethodDelete, "/api/artworks/"+artwork.ID, signToken(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored artists.Artist
	require.NoError(t, database.DB.First(&stored, "id = ?", artist.ID).Error)
	assert.Equal(t, 0, stored.ArtworkCount)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)
	customer := seedCustomer(t, "ravi")
	token := signToken(t, customer)

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["likes"])

	var favCount int64
	database.DB.Model(&users.Favorite{}).
		Where("user_id = ? AND artwork_id = ?", customer.ID, artwork.ID).
		Count(&favCount)
	assert.Equal(t, int64(1), favCount)

	// second toggle undoes the first
	w, body = doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/like", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["likes"])

	database.DB.Model(&users.Favorite{}).
		Where("user_id = ? AND artwork_id = ?", customer.ID, artwork.ID).
		Count(&favCount)
	assert.Equal(t, int64(0), favCount)
}

func TestToggleLikeNeverNegative(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)
	customer := seedCustomer(t, "ravi")

	// membership row exists but the counter is already zero
	require.NoError(t, database.DB.Create(&users.Favorite{UserID: customer.ID, ArtworkID: artwork.ID}).Error)

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/like", signToken(t, customer), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["liked"])
	assert.Equal(t, float64(0), body["likes"])
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	w, _ := doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFeaturedArtworks(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")

	popular := seedArtwork(t, artist, "Popular Piece", "Warli", 4500, artworks.StatusApproved)
	quiet := seedArtwork(t, artist, "Quiet Piece", "Warli", 3000, artworks.StatusApproved)
	seedArtwork(t, artist, "Plain Piece", "Warli", 2000, artworks.StatusApproved)
	pending := seedArtwork(t, artist, "Pending Piece", "Warli", 1000, artworks.StatusPending)

	for _, a := range []artworks.Artwork{popular, quiet, pending} {
		require.NoError(t, database.DB.Model(&artworks.Artwork{}).
			Where("id = ?", a.ID).
			UpdateColumn("featured", true).Error)
	}
	require.NoError(t, database.DB.Model(&artworks.Artwork{}).
		Where("id = ?", popular.ID).
		UpdateColumn("likes", 10).Error)

	w, body := doJSON(t, r, http.MethodGet, "/api/artworks/featured/list", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Popular Piece", "Quiet Piece"}, titlesOf(dataList(t, body)))
}

func TestPurchaseArtworkStub(t *testing.T) {
	r := setupServer(t)
	_, artist := seedArtist(t, "meena")
	customer := seedCustomer(t, "ravi")
	token := signToken(t, customer)

	artwork := seedArtwork(t, artist, "Harvest Dance", "Warli", 4500, artworks.StatusApproved)

	w, body := doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/purchase", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["message"], "contact the artist")

	require.NoError(t, database.DB.Model(&artworks.Artwork{}).
		Where("id = ?", artwork.ID).
		UpdateColumn("is_for_sale", false).Error)

	w, body = doJSON(t, r, http.MethodPost, "/api/artworks/"+artwork.ID+"/purchase", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}
