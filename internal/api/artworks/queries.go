package artworks

import (
	"strconv"
	"strings"

	"kalakriti/internal/domain/artworks"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListFilter is the explicit query specification for the public artwork
// listing. Nil pointer fields mean "not filtered". Scope compiles it onto a
// gorm query; every listing implicitly restricts to approved artworks.
type ListFilter struct {
	ArtForm   string
	MinPrice  *float64
	MaxPrice  *float64
	IsForSale *bool
	Featured  *bool
	Search    string
}

func ParseListFilter(c *gin.Context) ListFilter {
	var f ListFilter
	f.ArtForm = c.Query("artform")
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v := c.Query("isForSale"); v != "" {
		b := v == "true"
		f.IsForSale = &b
	}
	if v := c.Query("featured"); v != "" {
		b := v == "true"
		f.Featured = &b
	}
	f.Search = c.Query("search")
	return f
}

func (f ListFilter) Scope(db *gorm.DB) *gorm.DB {
	q := db.Where("status = ?", artworks.StatusApproved)
	if f.ArtForm != "" {
		q = q.Where("artform = ?", f.ArtForm)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.IsForSale != nil {
		q = q.Where("is_for_sale = ?", *f.IsForSale)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Search != "" {
		pat := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\'`, pat, pat, pat)
	}
	return q
}

// escapeLike neutralizes LIKE metacharacters in user input so patterns
// match the literal text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// sortColumns is the allow-list of client-sortable fields; anything else
// falls back to newest-first.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"price":       "price",
	"likes":       "likes",
	"views":       "views",
	"yearCreated": "year_created",
	"title":       "title",
}

func OrderScope(c *gin.Context) func(*gorm.DB) *gorm.DB {
	sortKey := c.Query("sort")
	column, ok := sortColumns[sortKey]
	return func(db *gorm.DB) *gorm.DB {
		if !ok {
			return db.Order("created_at DESC")
		}
		if c.Query("order") == "desc" {
			return db.Order(column + " DESC")
		}
		return db.Order(column + " ASC")
	}
}

// withArtist joins in the owning artist and that artist's user for
// read-only projection in responses.
func withArtist(db *gorm.DB) *gorm.DB {
	return db.Preload("Artist").Preload("Artist.User")
}
