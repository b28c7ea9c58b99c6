package artists

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListFilter is the index-friendly listing path: equality filters on the
// artists table alone, except location which joins the owning user (state
// lives there). Listings always restrict to active artists.
type ListFilter struct {
	Specialization string
	Verified       *bool
	Location       string
}

func ParseListFilter(c *gin.Context) ListFilter {
	var f ListFilter
	f.Specialization = c.Query("specialization")
	if v := c.Query("verified"); v != "" {
		b := v == "true"
		f.Verified = &b
	}
	f.Location = c.Query("location")
	return f
}

// Scope carries only match clauses (WHERE and JOIN), never a projection, so
// the same scope serves both Count and the row fetch.
func (f ListFilter) Scope(db *gorm.DB) *gorm.DB {
	q := db.Where("artists.is_active = ?", true)
	if f.Specialization != "" {
		// set-membership equality against the JSON-encoded column
		q = q.Where(`artists.specializations LIKE ? ESCAPE '\'`, `%"`+escapeLike(f.Specialization)+`"%`)
	}
	if f.Verified != nil {
		q = q.Where("artists.is_verified = ?", *f.Verified)
	}
	if f.Location != "" {
		pat := "%" + escapeLike(strings.ToLower(f.Location)) + "%"
		q = q.Joins("JOIN users ON users.id = artists.user_id").
			Where(`LOWER(users.state) LIKE ? ESCAPE '\'`, pat)
	}
	return q
}

// SearchFilter is the cross-entity search path. It always joins the owning
// user, ORs the alternatives inside the q group and inside the location
// group, and ANDs the groups together. Count runs the same match scopes
// without pagination so the metadata reflects the filtered total.
type SearchFilter struct {
	Q              string
	Specialization string
	Location       string
}

func ParseSearchFilter(c *gin.Context) SearchFilter {
	return SearchFilter{
		Q:              c.Query("q"),
		Specialization: c.Query("specialization"),
		Location:       c.Query("location"),
	}
}

// Scope matches only; the row fetch adds its own projection over the join.
func (f SearchFilter) Scope(db *gorm.DB) *gorm.DB {
	q := db.Joins("JOIN users ON users.id = artists.user_id").
		Where("artists.is_active = ?", true)
	if f.Specialization != "" {
		q = q.Where(`artists.specializations LIKE ? ESCAPE '\'`, `%"`+escapeLike(f.Specialization)+`"%`)
	}
	if f.Q != "" {
		pat := "%" + escapeLike(strings.ToLower(f.Q)) + "%"
		q = q.Where(
			`LOWER(artists.artist_name) LIKE ? ESCAPE '\' OR LOWER(users.name) LIKE ? ESCAPE '\' OR LOWER(artists.specializations) LIKE ? ESCAPE '\'`,
			pat, pat, pat,
		)
	}
	if f.Location != "" {
		pat := "%" + escapeLike(strings.ToLower(f.Location)) + "%"
		q = q.Where(`LOWER(users.city) LIKE ? ESCAPE '\' OR LOWER(users.state) LIKE ? ESCAPE '\'`, pat, pat)
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

var sortColumns = map[string]string{
	"followers":    "followers",
	"rating":       "rating",
	"experience":   "experience",
	"artworkCount": "artwork_count",
	"createdAt":    "created_at",
}

func OrderScope(c *gin.Context) func(*gorm.DB) *gorm.DB {
	sortKey := c.Query("sort")
	column, ok := sortColumns[sortKey]
	return func(db *gorm.DB) *gorm.DB {
		if !ok {
			return db.Order("followers DESC")
		}
		if c.Query("order") == "desc" {
			return db.Order(column + " DESC")
		}
		return db.Order(column + " ASC")
	}
}

func withUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}
