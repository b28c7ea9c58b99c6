package paging

import (
	"strconv"

	"kalakriti/internal/api/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const DefaultLimit = 12

type Params struct {
	Page  int
	Limit int
}

// Parse reads page/limit query parameters, falling back to page 1 and the
// given default limit on missing or malformed values.
func Parse(c *gin.Context, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 1 {
		p.Limit = v
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Limit)
}

// Meta builds the pagination block from the unpaginated total. A page past
// the end keeps the true totals; the data array is simply empty.
func (p Params) Meta(total int64) respond.Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return respond.Pagination{
		Current: p.Page,
		Pages:   pages,
		Total:   total,
		Limit:   p.Limit,
	}
}
