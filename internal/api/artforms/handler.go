package artforms

import (
	"kalakriti/internal/api/respond"
	"kalakriti/internal/domain/artforms"

	"github.com/gin-gonic/gin"
)

// GET /api/artforms serves the static cultural reference data.
func ListArtforms(c *gin.Context) {
	respond.OK(c, artforms.All())
}
