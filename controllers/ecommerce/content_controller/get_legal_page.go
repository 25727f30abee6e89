package content_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetLegalPage godoc
// @Summary Get a legal document
// @Description Terms of service, privacy policy or cookie policy by slug
// @Tags store - content
// @Produce json
// @Param slug path string true "Document slug" Enums(terms-of-service, privacy-policy, cookie-policy)
// @Success 200 {object} models.ApiResponse{data=models.ContentPage}
// @Failure 404 {object} models.ApiResponse
// @Router /store/legal/{slug} [get]
func GetLegalPage(c *gin.Context) {
	servePage(c, models.SectionLegal)
}
