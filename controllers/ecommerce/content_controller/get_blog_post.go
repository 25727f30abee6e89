package content_controller

import (
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetBlogPosts godoc
// @Summary List blog posts
// @Tags store - content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.ContentPage}
// @Router /store/blog [get]
func GetBlogPosts(c *gin.Context) {
	servePages(c, models.SectionBlog)
}

// GetBlogPost godoc
// @Summary Get a blog post
// @Tags store - content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse{data=models.ContentPage}
// @Failure 404 {object} models.ApiResponse
// @Router /store/blog/{slug} [get]
func GetBlogPost(c *gin.Context) {
	servePage(c, models.SectionBlog)
}
