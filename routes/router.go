package routes

import (
	"fmt"
	"net/http"

	"news-cms/handlers"
	"news-cms/helper"
	"news-cms/middleware"
	"news-cms/services"

	_ "news-cms/docs"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Post     *handlers.PostHandler
	Tag      *handlers.TagHandler
	Author   *handlers.AuthorHandler
	Contact  *handlers.ContactHandler
	Term     *handlers.TermHandler
	Category *handlers.CategoryHandler
}

type Options struct {
	// UploadsDir is served under UploadsPath when set (local storage only).
	UploadsDir  string
	UploadsPath string

	// TrustedProxies are allowed to set the client IP through forwarding
	// headers. Nil trusts no one, so rate limits key on the peer address.
	TrustedProxies []string

	LoginLimiter   *middleware.RateLimiter
	ContactLimiter *middleware.RateLimiter
}

func SetupRouter(h Handlers, authService services.AuthService, httpHelper *helper.HTTPHelper, opts Options) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ErrorHandler(httpHelper),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
	)))
	if opts.UploadsDir != "" {
		router.Static(opts.UploadsPath, opts.UploadsDir)
	}

	admin := middleware.VerifyAdmin(authService)

	loginChain := []gin.HandlerFunc{h.Auth.Login}
	if opts.LoginLimiter != nil {
		loginChain = append([]gin.HandlerFunc{opts.LoginLimiter.Middleware()}, loginChain...)
	}
	contactChain := []gin.HandlerFunc{h.Contact.CreateContact}
	if opts.ContactLimiter != nil {
		contactChain = append([]gin.HandlerFunc{opts.ContactLimiter.Middleware()}, contactChain...)
	}

	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/login", loginChain...)
		adminGroup.POST("/logout", h.Auth.Logout)
	}

	router.GET("/highlighted", h.Post.GetHighlightedPosts)
	router.GET("/load-more", h.Post.LoadMorePosts)
	router.GET("/search", h.Post.SearchPosts)
	router.GET("/most-viewed", h.Post.GetMostViewedPosts)

	posts := router.Group("/posts")
	{
		posts.GET("", h.Post.GetInitialPosts)
		posts.GET("/:slug", h.Post.GetPostBySlug)
		posts.POST("", admin, h.Post.CreatePost)
		posts.PUT("/:slug", admin, h.Post.UpdatePost)
		posts.DELETE("/:slug", admin, h.Post.DeletePost)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", h.Tag.GetTags)
		tags.GET("/:id", h.Tag.GetPostsByTag)
		tags.POST("", admin, h.Tag.CreateTag)
		tags.PUT("/:id", admin, h.Tag.UpdateTag)
		tags.DELETE("/:id", admin, h.Tag.DeleteTag)
	}

	author := router.Group("/author")
	{
		author.GET("", h.Author.GetAuthors)
		author.POST("", admin, h.Author.CreateAuthor)
		author.PUT("/:id", admin, h.Author.UpdateAuthor)
		author.DELETE("/:id", admin, h.Author.DeleteAuthor)
	}

	contacts := router.Group("/contacts")
	{
		contacts.POST("", contactChain...)
		contacts.GET("", admin, h.Contact.GetContacts)
		contacts.GET("/:id", admin, h.Contact.GetContact)
	}

	encyclopedia := router.Group("/encyclopedia")
	{
		encyclopedia.GET("/letter", h.Term.GetAlphabet)
		encyclopedia.GET("/letter/:letter", h.Term.GetTermsByLetter)
		encyclopedia.GET("/terms", h.Term.GetTerms)
		encyclopedia.POST("/terms", admin, h.Term.CreateTerm)
		encyclopedia.PUT("/terms/:id", admin, h.Term.UpdateTerm)
		encyclopedia.DELETE("/terms/:id", admin, h.Term.DeleteTerm)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", h.Category.GetCategories)
		categories.GET("/:category", h.Category.GetPostsByCategory)
	}

	return router, nil
}
