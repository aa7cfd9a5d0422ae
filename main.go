package main

import (
	"errors"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"

	"github.com/mithunxcpu/portfolio/internal/blog"
	"github.com/mithunxcpu/portfolio/internal/config"
)

func main() {
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	var err error
	db, err = openDB(cfg.Storage.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	initAdminToken()
	initVisitorTracking(cfg.Storage.VisitorRetentionMonths)

	r := setupRouter(cfg)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	if cfg.Storage.TrackVisitors {
		r.Use(visitorTrackingMiddleware(db))
	}

	posts := blog.NewStore(cfg.Content.PostsDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		recent, err := posts.All()
		if err != nil {
			log.Printf("Error loading posts: %v", err)
		}
		if len(recent) > 3 {
			recent = recent[:3]
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent": AboutMe,
			"tagline":        Tagline,
			"projects":       Projects,
			"recentPosts":    recent,
		})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Work history fragment
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"jobs": WorkHistory,
		})
	})

	r.GET("/interviewers", func(c *gin.Context) {
		c.HTML(http.StatusOK, "interviewers.html", gin.H{
			"title": "For Interviewers",
			"jobs":  WorkHistory,
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(cfg.SMTP, name, email, message); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	setupBlogRoutes(r, posts)
	setupAdminRoutes(r, cfg)

	return r
}

func setupBlogRoutes(r *gin.Engine, posts *blog.Store) {
	r.GET("/blog", func(c *gin.Context) {
		all, err := posts.All()
		if err != nil {
			log.Printf("Error loading posts: %v", err)
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"error": "Failed to load posts",
			})
			return
		}
		c.HTML(http.StatusOK, "blog.html", gin.H{
			"title": "Blog",
			"posts": all,
		})
	})

	r.GET("/blog/:slug", func(c *gin.Context) {
		post, err := posts.BySlug(c.Param("slug"))
		if errors.Is(err, blog.ErrNotFound) {
			c.HTML(http.StatusNotFound, "error.html", gin.H{
				"error": "Post not found",
			})
			return
		}
		if err != nil {
			log.Printf("Error loading post %s: %v", c.Param("slug"), err)
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"error": "Failed to load post",
			})
			return
		}
		c.HTML(http.StatusOK, "post.html", gin.H{
			"title":   post.Title,
			"post":    post,
			"content": blog.Render(post.Body),
		})
	})
}
