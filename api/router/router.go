package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"mrm-cyber-api/api/handlers"
	"mrm-cyber-api/api/middleware"
	"mrm-cyber-api/config"
	"mrm-cyber-api/db"
	"mrm-cyber-api/newsclient"
	"mrm-cyber-api/repositories"
	"mrm-cyber-api/services"
)

// New builds the full HTTP surface. With storage disabled the repository-
// backed services stay nil and each handler degrades per its own policy.
func New() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	var toolSvc *services.ToolService
	var courseSvc *services.CourseService
	var seedSvc *services.SeedService
	var subscriberRepo *repositories.SubscriberRepository
	var contactRepo *repositories.ContactMessageRepository
	if db.Enabled() {
		toolRepo := repositories.NewToolRepository(db.Database())
		courseRepo := repositories.NewCourseRepository(db.Database())
		labRepo := repositories.NewLabRepository(db.Database())
		toolSvc = services.NewToolService(toolRepo)
		courseSvc = services.NewCourseService(courseRepo)
		seedSvc = services.NewSeedService(toolRepo, courseRepo, labRepo)
		subscriberRepo = repositories.NewSubscriberRepository(db.Database())
		contactRepo = repositories.NewContactMessageRepository(db.Database())
	}

	var fetcher *newsclient.Client
	if key := config.NewsAPIKey(); key != "" {
		fetcher = newsclient.New(key)
	}
	newsSvc := newNewsService(fetcher)

	r.GET("/", handlers.RootHandler())
	r.GET("/test", handlers.TestHandler())
	r.POST("/seed", handlers.SeedHandler(seedSvc))
	r.GET("/tools", handlers.ListToolsHandler(toolSvc))
	r.GET("/courses", handlers.ListCoursesHandler(courseSvc))
	r.GET("/news", handlers.NewsHandler(newsSvc))
	r.GET("/incidents", handlers.IncidentsHandler())
	r.POST("/subscribe", subscribeHandler(subscriberRepo))
	r.POST("/contact", contactHandler(contactRepo))

	// Permissive by design: any origin, any method, any header, credentials
	// allowed.
	c := cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

// newNewsService keeps the nil-fetcher case explicit: a nil *Client inside a
// non-nil interface would dodge the fallback path.
func newNewsService(fetcher *newsclient.Client) *services.NewsService {
	if fetcher == nil {
		return services.NewNewsService(nil, config.GetConfig().News)
	}
	return services.NewNewsService(fetcher, config.GetConfig().News)
}

// subscribeHandler avoids handing a typed nil repository to the handler's
// store interface.
func subscribeHandler(repo *repositories.SubscriberRepository) gin.HandlerFunc {
	if repo == nil {
		return handlers.SubscribeHandler(nil)
	}
	return handlers.SubscribeHandler(repo)
}

func contactHandler(repo *repositories.ContactMessageRepository) gin.HandlerFunc {
	if repo == nil {
		return handlers.ContactHandler(nil)
	}
	return handlers.ContactHandler(repo)
}
