package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"mrm-cyber-api/db"
	"mrm-cyber-api/dto"
	"mrm-cyber-api/models"
	"mrm-cyber-api/services"
)

const ServiceName = "MRM Cybersecurity API"

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// RootHandler reports liveness regardless of storage state.
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": ServiceName, "status": "ok"})
	}
}

// TestHandler inspects storage connectivity and always answers 200.
func TestHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "running",
			"database":          "not available",
			"database_url":      nil,
			"database_name":     nil,
			"connection_status": "Not Connected",
			"collections":       []string{},
		}
		if db.Enabled() {
			response["database"] = "available"
			if os.Getenv("DATABASE_URL") != "" {
				response["database_url"] = "set"
			} else {
				response["database_url"] = "not set"
			}
			response["database_name"] = db.Database().Name()
			response["connection_status"] = "Connected"

			names, err := db.Database().ListCollectionNames(c.Request.Context(), bson.M{})
			if err != nil {
				response["database"] = "connected but error: " + truncate(err.Error(), 80)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
				response["database"] = "connected and working"
			}
		}
		c.JSON(http.StatusOK, response)
	}
}

// SeedHandler inserts the fixed sample content. Unlike the soft-disabled
// write endpoints, seeding without storage is a hard 500.
func SeedHandler(svc *services.SeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database not configured"})
			return
		}
		if err := svc.Run(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), 200)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ListToolsHandler serves /tools with q, category and sort query parameters.
// Disabled storage yields an empty list, not an error.
func ListToolsHandler(svc *services.ToolService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusOK, []dto.ToolDTO{})
			return
		}
		in := services.ListToolsInput{
			Q:        c.Query("q"),
			Category: c.Query("category"),
			Sort:     c.Query("sort"),
		}
		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), 200)})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListCoursesHandler serves /courses, unfiltered.
func ListCoursesHandler(svc *services.CourseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusOK, []dto.CourseDTO{})
			return
		}
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), 200)})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// NewsHandler serves up to 12 items; provider failures are masked by the
// fallback inside the service.
func NewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := svc.Get(c.Request.Context())
		c.JSON(http.StatusOK, res.Items)
	}
}

// IncidentsHandler serves the fixed synthesized incident feed.
func IncidentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, services.SampleIncidents(time.Now().UTC()))
	}
}

type subscriberStore interface {
	Insert(ctx context.Context, s *models.Subscriber) (string, error)
}

type contactMessageStore interface {
	Insert(ctx context.Context, m *models.ContactMessage) (string, error)
}

// SubscribeHandler records a newsletter signup. With storage disabled it
// answers {"status":"disabled"} and performs no write.
func SubscribeHandler(store subscriberStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.Subscriber
		if !bindAndValidate(c, &sub) {
			return
		}
		sub.ApplyDefaults()
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "disabled"})
			return
		}
		if _, err := store.Insert(c.Request.Context(), &sub); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), 200)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ContactHandler records a contact-form message, same disabled semantics as
// SubscribeHandler.
func ContactHandler(store contactMessageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg models.ContactMessage
		if !bindAndValidate(c, &msg) {
			return
		}
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "disabled"})
			return
		}
		if _, err := store.Insert(c.Request.Context(), &msg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": truncate(err.Error(), 200)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// bindAndValidate decodes the JSON body and runs schema validation, writing a
// 422 with per-field detail on failure. Returns false when the request was
// already answered.
func bindAndValidate(c *gin.Context, record any) bool {
	if err := c.ShouldBindJSON(record); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body: " + truncate(err.Error(), 200)})
		return false
	}
	if err := models.Validate(record); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": verr.Fields})
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": truncate(err.Error(), 200)})
		return false
	}
	return true
}
