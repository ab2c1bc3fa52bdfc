package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"captura-leads.backend/internal/domain/entities"
	"captura-leads.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	testAdmin    = &entities.Actor{ID: uuid.MustParse("00000000-0000-7000-8000-000000000001"), Role: entities.UserRoleAdmin}
	testOperator = &entities.Actor{ID: uuid.MustParse("00000000-0000-7000-8000-000000000002"), Role: entities.UserRoleOperator}
)

// newTestRouter returns an engine whose requests are attributed to actor (nil for anonymous)
func newTestRouter(actor *entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.ActorKey, actor)
		}
		c.Next()
	})
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
