package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	idempotencyProcessing = "processing"
	idempotencyConflict   = "IDEMPOTENCY_CONFLICT"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del

	redisReady = redis.Available
)

// storedResponse is the replayable part of a completed request
type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a public POST is
// retried with the same Idempotency-Key. Without Redis it is a passthrough.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || !redisReady() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		storageKey := idempotencyStorageKey(c, key)

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == idempotencyProcessing:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    idempotencyConflict,
				"message": "request already in progress",
			})
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr == nil {
				c.Header("X-Idempotency-Hit", "true")
				c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
				c.Abort()
				return
			}
			// unreadable entry, process the request again
		case !redis.IsNil(err):
			logger.Warn(ctx, "Idempotency lookup failed, processing without it", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, idempotencyProcessing, LockDuration)
		if err != nil || !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    idempotencyConflict,
				"message": "request already in progress",
			})
			return
		}

		w := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			// release so the client can retry
			_ = redisDel(ctx, storageKey)
			return
		}
		payload, _ := json.Marshal(storedResponse{Status: status, Body: w.body.String()})
		if err := redisSet(ctx, storageKey, string(payload), RetentionDuration); err != nil {
			logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
		}
	}
}

// idempotencyStorageKey scopes the client key to the route and the caller
func idempotencyStorageKey(c *gin.Context, key string) string {
	caller := c.ClientIP()
	if actor := GetActor(c); actor != nil {
		caller = actor.ID.String()
	}
	sum := sha256.Sum256([]byte(c.Request.Method + " " + c.FullPath() + " " + caller + " " + key))
	return "idempotency:" + hex.EncodeToString(sum[:])
}
