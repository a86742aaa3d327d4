package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/contextutil"
	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type bodyCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// storedResponse is what a finished request leaves behind for its retries.
type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

// decodeStoredResponse also accepts a bare body, which replays as 200.
func decodeStoredResponse(raw string) storedResponse {
	var stored storedResponse
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.Status == 0 {
		return storedResponse{Status: http.StatusOK, Body: raw}
	}
	return stored
}

// IdempotencyKey builds the redis key for one caller's retry of one route.
func IdempotencyKey(path, userID, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, userID, key)
}

// Idempotency replays the stored 2xx status and body of a POST retried with the same
// Idempotency-Key, and rejects a retry that arrives while the first attempt
// is still running.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L())
		cacheKey := IdempotencyKey(c.FullPath(), c.GetString("user_id_validated"), idempKey)
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			stored := decodeStoredResponse(cached)
			c.Header("Idempotent-Replay", "true")
			c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
			c.Abort()
			return
		}
		if err != redis.Nil {
			logger.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		status := capture.Status()
		if status >= 200 && status < 300 {
			stored, err := json.Marshal(storedResponse{Status: status, Body: capture.body.String()})
			if err == nil {
				err = rdb.Set(ctx, cacheKey, string(stored), idempotencyResultTTL).Err()
			}
			if err != nil {
				logger.Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			logger.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}
