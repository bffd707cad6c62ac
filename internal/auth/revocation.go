package auth

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "auth:revoked:"

// RevocationList guarda os jti de tokens encerrados via logout,
// com TTL até a expiração original do token.
type RevocationList struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewRevocationList(rdb *redis.Client, logger *slog.Logger) *RevocationList {
	return &RevocationList{rdb: rdb, logger: logger}
}

func (r *RevocationList) Revoke(c *gin.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(c.Request.Context(), revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked trata falha do Redis como "não revogado": a verificação de
// assinatura continua valendo e a API não cai junto com o cache.
func (r *RevocationList) IsRevoked(c *gin.Context, jti string) bool {
	n, err := r.rdb.Exists(c.Request.Context(), revokedKeyPrefix+jti).Result()
	if err != nil {
		r.logger.Warn("revocation list unavailable", "error", err)
		return false
	}
	return n > 0
}
