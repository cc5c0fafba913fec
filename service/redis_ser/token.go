package redis_ser

import (
	"context"
	"time"

	"elderdiet/global"
)

// 令牌黑名单相关
const TokenBlacklist = "token_blacklist:"

// blacklistTTL 黑名单保留到令牌自然过期为止，之后签名校验自己会拒绝
func blacklistTTL() time.Duration {
	return time.Duration(global.Config.Jwt.Expires) * time.Hour
}

// InvalidateToken 登出时将 access token 加入黑名单
func InvalidateToken(accessToken string) error {
	key := GetRedisKey(TokenBlacklist + accessToken)
	return global.Redis.Set(context.Background(), key, "invalid", blacklistTTL()).Err()
}

// IsTokenBlacklisted 检查令牌是否在黑名单中
func IsTokenBlacklisted(accessToken string) (bool, error) {
	// Redis不可用时放行，认证本身仍由签名校验保证
	if global.Redis == nil {
		return false, nil
	}
	key := GetRedisKey(TokenBlacklist + accessToken)
	count, err := global.Redis.Exists(context.Background(), key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
