package redis_ser

import (
	"context"
	"encoding/json"
	"time"

	"elderdiet/global"

	"github.com/redis/go-redis/v9"
)

// 推送统计缓存，统计是只读聚合，短缓存即可
const PushStatsTTL = 5 * time.Minute

// GetCachedPushStats 读取缓存的推送统计，未命中返回 (nil, nil)
func GetCachedPushStats() (map[string]interface{}, error) {
	if global.Redis == nil {
		return nil, nil
	}
	raw, err := global.Redis.Get(context.Background(), GetRedisKey(PushStatsKey)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SetCachedPushStats 写入推送统计缓存
func SetCachedPushStats(stats map[string]interface{}) error {
	if global.Redis == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return global.Redis.Set(context.Background(), GetRedisKey(PushStatsKey), raw, PushStatsTTL).Err()
}
