package core

import (
	"context"
	"time"

	"elderdiet/global"

	"github.com/avast/retry-go"
	"go.uber.org/zap"

	"github.com/redis/go-redis/v9"
)

// InitRedis 初始化Redis
func InitRedis() *redis.Client {
	// 获取Redis配置
	redisConf := global.Config.Redis

	// 创建Redis客户端配置
	opts := &redis.Options{
		Addr:     redisConf.Addr(),
		Password: redisConf.Password,
		DB:       redisConf.DB,
	}
	// 创建Redis客户端
	rdb := redis.NewClient(opts)

	// 测试连接，容器环境下Redis可能晚于应用就绪
	err := retry.Do(
		func() error {
			_, err := rdb.Ping(context.Background()).Result()
			return err
		},
		retry.Attempts(3),
		retry.Delay(1*time.Second),
		retry.OnRetry(func(n uint, err error) {
			global.Log.Warn("重试连接Redis",
				zap.Uint("attempt", n+1),
				zap.String("error", err.Error()))
		}),
	)
	if err != nil {
		global.Log.Error("Redis连接失败", zap.String("addr", redisConf.Addr()), zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("Redis连接成功", zap.String("method", "InitRedis"), zap.String("path", "core/redis.go"))
	return rdb

}
