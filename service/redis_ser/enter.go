package redis_ser

const (
	Prefix       = "elderdiet:"
	PushStatsKey = "push_stats"
)

func GetRedisKey(key string) string {
	return Prefix + key
}
