package push_ser

import (
	"time"

	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"
	"elderdiet/service/redis_ser"

	"golang.org/x/sync/errgroup"
)

// 统计滚动窗口，与推送记录保留期一致
const statsWindowDays = 30

// GetPushStatistics 统计窗口内的推送数量与成功率，只读聚合
func GetPushStatistics() (map[string]interface{}, error) {
	// 先查缓存
	if cached, err := redis_ser.GetCachedPushStats(); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		global.Log.Debugf("读取推送统计缓存失败: %v", err)
	}

	since := time.Now().AddDate(0, 0, -statsWindowDays)

	var total, success, failed, partial int64
	var g errgroup.Group
	g.Go(func() (err error) {
		total, err = models.CountPushRecords(since)
		return
	})
	g.Go(func() (err error) {
		success, err = models.CountPushRecordsByStatus(ctypes.PushStatusSuccess, since)
		return
	})
	g.Go(func() (err error) {
		failed, err = models.CountPushRecordsByStatus(ctypes.PushStatusFailed, since)
		return
	})
	g.Go(func() (err error) {
		partial, err = models.CountPushRecordsByStatus(ctypes.PushStatusPartial, since)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	successRate := 0.0
	if total > 0 {
		successRate = float64(success) / float64(total)
	}

	stats := map[string]interface{}{
		"total":        total,
		"success":      success,
		"failed":       failed,
		"partial":      partial,
		"success_rate": successRate,
		"window_days":  statsWindowDays,
	}

	if err := redis_ser.SetCachedPushStats(stats); err != nil {
		global.Log.Debugf("写入推送统计缓存失败: %v", err)
	}
	return stats, nil
}
