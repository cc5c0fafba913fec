package corn_ser

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/service/push_ser"
)

// 清理阈值
const (
	inactiveDeviceDays  = 30 // 设备不活跃清理阈值（天）
	pushRecordRetention = 30 // 推送记录保留期（天）
)

// CleanupExpiredData 每日凌晨2点数据清理任务
// 各子步骤相互独立，一步失败不阻断其他步骤
func CleanupExpiredData() {
	global.Log.Infof("开始执行数据清理任务 - %s", currentTimeString())

	deviceCountBefore, err := models.DeviceCount()
	if err != nil {
		global.Log.Errorf("统计清理前设备总数失败: %v", err)
	} else {
		global.Log.Infof("清理前设备总数: %d", deviceCountBefore)
	}

	// 清理不活跃的设备
	if _, err := models.CleanupInactiveDevices(inactiveDeviceDays); err != nil {
		global.Log.Errorf("清理不活跃设备失败: %v", err)
	}

	// 清理重复的设备记录
	if _, err := models.CleanupDuplicateDevices(); err != nil {
		global.Log.Errorf("清理重复设备失败: %v", err)
	}

	// 清理过期的推送记录
	if _, err := models.CleanupOldPushRecords(pushRecordRetention); err != nil {
		global.Log.Errorf("清理推送记录失败: %v", err)
	}

	if deviceCountAfter, err := models.DeviceCount(); err == nil {
		global.Log.Infof("清理后设备总数: %d, 共清理: %d 个设备",
			deviceCountAfter, deviceCountBefore-deviceCountAfter)
	}

	global.Log.Info("数据清理任务完成")
}

// LogPushStatistics 每小时输出推送统计（用于监控），只读不改状态
func LogPushStatistics() {
	stats, err := push_ser.GetPushStatistics()
	if err != nil {
		global.Log.Debugf("获取推送统计失败: %v", err)
		return
	}
	global.Log.Infof("推送统计 - 总数: %v, 成功: %v, 失败: %v, 成功率: %.2f%%",
		stats["total"], stats["success"], stats["failed"],
		toFloat(stats["success_rate"])*100)
}

func toFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}
