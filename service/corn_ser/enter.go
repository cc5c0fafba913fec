package corn_ser

import (
	"time"

	"github.com/robfig/cron/v3"
)

// cron表达式: 秒 分 时 日 月 周
//"0 30 12 * * *"    // 每天12:30:00 午餐提醒
//"0 30 18 * * *"    // 每天18:30:00 晚餐提醒
//"0 0 2 * * *"      // 每天02:00:00 数据清理
//"0 0 * * * *"      // 每小时 推送统计

func CornInit() {
	timezone, _ := time.LoadLocation("Asia/Shanghai")
	Cron := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))
	Cron.AddFunc("0 30 12 * * *", SendLunchReminder)
	Cron.AddFunc("0 30 18 * * *", SendDinnerReminder)
	Cron.AddFunc("0 0 2 * * *", CleanupExpiredData)
	Cron.AddFunc("0 0 * * * *", LogPushStatistics)
	Cron.Start()
}
