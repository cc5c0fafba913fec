package push

import (
	"elderdiet/global"
	"elderdiet/models/res"
	"elderdiet/service/corn_ser"

	"github.com/gin-gonic/gin"
)

// TriggerLunchReminder 手动触发午餐提醒，语义与定时任务相同
func (p *Push) TriggerLunchReminder(c *gin.Context) {
	go corn_ser.TriggerLunchReminderManually()
	global.Log.Info("手动触发午餐提醒")
	res.SuccessWithMsg(c, nil, "午餐提醒已触发")
}

// TriggerDinnerReminder 手动触发晚餐提醒
func (p *Push) TriggerDinnerReminder(c *gin.Context) {
	go corn_ser.TriggerDinnerReminderManually()
	global.Log.Info("手动触发晚餐提醒")
	res.SuccessWithMsg(c, nil, "晚餐提醒已触发")
}

// TriggerCleanup 手动触发数据清理
func (p *Push) TriggerCleanup(c *gin.Context) {
	go corn_ser.CleanupExpiredData()
	global.Log.Info("手动触发数据清理")
	res.SuccessWithMsg(c, nil, "数据清理已触发")
}
