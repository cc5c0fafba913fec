package corn_ser

import (
	"time"

	"elderdiet/global"
	"elderdiet/service/push_ser"
)

// SendLunchReminder 每日12:30午餐提醒任务
func SendLunchReminder() {
	global.Log.Infof("开始执行午餐提醒推送任务 - %s", currentTimeString())
	sendMealReminder("午餐")
}

// SendDinnerReminder 每日18:30晚餐提醒任务
func SendDinnerReminder() {
	global.Log.Infof("开始执行晚餐提醒推送任务 - %s", currentTimeString())
	sendMealReminder("晚餐")
}

// TriggerLunchReminderManually 手动触发午餐提醒，语义与定时路径完全一致
func TriggerLunchReminderManually() {
	global.Log.Info("手动触发午餐提醒推送")
	sendMealReminder("午餐")
}

// TriggerDinnerReminderManually 手动触发晚餐提醒
func TriggerDinnerReminderManually() {
	global.Log.Info("手动触发晚餐提醒推送")
	sendMealReminder("晚餐")
}

// sendMealReminder 发送膳食提醒
// 空受众是正常情况：记录日志后返回，不算任务失败
func sendMealReminder(mealType string) {
	elderUserIDs, deviceCount, err := push_ser.ResolveEldersWithReminderDevices()
	if err != nil {
		global.Log.Errorf("%s提醒推送任务执行失败: %v", mealType, err)
		return
	}

	if len(elderUserIDs) == 0 {
		global.Log.Infof("没有找到启用提醒推送的老人用户，跳过%s提醒推送", mealType)
		return
	}

	global.Log.Infof("准备发送%s提醒 - 目标用户: %d, 目标设备: %d", mealType, len(elderUserIDs), deviceCount)

	push_ser.SendMealReminder(elderUserIDs)

	global.Log.Infof("%s提醒推送任务完成，推送用户数: %d, 设备数: %d", mealType, len(elderUserIDs), deviceCount)
}

// currentTimeString 获取当前时间字符串
func currentTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
