package push_ser

import (
	"fmt"

	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"
	"elderdiet/utils"

	"go.uber.org/zap"
)

// SendMealRecordNotification 发送膳食记录通知给子女用户
func SendMealRecordNotification(elderName, mealRecordID string, childUserIDs []uint) {
	title := "膳食记录提醒"
	content := fmt.Sprintf("%s 刚刚分享了一条膳食记录，快来看看吧！", elderName)
	dispatch(ctypes.PushTypeMealRecord, title, content, childUserIDs, mealRecordID,
		models.CapabilityMealRecord, createMealRecordExtras(mealRecordID))
}

// SendMealReminder 发送膳食提醒给老人用户
// 只由定时任务和手动触发入口调用
func SendMealReminder(elderUserIDs []uint) {
	title := "膳食记录提醒"
	content := "该记录今天的膳食了，保持健康的饮食习惯！"
	dispatch(ctypes.PushTypeMealReminder, title, content, elderUserIDs, "",
		models.CapabilityReminder, createReminderExtras())
}

// SendSystemNotification 发送系统通知，目标用户由调用方显式给出
func SendSystemNotification(title, content string, userIDs []uint) {
	dispatch(ctypes.PushTypeSystem, title, content, userIDs, "",
		models.CapabilityPush, map[string]string{})
}

// SendCommentNotification 发送评论通知给记录发布者
func SendCommentNotification(commenterName, mealRecordID string, recordOwnerID uint) {
	title := "评论提醒"
	content := fmt.Sprintf("%s 评论了你的膳食记录", commenterName)
	dispatch(ctypes.PushTypeComment, title, content, []uint{recordOwnerID}, mealRecordID,
		models.CapabilityMealRecord, createMealRecordExtras(mealRecordID))
}

// SendLikeNotification 发送点赞通知给记录发布者
// 同一用户对同一记录只通知一次，取消点赞再点赞不会重复通知
func SendLikeNotification(likerID uint, likerName, mealRecordID string, recordOwnerID uint) {
	// 点赞者是发布者本人，不发通知
	if likerID == recordOwnerID {
		global.Log.Info("点赞者是记录发布者本人，跳过点赞通知")
		return
	}

	created, err := models.LikeNotificationCreateIfAbsent(mealRecordID, likerID, recordOwnerID)
	if err != nil {
		global.Log.Error("写入点赞通知历史失败",
			zap.String("record_id", mealRecordID),
			zap.Uint("liker_id", likerID),
			zap.String("error", err.Error()))
		return
	}
	if !created {
		global.Log.Infof("用户 %d 对记录 %s 的点赞通知已发送过，跳过", likerID, mealRecordID)
		return
	}

	title := "点赞提醒"
	content := fmt.Sprintf("%s 赞了你的膳食记录", likerName)
	dispatch(ctypes.PushTypeLike, title, content, []uint{recordOwnerID}, mealRecordID,
		models.CapabilityMealRecord, createLikeExtras(mealRecordID))
}

// NotifyMealRecordCreated 膳食记录创建事件入口：解析家庭关系后派发
func NotifyMealRecordCreated(elderUser *models.UserModel, mealRecordID string) {
	childUserIDs, err := ResolveFamilyChildren(elderUser.ID)
	if err != nil {
		global.Log.Error("查询子女用户失败",
			zap.Uint("elder_id", elderUser.ID),
			zap.String("error", err.Error()))
		return
	}
	if len(childUserIDs) == 0 {
		global.Log.Infof("老人用户 %d 没有关联的子女用户，跳过推送", elderUser.ID)
		return
	}
	SendMealRecordNotification(elderUser.DisplayName(), mealRecordID, childUserIDs)
}

// dispatch 通用派发流程：解析设备、建档、过滤平台、调用网关、落终态
// 任何失败都终止在推送记录里，绝不向触发推送的业务抛出
func dispatch(pushType ctypes.PushType, title, content string, targetUserIDs []uint,
	relatedEntityID string, capability models.PushCapability, extras map[string]string) *models.PushRecordModel {

	if gateway == nil {
		global.Log.Warn("推送网关未初始化，跳过推送", zap.String("push_type", string(pushType)))
		return nil
	}

	devices, _, err := ResolveByCapability(targetUserIDs, capability)
	if err != nil {
		global.Log.Error("解析推送设备失败",
			zap.String("push_type", string(pushType)),
			zap.String("error", err.Error()))
		return nil
	}

	// 没有可推送的设备不建档
	if len(devices) == 0 {
		global.Log.Infof("没有找到启用 %s 推送的设备，跳过推送", capability)
		return nil
	}

	record := createPushRecord(pushType, title, content, targetUserIDs, devices, relatedEntityID)
	if err := global.DB.Create(record).Error; err != nil {
		global.Log.Error("创建推送记录失败",
			zap.String("push_type", string(pushType)),
			zap.String("error", err.Error()))
		return nil
	}

	sendPush(record, devices, extras)
	return record
}

// createPushRecord 构建待发送的推送记录
func createPushRecord(pushType ctypes.PushType, title, content string, targetUserIDs []uint,
	devices []models.UserDeviceModel, relatedEntityID string) *models.PushRecordModel {

	deviceTokens := make(ctypes.StringList, 0, len(devices))
	for _, d := range devices {
		deviceTokens = append(deviceTokens, d.DeviceToken)
	}

	return &models.PushRecordModel{
		PushType:        pushType,
		Title:           title,
		Content:         content,
		TargetUserIDs:   ctypes.UintList(targetUserIDs),
		DeviceTokens:    deviceTokens,
		RelatedEntityID: relatedEntityID,
		Status:          ctypes.PushStatusPending,
		DispatchID:      utils.GenerateIDString(),
		TargetCount:     len(devices),
	}
}

// sendPush 执行发送并保证终态恰好持久化一次
func sendPush(record *models.PushRecordModel, devices []models.UserDeviceModel, extras map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			record.MarkAsFailed(fmt.Sprintf("推送发送异常: %v", r))
			global.Log.Error("推送发送异常",
				zap.Uint("record_id", record.ID),
				zap.Any("panic", r))
		}
		if err := record.Save(); err != nil {
			global.Log.Error("保存推送终态失败",
				zap.Uint("record_id", record.ID),
				zap.String("error", err.Error()))
		}
	}()

	record.MarkAsSending()
	if err := record.Save(); err != nil {
		record.MarkAsFailed("保存发送中状态失败: " + err.Error())
		return
	}

	tokens := tokensForGateway(devices)
	if len(tokens) == 0 {
		// 平台策略把目标全部过滤掉了，这是策略放弃不是失败
		record.MarkAsSuccess("", 0)
		record.ErrorMessage = "目标仅有iOS设备，按平台策略跳过发送"
		global.Log.Infof("推送记录 %d 目标全部为iOS设备，按策略跳过发送", record.ID)
		return
	}

	msgID, err := gateway.Push(tokens, record.Title, record.Content, extras, record.DispatchID)
	if err != nil {
		record.MarkAsFailed("推送发送失败: " + err.Error())
		global.Log.Error("推送发送失败",
			zap.Uint("record_id", record.ID),
			zap.String("error", err.Error()))
		return
	}

	record.MarkAsSuccess(msgID, len(tokens))
	global.Log.Infof("推送发送成功，消息ID: %s, 目标设备数: %d", msgID, len(tokens))
}

// tokensForGateway 生成实际交给网关的Token列表
// iOS客户端收到当前载荷会崩溃，修复前按配置排除iOS设备
func tokensForGateway(devices []models.UserDeviceModel) []string {
	excludeIOS := global.Config.Jpush.ExcludeIOS
	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		if excludeIOS && d.Platform == ctypes.PlatformIOS {
			continue
		}
		tokens = append(tokens, d.DeviceToken)
	}
	return tokens
}

// createMealRecordExtras 膳食记录相关推送的附加数据
func createMealRecordExtras(mealRecordID string) map[string]string {
	return map[string]string{
		"type":           "meal_record",
		"meal_record_id": mealRecordID,
		"action":         "view_meal_record",
	}
}

// createReminderExtras 提醒推送的附加数据
func createReminderExtras() map[string]string {
	return map[string]string{
		"type":   "reminder",
		"action": "create_meal_record",
	}
}

// createLikeExtras 点赞推送的附加数据
func createLikeExtras(mealRecordID string) map[string]string {
	return map[string]string{
		"type":           "like",
		"meal_record_id": mealRecordID,
		"action":         "view_meal_record",
	}
}
