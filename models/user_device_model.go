package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"elderdiet/global"
	"elderdiet/models/ctypes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserDeviceModel 用户设备模型，保存推送Token信息
// (user_id, device_token) 唯一，注册竞态由该唯一索引兜底
type UserDeviceModel struct {
	MODEL                 `json:","`
	UserID                uint                  `json:"user_id" gorm:"uniqueIndex:idx_user_token;index;comment:用户ID"`
	DeviceToken           string                `json:"device_token" gorm:"uniqueIndex:idx_user_token,length:191;index;comment:极光Registration ID"`
	Platform              ctypes.DevicePlatform `json:"platform" gorm:"size:10;comment:设备平台"`
	// 开关列不用数据库默认值，写入时总是显式赋值，避免false被当作零值忽略
	PushEnabled           bool                  `json:"push_enabled" gorm:"comment:是否启用推送"`
	MealRecordPushEnabled bool                  `json:"meal_record_push_enabled" gorm:"comment:膳食记录推送"`
	ReminderPushEnabled   bool                  `json:"reminder_push_enabled" gorm:"comment:定时提醒推送"`
	DeviceModel           string                `json:"device_model" gorm:"size:100;comment:设备型号"`
	AppVersion            string                `json:"app_version" gorm:"size:50;comment:应用版本"`
	LastActiveAt          ctypes.MyTime         `json:"last_active_at" gorm:"type:datetime NULL;comment:最后活跃时间"`
}

var (
	ErrEmptyDeviceToken = errors.New("设备Token不能为空")
	ErrInvalidPlatform  = errors.New("未知的设备平台")
	ErrDeviceNotFound   = errors.New("设备不存在")
)

// PushCapability 推送能力开关，对应设备表的能力列
// 膳食记录/提醒能力都以总开关 push_enabled 为前提
type PushCapability string

const (
	CapabilityPush       PushCapability = "push_enabled"
	CapabilityMealRecord PushCapability = "meal_record_push_enabled"
	CapabilityReminder   PushCapability = "reminder_push_enabled"
)

// DeviceRegistration 设备注册参数
type DeviceRegistration struct {
	DeviceToken           string                `json:"device_token" validate:"required"`
	Platform              ctypes.DevicePlatform `json:"platform" validate:"required"`
	DeviceModel           string                `json:"device_model"`
	AppVersion            string                `json:"app_version"`
	PushEnabled           bool                  `json:"push_enabled"`
	MealRecordPushEnabled bool                  `json:"meal_record_push_enabled"`
	ReminderPushEnabled   bool                  `json:"reminder_push_enabled"`
}

// 每个用户每个平台最多保留的设备数，注册新设备时按最后活跃时间淘汰多余的
const maxDevicesPerPlatform = 2

// DeviceRegister 注册或更新用户设备，按 (user_id, device_token) 取并更新，不存在则创建
func DeviceRegister(userID uint, req DeviceRegistration) (*UserDeviceModel, error) {
	if req.DeviceToken == "" {
		return nil, ErrEmptyDeviceToken
	}
	if !req.Platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	// 同一Token出现在其他用户名下说明设备换了主人，先删除旧归属
	result := global.DB.Where("device_token = ? AND user_id <> ?", req.DeviceToken, userID).
		Delete(&UserDeviceModel{})
	if result.Error != nil {
		return nil, fmt.Errorf("清理设备旧归属失败: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		global.Log.Infof("设备Token转移到用户 %d，删除 %d 条旧记录", userID, result.RowsAffected)
	}

	var device UserDeviceModel
	err := global.DB.Where("user_id = ? AND device_token = ?", userID, req.DeviceToken).
		Take(&device).Error
	switch {
	case err == nil:
		// 更新现有设备
		device.Platform = req.Platform
		device.DeviceModel = req.DeviceModel
		device.AppVersion = req.AppVersion
		device.PushEnabled = req.PushEnabled
		device.MealRecordPushEnabled = req.MealRecordPushEnabled
		device.ReminderPushEnabled = req.ReminderPushEnabled
		device.LastActiveAt = ctypes.MyTime(time.Now())
		if err := global.DB.Save(&device).Error; err != nil {
			return nil, fmt.Errorf("更新设备失败: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 限制每个用户每个平台的设备数量，防止无限累积
		if err := cleanupOldDevicesForUserAndPlatform(userID, req.Platform); err != nil {
			global.Log.Error("清理用户旧设备失败",
				zap.Uint("user_id", userID),
				zap.String("error", err.Error()))
		}

		device = UserDeviceModel{
			UserID:                userID,
			DeviceToken:           req.DeviceToken,
			Platform:              req.Platform,
			DeviceModel:           req.DeviceModel,
			AppVersion:            req.AppVersion,
			PushEnabled:           req.PushEnabled,
			MealRecordPushEnabled: req.MealRecordPushEnabled,
			ReminderPushEnabled:   req.ReminderPushEnabled,
			LastActiveAt:          ctypes.MyTime(time.Now()),
		}
		if err := global.DB.Create(&device).Error; err != nil {
			return nil, fmt.Errorf("创建设备失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("查询设备失败: %w", err)
	}

	logUserDeviceStatistics(userID)
	return &device, nil
}

// DeviceUpdateSettings 更新设备推送设置，nil 表示该开关不变
func DeviceUpdateSettings(userID uint, deviceToken string, pushEnabled, mealRecordPushEnabled, reminderPushEnabled *bool) (*UserDeviceModel, error) {
	var device UserDeviceModel
	err := global.DB.Where("user_id = ? AND device_token = ?", userID, deviceToken).
		Take(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询设备失败: %w", err)
	}

	if pushEnabled != nil {
		device.PushEnabled = *pushEnabled
	}
	if mealRecordPushEnabled != nil {
		device.MealRecordPushEnabled = *mealRecordPushEnabled
	}
	if reminderPushEnabled != nil {
		device.ReminderPushEnabled = *reminderPushEnabled
	}
	device.LastActiveAt = ctypes.MyTime(time.Now())

	if err := global.DB.Save(&device).Error; err != nil {
		return nil, fmt.Errorf("更新推送设置失败: %w", err)
	}
	return &device, nil
}

// DeviceRemove 删除设备，设备不存在时静默成功
func DeviceRemove(userID uint, deviceToken string) error {
	result := global.DB.Where("user_id = ? AND device_token = ?", userID, deviceToken).
		Delete(&UserDeviceModel{})
	if result.Error != nil {
		return fmt.Errorf("删除设备失败: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		global.Log.Infof("用户 %d 删除设备成功", userID)
	}
	return nil
}

// DeviceHeartbeat 更新设备活跃时间，Token未知或出错都不影响调用方
func DeviceHeartbeat(deviceToken string) {
	result := global.DB.Model(&UserDeviceModel{}).
		Where("device_token = ?", deviceToken).
		Update("last_active_at", time.Now())
	if result.Error != nil {
		global.Log.Debugf("更新设备活跃时间失败: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		global.Log.Debugf("更新了 %d 个设备的活跃时间", result.RowsAffected)
	}
}

// DevicesByUser 查询用户的所有设备
func DevicesByUser(userID uint) ([]UserDeviceModel, error) {
	var devices []UserDeviceModel
	if err := global.DB.Where("user_id = ?", userID).Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("查询用户设备失败: %w", err)
	}
	return devices, nil
}

// DevicesWithCapability 查询一批用户中启用了指定推送能力的设备
func DevicesWithCapability(userIDs []uint, capability PushCapability) ([]UserDeviceModel, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := global.DB.Where("user_id IN ?", userIDs).Where("push_enabled = ?", true)
	switch capability {
	case CapabilityPush:
		// 仅总开关
	case CapabilityMealRecord:
		query = query.Where("meal_record_push_enabled = ?", true)
	case CapabilityReminder:
		query = query.Where("reminder_push_enabled = ?", true)
	default:
		return nil, fmt.Errorf("未知的推送能力: %s", capability)
	}

	var devices []UserDeviceModel
	if err := query.Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("查询启用推送的设备失败: %w", err)
	}
	return devices, nil
}

// UserDevicesWithCapability 查询单个用户启用了指定推送能力的设备
func UserDevicesWithCapability(userID uint, capability PushCapability) ([]UserDeviceModel, error) {
	return DevicesWithCapability([]uint{userID}, capability)
}

// CleanupInactiveDevices 清理超过阈值天数未活跃的设备
func CleanupInactiveDevices(thresholdDays int) (int64, error) {
	if thresholdDays <= 0 {
		thresholdDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -thresholdDays)

	result := global.DB.Where("last_active_at < ?", cutoff).Delete(&UserDeviceModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("清理不活跃设备失败: %w", result.Error)
	}
	global.Log.Infof("清理了 %d 个 %s 之前不活跃的设备", result.RowsAffected, cutoff.Format("2006-01-02 15:04:05"))
	return result.RowsAffected, nil
}

// CleanupDuplicateDevices 清理重复的设备Token记录
// 注册竞态可能让同一Token落在多个账号下，保留最后活跃的那条
func CleanupDuplicateDevices() (int64, error) {
	var devices []UserDeviceModel
	if err := global.DB.Find(&devices).Error; err != nil {
		return 0, fmt.Errorf("查询设备失败: %w", err)
	}

	tokenGroups := make(map[string][]UserDeviceModel)
	for _, d := range devices {
		tokenGroups[d.DeviceToken] = append(tokenGroups[d.DeviceToken], d)
	}

	var cleaned int64
	for token, group := range tokenGroups {
		if len(group) <= 1 {
			continue
		}
		// 按最后活跃时间降序，保留第一条
		sort.Slice(group, func(i, j int) bool {
			return time.Time(group[i].LastActiveAt).After(time.Time(group[j].LastActiveAt))
		})
		for _, d := range group[1:] {
			if err := global.DB.Delete(&UserDeviceModel{}, d.ID).Error; err != nil {
				global.Log.Error("删除重复设备记录失败",
					zap.Uint("device_id", d.ID),
					zap.String("error", err.Error()))
				continue
			}
			cleaned++
		}
		global.Log.Infof("设备Token %s... 清理了 %d 条重复记录", truncateToken(token), len(group)-1)
	}
	return cleaned, nil
}

// cleanupOldDevicesForUserAndPlatform 清理用户在指定平台的旧设备，保留最近活跃的若干个
func cleanupOldDevicesForUserAndPlatform(userID uint, platform ctypes.DevicePlatform) error {
	var devices []UserDeviceModel
	err := global.DB.Where("user_id = ? AND platform = ?", userID, platform).
		Find(&devices).Error
	if err != nil {
		return fmt.Errorf("查询用户平台设备失败: %w", err)
	}
	if len(devices) < maxDevicesPerPlatform {
		return nil
	}

	sort.Slice(devices, func(i, j int) bool {
		return time.Time(devices[i].LastActiveAt).After(time.Time(devices[j].LastActiveAt))
	})

	// 保留最新的 maxDevicesPerPlatform-1 个，为新设备留出位置
	for _, d := range devices[maxDevicesPerPlatform-1:] {
		if err := global.DB.Delete(&UserDeviceModel{}, d.ID).Error; err != nil {
			return fmt.Errorf("删除旧设备失败: %w", err)
		}
		global.Log.Infof("用户 %d 平台 %s 删除旧设备 %s...", userID, platform, truncateToken(d.DeviceToken))
	}
	return nil
}

// DeviceCount 设备总数
func DeviceCount() (int64, error) {
	var count int64
	if err := global.DB.Model(&UserDeviceModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("统计设备总数失败: %w", err)
	}
	return count, nil
}

// logUserDeviceStatistics 记录用户当前的设备统计
func logUserDeviceStatistics(userID uint) {
	devices, err := DevicesByUser(userID)
	if err != nil {
		global.Log.Debugf("记录用户设备统计失败: %v", err)
		return
	}
	var androidCount, iosCount int
	for _, d := range devices {
		switch d.Platform {
		case ctypes.PlatformAndroid:
			androidCount++
		case ctypes.PlatformIOS:
			iosCount++
		}
	}
	global.Log.Infof("用户 %d 当前设备统计 - Android: %d, iOS: %d, 总计: %d",
		userID, androidCount, iosCount, len(devices))
}

// truncateToken 截断Token用于日志输出
func truncateToken(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10]
}
