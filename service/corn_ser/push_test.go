package corn_ser

import (
	"testing"

	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 没有老人启用提醒推送时，定时任务正常结束且不产生推送记录
func TestMealReminderNoEligibleDevices(t *testing.T) {
	setupCornTest(t)

	// 老人有设备但关闭了提醒开关
	elder := models.UserModel{Phone: "13900000001", Password: "x", Role: ctypes.RoleElder}
	require.NoError(t, global.DB.Create(&elder).Error)
	_, err := models.DeviceRegister(elder.ID, models.DeviceRegistration{
		DeviceToken: "elder-token", Platform: ctypes.PlatformAndroid,
		PushEnabled: true, MealRecordPushEnabled: true, ReminderPushEnabled: false,
	})
	require.NoError(t, err)

	// 子女的设备即便开了提醒也不在老人提醒的受众内
	child := models.UserModel{Phone: "13900000002", Password: "x", Role: ctypes.RoleChild}
	require.NoError(t, global.DB.Create(&child).Error)
	_, err = models.DeviceRegister(child.ID, models.DeviceRegistration{
		DeviceToken: "child-token", Platform: ctypes.PlatformAndroid,
		PushEnabled: true, ReminderPushEnabled: true,
	})
	require.NoError(t, err)

	assert.NotPanics(t, SendLunchReminder)

	var count int64
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

// 系统里一个老人都没有时同样静默完成
func TestMealReminderNoElders(t *testing.T) {
	setupCornTest(t)

	assert.NotPanics(t, SendDinnerReminder)

	var count int64
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).Count(&count).Error)
	assert.Zero(t, count)
}
