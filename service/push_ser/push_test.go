package push_ser

import (
	"errors"
	"testing"
	"time"

	"elderdiet/config"
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"
	"elderdiet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeGateway 记录每次调用，按设定返回成败
type fakeGateway struct {
	calls  [][]string
	extras []map[string]string
	msgID  string
	err    error
	panics bool
}

func (f *fakeGateway) Push(registrationIDs []string, title, content string, extras map[string]string, cid string) (string, error) {
	if f.panics {
		panic("gateway exploded")
	}
	f.calls = append(f.calls, registrationIDs)
	f.extras = append(f.extras, extras)
	if f.err != nil {
		return "", f.err
	}
	return f.msgID, nil
}

func setupPushTest(t *testing.T) *fakeGateway {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.FamilyLinkModel{},
		&models.UserDeviceModel{},
		&models.PushRecordModel{},
		&models.LikeNotificationHistoryModel{},
	))

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{
		Jpush: config.Jpush{ExcludeIOS: true, TimeToLive: 86400},
	}
	utils.Init("2024-01-01", 1)

	fake := &fakeGateway{msgID: "msg-100"}
	SetGateway(fake)
	t.Cleanup(func() { SetGateway(nil) })
	return fake
}

func addDevice(t *testing.T, userID uint, token string, platform ctypes.DevicePlatform) {
	t.Helper()
	_, err := models.DeviceRegister(userID, models.DeviceRegistration{
		DeviceToken:           token,
		Platform:              platform,
		PushEnabled:           true,
		MealRecordPushEnabled: true,
		ReminderPushEnabled:   true,
	})
	require.NoError(t, err)
}

func allRecords(t *testing.T) []models.PushRecordModel {
	t.Helper()
	var records []models.PushRecordModel
	require.NoError(t, global.DB.Find(&records).Error)
	return records
}

func TestDispatchEmptyAudienceCreatesNoRecord(t *testing.T) {
	fake := setupPushTest(t)

	SendSystemNotification("通知", "内容", []uint{1, 2, 3})

	assert.Empty(t, fake.calls)
	assert.Empty(t, allRecords(t))
}

func TestDispatchNilGatewaySkips(t *testing.T) {
	setupPushTest(t)
	SetGateway(nil)
	addDevice(t, 1, "token-a", ctypes.PlatformAndroid)

	SendSystemNotification("通知", "内容", []uint{1})

	assert.Empty(t, allRecords(t))
}

func TestMealRecordNotificationExcludesIOSDevices(t *testing.T) {
	fake := setupPushTest(t)

	// 老人有两个子女：一个Android设备，一个iOS设备
	addDevice(t, 2, "child-android", ctypes.PlatformAndroid)
	addDevice(t, 3, "child-ios", ctypes.PlatformIOS)

	SendMealRecordNotification("王奶奶", "rec-1", []uint{2, 3})

	records := allRecords(t)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, ctypes.PushTypeMealRecord, record.PushType)
	assert.Equal(t, "rec-1", record.RelatedEntityID)
	assert.Equal(t, ctypes.PushStatusSuccess, record.Status)
	// 建档快照包含两台设备，实际只发给Android
	assert.Equal(t, 2, record.TargetCount)
	assert.Equal(t, 1, record.SuccessCount)
	assert.Equal(t, "msg-100", record.JpushMessageID)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"child-android"}, fake.calls[0])
	require.Len(t, fake.extras, 1)
	assert.Equal(t, "meal_record", fake.extras[0]["type"])
	assert.Equal(t, "rec-1", fake.extras[0]["meal_record_id"])
	assert.Equal(t, "view_meal_record", fake.extras[0]["action"])
}

func TestDispatchOnlyIOSDevicesSucceedsWithZeroSent(t *testing.T) {
	fake := setupPushTest(t)
	addDevice(t, 2, "child-ios", ctypes.PlatformIOS)

	SendMealRecordNotification("王奶奶", "rec-1", []uint{2})

	records := allRecords(t)
	require.Len(t, records, 1)
	assert.Equal(t, ctypes.PushStatusSuccess, records[0].Status)
	assert.Equal(t, 1, records[0].TargetCount)
	assert.Zero(t, records[0].SuccessCount)
	assert.NotEmpty(t, records[0].ErrorMessage)
	assert.Empty(t, fake.calls)
}

func TestDispatchGatewayFailureMarksFailed(t *testing.T) {
	fake := setupPushTest(t)
	fake.err = errors.New("jpush unavailable")
	addDevice(t, 2, "token-a", ctypes.PlatformAndroid)

	SendSystemNotification("通知", "内容", []uint{2})

	records := allRecords(t)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, ctypes.PushStatusFailed, record.Status)
	assert.Equal(t, record.TargetCount, record.FailureCount)
	assert.Zero(t, record.SuccessCount)
	assert.Contains(t, record.ErrorMessage, "jpush unavailable")
}

func TestDispatchGatewayPanicIsContained(t *testing.T) {
	fake := setupPushTest(t)
	fake.panics = true
	addDevice(t, 2, "token-a", ctypes.PlatformAndroid)

	// 网关panic不能冲出派发流程
	require.NotPanics(t, func() {
		SendSystemNotification("通知", "内容", []uint{2})
	})

	records := allRecords(t)
	require.Len(t, records, 1)
	assert.Equal(t, ctypes.PushStatusFailed, records[0].Status)
}

func TestLikeNotificationDeduplicates(t *testing.T) {
	fake := setupPushTest(t)
	addDevice(t, 1, "owner-android", ctypes.PlatformAndroid)

	SendLikeNotification(5, "小李", "rec-1", 1)
	// 取消点赞再点赞
	SendLikeNotification(5, "小李", "rec-1", 1)

	records := allRecords(t)
	require.Len(t, records, 1)
	assert.Equal(t, ctypes.PushTypeLike, records[0].PushType)
	assert.Len(t, fake.calls, 1)

	// 另一个用户点赞仍然通知
	SendLikeNotification(6, "小张", "rec-1", 1)
	assert.Len(t, allRecords(t), 2)
}

func TestLikeNotificationSkipsSelf(t *testing.T) {
	fake := setupPushTest(t)
	addDevice(t, 1, "owner-android", ctypes.PlatformAndroid)

	SendLikeNotification(1, "自己", "rec-1", 1)

	assert.Empty(t, fake.calls)
	assert.Empty(t, allRecords(t))

	// 自己点赞不该占用通知历史
	exists, err := models.LikeNotificationExists("rec-1", 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCommentNotificationTargetsOwner(t *testing.T) {
	fake := setupPushTest(t)
	addDevice(t, 1, "owner-android", ctypes.PlatformAndroid)

	SendCommentNotification("小李", "rec-1", 1)

	records := allRecords(t)
	require.Len(t, records, 1)
	assert.Equal(t, ctypes.PushTypeComment, records[0].PushType)
	assert.Equal(t, ctypes.UintList{1}, records[0].TargetUserIDs)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"owner-android"}, fake.calls[0])
}

func TestNotifyMealRecordCreatedResolvesFamily(t *testing.T) {
	fake := setupPushTest(t)

	elder := &models.UserModel{Phone: "13800001111", Password: "secret123", Role: ctypes.RoleElder}
	require.NoError(t, elder.Create())
	child := &models.UserModel{Phone: "13800002222", Password: "secret123", Role: ctypes.RoleChild}
	require.NoError(t, child.Create())
	require.NoError(t, global.DB.Create(&models.FamilyLinkModel{ElderID: elder.ID, ChildID: child.ID}).Error)
	addDevice(t, child.ID, "child-android", ctypes.PlatformAndroid)

	NotifyMealRecordCreated(elder, "rec-1")

	records := allRecords(t)
	require.Len(t, records, 1)
	assert.Equal(t, ctypes.PushTypeMealRecord, records[0].PushType)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"child-android"}, fake.calls[0])
	// 老人没有档案姓名时退化为手机尾号称呼
	assert.Contains(t, records[0].Content, "用户1111")
}

func TestNotifyMealRecordCreatedNoChildren(t *testing.T) {
	fake := setupPushTest(t)

	elder := &models.UserModel{Phone: "13800001111", Password: "secret123", Role: ctypes.RoleElder}
	require.NoError(t, elder.Create())

	NotifyMealRecordCreated(elder, "rec-1")

	assert.Empty(t, fake.calls)
	assert.Empty(t, allRecords(t))
}

func TestResolveEldersWithReminderDevices(t *testing.T) {
	setupPushTest(t)

	elderWithDevice := &models.UserModel{Phone: "13800001111", Password: "secret123", Role: ctypes.RoleElder}
	require.NoError(t, elderWithDevice.Create())
	elderNoDevice := &models.UserModel{Phone: "13800002222", Password: "secret123", Role: ctypes.RoleElder}
	require.NoError(t, elderNoDevice.Create())
	child := &models.UserModel{Phone: "13800003333", Password: "secret123", Role: ctypes.RoleChild}
	require.NoError(t, child.Create())

	addDevice(t, elderWithDevice.ID, "elder-android", ctypes.PlatformAndroid)
	addDevice(t, child.ID, "child-android", ctypes.PlatformAndroid)

	elders, deviceCount, err := ResolveEldersWithReminderDevices()
	require.NoError(t, err)
	assert.Equal(t, []uint{elderWithDevice.ID}, elders)
	assert.Equal(t, 1, deviceCount)
}

func TestMealReminderDispatch(t *testing.T) {
	fake := setupPushTest(t)
	addDevice(t, 1, "elder-android", ctypes.PlatformAndroid)

	SendMealReminder([]uint{1})

	records := allRecords(t)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, ctypes.PushTypeMealReminder, record.PushType)
	assert.Empty(t, record.RelatedEntityID)
	assert.Equal(t, ctypes.PushStatusSuccess, record.Status)
	assert.False(t, time.Time(record.SentAt).IsZero())
	require.Len(t, fake.extras, 1)
	assert.Equal(t, "reminder", fake.extras[0]["type"])
	assert.Equal(t, "create_meal_record", fake.extras[0]["action"])
}
