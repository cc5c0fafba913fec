package corn_ser

import (
	"testing"
	"time"

	"elderdiet/config"
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCornTest(t *testing.T) {
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
		&models.UserDeviceModel{},
		&models.PushRecordModel{},
	))

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{}
}

func TestCleanupExpiredData(t *testing.T) {
	setupCornTest(t)

	_, err := models.DeviceRegister(1, models.DeviceRegistration{
		DeviceToken: "stale", Platform: ctypes.PlatformAndroid, PushEnabled: true,
	})
	require.NoError(t, err)
	_, err = models.DeviceRegister(2, models.DeviceRegistration{
		DeviceToken: "fresh", Platform: ctypes.PlatformAndroid, PushEnabled: true,
	})
	require.NoError(t, err)
	require.NoError(t, global.DB.Model(&models.UserDeviceModel{}).
		Where("device_token = ?", "stale").
		Update("last_active_at", time.Now().AddDate(0, 0, -60)).Error)

	record := models.PushRecordModel{PushType: ctypes.PushTypeSystem, Status: ctypes.PushStatusSuccess}
	require.NoError(t, global.DB.Create(&record).Error)
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).
		Where("id = ?", record.ID).
		Update("created_at", time.Now().AddDate(0, 0, -60)).Error)

	CleanupExpiredData()

	count, err := models.DeviceCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var recordCount int64
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).Count(&recordCount).Error)
	assert.Zero(t, recordCount)
}

func TestCleanupExpiredDataSubstepFailureIsIsolated(t *testing.T) {
	setupCornTest(t)

	record := models.PushRecordModel{PushType: ctypes.PushTypeSystem, Status: ctypes.PushStatusSuccess}
	require.NoError(t, global.DB.Create(&record).Error)
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).
		Where("id = ?", record.ID).
		Update("created_at", time.Now().AddDate(0, 0, -60)).Error)

	// 设备表损坏时设备清理失败，但推送记录清理照常执行
	require.NoError(t, global.DB.Migrator().DropTable(&models.UserDeviceModel{}))

	assert.NotPanics(t, CleanupExpiredData)

	var recordCount int64
	require.NoError(t, global.DB.Model(&models.PushRecordModel{}).Count(&recordCount).Error)
	assert.Zero(t, recordCount)
}
