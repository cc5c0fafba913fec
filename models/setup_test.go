package models

import (
	"testing"

	"elderdiet/config"
	"elderdiet/global"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为每个测试准备独立的内存数据库
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库每个连接各自独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&UserModel{},
		&FamilyLinkModel{},
		&UserDeviceModel{},
		&PushRecordModel{},
		&LikeNotificationHistoryModel{},
	))

	global.DB = db
	global.Log = zap.NewNop().Sugar()
	global.Config = &config.Config{}
}
