package models

import (
	"testing"
	"time"

	"elderdiet/global"
	"elderdiet/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushRecordLifecycleMarks(t *testing.T) {
	setupTestDB(t)

	record := &PushRecordModel{
		PushType:    ctypes.PushTypeMealReminder,
		Title:       "膳食记录提醒",
		Content:     "该记录今天的膳食了，保持健康的饮食习惯！",
		Status:      ctypes.PushStatusPending,
		TargetCount: 3,
	}
	require.NoError(t, global.DB.Create(record).Error)
	assert.False(t, record.Status.IsTerminal())

	record.MarkAsSending()
	require.NoError(t, record.Save())
	assert.False(t, record.Status.IsTerminal())
	assert.False(t, time.Time(record.SentAt).IsZero())

	record.MarkAsFailed("网关超时")
	require.NoError(t, record.Save())
	assert.True(t, record.Status.IsTerminal())
	assert.Equal(t, 0, record.SuccessCount)
	assert.Equal(t, 3, record.FailureCount)

	var stored PushRecordModel
	require.NoError(t, global.DB.First(&stored, record.ID).Error)
	assert.Equal(t, ctypes.PushStatusFailed, stored.Status)
	assert.Equal(t, "网关超时", stored.ErrorMessage)
}

func TestPushRecordListFilters(t *testing.T) {
	setupTestDB(t)

	records := []PushRecordModel{
		{PushType: ctypes.PushTypeMealRecord, Status: ctypes.PushStatusSuccess, RelatedEntityID: "record-1"},
		{PushType: ctypes.PushTypeMealRecord, Status: ctypes.PushStatusFailed, RelatedEntityID: "record-2"},
		{PushType: ctypes.PushTypeSystem, Status: ctypes.PushStatusSuccess},
	}
	for i := range records {
		require.NoError(t, global.DB.Create(&records[i]).Error)
	}

	list, total, err := PushRecordList(PushRecordListRequest{PushType: ctypes.PushTypeMealRecord})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	list, total, err = PushRecordList(PushRecordListRequest{Status: ctypes.PushStatusFailed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "record-2", list[0].RelatedEntityID)

	byEntity, err := PushRecordsByRelatedEntity("record-1")
	require.NoError(t, err)
	require.Len(t, byEntity, 1)
	assert.Equal(t, ctypes.PushTypeMealRecord, byEntity[0].PushType)
}

func TestCleanupOldPushRecords(t *testing.T) {
	setupTestDB(t)

	old := PushRecordModel{PushType: ctypes.PushTypeSystem, Status: ctypes.PushStatusSuccess}
	recent := PushRecordModel{PushType: ctypes.PushTypeSystem, Status: ctypes.PushStatusSuccess}
	require.NoError(t, global.DB.Create(&old).Error)
	require.NoError(t, global.DB.Create(&recent).Error)

	// 把一条记录拨到保留期之外
	require.NoError(t, global.DB.Model(&PushRecordModel{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -40)).Error)

	cleaned, err := CleanupOldPushRecords(30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleaned)

	total, err := CountPushRecords(time.Now().AddDate(0, 0, -60))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
