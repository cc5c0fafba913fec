package models

import (
	"fmt"

	"elderdiet/global"

	"gorm.io/gorm/clause"
)

// LikeNotificationHistoryModel 点赞通知历史
// 只记录 (record_id, liker_id) 的首次点赞，反复取消/点赞不会重复通知
type LikeNotificationHistoryModel struct {
	MODEL            `json:","`
	RecordID         string `json:"record_id" gorm:"uniqueIndex:idx_record_liker,length:64;index;comment:膳食记录ID"`
	LikerID          uint   `json:"liker_id" gorm:"uniqueIndex:idx_record_liker;index;comment:点赞者用户ID"`
	RecordOwnerID    uint   `json:"record_owner_id" gorm:"index;comment:记录发布者用户ID"`
	NotificationSent bool   `json:"notification_sent" gorm:"comment:是否已发送通知"`
}

// LikeNotificationCreateIfAbsent 原子地写入点赞通知历史
// 返回 true 表示首次点赞（应当发送通知），false 表示历史已存在（抑制通知）
func LikeNotificationCreateIfAbsent(recordID string, likerID, recordOwnerID uint) (bool, error) {
	history := LikeNotificationHistoryModel{
		RecordID:         recordID,
		LikerID:          likerID,
		RecordOwnerID:    recordOwnerID,
		NotificationSent: true,
	}

	// 唯一索引冲突不是错误，而是抑制信号
	result := global.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&history)
	if result.Error != nil {
		return false, fmt.Errorf("写入点赞通知历史失败: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// LikeNotificationExists 查询点赞通知历史是否存在
func LikeNotificationExists(recordID string, likerID uint) (bool, error) {
	var count int64
	err := global.DB.Model(&LikeNotificationHistoryModel{}).
		Where("record_id = ? AND liker_id = ?", recordID, likerID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("查询点赞通知历史失败: %w", err)
	}
	return count > 0, nil
}
