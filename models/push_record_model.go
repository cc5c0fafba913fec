package models

import (
	"fmt"
	"time"

	"elderdiet/global"
	"elderdiet/models/ctypes"
)

// PushRecordModel 推送记录，每次派发尝试一条，终态后除保留期清理外不再变更
type PushRecordModel struct {
	MODEL           `json:","`
	PushType        ctypes.PushType   `json:"push_type" gorm:"size:30;index;comment:推送类型"`
	Title           string            `json:"title" gorm:"size:100;comment:推送标题"`
	Content         string            `json:"content" gorm:"size:500;comment:推送内容"`
	TargetUserIDs   ctypes.UintList   `json:"target_user_ids" gorm:"type:json;comment:目标用户ID快照"`
	DeviceTokens    ctypes.StringList `json:"device_tokens" gorm:"type:json;comment:设备Token快照"`
	RelatedEntityID string            `json:"related_entity_id" gorm:"size:64;index;comment:关联实体ID"`
	Status          ctypes.PushStatus `json:"status" gorm:"size:10;index;comment:推送状态"`
	DispatchID      string            `json:"dispatch_id" gorm:"size:32;comment:派发关联ID(极光cid)"`
	JpushMessageID  string            `json:"jpush_message_id" gorm:"size:64;comment:极光消息ID"`
	TargetCount     int               `json:"target_count" gorm:"comment:目标设备数量"`
	SuccessCount    int               `json:"success_count" gorm:"comment:成功推送数量"`
	FailureCount    int               `json:"failure_count" gorm:"comment:失败推送数量"`
	ErrorMessage    string            `json:"error_message" gorm:"size:500;comment:错误信息"`
	SentAt          ctypes.MyTime     `json:"sent_at" gorm:"type:datetime NULL;comment:发送时间"`
}

// MarkAsSending 标记为发送中
func (r *PushRecordModel) MarkAsSending() {
	r.Status = ctypes.PushStatusSending
	r.SentAt = ctypes.MyTime(time.Now())
}

// MarkAsSuccess 标记为发送成功
func (r *PushRecordModel) MarkAsSuccess(jpushMessageID string, successCount int) {
	r.Status = ctypes.PushStatusSuccess
	r.JpushMessageID = jpushMessageID
	r.SuccessCount = successCount
	r.FailureCount = 0
}

// MarkAsFailed 标记为发送失败
func (r *PushRecordModel) MarkAsFailed(errorMessage string) {
	r.Status = ctypes.PushStatusFailed
	r.ErrorMessage = errorMessage
	r.SuccessCount = 0
	r.FailureCount = r.TargetCount
}

// MarkAsPartial 标记为部分成功
// 当前网关单次调用只有整体成败，保留该状态以兼容未来按设备返回结果的网关
func (r *PushRecordModel) MarkAsPartial(jpushMessageID string, successCount, failureCount int) {
	r.Status = ctypes.PushStatusPartial
	r.JpushMessageID = jpushMessageID
	r.SuccessCount = successCount
	r.FailureCount = failureCount
}

// Save 持久化当前状态
func (r *PushRecordModel) Save() error {
	if err := global.DB.Save(r).Error; err != nil {
		return fmt.Errorf("保存推送记录失败: %w", err)
	}
	return nil
}

// PushRecordListRequest 推送记录分页查询参数
type PushRecordListRequest struct {
	PageRequest
	PushType ctypes.PushType   `json:"push_type" form:"push_type" validate:"omitempty"`
	Status   ctypes.PushStatus `json:"status" form:"status" validate:"omitempty"`
	Begin    string            `json:"begin" form:"begin" validate:"omitempty"` // 起始时间 2006-01-02 15:04:05
	End      string            `json:"end" form:"end" validate:"omitempty"`    // 结束时间
}

// PushRecordList 分页查询推送记录
func PushRecordList(req PushRecordListRequest) ([]PushRecordModel, int64, error) {
	req.Normalize()

	query := global.DB.Model(&PushRecordModel{})
	if req.PushType != "" {
		query = query.Where("push_type = ?", req.PushType)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Begin != "" {
		query = query.Where("created_at >= ?", req.Begin)
	}
	if req.End != "" {
		query = query.Where("created_at <= ?", req.End)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计推送记录失败: %w", err)
	}

	var records []PushRecordModel
	err := query.Order("created_at DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询推送记录失败: %w", err)
	}
	return records, total, nil
}

// PushRecordsByRelatedEntity 查询关联实体的推送记录
func PushRecordsByRelatedEntity(relatedEntityID string) ([]PushRecordModel, error) {
	var records []PushRecordModel
	err := global.DB.Where("related_entity_id = ?", relatedEntityID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询关联推送记录失败: %w", err)
	}
	return records, nil
}

// CountPushRecordsByStatus 统计时间窗口内指定状态的推送记录数
func CountPushRecordsByStatus(status ctypes.PushStatus, since time.Time) (int64, error) {
	var count int64
	err := global.DB.Model(&PushRecordModel{}).
		Where("status = ? AND created_at >= ?", status, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计推送记录失败: %w", err)
	}
	return count, nil
}

// CountPushRecords 统计时间窗口内的推送记录总数
func CountPushRecords(since time.Time) (int64, error) {
	var count int64
	err := global.DB.Model(&PushRecordModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计推送记录失败: %w", err)
	}
	return count, nil
}

// CleanupOldPushRecords 清理保留期之外的推送记录
func CleanupOldPushRecords(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	result := global.DB.Where("created_at < ?", cutoff).Delete(&PushRecordModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("清理推送记录失败: %w", result.Error)
	}
	global.Log.Infof("清理 %s 之前的推送记录完成，共 %d 条", cutoff.Format("2006-01-02 15:04:05"), result.RowsAffected)
	return result.RowsAffected, nil
}
