package ctypes

// DevicePlatform 设备平台
type DevicePlatform string

const (
	PlatformAndroid DevicePlatform = "ANDROID"
	PlatformIOS     DevicePlatform = "IOS"
)

// IsValid 是否为已知平台
func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformAndroid, PlatformIOS:
		return true
	}
	return false
}

// PushType 推送类型
type PushType string

const (
	PushTypeMealRecord   PushType = "MEAL_RECORD_NOTIFICATION" // 膳食记录通知
	PushTypeMealReminder PushType = "MEAL_REMINDER"            // 膳食提醒
	PushTypeSystem       PushType = "SYSTEM_NOTIFICATION"      // 系统通知
	PushTypeComment      PushType = "COMMENT_NOTIFICATION"     // 评论通知
	PushTypeLike         PushType = "LIKE_NOTIFICATION"        // 点赞通知
)

// IsValid 是否为已知推送类型
func (t PushType) IsValid() bool {
	switch t {
	case PushTypeMealRecord, PushTypeMealReminder, PushTypeSystem, PushTypeComment, PushTypeLike:
		return true
	}
	return false
}

// PushStatus 推送状态
type PushStatus string

const (
	PushStatusPending PushStatus = "PENDING" // 待发送
	PushStatusSending PushStatus = "SENDING" // 发送中
	PushStatusSuccess PushStatus = "SUCCESS" // 发送成功
	PushStatusFailed  PushStatus = "FAILED"  // 发送失败
	PushStatusPartial PushStatus = "PARTIAL" // 部分成功
)

// IsTerminal 是否为终态，终态记录除清理外不再变更
func (s PushStatus) IsTerminal() bool {
	switch s {
	case PushStatusSuccess, PushStatusFailed, PushStatusPartial:
		return true
	case PushStatusPending, PushStatusSending:
		return false
	}
	return false
}
