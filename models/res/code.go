package res

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 客户端错误码 (1000-1999)
	// 通用客户端错误 (1000-1099)
	BadRequest      ResponseCode = 1000 // 错误的请求
	Unauthorized    ResponseCode = 1001 // 未授权
	Forbidden       ResponseCode = 1003 // 禁止访问
	NotFound        ResponseCode = 1004 // 资源未找到
	TooManyRequests ResponseCode = 1007 // 请求过于频繁

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数
	InvalidFormat    ResponseCode = 1102 // 格式错误
	InvalidJSON      ResponseCode = 1103 // JSON解析错误

	// 认证授权错误 (1200-1299)
	TokenExpired       ResponseCode = 1200 // 令牌过期
	TokenInvalid       ResponseCode = 1201 // 令牌无效
	TokenMissing       ResponseCode = 1202 // 缺少令牌
	PermissionDenied   ResponseCode = 1204 // 权限不足
	TokenRefreshFailed ResponseCode = 1205 // 令牌刷新失败

	// 服务端错误码 (2000-2999)
	ServerError        ResponseCode = 2000 // 服务器内部错误
	ServiceUnavailable ResponseCode = 2001 // 服务不可用

	// 数据库相关错误 (2100-2199)
	DBError ResponseCode = 2100 // 数据库错误

	// 第三方服务错误 (2300-2399)
	ThirdPartyError ResponseCode = 2300 // 第三方服务错误

	// 业务错误码 (3000-3999)
	// 用户相关错误 (3000-3099)
	UserNotFound  ResponseCode = 3000 // 用户不存在
	PasswordError ResponseCode = 3002 // 密码错误

	// 设备相关错误 (3400-3499)
	DeviceNotFound      ResponseCode = 3400 // 设备不存在
	DeviceInvalidInput  ResponseCode = 3401 // 设备注册参数无效
	DeviceRegisterError ResponseCode = 3402 // 设备注册失败

	// 推送相关错误 (3500-3599)
	PushRecordNotFound ResponseCode = 3500 // 推送记录不存在
	PushTriggerError   ResponseCode = 3501 // 推送触发失败
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:      "请求参数错误",
	Unauthorized:    "未授权访问",
	Forbidden:       "禁止访问",
	NotFound:        "资源不存在",
	TooManyRequests: "请求过于频繁",

	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	InvalidFormat:    "数据格式错误",
	InvalidJSON:      "JSON解析错误",

	TokenExpired:       "令牌已过期",
	TokenInvalid:       "令牌无效",
	TokenMissing:       "缺少令牌",
	PermissionDenied:   "权限不足",
	TokenRefreshFailed: "令牌刷新失败",

	ServerError:        "服务器内部错误",
	ServiceUnavailable: "服务不可用",
	DBError:            "数据库操作失败",
	ThirdPartyError:    "第三方服务错误",

	UserNotFound:  "用户不存在",
	PasswordError: "密码错误",

	DeviceNotFound:      "设备不存在",
	DeviceInvalidInput:  "设备注册参数无效",
	DeviceRegisterError: "设备注册失败",

	PushRecordNotFound: "推送记录不存在",
	PushTriggerError:   "推送触发失败",
}
