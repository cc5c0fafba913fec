package device

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DeviceRegisterRequest struct {
	DeviceToken           string                `json:"device_token" validate:"required,max=191"`
	Platform              ctypes.DevicePlatform `json:"platform" validate:"required,oneof=ANDROID IOS"`
	DeviceModel           string                `json:"device_model" validate:"omitempty,max=100"`
	AppVersion            string                `json:"app_version" validate:"omitempty,max=50"`
	PushEnabled           *bool                 `json:"push_enabled"`
	MealRecordPushEnabled *bool                 `json:"meal_record_push_enabled"`
	ReminderPushEnabled   *bool                 `json:"reminder_push_enabled"`
}

// DeviceRegister 注册或更新当前用户的推送设备，开关未传时默认开启
func (d *Device) DeviceRegister(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req DeviceRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	device, err := models.DeviceRegister(claims.UserID, models.DeviceRegistration{
		DeviceToken:           req.DeviceToken,
		Platform:              req.Platform,
		DeviceModel:           req.DeviceModel,
		AppVersion:            req.AppVersion,
		PushEnabled:           boolOrDefault(req.PushEnabled, true),
		MealRecordPushEnabled: boolOrDefault(req.MealRecordPushEnabled, true),
		ReminderPushEnabled:   boolOrDefault(req.ReminderPushEnabled, true),
	})
	if err != nil {
		global.Log.Error("models.DeviceRegister() failed", zap.String("error", err.Error()))
		res.Error(c, res.DeviceRegisterError, "设备注册失败")
		return
	}

	global.Log.Info("设备注册成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, device)
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
