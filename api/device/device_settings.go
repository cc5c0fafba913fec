package device

import (
	"errors"

	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DeviceSettingsRequest struct {
	DeviceToken           string `json:"device_token" validate:"required,max=191"`
	PushEnabled           *bool  `json:"push_enabled"`
	MealRecordPushEnabled *bool  `json:"meal_record_push_enabled"`
	ReminderPushEnabled   *bool  `json:"reminder_push_enabled"`
}

// DeviceUpdateSettings 更新设备推送开关，未传的开关保持原值
func (d *Device) DeviceUpdateSettings(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req DeviceSettingsRequest
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

	device, err := models.DeviceUpdateSettings(claims.UserID, req.DeviceToken,
		req.PushEnabled, req.MealRecordPushEnabled, req.ReminderPushEnabled)
	if err != nil {
		if errors.Is(err, models.ErrDeviceNotFound) {
			res.Error(c, res.DeviceNotFound, "设备不存在")
			return
		}
		global.Log.Error("models.DeviceUpdateSettings() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "更新设备设置失败")
		return
	}

	global.Log.Info("更新设备设置成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, device)
}
