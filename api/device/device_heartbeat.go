package device

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type DeviceHeartbeatRequest struct {
	DeviceToken string `json:"device_token" validate:"required,max=191"`
}

// DeviceHeartbeat 刷新设备最后活跃时间，未知Token静默忽略
func (d *Device) DeviceHeartbeat(c *gin.Context) {
	var req DeviceHeartbeatRequest
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

	models.DeviceHeartbeat(req.DeviceToken)
	res.Success(c, nil)
}
