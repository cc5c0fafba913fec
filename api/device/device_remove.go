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

type DeviceRemoveRequest struct {
	DeviceToken string `json:"device_token" validate:"required,max=191"`
}

// DeviceRemove 注销设备，设备本就不存在时同样返回成功
func (d *Device) DeviceRemove(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	var req DeviceRemoveRequest
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

	if err := models.DeviceRemove(claims.UserID, req.DeviceToken); err != nil {
		global.Log.Error("models.DeviceRemove() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "注销设备失败")
		return
	}

	global.Log.Info("注销设备成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
