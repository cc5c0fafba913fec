package device

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceList 查询当前用户的全部设备
func (d *Device) DeviceList(c *gin.Context) {
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)

	devices, err := models.DevicesByUser(claims.UserID)
	if err != nil {
		global.Log.Error("models.DevicesByUser() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取设备列表失败")
		return
	}
	res.Success(c, devices)
}
