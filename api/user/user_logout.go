package user

import (
	"elderdiet/global"
	"elderdiet/models/res"
	"elderdiet/service/redis_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserLogout(c *gin.Context) {
	accessToken := c.GetHeader("Authorization")

	if len(accessToken) < 7 || accessToken[:7] != "Bearer " {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}
	accessToken = accessToken[7:]

	if err := redis_ser.InvalidateToken(accessToken); err != nil {
		global.Log.Error("redis_ser.InvalidateToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "登出失败")
		return
	}
	global.Log.Info("用户退出成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, nil)
}
