package user

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserInfo(c *gin.Context) {
	var user models.UserModel
	_claims, _ := c.Get("claims")
	claims := _claims.(*utils.CustomClaims)
	if err := user.FindByID(claims.UserID); err != nil {
		global.Log.Error("user.FindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.UserNotFound, "获取用户信息失败")
		return
	}
	res.Success(c, gin.H{
		"id":    user.ID,
		"phone": user.Phone,
		"name":  user.Name,
		"role":  user.Role,
	})
}
