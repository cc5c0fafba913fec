package push

import (
	"elderdiet/global"
	"elderdiet/models/res"
	"elderdiet/service/push_ser"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type SystemNotificationRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=500"`
	UserIDs []uint `json:"user_ids" validate:"required,min=1,dive,gt=0"`
}

// SystemNotification 管理员向指定用户发送系统通知，发送过程异步执行
func (p *Push) SystemNotification(c *gin.Context) {
	var req SystemNotificationRequest
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

	go push_ser.SendSystemNotification(req.Title, req.Content, req.UserIDs)

	global.Log.Info("系统通知已触发", zap.Int("target_count", len(req.UserIDs)))
	res.SuccessWithMsg(c, nil, "系统通知已触发")
}
