package push

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/res"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PushRecordList 分页查询推送记录，支持按类型、状态和时间段过滤
func (p *Push) PushRecordList(c *gin.Context) {
	var req models.PushRecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	req.Normalize()
	records, total, err := models.PushRecordList(req)
	if err != nil {
		global.Log.Error("models.PushRecordList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取推送记录失败")
		return
	}

	res.SuccessWithPage(c, records, total, req.Page, req.PageSize)
}
