package push

import (
	"elderdiet/global"
	"elderdiet/models/res"
	"elderdiet/service/push_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PushStatistics 查询近期推送统计，结果带短时缓存
func (p *Push) PushStatistics(c *gin.Context) {
	stats, err := push_ser.GetPushStatistics()
	if err != nil {
		global.Log.Error("push_ser.GetPushStatistics() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取推送统计失败")
		return
	}
	res.Success(c, stats)
}
