package router

import (
	"elderdiet/core"
	"elderdiet/global"
	"elderdiet/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	//设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(utils.Cors())
	//创建路由组
	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.UserRouter()
	routerGroupApp.DeviceRouter()
	routerGroupApp.PushRouter()
	return router
}
