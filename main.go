package main

import (
	"fmt"

	"elderdiet/core"
	"elderdiet/flags"
	"elderdiet/global"
	"elderdiet/router"
	"elderdiet/service/corn_ser"
	"elderdiet/service/push_ser"
	"elderdiet/utils"

	"go.uber.org/zap"
)

func main() {
	var err error
	// 初始化配置
	core.InitConf()
	// 初始化日志
	global.Log = core.NewLogManager(&global.Config.Log)
	// 初始化数据库
	global.DB = core.InitGorm()
	// 初始化redis
	global.Redis = core.InitRedis()
	// 初始化雪花ID
	utils.Init(global.Config.System.StartTime, global.Config.System.MachineID)
	// 初始化命令行参数
	flags.Newflags()
	// 初始化推送网关
	push_ser.Init()
	// 初始化corn
	corn_ser.CornInit()
	// 打印系统信息
	utils.PrintSystem()
	// 初始化路由
	router := router.InitRouter()
	// 启动服务
	err = router.Run(fmt.Sprintf(":%d", global.Config.System.Port))
	if err != nil {
		global.Log.Fatal("启动服务失败", zap.String("error", err.Error()))
	}
}
