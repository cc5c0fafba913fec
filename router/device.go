package router

import (
	"elderdiet/api"
	"elderdiet/middleware"
)

func (router RouterGroup) DeviceRouter() {
	deviceApi := api.AppGroupApp.DeviceApi
	deviceRouter := router.Group("device")
	deviceRouter.POST("register", middleware.JwtAuth(), deviceApi.DeviceRegister)
	deviceRouter.PUT("settings", middleware.JwtAuth(), deviceApi.DeviceUpdateSettings)
	deviceRouter.DELETE("", middleware.JwtAuth(), deviceApi.DeviceRemove)
	deviceRouter.POST("heartbeat", deviceApi.DeviceHeartbeat)
	deviceRouter.GET("list", middleware.JwtAuth(), deviceApi.DeviceList)
}
