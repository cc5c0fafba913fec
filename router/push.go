package router

import (
	"elderdiet/api"
	"elderdiet/middleware"
)

func (router RouterGroup) PushRouter() {
	pushApi := api.AppGroupApp.PushApi
	pushRouter := router.Group("push")
	pushRouter.GET("records", middleware.JwtAdmin(), pushApi.PushRecordList)
	pushRouter.GET("statistics", middleware.JwtAdmin(), pushApi.PushStatistics)
	pushRouter.POST("system", middleware.JwtAdmin(), pushApi.SystemNotification)
	pushRouter.POST("trigger/lunch", middleware.JwtAdmin(), pushApi.TriggerLunchReminder)
	pushRouter.POST("trigger/dinner", middleware.JwtAdmin(), pushApi.TriggerDinnerReminder)
	pushRouter.POST("trigger/cleanup", middleware.JwtAdmin(), pushApi.TriggerCleanup)
}
