package router

import (
	"elderdiet/api"
	"elderdiet/middleware"
)

func (router RouterGroup) UserRouter() {
	userApi := api.AppGroupApp.UserApi
	userRouter := router.Group("user")
	userRouter.POST("login", userApi.UserLogin)
	userRouter.POST("logout", middleware.JwtAuth(), userApi.UserLogout)
	userRouter.GET("", middleware.JwtAuth(), userApi.UserInfo)
}
