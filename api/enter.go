package api

import (
	"elderdiet/api/device"
	"elderdiet/api/push"
	"elderdiet/api/user"
)

type AppGroup struct {
	UserApi   user.User
	DeviceApi device.Device
	PushApi   push.Push
}

var AppGroupApp = new(AppGroup)
