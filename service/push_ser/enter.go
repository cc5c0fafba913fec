package push_ser

import (
	"elderdiet/global"

	"go.uber.org/zap"
)

// 推送网关实例，配置不完整时保持为 nil，派发时跳过
var gateway Gateway

// Init 初始化推送网关
func Init() {
	conf := global.Config.Jpush
	if conf.AppKey == "" || conf.MasterSecret == "" {
		global.Log.Warn("极光配置不完整，appKey或masterSecret为空，推送将被跳过")
		return
	}
	gateway = newJpushClient(conf)
	global.Log.Info("极光推送客户端初始化成功",
		zap.String("environment", conf.Environment),
		zap.Bool("exclude_ios", conf.ExcludeIOS))
}

// SetGateway 替换推送网关（测试或灰度接入其他网关时使用）
func SetGateway(g Gateway) {
	gateway = g
}
