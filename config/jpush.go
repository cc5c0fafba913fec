package config

type Jpush struct {
	AppKey       string `mapstructure:"app_key"`       // 极光应用Key
	MasterSecret string `mapstructure:"master_secret"` // 极光主密钥
	Environment  string `mapstructure:"environment"`   // 环境：dev 或 production
	TimeToLive   int64  `mapstructure:"time_to_live"`  // 推送消息存活时间（秒）
	ExcludeIOS   bool   `mapstructure:"exclude_ios"`   // 是否排除iOS设备（客户端崩溃临时策略）
}

// IsProduction 是否为生产环境
func (j Jpush) IsProduction() bool {
	return j.Environment == "production"
}
