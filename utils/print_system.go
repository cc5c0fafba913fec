package utils

import (
	"net"

	"elderdiet/global"

	"go.uber.org/zap"
)

// PrintSystem 打印服务监听地址
func PrintSystem() {
	ip := global.Config.System.Host
	port := global.Config.System.Port

	if ip == "0.0.0.0" {
		for _, i := range GetIPList() {
			global.Log.Infof("elderdiet_server 运行在： http://%s:%d/api", i, port)
		}
	} else {
		global.Log.Infof("elderdiet_server 运行在： http://%s:%d/api", ip, port)
	}
}

// GetIPList 获取本机所有IPv4地址
func GetIPList() (ipList []string) {
	interfaces, err := net.Interfaces()
	if err != nil {
		global.Log.Error("net.Interfaces() failed", zap.String("error", err.Error()))
	}

	for _, iface := range interfaces {
		address, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range address {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}
			ipList = append(ipList, ip4.String())
		}
	}
	return ipList
}
