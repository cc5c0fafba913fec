package push_ser

import (
	"fmt"

	"elderdiet/models"
	"elderdiet/models/ctypes"
)

// ResolveByCapability 将目标用户集解析为启用对应推送能力的设备集
// 返回设备列表和实际拥有可推送设备的用户ID集合，空结果不是错误
func ResolveByCapability(userIDs []uint, capability models.PushCapability) ([]models.UserDeviceModel, []uint, error) {
	devices, err := models.DevicesWithCapability(userIDs, capability)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[uint]struct{}, len(devices))
	var owners []uint
	for _, d := range devices {
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		owners = append(owners, d.UserID)
	}
	return devices, owners, nil
}

// ResolveFamilyChildren 解析老人关联的子女用户
func ResolveFamilyChildren(elderID uint) ([]uint, error) {
	return models.ChildrenOfElder(elderID)
}

// ResolveEldersWithReminderDevices 解析启用提醒推送的老人用户及其设备数
// 没有可推送设备的老人被静默排除
func ResolveEldersWithReminderDevices() ([]uint, int, error) {
	elders, err := models.UsersByRole(ctypes.RoleElder)
	if err != nil {
		return nil, 0, fmt.Errorf("查询老人用户失败: %w", err)
	}
	if len(elders) == 0 {
		return nil, 0, nil
	}

	elderIDs := make([]uint, 0, len(elders))
	for _, u := range elders {
		elderIDs = append(elderIDs, u.ID)
	}

	devices, owners, err := ResolveByCapability(elderIDs, models.CapabilityReminder)
	if err != nil {
		return nil, 0, err
	}
	return owners, len(devices), nil
}
