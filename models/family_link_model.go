package models

import (
	"fmt"

	"elderdiet/global"
)

// FamilyLinkModel 家庭关系（老人-子女多对多），本子系统只读
type FamilyLinkModel struct {
	MODEL   `json:","`
	ElderID uint `json:"elder_id" gorm:"uniqueIndex:idx_elder_child;comment:老人用户ID"`
	ChildID uint `json:"child_id" gorm:"uniqueIndex:idx_elder_child;comment:子女用户ID"`
}

// ChildrenOfElder 查询老人关联的全部子女用户ID
func ChildrenOfElder(elderID uint) ([]uint, error) {
	var childIDs []uint
	err := global.DB.Model(&FamilyLinkModel{}).
		Where("elder_id = ?", elderID).
		Pluck("child_id", &childIDs).Error
	if err != nil {
		return nil, fmt.Errorf("查询家庭关系失败: %w", err)
	}
	return childIDs, nil
}
