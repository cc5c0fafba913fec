package models

import (
	"elderdiet/models/ctypes"
)

// MODEL 模型基类
// 本子系统的删除都是真删除（设备清理、记录保留期清理），不使用软删除，
// 否则 (user_id, device_token) 唯一索引会被已删除行占用
type MODEL struct {
	ID        uint          `gorm:"primaryKey;comment:id" json:"id" structs:"-"`
	CreatedAt ctypes.MyTime `gorm:"comment:创建时间" json:"created_at" structs:"-"`
	UpdatedAt ctypes.MyTime `gorm:"comment:更新时间" json:"updated_at" structs:"-"`
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}

type PageRequest struct {
	Page     int `json:"page" form:"page" validate:"omitempty,gte=1"`
	PageSize int `json:"page_size" form:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// Normalize 填充分页默认值
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}
