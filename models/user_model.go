package models

import (
	"errors"
	"fmt"

	"elderdiet/global"
	"elderdiet/models/ctypes"
	"elderdiet/utils"

	"gorm.io/gorm"
)

// UserModel 用户模型（用户目录协作方，本子系统只读角色和家庭关系）
type UserModel struct {
	MODEL    `json:","`
	Phone    string          `json:"phone" gorm:"uniqueIndex:idx_phone,length:191" validate:"required,min=5,max=20"`
	Password string          `json:"-" validate:"required,min=6"`
	Name     string          `json:"name" gorm:"size:50"` // 档案姓名，可为空
	Role     ctypes.UserRole `json:"role" validate:"required"`
}

// Create 创建用户
func (u *UserModel) Create() error {
	// 验证用户输入
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		// 检查用户是否存在
		if err := u.checkExist(tx); err != nil {
			return fmt.Errorf("用户检查失败: %w", err)
		}

		// 密码加密
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		// 创建用户
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		return nil
	})
}

// checkExist 检查用户是否已存在，在事务内查询避免占用第二个连接
func (u *UserModel) checkExist(tx *gorm.DB) error {
	var exists bool
	err := tx.Model(&UserModel{}).
		Select("1").
		Where("phone = ?", u.Phone).
		Limit(1).
		Find(&exists).
		Error

	if err != nil {
		return fmt.Errorf("检查用户存在性失败: %w", err)
	}
	if exists {
		return errors.New("手机号已注册")
	}
	return nil
}

// FindByPhone 根据手机号查找用户
func (u *UserModel) FindByPhone(phone string) error {
	return global.DB.Where("phone = ?", phone).Take(u).Error
}

// FindByID 根据ID查找用户
func (u *UserModel) FindByID(id uint) error {
	return global.DB.Take(u, id).Error
}

// UsersByRole 查询指定角色的所有用户
func UsersByRole(role ctypes.UserRole) ([]UserModel, error) {
	var users []UserModel
	if err := global.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("查询角色用户失败: %w", err)
	}
	return users, nil
}

// DisplayName 用户展示名称：档案姓名 > 手机尾号 > 默认称呼
func (u *UserModel) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if len(u.Phone) >= 4 {
		return "用户" + u.Phone[len(u.Phone)-4:]
	}
	return "家人"
}
