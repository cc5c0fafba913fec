package models

import (
	"testing"

	"elderdiet/global"
	"elderdiet/models/ctypes"
	"elderdiet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 单连接池下创建用户，事务内的存在性检查不能再向连接池要第二个连接
func TestUserCreateSingleConnection(t *testing.T) {
	setupTestDB(t)

	user := UserModel{
		Phone:    "13800001111",
		Password: "secret123",
		Name:     "张三",
		Role:     ctypes.RoleElder,
	}
	require.NoError(t, user.Create())
	assert.NotZero(t, user.ID)
	// 密码入库前已加密
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, utils.CheckPassword(user.Password, "secret123"))
}

func TestUserCreateDuplicatePhone(t *testing.T) {
	setupTestDB(t)

	first := UserModel{Phone: "13800002222", Password: "secret123", Role: ctypes.RoleChild}
	require.NoError(t, first.Create())

	dup := UserModel{Phone: "13800002222", Password: "another456", Role: ctypes.RoleChild}
	err := dup.Create()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "手机号已注册")

	var count int64
	require.NoError(t, global.DB.Model(&UserModel{}).Where("phone = ?", "13800002222").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
