package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleElder UserRole = "elder" // 老人用户
	RoleChild UserRole = "child" // 子女用户
	RoleAdmin UserRole = "admin" // 管理员
)

// IsValid 检查角色是否合法
func (r UserRole) IsValid() bool {
	switch r {
	case RoleElder, RoleChild, RoleAdmin:
		return true
	}
	return false
}
