package flags

import (
	"elderdiet/global"
	"elderdiet/models"
	"elderdiet/models/ctypes"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	phone := c.String("phone")
	password := c.String("password")
	name := c.String("name")
	role := ctypes.UserRole(c.String("role"))
	if !role.IsValid() {
		global.Log.Errorf("无效的用户角色: %s", role)
		return nil
	}

	user := &models.UserModel{
		Phone:    phone,
		Password: password,
		Name:     name,
		Role:     role,
	}

	if err := user.Create(); err != nil {
		global.Log.Error("用户创建失败",
			zap.String("error", err.Error()),
		)
		return err
	}

	global.Log.Infof("用户创建成功,phone:%s,role:%s", user.Phone, string(role))
	return nil
}

func FamilyLink(c *cli.Context) error {
	elderID := c.Uint("elder")
	childID := c.Uint("child")
	if elderID == 0 || childID == 0 {
		global.Log.Error("必须指定 elder 和 child 用户ID")
		return nil
	}

	link := &models.FamilyLinkModel{
		ElderID: elderID,
		ChildID: childID,
	}
	if err := global.DB.Create(link).Error; err != nil {
		global.Log.Error("绑定家庭关系失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("家庭关系绑定成功,elder:%d,child:%d", elderID, childID)
	return nil
}
