package flags

import (
	"os"

	"elderdiet/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Newflags() {
	var app = cli.NewApp()
	app.Name = "养老膳食推送服务"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "phone",
					Aliases: []string{"m"},
					Usage:   "手机号",
					Value:   "13800000000",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "用户密码",
					Value:   "123456",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "档案姓名",
					Value:   "",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (elder/child/admin)",
					Value:   "admin",
				},
			},
		},
		{
			Name:    "family",
			Aliases: []string{"f"},
			Usage:   "绑定家庭关系",
			Action:  FamilyLink,
			Flags: []cli.Flag{
				&cli.UintFlag{
					Name:  "elder",
					Usage: "老人用户ID",
				},
				&cli.UintFlag{
					Name:  "child",
					Usage: "子女用户ID",
				},
			},
		},
		{
			Name:   "reminder",
			Usage:  "手动触发用餐提醒 (lunch/dinner)",
			Action: Reminder,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "meal",
					Usage: "餐次 (lunch/dinner)",
					Value: "lunch",
				},
			},
		},
		{
			Name:   "cleanup",
			Usage:  "手动触发数据清理",
			Action: Cleanup,
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)

	}
}
