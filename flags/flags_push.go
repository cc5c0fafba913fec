package flags

import (
	"elderdiet/global"
	"elderdiet/service/corn_ser"

	"github.com/urfave/cli/v2"
)

func Reminder(c *cli.Context) error {
	switch c.String("meal") {
	case "lunch":
		corn_ser.TriggerLunchReminderManually()
	case "dinner":
		corn_ser.TriggerDinnerReminderManually()
	default:
		global.Log.Errorf("无效的餐次: %s", c.String("meal"))
	}
	return nil
}

func Cleanup(c *cli.Context) error {
	corn_ser.CleanupExpiredData()
	return nil
}
