package migrations

import (
	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"
)

func MigratePayments() {
	utils.PortalDB.AutoMigrate(&models.Payment{})
	utils.PortalDB.AutoMigrate(&models.CallbackLog{})
}
