package migrations

import (
	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"
)

func MigrateServices() {
	utils.PortalDB.AutoMigrate(&models.Service{})
}
