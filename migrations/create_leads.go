package migrations

import (
	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"
)

func MigrateLeads() {
	utils.PortalDB.AutoMigrate(&models.Application{})
	utils.PortalDB.AutoMigrate(&models.ContactInquiry{})
	utils.PortalDB.AutoMigrate(&models.Subscriber{})
}
