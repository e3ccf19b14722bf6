// seed/seed.go
package seed

import (
	"errors"
	"log"

	"engineers-kenya-server/models"
	"engineers-kenya-server/utils"

	"gorm.io/gorm"
)

// SeedServices populates the services catalog shown on the marketing site.
// Idempotent: existing entries are left alone.
func SeedServices() error {
	services := []models.Service{
		{
			Slug:        "structural",
			Title:       "Structural Engineering",
			Description: "Design and analysis of buildings, bridges, and infrastructure projects with cutting-edge CAD technology.",
		},
		{
			Slug:        "electrical",
			Title:       "Electrical Systems",
			Description: "Power distribution, renewable energy solutions, and electrical infrastructure for industrial and commercial facilities.",
		},
		{
			Slug:        "mechanical",
			Title:       "Mechanical Engineering",
			Description: "HVAC systems, machinery design, and mechanical solutions for manufacturing and industrial operations.",
		},
		{
			Slug:        "construction",
			Title:       "Construction Management",
			Description: "Project oversight, quality assurance, and on-site supervision for seamless project execution.",
		},
		{
			Slug:        "consulting",
			Title:       "Consulting & Design",
			Description: "Expert consultation on feasibility studies, technical specifications, and innovative engineering solutions.",
		},
		{
			Slug:        "development",
			Title:       "Project Development",
			Description: "End-to-end project management from concept through completion with proven track record.",
		},
	}

	for _, service := range services {
		var existing models.Service
		err := utils.PortalDB.Where("slug = ?", service.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := utils.PortalDB.Create(&service).Error; err != nil {
			return err
		}
	}

	log.Println("Services catalog seeded successfully.")
	return nil
}
