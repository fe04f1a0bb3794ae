package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"github.com/blueteamlabs/argus/internal/config"
	"github.com/blueteamlabs/argus/internal/database"
	"github.com/blueteamlabs/argus/internal/models"
	"github.com/blueteamlabs/argus/internal/services"
)

// Sample indicators mirroring what an automated detector would report.
var samples = map[models.IndicatorType][]string{
	models.TypeIP: {
		"192.168.1.100", "10.0.0.50", "172.16.0.25",
		"203.0.113.42", "198.51.100.17", "192.0.2.88",
	},
	models.TypeHash: {
		"a94a8fe5ccb19ba61c4c0873d391e987982fbbd3",
		"5eb63bbbe01eeed093cb22bb8f5acdc3",
		"d8e8fca2dc0f896fd7cb4cb0031ba249",
	},
	models.TypeURL: {
		"http://malware-site.evil/payload.exe",
		"https://phishing.bad/login",
		"http://c2server.net:8080/beacon",
	},
	models.TypeDomain: {
		"malware-c2.com", "phishing-site.net", "bad-domain.org",
	},
}

var sources = []string{"Firewall-01", "IDS-Suricata", "SIEM-Alert", "VirusTotal", "AbuseIPDB"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Threat{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("✓ Database migrated successfully")

	seeded, skipped := seedThreats(db)
	fmt.Printf("✓ Seeded %d IOCs (%d already present)\n", seeded, skipped)
}

func seedThreats(db *gorm.DB) (seeded, skipped int) {
	service := services.NewThreatService(db)
	severities := models.Severities()

	for indicatorType, values := range samples {
		for _, value := range values {
			source := sources[rand.Intn(len(sources))]
			_, err := service.Create(services.CreateThreatInput{
				Type:     string(indicatorType),
				Value:    value,
				Severity: string(severities[rand.Intn(len(severities))]),
				Source:   &source,
			})
			switch {
			case err == nil:
				seeded++
			case errors.Is(err, services.ErrDuplicateValue):
				skipped++
			default:
				log.Fatalf("Failed to seed IOC %q: %v", value, err)
			}
		}
	}

	return seeded, skipped
}
