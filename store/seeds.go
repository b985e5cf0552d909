package store

import (
	"time"

	"github.com/google/uuid"

	"redcar-backend/models"
)

// Seed factories produce the default records written the first time a
// collection key is absent from storage. Each call generates fresh
// identities and timestamps, so two installs never share ids.

func SeedParts() []models.Part {
	now := time.Now().UTC()
	return []models.Part{
		{
			ID:        uuid.New(),
			Name:      "Filtro de óleo",
			Code:      "FO-2187",
			Quantity:  12,
			MinStock:  5,
			Location:  "A1",
			Supplier:  "AutoPeças Silva",
			Category:  models.PartCategoryFluids,
			UnitCost:  28.90,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Pastilha de freio dianteira",
			Code:      "PF-0412",
			Quantity:  8,
			MinStock:  4,
			Location:  "B3",
			Supplier:  "Freios Martins",
			Category:  models.PartCategoryBrakes,
			UnitCost:  145.00,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Bateria 60Ah",
			Code:      "BT-6012",
			Quantity:  3,
			MinStock:  2,
			Location:  "C1",
			Supplier:  "Elétrica Total",
			Category:  models.PartCategoryElectrical,
			UnitCost:  489.90,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Amortecedor traseiro",
			Code:      "AM-3305",
			Quantity:  2,
			MinStock:  4,
			Location:  "D2",
			Supplier:  "AutoPeças Silva",
			Category:  models.PartCategorySuspension,
			UnitCost:  312.50,
			UpdatedAt: now,
		},
	}
}

func SeedRevisions() []models.Revision {
	inTwoDays := time.Now().AddDate(0, 0, 2).Format(models.ScheduledDateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(models.ScheduledDateLayout)
	return []models.Revision{
		{
			ID:                 uuid.New(),
			ClientName:         "Carlos Ferreira",
			ClientPhone:        "+5511987654321",
			VehicleModel:       "Fiat Argo 2021",
			LicensePlate:       "BRA2E19",
			ServiceDescription: "Revisão de 30.000 km",
			ScheduledDate:      inTwoDays,
			ScheduledTime:      "09:00",
			Status:             models.RevisionScheduled,
			Priority:           models.PriorityMedium,
			RemindersEnabled:   true,
		},
		{
			ID:                 uuid.New(),
			ClientName:         "Ana Souza",
			ClientPhone:        "+5511912345678",
			VehicleModel:       "Honda Civic 2019",
			LicensePlate:       "RIO4F56",
			ServiceDescription: "Troca de pastilhas e discos de freio",
			ScheduledDate:      nextWeek,
			ScheduledTime:      "14:30",
			Status:             models.RevisionScheduled,
			Priority:           models.PriorityHigh,
			Notes:              "Cliente relatou ruído ao frear",
			RemindersEnabled:   true,
		},
	}
}

func SeedTeamMembers() []models.TeamMember {
	now := time.Now().UTC()
	certExpiry := now.AddDate(1, 6, 0)
	return []models.TeamMember{
		{
			ID:                  uuid.New(),
			Name:                "Renato Albuquerque",
			Role:                models.RoleMechanic,
			Phone:               "+5511998877665",
			Email:               "renato@redcar.com.br",
			Active:              true,
			ExpertiseLevel:      models.ExpertiseSenior,
			CertificationExpiry: &certExpiry,
			HiredAt:             now.AddDate(-4, -2, 0),
		},
		{
			ID:             uuid.New(),
			Name:           "Isabela Monteiro",
			Role:           models.RoleServiceAdvisor,
			Phone:          "+5511977665544",
			Email:          "isabela@redcar.com.br",
			Active:         true,
			ExpertiseLevel: models.ExpertiseMid,
			HiredAt:        now.AddDate(-1, -8, 0),
		},
	}
}

func SeedClients() []models.Client {
	lastVisit := time.Now().UTC().AddDate(0, -1, 0)
	return []models.Client{
		{
			ID:           uuid.New(),
			Name:         "Carlos Ferreira",
			Phone:        "+5511987654321",
			Email:        "carlos.ferreira@example.com",
			Vehicle:      "Fiat Argo 2021",
			LicensePlate: "BRA2E19",
			LastVisit:    &lastVisit,
			Tier:         models.TierPremium,
			Active:       true,
		},
		{
			ID:           uuid.New(),
			Name:         "Ana Souza",
			Phone:        "+5511912345678",
			Email:        "ana.souza@example.com",
			Vehicle:      "Honda Civic 2019",
			LicensePlate: "RIO4F56",
			Tier:         models.TierStandard,
			Active:       true,
			Notes:        "Prefere contato por WhatsApp",
		},
	}
}

func SeedSuppliers() []models.Supplier {
	lastOrder := time.Now().UTC().AddDate(0, 0, -12)
	return []models.Supplier{
		{
			ID:            uuid.New(),
			Company:       "AutoPeças Silva",
			ContactName:   "Roberto Silva",
			Phone:         "+5511933221100",
			Email:         "vendas@autopecassilva.com.br",
			Category:      models.SupplierParts,
			LeadTimeDays:  3,
			Preferred:     true,
			Rating:        4.5,
			LastOrderDate: &lastOrder,
		},
		{
			ID:           uuid.New(),
			Company:      "Elétrica Total",
			ContactName:  "Fernanda Lima",
			Phone:        "+5511944556677",
			Email:        "contato@eletricatotal.com.br",
			Category:     models.SupplierElectrical,
			LeadTimeDays: 5,
			Rating:       4.0,
		},
	}
}
