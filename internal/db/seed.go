package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gads-manager/internal/core/domain"
)

// seedTemplates are demo templates for a fresh dashboard, one per market.
var seedTemplates = []domain.Template{
	{
		Name:        "NL Search - Generic",
		Description: "Dutch search campaign with broad keywords",
		Category:    domain.CategoryNL,
		Data: domain.TemplateData{
			Budget:          10,
			FinalURL:        "https://example.nl",
			Path1:           "aanbieding",
			Headlines:       []string{"Beste Deals Online", "Vandaag Besteld", "Gratis Verzending"},
			Descriptions:    []string{"Ontdek ons complete aanbod.", "Snel en veilig bestellen."},
			Keywords:        []string{"online deals", "aanbieding"},
			Locations:       []string{"2528"},
			LanguageCode:    "nl",
			DeviceTargeting: domain.DeviceAll,
		},
	},
	{
		Name:        "US Search - Mobile",
		Description: "US mobile-only search campaign",
		Category:    domain.CategoryUS,
		Data: domain.TemplateData{
			Budget:          25,
			FinalURL:        "https://example.com",
			Path1:           "deals",
			Path2:           "today",
			Headlines:       []string{"Top Deals Today", "Order In Minutes", "Free Shipping"},
			Descriptions:    []string{"Browse the full catalog.", "Fast and secure checkout."},
			Keywords:        []string{"online deals", "discount store", "free shipping"},
			Locations:       []string{"2840"},
			LanguageCode:    "en",
			DeviceTargeting: domain.DeviceMobileOnly,
		},
	},
}

// Seed inserts the demo templates. Ids are derived from template names so
// repeated runs do not duplicate them.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for _, tpl := range seedTemplates {
		data, err := json.Marshal(tpl.Data)
		if err != nil {
			return err
		}
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("gads-manager/templates/"+tpl.Name)).String()
		_, err = db.Exec(ctx, `INSERT INTO campaign_templates
    (id, name, description, category, data, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			id, tpl.Name, tpl.Description, tpl.Category, data)
		if err != nil {
			return err
		}
	}
	return nil
}
