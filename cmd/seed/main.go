package main

import (
	"context"
	"log"

	"bantconfirm/internal/config"
	"bantconfirm/internal/db"
	"bantconfirm/internal/model"
	"bantconfirm/internal/repository"
)

// Demo catalog data. Pricing values are display labels, shown as-is in the UI.
var seedCategories = []model.Category{
	{Name: "Internet Leased Line", Icon: "🌐"},
	{Name: "SIP Trunk", Icon: "📞"},
	{Name: "Cloud Storage", Icon: "☁️"},
	{Name: "SMB Cybersecurity Package", Icon: "🔒"},
	{Name: "Proactive IT Support", Icon: "💻"},
	{Name: "Voice Solutions", Icon: "🗣️"},
}

var seedProducts = []model.Product{
	{
		Name:          "SIP Trunk",
		Image:         "https://picsum.photos/400/250?random=1",
		ShortFeatures: []string{"Reliable voice calls", "Scalable", "Cost-effective"},
		Pricing:       "500",
		Category:      "SIP Trunk",
		Description:   "High-quality SIP trunking solutions for businesses of all sizes, ensuring seamless voice communication.",
		Rating:        4.5,
		Tags:          []string{"Best Seller", "Voice"},
	},
	{
		Name:          "Cloud Storage Pro",
		Image:         "https://picsum.photos/400/250?random=2",
		ShortFeatures: []string{"Secure data storage", "Easy access", "Scalable capacity"},
		Pricing:       "₹50/TB",
		Category:      "Cloud Storage",
		Description:   "Enterprise-grade cloud storage with advanced security features and flexible pricing per terabyte.",
		Rating:        4.2,
		Tags:          []string{"Enterprise", "Secure"},
	},
	{
		Name:          "Internet Lease Line",
		Image:         "https://picsum.photos/400/250?random=3",
		ShortFeatures: []string{"Dedicated bandwidth", "High speed", "24/7 support"},
		Pricing:       "₹7000/mo",
		OriginalPrice: "₹7500/mo",
		Category:      "Internet Leased Line",
		Description:   "A dedicated internet connection offering unparalleled speed and reliability for critical business operations.",
		Rating:        4.8,
		Tags:          []string{"Premium", "High Speed"},
	},
	{
		Name:          "SMB Cybersecurity Package",
		Image:         "https://picsum.photos/400/250?random=4",
		ShortFeatures: []string{"Threat detection", "Data protection", "Compliance"},
		Pricing:       "₹199/mo",
		Category:      "SMB Cybersecurity Package",
		Description:   "Comprehensive cybersecurity solutions tailored for small and medium businesses to protect against evolving threats.",
		Rating:        4.7,
		Tags:          []string{"SMB", "Security"},
	},
	{
		Name:          "Proactive IT Support",
		Image:         "https://picsum.photos/400/250?random=5",
		ShortFeatures: []string{"24/7 monitoring", "Remote assistance", "Preventative maintenance"},
		Pricing:       "Starting at ₹1,000/mo",
		Category:      "Proactive IT Support",
		Description:   "Never worry about IT issues again with our proactive monitoring and rapid response support services.",
		Rating:        4.0,
		Tags:          []string{"Support", "24/7"},
	},
	{
		Name:          "Voice Solutions for Enterprises",
		Image:         "https://picsum.photos/400/250?random=6",
		ShortFeatures: []string{"Integrated communication", "Unified messaging", "Advanced IVR"},
		Pricing:       "₹45/user/mo",
		Category:      "Voice Solutions",
		Description:   "Advanced voice communication platforms designed for large enterprises, enhancing productivity and connectivity.",
		Rating:        4.6,
		Tags:          []string{"Enterprise", "Communication"},
	},
	{
		Name:          "CRM Software Basic",
		Image:         "https://picsum.photos/400/250?random=7",
		ShortFeatures: []string{"Lead management", "Customer tracking", "Sales automation"},
		Pricing:       "₹800/mo",
		Category:      "CRM Software",
		Description:   "Essential CRM features for small teams to manage customer relationships and streamline sales processes.",
		Rating:        3.9,
		Tags:          []string{"Startup", "Software"},
	},
	{
		Name:          "WhatsApp Business API",
		Image:         "https://picsum.photos/400/250?random=8",
		ShortFeatures: []string{"Automated messaging", "Broadcast campaigns", "Customer support"},
		Pricing:       "Custom pricing",
		Category:      "WhatsApp API",
		Description:   "Integrate WhatsApp for business communication, enabling automated responses and direct customer engagement.",
		Rating:        4.3,
		Tags:          []string{"API", "Marketing"},
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Category{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	log.Println("Seeding categories...")
	created, err := seedCategoryData(ctx, categoryRepo)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	log.Printf("  - New categories created: %d", created)

	log.Println("Seeding products...")
	created, err = seedProductData(ctx, productRepo)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("  - New products created: %d", created)

	log.Println("Seed completed successfully!")
}

// seedCategoryData inserts demo categories, skipping names that already exist.
func seedCategoryData(ctx context.Context, repo repository.CategoryRepository) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.Name] = true
	}

	created := 0
	for _, c := range seedCategories {
		if have[c.Name] {
			continue
		}
		category := c
		if err := repo.Create(ctx, &category); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedProductData inserts demo products, skipping names that already exist.
func seedProductData(ctx context.Context, repo repository.ProductRepository) (int, error) {
	existing, err := repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Name] = true
	}

	created := 0
	for _, p := range seedProducts {
		if have[p.Name] {
			continue
		}
		product := p
		if err := repo.Create(ctx, &product); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
