package main

import (
	"context"
	"flag"
	"log"
	"time"

	"quanngon-be/internal/config"
	"quanngon-be/internal/db"
	"quanngon-be/internal/menu"
	"quanngon-be/internal/settings"
)

// Seeds a fresh database with a starter menu and default settings so the
// storefront is usable immediately after deploy.
func main() {
	force := flag.Bool("force", false, "overwrite existing settings")
	flag.Parse()

	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer db.Disconnect(database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedSettings(ctx, settings.NewRepository(database), *force); err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}
	if err := seedMenu(ctx, menu.NewRepository(database)); err != nil {
		log.Fatalf("failed to seed menu: %v", err)
	}

	log.Println("seed complete")
}

func seedSettings(ctx context.Context, repo settings.Repository, force bool) error {
	existing, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil && !force {
		log.Println("settings already present, skipping (use -force to overwrite)")
		return nil
	}

	return repo.Upsert(ctx, &settings.Settings{
		RestaurantName: "Quán Ngon",
		Description:    "Quán ăn gia đình",
		Tables: []settings.TableZone{
			{Zone: "A", Count: 8},
			{Zone: "B", Count: 4},
		},
		ContactInfo: settings.ContactInfo{
			Address: "12 Lê Lợi, Quận 1, TP.HCM",
			Phone:   "0901234567",
		},
	})
}

func seedMenu(ctx context.Context, repo menu.Repository) error {
	existing, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("menu already present, skipping")
		return nil
	}

	categories := []*menu.Category{
		{Name: "Món chính", Subcategories: []string{"Cơm", "Phở"}},
		{Name: "Đồ uống", Subcategories: []string{"Trà sữa", "Cà phê"}},
	}
	for _, c := range categories {
		if _, err := repo.CreateCategory(ctx, c); err != nil {
			return err
		}
	}

	items := []*menu.Item{
		{
			Name:      "Phở bò",
			Price:     60000,
			Category:  "Món chính",
			Available: true,
			Sizes: []menu.SizeOption{
				{Name: "Thường", Price: 0},
				{Name: "Đặc biệt", Price: 15000},
			},
		},
		{
			Name:      "Cơm gà xối mỡ",
			Price:     55000,
			Category:  "Món chính",
			Available: true,
		},
		{
			Name:      "Trà sữa trân châu",
			Price:     40000,
			Category:  "Đồ uống",
			Available: true,
			Toppings: []menu.ToppingOption{
				{Name: "Trân châu", Price: 5000},
				{Name: "Pudding", Price: 7000},
			},
		},
	}
	for _, item := range items {
		if _, err := repo.CreateItem(ctx, item); err != nil {
			return err
		}
	}

	log.Printf("seeded %d categories, %d menu items", len(categories), len(items))
	return nil
}
