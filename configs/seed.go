package configs

import (
	"fmt"
	"log/slog"
	"strings"

	"deliverus/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		slog.Info("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	_, err := seedUser(db, cfg.AdminEmail, cfg.AdminPassword, entity.RoleAdmin)
	return err
}

// SeedOwner creates an owner account with a demo restaurant so the product
// endpoints can be exercised on a fresh database.
func SeedOwner(db *gorm.DB, cfg *Config) error {
	if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
		slog.Info("skip seeding owner: missing OWNER_EMAIL/OWNER_PASSWORD")
		return nil
	}
	owner, err := seedUser(db, cfg.OwnerEmail, cfg.OwnerPassword, entity.RoleOwner)
	if err != nil {
		return err
	}

	var category entity.RestaurantCategory
	if err := db.FirstOrCreate(&category, entity.RestaurantCategory{CategoryName: "Fast Food"}).Error; err != nil {
		return err
	}
	restaurant := entity.Restaurant{
		Name:                 "Casa Félix",
		Address:              "Av. Reina Mercedes 51, Sevilla",
		Description:          "Demo restaurant",
		RestaurantCategoryID: category.ID,
		UserID:               owner.ID,
	}
	return db.Where(entity.Restaurant{Name: restaurant.Name, UserID: owner.ID}).
		FirstOrCreate(&restaurant).Error
}

func seedUser(db *gorm.DB, email, password, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing entity.User
	err := db.Where("email = ?", email).Limit(1).Find(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing.ID != 0 {
		slog.Info("user already exists", "email", email, "role", existing.Role)
		return &existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: strings.ToUpper(role[:1]) + role[1:],
		LastName:  "Seed",
		Role:      role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SeedLookups creates the default category rows.
func SeedLookups(db *gorm.DB) error {
	for _, name := range []string{"Cafe", "Fast Food", "Spanish", "Italian"} {
		if err := db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: name}).Error; err != nil {
			return err
		}
	}
	for _, name := range []string{"Starters", "Main Courses", "Desserts", "Drinks"} {
		if err := db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
