package main

import (
	"log"
	"os"
	"time"

	"ai-humanizer-be/internal/entity"
	"ai-humanizer-be/internal/mapper"
	"ai-humanizer-be/internal/model"
	"ai-humanizer-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	// AutoMigrate won't create extensions
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	models := []interface{}{
		&model.Plan{},
		&model.TokenAddon{},
		&model.User{},
		&model.PaymentConfig{},
		&model.AiConfig{},
		&model.TokenRules{},
		&model.StatsCounters{},
		&model.AuditLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("Migration complete.")

	if os.Getenv("SEED_DATA") == "true" {
		color.Cyan("Seeding initial dataset...")
		if err := seed(db); err != nil {
			log.Fatalf("Error: Seed failed: %v", err)
		}
		color.Green("Seed complete.")
	}

	color.Green("✅ Database ready.")
}

func strPtr(s string) *string { return &s }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// seed loads the dataset the console shipped with. Plans and users are
// skipped when a row with the same name/email already exists, singleton
// rows are upserted.
func seed(db *gorm.DB) error {
	plans := []model.Plan{
		{Name: "Normal", TokenLimit: 5000, PriceINR: 0, PriceUSD: 0, CurrencyVisibility: "BOTH", Active: true},
		{Name: "Pro", TokenLimit: 50000, PriceINR: 499, PriceUSD: 5.99, CurrencyVisibility: "BOTH", Active: true},
		{Name: "Advance", TokenLimit: 200000, PriceINR: 1499, PriceUSD: 17.99, CurrencyVisibility: "BOTH", Active: true},
	}
	for i := range plans {
		if err := db.Where("name = ?", plans[i].Name).FirstOrCreate(&plans[i]).Error; err != nil {
			return err
		}
	}

	addons := []model.TokenAddon{
		{Name: "Small Top-up", ExtraTokens: 5000, PriceINR: 99, PriceUSD: 1.19, CurrencyVisibility: "BOTH", Active: true},
		{Name: "Medium Top-up", ExtraTokens: 20000, PriceINR: 299, PriceUSD: 3.59, CurrencyVisibility: "BOTH", Active: true},
		{Name: "Large Top-up", ExtraTokens: 50000, PriceINR: 599, PriceUSD: 7.19, CurrencyVisibility: "INR", Active: true},
	}
	for i := range addons {
		if err := db.Where("name = ?", addons[i].Name).FirstOrCreate(&addons[i]).Error; err != nil {
			return err
		}
	}

	users := []model.User{
		{Email: "rahul@gmail.com", UserType: "Paid", PlanName: strPtr("Pro"), TokensUsed: 23450, TokensRemaining: 26550, PaymentStatus: "Paid", Blocked: false, JoinedAt: date("2025-12-01")},
		{Email: "priya@yahoo.com", UserType: "Free", PlanName: nil, TokensUsed: 3200, TokensRemaining: 1800, PaymentStatus: "N/A", Blocked: false, JoinedAt: date("2025-12-15")},
		{Email: "john@outlook.com", UserType: "Paid", PlanName: strPtr("Advance"), TokensUsed: 145000, TokensRemaining: 55000, PaymentStatus: "Paid", Blocked: false, JoinedAt: date("2025-11-20")},
		{Email: "sarah@gmail.com", UserType: "Free", PlanName: nil, TokensUsed: 4800, TokensRemaining: 200, PaymentStatus: "N/A", Blocked: true, JoinedAt: date("2026-01-05")},
		{Email: "amit@company.co", UserType: "Paid", PlanName: strPtr("Pro"), TokensUsed: 48000, TokensRemaining: 2000, PaymentStatus: "Paid", Blocked: false, JoinedAt: date("2025-10-10")},
		{Email: "lisa@startup.io", UserType: "Free", PlanName: nil, TokensUsed: 1200, TokensRemaining: 3800, PaymentStatus: "N/A", Blocked: false, JoinedAt: date("2026-01-20")},
		{Email: "raj@dev.com", UserType: "Paid", PlanName: strPtr("Normal"), TokensUsed: 2300, TokensRemaining: 2700, PaymentStatus: "Pending", Blocked: false, JoinedAt: date("2026-01-28")},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	upsert := func(m interface{}) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(m).Error
	}

	if err := upsert(&model.PaymentConfig{
		Id:                mapper.SingletonRowId,
		RazorpayKeyId:     "rzp_test_1234567890",
		RazorpayKeySecret: "sk_test_placeholder_secret",
		Mode:              string(entity.GatewayModeTest),
		AllowedCurrency:   string(entity.CurrencyINR),
	}); err != nil {
		return err
	}

	if err := upsert(&model.AiConfig{
		Id:       mapper.SingletonRowId,
		Provider: string(entity.AiProviderOpenAI),
		ApiKey:   "sk-placeholder",
		Model:    "gpt-4o",
		Enabled:  true,
	}); err != nil {
		return err
	}

	if err := upsert(&model.TokenRules{
		Id:                 mapper.SingletonRowId,
		GuestFreeTokens:    500,
		LoggedInFreeTokens: 5000,
		TokensPerWord:      2,
	}); err != nil {
		return err
	}

	return upsert(&model.StatsCounters{
		Id:               mapper.SingletonRowId,
		TotalTokensUsed:  8456230,
		TotalRevenueINR:  2456780,
		TotalRevenueUSD:  29450,
		ActiveAiProvider: string(entity.AiProviderOpenAI),
	})
}
