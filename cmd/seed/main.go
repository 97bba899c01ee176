package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// Seeds the database with a demo user and a few months of fake financial
// history. Intended for local development only.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	db := dbManager.DB()
	log := logger.Get()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		Name:     faker.Name(),
		Email:    "demo@fintrack.local",
		Password: string(hashed),
		Pin:      "0000",
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	log.Infof("Created demo user %s <%s> (password: password123)", user.Name, user.Email)

	bankService := services.NewBankService(db)
	walletService := services.NewWalletService(db)

	banks := models.SupportedBankNames[:3]
	for _, name := range banks {
		if _, err := bankService.CreateBankAccount(user.ID, string(name), rand.Int63n(500_000)); err != nil {
			return fmt.Errorf("failed to seed bank %s: %w", name, err)
		}
	}

	walletNames := []string{"Groceries", "Travel", "Emergency"}
	for _, name := range walletNames {
		if _, err := walletService.CreateWallet(user.ID, name, rand.Int63n(100_000)); err != nil {
			return fmt.Errorf("failed to seed wallet %s: %w", name, err)
		}
	}

	now := time.Now()
	for i := 0; i < 40; i++ {
		createdAt := now.AddDate(0, 0, -rand.Intn(180))
		bank := string(banks[rand.Intn(len(banks))])

		income := &models.Income{
			UserID:      user.ID,
			Amount:      1000 + rand.Int63n(500_000),
			Source:      models.IncomeSources[rand.Intn(len(models.IncomeSources))],
			Attachment:  "uploads/seed-receipt.jpg",
			Description: strings.TrimSuffix(faker.Sentence(), "."),
			BankName:    &bank,
		}
		income.CreatedAt = createdAt
		if err := db.Create(income).Error; err != nil {
			return fmt.Errorf("failed to seed income: %w", err)
		}

		wallet := walletNames[rand.Intn(len(walletNames))]
		expense := &models.Expense{
			UserID:      user.ID,
			Amount:      500 + rand.Int63n(200_000),
			Source:      models.ExpenseSources[rand.Intn(len(models.ExpenseSources))],
			Attachment:  "uploads/seed-receipt.jpg",
			Description: strings.TrimSuffix(faker.Sentence(), "."),
			WalletName:  &wallet,
		}
		expense.CreatedAt = createdAt
		if err := db.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to seed expense: %w", err)
		}
	}

	for i := 0; i < 10; i++ {
		transfer := &models.Transfer{
			UserID:    user.ID,
			Amount:    1000 + rand.Int63n(100_000),
			Sender:    faker.FirstName(),
			Receiver:  faker.FirstName(),
			IsExpense: rand.Intn(2) == 0,
		}
		transfer.CreatedAt = now.AddDate(0, 0, -rand.Intn(90))
		if err := db.Create(transfer).Error; err != nil {
			return fmt.Errorf("failed to seed transfer: %w", err)
		}
	}

	budgets := []string{"Food", "Rent", "Fun"}
	for _, name := range budgets {
		budget := &models.Budget{
			UserID:      user.ID,
			Name:        name,
			TotalBudget: 50_000 + rand.Int63n(200_000),
			Current:     rand.Int63n(50_000),
		}
		if err := db.Create(budget).Error; err != nil {
			return fmt.Errorf("failed to seed budget %s: %w", name, err)
		}
	}

	log.Info("Seed data created")
	return nil
}
