package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"topup-store/entities"
)

const (
	defaultAdminID       = "admin-1"
	defaultAdminEmail    = "admin@topupstore.com"
	defaultAdminPassword = "admin123"
)

func defaultAdminUser() entities.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash default admin password: %v", err)
	}
	return entities.User{
		ID:       defaultAdminID,
		Username: "admin",
		Email:    defaultAdminEmail,
		Password: string(hash),
		Balance:  0,
		FullName: "Admin User",
		Role:     entities.RoleAdmin,
	}
}

type seedProduct struct {
	name     string
	icon     string
	price    int
	packages entities.PackageList
}

var seedGames = []seedProduct{
	{"Free Fire", "🔥", 50, entities.PackageList{{Name: "100 Diamonds", Price: 50}, {Name: "210 Diamonds", Price: 100}, {Name: "520 Diamonds", Price: 200}}},
	{"PUBG Mobile", "🎮", 40, entities.PackageList{{Name: "100 UC", Price: 40}, {Name: "300 UC", Price: 100}, {Name: "1000 UC", Price: 300}}},
	{"Call of Duty", "💥", 60, entities.PackageList{{Name: "500 CP", Price: 50}, {Name: "1200 CP", Price: 100}, {Name: "3000 CP", Price: 250}}},
	{"PUBG: Battlegrounds", "🎯", 35, entities.PackageList{{Name: "100 BC", Price: 35}, {Name: "500 BC", Price: 150}, {Name: "1000 BC", Price: 280}}},
	{"Clash of Clans", "⚔️", 70, entities.PackageList{{Name: "500 Gems", Price: 50}, {Name: "1200 Gems", Price: 100}, {Name: "2500 Gems", Price: 200}}},
	{"Fortnite", "🎪", 45, entities.PackageList{{Name: "1000 V-Bucks", Price: 50}, {Name: "2800 V-Bucks", Price: 100}, {Name: "13500 V-Bucks", Price: 500}}},
	{"Mobile Legends", "⚡", 30, entities.PackageList{{Name: "200 Diamonds", Price: 30}, {Name: "500 Diamonds", Price: 50}, {Name: "1000 Diamonds", Price: 100}}},
	{"Among Us", "👽", 20, entities.PackageList{{Name: "Full Bundle", Price: 20}}},
	{"Apex Legends", "🏆", 55, entities.PackageList{{Name: "500 Apex Coins", Price: 50}, {Name: "1000 Apex Coins", Price: 100}}},
	{"Roblox", "🎨", 40, entities.PackageList{{Name: "800 Robux", Price: 40}, {Name: "1700 Robux", Price: 80}, {Name: "4500 Robux", Price: 200}}},
}

var seedCards = []seedProduct{
	{"Netflix Gift Card", "📺", 100, entities.PackageList{{Name: "Monthly Subscription", Price: 100}}},
	{"Spotify Card", "🎵", 80, entities.PackageList{{Name: "Monthly Subscription", Price: 80}}},
	{"PlayStation Card", "🎮", 150, entities.PackageList{{Name: "50 USD", Price: 150}, {Name: "100 USD", Price: 300}}},
	{"Xbox Game Pass", "🎯", 120, entities.PackageList{{Name: "Monthly Subscription", Price: 120}}},
	{"Google Play Card", "🛍️", 90, entities.PackageList{{Name: "25 USD", Price: 90}, {Name: "50 USD", Price: 180}}},
	{"iTunes Card", "🎵", 100, entities.PackageList{{Name: "25 USD", Price: 100}, {Name: "50 USD", Price: 200}}},
}

var seedSpecial = []seedProduct{
	{"Account Boost - Free Fire", "⭐", 200, entities.PackageList{{Name: "Rank Boost", Price: 200}}},
	{"Account Boost - PUBG", "🌟", 250, entities.PackageList{{Name: "Rank Boost", Price: 250}}},
	{"Exclusive Skins - FF", "👕", 180, entities.PackageList{{Name: "Exclusive Skin", Price: 180}}},
	{"Premium Weapons - PUBG", "🔫", 220, entities.PackageList{{Name: "Weapon Bundle", Price: 220}}},
}

func defaultPaymentMethods() []entities.PaymentMethod {
	return []entities.PaymentMethod{
		{ID: "bank_khartoum", Name: "Bank of Khartoum", Icon: "🏦", Info: "Transfer to the account below and upload the receipt", Account: "2345678901", AccountName: "TopUp Store"},
		{ID: "fawry", Name: "Fawry", Icon: "💳", Info: "Pay at any Fawry point using the account below", Account: "16054", AccountName: "TopUp Store"},
		{ID: "kashi", Name: "Kashi", Icon: "📱", Info: "Send the amount to the wallet below", Wallet: "0912345678", WalletName: "TopUp Store"},
		{ID: "zaincash", Name: "Zain Cash", Icon: "💰", Info: "Send the amount to the wallet below", Wallet: "0998765432", WalletName: "TopUp Store"},
	}
}

func defaultContentPages() []entities.ContentPage {
	return []entities.ContentPage{
		{ID: "content-home", Section: "home", Data: `{"title":"TopUp Store","subtitle":"Game top-ups and gift cards, delivered fast"}`},
		{ID: "content-contact", Section: "contact", Data: `{"phone":"","email":"support@topupstore.com","hours":"9:00-22:00"}`},
		{ID: "content-agents", Section: "agents", Data: `{"agents":[]}`},
	}
}
