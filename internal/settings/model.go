package settings

import "go.mongodb.org/mongo-driver/bson/primitive"

// Settings is a singleton document: the restaurant's public profile plus
// the notification credentials. Telegram fields are sensitive and must
// never reach the browsing client.
type Settings struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantName string             `bson:"restaurantName"`
	LogoURL        string             `bson:"logoUrl,omitempty"`
	Description    string             `bson:"description,omitempty"`
	Tables         []TableZone        `bson:"tables,omitempty"`
	ContactInfo    ContactInfo        `bson:"contactInfo"`
	BankAccount    *BankAccount       `bson:"bankAccount,omitempty"`
	SocialMedia    *SocialMedia       `bson:"socialMedia,omitempty"`
	TelegramToken  string             `bson:"telegramToken,omitempty"`
	ChatID         string             `bson:"chatId,omitempty"`
}

type TableZone struct {
	Zone  string `bson:"zone" json:"zone"`
	Count int    `bson:"count" json:"count"`
}

type ContactInfo struct {
	Address string `bson:"address" json:"address"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
}

type BankAccount struct {
	BankName      string `bson:"bankName" json:"bankName"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber"`
	AccountName   string `bson:"accountName" json:"accountName"`
}

type SocialMedia struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Zalo      string `bson:"zalo,omitempty" json:"zalo,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// PublicSettings is the client-facing view, credentials stripped.
type PublicSettings struct {
	RestaurantName string       `json:"restaurantName"`
	LogoURL        string       `json:"logoUrl,omitempty"`
	Description    string       `json:"description,omitempty"`
	Tables         []TableZone  `json:"tables,omitempty"`
	ContactInfo    ContactInfo  `json:"contactInfo"`
	BankAccount    *BankAccount `json:"bankAccount,omitempty"`
	SocialMedia    *SocialMedia `json:"socialMedia,omitempty"`
}

// UpdateInput is the admin settings form payload.
type UpdateInput struct {
	RestaurantName string       `json:"restaurantName"`
	LogoURL        string       `json:"logoUrl"`
	Description    string       `json:"description"`
	Tables         []TableZone  `json:"tables"`
	ContactInfo    ContactInfo  `json:"contactInfo"`
	BankAccount    *BankAccount `json:"bankAccount"`
	SocialMedia    *SocialMedia `json:"socialMedia"`
	TelegramToken  string       `json:"telegramToken"`
	ChatID         string       `json:"chatId"`
}

func ToPublic(s *Settings) *PublicSettings {
	if s == nil {
		return nil
	}
	return &PublicSettings{
		RestaurantName: s.RestaurantName,
		LogoURL:        s.LogoURL,
		Description:    s.Description,
		Tables:         s.Tables,
		ContactInfo:    s.ContactInfo,
		BankAccount:    s.BankAccount,
		SocialMedia:    s.SocialMedia,
	}
}
