package entities

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a purchase request awaiting manual fulfillment. ProductName
// and Price are snapshots taken at purchase time so later catalog edits
// do not alter historical orders.
type Order struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"column:user_id;not null;index" json:"userId"`
	ProductID         string    `gorm:"column:product_id;not null" json:"productId"`
	ProductName       string    `gorm:"column:product_name;not null" json:"productName"`
	Price             int       `gorm:"not null" json:"price"`
	SelectedPackage   string    `gorm:"column:selected_package" json:"selectedPackage,omitempty"`
	PaymentMethod     string    `gorm:"column:payment_method;not null" json:"paymentMethod"`
	PaymentProofImage string    `gorm:"column:payment_proof_image;type:text" json:"paymentProofImage,omitempty"`
	UserPhone         string    `gorm:"column:user_phone;not null" json:"userPhone"`
	UserGameID        string    `gorm:"column:user_game_id;not null" json:"userGameId"`
	Status            string    `gorm:"default:pending" json:"status"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"createdAt"`
}
