package entities

// PaymentMethod is an admin-editable payment instruction block shown to
// buyers during checkout.
type PaymentMethod struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Icon        string `json:"icon,omitempty"`
	Info        string `json:"info,omitempty"`
	Account     string `json:"account,omitempty"`
	AccountName string `gorm:"column:account_name" json:"accountName,omitempty"`
	Wallet      string `json:"wallet,omitempty"`
	WalletName  string `gorm:"column:wallet_name" json:"walletName,omitempty"`
}
