package entities

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an identity plus wallet record. Balance is whole currency
// units and may go negative; no floor is enforced.
type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Balance  int    `gorm:"default:0" json:"balance"`
	Phone    string `json:"phone,omitempty"`
	FullName string `gorm:"column:full_name" json:"fullName,omitempty"`
	Role     string `gorm:"default:user" json:"role"`
}
