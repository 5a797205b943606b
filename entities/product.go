package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	CategoryGames   = "games"
	CategoryCards   = "cards"
	CategorySpecial = "special"
)

// PackageOption is a named, individually priced purchasable variant of
// a product (a top-up tier).
type PackageOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PackageList is stored as a JSON text column; business logic only ever
// sees the structured form. An empty list means the product has no
// purchasable variant.
type PackageList []PackageOption

func (p PackageList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PackageList) Scan(value interface{}) error {
	if value == nil {
		*p = PackageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type %T for PackageList", value)
	}
}

type Product struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Price       int         `gorm:"not null" json:"price"`
	Description string      `json:"description,omitempty"`
	Icon        string      `json:"icon"`
	Image       string      `json:"image"`
	Category    string      `gorm:"not null" json:"category"`
	Packages    PackageList `gorm:"type:text" json:"packages"`
	SortOrder   int         `gorm:"column:sort_order;default:0" json:"order"`
}
