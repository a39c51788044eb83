package model

import "time"

const RoleAdmin = "admin"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:32" json:"role,omitempty"`
	CreatedAt time.Time `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"_id"`
	Name     string  `gorm:"size:128;not null" json:"name"`
	Category string  `gorm:"size:64;index;not null" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Recipe   string  `gorm:"type:text" json:"recipe"`
	Image    string  `gorm:"size:512" json:"image"`
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	Email      string    `gorm:"size:128;index;not null" json:"email"`
	MenuItemID uint      `gorm:"index;not null" json:"menuItemId"`
	Name       string    `gorm:"size:128" json:"name"`
	Image      string    `gorm:"size:512" json:"image"`
	Price      float64   `gorm:"not null" json:"price"`
	CreatedAt  time.Time `json:"-"`
}

// Payment is the durable ledger entry for a settled checkout.
// Rows are immutable once written; there is no update path.
type Payment struct {
	ID            string    `gorm:"primaryKey;size:64" json:"_id"`
	Email         string    `gorm:"size:128;index;not null" json:"email"`
	Price         float64   `gorm:"not null" json:"price"`
	TransactionID string    `gorm:"size:128;index" json:"transactionId"`
	CartIDs       []uint    `gorm:"serializer:json" json:"cartId"`
	MenuItemIDs   []uint    `gorm:"serializer:json" json:"menuItemId"`
	Date          time.Time `json:"date"`
}
