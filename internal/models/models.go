package models

import (
	"time"

	"gorm.io/datatypes"
)

// Case sections. The portfolio page and the home page share one table and
// are told apart by the section column.
const (
	SectionPortfolio = "portfolio"
	SectionHome      = "home"
)

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"createdAt"`

	Cases []*Case `gorm:"many2many:case_categories" json:"cases,omitempty"`
	Shops []*Shop `gorm:"many2many:shop_categories" json:"shops,omitempty"`
}

type Developer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `gorm:"not null" json:"position"`
	Img       string    `json:"img"`
	Telegram  string    `json:"telegram"`
	Instagram string    `json:"instagram"`
	Whatsapp  string    `json:"whatsapp"`
	VK        string    `gorm:"column:vk" json:"vk"`
	Tiktok    string    `json:"tiktok"`
	Behance   string    `json:"behance"`
	Pinterest string    `json:"pinterest"`
	Artstation string   `json:"artstation"`
	CreatedAt time.Time `json:"createdAt"`

	Cases []*Case `gorm:"many2many:case_developers" json:"cases,omitempty"`
}

type Case struct {
	ID        uint                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Section   string                     `gorm:"not null;index;default:portfolio" json:"-"`
	Name      string                     `gorm:"not null" json:"name"`
	Price     *float64                   `json:"price"`
	Img       datatypes.JSONSlice[string] `json:"img"`
	Website   string                     `json:"website"`
	Date      *time.Time                 `json:"date"`
	CreatedAt time.Time                  `json:"createdAt"`

	Developers []*Developer `gorm:"many2many:case_developers" json:"developers,omitempty"`
	Categories []*Category  `gorm:"many2many:case_categories" json:"categories,omitempty"`
}

type Shop struct {
	ID        uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string                      `gorm:"not null" json:"name"`
	Price     *float64                    `json:"price"`
	Img       datatypes.JSONSlice[string] `json:"img"`
	Website   string                      `json:"website"`
	CreatedAt time.Time                   `json:"createdAt"`

	Categories []*Category `gorm:"many2many:shop_categories" json:"categories,omitempty"`
}

type Product struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string                      `gorm:"not null" json:"name"`
	Price        float64                     `gorm:"not null" json:"price"`
	Img          datatypes.JSONSlice[string] `json:"img"`
	Description  string                      `json:"description"`
	Organization string                      `json:"organization"`
	Website      string                      `json:"website"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	CategoryID   uint                        `gorm:"index" json:"categoryId"`
	CreatedAt    time.Time                   `json:"createdAt"`

	Categories      []*Category             `gorm:"many2many:product_categories" json:"categories,omitempty"`
	Characteristics []ProductCharacteristic `gorm:"constraint:OnDelete:CASCADE" json:"characteristics,omitempty"`
}

type ProductCharacteristic struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"productId"`
	Name      string `gorm:"not null" json:"name"`
	Value     string `gorm:"not null" json:"value"`
}

type Discussion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	Company   string    `gorm:"not null" json:"company"`
	Budget    int       `gorm:"not null" json:"budget"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Login     string    `gorm:"uniqueIndex;not null" json:"login"`
	Email     string    `gorm:"not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&Category{},
		&Developer{},
		&Case{},
		&Shop{},
		&Product{},
		&ProductCharacteristic{},
		&Discussion{},
		&User{},
	}
}
