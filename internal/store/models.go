package store

import (
	"time"
)

// User is an account. The password hash never leaves the server.
type User struct {
	ID           uint64 `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username     string `gorm:"column:username;uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
}

// Bouquet is the gift shell a user composes. Read-only after creation, there
// is no update or delete path anywhere.
type Bouquet struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;index;not null" json:"userId"`
	Occasion   string    `gorm:"column:occasion;not null" json:"occasion"`
	FlowerType string    `gorm:"column:flower_type;size:50;not null" json:"flowerType"`
	ColorTheme string    `gorm:"column:color_theme;size:50;not null" json:"colorTheme"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// Message is the greeting attached to a bouquet. QRCodeURL is derived from
// the message id after insert, never supplied by the client. Optional fields
// are pointers so the JSON carries explicit nulls like the original API.
type Message struct {
	ID           uint64  `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	BouquetID    uint64  `gorm:"column:bouquet_id;index;not null" json:"bouquetId"`
	SenderName   string  `gorm:"column:sender_name;not null" json:"senderName"`
	Content      *string `gorm:"column:content;type:text" json:"content"`
	ImageURL     *string `gorm:"column:image_url" json:"imageUrl"`
	VideoURL     *string `gorm:"column:video_url" json:"videoUrl"`
	DeliveryDate *string `gorm:"column:delivery_date" json:"deliveryDate"` // opaque date string
	QRCodeURL    string  `gorm:"column:qr_code_url;type:text" json:"qrCodeUrl"`
}
