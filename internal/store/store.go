package store

import (
	"context"
)

// Storage is the single source of truth for users, bouquets and messages.
// Every lookup for an id that does not exist returns common.ErrNotFound,
// whichever backend is in use. Ids are assigned by the store, monotonically
// per entity type, and never reused (nothing is ever deleted).
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID uint64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	CreateBouquet(ctx context.Context, bouquet *Bouquet) error
	GetBouquets(ctx context.Context, userID uint64) ([]*Bouquet, error)
	GetBouquet(ctx context.Context, bouquetID uint64) (*Bouquet, error)

	CreateMessage(ctx context.Context, message *Message) error
	GetMessage(ctx context.Context, messageID uint64) (*Message, error)

	// AttachQRCode sets the derived QR encoding on an already inserted
	// message. Part two of the two-phase message create.
	AttachQRCode(ctx context.Context, messageID uint64, qrCodeURL string) error
}
