// Package bouquet holds the gift domain: bouquets and the greeting messages
// attached to them, including the derived QR share encoding.
package bouquet

import (
	"context"
	"errors"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/qr"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/store"
)

// CreateBouquetInput is the client payload for a new bouquet.
type CreateBouquetInput struct {
	Occasion   string `json:"occasion"`
	FlowerType string `json:"flowerType"`
	ColorTheme string `json:"colorTheme"`
}

// CreateMessageInput is the client payload for a new message. Optional
// fields stay pointers so "absent" and "empty" keep their distinction.
type CreateMessageInput struct {
	SenderName   string  `json:"senderName"`
	Content      *string `json:"content"`
	ImageURL     *string `json:"imageUrl"`
	VideoURL     *string `json:"videoUrl"`
	DeliveryDate *string `json:"deliveryDate"`
}

type Service interface {
	CreateBouquet(ctx context.Context, userID uint64, in CreateBouquetInput) (*store.Bouquet, error)
	ListBouquets(ctx context.Context, userID uint64) ([]*store.Bouquet, error)

	// CreateMessage verifies the bouquet belongs to userID, inserts the
	// message, then derives and attaches the QR encoding. origin is the
	// externally visible scheme+host the share link is built from.
	CreateMessage(ctx context.Context, userID, bouquetID uint64, origin string, in CreateMessageInput) (*store.Message, error)

	// GetMessage is the public read path behind the share link. No auth.
	GetMessage(ctx context.Context, messageID uint64) (*store.Message, error)
}

type bouquetService struct {
	storage store.Storage
}

func NewService(storage store.Storage) Service {
	return &bouquetService{storage: storage}
}

func (s *bouquetService) CreateBouquet(ctx context.Context, userID uint64, in CreateBouquetInput) (*store.Bouquet, error) {
	if err := common.ValidateOccasion(in.Occasion); err != nil {
		return nil, err
	}
	if err := common.ValidateFlowerType(in.FlowerType); err != nil {
		return nil, err
	}
	if err := common.ValidateColorTheme(in.ColorTheme); err != nil {
		return nil, err
	}

	b := &store.Bouquet{
		UserID:     userID,
		Occasion:   in.Occasion,
		FlowerType: in.FlowerType,
		ColorTheme: in.ColorTheme,
	}
	if err := s.storage.CreateBouquet(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bouquetService) ListBouquets(ctx context.Context, userID uint64) ([]*store.Bouquet, error) {
	return s.storage.GetBouquets(ctx, userID)
}

func (s *bouquetService) CreateMessage(ctx context.Context, userID, bouquetID uint64, origin string, in CreateMessageInput) (*store.Message, error) {
	b, err := s.storage.GetBouquet(ctx, bouquetID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	// a foreign bouquet answers exactly like a missing one
	if b.UserID != userID {
		return nil, common.ErrNotFound
	}

	if err := common.ValidateSenderName(in.SenderName); err != nil {
		return nil, err
	}

	m := &store.Message{
		BouquetID:    bouquetID,
		SenderName:   in.SenderName,
		Content:      in.Content,
		ImageURL:     in.ImageURL,
		VideoURL:     in.VideoURL,
		DeliveryDate: in.DeliveryDate,
	}

	// two-phase create: the scan URL needs the id, so insert first, then
	// attach the QR under the store's write lock before anyone is handed
	// the message
	if err := s.storage.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	scanURL := qr.BuildScanURL(origin, m.ID)
	dataURL, err := qr.RenderDataURL(scanURL)
	if err != nil {
		return nil, err
	}

	if err := s.storage.AttachQRCode(ctx, m.ID, dataURL); err != nil {
		return nil, err
	}
	m.QRCodeURL = dataURL

	return m, nil
}

func (s *bouquetService) GetMessage(ctx context.Context, messageID uint64) (*store.Message, error) {
	return s.storage.GetMessage(ctx, messageID)
}
