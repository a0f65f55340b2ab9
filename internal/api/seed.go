package api

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/auth"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
)

// Seed creates the demo account with one bouquet and one greeting so a
// fresh process has something to show. Does nothing when demo already
// exists (only possible with a durable store backend).
func Seed(ctx context.Context, authSvc auth.Service, bouquetSvc bouquet.Service, origin string) error {
	demo, _, err := authSvc.Register(ctx, "demo", "password")
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil
		}
		return err
	}

	b, err := bouquetSvc.CreateBouquet(ctx, demo.ID, bouquet.CreateBouquetInput{
		Occasion:   "Anniversary",
		FlowerType: "roses",
		ColorTheme: "romantic-red",
	})
	if err != nil {
		return err
	}

	content := "Happy Anniversary, my love! Here's to many more years of blooming love."
	deliveryDate := time.Now().Format(time.RFC3339)
	_, err = bouquetSvc.CreateMessage(ctx, demo.ID, b.ID, origin, bouquet.CreateMessageInput{
		SenderName:   "Romeo",
		Content:      &content,
		DeliveryDate: &deliveryDate,
	})
	if err != nil {
		return err
	}

	log.Println("Database seeded with demo user (demo/password)")
	return nil
}
