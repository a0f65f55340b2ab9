package store

import (
	"context"
	"sync"
	"time"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
)

// MemoryStore keeps everything in process-local maps. This is the default
// backend: restart discards all data, which is accepted for this product.
// One RWMutex covers the maps and the id counters, so concurrent creates
// never hand out the same id and readers never see a half-written entity.
// Reads hand out copies, so a later AttachQRCode cannot race a caller still
// holding an earlier result.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uint64]*User
	bouquets map[uint64]*Bouquet
	messages map[uint64]*Message

	nextUserID    uint64
	nextBouquetID uint64
	nextMessageID uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[uint64]*User),
		bouquets:      make(map[uint64]*Bouquet),
		messages:      make(map[uint64]*Message),
		nextUserID:    1,
		nextBouquetID: 1,
		nextMessageID: 1,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// unique username is the store's invariant, not just the service's
	for _, u := range s.users {
		if u.Username == user.Username {
			return common.ErrDuplicateUsername
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++

	stored := *user
	s.users[stored.ID] = &stored
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, userID uint64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *MemoryStore) CreateBouquet(ctx context.Context, bouquet *Bouquet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bouquet.ID = s.nextBouquetID
	s.nextBouquetID++
	bouquet.CreatedAt = time.Now()

	stored := *bouquet
	s.bouquets[stored.ID] = &stored
	return nil
}

func (s *MemoryStore) GetBouquets(ctx context.Context, userID uint64) ([]*Bouquet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// insertion order is acceptable per the API contract, but map iteration
	// order is not even stable, so return them sorted by id
	result := []*Bouquet{}
	for id := uint64(1); id < s.nextBouquetID; id++ {
		if b, ok := s.bouquets[id]; ok && b.UserID == userID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *MemoryStore) GetBouquet(ctx context.Context, bouquetID uint64) (*Bouquet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bouquets[bouquetID]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *MemoryStore) CreateMessage(ctx context.Context, message *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = s.nextMessageID
	s.nextMessageID++

	stored := *message
	s.messages[stored.ID] = &stored
	return nil
}

func (s *MemoryStore) GetMessage(ctx context.Context, messageID uint64) (*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[messageID]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (s *MemoryStore) AttachQRCode(ctx context.Context, messageID uint64, qrCodeURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[messageID]
	if !ok {
		return common.ErrNotFound
	}
	m.QRCodeURL = qrCodeURL
	return nil
}
