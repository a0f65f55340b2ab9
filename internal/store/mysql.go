package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL with the three
// entity tables migrated. Only dialed when STORE_BACKEND=mysql.
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	dsn := cnf.DSN()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		PrepareStmt:    true,
		TranslateError: true, // duplicate key comes back as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&User{}, &Bouquet{}, &Message{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Connected to MySQL successfully")

	return db, nil
}

// mysqlStore is the durable Storage backend. Id assignment rides on the
// auto-increment columns, which gives the same monotonic, never-reused
// guarantee the memory store enforces with its counters.
type mysqlStore struct {
	db *gorm.DB
}

func NewMySQLStore(db *gorm.DB) Storage {
	return &mysqlStore{db: db}
}

func (s *mysqlStore) CreateUser(ctx context.Context, user *User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrDuplicateUsername
	}
	return err
}

func (s *mysqlStore) GetUserByID(ctx context.Context, userID uint64) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *mysqlStore) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (s *mysqlStore) CreateBouquet(ctx context.Context, bouquet *Bouquet) error {
	return s.db.WithContext(ctx).Create(bouquet).Error
}

func (s *mysqlStore) GetBouquets(ctx context.Context, userID uint64) ([]*Bouquet, error) {
	var bouquets []*Bouquet
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bouquets).Error
	if err != nil {
		return nil, err
	}
	if bouquets == nil {
		bouquets = []*Bouquet{}
	}
	return bouquets, nil
}

func (s *mysqlStore) GetBouquet(ctx context.Context, bouquetID uint64) (*Bouquet, error) {
	var bouquet Bouquet
	err := s.db.WithContext(ctx).Where("id = ?", bouquetID).First(&bouquet).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &bouquet, nil
}

func (s *mysqlStore) CreateMessage(ctx context.Context, message *Message) error {
	return s.db.WithContext(ctx).Create(message).Error
}

func (s *mysqlStore) GetMessage(ctx context.Context, messageID uint64) (*Message, error) {
	var message Message
	err := s.db.WithContext(ctx).Where("id = ?", messageID).First(&message).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &message, nil
}

func (s *mysqlStore) AttachQRCode(ctx context.Context, messageID uint64, qrCodeURL string) error {
	result := s.db.WithContext(ctx).Model(&Message{}).
		Where("id = ?", messageID).
		Update("qr_code_url", qrCodeURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return err
}
