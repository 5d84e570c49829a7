package session

import (
	"encoding/json"
	"errors"

	"shopdash/internal/domain"

	"gorm.io/gorm"
)

const (
	keyAuthToken = "authToken"
	keyUser      = "user"
)

// Store is the persistent key-value store backing the session: it survives
// restarts and holds exactly two keys, the bearer token and the cached user
// record. Only the Session writes to it.
type Store interface {
	Token() (string, bool)
	User() (*domain.User, bool)
	Save(token string, user *domain.User) error
	Clear() error
}

// GormStore keeps the session in a local single-table database, usually a
// sqlite file next to the binary.
type GormStore struct {
	db *gorm.DB
}

type entryModel struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value"`
}

func (entryModel) TableName() string { return "session_entries" }

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&entryModel{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) get(key string) (string, bool) {
	var m entryModel
	if err := s.db.Where("key = ?", key).First(&m).Error; err != nil {
		return "", false
	}
	return m.Value, true
}

func (s *GormStore) Token() (string, bool) {
	v, ok := s.get(keyAuthToken)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *GormStore) User() (*domain.User, bool) {
	v, ok := s.get(keyUser)
	if !ok {
		return nil, false
	}
	var u domain.User
	if err := json.Unmarshal([]byte(v), &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (s *GormStore) Save(token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []entryModel{
			{Key: keyAuthToken, Value: token},
			{Key: keyUser, Value: string(raw)},
		} {
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Clear() error {
	err := s.db.Where("key IN ?", []string{keyAuthToken, keyUser}).Delete(&entryModel{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
