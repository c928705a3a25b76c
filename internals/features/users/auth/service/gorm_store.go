package service

import (
	"errors"

	"gorm.io/gorm"

	adminModel "listrikku_backend/internals/features/users/admins/model"
	customerModel "listrikku_backend/internals/features/users/customers/model"
)

// GormCredentialStore: implementasi CredentialStore di atas GORM.
type GormCredentialStore struct {
	DB *gorm.DB
}

func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{DB: db}
}

func (s *GormCredentialStore) FindAdminByUsername(username string) (*adminModel.AdminModel, error) {
	var row adminModel.AdminModel
	if err := s.DB.Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *GormCredentialStore) FindCustomerByUsername(username string) (*customerModel.CustomerModel, error) {
	var row customerModel.CustomerModel
	if err := s.DB.Where("username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *GormCredentialStore) UpdateAdminPassword(id int64, hashed string) error {
	return s.DB.Model(&adminModel.AdminModel{}).
		Where("id_user = ?", id).
		Update("password", hashed).Error
}

func (s *GormCredentialStore) UpdateCustomerPassword(id int64, hashed string) error {
	return s.DB.Model(&customerModel.CustomerModel{}).
		Where("id_pelanggan = ?", id).
		Update("password", hashed).Error
}
