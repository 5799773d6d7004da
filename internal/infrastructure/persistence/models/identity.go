package models

import (
	"github.com/vyapar/backend/internal/domain/identity"
)

// BusinessInfoModel is embedded in UserModel with a business_ column prefix
type BusinessInfoModel struct {
	Name    string `gorm:"type:varchar(200);not null"`
	Tagline string `gorm:"type:varchar(200)"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(30)"`
	GSTIN   string `gorm:"type:varchar(15)"`
}

// UserModel is the persistence model for the User aggregate
type UserModel struct {
	AggregateModel
	Email              string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash       string            `gorm:"type:varchar(255);not null"`
	SecurityQuestion   string            `gorm:"type:varchar(255);not null"`
	SecurityAnswerHash string            `gorm:"type:varchar(255);not null"`
	Business           BusinessInfoModel `gorm:"embedded;embeddedPrefix:business_"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot:  m.AggregateRoot(),
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		SecurityQuestion:   m.SecurityQuestion,
		SecurityAnswerHash: m.SecurityAnswerHash,
		BusinessInfo: identity.BusinessInfo{
			Name:    m.Business.Name,
			Tagline: m.Business.Tagline,
			Address: m.Business.Address,
			Phone:   m.Business.Phone,
			GSTIN:   m.Business.GSTIN,
		},
	}
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.SetAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.SecurityQuestion = u.SecurityQuestion
	m.SecurityAnswerHash = u.SecurityAnswerHash
	m.Business = BusinessInfoModel{
		Name:    u.BusinessInfo.Name,
		Tagline: u.BusinessInfo.Tagline,
		Address: u.BusinessInfo.Address,
		Phone:   u.BusinessInfo.Phone,
		GSTIN:   u.BusinessInfo.GSTIN,
	}
}

// UserModelFromDomain creates a new persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
