package identity

import (
	"github.com/vyapar/backend/internal/domain/identity"
)

// BusinessInfoDTO is the business profile as sent and returned by the API
type BusinessInfoDTO struct {
	Name    string `json:"name" binding:"required,max=200"`
	Tagline string `json:"tagline,omitempty" binding:"max=200"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty" binding:"max=30"`
	GSTIN   string `json:"gstin,omitempty" binding:"max=15"`
}

func (b BusinessInfoDTO) toDomain() identity.BusinessInfo {
	return identity.BusinessInfo{
		Name:    b.Name,
		Tagline: b.Tagline,
		Address: b.Address,
		Phone:   b.Phone,
		GSTIN:   b.GSTIN,
	}
}

func businessInfoFromDomain(b identity.BusinessInfo) BusinessInfoDTO {
	return BusinessInfoDTO{
		Name:    b.Name,
		Tagline: b.Tagline,
		Address: b.Address,
		Phone:   b.Phone,
		GSTIN:   b.GSTIN,
	}
}

// RegisterInput is the registration request body
type RegisterInput struct {
	Email            string          `json:"email" binding:"required" example:"owner@shop.in"`
	Password         string          `json:"password" binding:"required,max=72"`
	SecurityQuestion string          `json:"securityQuestion" binding:"required,max=255"`
	SecurityAnswer   string          `json:"securityAnswer" binding:"required,max=72"`
	BusinessInfo     BusinessInfoDTO `json:"businessInfo" binding:"required"`
}

// LoginInput is the login request body
type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"owner@shop.in"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is returned on successful login
type LoginResult struct {
	Token        string          `json:"token"`
	BusinessInfo BusinessInfoDTO `json:"businessInfo"`
}

// SecurityQuestionInput asks for an account's security question
type SecurityQuestionInput struct {
	Email string `json:"email" binding:"required" example:"owner@shop.in"`
}

// SecurityQuestionResult carries the stored question
type SecurityQuestionResult struct {
	SecurityQuestion string `json:"securityQuestion"`
}

// VerifyAnswerInput checks a security answer
type VerifyAnswerInput struct {
	Email          string `json:"email" binding:"required" example:"owner@shop.in"`
	SecurityAnswer string `json:"securityAnswer" binding:"required"`
}

// VerifyAnswerResult carries a short-lived reset token
type VerifyAnswerResult struct {
	ResetToken string `json:"resetToken"`
}

// ResetPasswordInput sets a new password using a reset token.
// ResetToken is not bound as required so that a missing token can be
// reported as an authorization failure rather than a validation error.
type ResetPasswordInput struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword" binding:"required,max=72"`
}
