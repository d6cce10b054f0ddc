// Package config
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sky-brothers/skyair/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
)

type CredentialScheme string

const (
	SchemePlain  CredentialScheme = "plain"
	SchemeBcrypt CredentialScheme = "bcrypt"
)

var allowedCredentialSchemes = []CredentialScheme{SchemePlain, SchemeBcrypt}

type GeneralConfig struct {
	AirlineName       string           `json:"airline_name"`
	AdminUsername     string           `json:"admin_username"`
	AdminPassword     string           `json:"admin_password"`
	CredentialScheme  string           `json:"credential_scheme"`
	Scheme            CredentialScheme `json:"-"`
	BcryptCost        int              `json:"bcrypt_cost"`
	PasswordMinLength int              `json:"password_min_length"`
	PasswordMaxLength int              `json:"password_max_length"`
	DisplayLimit      int              `json:"display_limit"` // max flight rows shown at once
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		AirlineName:       "SKY BROTHERS AIRLINE",
		AdminUsername:     "admin",
		AdminPassword:     "admin123",
		CredentialScheme:  string(SchemePlain),
		BcryptCost:        12,
		PasswordMinLength: 8,
		PasswordMaxLength: 16,
		DisplayLimit:      35,
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.Scheme = CredentialScheme(config.CredentialScheme)
	if !slices.Contains(allowedCredentialSchemes, config.Scheme) {
		return ValidFail(fmt.Errorf("credential scheme %s is not allowed, supported schemes are %v, please check the configuration file", config.Scheme, allowedCredentialSchemes))
	}
	if config.Scheme == SchemeBcrypt && (config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost) {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	if config.PasswordMinLength < 1 || config.PasswordMinLength > config.PasswordMaxLength {
		return ValidFail(errors.New("invalid password length range, password_min_length must be between 1 and password_max_length"))
	}
	if config.DisplayLimit < 1 {
		return ValidFail(errors.New("display_limit must be at least 1"))
	}
	if config.AdminUsername == "" || config.AdminPassword == "" {
		return ValidFail(errors.New("admin credentials must not be empty"))
	}
	return ValidPass()
}
