package model

import "github.com/golang-jwt/jwt/v5"

// CompanyClaims are JWT claims for company dashboard tokens
type CompanyClaims struct {
	CompanyID string `json:"companyId"`
	jwt.RegisteredClaims
}

// CandidateClaims are JWT claims for candidate test-session tokens
type CandidateClaims struct {
	Email     string `json:"email"`
	CompanyID string `json:"companyId"`
	TestID    string `json:"testId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for company registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for company login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login or registration
type LoginResponse struct {
	Token     string `json:"token"`
	CompanyID string `json:"companyId"`
}

// ValidateRequest is the request body for candidate validation
type ValidateRequest struct {
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// ValidateResponse carries the short-lived candidate token
type ValidateResponse struct {
	Token  string `json:"token"`
	TestID string `json:"testId"`
}
