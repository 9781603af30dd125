// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/character). This root
// package holds the sentinel errors and the field-level validation error
// that every layer maps onto transport status codes.
package domain
