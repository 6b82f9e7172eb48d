// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/order, domain/customer).
// This root package holds the entity contract (Object, VersionContainer), the
// sentinel errors and the typed validation, not-found and concurrency errors
// returned by business services.
package domain
