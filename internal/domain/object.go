package domain

// Object is the contract every entity handled by a business service
// implements. T is the entity's own (usually pointer) type and K its key.
type Object[T any, K comparable] interface {
	// GetID returns the entity key. The zero value means "not assigned".
	GetID() K

	// SetID assigns the key. Only data proxies call it, on insert.
	SetID(id K)

	// TypeName is the human-readable type name used in error messages.
	TypeName() string

	// Validate checks field-level rules and returns a *ValidationError,
	// or nil when the entity is well formed.
	Validate() error

	// RevertNonEditableValues copies server-owned fields from current onto
	// the receiver so callers cannot change them through an update.
	RevertNonEditableValues(current T)

	// RevertForeignKeysFromZeroToNull replaces foreign keys left at their
	// zero value with nil.
	RevertForeignKeysFromZeroToNull()
}

// VersionContainer is implemented by entities that carry an optimistic
// concurrency token. The token is opaque; only equality is meaningful.
type VersionContainer interface {
	GetVersion() string
}
