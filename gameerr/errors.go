// Package gameerr provides the aggregate error taxonomy returned by every
// kernel and by the Game facade. Every GameError carries a Kind so callers
// can branch on what went wrong without string-matching messages.
package gameerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a GameError.
type Kind int

const (
	// Database kinds — something went wrong talking to the EntityStore.
	KindDatabaseConnectionFailed Kind = iota
	KindDatabaseMissingConnection
	KindDatabaseMigrationsFailed
	KindDatabaseNotFound
	KindDatabaseUniqueViolation
	KindDatabaseForeignKeyViolation
	KindDatabaseOther

	// Repository kinds — a database error surfaced inside a CRUD path.
	KindRepository

	// Resource kinds — domain-level "this doesn't exist / isn't allowed".
	KindLocationNotFound
	KindSpeciesNotFound
	KindUserNotFound
	KindUserAlreadyExists
	KindNoAvailableEncounters
	KindNoFishingHistory
	KindFishingHistoryNotFound
	KindLocationAlreadyUnlocked
	KindUnmetLocationUnlockRequirements
	KindItemNotFound
	KindItemMaxCountExceeded
	KindItemUnstackable
	KindInvalidItemType
	KindNotARod

	// Unexpected wraps anything else, keeping the original error as cause.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindDatabaseConnectionFailed:
		return "DatabaseConnectionFailed"
	case KindDatabaseMissingConnection:
		return "DatabaseMissingConnection"
	case KindDatabaseMigrationsFailed:
		return "DatabaseMigrationsFailed"
	case KindDatabaseNotFound:
		return "DatabaseNotFound"
	case KindDatabaseUniqueViolation:
		return "DatabaseUniqueViolation"
	case KindDatabaseForeignKeyViolation:
		return "DatabaseForeignKeyViolation"
	case KindDatabaseOther:
		return "DatabaseOther"
	case KindRepository:
		return "Repository"
	case KindLocationNotFound:
		return "LocationNotFound"
	case KindSpeciesNotFound:
		return "SpeciesNotFound"
	case KindUserNotFound:
		return "UserNotFound"
	case KindUserAlreadyExists:
		return "UserAlreadyExists"
	case KindNoAvailableEncounters:
		return "NoAvailableEncounters"
	case KindNoFishingHistory:
		return "NoFishingHistory"
	case KindFishingHistoryNotFound:
		return "FishingHistoryNotFound"
	case KindLocationAlreadyUnlocked:
		return "LocationAlreadyUnlocked"
	case KindUnmetLocationUnlockRequirements:
		return "UnmetLocationUnlockRequirements"
	case KindItemNotFound:
		return "ItemNotFound"
	case KindItemMaxCountExceeded:
		return "ItemMaxCountExceeded"
	case KindItemUnstackable:
		return "ItemUnstackable"
	case KindInvalidItemType:
		return "InvalidItemType"
	case KindNotARod:
		return "NotARod"
	case KindUnexpected:
		return "Unexpected"
	default:
		return "Unknown"
	}
}

// GameError is the single aggregate error type returned across the library.
// It carries a Kind plus whichever identifiers are relevant to that kind,
// so callers can inspect a failure (IsUserNotFound, ExternalID, ...) instead
// of matching on message text.
type GameError struct {
	Kind    Kind
	Message string
	cause   error

	ExternalID *int64
	LocationID *int32
	SpeciesID  *int32
	UserID     *int64
	TypeID     *int32
}

func (e *GameError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *GameError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, target) match on Kind when target is a *GameError
// with no cause of its own (a sentinel-style comparison).
func (e *GameError) Is(target error) bool {
	var t *GameError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func withInt64(p **int64, v int64) {
	*p = &v
}

func withInt32(p **int32, v int32) {
	*p = &v
}

// Unexpected wraps an arbitrary error with its string rendering and cause
// chain, for failures that don't map onto a named resource/database kind.
func Unexpected(err error) *GameError {
	return &GameError{Kind: KindUnexpected, Message: fmt.Sprintf("unexpected error: %s", err.Error()), cause: err}
}

// --- Database ---

func DatabaseConnectionFailed(msg string) *GameError {
	return &GameError{Kind: KindDatabaseConnectionFailed, Message: fmt.Sprintf("database connection failed: %s", msg)}
}

func DatabaseMissingConnection() *GameError {
	return &GameError{Kind: KindDatabaseMissingConnection, Message: "no database connection specified"}
}

func DatabaseMigrationsFailed(msg string) *GameError {
	return &GameError{Kind: KindDatabaseMigrationsFailed, Message: fmt.Sprintf("database migrations failed: %s", msg)}
}

func DatabaseNotFound(msg string) *GameError {
	return &GameError{Kind: KindDatabaseNotFound, Message: msg}
}

func DatabaseUniqueViolation(msg string) *GameError {
	return &GameError{Kind: KindDatabaseUniqueViolation, Message: msg}
}

func DatabaseForeignKeyViolation(msg string) *GameError {
	return &GameError{Kind: KindDatabaseForeignKeyViolation, Message: msg}
}

func DatabaseOther(err error) *GameError {
	return &GameError{Kind: KindDatabaseOther, Message: "database error", cause: err}
}

// Repository wraps a database error encountered inside a CRUD path.
func Repository(err error) *GameError {
	return &GameError{Kind: KindRepository, Message: "repository error", cause: err}
}

// --- Resource ---

func LocationNotFound(locationID int32) *GameError {
	e := &GameError{Kind: KindLocationNotFound, Message: fmt.Sprintf("location with id '%d' does not exist", locationID)}
	withInt32(&e.LocationID, locationID)
	return e
}

func SpeciesNotFound(speciesID int32) *GameError {
	e := &GameError{Kind: KindSpeciesNotFound, Message: fmt.Sprintf("species with id '%d' does not exist", speciesID)}
	withInt32(&e.SpeciesID, speciesID)
	return e
}

func UserNotFound(externalID int64) *GameError {
	e := &GameError{Kind: KindUserNotFound, Message: fmt.Sprintf("user with external id '%d' does not exist", externalID)}
	withInt64(&e.ExternalID, externalID)
	return e
}

func UserAlreadyExists(externalID int64) *GameError {
	e := &GameError{Kind: KindUserAlreadyExists, Message: fmt.Sprintf("user with external id '%d' already exists", externalID)}
	withInt64(&e.ExternalID, externalID)
	return e
}

func NoAvailableEncounters() *GameError {
	return &GameError{Kind: KindNoAvailableEncounters, Message: "no available encounters for the specified conditions"}
}

func NoFishingHistory(externalID int64, speciesID int32) *GameError {
	e := &GameError{Kind: KindNoFishingHistory, Message: fmt.Sprintf(
		"user with external id '%d' has no fishing history with species with id '%d'", externalID, speciesID)}
	withInt64(&e.ExternalID, externalID)
	withInt32(&e.SpeciesID, speciesID)
	return e
}

func FishingHistoryNotFound(userID int64, speciesID int32) *GameError {
	e := &GameError{Kind: KindFishingHistoryNotFound, Message: fmt.Sprintf(
		"user with id '%d' has no fishing history with species with id '%d'", userID, speciesID)}
	withInt64(&e.UserID, userID)
	withInt32(&e.SpeciesID, speciesID)
	return e
}

func LocationAlreadyUnlocked(externalID int64, locationID int32) *GameError {
	e := &GameError{Kind: KindLocationAlreadyUnlocked, Message: fmt.Sprintf(
		"user with external id '%d' has already unlocked location with id '%d'", externalID, locationID)}
	withInt64(&e.ExternalID, externalID)
	withInt32(&e.LocationID, locationID)
	return e
}

func UnmetLocationUnlockRequirements(locationID int32) *GameError {
	e := &GameError{Kind: KindUnmetLocationUnlockRequirements, Message: fmt.Sprintf(
		"unable to unlock location with id '%d' because of unmet unlock requirements", locationID)}
	withInt32(&e.LocationID, locationID)
	return e
}

func ItemNotFound(typeID int32) *GameError {
	e := &GameError{Kind: KindItemNotFound, Message: fmt.Sprintf("item with type_id '%d' does not exist", typeID)}
	withInt32(&e.TypeID, typeID)
	return e
}

func ItemMaxCountExceeded(typeID int32, externalID int64) *GameError {
	e := &GameError{Kind: KindItemMaxCountExceeded, Message: fmt.Sprintf(
		"user with external id '%d' already has the maximum count of item type '%d'", externalID, typeID)}
	withInt32(&e.TypeID, typeID)
	withInt64(&e.ExternalID, externalID)
	return e
}

func ItemUnstackable(typeID int32, reason string) *GameError {
	e := &GameError{Kind: KindItemUnstackable, Message: fmt.Sprintf("item with type_id '%d' is not stackable: %s", typeID, reason)}
	withInt32(&e.TypeID, typeID)
	return e
}

func InvalidItemType(typeID int32) *GameError {
	e := &GameError{Kind: KindInvalidItemType, Message: fmt.Sprintf("item with type_id '%d' does not exist", typeID)}
	withInt32(&e.TypeID, typeID)
	return e
}

func NotARod(typeID int32) *GameError {
	e := &GameError{Kind: KindNotARod, Message: fmt.Sprintf("item with type_id '%d' is not a rod", typeID)}
	withInt32(&e.TypeID, typeID)
	return e
}

// --- predicates ---

func Is(err error, kind Kind) bool {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind == kind
	}
	return false
}

func (e *GameError) IsDatabaseConnectionFailed() bool        { return e.Kind == KindDatabaseConnectionFailed }
func (e *GameError) IsDatabaseMissingConnection() bool        { return e.Kind == KindDatabaseMissingConnection }
func (e *GameError) IsDatabaseMigrationsFailed() bool         { return e.Kind == KindDatabaseMigrationsFailed }
func (e *GameError) IsDatabaseNotFound() bool                 { return e.Kind == KindDatabaseNotFound }
func (e *GameError) IsDatabaseUniqueViolation() bool          { return e.Kind == KindDatabaseUniqueViolation }
func (e *GameError) IsDatabaseForeignKeyViolation() bool      { return e.Kind == KindDatabaseForeignKeyViolation }
func (e *GameError) IsRepository() bool                       { return e.Kind == KindRepository }
func (e *GameError) IsLocationNotFound() bool                 { return e.Kind == KindLocationNotFound }
func (e *GameError) IsSpeciesNotFound() bool                  { return e.Kind == KindSpeciesNotFound }
func (e *GameError) IsUserNotFound() bool                     { return e.Kind == KindUserNotFound }
func (e *GameError) IsUserAlreadyExists() bool                { return e.Kind == KindUserAlreadyExists }
func (e *GameError) IsNoAvailableEncounters() bool             { return e.Kind == KindNoAvailableEncounters }
func (e *GameError) IsNoFishingHistory() bool                  { return e.Kind == KindNoFishingHistory }
func (e *GameError) IsFishingHistoryNotFound() bool            { return e.Kind == KindFishingHistoryNotFound }
func (e *GameError) IsLocationAlreadyUnlocked() bool           { return e.Kind == KindLocationAlreadyUnlocked }
func (e *GameError) IsUnmetLocationUnlockRequirements() bool   { return e.Kind == KindUnmetLocationUnlockRequirements }
func (e *GameError) IsItemNotFound() bool                      { return e.Kind == KindItemNotFound }
func (e *GameError) IsItemMaxCountExceeded() bool               { return e.Kind == KindItemMaxCountExceeded }
func (e *GameError) IsItemUnstackable() bool                    { return e.Kind == KindItemUnstackable }
func (e *GameError) IsInvalidItemType() bool                    { return e.Kind == KindInvalidItemType }
func (e *GameError) IsNotARod() bool                            { return e.Kind == KindNotARod }
func (e *GameError) IsUnexpected() bool                         { return e.Kind == KindUnexpected }
