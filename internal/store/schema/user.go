package schema

import (
	"time"
)

// User represents the users table - a read-only cache of registered marketplace users.
// Rows are managed by the account service; the engine only back-fills evm_address.
type User struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AccountID is the ledger account id in shard.realm.num form (e.g., "0.0.1234")
	AccountID *string `gorm:"column:account_id;uniqueIndex;type:text"`
	// EvmAddress is the lowercase 0x-prefixed EVM address resolved for the account
	EvmAddress *string `gorm:"column:evm_address;type:text;index"`
	// Email is the user's contact email
	Email *string `gorm:"column:email;type:text"`
	// Username is the public handle of the user
	Username *string `gorm:"column:username;type:text"`
	FirstName *string `gorm:"column:first_name;type:text"`
	LastName  *string `gorm:"column:last_name;type:text"`
	// CreatedAt is the timestamp when the user registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the row was last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
