package models

import "time"

// KVItem is a row of the KV_STORE table.
type KVItem struct {
	KeyName   string    `db:"key_name"`
	ItemValue string    `db:"item_value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
