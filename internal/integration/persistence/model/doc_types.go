// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyDoc is one currency entry stored inside a book's jsonb column.
type CurrencyDoc struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// CurrencyDocs is the jsonb document holding a book's currency set.
type CurrencyDocs []CurrencyDoc

func (d CurrencyDocs) Value() (driver.Value, error) { return jsonValue(d) }

func (d *CurrencyDocs) Scan(src interface{}) error { return jsonScan(d, src) }

// MemberPermissionDoc is one role grant stored inside a book's jsonb column.
type MemberPermissionDoc struct {
	UserID    uuid.UUID `json:"userId"`
	Role      string    `json:"role"`
	GrantedAt time.Time `json:"grantedAt"`
	GrantedBy uuid.UUID `json:"grantedBy"`
}

// MemberPermissionDocs is the jsonb document holding a book's role grants.
type MemberPermissionDocs []MemberPermissionDoc

func (d MemberPermissionDocs) Value() (driver.Value, error) { return jsonValue(d) }

func (d *MemberPermissionDocs) Scan(src interface{}) error { return jsonScan(d, src) }

// TransferRecordDoc is one ownership transfer history entry.
type TransferRecordDoc struct {
	FromUser uuid.UUID `json:"fromUser"`
	ToUser   uuid.UUID `json:"toUser"`
	Date     time.Time `json:"date"`
}

// TransferRecordDocs is the jsonb document holding a book's transfer history.
type TransferRecordDocs []TransferRecordDoc

func (d TransferRecordDocs) Value() (driver.Value, error) { return jsonValue(d) }

func (d *TransferRecordDocs) Scan(src interface{}) error { return jsonScan(d, src) }

// InviteRecordDoc is one invite history entry.
type InviteRecordDoc struct {
	InvitedBy   uuid.UUID `json:"invitedBy"`
	InvitedUser uuid.UUID `json:"invitedUser"`
	Date        time.Time `json:"date"`
	Role        string    `json:"role"`
}

// InviteRecordDocs is the jsonb document holding a book's invite history.
type InviteRecordDocs []InviteRecordDoc

func (d InviteRecordDocs) Value() (driver.Value, error) { return jsonValue(d) }

func (d *InviteRecordDocs) Scan(src interface{}) error { return jsonScan(d, src) }

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch s := src.(type) {
	case []byte:
		return json.Unmarshal(s, dst)
	case string:
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// uuidStrings converts a uuid set to its stored string form.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// parseUUIDs converts stored strings back to a uuid set, skipping anything
// unparseable.
func parseUUIDs(values []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
