package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/facetcore/internal/feeledger"

	"github.com/redis/go-redis/v9"
)

// developerKeyPrefix is the namespace prefix for developer registrations.
const developerKeyPrefix = "feeledger"

// developerRegistrationKey returns the Redis key holding the developer
// registration of one module.
//
// Format: "feeledger:developer:{moduleID}"
func developerRegistrationKey(moduleID string) string {
	return fmt.Sprintf("%s:developer:%s", developerKeyPrefix, moduleID)
}

// developerRegistrationData is the persisted JSON shape of a registration.
type developerRegistrationData struct {
	ModuleID     string    `json:"module_id"`
	Wallet       string    `json:"wallet"`
	ShareBps     uint32    `json:"share_bps"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func encodeDeveloperRegistration(reg feeledger.DeveloperRegistration) ([]byte, error) {
	return json.Marshal(developerRegistrationData(reg))
}

func decodeDeveloperRegistration(raw []byte) (feeledger.DeveloperRegistration, error) {
	var data developerRegistrationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return feeledger.DeveloperRegistration{}, err
	}

	return feeledger.DeveloperRegistration(data), nil
}

// GetRegistration implements the feeledger.DeveloperStorage interface.
func (c *client) GetRegistration(ctx context.Context, moduleID string) (feeledger.DeveloperRegistration, error) {
	raw, err := c.conn.Get(ctx, developerRegistrationKey(moduleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = feeledger.ErrNotRegistered
		}

		return feeledger.DeveloperRegistration{}, err
	}

	return decodeDeveloperRegistration(raw)
}

// CreateRegistration implements the feeledger.DeveloperStorage interface.
//
// A WATCH transaction guards the active-registration check: two concurrent
// registrations of the same module collapse to a single winner, and an
// inactive record may be overwritten by a re-registration.
func (c *client) CreateRegistration(ctx context.Context, reg feeledger.DeveloperRegistration) error {
	key := developerRegistrationKey(reg.ModuleID)

	raw, err := encodeDeveloperRegistration(reg)
	if err != nil {
		return err
	}

	txn := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			existing, err := decodeDeveloperRegistration(current)
			if err != nil {
				return err
			}
			if existing.Active {
				return feeledger.ErrAlreadyRegistered
			}
		case !errors.Is(err, redis.Nil):
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return pipe.Set(ctx, key, raw, 0).Err()
		})
		return err
	}

	return c.conn.Watch(ctx, txn, key)
}

// UpdateRegistration implements the feeledger.DeveloperStorage interface.
func (c *client) UpdateRegistration(ctx context.Context, reg feeledger.DeveloperRegistration) error {
	key := developerRegistrationKey(reg.ModuleID)

	raw, err := encodeDeveloperRegistration(reg)
	if err != nil {
		return err
	}

	set, err := c.conn.SetXX(ctx, key, raw, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return feeledger.ErrNotRegistered
	}

	return nil
}

// Compile-time assertion to ensure *client satisfies the feeledger.DeveloperStorage interface
var _ feeledger.DeveloperStorage = new(client)
