package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/addressbook"
	"github.com/gabapcia/solwatch/internal/pkg/validator"
	"github.com/gabapcia/solwatch/internal/tracker"

	"github.com/redis/go-redis/v9"
)

const (
	addressKeyPrefix = "address"
	activeSetKey     = "address:active"
)

func addressKey(address string) string {
	return fmt.Sprintf("%s:%s", addressKeyPrefix, address)
}

// deactivateScript flips the active flag of an existing address hash and
// drops it from the active set. It returns 0 when the hash does not exist.
var deactivateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'active', '0')
redis.call('SREM', KEYS[2], ARGV[1])
return 1
`)

func (c *client) UpsertTrackedAddress(ctx context.Context, a tracker.TrackedAddress) error {
	if !validator.IsSolanaAddress(a.Address) {
		return fmt.Errorf("%w: malformed address %q", validator.ErrValidationFailed, a.Address)
	}

	key := addressKey(a.Address)
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"address", a.Address,
			"nickname", a.Nickname,
			"origin", a.Origin,
			"active", "1",
		)
		pipe.HSetNX(ctx, key, "created_at", a.CreatedAt.UTC().Format(time.RFC3339Nano))
		pipe.SAdd(ctx, activeSetKey, a.Address)
		return nil
	})
	if err != nil {
		return storageError("upsert address", err)
	}

	return nil
}

func (c *client) DeactivateTrackedAddress(ctx context.Context, address string) (bool, error) {
	existed, err := deactivateScript.Run(ctx, c.conn, []string{addressKey(address), activeSetKey}, address).Int()
	if err != nil {
		return false, storageError("deactivate address", err)
	}

	return existed == 1, nil
}

func (c *client) ListActiveTrackedAddresses(ctx context.Context) ([]tracker.TrackedAddress, error) {
	members, err := c.conn.SMembers(ctx, activeSetKey).Result()
	if err != nil {
		return nil, storageError("list active addresses", err)
	}

	return c.loadAddresses(ctx, members)
}

func (c *client) GetTrackedAddress(ctx context.Context, address string) (tracker.TrackedAddress, error) {
	fields, err := c.conn.HGetAll(ctx, addressKey(address)).Result()
	if err != nil {
		return tracker.TrackedAddress{}, storageError("get address", err)
	}
	if len(fields) == 0 {
		return tracker.TrackedAddress{}, tracker.ErrAddressNotFound
	}

	return decodeAddress(fields)
}

// loadAddresses fetches the address hashes in one pipeline. Members whose
// hash disappeared are skipped.
func (c *client) loadAddresses(ctx context.Context, addresses []string) ([]tracker.TrackedAddress, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(addresses))
	_, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, address := range addresses {
			cmds[i] = pipe.HGetAll(ctx, addressKey(address))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, storageError("load addresses", err)
	}

	result := make([]tracker.TrackedAddress, 0, len(addresses))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		a, err := decodeAddress(fields)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	return result, nil
}

func decodeAddress(fields map[string]string) (tracker.TrackedAddress, error) {
	a := tracker.TrackedAddress{
		Address:  fields["address"],
		Nickname: fields["nickname"],
		Origin:   fields["origin"],
		Active:   fields["active"] == "1",
	}

	if raw := fields["created_at"]; raw != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return tracker.TrackedAddress{}, storageError("decode address", err)
		}
		a.CreatedAt = createdAt
	}

	return a, nil
}

var (
	_ tracker.Storage     = new(client)
	_ addressbook.Storage = new(client)
)
