package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/five82/shopfront/internal/state"
)

const keyPrefix = "cart:"

// maxTxRetries bounds optimistic-lock retries when two sessions share a key.
const maxTxRetries = 5

// Redis keeps the cart in a Redis string keyed by session, refreshed with the
// configured TTL on every write.
type Redis struct {
	client  *redis.Client
	session string
	ttl     time.Duration
	now     func() time.Time
}

var _ Backend = (*Redis)(nil)

// NewRedis creates a Redis-backed cart for session.
func NewRedis(client *redis.Client, session string, ttl time.Duration) *Redis {
	return &Redis{
		client:  client,
		session: session,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key returns the Redis key the cart is stored under.
func (r *Redis) Key() string {
	return keyPrefix + r.session
}

// Ping checks that the Redis server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// DispatchAddToCart implements state.Dispatcher. The read-modify-write runs
// under WATCH so concurrent writers do not drop items.
func (r *Redis) DispatchAddToCart(ctx context.Context, line state.CartLine) error {
	key := r.Key()
	txf := func(tx *redis.Tx) error {
		cart, err := r.decode(tx.Get(ctx, key))
		if err != nil {
			return err
		}
		cart.Apply(line, r.now())

		data, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("marshal cart: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("redis save cart: %w", err)
		}
		return nil
	}
	return fmt.Errorf("redis save cart: %w", redis.TxFailedErr)
}

// Cart loads the session cart. A missing key is an empty cart.
func (r *Redis) Cart(ctx context.Context) (Cart, error) {
	return r.decode(r.client.Get(ctx, r.Key()))
}

func (r *Redis) decode(cmd *redis.StringCmd) (Cart, error) {
	data, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Cart{ID: r.session}, nil
		}
		return Cart{}, fmt.Errorf("redis get cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return c, nil
}
