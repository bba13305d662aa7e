package cli

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/internal/adapters/file"
	"github.com/aretw0/clifford/internal/adapters/redis"
	"github.com/aretw0/clifford/internal/config"
	"github.com/aretw0/clifford/pkg/adapters/memory"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/entropy"
	"github.com/aretw0/clifford/pkg/ports"
)

// closer releases resources held by a store.
type closer func() error

func noClose() error { return nil }

// createStore builds the run store selected by cfg.Driver.
func createStore(cfg config.StoreConfig) (ports.RunStore, closer, error) {
	switch cfg.Driver {
	case "", "memory":
		return memory.NewStore(), noClose, nil
	case "file":
		return file.New(cfg.Path), noClose, nil
	case "redis":
		var opts []redis.Option
		if cfg.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.TTL))
		}
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// createSource picks the random source: an explicit seed wins over a
// phrase, and with neither the system source is used.
func createSource(seed, phrase string) (rand.Source, string, error) {
	switch {
	case seed != "":
		v, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			return nil, "", fmt.Errorf("invalid seed %q: %w", seed, err)
		}
		return entropy.FromSeed(v), seed, nil
	case phrase != "":
		src, err := entropy.FromPhrase(phrase)
		if err != nil {
			return nil, "", err
		}
		return src, "phrase", nil
	}
	return entropy.System(), "system", nil
}

// createSampler wires a Sampler from configuration. The returned closer
// must be called when the sampler is no longer needed.
func createSampler(cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*clifford.Sampler, closer, error) {
	src, label, err := createSource(cfg.Seed, cfg.Phrase)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := createStore(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	opts := []clifford.Option{
		clifford.WithLogger(logger),
		clifford.WithSource(src, label),
		clifford.WithStore(store),
	}
	for _, h := range hooks {
		opts = append(opts, clifford.WithHooks(h))
	}

	return clifford.New(opts...), closeStore, nil
}
