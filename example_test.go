package expiry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bjaus/expiry"
)

func ExampleCache() {
	cache := expiry.New(expiry.WithDefaultTTL(5 * time.Minute))

	cache.Set("answer", 42)

	if v, ok := cache.Get("answer"); ok {
		fmt.Println(v)
	}
	// Output: 42
}

func ExampleGet() {
	cache := expiry.New()
	cache.Set("token", "abc")

	tok, ok, err := expiry.Get[string](cache, "token")
	fmt.Println(tok, ok, err)

	_, _, err = expiry.Get[int](cache, "token")
	fmt.Println(errors.Is(err, expiry.ErrTypeMismatch))

	// Output:
	// abc true <nil>
	// true
}

func ExampleCache_Set_invalid() {
	cache := expiry.New()

	err := cache.Set("", "value")
	fmt.Println(errors.Is(err, expiry.ErrInvalidArgument))
	fmt.Println(cache.Count())

	// Output:
	// true
	// 0
}

func ExampleCache_SetDefaultTTL() {
	cache := expiry.New()

	cache.SetDefaultTTL(time.Hour)
	cache.Set("a", "x") // keeps the one hour TTL
	cache.SetDefaultTTL(time.Nanosecond)

	info, _ := cache.Inspect("a")
	fmt.Println(info.TTL)
	// Output: 1h0m0s
}

func ExampleCache_RemovePattern() {
	cache := expiry.New()
	cache.Set("user:1:token", "a")
	cache.Set("user:2:token", "b")
	cache.Set("session:9", "c")

	n, _ := cache.RemovePattern(`^user:`)
	fmt.Println(n, cache.Keys())
	// Output: 2 [session:9]
}

func ExampleCache_GetOrLoad() {
	ctx := context.Background()
	cache := expiry.New()

	load := func(context.Context) (any, error) {
		// simulate a token exchange
		return "fresh-token", nil
	}

	v1, _ := cache.GetOrLoad(ctx, "auth", load)
	fmt.Println(v1)

	v2, _ := cache.GetOrLoad(ctx, "auth", load)
	fmt.Println(v2)

	// Output:
	// fresh-token
	// fresh-token
}

func ExampleCache_Stats() {
	cache := expiry.New()

	cache.Set("a", 1)
	cache.Get("a") // hit
	cache.Get("b") // miss

	stats := cache.Stats()
	fmt.Printf("hits: %d, misses: %d, rate: %.0f%%\n",
		stats.Hits, stats.Misses, stats.HitRate()*100)

	// Output: hits: 1, misses: 1, rate: 50%
}
