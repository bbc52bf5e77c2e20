package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjaus/expiry"
)

func scenarioCmd() *cobra.Command {
	var fast bool

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Replay the token and default-TTL expiry scenarios in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig()
			if err != nil {
				return err
			}

			scale := time.Duration(1)
			if fast {
				scale = 100
			}
			wait := func(d time.Duration) { time.Sleep(d / scale) }
			ttl := func(d time.Duration) time.Duration { return d / scale }

			cache := expiry.New(expiry.WithLogger(logger))
			return runScenarios(cmd.OutOrStdout(), cache, wait, ttl)
		},
	}

	cmd.Flags().BoolVar(&fast, "fast", false, "Scale all durations down by 100x")
	return cmd
}

// runScenarios drives cache through the token expiry and default-TTL
// scenarios. wait advances time and ttl scales every duration handed to the
// cache, so callers can run it against a fake clock or sped up.
func runScenarios(w io.Writer, cache *expiry.Cache, wait func(time.Duration), ttl func(time.Duration) time.Duration) error {
	fmt.Fprintln(w, "token expiry:")
	if err := cache.SetWithTTL("tok", "abc", ttl(time.Second)); err != nil {
		return err
	}
	v, ok := cache.Get("tok")
	fmt.Fprintf(w, "  get tok: %v %v\n", v, ok)

	wait(1500 * time.Millisecond)
	_, ok = cache.Get("tok")
	fmt.Fprintf(w, "  get tok after 1.5s: found=%v\n", ok)
	fmt.Fprintf(w, "  count: %d\n", cache.Count())
	fmt.Fprintf(w, "  remove tok: %v\n", cache.Remove("tok"))
	fmt.Fprintf(w, "  count: %d\n", cache.Count())

	fmt.Fprintln(w, "default ttl recorded at insertion:")
	cache.SetDefaultTTL(ttl(60 * time.Second))
	if err := cache.Set("a", "x"); err != nil {
		return err
	}
	cache.SetDefaultTTL(ttl(time.Second))

	wait(30 * time.Second)
	v, ok = cache.Get("a")
	fmt.Fprintf(w, "  get a after 30s: %v %v\n", v, ok)
	return nil
}
