package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bjaus/expiry"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Store a few demo tokens and print their expiry metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			cache := expiry.New(cfg.CacheOptions(logger)...)
			defer cache.Close()

			if err := seedTokens(cache); err != nil {
				return err
			}
			return printInfo(cmd.OutOrStdout(), cache, time.Now())
		},
	}
}

func seedTokens(cache *expiry.Cache) error {
	if err := cache.Set("session:"+uuid.NewString(), uuid.NewString()); err != nil {
		return err
	}
	if err := cache.SetWithTTL("token:"+uuid.NewString(), uuid.NewString(), time.Hour); err != nil {
		return err
	}
	return cache.SetWithTTL("nonce:"+uuid.NewString(), uuid.NewString(), 0)
}

// printInfo writes one row per stored key, expired entries included.
func printInfo(w io.Writer, cache *expiry.Cache, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tTTL\tEXPIRES\tSTATE")

	infos := cache.InspectAll()
	for _, key := range slices.Sorted(maps.Keys(infos)) {
		info := infos[key]
		state := "live"
		if info.Expired {
			state = "expired"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", key, info.TTL,
			humanize.RelTime(info.ExpiresAt, now, "ago", "from now"), state)
	}
	fmt.Fprintf(tw, "\n%s stored, %s live\n",
		humanize.Comma(int64(len(infos))), humanize.Comma(int64(len(cache.Keys()))))
	return tw.Flush()
}
