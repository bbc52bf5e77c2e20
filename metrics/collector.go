// Package metrics exports expiry cache statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bjaus/expiry"
)

// Collector implements prometheus.Collector over a single cache.
// Values are read from the cache at scrape time.
type Collector struct {
	cache *expiry.Cache

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	evictions  *prometheus.Desc
	rejected   *prometheus.Desc
	entries    *prometheus.Desc
	defaultTTL *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for cache. name is attached as the "cache"
// const label so several caches can share a registry.
func NewCollector(namespace, name string, cache *expiry.Cache) *Collector {
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", metric),
			help, nil, labels,
		)
	}

	return &Collector{
		cache:      cache,
		hits:       desc("hits_total", "Total number of reads that found a live entry"),
		misses:     desc("misses_total", "Total number of reads that found no live entry"),
		evictions:  desc("evictions_total", "Total entries dropped by sweeps and pattern removals"),
		rejected:   desc("rejected_total", "Total writes refused for an empty key or value"),
		entries:    desc("entries", "Stored entries, including expired ones not yet removed"),
		defaultTTL: desc("default_ttl_seconds", "TTL applied to entries written without an explicit TTL"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.rejected
	ch <- c.entries
	ch <- c.defaultTTL
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.cache.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(s.Rejected))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.cache.Count()))
	ch <- prometheus.MustNewConstMetric(c.defaultTTL, prometheus.GaugeValue, c.cache.DefaultTTL().Seconds())
}
