package metrics

import (
	"context"
	"time"

	"github.com/cuemby/rlvm/pkg/log"
)

// VolumeGroupSource reports the state of the managed volume group.
type VolumeGroupSource interface {
	ProvisionableBytes(ctx context.Context) (uint64, error)
	LogicalVolumeCount(ctx context.Context) (int, error)
}

// Collector periodically samples a VolumeGroupSource into gauges
type Collector struct {
	source   VolumeGroupSource
	interval time.Duration
	stopCh   chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(source VolumeGroupSource, interval time.Duration) *Collector {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Collector{
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the metrics collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), c.interval)
	defer cancel()

	free, err := c.source.ProvisionableBytes(ctx)
	if err != nil {
		log.Logger.Warn().Err(err).Msg("Failed to sample provisionable bytes")
		UpdateComponent(ComponentAuthority, false, err.Error())
		return
	}
	ProvisionableBytes.Set(float64(free))

	count, err := c.source.LogicalVolumeCount(ctx)
	if err != nil {
		log.Logger.Warn().Err(err).Msg("Failed to count logical volumes")
		UpdateComponent(ComponentAuthority, false, err.Error())
		return
	}
	LogicalVolumesTotal.Set(float64(count))
	UpdateComponent(ComponentAuthority, true, "")
}
