package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paju/services/logger"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) RefreshActive(context.Context) (bool, error) {
	r.calls.Add(1)
	return true, nil
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New(cron.WithSeconds())
	r := &countingRefresher{}
	require.NoError(t, InitCronJobs(c, "* * * * * *", r, logger.Nop()))
	defer c.Stop()

	assert.Eventually(t, func() bool { return r.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestInitCronJobsBadSpec(t *testing.T) {
	c := cron.New()
	assert.Error(t, InitCronJobs(c, "not a spec", &countingRefresher{}, logger.Nop()))
}
