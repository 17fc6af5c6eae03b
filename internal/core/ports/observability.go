package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Resolution outcomes used as metric labels.
const (
	OutcomeStoreHit    = "store_hit"
	OutcomeSourceHit   = "source_hit"
	OutcomeAbsent      = "absent"
	OutcomeInvalid     = "invalid"
	OutcomeStoreError  = "store_error"
	OutcomeSourceError = "source_error"
)

type MetricsPort interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(name string, duration time.Duration, labels map[string]string)
	RecordMetrics(c *gin.Context, start time.Time)
	RecordResolution(outcome string)
	RecordStoreWriteFailure()
}
