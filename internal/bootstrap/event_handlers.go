package bootstrap

import (
	"log/slog"

	"github.com/osse101/Daymon_Go/internal/event"
	"github.com/osse101/Daymon_Go/internal/eventlog"
	"github.com/osse101/Daymon_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the audit
// event logger to the hatchery events.
func RegisterEventHandlers(bus event.Bus, eventLog eventlog.Service) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	eventLog.Subscribe(bus)
	slog.Info(LogMsgEventLoggerInitialized)
}
