package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/clifford/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every event to logger.
// Rounds are logged at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_start",
				"run_id", e.RunID,
				"kind", e.Kind,
				"qubits", e.Qubits,
			)
		},
		OnRound: func(ctx context.Context, e *domain.RoundEvent) {
			logger.DebugContext(ctx, "round",
				"run_id", e.RunID,
				"qubit", e.Qubit,
				"gates", e.Gates.Len(),
				"rejections", e.Rejections,
			)
		},
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "run_failed",
					"run_id", e.RunID,
					"kind", e.Kind,
					"error", e.Err,
				)
				return
			}
			logger.InfoContext(ctx, "run_complete",
				"run_id", e.RunID,
				"kind", e.Kind,
				"gates", e.Gates,
				"duration", e.Duration,
			)
		},
	}
}
