//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package gate

import (
	"context"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/aclgate/aclgate/core"
)

var tracer = otel.Tracer("gate")

// Repository persists the append-only access trail.
type Repository interface {
	WriteAccessLog(ctx context.Context, log core.AccessLog) error
	ListAccessLogs(ctx context.Context, subject string, limit int) ([]core.AccessLog, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new gate repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) WriteAccessLog(ctx context.Context, log core.AccessLog) error {
	ctx, span := tracer.Start(ctx, "Gate.Repository.WriteAccessLog")
	defer span.End()

	if log.ID == "" {
		log.ID = xid.New().String()
	}

	err := r.db.WithContext(ctx).Create(&log).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) ListAccessLogs(ctx context.Context, subject string, limit int) ([]core.AccessLog, error) {
	ctx, span := tracer.Start(ctx, "Gate.Repository.ListAccessLogs")
	defer span.End()

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var logs []core.AccessLog
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subject).
		Order("c_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return logs, nil
}
