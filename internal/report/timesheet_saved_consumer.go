package report

import (
	"context"
	"encoding/json"
	"time"

	"go-pontaj/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type TimesheetSavedConsumer struct {
	reader  *kafka.Reader
	service Service
	logger  *zap.Logger
}

func NewTimesheetSavedConsumer(
	broker string,
	groupID string,
	service Service,
	logger ...*zap.Logger,
) *TimesheetSavedConsumer {
	l := zap.L().Named("report.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.consumer")
	}

	return &TimesheetSavedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.TimesheetSavedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		service: service,
		logger:  l,
	}
}

func (c *TimesheetSavedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume timesheet_saved failed", zap.Error(err))
				continue
			}

			var event events.TimesheetSavedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error("decode timesheet_saved event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid timesheet_saved event failed", zap.Error(commitErr))
				}
				continue
			}

			// Apply is an upsert, so a redelivered event just rewrites the
			// same projection row.
			if err := c.service.Apply(ctx, event); err != nil {
				c.logger.Error("apply timesheet_saved event failed",
					zap.String("timesheet_id", event.TimesheetID),
					zap.String("store_id", event.StoreID),
					zap.Error(err),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit timesheet_saved event failed", zap.Error(err))
			}
		}
	}()
}
