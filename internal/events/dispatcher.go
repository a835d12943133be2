package events

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Sunnycharan27/loopyncapp/internal/metrics"
	"github.com/Sunnycharan27/loopyncapp/internal/repository"
)

// Sender is what the dispatcher needs from the ws hub.
type Sender interface {
	SendToUser(userID string, msg []byte)
}

// Publisher mirrors events to other instances; nil-safe optional.
type Publisher interface {
	Publish(ctx context.Context, userID string, payload []byte) error
}

// Dispatcher runs post-commit effects. Failures are logged and swallowed:
// the triggering operation already committed and is never rolled back.
type Dispatcher struct {
	notifs repository.NotificationRepository
	hub    Sender
	pub    Publisher
	logger *zap.SugaredLogger
}

func NewDispatcher(notifs repository.NotificationRepository, hub Sender, pub Publisher, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{notifs: notifs, hub: hub, pub: pub, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, effects ...Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case Notify:
			if err := d.notifs.Insert(ctx, eff.Notification); err != nil {
				d.logger.Warnw("notification write failed",
					"userId", eff.Notification.UserID,
					"type", eff.Notification.Type,
					"error", err)
				continue
			}
			metrics.NotificationsWritten.Inc()
		case Emit:
			b, err := json.Marshal(eff.Event)
			if err != nil {
				d.logger.Warnw("event marshal failed", "type", eff.Event.Type, "error", err)
				continue
			}
			d.hub.SendToUser(eff.UserID, b)
			if d.pub != nil {
				if err := d.pub.Publish(ctx, eff.UserID, b); err != nil {
					d.logger.Warnw("event mirror failed", "type", eff.Event.Type, "error", err)
				}
			}
		}
	}
}
