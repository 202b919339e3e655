package background

import (
	"encoding/json"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"

	"github.com/skillswap/skillswap-api/schema"
)

const logPrefix = "background"

// Notifier publishes lifecycle events for delivery collaborators
// (chat, broadcast, push). Delivery itself is not this service's
// concern; events are plain data records.
type Notifier interface {
	Publish(event schema.Event) error
}

// MachineryNotifier enqueues lifecycle events as machinery tasks so
// that downstream workers can fan them out.
type MachineryNotifier struct {
	taskServer *machinery.Server
}

// NewMachineryNotifier - new Notifier backed by a machinery task server
func NewMachineryNotifier(taskServer *machinery.Server) *MachineryNotifier {
	return &MachineryNotifier{
		taskServer: taskServer,
	}
}

// Publish serializes the event and enqueues it under the event name.
func (n *MachineryNotifier) Publish(event schema.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"event":   event.Name,
		"subject": event.Subject,
	}).Debug("enqueue lifecycle event")

	_, err = n.taskServer.SendTask(&tasks.Signature{
		Name: event.Name,
		Args: []tasks.Arg{
			{
				Type:  "string",
				Value: string(payload),
			},
		},
	})
	return err
}
