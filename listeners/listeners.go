package listeners

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/nulls"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/silinternational/inspection-api/api"
	"github.com/silinternational/inspection-api/domain"
	"github.com/silinternational/inspection-api/log"
	"github.com/silinternational/inspection-api/models"
	"github.com/silinternational/inspection-api/storage"
)

type apiListener struct {
	name     string
	listener func(events.Event)
}

// inspectionLoader reads an inspection by ID
type inspectionLoader interface {
	LoadInspectionDamage(ctx context.Context, id uuid.UUID) (api.InspectionDamage, error)
}

var (
	loader       inspectionLoader = models.InspectionStore{}
	removePhotos                  = storage.RemovePhotos
)

// Register new listener functions here.  Remember, though, that these groupings just
// describe what we want.  They don't make it happen this way. The listeners
// themselves still need to verify the event kind
var apiListeners = map[string][]apiListener{
	domain.EventApiInspectionDamageSaved: {
		{
			name:     "damage-saved-remove-photos",
			listener: damageSavedRemovePhotos,
		},
		{
			name:     "damage-saved-log-summary",
			listener: damageSavedLogSummary,
		},
	},
	domain.EventApiInspectionDamageReset: {
		{
			name:     "damage-reset-remove-photos",
			listener: damageResetRemovePhotos,
		},
	},
	domain.EventApiInspectionDeleted: {
		{
			name:     "inspection-deleted-remove-photos",
			listener: inspectionDeletedRemovePhotos,
		},
	},
}

// RegisterListeners registers all the listeners to be used by the app
func RegisterListeners() {
	for _, listeners := range apiListeners {
		for _, l := range listeners {
			_, err := events.NamedListen(l.name, tracked(l.listener))
			if err != nil {
				domain.ErrLogger.Printf("Failed registering listener: %s, err: %s", l.name, err.Error())
				continue
			}
			domain.Listeners.Register()
		}
	}
}

// Wait blocks until the listeners have handled every event emitted so far, or the timeout passes
func Wait(timeout time.Duration) {
	if !domain.Listeners.Wait(timeout) {
		domain.ErrLogger.Printf("listeners still running after %s", timeout)
	}
}

// tracked reports the end of each call for the events this package handles. Other events, such as the ones the
// events package emits itself, are not counted.
func tracked(listener func(events.Event)) func(events.Event) {
	return func(e events.Event) {
		if _, ok := apiListeners[e.Kind]; ok {
			defer domain.Listeners.Done()
		}
		listener(e)
	}
}

func getID(p events.Payload) (uuid.UUID, error) {
	i, ok := p[domain.EventPayloadID]
	if !ok {
		return uuid.UUID{}, fmt.Errorf("id not in event payload")
	}

	switch id := i.(type) {
	case string:
		return uuid.FromStringOrNil(id), nil
	case uuid.UUID:
		return id, nil
	case nulls.UUID:
		return id.UUID, nil
	default:
		return uuid.UUID{}, fmt.Errorf("id not a valid type: %T", id)
	}
}

// getPhotos returns the photo storage keys carried by the event payload
func getPhotos(p events.Payload) []string {
	switch photos := p[domain.EventPayloadPhotos].(type) {
	case []string:
		return photos
	case []any:
		keys := make([]string, 0, len(photos))
		for _, photo := range photos {
			if s, ok := photo.(string); ok {
				keys = append(keys, s)
			}
		}
		return keys
	default:
		return nil
	}
}

func findInspection(payload events.Payload, listenerName string) (api.InspectionDamage, error) {
	id, err := getID(payload)
	if err != nil {
		err := errors.New("Failed to get inspection ID from event payload: " + err.Error())
		domain.ErrLogger.Print(err.Error())
		return api.InspectionDamage{}, err
	}

	var findErr error
	for i := 1; i <= domain.Env.ListenerMaxRetries; i++ {
		inspection, err := loader.LoadInspectionDamage(context.Background(), id)
		if err == nil {
			return inspection, nil
		}
		findErr = err

		var appErr *api.AppError
		if errors.As(err, &appErr) && appErr.Key == api.ErrorInspectionNotFound {
			break
		}
		time.Sleep(getDelayDuration(i * i))
	}

	domain.ErrLogger.Printf("Failed to find inspection in %s, %s", listenerName, findErr)
	return api.InspectionDamage{}, fmt.Errorf("Failed to find inspection in %s, %w", listenerName, findErr)
}

func panicRecover(name string) {
	if err := recover(); err != nil {
		domain.ErrLogger.Printf("panic occurred in %s: %s", name, err)
	}
}

// getDelayDuration is a helper function to calculate delay in milliseconds before processing event
func getDelayDuration(multiplier int) time.Duration {
	return time.Duration(domain.Env.ListenerDelayMilliseconds) * time.Millisecond * time.Duration(multiplier)
}

func eventLogger(e events.Event) *logrus.Entry {
	return domain.Logger.WithFields(map[string]any{
		log.FieldEvent:        e.Kind,
		log.FieldInspectionID: e.Payload[domain.EventPayloadID],
		log.FieldPartKey:      e.Payload[domain.EventPayloadPartKey],
	})
}
