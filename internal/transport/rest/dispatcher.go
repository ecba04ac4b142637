package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/contactdesk/backend/internal/domain"
	"github.com/contactdesk/backend/internal/service/record"
)

// recordService defines the minimal interface needed by the Dispatcher.
type recordService interface {
	ListAll(ctx context.Context) ([]domain.Contact, []domain.Activity, error)
	SaveContact(ctx context.Context, c domain.Contact) (*record.SaveResult, error)
	DeleteContact(ctx context.Context, id string) (*record.DeleteResult, error)
	SaveActivity(ctx context.Context, a domain.Activity) (*record.SaveResult, error)
	DeleteActivity(ctx context.Context, id string) (*record.DeleteResult, error)
	BulkUpdateContacts(ctx context.Context, input record.BulkUpdateInput) ([]record.BulkUpdateItem, error)
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	SetSetting(ctx context.Context, key, value string) (*domain.Setting, error)
}

// Dispatcher maps the two entry points (full read, action write) onto the
// record service and wraps every outcome in the response envelope.
type Dispatcher struct {
	svc recordService
	log *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(svc recordService, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{svc: svc, log: logger.With("handler", "dispatcher")}
}

type writeRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type readResponse struct {
	Contacts   []domain.Contact  `json:"contacts"`
	Activities []domain.Activity `json:"activities"`
}

type idPayload struct {
	ID string `json:"id"`
}

type settingPayload struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Read handles GET /api: a full scan of both tables inside one envelope.
// There is no partial or paginated read.
func (d *Dispatcher) Read(w http.ResponseWriter, r *http.Request) {
	contacts, activities, err := d.svc.ListAll(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	writeSuccess(w, readResponse{Contacts: contacts, Activities: activities})
}

// Write handles POST /api: body {action, data}. Unrecognized actions are
// rejected before any store access.
func (d *Dispatcher) Write(w http.ResponseWriter, r *http.Request) {
	var req writeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, domain.ErrMalformedPayload.Error())
		return
	}

	data, err := d.dispatch(r.Context(), req)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	writeSuccess(w, data)
}

// dispatch maps an action name onto a record service operation.
func (d *Dispatcher) dispatch(ctx context.Context, req writeRequest) (any, error) {
	switch req.Action {
	case "saveContact":
		var c domain.Contact
		if err := unmarshalPayload(req.Data, &c); err != nil {
			return nil, err
		}
		return d.svc.SaveContact(ctx, c)

	case "deleteContact":
		var p idPayload
		if err := unmarshalPayload(req.Data, &p); err != nil {
			return nil, err
		}
		return d.svc.DeleteContact(ctx, p.ID)

	case "saveActivity":
		var a domain.Activity
		if err := unmarshalPayload(req.Data, &a); err != nil {
			return nil, err
		}
		return d.svc.SaveActivity(ctx, a)

	case "deleteActivity":
		var p idPayload
		if err := unmarshalPayload(req.Data, &p); err != nil {
			return nil, err
		}
		return d.svc.DeleteActivity(ctx, p.ID)

	case "bulkUpdate":
		var input record.BulkUpdateInput
		if err := unmarshalPayload(req.Data, &input); err != nil {
			return nil, err
		}
		return d.svc.BulkUpdateContacts(ctx, input)

	case "getSetting":
		var p settingPayload
		if err := unmarshalPayload(req.Data, &p); err != nil {
			return nil, err
		}
		return d.svc.GetSetting(ctx, p.Key)

	case "setSetting":
		var p settingPayload
		if err := unmarshalPayload(req.Data, &p); err != nil {
			return nil, err
		}
		return d.svc.SetSetting(ctx, p.Key, settingValue(p.Value))

	default:
		return nil, &domain.InvalidActionError{Action: req.Action}
	}
}

// fail renders an error through the envelope. NotFound and invalid-action
// outcomes are expected; anything else is logged as an internal error.
func (d *Dispatcher) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrMalformedPayload),
		errors.Is(err, domain.ErrValidation):
		// expected failures, no log
	default:
		d.log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	}
	writeFailure(w, err.Error())
}

func unmarshalPayload(data json.RawMessage, dst any) error {
	if len(data) == 0 {
		return domain.ErrMalformedPayload
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return nil
}

// settingValue stringifies a scalar setting value: the settings table holds
// text cells, so numbers and booleans are stored in their printed form.
func settingValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
