package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/store"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

const defaultSnapshotLimit = 50

// WatchChecker runs the persisted check flow for one watch.
type WatchChecker interface {
	CheckWatchByID(ctx context.Context, id int64) (*engine.WatchOutcome, error)
}

// WatchHandler handles watch CRUD, manual checks and snapshot history.
type WatchHandler struct {
	store   store.Store
	checker WatchChecker
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(s store.Store, c WatchChecker) *WatchHandler {
	return &WatchHandler{store: s, checker: c}
}

// --- Input/Output types ---

// ListWatchesInput filters the watch list.
type ListWatchesInput struct {
	UserID     string `query:"user_id"     doc:"Only watches owned by this user"`
	CardKey    string `query:"card_key"    doc:"Only watches of this card"`
	ActiveOnly bool   `query:"active_only" doc:"Only active watches"`
	Limit      int    `query:"limit"       doc:"Number of results (default 50)"  minimum:"0" maximum:"500"`
	Offset     int    `query:"offset"      doc:"Pagination offset"               minimum:"0"`
}

// ListWatchesOutput is a page of watches.
type ListWatchesOutput struct {
	Body struct {
		Watches []domain.Watch `json:"watches"`
		Total   int            `json:"total"`
	}
}

// WatchIDInput addresses a single watch.
type WatchIDInput struct {
	ID int64 `path:"id" doc:"Watch ID"`
}

// GetWatchOutput is a watch together with its most recent snapshot.
type GetWatchOutput struct {
	Body struct {
		domain.Watch
		LatestSnapshot *domain.PriceSnapshot `json:"latest_snapshot,omitempty"`
	}
}

// CreateWatchInput is the request body for creating or re-activating a watch.
type CreateWatchInput struct {
	Body struct {
		UserID             string `json:"user_id"                       minLength:"1" doc:"Owner of the watch"`
		CardKey            string `json:"card_key"                      minLength:"1" doc:"Marketplace card key"`
		CardName           string `json:"card_name"                     minLength:"1" doc:"Card display name"`
		Rare               string `json:"rare"                          minLength:"1" doc:"Rarity code"`
		PackID             string `json:"pack_id,omitempty"             doc:"Pack identifier"`
		PackName           string `json:"pack_name,omitempty"           doc:"Pack display name"`
		PackCardID         string `json:"pack_card_id,omitempty"        doc:"Card number within the pack"`
		ImageURL           string `json:"image_url,omitempty"           doc:"Card image URL used in notifications"`
		TargetPrice        int    `json:"target_price"                  minimum:"0"   doc:"Notify at or below this price"`
		TargetPriceMin     int    `json:"target_price_min,omitempty"    minimum:"0"   doc:"Ignore prices below this floor"`
		NotificationTarget string `json:"notification_target,omitempty" doc:"Recipient override (e.g. LINE user ID)"`
	}
}

// WatchOutput wraps a single watch.
type WatchOutput struct {
	Body domain.Watch
}

// UpdateWatchInput is a partial update of a watch.
type UpdateWatchInput struct {
	ID   int64 `path:"id" doc:"Watch ID"`
	Body struct {
		TargetPrice        *int    `json:"target_price,omitempty"        minimum:"0"`
		TargetPriceMin     *int    `json:"target_price_min,omitempty"    minimum:"0"`
		IsActive           *bool   `json:"is_active,omitempty"`
		NotificationTarget *string `json:"notification_target,omitempty"`
	}
}

// SetActiveInput toggles whether a watch is checked.
type SetActiveInput struct {
	ID   int64 `path:"id" doc:"Watch ID"`
	Body struct {
		Active bool `json:"active" example:"false"`
	}
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// CheckWatchOutput is the persisted outcome of a manual check.
type CheckWatchOutput struct {
	Body *engine.WatchOutcome
}

// ListSnapshotsInput addresses a watch's snapshot history.
type ListSnapshotsInput struct {
	ID    int64 `path:"id"    doc:"Watch ID"`
	Limit int   `query:"limit" doc:"Number of snapshots (default 50)" minimum:"0" maximum:"500"`
}

// ListSnapshotsOutput is a watch's snapshot history, newest first.
type ListSnapshotsOutput struct {
	Body []domain.PriceSnapshot
}

// --- Handlers ---

// List returns watches matching the optional filters.
func (h *WatchHandler) List(ctx context.Context, input *ListWatchesInput) (*ListWatchesOutput, error) {
	q := &store.WatchQuery{
		ActiveOnly: input.ActiveOnly,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if input.UserID != "" {
		q.UserID = &input.UserID
	}
	if input.CardKey != "" {
		q.CardKey = &input.CardKey
	}

	watches, total, err := h.store.ListWatches(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing watches: " + err.Error())
	}
	if watches == nil {
		watches = []domain.Watch{}
	}

	out := &ListWatchesOutput{}
	out.Body.Watches = watches
	out.Body.Total = total
	return out, nil
}

// Get returns a watch and its latest snapshot, if any.
func (h *WatchHandler) Get(ctx context.Context, input *WatchIDInput) (*GetWatchOutput, error) {
	w, err := h.store.GetWatch(ctx, input.ID)
	if err != nil {
		return nil, statusError("getting watch", err)
	}

	snap, err := h.store.LatestSnapshot(ctx, input.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("loading latest snapshot: " + err.Error())
	}

	out := &GetWatchOutput{}
	out.Body.Watch = *w
	out.Body.LatestSnapshot = snap
	return out, nil
}

// Create upserts a watch on (user_id, card_key, rare, pack_id), updating
// its targets and re-activating it when it already exists.
func (h *WatchHandler) Create(ctx context.Context, input *CreateWatchInput) (*WatchOutput, error) {
	b := input.Body
	if b.TargetPriceMin > b.TargetPrice {
		return nil, huma.Error400BadRequest("target_price_min must not exceed target_price")
	}

	w := domain.Watch{
		UserID:                  b.UserID,
		CardKey:                 b.CardKey,
		CardName:                b.CardName,
		PackID:                  b.PackID,
		PackName:                b.PackName,
		PackCardID:              b.PackCardID,
		Rare:                    b.Rare,
		ImageURL:                b.ImageURL,
		TargetPriceMax:          b.TargetPrice,
		TargetPriceMin:          b.TargetPriceMin,
		IsActive:                true,
		OwnerNotificationTarget: b.NotificationTarget,
	}
	if err := h.store.CreateWatch(ctx, &w); err != nil {
		return nil, huma.Error500InternalServerError("creating watch: " + err.Error())
	}
	return &WatchOutput{Body: w}, nil
}

// Update applies a partial update to a watch's targets and state.
func (h *WatchHandler) Update(ctx context.Context, input *UpdateWatchInput) (*WatchOutput, error) {
	w, err := h.store.GetWatch(ctx, input.ID)
	if err != nil {
		return nil, statusError("getting watch", err)
	}

	b := input.Body
	if b.TargetPrice != nil {
		w.TargetPriceMax = *b.TargetPrice
	}
	if b.TargetPriceMin != nil {
		w.TargetPriceMin = *b.TargetPriceMin
	}
	if b.IsActive != nil {
		w.IsActive = *b.IsActive
	}
	if b.NotificationTarget != nil {
		w.OwnerNotificationTarget = *b.NotificationTarget
	}
	if w.TargetPriceMin > w.TargetPriceMax {
		return nil, huma.Error400BadRequest("target_price_min must not exceed target_price")
	}

	if err := h.store.UpdateWatch(ctx, w); err != nil {
		return nil, statusError("updating watch", err)
	}
	return &WatchOutput{Body: *w}, nil
}

// SetActive enables or disables a watch.
func (h *WatchHandler) SetActive(ctx context.Context, input *SetActiveInput) (*StatusOutput, error) {
	if err := h.store.SetWatchActive(ctx, input.ID, input.Body.Active); err != nil {
		return nil, statusError("setting watch active", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// Delete removes a watch with its snapshots and notifications.
func (h *WatchHandler) Delete(ctx context.Context, input *WatchIDInput) (*struct{}, error) {
	if err := h.store.DeleteWatch(ctx, input.ID); err != nil {
		return nil, statusError("deleting watch", err)
	}
	return nil, nil
}

// Check runs the watch's price check now, persisting the snapshot and
// delivering a notification when one is due.
func (h *WatchHandler) Check(ctx context.Context, input *WatchIDInput) (*CheckWatchOutput, error) {
	out, err := h.checker.CheckWatchByID(ctx, input.ID)
	if err != nil {
		return nil, statusError("checking watch", err)
	}
	return &CheckWatchOutput{Body: out}, nil
}

// Snapshots returns the watch's snapshot history, newest first.
func (h *WatchHandler) Snapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultSnapshotLimit
	}

	snaps, err := h.store.ListSnapshots(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing snapshots: " + err.Error())
	}
	if snaps == nil {
		snaps = []domain.PriceSnapshot{}
	}
	return &ListSnapshotsOutput{Body: snaps}, nil
}

// RegisterWatchRoutes registers watch endpoints with the Huma API.
func RegisterWatchRoutes(api huma.API, h *WatchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-watches",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches",
		Summary:     "List watches",
		Description: "Returns watches, newest first, optionally filtered by user, card and active state.",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-watch",
		Method:        http.MethodPost,
		Path:          "/api/v1/watches",
		Summary:       "Create a watch",
		Description:   "Creates a watch or, when the user already watches the variant, updates its targets and re-activates it.",
		Tags:          []string{"watches"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "get-watch",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Get a watch by ID",
		Description: "Returns a single watch with its latest price snapshot.",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "update-watch",
		Method:      http.MethodPatch,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Update a watch",
		Description: "Updates the target range, active state or notification target of a watch.",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "set-watch-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/watches/{id}/active",
		Summary:     "Enable or disable a watch",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-watch",
		Method:        http.MethodDelete,
		Path:          "/api/v1/watches/{id}",
		Summary:       "Delete a watch",
		Description:   "Deletes a watch together with its snapshots and notifications.",
		Tags:          []string{"watches"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "check-watch",
		Method:      http.MethodPost,
		Path:        "/api/v1/watches/{id}/check",
		Summary:     "Check a watch now",
		Description: "Fetches the variant's market, records a snapshot and sends a notification " +
			"when the price is in range and has not been notified yet.",
		Tags:   []string{"watches"},
		Errors: []int{http.StatusNotFound, http.StatusConflict, http.StatusBadGateway},
	}, h.Check)

	huma.Register(api, huma.Operation{
		OperationID: "list-watch-snapshots",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches/{id}/snapshots",
		Summary:     "List price snapshots",
		Description: "Returns the watch's recorded price snapshots, newest first.",
		Tags:        []string{"watches"},
	}, h.Snapshots)
}
