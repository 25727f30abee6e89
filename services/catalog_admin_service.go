package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/capoeira360/Craft-Art-Market-sub000/metrics"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"go.uber.org/zap"
)

var (
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrReasonRequired   = errors.New("a reason is required for this action")
	ErrNoChanges        = errors.New("no changes given")
	ErrFieldNotEditable = errors.New("field is not editable")
)

// EditableFields are the item fields an admin may propose changes to.
var EditableFields = []string{
	"name", "category", "price", "description", "tags", "image",
	"location", "featured", "trending", "in_stock",
}

// CatalogAdminService is the admin moderation surface over catalog items.
type CatalogAdminService interface {
	Approve(ctx context.Context, actor Actor, kind models.CatalogKind, id string) (models.ModerationResult, error)
	Reject(ctx context.Context, actor Actor, kind models.CatalogKind, id, reason string) (models.ModerationResult, error)
	Suspend(ctx context.Context, actor Actor, kind models.CatalogKind, id, reason string) (models.ModerationResult, error)
	Delete(ctx context.Context, actor Actor, kind models.CatalogKind, id string) (models.ModerationResult, error)
	Edit(ctx context.Context, actor Actor, kind models.CatalogKind, id string, changes map[string]any) (models.ModerationResult, error)
	RequestChanges(ctx context.Context, actor Actor, kind models.CatalogKind, id, note string) (models.ModerationResult, error)
}

// SimulatedAdminService validates each action and records it in the activity
// log. The catalog is read-only, so nothing is mutated and every result is
// marked Simulated.
type SimulatedAdminService struct {
	catalog *CatalogService
	logs    *ActivityLogService
	log     *zap.Logger
}

var _ CatalogAdminService = (*SimulatedAdminService)(nil)

func NewSimulatedAdminService(catalog *CatalogService, logs *ActivityLogService) *SimulatedAdminService {
	return &SimulatedAdminService{
		catalog: catalog,
		logs:    logs,
		log:     zap.L().Named("admin.moderation"),
	}
}

func (s *SimulatedAdminService) Approve(ctx context.Context, actor Actor, kind models.CatalogKind, id string) (models.ModerationResult, error) {
	return s.moderate(ctx, actor, kind, id, moderation{
		action: models.ActionApproveItem,
		status: models.ItemStatusApproved,
	})
}

func (s *SimulatedAdminService) Reject(ctx context.Context, actor Actor, kind models.CatalogKind, id, reason string) (models.ModerationResult, error) {
	return s.moderate(ctx, actor, kind, id, moderation{
		action:        models.ActionRejectItem,
		status:        models.ItemStatusRejected,
		reason:        reason,
		requireReason: true,
	})
}

func (s *SimulatedAdminService) Suspend(ctx context.Context, actor Actor, kind models.CatalogKind, id, reason string) (models.ModerationResult, error) {
	return s.moderate(ctx, actor, kind, id, moderation{
		action:        models.ActionSuspendItem,
		status:        models.ItemStatusSuspended,
		reason:        reason,
		requireReason: true,
	})
}

func (s *SimulatedAdminService) Delete(ctx context.Context, actor Actor, kind models.CatalogKind, id string) (models.ModerationResult, error) {
	return s.moderate(ctx, actor, kind, id, moderation{action: models.ActionDeleteItem})
}

func (s *SimulatedAdminService) Edit(ctx context.Context, actor Actor, kind models.CatalogKind, id string, changes map[string]any) (models.ModerationResult, error) {
	if len(changes) == 0 {
		metrics.ModerationActions.WithLabelValues(models.ActionEditItem, models.StatusFailed).Inc()
		return models.ModerationResult{}, ErrNoChanges
	}
	for field := range changes {
		if !slices.Contains(EditableFields, field) {
			metrics.ModerationActions.WithLabelValues(models.ActionEditItem, models.StatusFailed).Inc()
			return models.ModerationResult{}, fmt.Errorf("%w: %s", ErrFieldNotEditable, field)
		}
	}
	return s.moderate(ctx, actor, kind, id, moderation{
		action:  models.ActionEditItem,
		changes: changes,
	})
}

func (s *SimulatedAdminService) RequestChanges(ctx context.Context, actor Actor, kind models.CatalogKind, id, note string) (models.ModerationResult, error) {
	return s.moderate(ctx, actor, kind, id, moderation{
		action:        models.ActionRequestItemChanges,
		status:        models.ItemStatusPending,
		reason:        note,
		requireReason: true,
	})
}

type moderation struct {
	action        string
	status        string // resulting status; "" leaves it unchanged
	reason        string
	requireReason bool
	changes       map[string]any
}

func (s *SimulatedAdminService) moderate(ctx context.Context, actor Actor, kind models.CatalogKind, id string, m moderation) (models.ModerationResult, error) {
	reason := strings.TrimSpace(m.reason)
	if m.requireReason && reason == "" {
		metrics.ModerationActions.WithLabelValues(m.action, models.StatusFailed).Inc()
		return models.ModerationResult{}, ErrReasonRequired
	}

	found, err := s.catalog.Find(ctx, kind, id)
	if err != nil {
		metrics.ModerationActions.WithLabelValues(m.action, models.StatusFailed).Inc()
		return models.ModerationResult{}, err
	}
	item, ok := found.Get()
	if !ok {
		metrics.ModerationActions.WithLabelValues(m.action, models.StatusFailed).Inc()
		return models.ModerationResult{}, fmt.Errorf("%w: %s/%s", ErrItemNotFound, kind, id)
	}

	result := models.ModerationResult{
		ItemID:          item.ID,
		Kind:            kind,
		Action:          m.action,
		PreviousStatus:  item.Status,
		ResultingStatus: m.status,
		Reason:          reason,
		Changes:         m.changes,
		Simulated:       true,
	}
	if m.action == models.ActionEditItem {
		result.ResultingStatus = item.Status
	}

	before := map[string]any{"status": item.Status}
	after := map[string]any{"status": result.ResultingStatus}
	if m.changes != nil {
		current := itemFields(item)
		for field, value := range m.changes {
			before[field] = current[field]
			after[field] = value
		}
	}
	if m.action == models.ActionDeleteItem {
		after = map[string]any{"deleted": true}
	}

	entry, err := s.logs.LogActivity(ctx, LogActivityRequest{
		Actor:        actor,
		Action:       m.action,
		ResourceType: string(kind),
		ResourceID:   item.ID,
		ResourceName: item.Name,
		Reason:       reason,
		Changes:      CreateChanges(before, after),
		Status:       models.StatusSuccess,
	})
	if err != nil {
		// The action is simulated; a lost log entry does not fail it.
		s.log.Error("failed to record moderation action", zap.String("action", m.action), zap.Error(err))
	} else {
		result.LogID = &entry.ID
	}

	metrics.ModerationActions.WithLabelValues(m.action, models.StatusSuccess).Inc()
	return result, nil
}

// itemFields exposes an item's JSON fields by name.
func itemFields(item models.CatalogItem) map[string]any {
	fields := make(map[string]any)
	raw, err := json.Marshal(item)
	if err != nil {
		return fields
	}
	_ = json.Unmarshal(raw, &fields)
	return fields
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	catalogAdminService     CatalogAdminService
	catalogAdminServiceOnce sync.Once
)

func InitCatalogAdminService(s CatalogAdminService) {
	catalogAdminService = s
	catalogAdminServiceOnce = sync.Once{}
}

func GetCatalogAdminService() CatalogAdminService {
	catalogAdminServiceOnce.Do(func() {
		if catalogAdminService == nil {
			catalogAdminService = NewSimulatedAdminService(GetCatalogService(), GetActivityLogService())
		}
	})
	return catalogAdminService
}
