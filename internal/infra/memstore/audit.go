package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AuditLog is an in-memory audit.Writer and audit.Reader.
type AuditLog struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.AuditLog
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (a *AuditLog) Log(ctx context.Context, ev audit.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	row := audit.ToModel(ev)
	row.ID = a.nextID
	row.CreatedAt = time.Now().UTC()
	a.rows = append(a.rows, row)
	return nil
}

func (a *AuditLog) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	matched := []models.AuditLog{}
	for _, r := range a.rows {
		if f.Action != "" && r.Action != f.Action {
			continue
		}
		if f.Entity != "" && r.Entity != f.Entity {
			continue
		}
		if f.From != nil && r.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !r.CreatedAt.Before(*f.To) {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

var (
	_ audit.Writer = (*AuditLog)(nil)
	_ audit.Reader = (*AuditLog)(nil)
)
