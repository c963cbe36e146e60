package store

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/csbs-dept/portal-api/internal/kvstore"
	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/csbs-dept/portal-api/internal/seed"
)

// The embedded backend keeps each collection as one serialized JSON array
// under its name in the key/value store. Records are prepended on create, so
// stored order is most recent first.

func loadList[T any](ctx context.Context, kv *kvstore.Store, name string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func saveList[T any](ctx context.Context, kv *kvstore.Store, name string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Put(ctx, name, raw)
}

// initCollection writes the seed for a collection that has never been
// initialized, assigning sequential ids. An already-present collection is
// left alone, stale seed or not.
func initCollection[T any, PT models.Record[T]](ctx context.Context, kv *kvstore.Store, name string, records []T) error {
	_, ok, err := kv.Get(ctx, name)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	for i := range records {
		PT(&records[i]).SetEntityID(uint(i + 1))
	}
	return saveList(ctx, kv, name, records)
}

type localCollection[T any, PT models.Record[T], P models.Patch[T]] struct {
	kv   *kvstore.Store
	name string
	ids  *idAllocator
}

func (c *localCollection[T, PT, P]) List(ctx context.Context) []T {
	items, err := loadList[T](ctx, c.kv, c.name)
	if err != nil {
		log.Printf("list %s: %v", c.name, err)
		return nil
	}
	return items
}

func (c *localCollection[T, PT, P]) Get(ctx context.Context, id uint) (*T, error) {
	items, err := loadList[T](ctx, c.kv, c.name)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (c *localCollection[T, PT, P]) Create(ctx context.Context, item *T) (*T, error) {
	items, err := loadList[T](ctx, c.kv, c.name)
	if err != nil {
		return nil, err
	}
	existing := make([]uint, len(items))
	for i := range items {
		existing[i] = PT(&items[i]).EntityID()
	}
	PT(item).SetEntityID(c.ids.next(c.name, existing))

	items = append([]T{*item}, items...)
	if err := saveList(ctx, c.kv, c.name, items); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *localCollection[T, PT, P]) Update(ctx context.Context, id uint, patch P) (*T, error) {
	items, err := loadList[T](ctx, c.kv, c.name)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).EntityID() != id {
			continue
		}
		patch.Apply(&items[i])
		if err := saveList(ctx, c.kv, c.name, items); err != nil {
			return nil, err
		}
		item := items[i]
		return &item, nil
	}
	return nil, nil
}

func (c *localCollection[T, PT, P]) Delete(ctx context.Context, id uint) bool {
	items, err := loadList[T](ctx, c.kv, c.name)
	if err != nil {
		log.Printf("delete %s/%d: %v", c.name, id, err)
		return false
	}
	kept := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).EntityID() != id {
			kept = append(kept, items[i])
		}
	}
	// Persist whether or not anything matched.
	if err := saveList(ctx, c.kv, c.name, kept); err != nil {
		log.Printf("delete %s/%d: %v", c.name, id, err)
		return false
	}
	return true
}

type localRegistrations struct {
	kv  *kvstore.Store
	ids *idAllocator
}

func (r *localRegistrations) List(ctx context.Context, eventID uint) []models.Registration {
	items, err := loadList[models.Registration](ctx, r.kv, Registrations)
	if err != nil {
		log.Printf("list %s: %v", Registrations, err)
		return nil
	}
	if eventID != 0 {
		filtered := items[:0]
		for _, reg := range items {
			if reg.EventID == eventID {
				filtered = append(filtered, reg)
			}
		}
		items = filtered
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RegisteredAt.After(items[j].RegisteredAt)
	})
	return items
}

func (r *localRegistrations) Create(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	items, err := loadList[models.Registration](ctx, r.kv, Registrations)
	if err != nil {
		return nil, err
	}
	existing := make([]uint, len(items))
	for i := range items {
		existing[i] = items[i].ID
	}
	reg.ID = r.ids.next(Registrations, existing)
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now()
	}
	items = append([]models.Registration{*reg}, items...)
	if err := saveList(ctx, r.kv, Registrations, items); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *localRegistrations) Delete(ctx context.Context, id uint) bool {
	items, err := loadList[models.Registration](ctx, r.kv, Registrations)
	if err != nil {
		log.Printf("delete %s/%d: %v", Registrations, id, err)
		return false
	}
	kept := make([]models.Registration, 0, len(items))
	for _, reg := range items {
		if reg.ID != id {
			kept = append(kept, reg)
		}
	}
	if err := saveList(ctx, r.kv, Registrations, kept); err != nil {
		log.Printf("delete %s/%d: %v", Registrations, id, err)
		return false
	}
	return true
}

// initialize seeds any collection that has no persisted value yet. Running it
// again is a no-op.
func initialize(ctx context.Context, kv *kvstore.Store) error {
	if err := initCollection[models.Notice, *models.Notice](ctx, kv, Notices, seed.Notices()); err != nil {
		return err
	}
	if err := initCollection[models.Event, *models.Event](ctx, kv, Events, seed.Events()); err != nil {
		return err
	}
	if err := initCollection[models.Faculty, *models.Faculty](ctx, kv, Faculty, seed.Faculty()); err != nil {
		return err
	}
	if err := initCollection[models.Student, *models.Student](ctx, kv, Students, seed.Students()); err != nil {
		return err
	}
	if err := initCollection[models.Achievement, *models.Achievement](ctx, kv, Achievements, seed.Achievements()); err != nil {
		return err
	}
	return initCollection[models.Registration, *models.Registration](ctx, kv, Registrations, []models.Registration{})
}
