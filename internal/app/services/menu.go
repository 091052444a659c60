package services

import (
	"context"
	"sync"

	"order-up/internal/app/core"
	"order-up/internal/domain/dto"
	"order-up/internal/domain/models"
	"order-up/pkg/logger"
)

// MenuService owns the menu collection. Item fields are appended as given;
// validating names, prices and categories is the caller's concern.
type MenuService struct {
	mu    sync.Mutex
	store core.Store
	ids   idGenerator
	mylog logger.Logger
}

func NewMenuService(store core.Store, mylog logger.Logger) *MenuService {
	return &MenuService{store: store, mylog: mylog}
}

// List returns the full collection in insertion order. An uncreated
// collection lists as empty, never as null.
func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.MenuItem
	if err := s.store.Load(ctx, core.CollectionMenu, &items); err != nil {
		s.mylog.Action("menu_load_failed").Error("Failed to load menu", err)
		return nil, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (s *MenuService) Add(ctx context.Context, req dto.MenuItemRequest) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.MenuItem
	if err := s.store.Load(ctx, core.CollectionMenu, &items); err != nil {
		s.mylog.Action("menu_load_failed").Error("Failed to load menu", err)
		return models.MenuItem{}, err
	}

	item := models.MenuItem{ID: s.ids.next()}
	req.ApplyTo(&item)
	items = append(items, item)

	if err := s.store.Save(ctx, core.CollectionMenu, items); err != nil {
		s.mylog.Action("menu_save_failed").Error("Failed to save menu", err)
		return models.MenuItem{}, err
	}

	s.mylog.Action("menu_item_added").Info("Menu item added",
		"item_id", item.ID, "name", item.Name, "category", item.Category)
	return item, nil
}

// Update merges the supplied fields onto the stored record. The id always
// stays the addressed one; a payload cannot reassign it.
func (s *MenuService) Update(ctx context.Context, id int64, req dto.MenuItemRequest) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.MenuItem
	if err := s.store.Load(ctx, core.CollectionMenu, &items); err != nil {
		s.mylog.Action("menu_load_failed").Error("Failed to load menu", err)
		return models.MenuItem{}, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		req.ApplyTo(&items[i])
		items[i].ID = id

		if err := s.store.Save(ctx, core.CollectionMenu, items); err != nil {
			s.mylog.Action("menu_save_failed").Error("Failed to save menu", err)
			return models.MenuItem{}, err
		}
		s.mylog.Action("menu_item_updated").Info("Menu item updated", "item_id", id)
		return items[i], nil
	}
	return models.MenuItem{}, core.ErrNotFound
}

func (s *MenuService) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []models.MenuItem
	if err := s.store.Load(ctx, core.CollectionMenu, &items); err != nil {
		s.mylog.Action("menu_load_failed").Error("Failed to load menu", err)
		return err
	}

	kept := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return core.ErrNotFound
	}

	if err := s.store.Save(ctx, core.CollectionMenu, kept); err != nil {
		s.mylog.Action("menu_save_failed").Error("Failed to save menu", err)
		return err
	}
	s.mylog.Action("menu_item_removed").Info("Menu item removed", "item_id", id)
	return nil
}
