// Package store holds the repair knowledge catalog: appliances, repair issues,
// ordered repair steps, recommended parts, users and per-user repair history.
// Everything lives in process memory and is reseeded identically on every
// start; there is no persistence layer behind it.
package store

import (
	"sync"

	"homefix-backend-go/internal/models"
)

// table is one keyed collection: id -> record plus an insertion-order index.
// Ids are assigned by a per-table counter starting at 1 and are never reused.
type table[T any] struct {
	rows   map[int]T
	order  []int
	nextID int
}

func newTable[T any]() table[T] {
	return table[T]{rows: map[int]T{}, nextID: 1}
}

// insert assigns the next id, lets the caller build the record around it, and
// files the record. Callers must hold the store write lock.
func (t *table[T]) insert(build func(id int) T) T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id int, row T) {
	t.rows[id] = row
}

// all returns every record in insertion order.
func (t *table[T]) all() []T {
	items := make([]T, 0, len(t.order))
	for _, id := range t.order {
		items = append(items, t.rows[id])
	}
	return items
}

// where returns the records matching keep, in insertion order.
func (t *table[T]) where(keep func(T) bool) []T {
	items := []T{}
	for _, id := range t.order {
		if keep(t.rows[id]) {
			items = append(items, t.rows[id])
		}
	}
	return items
}

// Store is the single source of truth for catalog and history data. It is
// shared by every request goroutine, so all operations go through one
// store-wide RWMutex; a create's id assignment and insert form one critical
// section, which keeps ids unique under concurrent requests.
type Store struct {
	mu sync.RWMutex

	users      table[models.User]
	appliances table[models.Appliance]
	issues     table[models.RepairIssue]
	steps      table[models.RepairStep]
	history    table[models.RepairHistory]
	parts      table[models.RepairPart]
}

// New constructs an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{
		users:      newTable[models.User](),
		appliances: newTable[models.Appliance](),
		issues:     newTable[models.RepairIssue](),
		steps:      newTable[models.RepairStep](),
		history:    newTable[models.RepairHistory](),
		parts:      newTable[models.RepairPart](),
	}
}

// NewSeeded constructs a store populated with the reference catalog.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}
