package service

import (
	"context"
	"sync/atomic"

	"family_expenses/internal/models"
	"family_expenses/internal/repository"
)

// In-test mocks for the repository interfaces, shared across the service
// test files.

type mockUserRepo struct {
	GetByUsernameFn   func(username string) (*models.User, error)
	CountByUsernameFn func(username string) (int, error)

	getCalls   []string
	countCalls []string
}

func (m *mockUserRepo) Create(username, hash string) (int, error) {
	panic("Create not expected in these tests")
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) CountByUsername(username string) (int, error) {
	m.countCalls = append(m.countCalls, username)
	return m.CountByUsernameFn(username)
}

type mockSessionRepo struct {
	CreateFn func(s models.Session) error
	GetFn    func(id string) (*models.Session, error)
	UpdateFn func(s models.Session) error
	DeleteFn func(id string) error

	createCalls  []models.Session
	getCalls     []string
	updateCalls  []models.Session
	deleteCalls  []string
	expiredCalls atomic.Int32
}

func (m *mockSessionRepo) Create(ctx context.Context, s models.Session) error {
	m.createCalls = append(m.createCalls, s)
	if m.CreateFn != nil {
		return m.CreateFn(s)
	}
	return nil
}

func (m *mockSessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	m.getCalls = append(m.getCalls, id)
	if m.GetFn != nil {
		return m.GetFn(id)
	}
	return nil, nil
}

func (m *mockSessionRepo) Update(ctx context.Context, s models.Session) error {
	m.updateCalls = append(m.updateCalls, s)
	if m.UpdateFn != nil {
		return m.UpdateFn(s)
	}
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	m.expiredCalls.Add(1)
	return nil
}

type mockRecordRepo struct {
	InsertFn  func(r models.Record) error
	ReplaceFn func(r models.Record) (bool, error)
	DeleteFn  func(id string) (bool, error)
	ListFn    func(q repository.RecordQuery) ([]models.Record, error)
	CountsFn  func() ([]models.Category, error)

	inserted  []models.Record
	replaced  []models.Record
	deleted   []string
	lastQuery repository.RecordQuery
}

func (m *mockRecordRepo) Insert(ctx context.Context, r models.Record) error {
	m.inserted = append(m.inserted, r)
	if m.InsertFn != nil {
		return m.InsertFn(r)
	}
	return nil
}

func (m *mockRecordRepo) Replace(ctx context.Context, r models.Record) (bool, error) {
	m.replaced = append(m.replaced, r)
	return m.ReplaceFn(r)
}

func (m *mockRecordRepo) Delete(ctx context.Context, id string) (bool, error) {
	m.deleted = append(m.deleted, id)
	return m.DeleteFn(id)
}

func (m *mockRecordRepo) List(ctx context.Context, q repository.RecordQuery) ([]models.Record, error) {
	m.lastQuery = q
	return m.ListFn(q)
}

func (m *mockRecordRepo) CategoryCounts(ctx context.Context) ([]models.Category, error) {
	return m.CountsFn()
}

type mockCategoryRepo struct {
	ListFn func() ([]models.Category, error)

	replaced [][]models.Category
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	return m.ListFn()
}

func (m *mockCategoryRepo) Replace(ctx context.Context, cats []models.Category) error {
	m.replaced = append(m.replaced, cats)
	return nil
}

// Compile-time interface checks for the mocks.
var (
	_ repository.Users      = (*mockUserRepo)(nil)
	_ repository.Sessions   = (*mockSessionRepo)(nil)
	_ repository.Records    = (*mockRecordRepo)(nil)
	_ repository.Categories = (*mockCategoryRepo)(nil)
)
