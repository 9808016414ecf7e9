package usecase_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/admitly/lead-capture-api/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter, offset, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Count(ctx context.Context, filter entity.LeadFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int, status entity.LeadStatus) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) SetSheetRow(ctx context.Context, id, row int) (bool, error) {
	args := m.Called(ctx, id, row)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) ListUnsynced(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockSheetClient
type MockSheetClient struct {
	mock.Mock
}

func (m *MockSheetClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSheetClient) AppendLeadRow(ctx context.Context, lead *entity.Lead) (int, error) {
	args := m.Called(ctx, lead)
	return args.Int(0), args.Error(1)
}

func (m *MockSheetClient) UpdateStatusCell(ctx context.Context, row int, status entity.LeadStatus) error {
	args := m.Called(ctx, row, status)
	return args.Error(0)
}

// SpyDispatcher records dispatches without running anything.
type SpyDispatcher struct {
	mu            sync.Mutex
	CreatedLeads  []*entity.Lead
	StatusChanges []StatusChange
}

type StatusChange struct {
	Row    int
	Status entity.LeadStatus
}

func (s *SpyDispatcher) LeadCreated(lead *entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreatedLeads = append(s.CreatedLeads, lead)
}

func (s *SpyDispatcher) LeadStatusChanged(row int, status entity.LeadStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StatusChanges = append(s.StatusChanges, StatusChange{Row: row, Status: status})
}
