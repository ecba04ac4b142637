package record

import (
	"context"

	"github.com/contactdesk/backend/internal/domain"
)

// contactRepoMock is a hand-rolled mock of contactRepo.
type contactRepoMock struct {
	ListFunc       func(ctx context.Context) ([]domain.Contact, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Contact, error)
	SaveFunc       func(ctx context.Context, c domain.Contact) (bool, error)
	DeleteByIDFunc func(ctx context.Context, id string) error

	SaveCalls []domain.Contact
}

func (m *contactRepoMock) List(ctx context.Context) ([]domain.Contact, error) {
	return m.ListFunc(ctx)
}

func (m *contactRepoMock) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *contactRepoMock) Save(ctx context.Context, c domain.Contact) (bool, error) {
	m.SaveCalls = append(m.SaveCalls, c)
	return m.SaveFunc(ctx, c)
}

func (m *contactRepoMock) DeleteByID(ctx context.Context, id string) error {
	return m.DeleteByIDFunc(ctx, id)
}

// activityRepoMock is a hand-rolled mock of activityRepo.
type activityRepoMock struct {
	ListFunc              func(ctx context.Context) ([]domain.Activity, error)
	SaveFunc              func(ctx context.Context, a domain.Activity) (bool, error)
	DeleteByIDFunc        func(ctx context.Context, id string) error
	DeleteByContactIDFunc func(ctx context.Context, contactID string) (int, error)

	SaveCalls []domain.Activity
}

func (m *activityRepoMock) List(ctx context.Context) ([]domain.Activity, error) {
	return m.ListFunc(ctx)
}

func (m *activityRepoMock) Save(ctx context.Context, a domain.Activity) (bool, error) {
	m.SaveCalls = append(m.SaveCalls, a)
	return m.SaveFunc(ctx, a)
}

func (m *activityRepoMock) DeleteByID(ctx context.Context, id string) error {
	return m.DeleteByIDFunc(ctx, id)
}

func (m *activityRepoMock) DeleteByContactID(ctx context.Context, contactID string) (int, error) {
	return m.DeleteByContactIDFunc(ctx, contactID)
}

// settingRepoMock is a hand-rolled mock of settingRepo.
type settingRepoMock struct {
	GetFunc  func(ctx context.Context, key string) (*domain.Setting, error)
	SaveFunc func(ctx context.Context, s domain.Setting) error

	SaveCalls []domain.Setting
}

func (m *settingRepoMock) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return m.GetFunc(ctx, key)
}

func (m *settingRepoMock) Save(ctx context.Context, s domain.Setting) error {
	m.SaveCalls = append(m.SaveCalls, s)
	return m.SaveFunc(ctx, s)
}
