package login_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	login "github.com/ram-0209/go-login"
)

// MockDirectory implements login.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetByUsername(ctx context.Context, username string) (*login.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*login.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectory) Create(ctx context.Context, record *login.User) (*login.User, error) {
	args := m.Called(ctx, record)
	if u, ok := args.Get(0).(*login.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDirectory) GetOrProvision(ctx context.Context, record *login.User) (*login.User, error) {
	args := m.Called(ctx, record)
	if u, ok := args.Get(0).(*login.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// memoryDirectory is a map-backed Directory for scenario tests that need
// real find-or-create behavior.
type memoryDirectory struct {
	users   map[string]*login.User
	nextID  int64
	creates int
}

func newMemoryDirectory() *memoryDirectory {
	return &memoryDirectory{
		users:  map[string]*login.User{},
		nextID: 1,
	}
}

func (d *memoryDirectory) GetByUsername(ctx context.Context, username string) (*login.User, error) {
	if u, ok := d.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, login.ErrIdentityNotFound
}

func (d *memoryDirectory) Create(ctx context.Context, record *login.User) (*login.User, error) {
	d.creates++
	if existing, ok := d.users[record.Username]; ok {
		copied := *existing
		return &copied, nil
	}

	record.ID = d.nextID
	d.nextID++
	stored := *record
	d.users[record.Username] = &stored
	return record, nil
}

func (d *memoryDirectory) GetOrProvision(ctx context.Context, record *login.User) (*login.User, error) {
	if u, err := d.GetByUsername(ctx, record.Username); err == nil {
		return u, nil
	}
	return d.Create(ctx, record)
}

func newTestConfig() login.SignerConfig {
	return login.SignerConfig{
		SigningKey: "test-signing-key",
	}
}
