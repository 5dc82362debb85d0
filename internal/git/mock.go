package git

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	WorkingDirectoryFunc           func() string
	BranchNameFunc                 func() (string, error)
	HeadShortShaFunc               func() (string, error)
	NumberOfUncommittedChangesFunc func() (int, error)
	RemoteURLFunc                  func(string) (string, error)
}

func (m *MockRepository) WorkingDirectory() string {
	if m.WorkingDirectoryFunc != nil {
		return m.WorkingDirectoryFunc()
	}
	return ""
}

func (m *MockRepository) BranchName() (string, error) {
	if m.BranchNameFunc != nil {
		return m.BranchNameFunc()
	}
	return "", nil
}

func (m *MockRepository) HeadShortSha() (string, error) {
	if m.HeadShortShaFunc != nil {
		return m.HeadShortShaFunc()
	}
	return "", nil
}

func (m *MockRepository) NumberOfUncommittedChanges() (int, error) {
	if m.NumberOfUncommittedChangesFunc != nil {
		return m.NumberOfUncommittedChangesFunc()
	}
	return 0, nil
}

func (m *MockRepository) RemoteURL(name string) (string, error) {
	if m.RemoteURLFunc != nil {
		return m.RemoteURLFunc(name)
	}
	return "", nil
}
