package dispatch

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-subxt/metadata"
)

// MockErrorLookup is a mock of ErrorLookup interface.
type MockErrorLookup struct {
	ctrl     *gomock.Controller
	recorder *MockErrorLookupMockRecorder
}

// MockErrorLookupMockRecorder is the mock recorder for MockErrorLookup.
type MockErrorLookupMockRecorder struct {
	mock *MockErrorLookup
}

// NewMockErrorLookup creates a new mock instance.
func NewMockErrorLookup(ctrl *gomock.Controller) *MockErrorLookup {
	mock := &MockErrorLookup{ctrl: ctrl}
	mock.recorder = &MockErrorLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockErrorLookup) EXPECT() *MockErrorLookupMockRecorder {
	return m.recorder
}

// Error mocks base method.
func (m *MockErrorLookup) Error(pallet, index uint8) (*metadata.ErrorMetadata, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Error", pallet, index)
	ret0, _ := ret[0].(*metadata.ErrorMetadata)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Error indicates an expected call of Error.
func (mr *MockErrorLookupMockRecorder) Error(pallet, index any) *MockErrorLookupErrorCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*MockErrorLookup)(nil).Error), pallet, index)
	return &MockErrorLookupErrorCall{Call: call}
}

// MockErrorLookupErrorCall wrap *gomock.Call.
type MockErrorLookupErrorCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockErrorLookupErrorCall) Return(arg0 *metadata.ErrorMetadata, arg1 error) *MockErrorLookupErrorCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockErrorLookupErrorCall) Do(f func(uint8, uint8) (*metadata.ErrorMetadata, error)) *MockErrorLookupErrorCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockErrorLookupErrorCall) DoAndReturn(f func(uint8, uint8) (*metadata.ErrorMetadata, error)) *MockErrorLookupErrorCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
