package extrinsic

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/go-subxt/common/types"
)

// MockCallIndexLookup is a mock of CallIndexLookup interface.
type MockCallIndexLookup struct {
	ctrl     *gomock.Controller
	recorder *MockCallIndexLookupMockRecorder
}

// MockCallIndexLookupMockRecorder is the mock recorder for MockCallIndexLookup.
type MockCallIndexLookupMockRecorder struct {
	mock *MockCallIndexLookup
}

// NewMockCallIndexLookup creates a new mock instance.
func NewMockCallIndexLookup(ctrl *gomock.Controller) *MockCallIndexLookup {
	mock := &MockCallIndexLookup{ctrl: ctrl}
	mock.recorder = &MockCallIndexLookupMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCallIndexLookup) EXPECT() *MockCallIndexLookupMockRecorder {
	return m.recorder
}

// CallIndex mocks base method.
func (m *MockCallIndexLookup) CallIndex(pallet, call string) (types.CallIndex, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CallIndex", pallet, call)
	ret0, _ := ret[0].(types.CallIndex)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CallIndex indicates an expected call of CallIndex.
func (mr *MockCallIndexLookupMockRecorder) CallIndex(pallet, call any) *MockCallIndexLookupCallIndexCall {
	mr.mock.ctrl.T.Helper()
	c := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CallIndex", reflect.TypeOf((*MockCallIndexLookup)(nil).CallIndex), pallet, call)
	return &MockCallIndexLookupCallIndexCall{Call: c}
}

// MockCallIndexLookupCallIndexCall wrap *gomock.Call.
type MockCallIndexLookupCallIndexCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return.
func (c *MockCallIndexLookupCallIndexCall) Return(arg0 types.CallIndex, arg1 error) *MockCallIndexLookupCallIndexCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do.
func (c *MockCallIndexLookupCallIndexCall) Do(f func(string, string) (types.CallIndex, error)) *MockCallIndexLookupCallIndexCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn.
func (c *MockCallIndexLookupCallIndexCall) DoAndReturn(f func(string, string) (types.CallIndex, error)) *MockCallIndexLookupCallIndexCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
