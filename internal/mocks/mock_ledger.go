// Package mocks holds a hand-authored gomock mock of the Ledger
// collaborator interface (internal/ledger.Ledger), in the shape
// mockgen would emit for it, for module tests that need to assert
// exact call sequences rather than just final state — e.g. farming's
// mint-then-credit order on claim.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	types "github.com/dexcore/ledger/internal/types"
)

// MockLedger is a mock of the ledger.Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// FreeBalance mocks base method.
func (m *MockLedger) FreeBalance(symbol types.FixedString, who types.Account) (types.Balance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FreeBalance", symbol, who)
	ret0, _ := ret[0].(types.Balance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FreeBalance indicates an expected call of FreeBalance.
func (mr *MockLedgerMockRecorder) FreeBalance(symbol, who interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FreeBalance",
		reflect.TypeOf((*MockLedger)(nil).FreeBalance), symbol, who)
}

// TotalBalance mocks base method.
func (m *MockLedger) TotalBalance(symbol types.FixedString, who types.Account) (types.Balance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TotalBalance", symbol, who)
	ret0, _ := ret[0].(types.Balance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TotalBalance indicates an expected call of TotalBalance.
func (mr *MockLedgerMockRecorder) TotalBalance(symbol, who interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TotalBalance",
		reflect.TypeOf((*MockLedger)(nil).TotalBalance), symbol, who)
}

// TotalIssuance mocks base method.
func (m *MockLedger) TotalIssuance(symbol types.FixedString) (types.Balance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TotalIssuance", symbol)
	ret0, _ := ret[0].(types.Balance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TotalIssuance indicates an expected call of TotalIssuance.
func (mr *MockLedgerMockRecorder) TotalIssuance(symbol interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TotalIssuance",
		reflect.TypeOf((*MockLedger)(nil).TotalIssuance), symbol)
}

// Deposit mocks base method.
func (m *MockLedger) Deposit(symbol types.FixedString, who types.Account, amount types.Balance) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Deposit", symbol, who, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Deposit indicates an expected call of Deposit.
func (mr *MockLedgerMockRecorder) Deposit(symbol, who, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deposit",
		reflect.TypeOf((*MockLedger)(nil).Deposit), symbol, who, amount)
}

// Withdraw mocks base method.
func (m *MockLedger) Withdraw(symbol types.FixedString, who types.Account, amount types.Balance) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Withdraw", symbol, who, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Withdraw indicates an expected call of Withdraw.
func (mr *MockLedgerMockRecorder) Withdraw(symbol, who, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Withdraw",
		reflect.TypeOf((*MockLedger)(nil).Withdraw), symbol, who, amount)
}

// Transfer mocks base method.
func (m *MockLedger) Transfer(symbol types.FixedString, from, to types.Account, amount types.Balance) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", symbol, from, to, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transfer indicates an expected call of Transfer.
func (mr *MockLedgerMockRecorder) Transfer(symbol, from, to, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer",
		reflect.TypeOf((*MockLedger)(nil).Transfer), symbol, from, to, amount)
}

// EnsureCanWithdraw mocks base method.
func (m *MockLedger) EnsureCanWithdraw(symbol types.FixedString, who types.Account, amount types.Balance) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureCanWithdraw", symbol, who, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnsureCanWithdraw indicates an expected call of EnsureCanWithdraw.
func (mr *MockLedgerMockRecorder) EnsureCanWithdraw(symbol, who, amount interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureCanWithdraw",
		reflect.TypeOf((*MockLedger)(nil).EnsureCanWithdraw), symbol, who, amount)
}

// UpdateBalance mocks base method.
func (m *MockLedger) UpdateBalance(symbol types.FixedString, who types.Account, delta types.Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBalance", symbol, who, delta)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateBalance indicates an expected call of UpdateBalance.
func (mr *MockLedgerMockRecorder) UpdateBalance(symbol, who, delta interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBalance",
		reflect.TypeOf((*MockLedger)(nil).UpdateBalance), symbol, who, delta)
}
