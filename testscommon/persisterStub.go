package testscommon

// PersisterStub -
type PersisterStub struct {
	PutCalled       func(key, val []byte) error
	GetCalled       func(key []byte) ([]byte, error)
	HasCalled       func(key []byte) error
	RemoveCalled    func(key []byte) error
	CloseCalled     func() error
	RangeKeysCalled func(handler func(key []byte, val []byte) bool)
}

// Put -
func (stub *PersisterStub) Put(key, val []byte) error {
	if stub.PutCalled != nil {
		return stub.PutCalled(key, val)
	}

	return nil
}

// Get -
func (stub *PersisterStub) Get(key []byte) ([]byte, error) {
	if stub.GetCalled != nil {
		return stub.GetCalled(key)
	}

	return nil, nil
}

// Has -
func (stub *PersisterStub) Has(key []byte) error {
	if stub.HasCalled != nil {
		return stub.HasCalled(key)
	}

	return nil
}

// Remove -
func (stub *PersisterStub) Remove(key []byte) error {
	if stub.RemoveCalled != nil {
		return stub.RemoveCalled(key)
	}

	return nil
}

// Close -
func (stub *PersisterStub) Close() error {
	if stub.CloseCalled != nil {
		return stub.CloseCalled()
	}

	return nil
}

// RangeKeys -
func (stub *PersisterStub) RangeKeys(handler func(key []byte, val []byte) bool) {
	if stub.RangeKeysCalled != nil {
		stub.RangeKeysCalled(handler)
	}
}

// IsInterfaceNil -
func (stub *PersisterStub) IsInterfaceNil() bool {
	return stub == nil
}
