package state

import (
	"bytes"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/storage"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("state")

var (
	custodyAccountKey = []byte("custodyAccount")
	sourcesKey        = []byte("sources")
	authoritiesKey    = []byte("authorities")
)

// ArgsOracleState holds the arguments needed to create a new oracle state
type ArgsOracleState struct {
	SwapDataPersister    storage.Persister
	SwapStatesPersister  storage.Persister
	OracleStatePersister storage.Persister
	Marshaller           marshal.Marshalizer
}

// oracleState holds the bridge swap stores together with the oracle configuration
// (custody account, configured sources and authorities). All writes stay dirty until Commit
type oracleState struct {
	swapData   *trackableStorer
	swapStates *trackableStorer
	oracle     *trackableStorer
	marshaller marshal.Marshalizer
}

// NewOracleState creates a new oracle state instance
func NewOracleState(args ArgsOracleState) (*oracleState, error) {
	if check.IfNil(args.Marshaller) {
		return nil, common.ErrNilMarshalizer
	}

	swapData, err := newTrackableStorer("swapData", args.SwapDataPersister)
	if err != nil {
		return nil, fmt.Errorf("%w for swap data", err)
	}
	swapStates, err := newTrackableStorer("swapStates", args.SwapStatesPersister)
	if err != nil {
		return nil, fmt.Errorf("%w for swap states", err)
	}
	oracle, err := newTrackableStorer("oracle", args.OracleStatePersister)
	if err != nil {
		return nil, fmt.Errorf("%w for oracle state", err)
	}

	return &oracleState{
		swapData:   swapData,
		swapStates: swapStates,
		oracle:     oracle,
		marshaller: args.Marshaller,
	}, nil
}

// GetSwapData returns the record stored for the provided swap id
func (st *oracleState) GetSwapData(swapID []byte) (*htlc.EventHTLC, error) {
	buff, found := st.swapData.get(swapID)
	if !found {
		return nil, ErrSwapNotFound
	}

	record := &htlc.EventHTLC{}
	err := st.marshaller.Unmarshal(record, buff)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// HasSwapData returns true if a record is stored for the provided swap id
func (st *oracleState) HasSwapData(swapID []byte) bool {
	return st.swapData.has(swapID)
}

// PutSwapData stores the record under its swap id
func (st *oracleState) PutSwapData(record *htlc.EventHTLC) error {
	if record == nil {
		return ErrNilSwapRecord
	}
	if len(record.SwapID) == 0 {
		return ErrEmptySwapID
	}

	buff, err := st.marshaller.Marshal(record)
	if err != nil {
		return err
	}

	st.swapData.put(record.SwapID, buff)
	return nil
}

// RemoveSwapData removes the record stored for the provided swap id
func (st *oracleState) RemoveSwapData(swapID []byte) {
	st.swapData.remove(swapID)
}

// GetSwapState returns the lifecycle state stored for the provided swap id
func (st *oracleState) GetSwapState(swapID []byte) (htlc.HTLCStates, bool) {
	buff, found := st.swapStates.get(swapID)
	if !found || len(buff) != 1 {
		return htlc.StateInvalid, false
	}

	return htlc.HTLCStates(buff[0]), true
}

// HasSwapState returns true if a lifecycle state is stored for the provided swap id
func (st *oracleState) HasSwapState(swapID []byte) bool {
	return st.swapStates.has(swapID)
}

// PutSwapState stores the lifecycle state of the provided swap id
func (st *oracleState) PutSwapState(swapID []byte, state htlc.HTLCStates) error {
	if len(swapID) == 0 {
		return ErrEmptySwapID
	}

	st.swapStates.put(swapID, []byte{byte(state)})
	return nil
}

// RemoveSwapState removes the lifecycle state of the provided swap id
func (st *oracleState) RemoveSwapState(swapID []byte) {
	st.swapStates.remove(swapID)
}

// IsSwapExist returns true if the swap has a valid lifecycle state
func (st *oracleState) IsSwapExist(swapID []byte) bool {
	state, found := st.GetSwapState(swapID)
	return found && state != htlc.StateInvalid
}

// IsClaimable returns true if the swap is open and did not reach its expire height
func (st *oracleState) IsClaimable(swapID []byte, currentHeight uint64) bool {
	state, found := st.GetSwapState(swapID)
	if !found || state != htlc.StateOpen {
		return false
	}

	record, err := st.GetSwapData(swapID)
	if err != nil {
		return false
	}

	if currentHeight < record.HTLCBlockNumber {
		return true
	}

	return currentHeight-record.HTLCBlockNumber < record.ExpireHeight
}

// Sources returns the configured event log sources
func (st *oracleState) Sources() ([]*htlc.EventLogSource, error) {
	buff, found := st.oracle.get(sourcesKey)
	if !found {
		return make([]*htlc.EventLogSource, 0), nil
	}

	sources := make([]*htlc.EventLogSource, 0)
	err := st.marshaller.Unmarshal(&sources, buff)
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// SetSources replaces the configured event log sources
func (st *oracleState) SetSources(sources []*htlc.EventLogSource) error {
	buff, err := st.marshaller.Marshal(sources)
	if err != nil {
		return err
	}

	st.oracle.put(sourcesKey, buff)
	return nil
}

// ClearSources removes all the configured sources, returning them
func (st *oracleState) ClearSources() ([]*htlc.EventLogSource, error) {
	sources, err := st.Sources()
	if err != nil {
		return nil, err
	}

	st.oracle.remove(sourcesKey)
	return sources, nil
}

// CustodyAccount returns the bridge custody account, if set
func (st *oracleState) CustodyAccount() ([]byte, bool) {
	return st.oracle.get(custodyAccountKey)
}

// SetCustodyAccount records the bridge custody account
func (st *oracleState) SetCustodyAccount(account []byte) error {
	if len(account) != common.AccountIDLength {
		return fmt.Errorf("%w for custody account", common.ErrInvalidAccountLength)
	}

	st.oracle.put(custodyAccountKey, account)
	return nil
}

// Authorities returns the accounts allowed to act as oracle authorities
func (st *oracleState) Authorities() ([][]byte, error) {
	buff, found := st.oracle.get(authoritiesKey)
	if !found {
		return make([][]byte, 0), nil
	}

	authorities := make([][]byte, 0)
	err := st.marshaller.Unmarshal(&authorities, buff)
	if err != nil {
		return nil, err
	}

	return authorities, nil
}

// AddAuthority adds the account to the authorities set. Returns false if it was already present
func (st *oracleState) AddAuthority(account []byte) (bool, error) {
	if len(account) != common.AccountIDLength {
		return false, fmt.Errorf("%w for authority", common.ErrInvalidAccountLength)
	}

	authorities, err := st.Authorities()
	if err != nil {
		return false, err
	}
	if containsAccount(authorities, account) {
		return false, nil
	}

	buff, err := st.marshaller.Marshal(append(authorities, account))
	if err != nil {
		return false, err
	}

	st.oracle.put(authoritiesKey, buff)
	return true, nil
}

// IsAuthority returns true if the account belongs to the authorities set
func (st *oracleState) IsAuthority(account []byte) bool {
	authorities, err := st.Authorities()
	if err != nil {
		log.Debug("oracleState.IsAuthority", "error", err)
		return false
	}

	return containsAccount(authorities, account)
}

// Commit writes all the pending modifications
func (st *oracleState) Commit() error {
	for _, storer := range []*trackableStorer{st.swapData, st.swapStates, st.oracle} {
		err := storer.commit()
		if err != nil {
			return fmt.Errorf("%w while committing %s", err, storer.identifier)
		}
	}

	return nil
}

// Revert drops all the pending modifications
func (st *oracleState) Revert() {
	st.swapData.revert()
	st.swapStates.revert()
	st.oracle.revert()
}

// Close closes the underlying persisters
func (st *oracleState) Close() error {
	var lastErr error
	for _, storer := range []*trackableStorer{st.swapData, st.swapStates, st.oracle} {
		err := storer.close()
		if err != nil {
			log.Warn("cannot close storer", "storer", storer.identifier, "error", err)
			lastErr = err
		}
	}

	return lastErr
}

// IsInterfaceNil returns true if there is no value under the interface
func (st *oracleState) IsInterfaceNil() bool {
	return st == nil
}

func containsAccount(accounts [][]byte, account []byte) bool {
	for _, acc := range accounts {
		if bytes.Equal(acc, account) {
			return true
		}
	}

	return false
}
