package oracle

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
)

// ArgsAdminHandler is the DTO used to create a new admin handler
type ArgsAdminHandler struct {
	State  OracleStateHandler
	Events EventsHandler
}

type adminHandler struct {
	state  OracleStateHandler
	events EventsHandler
}

// NewAdminHandler creates the component applying the privileged configuration calls
func NewAdminHandler(args ArgsAdminHandler) (*adminHandler, error) {
	if check.IfNil(args.State) {
		return nil, ErrNilOracleState
	}
	if check.IfNil(args.Events) {
		return nil, ErrNilEventsHandler
	}

	return &adminHandler{
		state:  args.State,
		events: args.Events,
	}, nil
}

// KickoffFetch records the custody account and replaces the configured sources with a single entry
func (ah *adminHandler) KickoffFetch(custodyAccount []byte, sourceName []byte, sourceURL []byte) error {
	if len(sourceURL) == 0 {
		return ErrEmptySourceURL
	}

	err := ah.state.SetCustodyAccount(custodyAccount)
	if err != nil {
		return err
	}

	err = ah.state.SetSources([]*htlc.EventLogSource{
		{
			Name: sourceName,
			URL:  sourceURL,
		},
	})
	if err != nil {
		return err
	}

	log.Info("oracle fetch job configured", "name", string(sourceName), "url", string(sourceURL))

	return ah.events.Emit(&htlc.InitEvent{
		Custody: custodyAccount,
		Name:    sourceName,
		URL:     sourceURL,
	})
}

// KillFetch clears the configured sources, emitting one Kill event for each removed entry
func (ah *adminHandler) KillFetch() error {
	removed, err := ah.state.ClearSources()
	if err != nil {
		return err
	}

	for _, source := range removed {
		log.Info("oracle fetch job removed", "name", string(source.Name), "url", string(source.URL))

		err = ah.events.Emit(&htlc.KillEvent{
			Name: source.Name,
			URL:  source.URL,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// AddAuthority adds the account to the authorities set, doing nothing if it is already there
func (ah *adminHandler) AddAuthority(account []byte) error {
	added, err := ah.state.AddAuthority(account)
	if err != nil {
		return err
	}
	if !added {
		log.Debug("account is already an oracle authority", "account", account)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ah *adminHandler) IsInterfaceNil() bool {
	return ah == nil
}
