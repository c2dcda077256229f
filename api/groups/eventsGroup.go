package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/errors"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
)

const (
	recentEventsPath = "/recent"
	eventsStreamPath = "/ws"
	limitParam       = "limit"

	subscriptionBufferSize = 100
)

// eventsFacadeHandler defines the methods to be implemented by a facade for events requests
type eventsFacadeHandler interface {
	GetRecentEvents(maxEntries int) []*api.EventLogEntry
	SubscribeEvents(bufferSize int) (uint64, <-chan *api.EventLogEntry)
	UnsubscribeEvents(id uint64)
	IsInterfaceNil() bool
}

type eventsGroup struct {
	*baseGroup
	facade   eventsFacadeHandler
	upgrader websocket.Upgrader
}

// NewEventsGroup returns a new instance of eventsGroup
func NewEventsGroup(facade eventsFacadeHandler) (*eventsGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for events group", errors.ErrNilFacadeHandler)
	}

	eg := &eventsGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	eg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    recentEventsPath,
			Method:  http.MethodGet,
			Handler: eg.getRecentEvents,
		},
		{
			Path:    eventsStreamPath,
			Method:  http.MethodGet,
			Handler: eg.streamEvents,
		},
	}

	return eg, nil
}

func (eg *eventsGroup) getRecentEvents(c *gin.Context) {
	limit, err := parseUint32UrlParam(c, limitParam)
	if err != nil {
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", errors.ErrValidation.Error(), errors.ErrInvalidQueryParameter.Error()))
		return
	}

	events := eg.facade.GetRecentEvents(int(limit.Value))
	shared.RespondWith(c, http.StatusOK, gin.H{"events": events}, "", shared.ReturnCodeSuccess)
}

// streamEvents upgrades the connection to a websocket and pushes every committed event as a JSON message
func (eg *eventsGroup) streamEvents(c *gin.Context) {
	conn, err := eg.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug("cannot upgrade events stream connection", "error", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	id, chEntries := eg.facade.SubscribeEvents(subscriptionBufferSize)
	defer eg.facade.UnsubscribeEvents(id)
	log.Debug("events stream opened", "subscription", id, "remote", conn.RemoteAddr().String())

	chClosed := make(chan struct{})
	go func() {
		defer close(chClosed)

		for {
			_, _, errRead := conn.ReadMessage()
			if errRead != nil {
				return
			}
		}
	}()

	for {
		select {
		case entry, ok := <-chEntries:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			err = conn.WriteJSON(entry)
			if err != nil {
				log.Debug("events stream write failed", "subscription", id, "error", err)
				return
			}
		case <-chClosed:
			log.Debug("events stream closed by peer", "subscription", id)
			return
		}
	}
}
