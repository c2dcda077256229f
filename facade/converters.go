package facade

import (
	"strconv"

	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
)

func swapToAPI(record *htlc.EventHTLC, swapState htlc.HTLCStates) *api.SwapInfo {
	return &api.SwapInfo{
		SwapID:               common.EncodeHex(record.SwapID),
		State:                swapState.String(),
		ExternalContractAddr: common.EncodeHex(record.ExternalContractAddr),
		HTLCBlockNumber:      record.HTLCBlockNumber,
		EventBlockNumber:     record.EventBlockNumber,
		ExpireHeight:         record.ExpireHeight,
		SecretHash:           common.EncodeHex(record.SecretHash),
		HTLCTimestamp:        record.HTLCTimestamp,
		SenderAddr:           common.EncodeHex(record.SenderAddr),
		SenderChain:          record.SenderChain.String(),
		ReceiverAddr:         common.EncodeHex(record.ReceiverAddr),
		ReceiverChain:        record.ReceiverChain.String(),
		RecipientAddr:        common.EncodeHex(record.RecipientAddr),
		Amount:               record.GetAmount().String(),
	}
}

func logEntryToAPI(entry *htlc.LogEntry) *api.EventLogEntry {
	return &api.EventLogEntry{
		BlockHeight: entry.BlockHeight,
		TxHash:      common.EncodeHex(entry.TxHash),
		Identifier:  entry.Identifier,
		Fields:      eventFields(entry.Event),
	}
}

func eventFields(event htlc.Event) map[string]string {
	switch e := event.(type) {
	case *htlc.InitEvent:
		return map[string]string{
			"custody": common.EncodeHex(e.Custody),
			"name":    string(e.Name),
			"url":     string(e.URL),
		}
	case *htlc.KillEvent:
		return map[string]string{
			"name": string(e.Name),
			"url":  string(e.URL),
		}
	case *htlc.HTLCEvent:
		amount := "0"
		if e.Amount != nil {
			amount = e.Amount.String()
		}
		return map[string]string{
			"receiver":      common.EncodeHex(e.Receiver),
			"contract":      common.EncodeHex(e.Contract),
			"htlcBlock":     strconv.FormatUint(e.HTLCBlock, 10),
			"expireHeight":  strconv.FormatUint(e.ExpireHeight, 10),
			"secretHash":    common.EncodeHex(e.SecretHash),
			"swapID":        common.EncodeHex(e.SwapID),
			"sender":        common.EncodeHex(e.Sender),
			"amount":        amount,
			"htlcTimestamp": strconv.FormatUint(e.HTLCTimestamp, 10),
		}
	case *htlc.ClaimEvent:
		return map[string]string{
			"receiver": common.EncodeHex(e.Receiver),
			"contract": common.EncodeHex(e.Contract),
			"swapID":   common.EncodeHex(e.SwapID),
			"sender":   common.EncodeHex(e.Sender),
			"secret":   common.EncodeHex(e.Secret),
		}
	case *htlc.RefundEvent:
		return map[string]string{
			"receiver":   common.EncodeHex(e.Receiver),
			"contract":   common.EncodeHex(e.Contract),
			"swapID":     common.EncodeHex(e.SwapID),
			"sender":     common.EncodeHex(e.Sender),
			"secretHash": common.EncodeHex(e.SecretHash),
		}
	default:
		return map[string]string{}
	}
}
