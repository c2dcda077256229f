package offchain

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
)

var log = logger.GetOrCreate("offchain")

// RequestHeader is an optional header added to every indexer request
type RequestHeader struct {
	Name  string
	Value string
}

// ArgsHTTPFetcher is the DTO used to create a new http fetcher
type ArgsHTTPFetcher struct {
	Client    *http.Client
	ChunkSize int
}

type httpFetcher struct {
	client    *http.Client
	chunkSize int
}

// NewHTTPFetcher creates the component issuing the indexer GET requests
func NewHTTPFetcher(args ArgsHTTPFetcher) (*httpFetcher, error) {
	if args.ChunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, args.ChunkSize)
	}

	client := args.Client
	if client == nil {
		client = http.DefaultClient
	}

	return &httpFetcher{
		client:    client,
		chunkSize: args.ChunkSize,
	}, nil
}

// Fetch issues a GET request towards the provided url and returns the response body. The whole
// request, body reading included, must finish within common.FetchTimeout from the call start
func (hf *httpFetcher) Fetch(ctx context.Context, url string, header *RequestHeader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, common.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create indexer request")
	}
	if header != nil && len(header.Name) > 0 {
		req.Header.Set(header.Name, header.Value)
	}

	resp, err := hf.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer func() {
		errClose := resp.Body.Close()
		log.LogIfError(errClose)
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status code %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := hf.readBody(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmptyResponseBody
	}

	return body, nil
}

// readBody reads the response in fixed size chunks until the end of the stream or an empty read
func (hf *httpFetcher) readBody(reader io.Reader) ([]byte, error) {
	body := make([]byte, 0, hf.chunkSize)
	chunk := make([]byte, hf.chunkSize)
	for {
		n, err := reader.Read(chunk)
		body = append(body, chunk[:n]...)
		if err == io.EOF || (n == 0 && err == nil) {
			return body, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read indexer response: %v", ErrRequestFailed, err)
		}
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (hf *httpFetcher) IsInterfaceNil() bool {
	return hf == nil
}
