package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"progress-tracker/internal/constants"
	"progress-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// SourceClient fetches the record collection from a remote URL.
type SourceClient struct {
	client *fasthttp.Client
}

func NewSourceClient() *SourceClient {
	return &SourceClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.SourceMaxConnsPerHost,
			ReadTimeout:         constants.SourceFetchTimeout,
			WriteTimeout:        constants.SourceFetchTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: constants.SourceMaxResponseBytes,
		},
	}
}

func (c *SourceClient) FetchRecords(ctx context.Context, url string) ([]domain.Record, error) {
	records, err := doRequest[[]domain.Record](ctx, c, url)
	if err != nil {
		return nil, err
	}
	return *records, nil
}

func doRequest[T any](ctx context.Context, client *SourceClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("source error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	return &result, nil
}
