package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	PATH_STUDENT_DETAILS  = "/student-detsils-results"
	PATH_SUBJECTS_LIST    = "/student-results-subjects-list"
	PATH_RESULTS_LIST     = "/student-results-list"
	PATH_RESULTS_SGPA     = "/student-results-sgpa"
	CONTENT_TYPE_FORM_URL = "application/x-www-form-urlencoded"
)

// BputClient fala com o portal de resultados. Um único cliente é compartilhado entre requisições.
type BputClient struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewBputClient(cfg Config, logger *zap.Logger) *BputClient {
	client := resty.New()
	client.SetBaseURL(cfg.UpstreamBaseURL)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetLogger(logger.Sugar())
	if cfg.HTTPTimeout > 0 {
		client.SetTimeout(cfg.HTTPTimeout)
	}
	return &BputClient{http: client, logger: logger}
}

// Call faz uma chamada form-encoded ao portal e decodifica o JSON da resposta.
// Qualquer falha volta como *UpstreamError; não há retentativas.
func (b *BputClient) Call(ctx context.Context, path string, params url.Values, method string) (Payload, error) {
	req := b.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", CONTENT_TYPE_FORM_URL)

	switch method {
	case http.MethodPost:
		req.SetFormDataFromValues(params)
	case http.MethodGet:
		req.SetQueryParamsFromValues(params)
	default:
		return Payload{}, &UpstreamError{URL: path, Err: fmt.Errorf("unsupported method: %s", method)}
	}

	res, err := b.execute(req, method, path)
	if err != nil {
		return Payload{}, err
	}

	payload, err := decodePayload(res.Body())
	if err != nil {
		return Payload{}, &UpstreamError{URL: path, StatusCode: res.StatusCode(), Err: err}
	}
	return payload, nil
}

// FetchPage baixa uma página externa (template da home, página inicial do portal).
func (b *BputClient) FetchPage(ctx context.Context, pageURL string) (string, error) {
	res, err := b.execute(b.http.R().SetContext(ctx), http.MethodGet, pageURL)
	if err != nil {
		return "", err
	}
	return string(res.Body()), nil
}

func (b *BputClient) execute(req *resty.Request, method, target string) (*resty.Response, error) {
	start := time.Now()
	res, err := req.Execute(method, target)
	if err != nil {
		b.logger.Warn("falha na requisição ao portal",
			zap.String("method", method),
			zap.String("url", target),
			zap.Error(err),
		)
		return nil, &UpstreamError{URL: target, Err: err}
	}

	b.logger.Debug("resposta do portal",
		zap.String("method", method),
		zap.String("url", res.Request.URL),
		zap.Int("status", res.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)

	if !res.IsSuccess() {
		return nil, &UpstreamError{
			URL:        target,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status code %d for %s", res.StatusCode(), target),
		}
	}
	return res, nil
}
