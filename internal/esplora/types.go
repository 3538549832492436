package esplora

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HTTPDoer sends a single HTTP request.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	// ClientMetrics records request outcomes and connectivity retries.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveRetry()
	}
)
