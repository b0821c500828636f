package nets

import (
	"net/http"
	"time"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

// FetchTimeout bounds a whole program download, in seconds.
type FetchTimeout int

var _ configs.Configurable = FetchTimeout(0)

func (FetchTimeout) ConfigExpr() string {
	return "fetch_timeout"
}

var fetchTimeoutFlag = cmds.Var[int]("-fetch-timeout")

func (Module) FetchTimeout(
	loader configs.Loader,
) FetchTimeout {
	return FetchTimeout(vars.FirstNonZero(
		*fetchTimeoutFlag,
		configs.First[int](loader, "fetch_timeout"),
		30,
	))
}

const userAgent = "intcode (+https://github.com/reusee/intcode)"

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	timeout FetchTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
		Transport: userAgentTransport{
			RoundTripper: &http.Transport{
				DialContext: dialer.DialContext,
			},
		},
	}
}

type userAgentTransport struct {
	http.RoundTripper
}

func (u userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", userAgent)
	}
	return u.RoundTripper.RoundTrip(req)
}
