package inputs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/intcode/icvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/nets"
)

var ErrEmptyProgram = errors.New("empty program")

type LoadProgram func(ctx context.Context, source Source) ([]int, error)

func (Module) LoadProgram(
	client nets.HTTPClient,
	session Session,
	stdin Stdin,
	logger logs.Logger,
) LoadProgram {
	return func(ctx context.Context, source Source) (program []int, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("load program from %s: %w", source, err)
			}
		}()

		var content []byte
		switch {

		case source == "-":
			content, err = io.ReadAll(stdin)

		case strings.HasPrefix(string(source), "http://"),
			strings.HasPrefix(string(source), "https://"):
			content, err = fetch(ctx, client, string(source), session)

		default:
			content, err = os.ReadFile(string(source))

		}
		if err != nil {
			return nil, err
		}

		program, err = icvm.ParseProgram(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		if len(program) == 0 {
			return nil, ErrEmptyProgram
		}

		logger.DebugContext(ctx, "program loaded",
			"source", source,
			"size", len(program),
		)
		return program, nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string, session Session) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if session != "" {
		req.AddCookie(&http.Cookie{
			Name:  "session",
			Value: string(session),
		})
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
