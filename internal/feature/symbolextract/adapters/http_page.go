package adapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/text/encoding/charmap"

	"schedule_backend/internal/feature/symbolextract/domain"
	"schedule_backend/internal/feature/symbolextract/usecase"
)

// maxPageBytes はダウンロードするページの上限サイズです。
const maxPageBytes = 8 << 20

// HTTPPage は公開されている時刻表ページ（ISO-8859-1）をHTTPで取得するソースです。
type HTTPPage struct {
	url    string
	client *http.Client
}

var _ usecase.SourceReader = (*HTTPPage)(nil)

// NewHTTPPage は指定されたURLとHTTPクライアントでHTTPPageを生成します。
func NewHTTPPage(url string, client *http.Client) *HTTPPage {
	return &HTTPPage{url: url, client: client}
}

// ReadText はページを取得し、Latin-1からUTF-8にデコードして返します。
// 404は domain.ErrSourceNotFound として扱います。
func (p *HTTPPage) ReadText(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", p.url, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, p.url)
	}
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("schedule page http %d: %s", res.StatusCode, p.url)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxPageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p.url, err)
	}
	if len(raw) > maxPageBytes {
		return "", fmt.Errorf("schedule page exceeds %d bytes: %s", maxPageBytes, p.url)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrSourceDecode, p.url, err)
	}
	slog.Info("schedule page fetched", "url", p.url, "bytes", len(raw))
	return string(decoded), nil
}
