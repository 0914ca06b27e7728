// Package adapters はsymbolextractフィーチャーの入力ソース実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/charmap"

	"schedule_backend/internal/feature/symbolextract/domain"
	"schedule_backend/internal/feature/symbolextract/usecase"
)

// Latin1File はISO-8859-1で保存されたローカルHTMLファイルを読み込むソースです。
type Latin1File struct {
	path string
}

var _ usecase.SourceReader = (*Latin1File)(nil)

// NewLatin1File は指定されたパスのLatin1Fileを生成します。
func NewLatin1File(path string) *Latin1File {
	return &Latin1File{path: path}
}

// Path は読み込み対象のファイルパスを返します。
func (f *Latin1File) Path() string {
	return f.path
}

// ReadText はファイル全体をメモリに読み込み、Latin-1からUTF-8にデコードして返します。
// ファイルは読み込み後すぐに閉じられます。
func (f *Latin1File) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, f.path)
		}
		return "", fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrSourceDecode, f.path, err)
	}
	return string(decoded), nil
}
