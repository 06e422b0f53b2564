package importer

import (
	"io"

	"github.com/khawla-14/markyticket/internal/wallet"
)

type Source string

const (
	SourceTopUp Source = "topup"
)

type Importer interface {
	Parse(r io.Reader) ([]wallet.TopUp, error)
}
