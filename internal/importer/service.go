package importer

import (
	"fmt"
	"io"

	"github.com/khawla-14/markyticket/internal/importer/topup"
	"github.com/khawla-14/markyticket/internal/wallet"
)

type Service struct {
	topUpImporter Importer
}

func NewService() *Service {
	return &Service{
		topUpImporter: topup.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]wallet.TopUp, error) {
	var importer Importer

	switch source {
	case SourceTopUp:
		importer = s.topUpImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", source)
	}

	return importer.Parse(r)
}
