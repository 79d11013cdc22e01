package service

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeaders = []string{
	"ID", "Service Name", "ShopID", "Régisseur Prénom", "Régisseur Nom",
	"Régisseur Téléphone", "Régisseurs Suppléants", "Cartes Commerçants",
	"Modèle TPE", "Nombre de TPE", "Connexion Ethernet", "Connexion 4G/5G",
	"IP Address", "Mask", "Gateway", "Backoffice Actif",
	"Backoffice Email", "Date de création",
}

// ReportService flattens terminals for the spreadsheet export. It keeps no
// state between exports.
type ReportService struct {
	repo ports.TerminalRepository
}

func NewReportService(repo ports.TerminalRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) ExportHeaders() []string {
	return append([]string(nil), exportHeaders...)
}

// ExportRows yields one row per terminal in creation order.
func (s *ReportService) ExportRows(ctx context.Context) iter.Seq2[ports.ExportRow, error] {
	return func(yield func(ports.ExportRow, error) bool) {
		for t, err := range s.repo.Iterate(ctx) {
			if err != nil {
				yield(nil, fmt.Errorf("export terminals: %w", err))
				return
			}
			if !yield(exportRow(t), nil) {
				return
			}
		}
	}
}

func exportRow(t *domain.Terminal) ports.ExportRow {
	created := ""
	if !t.CreatedAt.IsZero() {
		created = t.CreatedAt.Format(exportTimeLayout)
	}
	return ports.ExportRow{
		t.ID,
		t.ServiceName,
		t.ShopID,
		t.OperatorFirstName,
		t.OperatorLastName,
		t.OperatorPhone,
		t.AlternateOperators,
		formatMerchantCards(t.MerchantCards),
		string(t.Model),
		t.UnitCount,
		yesNo(t.ConnectionEthernet),
		yesNo(t.Connection4G5G),
		t.NetworkIPAddress,
		t.NetworkMask,
		t.NetworkGateway,
		yesNo(t.BackofficeActive),
		t.BackofficeEmail,
		created,
	}
}

// formatMerchantCards renders cards as "number (serial); number (serial)".
func formatMerchantCards(cards []domain.MerchantCard) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%s (%s)", c.CardNumber, c.TerminalSerial)
	}
	return strings.Join(parts, "; ")
}

func yesNo(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}
