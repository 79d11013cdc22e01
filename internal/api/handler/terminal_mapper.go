package handler

import (
	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

// --- request → service input ---

func toMerchantCards(in []merchantCardRequest) []domain.MerchantCard {
	cards := make([]domain.MerchantCard, len(in))
	for i, c := range in {
		cards[i] = domain.MerchantCard{CardNumber: c.CardNumber, TerminalSerial: c.TerminalSerial}
	}
	return cards
}

func toTerminalInput(req createTerminalRequest) (ports.TerminalInput, error) {
	units := 1
	if req.UnitCount != nil {
		if *req.UnitCount < 1 {
			return ports.TerminalInput{}, domain.ErrInvalidUnitCount
		}
		units = *req.UnitCount
	}

	return ports.TerminalInput{
		ServiceName:        req.ServiceName,
		ShopID:             req.ShopID,
		OperatorFirstName:  req.OperatorFirstName,
		OperatorLastName:   req.OperatorLastName,
		OperatorPhone:      req.OperatorPhone,
		AlternateOperators: req.AlternateOperators,
		MerchantCards:      toMerchantCards(req.MerchantCards),
		Model:              domain.TerminalModel(req.Model),
		UnitCount:          units,
		ConnectionEthernet: req.ConnectionEthernet,
		Connection4G5G:     req.Connection4G5G,
		NetworkIPAddress:   req.NetworkIPAddress,
		NetworkMask:        req.NetworkMask,
		NetworkGateway:     req.NetworkGateway,
		BackofficeActive:   req.BackofficeActive,
		BackofficeEmail:    req.BackofficeEmail,
	}, nil
}

func toTerminalPatch(req updateTerminalRequest) domain.TerminalPatch {
	patch := domain.TerminalPatch{
		ServiceName:        req.ServiceName,
		ShopID:             req.ShopID,
		OperatorFirstName:  req.OperatorFirstName,
		OperatorLastName:   req.OperatorLastName,
		OperatorPhone:      req.OperatorPhone,
		AlternateOperators: req.AlternateOperators,
		UnitCount:          req.UnitCount,
		ConnectionEthernet: req.ConnectionEthernet,
		Connection4G5G:     req.Connection4G5G,
		NetworkIPAddress:   req.NetworkIPAddress,
		NetworkMask:        req.NetworkMask,
		NetworkGateway:     req.NetworkGateway,
		BackofficeActive:   req.BackofficeActive,
		BackofficeEmail:    req.BackofficeEmail,
	}
	if req.MerchantCards != nil {
		cards := toMerchantCards(*req.MerchantCards)
		patch.MerchantCards = &cards
	}
	if req.Model != nil {
		m := domain.TerminalModel(*req.Model)
		patch.Model = &m
	}
	return patch
}

// --- domain → response ---

func toTerminalResponse(t *domain.Terminal) terminalResponse {
	cards := t.MerchantCards
	if cards == nil {
		cards = []domain.MerchantCard{}
	}
	return terminalResponse{
		ID:                 t.ID,
		ServiceName:        t.ServiceName,
		ShopID:             t.ShopID,
		OperatorFirstName:  nullable(t.OperatorFirstName),
		OperatorLastName:   nullable(t.OperatorLastName),
		OperatorPhone:      nullable(t.OperatorPhone),
		AlternateOperators: nullable(t.AlternateOperators),
		MerchantCards:      cards,
		Model:              nullable(string(t.Model)),
		UnitCount:          t.UnitCount,
		ConnectionEthernet: t.ConnectionEthernet,
		Connection4G5G:     t.Connection4G5G,
		NetworkIPAddress:   nullable(t.NetworkIPAddress),
		NetworkMask:        nullable(t.NetworkMask),
		NetworkGateway:     nullable(t.NetworkGateway),
		BackofficeActive:   t.BackofficeActive,
		BackofficeEmail:    nullable(t.BackofficeEmail),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func toListTerminalsResponse(res *ports.ListTerminalsResult) listTerminalsResponse {
	items := make([]terminalResponse, len(res.Items))
	for i, t := range res.Items {
		items[i] = toTerminalResponse(t)
	}
	return listTerminalsResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	}
}
