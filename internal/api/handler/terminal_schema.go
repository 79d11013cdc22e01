package handler

import (
	"time"

	"github.com/tpemanager/tpe-manager/internal/core/domain"
)

type merchantCardRequest struct {
	CardNumber     string `json:"numero"           validate:"required"`
	TerminalSerial string `json:"numero_serie_tpe" validate:"required"`
}

// createTerminalRequest is the POST /api/tpe body. Model, card count and
// shop id uniqueness are checked by the service.
type createTerminalRequest struct {
	ServiceName        string                `json:"service_name"        validate:"required,max=200"`
	ShopID             string                `json:"shop_id"             validate:"max=50"`
	OperatorFirstName  string                `json:"regisseur_prenom"    validate:"max=100"`
	OperatorLastName   string                `json:"regisseur_nom"       validate:"max=100"`
	OperatorPhone      string                `json:"regisseur_telephone" validate:"max=20"`
	AlternateOperators string                `json:"regisseurs_suppleants"`
	MerchantCards      []merchantCardRequest `json:"merchant_cards"      validate:"dive"`
	Model              string                `json:"tpe_model"`
	UnitCount          *int                  `json:"number_of_tpe"`
	ConnectionEthernet bool                  `json:"connection_ethernet"`
	Connection4G5G     bool                  `json:"connection_4g5g"`
	NetworkIPAddress   string                `json:"network_ip_address"`
	NetworkMask        string                `json:"network_mask"`
	NetworkGateway     string                `json:"network_gateway"`
	BackofficeActive   bool                  `json:"backoffice_active"`
	BackofficeEmail    string                `json:"backoffice_email"    validate:"omitempty,email"`
}

// updateTerminalRequest is the PUT /api/tpe/:id body. Absent fields are left
// unchanged.
type updateTerminalRequest struct {
	ServiceName        *string                `json:"service_name"        validate:"omitempty,max=200"`
	ShopID             *string                `json:"shop_id"             validate:"omitempty,max=50"`
	OperatorFirstName  *string                `json:"regisseur_prenom"    validate:"omitempty,max=100"`
	OperatorLastName   *string                `json:"regisseur_nom"       validate:"omitempty,max=100"`
	OperatorPhone      *string                `json:"regisseur_telephone" validate:"omitempty,max=20"`
	AlternateOperators *string                `json:"regisseurs_suppleants"`
	MerchantCards      *[]merchantCardRequest `json:"merchant_cards"      validate:"omitempty,dive"`
	Model              *string                `json:"tpe_model"`
	UnitCount          *int                   `json:"number_of_tpe"`
	ConnectionEthernet *bool                  `json:"connection_ethernet"`
	Connection4G5G     *bool                  `json:"connection_4g5g"`
	NetworkIPAddress   *string                `json:"network_ip_address"`
	NetworkMask        *string                `json:"network_mask"`
	NetworkGateway     *string                `json:"network_gateway"`
	BackofficeActive   *bool                  `json:"backoffice_active"`
	BackofficeEmail    *string                `json:"backoffice_email"    validate:"omitempty,email"`
}

type terminalResponse struct {
	ID                 string                `json:"id"`
	ServiceName        string                `json:"service_name"`
	ShopID             string                `json:"shop_id"`
	OperatorFirstName  *string               `json:"regisseur_prenom"`
	OperatorLastName   *string               `json:"regisseur_nom"`
	OperatorPhone      *string               `json:"regisseur_telephone"`
	AlternateOperators *string               `json:"regisseurs_suppleants"`
	MerchantCards      []domain.MerchantCard `json:"merchant_cards"`
	Model              *string               `json:"tpe_model"`
	UnitCount          int                   `json:"number_of_tpe"`
	ConnectionEthernet bool                  `json:"connection_ethernet"`
	Connection4G5G     bool                  `json:"connection_4g5g"`
	NetworkIPAddress   *string               `json:"network_ip_address"`
	NetworkMask        *string               `json:"network_mask"`
	NetworkGateway     *string               `json:"network_gateway"`
	BackofficeActive   bool                  `json:"backoffice_active"`
	BackofficeEmail    *string               `json:"backoffice_email"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          *time.Time            `json:"updated_at"`
}

type listTerminalsResponse struct {
	Items      []terminalResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
