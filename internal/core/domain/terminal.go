package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TerminalModel is the hardware SKU of a payment terminal.
type TerminalModel string

const (
	ModelDesk5000 TerminalModel = "Ingenico Desk 5000"
	ModelMove5000 TerminalModel = "Ingenico Move 5000"
)

// Valid reports whether m is a supported model. The empty model is valid and
// means "not specified".
func (m TerminalModel) Valid() bool {
	switch m {
	case "", ModelDesk5000, ModelMove5000:
		return true
	}
	return false
}

const (
	MaxMerchantCards   = 8
	ServiceNameMaxLen  = 200
	ShopIDMaxLen       = 50
	shopIDPrefix       = "SHOP-"
	shopIDRandomDigits = 8
)

// Connection types accepted by the list filter.
const (
	ConnectionEthernet = "ethernet"
	Connection4G5G     = "4g5g"
)

// MerchantCard pairs a merchant card number with the serial number of the
// terminal it is bound to.
type MerchantCard struct {
	CardNumber     string `json:"numero" bson:"numero"`
	TerminalSerial string `json:"numero_serie_tpe" bson:"numero_serie_tpe"`
}

// Terminal is a payment terminal (TPE) record.
type Terminal struct {
	ID                 string
	ServiceName        string
	ShopID             string
	OperatorFirstName  string
	OperatorLastName   string
	OperatorPhone      string
	AlternateOperators string
	MerchantCards      []MerchantCard
	Model              TerminalModel
	UnitCount          int
	ConnectionEthernet bool
	Connection4G5G     bool
	NetworkIPAddress   string
	NetworkMask        string
	NetworkGateway     string
	BackofficeActive   bool
	BackofficeEmail    string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// TerminalPatch is a partial terminal update. Nil fields are left untouched.
type TerminalPatch struct {
	ServiceName        *string
	ShopID             *string
	OperatorFirstName  *string
	OperatorLastName   *string
	OperatorPhone      *string
	AlternateOperators *string
	MerchantCards      *[]MerchantCard
	Model              *TerminalModel
	UnitCount          *int
	ConnectionEthernet *bool
	Connection4G5G     *bool
	NetworkIPAddress   *string
	NetworkMask        *string
	NetworkGateway     *string
	BackofficeActive   *bool
	BackofficeEmail    *string
}

// Apply copies every present field of p onto t.
func (p TerminalPatch) Apply(t *Terminal) {
	setString(&t.ServiceName, p.ServiceName)
	setString(&t.ShopID, p.ShopID)
	setString(&t.OperatorFirstName, p.OperatorFirstName)
	setString(&t.OperatorLastName, p.OperatorLastName)
	setString(&t.OperatorPhone, p.OperatorPhone)
	setString(&t.AlternateOperators, p.AlternateOperators)
	if p.MerchantCards != nil {
		t.MerchantCards = append([]MerchantCard(nil), (*p.MerchantCards)...)
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.UnitCount != nil {
		t.UnitCount = *p.UnitCount
	}
	setBool(&t.ConnectionEthernet, p.ConnectionEthernet)
	setBool(&t.Connection4G5G, p.Connection4G5G)
	setString(&t.NetworkIPAddress, p.NetworkIPAddress)
	setString(&t.NetworkMask, p.NetworkMask)
	setString(&t.NetworkGateway, p.NetworkGateway)
	setBool(&t.BackofficeActive, p.BackofficeActive)
	setString(&t.BackofficeEmail, p.BackofficeEmail)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// GenerateShopID returns "SHOP-" followed by the first eight uppercase hex
// digits of a random 128-bit UUID.
func GenerateShopID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return shopIDPrefix + strings.ToUpper(hex[:shopIDRandomDigits])
}

// TerminalStats holds the dashboard counters. Each counter is an independent
// predicate over the whole inventory, so they do not have to add up to Total.
type TerminalStats struct {
	Total                 int64 `json:"total"`
	DeskCount             int64 `json:"desk_count"`
	MoveCount             int64 `json:"move_count"`
	EthernetCount         int64 `json:"ethernet_count"`
	MobileCount           int64 `json:"mobile_count"`
	BackofficeActiveCount int64 `json:"backoffice_active_count"`
}
