package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShopID(t *testing.T) {
	pattern := regexp.MustCompile(`^SHOP-[0-9A-F]{8}$`)
	seen := make(map[string]struct{}, 500)
	for range 500 {
		id := GenerateShopID()
		require.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 495, "generated ids should practically never repeat")
}

func TestTerminalModel_Valid(t *testing.T) {
	assert.True(t, ModelDesk5000.Valid())
	assert.True(t, ModelMove5000.Valid())
	assert.True(t, TerminalModel("").Valid())
	assert.False(t, TerminalModel("Ingenico Lane 3000").Valid())
	assert.False(t, TerminalModel("ingenico desk 5000").Valid())
}

func TestTerminalPatch_Apply(t *testing.T) {
	name := "Bibliothèque"
	model := ModelMove5000
	units := 3
	off := false
	cards := []MerchantCard{{CardNumber: "123", TerminalSerial: "SN1"}}

	term := &Terminal{
		ServiceName:        "Piscine",
		ShopID:             "SHOP-1",
		OperatorPhone:      "0102030405",
		Model:              ModelDesk5000,
		UnitCount:          1,
		ConnectionEthernet: true,
	}
	TerminalPatch{
		ServiceName:        &name,
		MerchantCards:      &cards,
		Model:              &model,
		UnitCount:          &units,
		ConnectionEthernet: &off,
	}.Apply(term)

	assert.Equal(t, "Bibliothèque", term.ServiceName)
	assert.Equal(t, "SHOP-1", term.ShopID)
	assert.Equal(t, "0102030405", term.OperatorPhone)
	assert.Equal(t, ModelMove5000, term.Model)
	assert.Equal(t, 3, term.UnitCount)
	assert.False(t, term.ConnectionEthernet)
	assert.Equal(t, cards, term.MerchantCards)

	cards[0].CardNumber = "changed"
	assert.Equal(t, "123", term.MerchantCards[0].CardNumber, "Apply must copy the card slice")
}

func TestTerminalPatch_ApplyEmptyCards(t *testing.T) {
	empty := []MerchantCard{}
	term := &Terminal{MerchantCards: []MerchantCard{{CardNumber: "1", TerminalSerial: "A"}}}

	TerminalPatch{MerchantCards: &empty}.Apply(term)

	assert.Empty(t, term.MerchantCards)
}
