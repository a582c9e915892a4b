package testament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testatorAddr    = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	beneficiaryAddr = "0x1111111111111111111111111111111111111111"
	tokenAddr       = "0x2222222222222222222222222222222222222222"
)

func testEstate() *Estate {
	return &Estate{
		Testator: testatorAddr,
		Beneficiaries: []Beneficiary{
			{Address: beneficiaryAddr, Share: 6000},
			{Address: "0x3333333333333333333333333333333333333333", Share: 4000},
		},
		Assets: []Asset{
			{Kind: "erc20", Token: tokenAddr, Amount: "1000000"},
			{Kind: "document", Description: "deed to the family house"},
		},
		Metadata: map[string]string{"jurisdiction": "TW", "version": "1"},
	}
}

func TestEstateMarshalCanonical(t *testing.T) {
	e := &Estate{
		Testator:      testatorAddr,
		Beneficiaries: []Beneficiary{{Address: beneficiaryAddr, Share: 10000}},
		Assets:        []Asset{{Kind: "document"}},
		Metadata:      map[string]string{"b": "2", "a": "1"},
	}

	data, err := e.Marshal()
	require.NoError(t, err)

	// Fields in declaration order, map keys sorted.
	assert.Equal(t,
		`{"testator":"0x7e5f4552091a69125d5dfcb7b8c2659029395bdf",`+
			`"beneficiaries":[{"address":"0x1111111111111111111111111111111111111111","share":10000}],`+
			`"assets":[{"kind":"document"}],`+
			`"metadata":{"a":"1","b":"2"}}`,
		string(data))

	again, err := e.Marshal()
	require.NoError(t, err)
	assert.Equal(t, data, again, "canonical form is deterministic")
}

func TestEstateRoundTrip(t *testing.T) {
	e := testEstate()

	data, err := e.Marshal()
	require.NoError(t, err)

	parsed, err := ParseEstate(data)
	require.NoError(t, err)
	assert.Equal(t, e, parsed)
}

func TestParseEstateMalformed(t *testing.T) {
	_, err := ParseEstate([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidEstate)
}

func TestEstateValidate(t *testing.T) {
	require.NoError(t, testEstate().Validate())
}

func TestEstateValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Estate)
		want   error
	}{
		{"bad testator", func(e *Estate) { e.Testator = "not-an-address" }, ErrInvalidEstate},
		{"no beneficiaries", func(e *Estate) { e.Beneficiaries = nil }, ErrInvalidEstate},
		{"bad beneficiary address", func(e *Estate) { e.Beneficiaries[0].Address = "0x123" }, ErrInvalidEstate},
		{"zero share", func(e *Estate) { e.Beneficiaries[0].Share = 0 }, ErrInvalidEstate},
		{"shares under scale", func(e *Estate) { e.Beneficiaries[1].Share = 3000 }, ErrInvalidShares},
		{"shares over scale", func(e *Estate) { e.Beneficiaries[1].Share = 5000 }, ErrInvalidShares},
		{"asset without kind", func(e *Estate) { e.Assets[0].Kind = "" }, ErrInvalidEstate},
		{"bad token address", func(e *Estate) { e.Assets[0].Token = "0xzz" }, ErrInvalidEstate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEstate()
			tt.mutate(e)
			assert.ErrorIs(t, e.Validate(), tt.want)
		})
	}
}

func TestEstateValidateNil(t *testing.T) {
	var e *Estate
	assert.ErrorIs(t, e.Validate(), ErrInvalidEstate)

	_, err := e.Marshal()
	assert.ErrorIs(t, err, ErrInvalidEstate)
}

func TestTestatorAddress(t *testing.T) {
	addr, err := testEstate().TestatorAddress()
	require.NoError(t, err)
	assert.Equal(t, testatorAddr, addr.Hex())
}
