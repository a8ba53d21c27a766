package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatdocs/internal/shipment"
)

func TestPayloadCodecRoundTrip(t *testing.T) {
	codec, err := newPayloadCodec()
	require.NoError(t, err)

	form := shipment.NewFormData(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	form.CustomerName = "QUIMICOS DEL NORTE SA DE CV"
	form.MexicoAddress = "Av. Industrial 450\nMonterrey, NL"

	payload, algo, err := codec.Encode(form)
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, algo)

	decoded, err := codec.Decode(payload, algo)
	require.NoError(t, err)
	assert.Equal(t, form.CustomerName, decoded.CustomerName)
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, form.Items[0].ProductID, decoded.Items[0].ProductID)
	assert.True(t, form.Items[0].UnitPrice.Equal(decoded.Items[0].UnitPrice.Decimal))
}

func TestPayloadCodecCompressesLargeForms(t *testing.T) {
	codec, err := newPayloadCodec()
	require.NoError(t, err)

	form := shipment.NewFormData(time.Now())
	form.MexicoAddress = strings.Repeat("Carretera Nacional km 23, Parque Industrial\n", 200)

	payload, algo, err := codec.Encode(form)
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, algo)

	decoded, err := codec.Decode(payload, algo)
	require.NoError(t, err)
	assert.Equal(t, form.MexicoAddress, decoded.MexicoAddress)
}

func TestPayloadCodecRejectsCorruptPayload(t *testing.T) {
	codec, err := newPayloadCodec()
	require.NoError(t, err)

	_, err = codec.Decode([]byte("not json"), CompressionNone)
	assert.Error(t, err)

	_, err = codec.Decode([]byte("not zstd"), CompressionZstd)
	assert.Error(t, err)
}
