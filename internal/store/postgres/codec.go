package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"tatdocs/internal/shipment"
)

// CompressionAlgo specifies how a stored form payload is encoded.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// payloadCodec serializes form snapshots for the form_data column,
// compressing payloads above the threshold.
type payloadCodec struct {
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

func newPayloadCodec() (*payloadCodec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &payloadCodec{
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 4 * 1024,
	}, nil
}

// Encode marshals a form and compresses it when it crosses the
// threshold. Multi-line shipments with long addresses compress well.
func (c *payloadCodec) Encode(form shipment.ShipmentFormData) ([]byte, CompressionAlgo, error) {
	raw, err := json.Marshal(form)
	if err != nil {
		return nil, CompressionNone, fmt.Errorf("marshal form data: %w", err)
	}
	if len(raw) <= c.compressThreshold {
		return raw, CompressionNone, nil
	}
	return c.encoder.EncodeAll(raw, nil), CompressionZstd, nil
}

// Decode reverses Encode.
func (c *payloadCodec) Decode(payload []byte, algo CompressionAlgo) (shipment.ShipmentFormData, error) {
	var form shipment.ShipmentFormData
	raw := payload
	if algo == CompressionZstd {
		decompressed, err := c.decoder.DecodeAll(payload, nil)
		if err != nil {
			return form, fmt.Errorf("decompress form data: %w", err)
		}
		raw = decompressed
	}
	if err := json.Unmarshal(raw, &form); err != nil {
		return form, fmt.Errorf("unmarshal form data: %w", err)
	}
	return form, nil
}
