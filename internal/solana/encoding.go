package solana

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
)

// DecodeTransaction turns the text form of a wire transaction into its raw bytes.
func DecodeTransaction(encoded string, encoding Encoding) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty transaction", ErrDecode)
	}

	var (
		raw []byte
		err error
	)
	switch encoding {
	case EncodingHex:
		if strings.HasPrefix(encoded, "0x") || strings.HasPrefix(encoded, "0X") {
			raw, err = hexutil.Decode("0x" + encoded[2:])
		} else {
			raw, err = hex.DecodeString(encoded)
		}
	case EncodingBase64:
		raw, err = base64.StdEncoding.DecodeString(encoded)
	case EncodingBase58:
		raw, err = base58.Decode(encoded)
	default:
		return nil, fmt.Errorf("%w: unsupported encoding %q", ErrDecode, encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, encoding, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty transaction", ErrDecode)
	}

	return raw, nil
}
