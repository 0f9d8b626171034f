package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	encodingBase64 = "base64"
	encodingHex    = "hex"
)

// encodingFlag restricts --encoding to the supported payload encodings at
// parse time.
type encodingFlag string

var _ pflag.Value = (*encodingFlag)(nil)

func (e *encodingFlag) String() string { return string(*e) }

func (e *encodingFlag) Type() string { return "encoding" }

func (e *encodingFlag) Set(v string) error {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case encodingBase64, encodingHex:
		*e = encodingFlag(v)
		return nil
	default:
		return fmt.Errorf("unsupported encoding %q, use base64 or hex", v)
	}
}

func addEncodingFlag(flags *pflag.FlagSet, target *encodingFlag) {
	*target = encodingBase64
	flags.Var(target, "encoding", "Payload encoding: base64 or hex.")
}

func encodePayload(encoding encodingFlag, payload []byte) (string, error) {
	switch encoding {
	case encodingBase64:
		return base64.StdEncoding.EncodeToString(payload), nil
	case encodingHex:
		return hex.EncodeToString(payload), nil
	default:
		return "", usageErrorf("unsupported encoding %q, use base64 or hex", encoding)
	}
}

func decodePayload(encoding encodingFlag, text string) ([]byte, error) {
	text = strings.Join(strings.Fields(text), "")
	switch encoding {
	case encodingBase64:
		payload, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		return payload, nil
	case encodingHex:
		payload, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("decode hex payload: %w", err)
		}
		return payload, nil
	default:
		return nil, usageErrorf("unsupported encoding %q, use base64 or hex", encoding)
	}
}
