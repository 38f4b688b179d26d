package cesr

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cesrkit/cesr/codes"
	"github.com/cesrkit/cesr/errs"
	"github.com/cesrkit/cesr/gateway"
	"github.com/cesrkit/cesr/matter"
)

// Saider computes and verifies a self-addressing identifier (SAID) over a
// JSON-serializable payload.
type Saider struct {
	m      *matter.Matter
	family gateway.Family
}

// Saidify blanks payload[label] to pad characters matching code's full
// textual length, serializes payload, digests it under code's hash
// family, then replaces the blank with the resulting SAID. It mutates and
// returns payload for convenience, alongside the SAID string.
func Saidify(payload map[string]any, label, code string) (map[string]any, string, error) {
	family, ok := digerFamilies[code]
	if !ok {
		return nil, "", errs.ErrInvalidCode
	}

	_, _, fs, _, err := codes.SizesOf(code)
	if err != nil {
		return nil, "", err
	}

	payload[label] = strings.Repeat("#", fs)

	said, err := digestPayload(payload, family, code)
	if err != nil {
		return nil, "", err
	}

	payload[label] = said

	return payload, said, nil
}

// VerifySaid reports whether payload[label] is a SAID consistent with
// payload's other fields: it blanks the field, re-digests, and compares.
func VerifySaid(payload map[string]any, label string) (bool, error) {
	said, _ := payload[label].(string)
	if said == "" {
		return false, nil
	}

	m, err := matter.FromQb64(said)
	if err != nil {
		return false, err
	}

	family, ok := digerFamilies[m.Code()]
	if !ok {
		return false, errs.ErrInvalidCode
	}

	working := make(map[string]any, len(payload))
	for k, v := range payload {
		working[k] = v
	}
	working[label] = strings.Repeat("#", len(said))

	recomputed, err := digestPayload(working, family, m.Code())
	if err != nil {
		return false, err
	}

	recomputedMatter, err := matter.FromQb64(recomputed)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(recomputedMatter.Raw(), m.Raw()) == 1, nil
}

func digestPayload(payload map[string]any, family gateway.Family, code string) (string, error) {
	serialized, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrCryptoFailure, err)
	}

	digest, err := gateway.Default().Digest(family, serialized)
	if err != nil {
		return "", err
	}

	m, err := matter.FromCodeRaw(code, digest)
	if err != nil {
		return "", err
	}

	return m.Qb64(), nil
}
