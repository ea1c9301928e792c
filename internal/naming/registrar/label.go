package registrar

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
	"github.com/goodnatureofminers/namesight7000-backend/pkg/safe"
)

// ValidateLabel enforces registrar label policy: length within params,
// characters in [a-z0-9-], no leading or trailing hyphen.
func ValidateLabel(label string, params model.Params) error {
	n, err := safe.Uint32(len(label))
	if err != nil || !params.LabelLenInRange(n) {
		return fmt.Errorf("%w: length %d outside [%d, %d]", model.ErrInvalidLabel, len(label), params.MinLabelLen, params.MaxLabelLen)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("%w: leading or trailing hyphen", model.ErrInvalidLabel)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return fmt.Errorf("%w: character %q at %d", model.ErrInvalidLabel, c, i)
	}
	return nil
}

// CommitmentFor returns H(label ++ owner ++ secret), the value a client
// submits to Commit before revealing the label.
func CommitmentFor(label string, owner model.Address, secret []byte) model.Hash {
	ownerBytes := owner.Bytes()
	buf := make([]byte, 0, len(label)+len(ownerBytes)+len(secret))
	buf = append(buf, label...)
	buf = append(buf, ownerBytes...)
	buf = append(buf, secret...)
	return model.Hash(chainhash.HashH(buf))
}
