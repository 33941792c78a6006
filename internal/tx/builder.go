// Package tx assembles, signs, and decodes the dispatcher's contract
// transactions.
package tx

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/cosmos"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/signer"
	"github.com/shopspring/decimal"
)

// Builder produces signed, broadcast-ready contract-execute
// transactions with a fixed per-alarm fee tariff. The fee is never
// estimated dynamically: predictability is preferred over gas
// efficiency, and it saves a simulate round trip per batch.
type Builder struct {
	feeDenom         string
	gasLimitPerAlarm uint64
	gasPrice         decimal.Decimal
}

// NewBuilder validates the tariff parameters.
func NewBuilder(feeDenom string, gasLimitPerAlarm uint64, gasPrice decimal.Decimal) (*Builder, error) {
	if feeDenom == "" {
		return nil, errors.New("fee denom is required")
	}
	if gasLimitPerAlarm == 0 {
		return nil, errors.New("gas limit per alarm must be positive")
	}
	if !gasPrice.IsPositive() {
		return nil, fmt.Errorf("gas price must be positive, got %s", gasPrice)
	}
	return &Builder{
		feeDenom:         feeDenom,
		gasLimitPerAlarm: gasLimitPerAlarm,
		gasPrice:         gasPrice,
	}, nil
}

// BuildSigned wraps execMsg into a single contract-execute message with
// an empty funds list, sizes the fee by maxCount, binds the transaction
// to the identity's current sequence, and signs it SIGN_MODE_DIRECT.
// The identity's sequence is not advanced; that is the caller's duty
// once a commit outcome has been observed.
func (b *Builder) BuildSigned(identity *signer.Identity, contract string, execMsg []byte, maxCount uint32) ([]byte, error) {
	if maxCount == 0 {
		return nil, errors.New("max count must be positive")
	}

	release, err := identity.BeginBuild()
	if err != nil {
		return nil, err
	}
	defer release()

	gasLimit := b.gasLimitPerAlarm * uint64(maxCount)
	feeAmount := b.gasPrice.Mul(decimal.NewFromUint64(gasLimit)).Ceil()

	body := cosmos.EncodeTxBody(cosmos.EncodeAny(
		cosmos.MsgExecuteContractTypeURL,
		cosmos.EncodeMsgExecuteContract(identity.Address(), contract, execMsg),
	))
	authInfo := cosmos.EncodeAuthInfo(
		cosmos.EncodeSignerInfo(identity.PubKeyCompressed(), identity.Sequence()),
		cosmos.EncodeFee(gasLimit, cosmos.EncodeCoin(b.feeDenom, feeAmount.String())),
	)

	signDoc := cosmos.EncodeSignDoc(body, authInfo, identity.ChainID(), identity.AccountNumber())
	signature, err := identity.Sign(signDoc)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return cosmos.EncodeTxRaw(body, authInfo, signature), nil
}
