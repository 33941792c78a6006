package cosmos

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// Full gRPC method names of the chain queries the dispatcher performs.
const (
	SmartContractStateMethod = "/cosmwasm.wasm.v1.Query/SmartContractState"
	AccountMethod            = "/cosmos.auth.v1beta1.Query/Account"
)

const baseAccountTypeURL = "/cosmos.auth.v1beta1.BaseAccount"

// EncodeSmartContractStateRequest builds a QuerySmartContractStateRequest.
func EncodeSmartContractStateRequest(address string, queryData []byte) []byte {
	var b []byte
	b = appendStringField(b, 1, address)
	b = appendBytesField(b, 2, queryData)
	return b
}

// DecodeSmartContractStateResponse extracts the contract's raw response
// bytes from a QuerySmartContractStateResponse.
func DecodeSmartContractStateResponse(b []byte) ([]byte, error) {
	var data []byte
	err := eachField(b, func(num protowire.Number, v []byte, _ uint64) error {
		if num == 1 {
			data = v
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode smart contract state response: %w", err)
	}
	return data, nil
}

// EncodeAccountRequest builds a QueryAccountRequest.
func EncodeAccountRequest(address string) []byte {
	return appendStringField(nil, 1, address)
}

// BaseAccount carries the on-chain account state needed to sign.
type BaseAccount struct {
	Address       string
	AccountNumber uint64
	Sequence      uint64
}

// DecodeAccountResponse unpacks a QueryAccountResponse into the wrapped
// BaseAccount. Module and vesting accounts are rejected: the dispatcher
// signs with a plain externally owned account.
func DecodeAccountResponse(b []byte) (BaseAccount, error) {
	var anyBytes []byte
	err := eachField(b, func(num protowire.Number, v []byte, _ uint64) error {
		if num == 1 {
			anyBytes = v
		}
		return nil
	})
	if err != nil {
		return BaseAccount{}, fmt.Errorf("decode account response: %w", err)
	}
	if len(anyBytes) == 0 {
		return BaseAccount{}, errors.New("account response carries no account")
	}

	typeURL, value, err := decodeAny(anyBytes)
	if err != nil {
		return BaseAccount{}, fmt.Errorf("decode account any: %w", err)
	}
	if typeURL != baseAccountTypeURL && !strings.HasSuffix(typeURL, "BaseAccount") {
		return BaseAccount{}, fmt.Errorf("unexpected account type %q", typeURL)
	}

	var account BaseAccount
	err = eachField(value, func(num protowire.Number, v []byte, u uint64) error {
		switch num {
		case 1:
			account.Address = string(v)
		case 3:
			account.AccountNumber = u
		case 4:
			account.Sequence = u
		}
		return nil
	})
	if err != nil {
		return BaseAccount{}, fmt.Errorf("decode base account: %w", err)
	}
	return account, nil
}

func decodeAny(b []byte) (typeURL string, value []byte, err error) {
	err = eachField(b, func(num protowire.Number, v []byte, _ uint64) error {
		switch num {
		case 1:
			typeURL = string(v)
		case 2:
			value = v
		}
		return nil
	})
	return typeURL, value, err
}
