package cosmos

// Type URLs of the messages embedded in a dispatch transaction.
const (
	MsgExecuteContractTypeURL = "/cosmwasm.wasm.v1.MsgExecuteContract"
	secp256k1PubKeyTypeURL    = "/cosmos.crypto.secp256k1.PubKey"
)

// SIGN_MODE_DIRECT from cosmos.tx.signing.v1beta1.
const signModeDirect = 1

// EncodeAny wraps a wire-encoded message into a google.protobuf.Any.
func EncodeAny(typeURL string, value []byte) []byte {
	var b []byte
	b = appendStringField(b, 1, typeURL)
	b = appendBytesField(b, 2, value)
	return b
}

// EncodeMsgExecuteContract builds a MsgExecuteContract with an empty
// funds list.
func EncodeMsgExecuteContract(sender, contract string, msg []byte) []byte {
	var b []byte
	b = appendStringField(b, 1, sender)
	b = appendStringField(b, 2, contract)
	b = appendBytesField(b, 3, msg)
	return b
}

// EncodeTxBody builds a TxBody from Any-encoded messages.
func EncodeTxBody(anyMsgs ...[]byte) []byte {
	var b []byte
	for _, msg := range anyMsgs {
		b = appendBytesField(b, 1, msg)
	}
	return b
}

// EncodeCoin builds a Coin with a stringified integer amount.
func EncodeCoin(denom, amount string) []byte {
	var b []byte
	b = appendStringField(b, 1, denom)
	b = appendStringField(b, 2, amount)
	return b
}

// EncodeFee builds a Fee from the gas limit and the fee coins.
func EncodeFee(gasLimit uint64, coins ...[]byte) []byte {
	var b []byte
	for _, coin := range coins {
		b = appendBytesField(b, 1, coin)
	}
	b = appendVarintField(b, 2, gasLimit)
	return b
}

// EncodeSignerInfo builds a SignerInfo for a compressed secp256k1 public
// key signing in SIGN_MODE_DIRECT at the given sequence.
func EncodeSignerInfo(pubKeyCompressed []byte, sequence uint64) []byte {
	pubKey := appendBytesField(nil, 1, pubKeyCompressed)

	single := appendVarintField(nil, 1, signModeDirect)
	modeInfo := appendBytesField(nil, 1, single)

	var b []byte
	b = appendBytesField(b, 1, EncodeAny(secp256k1PubKeyTypeURL, pubKey))
	b = appendBytesField(b, 2, modeInfo)
	b = appendVarintField(b, 3, sequence)
	return b
}

// EncodeAuthInfo builds an AuthInfo from a single signer and a fee.
func EncodeAuthInfo(signerInfo, fee []byte) []byte {
	var b []byte
	b = appendBytesField(b, 1, signerInfo)
	b = appendBytesField(b, 2, fee)
	return b
}

// EncodeSignDoc builds the SIGN_MODE_DIRECT signing payload.
func EncodeSignDoc(bodyBytes, authInfoBytes []byte, chainID string, accountNumber uint64) []byte {
	var b []byte
	b = appendBytesField(b, 1, bodyBytes)
	b = appendBytesField(b, 2, authInfoBytes)
	b = appendStringField(b, 3, chainID)
	b = appendVarintField(b, 4, accountNumber)
	return b
}

// EncodeTxRaw builds the broadcast-ready TxRaw.
func EncodeTxRaw(bodyBytes, authInfoBytes, signature []byte) []byte {
	var b []byte
	b = appendBytesField(b, 1, bodyBytes)
	b = appendBytesField(b, 2, authInfoBytes)
	b = appendBytesField(b, 3, signature)
	return b
}
