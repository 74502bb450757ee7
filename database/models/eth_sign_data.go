package models

// EthSignData is the base-chain co-signature attached to some rollup
// transactions, as stored next to the transaction.
type EthSignData struct {
	Signature TxEthSignature `json:"signature" bson:"signature"`
	Message   string         `json:"message" bson:"message"`
}

// TxEthSignature holds the signature kind ("EthereumSignature" or
// "EIP1271Signature") and its hex encoded bytes.
type TxEthSignature struct {
	Type      string `json:"type" bson:"type"`
	Signature string `json:"signature" bson:"signature"`
}
