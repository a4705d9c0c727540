package keys

// BLSWithdrawalPrefix tags withdrawal credentials that commit to a BLS withdrawal key.
const BLSWithdrawalPrefix byte = 0x00

// Hasher produces a 32-byte digest.
type Hasher interface {
	Hash(data []byte) [32]byte
}

// BLSWithdrawalCredentials returns BLS_WITHDRAWAL_PREFIX || hash(pubKey)[1:].
func BLSWithdrawalCredentials(hasher Hasher, pubKey []byte) [32]byte {
	creds := hasher.Hash(pubKey)
	creds[0] = BLSWithdrawalPrefix
	return creds
}
