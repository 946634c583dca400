package bip38

import "crypto/aes"

// aesECB encrypts/decrypts independent 16-byte blocks under AES-256 with
// no chaining. This is correct here — and only here — because every
// block's plaintext is already independently masked by scrypt-derived
// key material before it reaches AES; crypto/aes exposes
// only the raw block cipher, so ECB mode is built directly on top of it
// rather than via a cipher.BlockMode (stdlib deliberately ships no ECB
// mode, and no third-party package in the corpus provides one either).
type aesECB struct {
	block cipherBlock
}

type cipherBlock interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

func newAESECB(key []byte) (*aesECB, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newErr(InvalidParameter, "invalid AES key: %v", err)
	}
	return &aesECB{block: block}, nil
}

func (e *aesECB) encryptBlock(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	e.block.Encrypt(out, plaintext)
	return out
}

func (e *aesECB) decryptBlock(ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	e.block.Decrypt(out, ciphertext)
	return out
}
