package paillier

import (
	"encoding/json"
	"fmt"

	"github.com/taurusgroup/bigcore/arith"
	"github.com/taurusgroup/bigcore/bigint"
)

var (
	_ json.Marshaler   = (*PublicKey)(nil)
	_ json.Unmarshaler = (*PublicKey)(nil)
	_ json.Marshaler   = (*SecretKey)(nil)
	_ json.Unmarshaler = (*SecretKey)(nil)
	_ json.Marshaler   = (*Ciphertext)(nil)
	_ json.Unmarshaler = (*Ciphertext)(nil)
)

type jsonPublicKey struct {
	N []byte `json:"n"`
}

func (pk *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPublicKey{N: pk.N().Bytes()})
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var x jsonPublicKey
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("paillier: unmarshal public key: %w", err)
	}
	*pk = *NewPublicKey(arith.ModulusFromN(bigint.FromBytes(x.N)))
	return nil
}

type jsonSecretKey struct {
	P []byte `json:"p"`
	Q []byte `json:"q"`
}

func (sk *SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSecretKey{P: sk.p.Bytes(), Q: sk.q.Bytes()})
}

func (sk *SecretKey) UnmarshalJSON(data []byte) error {
	var x jsonSecretKey
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("paillier: unmarshal secret key: %w", err)
	}
	*sk = *NewSecretKeyFromPrimes(bigint.FromBytes(x.P), bigint.FromBytes(x.Q))
	return nil
}

type jsonCiphertext struct {
	C []byte `json:"c"`
}

func (ct *Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCiphertext{C: ct.c.Bytes()})
}

func (ct *Ciphertext) UnmarshalJSON(data []byte) error {
	var x jsonCiphertext
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("paillier: unmarshal ciphertext: %w", err)
	}
	ct.c = bigint.FromBytes(x.C)
	return nil
}
