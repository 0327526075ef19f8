package interfaces

// PairStore persists a private key together with its public counterpart
// (public key or certificate). Either both files are written or neither is.
type PairStore interface {
	SavePair(privatePEM, publicPEM []byte) (privatePath, publicPath string, err error)
}
