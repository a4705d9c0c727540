package keys

//go:generate go tool mockgen -package=keys -destination=./deriver_mock.go -source=./deriver.go

// Deriver derives BLS12-381 public keys along a hierarchical path of
// unsigned 32-bit indices, e.g. {12381, 3600, 0, 0} for m/12381/3600/0/0.
type Deriver interface {
	PublicKey(path []uint32) ([]byte, error)
}
