package member

// PasswordHasher abstracts credential hashing so handlers can be tested
// without paying the bcrypt cost. Compare is constant-time.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Compare(hash, password []byte) error
}
