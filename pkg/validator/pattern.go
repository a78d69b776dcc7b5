package validator

// KeyPattern decorates field names before they are used as error store keys.
type KeyPattern struct {
	Prefix string
	Suffix string
}

// Key renders the store key for name.
func (p KeyPattern) Key(name string) string {
	return p.Prefix + name + p.Suffix
}
