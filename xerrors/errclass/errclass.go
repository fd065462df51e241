// Package errclass tags errors with a coarse severity.
package errclass

import (
	"github.com/zircuit-labs/zkr-go-delegates/xerrors"
)

// Class is an error severity. Higher values are more severe.
type Class int

const (
	Nil     Class = -1
	Unknown Class = 0

	// Persistent errors will not go away on retry, e.g. bad configuration.
	Persistent Class = 110

	Panic Class = 900
)

func (c Class) String() string {
	switch c {
	case Nil:
		return "nil"
	case Persistent:
		return "persistent"
	case Panic:
		return "panic"
	default:
		return "unknown"
	}
}

// WrapAs tags err with class.
func WrapAs(err error, class Class) error {
	if err == nil {
		return nil
	}
	return xerrors.Extend(class, err)
}

// GetClass returns the class of err. For joined errors the most severe
// member class wins, and an untagged member counts as Unknown.
func GetClass(err error) Class {
	if err == nil {
		return Nil
	}

	worst := Nil
	for _, e := range xerrors.Unjoin(err) {
		class, ok := xerrors.Extract[Class](e)
		if !ok {
			class = Unknown
		}
		worst = max(worst, class)
	}
	return worst
}
