package bip38

import "fmt"

// Kind classifies a failure mode of the BIP38 core so callers can branch
// on it without parsing error strings.
type Kind int

const (
	// InvalidEncoding means a Base58 string failed to decode, a
	// Base58Check checksum failed, or a WIF's trailing byte was not the
	// compression flag.
	InvalidEncoding Kind = iota
	// InvalidLength means a decoded envelope's byte count disagrees with
	// the format it claims to be.
	InvalidLength
	// InvalidPrefix means a fixed leading byte sequence did not match.
	InvalidPrefix
	// InvalidFlag means a flag byte fell in the illegal set, or did not
	// match any flag this operation accepts.
	InvalidFlag
	// InvalidMagic means an intermediate code's magic bytes matched
	// neither the lot/sequence nor the no-lot/sequence constant.
	InvalidMagic
	// InvalidParameter means a caller-supplied argument (lot, sequence,
	// salt length, WIF type string, network name, scalar range, ...)
	// violated its contract.
	InvalidParameter
	// IncorrectPassphrase means every structural check passed but the
	// recomputed address hash did not match the envelope.
	IncorrectPassphrase
)

func (k Kind) String() string {
	switch k {
	case InvalidEncoding:
		return "InvalidEncoding"
	case InvalidLength:
		return "InvalidLength"
	case InvalidPrefix:
		return "InvalidPrefix"
	case InvalidFlag:
		return "InvalidFlag"
	case InvalidMagic:
		return "InvalidMagic"
	case InvalidParameter:
		return "InvalidParameter"
	case IncorrectPassphrase:
		return "IncorrectPassphrase"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every exported operation in this
// package. It carries a Kind so callers can use errors.As to branch.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bip38: %s: %s", e.Kind, e.Msg)
}

func newErr(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Is lets errors.Is(err, &Error{Kind: IncorrectPassphrase}) match any
// *Error of the same Kind without needing one sentinel value per Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
