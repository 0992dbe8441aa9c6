package value

import "github.com/joshuapare/stylekit/pkg/types"

// Every error below also matches its category: types.ErrFormat, or
// types.ErrOutOfRange for ErrTooLarge.
var (
	// ErrEmpty indicates an empty encoded value.
	ErrEmpty = &types.Error{Kind: types.ErrKindFormat, Msg: "value: empty encoding"}

	// ErrUnknownKind indicates an encoding whose tag byte is not a known kind.
	ErrUnknownKind = &types.Error{Kind: types.ErrKindFormat, Msg: "value: unknown kind"}

	// ErrTruncated indicates an encoding shorter than its kind requires.
	ErrTruncated = &types.Error{Kind: types.ErrKindFormat, Msg: "value: truncated encoding"}

	// ErrTooLarge indicates an encoding larger than types.MaxValueSize.
	ErrTooLarge = &types.Error{Kind: types.ErrKindRange, Msg: "value: encoding too large"}

	// ErrSyntax indicates a literal that Parse could not read.
	ErrSyntax = &types.Error{Kind: types.ErrKindFormat, Msg: "value: invalid literal"}
)
