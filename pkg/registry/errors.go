package registry

import "github.com/joshuapare/stylekit/pkg/types"

var (
	// ErrInvalid indicates a definition with an empty name or an id outside
	// the property id space. Range failures also wrap types.ErrOutOfRange.
	ErrInvalid = &types.Error{Kind: types.ErrKindInvalid, Msg: "registry: invalid property definition"}

	// ErrDuplicate indicates two definitions sharing a name or an id.
	ErrDuplicate = &types.Error{Kind: types.ErrKindInvalid, Msg: "registry: duplicate property"}

	// ErrFormat indicates an unknown file format or a document that does not
	// decode.
	ErrFormat = &types.Error{Kind: types.ErrKindFormat, Msg: "registry: bad format"}
)
