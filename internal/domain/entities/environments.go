package entities

import "github.com/google/uuid"

// PieceField names the editable attributes of a Piece.
type PieceField string

const (
	PieceFieldName   PieceField = "nome"
	PieceFieldWidth  PieceField = "l"
	PieceFieldHeight PieceField = "a"
	PieceFieldDepth  PieceField = "p"
)

func (f PieceField) Valid() bool {
	switch f {
	case PieceFieldName, PieceFieldWidth, PieceFieldHeight, PieceFieldDepth:
		return true
	}
	return false
}

// The functions below never mutate their input. Each returns a fresh list,
// and an unknown id or an out-of-range index yields an unchanged copy.

func AddEnvironment(envs []Environment, envType string) []Environment {
	out := CloneEnvironments(envs)
	return append(out, Environment{ID: uuid.NewString(), Type: envType, Pieces: []Piece{}})
}

func RemoveEnvironment(envs []Environment, id string) []Environment {
	out := make([]Environment, 0, len(envs))
	for _, e := range envs {
		if e.ID == id {
			continue
		}
		out = append(out, cloneEnvironment(e))
	}
	return out
}

func UpdateEnvironment(envs []Environment, id, envType, details string) []Environment {
	return mapEnvironment(envs, id, func(e *Environment) {
		e.Type = envType
		e.Details = details
	})
}

func AddPiece(envs []Environment, envID string) []Environment {
	return mapEnvironment(envs, envID, func(e *Environment) {
		e.Pieces = append(e.Pieces, Piece{})
	})
}

func UpdatePiece(envs []Environment, envID string, index int, field PieceField, value string) []Environment {
	return mapEnvironment(envs, envID, func(e *Environment) {
		if index < 0 || index >= len(e.Pieces) {
			return
		}
		p := &e.Pieces[index]
		switch field {
		case PieceFieldName:
			p.Name = value
		case PieceFieldWidth:
			p.Width = FlexFloat(ParseAmount(value))
		case PieceFieldHeight:
			p.Height = FlexFloat(ParseAmount(value))
		case PieceFieldDepth:
			p.Depth = FlexFloat(ParseAmount(value))
		}
	})
}

func RemovePiece(envs []Environment, envID string, index int) []Environment {
	return mapEnvironment(envs, envID, func(e *Environment) {
		if index < 0 || index >= len(e.Pieces) {
			return
		}
		e.Pieces = append(e.Pieces[:index], e.Pieces[index+1:]...)
	})
}

// CloneEnvironments deep-copies the list including every piece slice.
func CloneEnvironments(envs []Environment) []Environment {
	out := make([]Environment, 0, len(envs)+1)
	for _, e := range envs {
		out = append(out, cloneEnvironment(e))
	}
	return out
}

func cloneEnvironment(e Environment) Environment {
	pieces := make([]Piece, len(e.Pieces))
	copy(pieces, e.Pieces)
	e.Pieces = pieces
	return e
}

func mapEnvironment(envs []Environment, id string, fn func(e *Environment)) []Environment {
	out := CloneEnvironments(envs)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
		}
	}
	return out
}
