package entities

import "testing"

func sampleEnvironments() []Environment {
	return []Environment{
		{ID: "a", Type: "Cozinha", Pieces: []Piece{{Name: "Balcão", Width: 2, Height: 0.9, Depth: 0.6}}},
		{ID: "b", Type: "Closet", Pieces: []Piece{}},
	}
}

func TestAddEnvironment(t *testing.T) {
	in := sampleEnvironments()
	out := AddEnvironment(in, "Banheiro")
	if len(in) != 2 {
		t.Fatalf("input mutated: %+v", in)
	}
	if len(out) != 3 || out[2].Type != "Banheiro" || out[2].ID == "" || out[2].Pieces == nil {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestRemoveEnvironment(t *testing.T) {
	in := sampleEnvironments()
	out := RemoveEnvironment(in, "a")
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if got := RemoveEnvironment(in, "missing"); len(got) != 2 {
		t.Fatalf("unknown id must leave list unchanged, got %+v", got)
	}
}

func TestUpdateEnvironment(t *testing.T) {
	out := UpdateEnvironment(sampleEnvironments(), "b", "Closet Casal", "porta de correr")
	if out[1].Type != "Closet Casal" || out[1].Details != "porta de correr" {
		t.Fatalf("unexpected result: %+v", out[1])
	}
}

func TestPieceOperations(t *testing.T) {
	t.Run("add piece", func(t *testing.T) {
		in := sampleEnvironments()
		out := AddPiece(in, "b")
		if len(out[1].Pieces) != 1 || len(in[1].Pieces) != 0 {
			t.Fatalf("unexpected result: in=%+v out=%+v", in[1], out[1])
		}
	})

	t.Run("update piece fields", func(t *testing.T) {
		in := sampleEnvironments()
		out := UpdatePiece(in, "a", 0, PieceFieldName, "Aéreo")
		out = UpdatePiece(out, "a", 0, PieceFieldWidth, "1.8")
		out = UpdatePiece(out, "a", 0, PieceFieldDepth, "x")
		p := out[0].Pieces[0]
		if p.Name != "Aéreo" || p.Width != 1.8 || p.Depth != 0 || p.Height != 0.9 {
			t.Fatalf("unexpected piece: %+v", p)
		}
		if in[0].Pieces[0].Name != "Balcão" {
			t.Fatalf("input mutated: %+v", in[0].Pieces[0])
		}
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		in := sampleEnvironments()
		out := UpdatePiece(in, "a", 5, PieceFieldName, "x")
		if out[0].Pieces[0].Name != "Balcão" {
			t.Fatalf("unexpected change: %+v", out[0])
		}
		out = RemovePiece(in, "a", -1)
		if len(out[0].Pieces) != 1 {
			t.Fatalf("unexpected removal: %+v", out[0])
		}
	})

	t.Run("remove piece", func(t *testing.T) {
		in := AddPiece(sampleEnvironments(), "a")
		in = UpdatePiece(in, "a", 1, PieceFieldName, "Torre")
		out := RemovePiece(in, "a", 0)
		if len(out[0].Pieces) != 1 || out[0].Pieces[0].Name != "Torre" {
			t.Fatalf("unexpected result: %+v", out[0])
		}
		if len(in[0].Pieces) != 2 || in[0].Pieces[0].Name != "Balcão" {
			t.Fatalf("input mutated: %+v", in[0])
		}
	})
}
