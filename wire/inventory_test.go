package wire

import (
	"bytes"
	"testing"
)

func TestItemStackRoundTripMinimal(t *testing.T) {
	ctx := testCtx()
	w := NewBufWriter(ctx, 32)
	stack := ItemStack{Name: "default:stone", Count: 1, Wear: 0}
	if err := stack.WriteTo(w); err != nil {
		t.Fatal(err)
	}
	if string(w.Bytes()) != "Item default:stone\n" {
		t.Fatalf("got %q", w.Bytes())
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadItemStack(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != stack.Name || got.Count != 1 || got.Wear != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestItemStackRoundTripWithMetadata(t *testing.T) {
	ctx := testCtx()
	stack := ItemStack{
		Name:  "default:pick_wood",
		Count: 1,
		Wear:  30000,
		Metadata: ItemStackMetadata{
			StringVars: []Pair[[]byte, []byte]{
				{First: []byte("description"), Second: []byte("A worn pick")},
			},
		},
	}
	w := NewBufWriter(ctx, 128)
	if err := stack.WriteTo(w); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadItemStack(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != stack.Name || got.Count != stack.Count || got.Wear != stack.Wear {
		t.Fatalf("got %+v", got)
	}
	if len(got.Metadata.StringVars) != 1 ||
		string(got.Metadata.StringVars[0].First) != "description" ||
		string(got.Metadata.StringVars[0].Second) != "A worn pick" {
		t.Fatalf("metadata mismatch: %+v", got.Metadata)
	}
}

func TestInventoryListRoundTrip(t *testing.T) {
	ctx := testCtx()
	list := InventoryList{
		Name:  "main",
		Width: 8,
		Items: []ItemStackUpdate{
			{Kind: ItemStackPresent, Item: ItemStack{Name: "default:dirt", Count: 99}},
			{Kind: ItemStackEmpty},
			{Kind: ItemStackKeep},
		},
	}
	w := NewBufWriter(ctx, 256)
	if err := list.WriteTo(w); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadInventoryList(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "main" || got.Width != 8 || len(got.Items) != 3 {
		t.Fatalf("got %+v", got)
	}
	if got.Items[0].Item.Name != "default:dirt" || got.Items[0].Item.Count != 99 {
		t.Fatalf("first item mismatch: %+v", got.Items[0])
	}
	if got.Items[1].Kind != ItemStackEmpty || got.Items[2].Kind != ItemStackKeep {
		t.Fatalf("slot kinds mismatch: %+v", got.Items)
	}
}

func TestInventoryListSkipsUnknownLines(t *testing.T) {
	ctx := testCtx()
	raw := []byte("List main 0\nWidth 8\nSomeFutureDirective foo bar\nEndInventoryList\n")
	r := NewReader(ctx, raw)
	got, err := ReadInventoryList(r)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "main" || got.Width != 8 || len(got.Items) != 0 {
		t.Fatalf("got %+v, want the unknown directive silently skipped", got)
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	ctx := testCtx()
	inv := Inventory{
		Entries: []InventoryEntry{
			{Kind: InventoryKeepList, ListName: "craftpreview"},
			{Kind: InventoryUpdate, List: InventoryList{Name: "main", Width: 8}},
		},
	}
	w := NewBufWriter(ctx, 256)
	if err := inv.WriteTo(w); err != nil {
		t.Fatal(err)
	}
	r := NewReader(ctx, w.Bytes())
	got, err := ReadInventory(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("got %d entries", len(got.Entries))
	}
	if got.Entries[0].Kind != InventoryKeepList || got.Entries[0].ListName != "craftpreview" {
		t.Fatalf("first entry mismatch: %+v", got.Entries[0])
	}
	if got.Entries[1].Kind != InventoryUpdate || got.Entries[1].List.Name != "main" {
		t.Fatalf("second entry mismatch: %+v", got.Entries[1])
	}
}

func TestParseInventoryLocation(t *testing.T) {
	cases := []struct {
		in   string
		kind InventoryLocationKind
	}{
		{"undefined", LocUndefined},
		{"current_player", LocCurrentPlayer},
		{"player:Singleplayer", LocPlayer},
		{"nodemeta:1,2,3", LocNodemeta},
		{"detached:creative", LocDetached},
	}
	for _, c := range cases {
		loc, err := ParseInventoryLocation([]byte(c.in))
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if loc.Kind != c.kind {
			t.Fatalf("%s: got kind %v want %v", c.in, loc.Kind, c.kind)
		}
		if loc.String() != c.in {
			t.Fatalf("%s: round trip String() = %q", c.in, loc.String())
		}
	}
}

func TestParseInventoryLocationNodemetaCoords(t *testing.T) {
	loc, err := ParseInventoryLocation([]byte("nodemeta:10,-5,100"))
	if err != nil {
		t.Fatal(err)
	}
	if loc.X != 10 || loc.Y != -5 || loc.Z != 100 {
		t.Fatalf("got %+v", loc)
	}
}

func TestParseInventoryActionMove(t *testing.T) {
	line := []byte("Move current_player main 0 current_player craft 3")
	act, err := ParseInventoryAction(line)
	if err != nil {
		t.Fatal(err)
	}
	if act.Verb != ActionMove || act.FromList != "main" || act.FromIndex != 0 ||
		act.ToList != "craft" || act.ToIndex != 3 {
		t.Fatalf("got %+v", act)
	}
}

func TestParseInventoryActionDrop(t *testing.T) {
	line := []byte("Drop current_player main 2 5")
	act, err := ParseInventoryAction(line)
	if err != nil {
		t.Fatal(err)
	}
	if act.Verb != ActionDrop || act.FromList != "main" || act.FromIndex != 2 || act.Count != 5 {
		t.Fatalf("got %+v", act)
	}
	if !bytes.Contains([]byte(act.String()), []byte("Drop current_player main 2 5")) {
		t.Fatalf("String() round trip mismatch: %q", act.String())
	}
}

func TestParseInventoryActionCraft(t *testing.T) {
	act, err := ParseInventoryAction([]byte("Craft 1"))
	if err != nil {
		t.Fatal(err)
	}
	if act.Verb != ActionCraft || act.CraftCount != 1 {
		t.Fatalf("got %+v", act)
	}
}

func TestParseInventoryActionRejectsUnknownVerb(t *testing.T) {
	if _, err := ParseInventoryAction([]byte("Teleport foo")); err == nil {
		t.Fatal("expected error for an unrecognized inventory action verb")
	}
}
