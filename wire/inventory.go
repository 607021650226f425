package wire

import (
	"strconv"

	"github.com/pkg/errors"
)

// SplitByWhitespace splits a line on spaces/newlines, dropping empty
// tokens, matching the inventory tokenizer's quirky whitespace handling.
func SplitByWhitespace(line []byte) [][]byte {
	var words [][]byte
	start := -1
	for i, ch := range line {
		if ch == ' ' || ch == '\n' {
			if start >= 0 {
				words = append(words, line[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, line[start:])
	}
	return words
}

// SkipWhitespace advances past leading spaces/newlines.
func SkipWhitespace(line []byte) []byte {
	for i, ch := range line {
		if ch != ' ' && ch != '\n' {
			return line[i:]
		}
	}
	return line[len(line):]
}

// NextWord returns the next non-whitespace token and the remainder (which
// may still carry whitespace), or ok=false if nothing remains.
func NextWord(line []byte) (word, rest []byte, ok bool) {
	line = SkipWhitespace(line)
	for i, ch := range line {
		if ch == ' ' || ch == '\n' {
			return line[:i], line[i:], true
		}
	}
	if len(line) == 0 {
		return nil, nil, false
	}
	return line, line[len(line):], true
}

// ItemStackMetadata is a list of key/value byte-string pairs encoded as
// one JSON-ish escaped string of the form
// "\x01 key1 \x02 val1 \x03 key2 \x02 val2 \x03 ...".
type ItemStackMetadata struct {
	StringVars []Pair[[]byte, []byte]
}

const (
	metaStart   = 0x01
	metaKVDelim = 0x02
	metaPairDelim = 0x03
)

func (m ItemStackMetadata) encodeBuf() []byte {
	buf := []byte{metaStart}
	for _, kv := range m.StringVars {
		if len(kv.First) == 0 && len(kv.Second) == 0 {
			continue
		}
		buf = append(buf, kv.First...)
		buf = append(buf, metaKVDelim)
		buf = append(buf, kv.Second...)
		buf = append(buf, metaPairDelim)
	}
	return buf
}

func (m ItemStackMetadata) WriteTo(w Writer) error {
	return w.WriteBytes(SerializeJSONStringIfNeeded(m.encodeBuf()))
}

// ReadItemStackMetadata decodes from the remainder of r (a JSON-ish
// string, possibly with trailing bytes past it which are NOT consumed).
func ReadItemStackMetadata(r *Reader) (ItemStackMetadata, error) {
	raw, consumed, err := DeserializeJSONStringIfNeeded(r.PeekAll())
	if err != nil {
		return ItemStackMetadata{}, err
	}
	if _, err := r.Take(consumed); err != nil {
		return ItemStackMetadata{}, err
	}
	result := ItemStackMetadata{}
	if len(raw) == 0 {
		return result, nil
	}
	if raw[0] != metaStart {
		return ItemStackMetadata{}, errors.Wrap(ErrInvalidValue, "ItemStackMetadata bad start byte")
	}
	rest := raw[1:]
	for len(rest) != 0 {
		kv := indexByte(rest, metaKVDelim)
		name := rest[:kv]
		rest = rest[kv:]
		if len(rest) > 0 {
			rest = rest[1:]
		}
		pd := indexByte(rest, metaPairDelim)
		val := rest[:pd]
		rest = rest[pd:]
		if len(rest) > 0 {
			rest = rest[1:]
		}
		result.StringVars = append(result.StringVars, Pair[[]byte, []byte]{First: append([]byte(nil), name...), Second: append([]byte(nil), val...)})
	}
	return result, nil
}

func indexByte(b []byte, c byte) int {
	for i, ch := range b {
		if ch == c {
			return i
		}
	}
	return len(b)
}

// ItemStack is one inventory slot. The emitter chooses the shortest form
// that preserves nonzero fields: 1 token if only name, 2 if count != 1,
// 3 if wear != 0, 4 if metadata nonempty.
type ItemStack struct {
	Name     string
	Count    uint16
	Wear     uint16
	Metadata ItemStackMetadata
}

func (s ItemStack) WriteTo(w Writer) error {
	if err := w.WriteBytes([]byte("Item ")); err != nil {
		return err
	}
	if err := w.WriteBytes(SerializeJSONStringIfNeeded([]byte(s.Name))); err != nil {
		return err
	}
	parts := 1
	if len(s.Metadata.StringVars) > 0 {
		parts = 4
	} else if s.Wear != 0 {
		parts = 3
	} else if s.Count != 1 {
		parts = 2
	}
	if parts >= 2 {
		if err := w.WriteBytes([]byte(" " + strconv.Itoa(int(s.Count)))); err != nil {
			return err
		}
	}
	if parts >= 3 {
		if err := w.WriteBytes([]byte(" " + strconv.Itoa(int(s.Wear)))); err != nil {
			return err
		}
	}
	if parts >= 4 {
		if err := w.WriteBytes([]byte(" ")); err != nil {
			return err
		}
		if err := s.Metadata.WriteTo(w); err != nil {
			return err
		}
	}
	return w.WriteBytes([]byte("\n"))
}

func ReadItemStack(r *Reader) (ItemStack, error) {
	line, err := r.TakeLine()
	if err != nil {
		return ItemStack{}, err
	}
	word, rest, ok := NextWord(line)
	if !ok || string(word) != "Item" {
		return ItemStack{}, errors.Wrap(ErrInvalidValue, "invalid Item line")
	}
	rest = SkipWhitespace(rest)
	name, consumed, err := DeserializeJSONStringIfNeeded(rest)
	if err != nil {
		return ItemStack{}, err
	}
	rest = SkipWhitespace(rest[consumed:])

	result := ItemStack{Name: string(name), Count: 1, Wear: 0}
	if word, rest2, ok := NextWord(rest); ok {
		n, err := strconv.ParseUint(string(word), 10, 16)
		if err != nil {
			return ItemStack{}, errors.Wrap(ErrInvalidValue, "bad item count")
		}
		result.Count = uint16(n)
		if word, rest3, ok := NextWord(rest2); ok {
			n, err := strconv.ParseUint(string(word), 10, 16)
			if err != nil {
				return ItemStack{}, errors.Wrap(ErrInvalidValue, "bad item wear")
			}
			result.Wear = uint16(n)
			rest3 = SkipWhitespace(rest3)
			if len(rest3) > 0 {
				sub := NewReader(r.Context(), rest3)
				meta, err := ReadItemStackMetadata(sub)
				if err != nil {
					return ItemStack{}, err
				}
				result.Metadata = meta
			}
		}
	}
	return result, nil
}

// ItemStackUpdateKind tags an inventory-list slot.
type ItemStackUpdateKind int

const (
	ItemStackEmpty ItemStackUpdateKind = iota
	ItemStackKeep
	ItemStackPresent
)

type ItemStackUpdate struct {
	Kind ItemStackUpdateKind
	Item ItemStack
}

// InventoryList is one "List <name> <count>" / "Width <n>" block
// terminated by "EndInventoryList\n".
type InventoryList struct {
	Name  string
	Width uint32
	Items []ItemStackUpdate
}

func (l InventoryList) WriteTo(w Writer) error {
	if err := w.WriteBytes([]byte("List " + l.Name + " " + strconv.Itoa(len(l.Items)) + "\n")); err != nil {
		return err
	}
	if err := w.WriteBytes([]byte("Width " + strconv.FormatUint(uint64(l.Width), 10) + "\n")); err != nil {
		return err
	}
	for _, it := range l.Items {
		switch it.Kind {
		case ItemStackEmpty:
			if err := w.WriteBytes([]byte("Empty\n")); err != nil {
				return err
			}
		case ItemStackKeep:
			if err := w.WriteBytes([]byte("Keep\n")); err != nil {
				return err
			}
		case ItemStackPresent:
			if err := it.Item.WriteTo(w); err != nil {
				return err
			}
		}
	}
	return w.WriteBytes([]byte("EndInventoryList\n"))
}

// ReadInventoryList assumes the "List ..." header line has not yet been
// consumed; it reads and validates it before reading the body.
func ReadInventoryList(r *Reader) (InventoryList, error) {
	line, err := r.TakeLine()
	if err != nil {
		return InventoryList{}, err
	}
	words := SplitByWhitespace(line)
	if len(words) != 3 || string(words[0]) != "List" {
		return InventoryList{}, errors.Wrap(ErrInvalidValue, "broken List tag")
	}
	result := InventoryList{Name: string(words[1])}
	for r.Remaining() > 0 {
		peeked, err := r.PeekLine()
		if err != nil {
			return InventoryList{}, err
		}
		words := SplitByWhitespace(peeked)
		if len(words) == 0 {
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
			continue
		}
		name := string(words[0])
		switch name {
		case "EndInventoryList", "end":
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
			return result, nil
		case "Width":
			if len(words) < 2 {
				return InventoryList{}, errors.Wrap(ErrInvalidValue, "Width value missing")
			}
			n, err := strconv.ParseUint(string(words[1]), 10, 32)
			if err != nil {
				return InventoryList{}, errors.Wrap(ErrInvalidValue, "bad Width value")
			}
			result.Width = uint32(n)
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
		case "Item":
			item, err := ReadItemStack(r)
			if err != nil {
				return InventoryList{}, err
			}
			result.Items = append(result.Items, ItemStackUpdate{Kind: ItemStackPresent, Item: item})
		case "Empty":
			result.Items = append(result.Items, ItemStackUpdate{Kind: ItemStackEmpty})
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
		case "Keep":
			result.Items = append(result.Items, ItemStackUpdate{Kind: ItemStackKeep})
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
		default:
			// Unknown lines are silently skipped, preserved here for
			// bug-compatibility with existing Minetest servers; see
			// DESIGN.md open-question (d).
			if _, err := r.TakeLine(); err != nil {
				return InventoryList{}, err
			}
		}
	}
	return InventoryList{}, ErrEof
}

// InventoryEntryKind tags a top-level Inventory entry.
type InventoryEntryKind int

const (
	InventoryKeepList InventoryEntryKind = iota
	InventoryUpdate
)

type InventoryEntry struct {
	Kind     InventoryEntryKind
	ListName string // valid when Kind == InventoryKeepList
	List     InventoryList
}

// Inventory is a sequence of entries terminated by "EndInventory\n".
type Inventory struct {
	Entries []InventoryEntry
}

func (inv Inventory) WriteTo(w Writer) error {
	for _, e := range inv.Entries {
		switch e.Kind {
		case InventoryKeepList:
			if err := w.WriteBytes([]byte("KeepList " + e.ListName + "\n")); err != nil {
				return err
			}
		case InventoryUpdate:
			if err := e.List.WriteTo(w); err != nil {
				return err
			}
		}
	}
	return w.WriteBytes([]byte("EndInventory\n"))
}

func ReadInventory(r *Reader) (Inventory, error) {
	result := Inventory{}
	for r.Remaining() > 0 {
		peeked, err := r.PeekLine()
		if err != nil {
			return Inventory{}, err
		}
		words := SplitByWhitespace(peeked)
		if len(words) == 0 {
			if _, err := r.TakeLine(); err != nil {
				return Inventory{}, err
			}
			continue
		}
		name := string(words[0])
		switch name {
		case "EndInventory", "End":
			if _, err := r.TakeLine(); err != nil {
				return Inventory{}, err
			}
			return result, nil
		case "List":
			list, err := ReadInventoryList(r)
			if err != nil {
				return Inventory{}, err
			}
			result.Entries = append(result.Entries, InventoryEntry{Kind: InventoryUpdate, List: list})
		case "KeepList":
			if len(words) < 2 {
				return Inventory{}, errors.Wrap(ErrInvalidValue, "KeepList missing name")
			}
			result.Entries = append(result.Entries, InventoryEntry{Kind: InventoryKeepList, ListName: string(words[1])})
			if _, err := r.TakeLine(); err != nil {
				return Inventory{}, err
			}
		default:
			if _, err := r.TakeLine(); err != nil {
				return Inventory{}, err
			}
		}
	}
	return Inventory{}, ErrEof
}

// InventoryLocation is one of undefined / current_player / player:<name> /
// nodemeta:x,y,z / detached:<name>.
type InventoryLocationKind int

const (
	LocUndefined InventoryLocationKind = iota
	LocCurrentPlayer
	LocPlayer
	LocNodemeta
	LocDetached
)

type InventoryLocation struct {
	Kind   InventoryLocationKind
	Name   string // Player/Detached
	X, Y, Z int32 // Nodemeta
}

func (l InventoryLocation) String() string {
	switch l.Kind {
	case LocUndefined:
		return "undefined"
	case LocCurrentPlayer:
		return "current_player"
	case LocPlayer:
		return "player:" + l.Name
	case LocNodemeta:
		return "nodemeta:" + strconv.Itoa(int(l.X)) + "," + strconv.Itoa(int(l.Y)) + "," + strconv.Itoa(int(l.Z))
	case LocDetached:
		return "detached:" + l.Name
	default:
		return "undefined"
	}
}

func ParseInventoryLocation(tok []byte) (InventoryLocation, error) {
	s := string(tok)
	switch {
	case s == "undefined":
		return InventoryLocation{Kind: LocUndefined}, nil
	case s == "current_player":
		return InventoryLocation{Kind: LocCurrentPlayer}, nil
	case len(s) > 7 && s[:7] == "player:":
		return InventoryLocation{Kind: LocPlayer, Name: s[7:]}, nil
	case len(s) > 9 && s[:9] == "nodemeta:":
		var x, y, z int32
		if _, err := fmtSscanXYZ(s[9:], &x, &y, &z); err != nil {
			return InventoryLocation{}, errors.Wrap(ErrInvalidValue, "bad nodemeta location")
		}
		return InventoryLocation{Kind: LocNodemeta, X: x, Y: y, Z: z}, nil
	case len(s) > 9 && s[:9] == "detached:":
		return InventoryLocation{Kind: LocDetached, Name: s[9:]}, nil
	default:
		return InventoryLocation{}, errors.Wrap(ErrInvalidValue, "unknown inventory location")
	}
}

func fmtSscanXYZ(s string, x, y, z *int32) (int, error) {
	var a, b, c int64
	parts := splitComma(s)
	if len(parts) != 3 {
		return 0, errors.Wrap(ErrInvalidValue, "expected x,y,z")
	}
	var err error
	if a, err = strconv.ParseInt(parts[0], 10, 32); err != nil {
		return 0, err
	}
	if b, err = strconv.ParseInt(parts[1], 10, 32); err != nil {
		return 0, err
	}
	if c, err = strconv.ParseInt(parts[2], 10, 32); err != nil {
		return 0, err
	}
	*x, *y, *z = int32(a), int32(b), int32(c)
	return 3, nil
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// InventoryActionVerb is the leading token of an InventoryAction line.
type InventoryActionVerb int

const (
	ActionMove InventoryActionVerb = iota
	ActionMoveSomewhere
	ActionCraft
	ActionDrop
)

// InventoryAction is space-separated tokens: leading verb plus embedded
// InventoryLocation tokens. Move carries a trailing "to_i"; MoveSomewhere
// omits it. Craft is followed by exactly one trailing space (an
// intentional quirk preserved from the source).
type InventoryAction struct {
	Verb InventoryActionVerb

	// Move / MoveSomewhere / Drop
	FromInv   InventoryLocation
	FromList  string
	FromIndex int32
	Count     int32
	ToInv     InventoryLocation
	ToList    string
	ToIndex   int32 // Move only

	// Craft
	CraftCount int32
}

func (a InventoryAction) String() string {
	switch a.Verb {
	case ActionMove:
		return "Move " + a.FromInv.String() + " " + a.FromList + " " + strconv.Itoa(int(a.FromIndex)) +
			" " + a.ToInv.String() + " " + a.ToList + " " + strconv.Itoa(int(a.ToIndex))
	case ActionMoveSomewhere:
		return "MoveSomewhere " + a.FromInv.String() + " " + a.FromList + " " + strconv.Itoa(int(a.FromIndex)) +
			" " + strconv.Itoa(int(a.Count)) + " " + a.ToInv.String() + " " + a.ToList
	case ActionDrop:
		return "Drop " + a.FromInv.String() + " " + a.FromList + " " + strconv.Itoa(int(a.FromIndex)) +
			" " + strconv.Itoa(int(a.Count))
	case ActionCraft:
		return "Craft " + strconv.Itoa(int(a.CraftCount)) + " "
	default:
		return ""
	}
}

func ParseInventoryAction(line []byte) (InventoryAction, error) {
	words := SplitByWhitespace(line)
	if len(words) == 0 {
		return InventoryAction{}, errors.Wrap(ErrInvalidValue, "empty inventory action")
	}
	verb := string(words[0])
	atoi := func(b []byte) (int32, error) {
		n, err := strconv.ParseInt(string(b), 10, 32)
		return int32(n), err
	}
	switch verb {
	case "Move", "MoveSomewhere":
		if len(words) < 6 {
			return InventoryAction{}, errors.Wrap(ErrInvalidValue, "truncated Move action")
		}
		fromInv, err := ParseInventoryLocation(words[1])
		if err != nil {
			return InventoryAction{}, err
		}
		fromIndex, err := atoi(words[3])
		if err != nil {
			return InventoryAction{}, err
		}
		if verb == "Move" {
			if len(words) != 7 {
				return InventoryAction{}, errors.Wrap(ErrInvalidValue, "truncated Move action")
			}
			toInv, err := ParseInventoryLocation(words[4])
			if err != nil {
				return InventoryAction{}, err
			}
			toIndex, err := atoi(words[6])
			if err != nil {
				return InventoryAction{}, err
			}
			return InventoryAction{
				Verb: ActionMove, FromInv: fromInv, FromList: string(words[2]), FromIndex: fromIndex,
				ToInv: toInv, ToList: string(words[5]), ToIndex: toIndex,
			}, nil
		}
		count, err := atoi(words[4])
		if err != nil {
			return InventoryAction{}, err
		}
		toInv, err := ParseInventoryLocation(words[5])
		if err != nil {
			return InventoryAction{}, err
		}
		return InventoryAction{
			Verb: ActionMoveSomewhere, FromInv: fromInv, FromList: string(words[2]), FromIndex: fromIndex,
			Count: count, ToInv: toInv, ToList: string(words[6]),
		}, nil
	case "Drop":
		if len(words) < 5 {
			return InventoryAction{}, errors.Wrap(ErrInvalidValue, "truncated Drop action")
		}
		fromInv, err := ParseInventoryLocation(words[1])
		if err != nil {
			return InventoryAction{}, err
		}
		fromIndex, err := atoi(words[3])
		if err != nil {
			return InventoryAction{}, err
		}
		count, err := atoi(words[4])
		if err != nil {
			return InventoryAction{}, err
		}
		return InventoryAction{
			Verb: ActionDrop, FromInv: fromInv, FromList: string(words[2]), FromIndex: fromIndex,
			Count: count,
		}, nil
	case "Craft":
		if len(words) < 2 {
			return InventoryAction{}, errors.Wrap(ErrInvalidValue, "truncated Craft action")
		}
		count, err := atoi(words[1])
		if err != nil {
			return InventoryAction{}, err
		}
		return InventoryAction{Verb: ActionCraft, CraftCount: count}, nil
	default:
		return InventoryAction{}, errors.Wrap(ErrInvalidValue, "unknown inventory action verb")
	}
}
