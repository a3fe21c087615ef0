package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// FormatVersion is written into every encoded update. Decoders reject
// other versions.
const FormatVersion = 1

type wireUpdate struct {
	Version  uint8      `msgpack:"v"`
	Nodes    []wireNode `msgpack:"nodes"`
	Tree     *wireTree  `msgpack:"tree,omitempty"`
	FocusSet bool       `msgpack:"focus_set,omitempty"`
	Focus    []byte     `msgpack:"focus,omitempty"` // zero bytes clear the focus
}

type wireTree struct {
	Root         []byte `msgpack:"root"`
	RootScroller []byte `msgpack:"root_scroller,omitempty"`
}

type wireNode struct {
	ID      []byte                        `msgpack:"id"`
	Role    string                        `msgpack:"role"`
	Actions []string                      `msgpack:"actions,omitempty"`
	Props   map[string]msgpack.RawMessage `msgpack:"props,omitempty"`
}

type wireSelection struct {
	AnchorNode  []byte `msgpack:"anchor_node"`
	AnchorIndex int    `msgpack:"anchor_index"`
	FocusNode   []byte `msgpack:"focus_node"`
	FocusIndex  int    `msgpack:"focus_index"`
}

type wireCustomAction struct {
	ID          int32  `msgpack:"id"`
	Description string `msgpack:"description"`
}

// EncodeUpdate serializes u. Map keys are sorted, so equal updates encode
// to equal bytes.
func EncodeUpdate(u *tree.Update) ([]byte, error) {
	w, err := toWire(u)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	err = enc.Encode(w)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeUpdate parses an update produced by EncodeUpdate. Nodes are
// interned in classes, which may be nil.
func DecodeUpdate(data []byte, classes *node.ClassSet) (*tree.Update, error) {
	var r bytes.Reader
	r.Reset(data)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	var w wireUpdate
	err := dec.Decode(&w)
	msgpack.PutDecoder(dec)
	if err != nil {
		return nil, types.Wrap(types.ErrKindFormat, err, "decode update")
	}
	if r.Len() != 0 {
		return nil, types.Errorf(types.ErrKindFormat, "decode update: %d trailing bytes", r.Len())
	}
	return fromWire(&w, classes)
}

// Encoder writes a stream of updates.
type Encoder struct {
	enc *msgpack.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return &Encoder{enc: enc}
}

// Encode writes one update.
func (e *Encoder) Encode(u *tree.Update) error {
	w, err := toWire(u)
	if err != nil {
		return err
	}
	if err := e.enc.Encode(w); err != nil {
		return fmt.Errorf("encode update: %w", err)
	}
	return nil
}

// Decoder reads a stream of updates.
type Decoder struct {
	dec     *msgpack.Decoder
	classes *node.ClassSet
}

// NewDecoder returns a Decoder reading from r. Nodes are interned in
// classes, which may be nil.
func NewDecoder(r io.Reader, classes *node.ClassSet) *Decoder {
	return &Decoder{dec: msgpack.NewDecoder(r), classes: classes}
}

// Decode reads the next update. It returns io.EOF only at a clean end of
// stream; a record cut short fails with a format error wrapping
// io.ErrUnexpectedEOF.
func (d *Decoder) Decode() (*tree.Update, error) {
	if _, err := d.dec.PeekCode(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, types.Wrap(types.ErrKindFormat, err, "decode update")
	}
	var w wireUpdate
	if err := d.dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, types.Wrap(types.ErrKindFormat, err, "decode update")
	}
	return fromWire(&w, d.classes)
}

func toWire(u *tree.Update) (*wireUpdate, error) {
	if u == nil {
		u = tree.NewUpdate()
	}
	w := &wireUpdate{Version: FormatVersion, Nodes: make([]wireNode, 0, len(u.Nodes))}
	for _, p := range u.Nodes {
		if p.Node == nil {
			return nil, types.Errorf(types.ErrKindFormat, "encode update: node %s is nil", p.ID)
		}
		wn, err := encodeNode(p.ID, p.Node)
		if err != nil {
			return nil, err
		}
		w.Nodes = append(w.Nodes, wn)
	}
	if u.Tree != nil {
		w.Tree = &wireTree{Root: idBytes(u.Tree.Root)}
		if !u.Tree.RootScroller.IsZero() {
			w.Tree.RootScroller = idBytes(u.Tree.RootScroller)
		}
	}
	if u.Focus != nil {
		w.FocusSet = true
		w.Focus = idBytes(*u.Focus)
	}
	return w, nil
}

func encodeNode(id types.NodeID, n *node.Node) (wireNode, error) {
	wn := wireNode{ID: idBytes(id), Role: n.Role().String()}
	for _, a := range n.Actions().Actions() {
		wn.Actions = append(wn.Actions, a.String())
	}
	if n.Len() == 0 {
		return wn, nil
	}
	wn.Props = make(map[string]msgpack.RawMessage, n.Len())
	for prop, v := range n.Properties() {
		raw, err := msgpack.Marshal(encodeValue(prop, v))
		if err != nil {
			return wireNode{}, fmt.Errorf("encode node %s: %s: %w", id, prop, err)
		}
		wn.Props[prop.String()] = raw
	}
	return wn, nil
}

func fromWire(w *wireUpdate, classes *node.ClassSet) (*tree.Update, error) {
	if w.Version != FormatVersion {
		return nil, types.Errorf(types.ErrKindFormat, "decode update: unsupported version %d", w.Version)
	}
	u := tree.NewUpdate()
	for i := range w.Nodes {
		id, n, err := decodeNode(&w.Nodes[i], classes)
		if err != nil {
			return nil, fmt.Errorf("decode update: node %d: %w", i, err)
		}
		u.Add(id, n)
	}
	if w.Tree != nil {
		root, err := types.NodeIDFromBytes(w.Tree.Root)
		if err != nil {
			return nil, fmt.Errorf("decode update: root: %w", err)
		}
		info := tree.Info{Root: root}
		if len(w.Tree.RootScroller) > 0 {
			if info.RootScroller, err = types.NodeIDFromBytes(w.Tree.RootScroller); err != nil {
				return nil, fmt.Errorf("decode update: root scroller: %w", err)
			}
		}
		u.SetTree(info)
	}
	if w.FocusSet {
		focus, err := focusFromBytes(w.Focus)
		if err != nil {
			return nil, fmt.Errorf("decode update: focus: %w", err)
		}
		u.Focus = &focus
	}
	return u, nil
}

func decodeNode(wn *wireNode, classes *node.ClassSet) (types.NodeID, *node.Node, error) {
	id, err := types.NodeIDFromBytes(wn.ID)
	if err != nil {
		return types.InvalidNodeID, nil, err
	}
	role, err := node.ParseRole(wn.Role)
	if err != nil {
		return id, nil, err
	}
	b := node.NewBuilder(role)
	for _, name := range wn.Actions {
		a, err := node.ParseAction(name)
		if err != nil {
			return id, nil, err
		}
		b.AddAction(a)
	}
	for name, raw := range wn.Props {
		prop, ok := node.LookupProperty(name)
		if !ok {
			return id, nil, types.Errorf(types.ErrKindFormat, "unknown property %q", name)
		}
		v, err := decodeValue(prop, raw)
		if err != nil {
			return id, nil, fmt.Errorf("%s: %w", prop, err)
		}
		if err := b.Set(prop, v); err != nil {
			return id, nil, err
		}
	}
	return id, b.Build(classes), nil
}

func idBytes(id types.NodeID) []byte { return append([]byte(nil), id[:]...) }

// focusFromBytes accepts 16 zero bytes (or none) as a cleared focus.
func focusFromBytes(b []byte) (types.NodeID, error) {
	if len(b) == 0 || bytes.Equal(b, types.InvalidNodeID[:]) {
		return types.InvalidNodeID, nil
	}
	return types.NodeIDFromBytes(b)
}
