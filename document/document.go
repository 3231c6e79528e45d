// Package document implements the binary container protocol: header,
// version, node list, footer, and the Objects/Connections materialization
// pass that turns a parsed Node tree into the connection-resolved typed
// object graph (package object).
package document

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/g3n/fbxkit/diagnostic"
	"github.com/g3n/fbxkit/fbxerr"
	"github.com/g3n/fbxkit/fbxio"
	"github.com/g3n/fbxkit/internal/flog"
	"github.com/g3n/fbxkit/node"
	"github.com/g3n/fbxkit/object"
	"github.com/g3n/fbxkit/property"
	"github.com/g3n/fbxkit/tokens"
)

var log = flog.New("document", flog.Default)

// header is the 23-byte file preamble: the 21-byte ASCII magic (including
// its own trailing NUL) followed by 0x1A, 0x00.
var header = []byte{
	'K', 'a', 'y', 'd', 'a', 'r', 'a', ' ', 'F', 'B', 'X', ' ', 'B', 'i', 'n', 'a', 'r', 'y', ' ', ' ', 0x00,
	0x1A, 0x00,
}

var footerMagic1 = []byte{0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66, 0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e}
var footerMagic2 = []byte{0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e, 0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b}

// headerLen is the byte offset of the version field; version ends at 27,
// where the root node list begins, per the container protocol.
const headerLen = uint32(len(header))

// Document owns a Document's full in-memory state: the raw node arena (as
// root Nodes), the typed object arena, and the derived root object/take
// lists. Every Node and Object reachable from a Document is owned by it;
// unloading the Document invalidates all derived pointers (§3 lifecycles).
type Document struct {
	Version int32
	Roots   []*node.Node

	Root        *object.Model
	RootObjects []object.Object
	Stacks      []*object.AnimationStack
	CurrentTake *object.AnimationStack

	Diagnostics *diagnostic.Sink

	cfg     config
	objects map[int64]object.Object
	order   []int64
	nextID  int64
}

// New creates an empty Document with a synthetic RootModel at id 0, ready
// for programmatic graph construction ahead of a write.
func New(opts ...Option) *Document {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &Document{
		Diagnostics: diagnostic.NewSink(),
		cfg:         cfg,
		objects:     make(map[int64]object.Object),
		nextID:      1,
	}
	root := object.Create(tokens.ClassModel, tokens.SubClassRoot).(*object.Model)
	root.SetID(0)
	root.SetName("RootNode")
	d.Root = root
	d.objects[0] = root
	d.order = append(d.order, 0)
	return d
}

// AddObject registers an already-constructed Object under a freshly
// allocated id, for programmatic graph construction.
func (d *Document) AddObject(o object.Object) {
	o.SetID(d.nextID)
	d.nextID++
	d.objects[o.ID()] = o
	d.order = append(d.order, o.ID())
}

// FindObject resolves a display name (the packed "<name>\x00\x01<class>"
// form returned by object.DisplayName) to the object that owns it,
// including the magic legacy root alias (§9). Returns nil on no match or
// ambiguity.
func (d *Document) FindObject(displayName string) object.Object {
	if displayName == tokens.LegacySceneRootName {
		return d.Root
	}
	var found object.Object
	matches := 0
	for _, id := range d.order {
		o := d.objects[id]
		if object.DisplayName(o) == displayName {
			found = o
			matches++
		}
	}
	if matches != 1 {
		return nil
	}
	return found
}

// ReadFBX parses a binary FBX stream into a Document, per the container
// protocol (§4.3). Parse failures abort and return a nil Document alongside
// the error; recoverable anomalies accumulate on Diagnostics
// instead of aborting.
func ReadFBX(r io.Reader, opts ...Option) (*Document, error) {
	d := New(opts...)

	got, err := fbxio.ReadBytes(r, len(header))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(got, header) {
		return nil, fmt.Errorf("header: %w", fbxerr.BadMagic)
	}

	version, err := fbxio.ReadU32(r)
	if err != nil {
		return nil, err
	}
	if int32(version) > d.cfg.maxVersion {
		return nil, fmt.Errorf("version %d exceeds max %d: %w", version, d.cfg.maxVersion, fbxerr.UnsupportedVersion)
	}
	d.Version = int32(version)

	offset := headerLen + 4
	for {
		n, consumed, err := node.ReadFrom(r, offset)
		if err != nil {
			return nil, err
		}
		offset += consumed
		if n.IsNull() {
			break
		}
		d.Roots = append(d.Roots, n)
	}

	if err := readFooter(r); err != nil {
		return nil, err
	}

	d.materialize()
	return d, nil
}

func readFooter(r io.Reader) error {
	// The magic1/padding/version/padding block's own length is not
	// position-independent; footers are read positionally by the caller's
	// stream, so only the two magics are verified here, matching §4.3's
	// "intervening padding is advisory" note.
	magic1, err := fbxio.ReadBytes(r, 16)
	if err != nil {
		return err
	}
	if !bytes.Equal(magic1, footerMagic1) {
		return fmt.Errorf("footer magic1: %w", fbxerr.BadMagic)
	}
	// Padding to the next 16-byte boundary (0 to 15 bytes), plus the fixed
	// zero/version/120 zero-byte block (4 + 4 + 120 bytes), precedes the
	// second magic in a canonical writer; accept anything up to it rather than
	// recompute the exact pad count, which depends on absolute file offset
	// the stream does not expose here.
	rest, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("footer: %w", fbxerr.Truncated)
	}
	if bytes.LastIndex(rest, footerMagic2) < 0 {
		return fmt.Errorf("footer magic2: %w", fbxerr.BadMagic)
	}
	return nil
}

// materialize runs the Objects/Connections pass (§4.3 steps 1-3): allocate
// typed objects, resolve connections into reciprocal links, then invoke
// constructObject on every object in id order.
func (d *Document) materialize() {
	objectsNode := findTop(d.Roots, tokens.Objects)
	if objectsNode != nil {
		for _, n := range objectsNode.Children {
			obj := allocateFromNode(n)
			if obj == nil {
				continue
			}
			d.objects[obj.ID()] = obj
			d.order = append(d.order, obj.ID())
		}
	}

	connectionsNode := findTop(d.Roots, tokens.Connections)
	if connectionsNode != nil {
		for _, c := range connectionsNode.Children {
			d.resolveConnection(c)
		}
	}

	ordered := make([]int64, len(d.order))
	copy(ordered, d.order)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	resolve := func(id int64) object.Object { return d.objects[id] }
	for _, id := range ordered {
		object.ConstructObject(d.objects[id], resolve, d.Diagnostics)
	}

	for _, id := range ordered {
		o := d.objects[id]
		if id != 0 && len(o.Parents()) == 0 {
			d.RootObjects = append(d.RootObjects, o)
		}
		if stack, ok := o.(*object.AnimationStack); ok {
			d.Stacks = append(d.Stacks, stack)
		}
	}
	if len(d.Stacks) > 0 {
		d.CurrentTake = d.Stacks[0]
	}
}

func findTop(roots []*node.Node, name string) *node.Node {
	for _, n := range roots {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// allocateFromNode implements §4.3 step 1: an Objects/* child's own node
// name is the class token; its first property is the id, its second the
// packed display name, and its last the subclass token.
func allocateFromNode(n *node.Node) object.Object {
	if len(n.Properties) < 2 {
		return nil
	}
	id, ok := n.Properties[0].Int64()
	if !ok {
		return nil
	}
	displayName, _ := n.Properties[1].String_()
	name := splitDisplayName(displayName)
	var subclass string
	if len(n.Properties) >= 3 {
		subclass, _ = n.Properties[len(n.Properties)-1].String_()
	}

	obj := object.Create(n.Name, subclass)
	obj.SetID(id)
	obj.SetName(name)
	obj.SetNode(n)
	return obj
}

func splitDisplayName(displayName string) string {
	for i := 0; i+len(tokens.DisplayNameSeparator) <= len(displayName); i++ {
		if displayName[i:i+len(tokens.DisplayNameSeparator)] == tokens.DisplayNameSeparator {
			return displayName[:i]
		}
	}
	return displayName
}

// resolveConnection implements §4.3 step 2: OO links both ways, OP links
// both ways and additionally records the driven property name on an
// AnimationCurveNode target. Endpoints may be ids (modern) or display-name
// strings (legacy, §9), gated by WithLegacyObjectNames.
func (d *Document) resolveConnection(c *node.Node) {
	if c.Name != tokens.C || len(c.Properties) < 3 {
		return
	}
	kind, _ := c.Properties[0].String_()
	child := d.resolveEndpoint(c.Properties[1])
	parent := d.resolveEndpoint(c.Properties[2])
	if child == nil || parent == nil {
		log.Warnf("connection %s: unresolved endpoint", kind)
		d.Diagnostics.Warn(fbxerr.BadConnection, fmt.Sprintf("connection %s: unresolved endpoint", kind))
		return
	}
	object.Connect(parent, child)
	if kind == tokens.ConnOP && len(c.Properties) >= 4 {
		if cn, ok := child.(*object.AnimationCurveNode); ok {
			propName, _ := c.Properties[3].String_()
			cn.SetTarget(parent, propName)
		}
	}
}

func (d *Document) resolveEndpoint(p property.Value) object.Object {
	if id, ok := p.Int64(); ok {
		return d.objects[id]
	}
	if name, ok := p.String_(); ok && d.cfg.legacyObjectNames {
		return d.FindObject(name)
	}
	return nil
}

// WriteFBX serializes the Document as a binary FBX stream: magic, version,
// freshly-built scaffolding and Objects/Connections nodes, the terminating
// null node, then the footer.
func (d *Document) WriteFBX(w io.Writer) error {
	if _, err := w.Write(header); err != nil {
		return err
	}
	if err := fbxio.WriteU32(w, uint32(d.Version)); err != nil {
		return err
	}

	roots := d.buildWriteRoots()
	offset := headerLen + 4
	for _, n := range roots {
		written, err := n.WriteTo(w, offset)
		if err != nil {
			return err
		}
		offset += written
	}
	if _, err := (*node.Node)(nil).WriteTo(w, offset); err != nil {
		return err
	}
	offset += 13

	return writeFooter(w, d.Version, offset)
}

// buildWriteRoots assembles the top-level node list fresh on every write:
// scaffolding nodes plus Objects/Connections built from constructNodes and
// constructLinks over every live object, in allocation order (§4.3 write
// path).
func (d *Document) buildWriteRoots() []*node.Node {
	object.AnimationStopBugCompat = d.cfg.animationStopBug

	fileID := node.NewWithProps(tokens.FileId, property.NewBlob(make([]byte, 16)))
	creationTime := node.NewWithProps(tokens.CreationTime, property.NewString(""))
	creator := node.NewWithProps(tokens.Creator, property.NewString("fbxkit"))

	headerExt := node.New(tokens.FBXHeaderExtension)
	globalSettings := node.New(tokens.GlobalSettings)
	documents := node.New(tokens.Documents)
	references := node.New(tokens.References)
	definitions := node.New(tokens.Definitions)

	objectsNode := node.New(tokens.Objects)
	connectionsNode := node.New(tokens.Connections)
	takesNode := node.New(tokens.Takes)

	for _, id := range d.order {
		o := d.objects[id]

		// The RootModel (id 0) is synthetic: it owns outgoing connections to
		// top-level objects but is never itself serialized as an Objects entry.
		if id != 0 {
			n := o.Node()
			if n == nil {
				n = node.New(object.ClassName(o))
				o.SetNode(n)
			}
			n.Properties = []property.Value{
				property.NewInt64(o.ID()),
				property.NewString(o.Name() + tokens.DisplayNameSeparator + object.ClassName(o)),
				property.NewString(object.SubClassName(o)),
			}
			n.Children = nil // constructNodes below fully regenerates them from typed fields.
			object.ConstructNodes(o)
			objectsNode.AddChild(n)
		}
		object.ConstructLinks(o, connectionsNode)
	}
	for _, stack := range d.Stacks {
		takesNode.CreateChild(tokens.ClassAnimationStack, property.NewString(stack.Name()))
	}

	return []*node.Node{
		fileID, creationTime, creator,
		headerExt, globalSettings, documents, references, definitions,
		objectsNode, connectionsNode, takesNode,
	}
}

func writeFooter(w io.Writer, version int32, offset uint32) error {
	if _, err := w.Write(footerMagic1); err != nil {
		return err
	}
	offset += uint32(len(footerMagic1))

	pad := (16 - offset%16) % 16
	if _, err := w.Write(make([]byte, pad)); err != nil {
		return err
	}
	if err := fbxio.WriteU32(w, 0); err != nil {
		return err
	}
	if err := fbxio.WriteU32(w, uint32(version)); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 120)); err != nil {
		return err
	}
	_, err := w.Write(footerMagic2)
	return err
}

// Dump writes the textual-dump form of the Document (§4.10): a header
// comment line, then every root node except the binary-only scaffolding
// (FileId, CreationTime, Creator).
func (d *Document) Dump(w io.Writer) error {
	fmt.Fprintf(w, "; FBX %d.%d.0 project file\n\n", d.Version/1000, (d.Version/100)%10)
	for _, n := range d.Roots {
		switch n.Name {
		case tokens.FileId, tokens.CreationTime, tokens.Creator:
			continue
		}
		n.Dump(w, 0)
	}
	return nil
}

func init() {
	log.SetLevel(flog.WARN)
}
