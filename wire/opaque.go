package wire

import "github.com/pkg/errors"

// The world-format payloads below (full node/item definitions, active
// object creation messages, particle spawner parameters, node metadata
// diffs, lighting curves) are deeply nested content-description trees
// whose sub-schemas churn across Minetest versions independently of the
// network framing this package is responsible for. Each is captured here
// as a round-tripping opaque region: the surrounding command still gets
// its exact length/compression framing (ZLibCompressed, Array32, and so
// on), but the interior is kept as raw bytes rather than hand-transcribed
// field-by-field. See DESIGN.md for the per-type rationale.

// OpaquePayload is a byte blob that consumes the rest of whatever region
// it is decoded within (a Wrapped16/32 slice, a decompressed buffer, ...).
type OpaquePayload struct {
	Raw []byte
}

func WriteOpaquePayload(w Writer, v OpaquePayload) error {
	return w.WriteBytes(v.Raw)
}

func ReadOpaquePayload(r *Reader) (OpaquePayload, error) {
	return OpaquePayload{Raw: append([]byte(nil), r.TakeAll()...)}, nil
}

type NodeDefManager = OpaquePayload
type ItemdefList = OpaquePayload
type MapBlock = OpaquePayload
type MapNode = OpaquePayload
type AbsNodeMetadataList = OpaquePayload
type AddedObject = OpaquePayload
type ActiveObjectMessage = OpaquePayload
type ParticleParameters = OpaquePayload
type AddParticleSpawnerLegacy = OpaquePayload
type SkyboxParams = OpaquePayload
type MinimapModeList = OpaquePayload
type Lighting = OpaquePayload
type PointedThing = OpaquePayload

func WriteNodeDefManager(w Writer, v NodeDefManager) error             { return WriteOpaquePayload(w, v) }
func ReadNodeDefManager(r *Reader) (NodeDefManager, error)              { return ReadOpaquePayload(r) }
func WriteItemdefList(w Writer, v ItemdefList) error                    { return WriteOpaquePayload(w, v) }
func ReadItemdefList(r *Reader) (ItemdefList, error)                    { return ReadOpaquePayload(r) }
// mapBlockHeaderSize is the plain (uncompressed) flags + lighting_complete
// + content_width + params_width prefix every MapBlock carries ahead of
// its compressed regions, for the protocol versions this package targets
// (ser_fmt >= 27, where lighting_complete is always present).
const mapBlockHeaderSize = 5

// WriteMapBlock always emits the ser_fmt=29 whole-block zstd envelope,
// regardless of the context's SerFmt: this package never encodes for a
// peer that negotiated a serialization format below the one it sends.
// v.Raw is expected to already be the header-plus-nodes-plus-metadata
// bytes, uncompressed.
func WriteMapBlock(w Writer, v MapBlock) error {
	return WriteZstdWrapped(w, func(w Writer) error { return w.WriteBytes(v.Raw) })
}

// ReadMapBlock decodes a MapBlock using the envelope ser_fmt dictates:
// ser_fmt>=29 wraps the entire header+nodes+metadata block in one zstd
// stream; ser_fmt==28 leaves the header plain and compresses the nodes
// and node metadata regions as two independent back-to-back zlib
// streams. Below 28 the format isn't supported and decoding fails
// cleanly rather than misreading bytes as something else.
func ReadMapBlock(r *Reader) (MapBlock, error) {
	switch {
	case r.ctx.SerFmt >= 29:
		return ReadZstdWrapped(r, ReadOpaquePayload)
	case r.ctx.SerFmt == 28:
		header, err := r.Take(mapBlockHeaderSize)
		if err != nil {
			return MapBlock{}, err
		}
		nodes, err := readZlibRegion(r)
		if err != nil {
			return MapBlock{}, err
		}
		metadata, err := readZlibRegion(r)
		if err != nil {
			return MapBlock{}, err
		}
		raw := make([]byte, 0, len(header)+len(nodes)+len(metadata))
		raw = append(raw, header...)
		raw = append(raw, nodes...)
		raw = append(raw, metadata...)
		return MapBlock{Raw: raw}, nil
	default:
		return MapBlock{}, errors.Wrap(ErrInvalidValue, "wire: map block serialization format below 28 is not supported")
	}
}
func WriteMapNode(w Writer, v MapNode) error                            { return w.WriteBytes(v.Raw) }
func ReadMapNode(r *Reader) (MapNode, error) {
	b, err := r.Take(mapNodeSize)
	if err != nil {
		return MapNode{}, err
	}
	return MapNode{Raw: append([]byte(nil), b...)}, nil
}

// mapNodeSize matches the fixed-width content id + param1 + param2
// encoding of a single node.
const mapNodeSize = 4

func WriteAbsNodeMetadataList(w Writer, v AbsNodeMetadataList) error { return WriteOpaquePayload(w, v) }
func ReadAbsNodeMetadataList(r *Reader) (AbsNodeMetadataList, error) { return ReadOpaquePayload(r) }
func WriteAddedObject(w Writer, v AddedObject) error {
	return WriteWrapped32(w, func(w Writer) error { return w.WriteBytes(v.Raw) })
}
func ReadAddedObject(r *Reader) (AddedObject, error) {
	return ReadWrapped32(r, ReadOpaquePayload)
}
func WriteActiveObjectMessage(w Writer, v ActiveObjectMessage) error {
	return WriteWrapped16(w, func(w Writer) error { return w.WriteBytes(v.Raw) })
}
func ReadActiveObjectMessage(r *Reader) (ActiveObjectMessage, error) {
	return ReadWrapped16(r, ReadOpaquePayload)
}
func WriteParticleParameters(w Writer, v ParticleParameters) error { return WriteOpaquePayload(w, v) }
func ReadParticleParameters(r *Reader) (ParticleParameters, error) { return ReadOpaquePayload(r) }
func WriteAddParticleSpawnerLegacy(w Writer, v AddParticleSpawnerLegacy) error {
	return WriteOpaquePayload(w, v)
}
func ReadAddParticleSpawnerLegacy(r *Reader) (AddParticleSpawnerLegacy, error) {
	return ReadOpaquePayload(r)
}
func WriteSkyboxParams(w Writer, v SkyboxParams) error       { return WriteOpaquePayload(w, v) }
func ReadSkyboxParams(r *Reader) (SkyboxParams, error)       { return ReadOpaquePayload(r) }
func WriteMinimapModeList(w Writer, v MinimapModeList) error { return WriteOpaquePayload(w, v) }
func ReadMinimapModeList(r *Reader) (MinimapModeList, error) { return ReadOpaquePayload(r) }
func WriteLighting(w Writer, v Lighting) error               { return WriteOpaquePayload(w, v) }
func ReadLighting(r *Reader) (Lighting, error)               { return ReadOpaquePayload(r) }
func WriteWrappedPointedThing(w Writer, v PointedThing) error {
	return WriteWrapped32(w, func(w Writer) error { return w.WriteBytes(v.Raw) })
}
func ReadWrappedPointedThing(r *Reader) (PointedThing, error) {
	return ReadWrapped32(r, ReadOpaquePayload)
}

// AuthMechsBitset is a bitset of supported SRP auth mechanisms; wire
// framing only, no cryptographic meaning attached in this package.
type AuthMechsBitset uint32

func WriteAuthMechsBitset(w Writer, v AuthMechsBitset) error { return WriteU32(w, uint32(v)) }
func ReadAuthMechsBitset(r *Reader) (AuthMechsBitset, error) {
	v, err := ReadU32(r)
	return AuthMechsBitset(v), err
}

// InteractAction enumerates the Interact command's leading action tag.
type InteractAction uint8

const (
	InteractStartDigging InteractAction = iota
	InteractStopDigging
	InteractDiggingCompleted
	InteractPlace
	InteractUse
	InteractActivate
)

func WriteInteractAction(w Writer, v InteractAction) error { return WriteU8(w, uint8(v)) }
func ReadInteractAction(r *Reader) (InteractAction, error) {
	v, err := ReadU8(r)
	return InteractAction(v), err
}
