package keymap

// Blob geometry: four 32-byte layer records back to back.
const (
	NumLayers   = 4
	LayerBytes  = 32
	BlobBytes   = NumLayers * LayerBytes
	maxSeqLayer = NumLayers - 1
)

// slotFields maps each event to the offsets of its modifier and keycode
// bytes within a 32-byte layer record. The persisted layout interleaves the
// switch-rotation slots with the color triples, so those two slots are the
// only ones whose bytes are not adjacent.
var slotFields = [NumEvents]struct{ mod, key int }{
	Key1:             {0, 1},
	Key2:             {2, 3},
	Key3:             {4, 5},
	EncoderSwitch:    {6, 7},
	EncoderCW:        {8, 9},
	EncoderCCW:       {10, 11},
	Key12:            {16, 17},
	Key23:            {18, 19},
	Key13:            {20, 21},
	EncoderSwitchCW:  {27, 22},
	EncoderSwitchCCW: {31, 23},
}

// Color triple and mode offsets within a layer record.
const (
	offForeground = 12
	offMaxLayers  = 15
	offFade       = 24
	offBackground = 28
)

// Decode unpacks a persisted blob into a keymap, applying the default-fill
// rules: an all-zero foreground becomes DefaultForeground, an all-zero
// background becomes DefaultBackground, and any zero fade channel becomes 1
// so a fade always makes progress. Short input reads as zeroes; Decode never
// fails.
func Decode(b []byte) Map {
	m := DecodeStored(b)
	for i := range m.Layers {
		fillDefaults(&m.Layers[i])
	}
	if m.MaxLayers > maxSeqLayer {
		m.MaxLayers = maxSeqLayer
	}
	return m
}

// DecodeStored unpacks a blob exactly as stored, with no default filling
// and no clamping. The firmware uses Decode; this is for tooling that
// reports what the bytes actually say.
func DecodeStored(b []byte) Map {
	var blob [BlobBytes]byte
	copy(blob[:], b)

	var m Map
	for i := range m.Layers {
		rec := blob[i*LayerBytes : (i+1)*LayerBytes]
		l := &m.Layers[i]
		for ev := Event(0); ev < NumEvents; ev++ {
			f := slotFields[ev]
			l.Slots[ev] = Slot{Mod: rec[f.mod], Key: rec[f.key]}
		}
		l.Foreground = rgbAt(rec, offForeground)
		l.Background = rgbAt(rec, offBackground)
		l.Fade = rgbAt(rec, offFade)
	}

	// The sequence mode lives in layer 0 only.
	m.MaxLayers = blob[offMaxLayers]
	return m
}

// Encode packs a keymap into its persisted form. Layer colors are written
// through as stored, so a Map produced by Decode round-trips only if the
// source blob did not rely on defaulting.
func Encode(m Map) [BlobBytes]byte {
	var blob [BlobBytes]byte
	for i := range m.Layers {
		rec := blob[i*LayerBytes : (i+1)*LayerBytes]
		l := &m.Layers[i]
		for ev := Event(0); ev < NumEvents; ev++ {
			f := slotFields[ev]
			rec[f.mod] = l.Slots[ev].Mod
			rec[f.key] = l.Slots[ev].Key
		}
		putRGB(rec, offForeground, l.Foreground)
		putRGB(rec, offBackground, l.Background)
		putRGB(rec, offFade, l.Fade)
	}
	blob[offMaxLayers] = m.MaxLayers
	return blob
}

// ByteReader reads single bytes of persisted keymap memory.
type ByteReader interface {
	ReadByte(off int) byte
}

// Load reads the whole blob one byte at a time and decodes it.
func Load(mem ByteReader) Map {
	var b [BlobBytes]byte
	for i := range b {
		b[i] = mem.ReadByte(i)
	}
	return Decode(b[:])
}

func rgbAt(rec []byte, off int) RGB {
	return RGB{R: rec[off], G: rec[off+1], B: rec[off+2]}
}

func putRGB(rec []byte, off int, c RGB) {
	rec[off] = c.R
	rec[off+1] = c.G
	rec[off+2] = c.B
}

func fillDefaults(l *Layer) {
	if l.Foreground == (RGB{}) {
		l.Foreground = DefaultForeground
	}
	if l.Background == (RGB{}) {
		l.Background = DefaultBackground
	}
	if l.Fade.R == 0 {
		l.Fade.R = 1
	}
	if l.Fade.G == 0 {
		l.Fade.G = 1
	}
	if l.Fade.B == 0 {
		l.Fade.B = 1
	}
}
