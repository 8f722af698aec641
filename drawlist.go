package cozyui

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/go-theft-auto/cozyui/arc"
)

// Font atlas layout: printable ASCII in 8x8 cells, 16 per row, 128x48 texels.
const (
	atlasFirstGlyph = 32
	atlasLastGlyph  = 127
	atlasColumns    = 16
	atlasCellU      = 8.0 / 128
	atlasCellV      = 8.0 / 48
)

// maxCmdVertices is the most vertices a single command can address with
// 16-bit indices.
const maxCmdVertices = 1 << 16

// defaultClip is effectively unclipped.
var defaultClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
			path:      make([]arc.Point, 0, 128),
		}
	},
}

// AcquireDrawList returns a cleared DrawList from the pool. Pair it with
// ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList collects one frame of triangles. Consecutive primitives sharing a
// clip rectangle and texture are batched into one DrawCmd, and a command never
// spans more vertices than 16-bit indices can reach.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack   [][4]float32
	currentClip [4]float32
	textureID   uint32
	vtxBase     uint32 // first vertex of the open command
	idxBase     uint32 // first index of the open command

	// Tessellation scratch, reused across frames.
	path    []arc.Point
	line    []arc.Point
	normals []arc.Point
	verts   []Vertex
	run     []Vertex
}

// Clear empties the list, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = defaultClip
	dl.textureID = 0
	dl.vtxBase = 0
	dl.idxBase = 0
}

// PushClipRect clips everything drawn until the matching PopClipRect to the
// rectangle (x1, y1)-(x2, y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.openCommand()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.openCommand()
}

// SetTexture binds textureID for the primitives that follow. 0 means
// untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.openCommand()
}

// closeCommand records how many indices the open command holds.
func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxBase
	}
}

// openCommand closes the current command and starts a new one with the
// current clip rectangle and texture.
func (dl *DrawList) openCommand() {
	dl.closeCommand()
	dl.vtxBase = uint32(len(dl.VtxBuffer))
	dl.idxBase = uint32(len(dl.IdxBuffer))
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: dl.vtxBase,
		IndexOffset:  dl.idxBase,
	})
}

// addVertices appends verts and returns the index of the first one relative
// to its command. A new command is opened when verts would not fit in the
// current one; callers keep batches at or below maxCmdVertices.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	used := len(dl.VtxBuffer) - int(dl.vtxBase)
	if len(dl.CmdBuffer) == 0 || used+len(verts) > maxCmdVertices {
		dl.openCommand()
		used = 0
	}
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return uint16(used)
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// addStrip emits a triangle strip of vertex pairs (left, right per point) as
// quads. Strips longer than one command can address are cut into runs that
// repeat the pair at each seam, so the stroke stays continuous.
func (dl *DrawList) addStrip(verts []Vertex) {
	const maxPairs = maxCmdVertices / 2
	pairs := len(verts) / 2
	for start := 0; start < pairs-1; start += maxPairs - 1 {
		end := min(start+maxPairs, pairs)
		idx := dl.addVertices(verts[2*start : 2*end]...)
		for i := range end - start - 1 {
			a := idx + uint16(2*i)
			c := a + 2
			dl.addIndices(a, c, c+1, a, c+1, a+1)
		}
	}
}

// addFan emits a triangle fan around verts[0]. Long fans are cut into runs
// that each repeat the hub and the last rim vertex of the previous run.
func (dl *DrawList) addFan(verts []Vertex) {
	n := len(verts)
	for start := 1; start < n-1; start += maxCmdVertices - 2 {
		end := min(start+maxCmdVertices-1, n)
		dl.run = append(dl.run[:0], verts[0])
		dl.run = append(dl.run, verts[start:end]...)
		idx := dl.addVertices(dl.run...)
		for i := 1; i < len(dl.run)-1; i++ {
			dl.addIndices(idx, idx+uint16(i), idx+uint16(i+1))
		}
	}
}

// addQuad fills the quad a-b-c-d.
func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	idx := dl.addVertices(a, b, c, d)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func solid(x, y float32, color uint32) Vertex {
	return Vertex{Pos: [2]float32{x, y}, Color: color}
}

// AddRect fills an axis-aligned rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(solid(x, y, color), solid(x+w, y, color), solid(x+w, y+h, color), solid(x, y+h, color))
}

// AddRectOutline strokes a rectangle inside its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a straight line of the given thickness with square ends.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := math32.Hypot(dx, dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		solid(x1+nx, y1+ny, color), solid(x2+nx, y2+ny, color),
		solid(x2-nx, y2-ny, color), solid(x1-nx, y1-ny, color),
	)
}

// AddTriangle fills a triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	idx := dl.addVertices(solid(x1, y1, color), solid(x2, y2, color), solid(x3, y3, color))
	dl.addIndices(idx, idx+1, idx+2)
}

// AddText draws one line of text from the bitmap font atlas, each character
// in a charWidth x charHeight cell scaled by fontScale. The font texture must
// be bound with SetTexture.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	cw := charWidth * fontScale
	ch := charHeight * fontScale
	px := x
	for _, r := range text {
		g := asciiGlyph(r) - atlasFirstGlyph
		u0 := float32(g%atlasColumns) * atlasCellU
		v0 := float32(g/atlasColumns) * atlasCellV
		u1, v1 := u0+atlasCellU, v0+atlasCellV

		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		px += cw
	}
}

// asciiGlyph maps r onto the atlas, substituting ASCII look-alikes for the
// few symbols labels use and '?' for anything else.
func asciiGlyph(r rune) rune {
	switch r {
	case '►', '▶', '▸', '→':
		r = '>'
	case '◄', '◀', '◂', '←':
		r = '<'
	case '▼', '▾', '↓':
		r = 'v'
	case '▲', '▴', '↑':
		r = '^'
	case '●', '•', '◆':
		r = '*'
	case '—', '–':
		r = '-'
	}
	if r < atlasFirstGlyph || r > atlasLastGlyph {
		return '?'
	}
	return r
}

// InsertRect puts a filled rectangle behind everything drawn so far. Panels
// use it to paint their background once their content size is known.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	quad := []Vertex{solid(x, y, color), solid(x+w, y, color), solid(x+w, y+h, color), solid(x, y+h, color)}
	dl.VtxBuffer = append(quad, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Indices are relative to each command's VertexOffset, so only the
	// offsets move.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.vtxBase += 4
	dl.idxBase += 6

	dl.CmdBuffer = append([]DrawCmd{{ElemCount: 6, ClipRect: dl.currentClip}}, dl.CmdBuffer...)
}

// Finalize closes the open command and drops empty ones. Call it once all
// primitives are added.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
