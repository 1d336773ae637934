// This file is part of palmhires.
//
// palmhires is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// palmhires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with palmhires.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"encoding/binary"
	"sort"

	"github.com/palmhires/palmhires/curated"
)

// ChunkFlags specify how a chunk should be allocated.
type ChunkFlags int

// List of valid ChunkFlags. Flags can be combined.
const (
	NonMovable ChunkFlags = 1 << iota
	AllowLarge
)

// MaxSmallChunk is the largest chunk that can be allocated without the
// AllowLarge flag.
const MaxSmallChunk = 0xfff0

// chunks start on a four byte boundary.
const chunkAlign = 4

// Sentinal error patterns.
const (
	OutOfMemory     = "memory: out of memory (requested %d bytes)"
	ZeroSizedChunk  = "memory: zero sized chunk"
	ChunkTooLarge   = "memory: chunk of %d bytes requires AllowLarge flag"
	MovableChunk    = "memory: movable chunks are not supported"
	NotAChunk       = "memory: address is not the start of a chunk (%#08x)"
	UnmappedAddress = "memory: address is not mapped (%#08x)"
)

type chunk struct {
	origin uint32
	data   []byte
	flags  ChunkFlags
}

func (c *chunk) memtop() uint32 {
	return c.origin + uint32(len(c.data)) - 1
}

// Heap is the dynamic heap of the emulated device.
type Heap struct {
	origin uint32
	size   uint32

	// sorted by origin address
	chunks []*chunk
	used   uint32
}

// NewHeap is the preferred method of initialisation for the Heap type.
func NewHeap(origin uint32, size uint32) *Heap {
	return &Heap{
		origin: origin,
		size:   size,
	}
}

// Origin returns the first address of the heap.
func (h *Heap) Origin() uint32 {
	return h.origin
}

// Memtop returns the last address of the heap.
func (h *Heap) Memtop() uint32 {
	return h.origin + h.size - 1
}

// Used returns the number of bytes allocated to chunks.
func (h *Heap) Used() uint32 {
	return h.used
}

// Chunks returns the number of allocated chunks.
func (h *Heap) Chunks() int {
	return len(h.chunks)
}

func align(v uint32) uint32 {
	return (v + chunkAlign - 1) &^ (chunkAlign - 1)
}

// ChunkNew allocates a new chunk of size bytes and returns the address of
// the first byte. The contents of the chunk are undefined.
func (h *Heap) ChunkNew(size uint32, flags ChunkFlags) (uint32, error) {
	if size == 0 {
		return 0, curated.Errorf(ZeroSizedChunk)
	}
	if flags&NonMovable != NonMovable {
		return 0, curated.Errorf(MovableChunk)
	}
	if size > MaxSmallChunk && flags&AllowLarge != AllowLarge {
		return 0, curated.Errorf(ChunkTooLarge, size)
	}

	// first fit
	addr := h.origin
	idx := 0
	for ; idx < len(h.chunks); idx++ {
		c := h.chunks[idx]
		if c.origin >= addr && c.origin-addr >= size {
			break
		}
		addr = align(c.memtop() + 1)
	}

	if uint64(addr)+uint64(size) > uint64(h.origin)+uint64(h.size) {
		return 0, curated.Errorf(OutOfMemory, size)
	}

	c := &chunk{
		origin: addr,
		data:   make([]byte, size),
		flags:  flags,
	}

	// insert chunk at idx, preserving the sort order
	h.chunks = append(h.chunks, nil)
	copy(h.chunks[idx+1:], h.chunks[idx:])
	h.chunks[idx] = c
	h.used += size

	return addr, nil
}

// ChunkFree releases the chunk beginning at addr.
func (h *Heap) ChunkFree(addr uint32) error {
	idx, ok := h.index(addr)
	if !ok {
		return curated.Errorf(NotAChunk, addr)
	}
	h.used -= uint32(len(h.chunks[idx].data))
	h.chunks = append(h.chunks[:idx], h.chunks[idx+1:]...)
	return nil
}

// Owns returns true if addr is the start of an allocated chunk.
func (h *Heap) Owns(addr uint32) bool {
	_, ok := h.index(addr)
	return ok
}

// ChunkSize returns the size of the chunk beginning at addr.
func (h *Heap) ChunkSize(addr uint32) (uint32, bool) {
	idx, ok := h.index(addr)
	if !ok {
		return 0, false
	}
	return uint32(len(h.chunks[idx].data)), true
}

// index of the chunk beginning exactly at addr.
func (h *Heap) index(addr uint32) (int, bool) {
	idx := sort.Search(len(h.chunks), func(i int) bool {
		return h.chunks[i].origin >= addr
	})
	if idx < len(h.chunks) && h.chunks[idx].origin == addr {
		return idx, true
	}
	return 0, false
}

// find the chunk containing the address range [addr, addr+size) and return
// the slice of the chunk's data covering that range.
func (h *Heap) find(addr uint32, size uint32) ([]byte, error) {
	idx := sort.Search(len(h.chunks), func(i int) bool {
		return h.chunks[i].memtop() >= addr
	})
	if idx >= len(h.chunks) {
		return nil, curated.Errorf(UnmappedAddress, addr)
	}

	c := h.chunks[idx]
	if addr < c.origin || uint64(addr)+uint64(size) > uint64(c.memtop())+1 {
		return nil, curated.Errorf(UnmappedAddress, addr)
	}

	offset := addr - c.origin
	return c.data[offset : offset+size], nil
}

// Set size bytes beginning at addr to value.
func (h *Heap) Set(addr uint32, size uint32, value uint8) error {
	d, err := h.find(addr, size)
	if err != nil {
		return err
	}
	for i := range d {
		d[i] = value
	}
	return nil
}

// Read returns size bytes beginning at addr. The returned slice refers to
// the heap's memory.
func (h *Heap) Read(addr uint32, size uint32) ([]byte, error) {
	return h.find(addr, size)
}

// Write data to memory beginning at addr.
func (h *Heap) Write(addr uint32, data []byte) error {
	d, err := h.find(addr, uint32(len(data)))
	if err != nil {
		return err
	}
	copy(d, data)
	return nil
}

// Read16 returns the 16-bit value at addr.
func (h *Heap) Read16(addr uint32) (uint16, error) {
	d, err := h.find(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d), nil
}

// Write16 writes a 16-bit value to addr.
func (h *Heap) Write16(addr uint32, data uint16) error {
	d, err := h.find(addr, 2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(d, data)
	return nil
}

// Read32 returns the 32-bit value at addr. Implements the Area interface.
func (h *Heap) Read32(addr uint32) (uint32, error) {
	d, err := h.find(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d), nil
}

// Write32 writes a 32-bit value to addr. Implements the Area interface.
func (h *Heap) Write32(addr uint32, data uint32) error {
	d, err := h.find(addr, 4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(d, data)
	return nil
}
