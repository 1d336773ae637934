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

// Package memory emulates the memory of the Palm handheld as seen by the
// software running on it.
//
// The Heap type is the dynamic heap. Memory is allocated in chunks with
// ChunkNew() and released with ChunkFree(). Chunk addresses are stable for the
// lifetime of the chunk, which is to say all chunks are "non-movable" in this
// emulation, but the NonMovable flag is still required by the allocator
// because movable chunks must be accessed through a handle, which is not
// supported. Chunks larger than MaxSmallChunk bytes can only be allocated
// with the AllowLarge flag.
//
// The Map type is the address space. Areas of memory (the heap, the emulator
// feature registers) are added to the map with an origin and memtop and
// accesses are dispatched to the area that contains the address.
//
// All multi-byte values are big-endian.
package memory
