// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

// Package digest creates fingerprints of the emulation's output. Two runs of
// the same program from the same starting state produce the same digest,
// which makes the digests useful for regression testing.
//
// Video fingerprints every frame produced by the television. Audio
// fingerprints the level changes of the ULA's MIC output, which is how the
// ZX81 saves programs to tape.
//
// Both types chain their fingerprints. The digest of a frame includes the
// digest of the previous frame so that the final value covers the entire
// history of the run.
package digest
