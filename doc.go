// Package algodft computes discrete Fourier transforms of real sequences in
// place, exploiting the conjugate symmetry of real input to run a complex
// transform of half the size.
//
// A Forward transform replaces a real buffer of power-of-two length n with
// its packed spectrum (see PackedSpectrum for the layout); Backward and
// Inverse transforms undo the packing before transforming back. Unpack
// expands a packed spectrum into the full complex spectrum for callers that
// want every frequency bin explicitly.
//
// Plans are immutable after construction and may be shared by concurrent
// transforms over distinct buffers. The buffer passed to a transform must not
// be touched by anything else for the duration of the call.
package algodft
