//go:build amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm

package collections

// useFastMod selects the reciprocal-multiplier remainder on targets with an
// efficient 64-bit widening multiply.
const useFastMod = true
