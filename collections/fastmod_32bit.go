//go:build !(amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm)

package collections

// Narrow targets divide about as fast as they widen-multiply, so bucket
// selection falls back to plain %.
const useFastMod = false
