// Package cuda implements device.Runtime over the CUDA runtime library. The binding is only
// compiled with the cuda build tag, after building the kernels with go generate.
package cuda
