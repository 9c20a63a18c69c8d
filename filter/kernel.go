package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given radius,
// where the radius is one sigma (standard deviation). This matches
// Photoshop's notion of blur radius.
//
// The kernel length is 2*ceil(radius*3) + 1, which covers 99.7% of the
// Gaussian distribution (3 standard deviations). The length is always odd
// and the weights are symmetric about the center and normalized to sum
// to 1.0.
//
// For radius <= 0, returns the single-element identity kernel [1.0].
func GaussianKernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float64, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// We skip the normalization constant since we'll normalize sum to 1.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = val
		sum += val
	}

	// Normalize so kernel sums to 1.0.
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// BoxKernel generates a 1D box (uniform) kernel for the given radius.
// All values are equal: 1/(2*radius+1).
//
// Box blur is faster than Gaussian but produces blocky results.
// Three passes of box blur approximate Gaussian blur well.
func BoxKernel(radius int) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	size := radius*2 + 1
	kernel := make([]float64, size)
	val := 1.0 / float64(size)

	for i := range kernel {
		kernel[i] = val
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is radius * 100 (to handle float precision), value is kernel.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float64),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(radius float64) []float64 {
	// Quantize radius to 0.01 precision.
	key := int(radius * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for the radius.
// This is more efficient when the same radius is used repeatedly. Callers
// must treat the returned slice as read-only.
func CachedGaussianKernel(radius float64) []float64 {
	return defaultKernelCache.get(radius)
}

// OptimalKernelSize returns the kernel length GaussianKernel will produce
// for a given radius. Useful for pre-allocating buffers.
func OptimalKernelSize(radius float64) int {
	if radius <= 0 {
		return 1
	}
	halfSize := int(math.Ceil(radius * 3))
	return halfSize*2 + 1
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
