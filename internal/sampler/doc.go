// Package sampler selects items without replacement using a pseudorandom
// generator built from a fixed seed, so the same input always yields the
// same selection in the same order.
package sampler
